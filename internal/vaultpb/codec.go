package vaultpb

import (
	"fmt"

	"google.golang.org/grpc/encoding"
	grpcproto "google.golang.org/grpc/encoding/proto"
	"google.golang.org/grpc/mem"
	"google.golang.org/protobuf/proto"
)

// CodecName is the name of gRPC's default codec. Codec replaces it so that
// requests without a content subtype, as sent by stock clients, decode.
const CodecName = grpcproto.Name

// Codec encodes the messages of this package with their own protobuf
// marshalers and hands anything else to the codec it replaced.
type Codec struct {
	fallback encoding.CodecV2
}

func (c Codec) Marshal(v any) (mem.BufferSlice, error) {
	if m, ok := v.(wireMessage); ok {
		return mem.BufferSlice{mem.SliceBuffer(m.appendWire(nil))}, nil
	}
	if c.fallback != nil {
		return c.fallback.Marshal(v)
	}
	if m, ok := v.(proto.Message); ok {
		b, err := proto.Marshal(m)
		if err != nil {
			return nil, err
		}
		return mem.BufferSlice{mem.SliceBuffer(b)}, nil
	}
	return nil, fmt.Errorf("vaultpb: cannot marshal %T", v)
}

func (c Codec) Unmarshal(data mem.BufferSlice, v any) error {
	if m, ok := v.(wireMessage); ok {
		if err := m.unmarshalWire(data.Materialize()); err != nil {
			return fmt.Errorf("vaultpb unmarshal %T: %w", v, err)
		}
		return nil
	}
	if c.fallback != nil {
		return c.fallback.Unmarshal(data, v)
	}
	if m, ok := v.(proto.Message); ok {
		return proto.Unmarshal(data.Materialize(), m)
	}
	return fmt.Errorf("vaultpb: cannot unmarshal into %T", v)
}

func (Codec) Name() string { return CodecName }

func init() {
	encoding.RegisterCodecV2(Codec{fallback: encoding.GetCodecV2(CodecName)})
}
