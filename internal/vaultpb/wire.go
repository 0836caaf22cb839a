package vaultpb

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"google.golang.org/protobuf/encoding/protowire"
)

var (
	errWireType    = errors.New("vaultpb: unexpected wire type")
	errInvalidUTF8 = errors.New("vaultpb: string field contains invalid UTF-8")
)

// wireMessage is implemented by every message of this package. The encoding
// is the protobuf binary format with the field numbers of vault.proto.
type wireMessage interface {
	appendWire(b []byte) []byte
	unmarshalWire(b []byte) error
}

// proto3 semantics: zero values are not written.

func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendBytes(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

func appendUint64(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendInt64(b []byte, num protowire.Number, v int64) []byte {
	return appendUint64(b, num, uint64(v))
}

func appendInt32(b []byte, num protowire.Number, v int32) []byte {
	return appendUint64(b, num, uint64(int64(v)))
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	if !v {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeBool(v))
}

// appendMessage writes an embedded message. An empty body is still written
// so that the receiver sees the field as set.
func appendMessage(b []byte, num protowire.Number, body []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, body)
}

// decoder walks the fields of one message.
type decoder struct {
	b   []byte
	num protowire.Number
	typ protowire.Type
}

// next reads the following tag. It reports false at the end of the input.
func (d *decoder) next() (bool, error) {
	if len(d.b) == 0 {
		return false, nil
	}
	num, typ, n := protowire.ConsumeTag(d.b)
	if n < 0 {
		return false, protowire.ParseError(n)
	}
	d.b = d.b[n:]
	d.num, d.typ = num, typ
	return true, nil
}

func (d *decoder) typeError() error {
	return fmt.Errorf("%w: field %d has type %d", errWireType, d.num, d.typ)
}

func (d *decoder) varint() (uint64, error) {
	if d.typ != protowire.VarintType {
		return 0, d.typeError()
	}
	v, n := protowire.ConsumeVarint(d.b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	d.b = d.b[n:]
	return v, nil
}

func (d *decoder) readUint64() (uint64, error) { return d.varint() }

func (d *decoder) readInt64() (int64, error) {
	v, err := d.varint()
	return int64(v), err
}

func (d *decoder) readInt32() (int32, error) {
	v, err := d.varint()
	return int32(v), err
}

func (d *decoder) readBool() (bool, error) {
	v, err := d.varint()
	return protowire.DecodeBool(v), err
}

// raw returns a length-delimited value without copying it.
func (d *decoder) raw() ([]byte, error) {
	if d.typ != protowire.BytesType {
		return nil, d.typeError()
	}
	v, n := protowire.ConsumeBytes(d.b)
	if n < 0 {
		return nil, protowire.ParseError(n)
	}
	d.b = d.b[n:]
	return v, nil
}

func (d *decoder) readBytes() ([]byte, error) {
	v, err := d.raw()
	if err != nil || len(v) == 0 {
		return nil, err
	}
	return append([]byte(nil), v...), nil
}

func (d *decoder) readString() (string, error) {
	v, err := d.raw()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(v) {
		return "", fmt.Errorf("%w: field %d", errInvalidUTF8, d.num)
	}
	return string(v), nil
}

// readMessage decodes an embedded message into m.
func (d *decoder) readMessage(m wireMessage) error {
	v, err := d.raw()
	if err != nil {
		return err
	}
	return m.unmarshalWire(v)
}

// skip drops a field this version does not know.
func (d *decoder) skip() error {
	n := protowire.ConsumeFieldValue(d.num, d.typ, d.b)
	if n < 0 {
		return protowire.ParseError(n)
	}
	d.b = d.b[n:]
	return nil
}
