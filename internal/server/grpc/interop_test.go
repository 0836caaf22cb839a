package grpc

import (
	"context"
	"testing"

	pb "github.com/dmitrijs2005/timevault/internal/vaultpb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/dynamicpb"

	reflectionpb "google.golang.org/grpc/reflection/grpc_reflection_v1"
)

// newDynamic builds an empty message from the registered schema, the way a
// client that only knows vault.proto would.
func newDynamic(t *testing.T, name string) *dynamicpb.Message {
	t.Helper()
	md := pb.File_vault_proto.Messages().ByName(protoreflect.Name(name))
	require.NotNil(t, md, name)
	return dynamicpb.NewMessage(md)
}

func field(m *dynamicpb.Message, name string) protoreflect.Value {
	return m.Get(m.Descriptor().Fields().ByName(protoreflect.Name(name)))
}

func TestRoundTrip_PlainProtobufClient(t *testing.T) {
	svc := &fakeVaultService{}
	conn := dialConn(t, svc)

	// No content subtype: the default codec must handle the call.
	req := newDynamic(t, "GetFeePoolRequest")
	resp := newDynamic(t, "FeePoolResponse")
	require.NoError(t, conn.Invoke(context.Background(), pb.VaultService_GetFeePool_FullMethodName, req, resp))

	assert.Equal(t, "fee", field(resp, "address").String())
	assert.Equal(t, "gold", field(resp, "asset").String())
	assert.Equal(t, uint64(6), field(resp, "balance").Uint())
	assert.Equal(t, int64(7), field(resp, "created_at").Int())
	assert.Empty(t, resp.GetUnknown())

	dep := newDynamic(t, "DepositRequest")
	dep.Set(dep.Descriptor().Fields().ByName("user"), protoreflect.ValueOfString("alice"))
	dep.Set(dep.Descriptor().Fields().ByName("lock_period"), protoreflect.ValueOfUint64(3600))
	dep.Set(dep.Descriptor().Fields().ByName("amount"), protoreflect.ValueOfUint64(1000))
	out := newDynamic(t, "VaultResponse")
	require.NoError(t, conn.Invoke(signedCtx(t, "alice"), pb.VaultService_Deposit_FullMethodName, dep, out))

	assert.Equal(t, []any{"alice", uint64(3600), uint64(1000)}, svc.lastReq)
	v := field(out, "vault").Message()
	assert.Equal(t, int64(3600), v.Get(v.Descriptor().Fields().ByName("unlock_timestamp")).Int())
	assert.Equal(t, "pool", v.Get(v.Descriptor().Fields().ByName("pool_address")).String())
}

func TestReflection_DescribesVaultService(t *testing.T) {
	conn := dialConn(t, &fakeVaultService{})

	stream, err := reflectionpb.NewServerReflectionClient(conn).ServerReflectionInfo(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = stream.CloseSend() })

	require.NoError(t, stream.Send(&reflectionpb.ServerReflectionRequest{
		MessageRequest: &reflectionpb.ServerReflectionRequest_ListServices{},
	}))
	resp, err := stream.Recv()
	require.NoError(t, err)

	var names []string
	for _, s := range resp.GetListServicesResponse().GetService() {
		names = append(names, s.GetName())
	}
	assert.Contains(t, names, pb.ServiceName)

	require.NoError(t, stream.Send(&reflectionpb.ServerReflectionRequest{
		MessageRequest: &reflectionpb.ServerReflectionRequest_FileContainingSymbol{FileContainingSymbol: pb.ServiceName},
	}))
	resp, err = stream.Recv()
	require.NoError(t, err)

	files := resp.GetFileDescriptorResponse().GetFileDescriptorProto()
	require.NotEmpty(t, files)
	var fd descriptorpb.FileDescriptorProto
	require.NoError(t, proto.Unmarshal(files[0], &fd))
	assert.Equal(t, "timevault.v1", fd.GetPackage())
	require.Len(t, fd.GetService(), 1)
	assert.Len(t, fd.GetService()[0].GetMethod(), 8)
}
