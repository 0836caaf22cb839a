package vaultpb

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
)

const (
	protoPackage = "timevault.v1"
	protoFile    = "timevault/v1/vault.proto"
)

// File_vault_proto describes vault.proto. It is registered in
// protoregistry.GlobalFiles at init.
var File_vault_proto protoreflect.FileDescriptor

type fieldType = descriptorpb.FieldDescriptorProto_Type

const (
	tString = descriptorpb.FieldDescriptorProto_TYPE_STRING
	tBytes  = descriptorpb.FieldDescriptorProto_TYPE_BYTES
	tUint64 = descriptorpb.FieldDescriptorProto_TYPE_UINT64
	tInt64  = descriptorpb.FieldDescriptorProto_TYPE_INT64
	tInt32  = descriptorpb.FieldDescriptorProto_TYPE_INT32
	tBool   = descriptorpb.FieldDescriptorProto_TYPE_BOOL
)

func scalar(name string, num int32, typ fieldType) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:   proto.String(name),
		Number: proto.Int32(num),
		Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:   typ.Enum(),
	}
}

func embedded(name string, num int32, msg string, repeated bool) *descriptorpb.FieldDescriptorProto {
	label := descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL
	if repeated {
		label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED
	}
	return &descriptorpb.FieldDescriptorProto{
		Name:     proto.String(name),
		Number:   proto.Int32(num),
		Label:    label.Enum(),
		Type:     descriptorpb.FieldDescriptorProto_TYPE_MESSAGE.Enum(),
		TypeName: proto.String("." + protoPackage + "." + msg),
	}
}

func message(name string, fields ...*descriptorpb.FieldDescriptorProto) *descriptorpb.DescriptorProto {
	return &descriptorpb.DescriptorProto{Name: proto.String(name), Field: fields}
}

func method(name, in, out string) *descriptorpb.MethodDescriptorProto {
	return &descriptorpb.MethodDescriptorProto{
		Name:       proto.String(name),
		InputType:  proto.String("." + protoPackage + "." + in),
		OutputType: proto.String("." + protoPackage + "." + out),
	}
}

func fileDescriptorProto() *descriptorpb.FileDescriptorProto {
	return &descriptorpb.FileDescriptorProto{
		Name:    proto.String(protoFile),
		Package: proto.String(protoPackage),
		Syntax:  proto.String("proto3"),
		Options: &descriptorpb.FileOptions{
			GoPackage: proto.String("github.com/dmitrijs2005/timevault/internal/vaultpb"),
		},
		MessageType: []*descriptorpb.DescriptorProto{
			message("InitializeFeePoolRequest",
				scalar("initializer", 1, tString),
				scalar("asset", 2, tString)),
			message("ProvisionRequest",
				scalar("user", 1, tString),
				scalar("asset", 2, tString)),
			message("DepositRequest",
				scalar("user", 1, tString),
				scalar("lock_period", 2, tUint64),
				scalar("amount", 3, tUint64)),
			message("ExtendRequest",
				scalar("user", 1, tString),
				scalar("extend_period", 2, tUint64)),
			message("WithdrawRequest",
				scalar("user", 1, tString),
				scalar("amount", 2, tUint64)),
			message("GetVaultRequest",
				scalar("user", 1, tString)),
			message("GetFeePoolRequest"),
			message("ListEventsRequest",
				scalar("user", 1, tString),
				scalar("limit", 2, tInt32)),
			message("Vault",
				scalar("address", 1, tString),
				scalar("owner", 2, tString),
				scalar("asset", 3, tString),
				scalar("pool_address", 4, tString),
				scalar("wallet", 5, tString),
				scalar("lock_period", 6, tUint64),
				scalar("unlock_timestamp", 7, tInt64),
				scalar("balance", 8, tUint64),
				scalar("locked", 9, tBool),
				scalar("now", 10, tInt64)),
			message("VaultResponse",
				embedded("vault", 1, "Vault", false)),
			message("FeePoolResponse",
				scalar("address", 1, tString),
				scalar("asset", 2, tString),
				scalar("initializer", 3, tString),
				scalar("balance", 4, tUint64),
				scalar("created_at", 5, tInt64)),
			message("WithdrawResponse",
				scalar("amount", 1, tUint64),
				scalar("fee", 2, tUint64),
				scalar("amount_after_fee", 3, tUint64),
				scalar("locked", 4, tBool),
				scalar("timestamp", 5, tInt64)),
			message("Event",
				scalar("id", 1, tString),
				scalar("kind", 2, tString),
				scalar("user", 3, tString),
				scalar("payload", 4, tBytes),
				scalar("created_at", 5, tInt64)),
			message("ListEventsResponse",
				embedded("events", 1, "Event", true)),
		},
		Service: []*descriptorpb.ServiceDescriptorProto{{
			Name: proto.String("VaultService"),
			Method: []*descriptorpb.MethodDescriptorProto{
				method("InitializeFeePool", "InitializeFeePoolRequest", "FeePoolResponse"),
				method("Provision", "ProvisionRequest", "VaultResponse"),
				method("Deposit", "DepositRequest", "VaultResponse"),
				method("Extend", "ExtendRequest", "VaultResponse"),
				method("Withdraw", "WithdrawRequest", "WithdrawResponse"),
				method("GetVault", "GetVaultRequest", "VaultResponse"),
				method("GetFeePool", "GetFeePoolRequest", "FeePoolResponse"),
				method("ListEvents", "ListEventsRequest", "ListEventsResponse"),
			},
		}},
	}
}

func init() {
	fd, err := protodesc.NewFile(fileDescriptorProto(), protoregistry.GlobalFiles)
	if err != nil {
		panic(fmt.Sprintf("vaultpb: build %s: %v", protoFile, err))
	}
	if err := protoregistry.GlobalFiles.RegisterFile(fd); err != nil {
		panic(fmt.Sprintf("vaultpb: register %s: %v", protoFile, err))
	}
	File_vault_proto = fd
}
