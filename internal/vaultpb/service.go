package vaultpb

import (
	"context"

	"google.golang.org/grpc"
)

const ServiceName = "timevault.v1.VaultService"

const (
	VaultService_InitializeFeePool_FullMethodName = "/" + ServiceName + "/InitializeFeePool"
	VaultService_Provision_FullMethodName         = "/" + ServiceName + "/Provision"
	VaultService_Deposit_FullMethodName           = "/" + ServiceName + "/Deposit"
	VaultService_Extend_FullMethodName            = "/" + ServiceName + "/Extend"
	VaultService_Withdraw_FullMethodName          = "/" + ServiceName + "/Withdraw"
	VaultService_GetVault_FullMethodName          = "/" + ServiceName + "/GetVault"
	VaultService_GetFeePool_FullMethodName        = "/" + ServiceName + "/GetFeePool"
	VaultService_ListEvents_FullMethodName        = "/" + ServiceName + "/ListEvents"
)

// VaultServiceServer is implemented by the server transport.
type VaultServiceServer interface {
	InitializeFeePool(context.Context, *InitializeFeePoolRequest) (*FeePoolResponse, error)
	Provision(context.Context, *ProvisionRequest) (*VaultResponse, error)
	Deposit(context.Context, *DepositRequest) (*VaultResponse, error)
	Extend(context.Context, *ExtendRequest) (*VaultResponse, error)
	Withdraw(context.Context, *WithdrawRequest) (*WithdrawResponse, error)
	GetVault(context.Context, *GetVaultRequest) (*VaultResponse, error)
	GetFeePool(context.Context, *GetFeePoolRequest) (*FeePoolResponse, error)
	ListEvents(context.Context, *ListEventsRequest) (*ListEventsResponse, error)
}

// unary builds a method descriptor that decodes Req, runs the interceptor
// chain and dispatches to call.
func unary[Req any, Resp any](name string, call func(VaultServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(VaultServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/" + name}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(VaultServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

var VaultService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*VaultServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("InitializeFeePool", VaultServiceServer.InitializeFeePool),
		unary("Provision", VaultServiceServer.Provision),
		unary("Deposit", VaultServiceServer.Deposit),
		unary("Extend", VaultServiceServer.Extend),
		unary("Withdraw", VaultServiceServer.Withdraw),
		unary("GetVault", VaultServiceServer.GetVault),
		unary("GetFeePool", VaultServiceServer.GetFeePool),
		unary("ListEvents", VaultServiceServer.ListEvents),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: protoFile,
}

func RegisterVaultServiceServer(s grpc.ServiceRegistrar, srv VaultServiceServer) {
	s.RegisterService(&VaultService_ServiceDesc, srv)
}
