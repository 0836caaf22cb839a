package vaultpb

import (
	"context"

	"google.golang.org/grpc"
)

type VaultServiceClient interface {
	InitializeFeePool(ctx context.Context, in *InitializeFeePoolRequest, opts ...grpc.CallOption) (*FeePoolResponse, error)
	Provision(ctx context.Context, in *ProvisionRequest, opts ...grpc.CallOption) (*VaultResponse, error)
	Deposit(ctx context.Context, in *DepositRequest, opts ...grpc.CallOption) (*VaultResponse, error)
	Extend(ctx context.Context, in *ExtendRequest, opts ...grpc.CallOption) (*VaultResponse, error)
	Withdraw(ctx context.Context, in *WithdrawRequest, opts ...grpc.CallOption) (*WithdrawResponse, error)
	GetVault(ctx context.Context, in *GetVaultRequest, opts ...grpc.CallOption) (*VaultResponse, error)
	GetFeePool(ctx context.Context, in *GetFeePoolRequest, opts ...grpc.CallOption) (*FeePoolResponse, error)
	ListEvents(ctx context.Context, in *ListEventsRequest, opts ...grpc.CallOption) (*ListEventsResponse, error)
}

type vaultServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewVaultServiceClient(cc grpc.ClientConnInterface) VaultServiceClient {
	return &vaultServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultServiceClient) InitializeFeePool(ctx context.Context, in *InitializeFeePoolRequest, opts ...grpc.CallOption) (*FeePoolResponse, error) {
	return invoke[FeePoolResponse](ctx, c.cc, VaultService_InitializeFeePool_FullMethodName, in, opts)
}

func (c *vaultServiceClient) Provision(ctx context.Context, in *ProvisionRequest, opts ...grpc.CallOption) (*VaultResponse, error) {
	return invoke[VaultResponse](ctx, c.cc, VaultService_Provision_FullMethodName, in, opts)
}

func (c *vaultServiceClient) Deposit(ctx context.Context, in *DepositRequest, opts ...grpc.CallOption) (*VaultResponse, error) {
	return invoke[VaultResponse](ctx, c.cc, VaultService_Deposit_FullMethodName, in, opts)
}

func (c *vaultServiceClient) Extend(ctx context.Context, in *ExtendRequest, opts ...grpc.CallOption) (*VaultResponse, error) {
	return invoke[VaultResponse](ctx, c.cc, VaultService_Extend_FullMethodName, in, opts)
}

func (c *vaultServiceClient) Withdraw(ctx context.Context, in *WithdrawRequest, opts ...grpc.CallOption) (*WithdrawResponse, error) {
	return invoke[WithdrawResponse](ctx, c.cc, VaultService_Withdraw_FullMethodName, in, opts)
}

func (c *vaultServiceClient) GetVault(ctx context.Context, in *GetVaultRequest, opts ...grpc.CallOption) (*VaultResponse, error) {
	return invoke[VaultResponse](ctx, c.cc, VaultService_GetVault_FullMethodName, in, opts)
}

func (c *vaultServiceClient) GetFeePool(ctx context.Context, in *GetFeePoolRequest, opts ...grpc.CallOption) (*FeePoolResponse, error) {
	return invoke[FeePoolResponse](ctx, c.cc, VaultService_GetFeePool_FullMethodName, in, opts)
}

func (c *vaultServiceClient) ListEvents(ctx context.Context, in *ListEventsRequest, opts ...grpc.CallOption) (*ListEventsResponse, error) {
	return invoke[ListEventsResponse](ctx, c.cc, VaultService_ListEvents_FullMethodName, in, opts)
}
