package grpc

import (
	"context"

	"github.com/dmitrijs2005/timevault/internal/server/models"
	"github.com/dmitrijs2005/timevault/internal/server/services"
	pb "github.com/dmitrijs2005/timevault/internal/vaultpb"
)

func vaultToPB(v *models.Vault) *pb.Vault {
	return &pb.Vault{
		Address:         v.Address,
		Owner:           v.Owner,
		Asset:           v.Asset,
		PoolAddress:     v.PoolAddress,
		LockPeriod:      v.LockPeriod,
		UnlockTimestamp: v.UnlockTimestamp,
	}
}

func feePoolToPB(fp *models.FeePool, balance uint64) *pb.FeePoolResponse {
	return &pb.FeePoolResponse{
		Address:     fp.Address,
		Asset:       fp.Asset,
		Initializer: fp.Initializer,
		Balance:     balance,
		CreatedAt:   fp.CreatedAt.Unix(),
	}
}

func (s *GRPCServer) InitializeFeePool(ctx context.Context, req *pb.InitializeFeePoolRequest) (*pb.FeePoolResponse, error) {
	fp, err := s.vaults.InitializeFeePool(ctx, req.Initializer, req.Asset)
	if err != nil {
		return nil, s.toStatus(ctx, "InitializeFeePool", err)
	}
	return feePoolToPB(fp, 0), nil
}

func (s *GRPCServer) Provision(ctx context.Context, req *pb.ProvisionRequest) (*pb.VaultResponse, error) {
	v, err := s.vaults.Provision(ctx, req.User, req.Asset)
	if err != nil {
		return nil, s.toStatus(ctx, "Provision", err)
	}
	return &pb.VaultResponse{Vault: vaultToPB(v)}, nil
}

func (s *GRPCServer) Deposit(ctx context.Context, req *pb.DepositRequest) (*pb.VaultResponse, error) {
	v, err := s.vaults.Deposit(ctx, req.User, req.LockPeriod, req.Amount)
	if err != nil {
		return nil, s.toStatus(ctx, "Deposit", err)
	}
	return &pb.VaultResponse{Vault: vaultToPB(v)}, nil
}

func (s *GRPCServer) Extend(ctx context.Context, req *pb.ExtendRequest) (*pb.VaultResponse, error) {
	v, err := s.vaults.Extend(ctx, req.User, req.ExtendPeriod)
	if err != nil {
		return nil, s.toStatus(ctx, "Extend", err)
	}
	return &pb.VaultResponse{Vault: vaultToPB(v)}, nil
}

func (s *GRPCServer) Withdraw(ctx context.Context, req *pb.WithdrawRequest) (*pb.WithdrawResponse, error) {
	res, err := s.vaults.Withdraw(ctx, req.User, req.Amount)
	if err != nil {
		return nil, s.toStatus(ctx, "Withdraw", err)
	}
	return withdrawToPB(res), nil
}

func withdrawToPB(res *services.WithdrawResult) *pb.WithdrawResponse {
	return &pb.WithdrawResponse{
		Amount:         res.Amount,
		Fee:            res.Fee,
		AmountAfterFee: res.AmountAfterFee,
		Locked:         res.Locked,
		Timestamp:      res.Timestamp,
	}
}

func (s *GRPCServer) GetVault(ctx context.Context, req *pb.GetVaultRequest) (*pb.VaultResponse, error) {
	view, err := s.vaults.GetVault(ctx, req.User)
	if err != nil {
		return nil, s.toStatus(ctx, "GetVault", err)
	}
	v := vaultToPB(view.Vault)
	v.Wallet = view.Wallet
	v.Balance = view.Balance
	v.Locked = view.Locked
	v.Now = view.Now
	return &pb.VaultResponse{Vault: v}, nil
}

func (s *GRPCServer) GetFeePool(ctx context.Context, _ *pb.GetFeePoolRequest) (*pb.FeePoolResponse, error) {
	view, err := s.vaults.GetFeePool(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, "GetFeePool", err)
	}
	return feePoolToPB(view.FeePool, view.Balance), nil
}

func (s *GRPCServer) ListEvents(ctx context.Context, req *pb.ListEventsRequest) (*pb.ListEventsResponse, error) {
	evs, err := s.vaults.ListEvents(ctx, req.User, int(req.Limit))
	if err != nil {
		return nil, s.toStatus(ctx, "ListEvents", err)
	}

	out := make([]*pb.Event, 0, len(evs))
	for _, e := range evs {
		out = append(out, &pb.Event{
			ID:        e.ID,
			Kind:      string(e.Kind),
			User:      e.User,
			Payload:   e.Payload,
			CreatedAt: e.CreatedAt.Unix(),
		})
	}
	return &pb.ListEventsResponse{Events: out}, nil
}
