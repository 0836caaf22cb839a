// Package grpc exposes the vault service over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/timevault/internal/logging"
	"github.com/dmitrijs2005/timevault/internal/server/models"
	"github.com/dmitrijs2005/timevault/internal/server/services"
	pb "github.com/dmitrijs2005/timevault/internal/vaultpb"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

// VaultService is the business layer the handlers call into.
type VaultService interface {
	InitializeFeePool(ctx context.Context, initializer, asset string) (*models.FeePool, error)
	Provision(ctx context.Context, user, asset string) (*models.Vault, error)
	Deposit(ctx context.Context, user string, lockPeriod, amount uint64) (*models.Vault, error)
	Extend(ctx context.Context, user string, extendPeriod uint64) (*models.Vault, error)
	Withdraw(ctx context.Context, user string, amount uint64) (*services.WithdrawResult, error)
	GetVault(ctx context.Context, user string) (*services.VaultView, error)
	GetFeePool(ctx context.Context) (*services.FeePoolView, error)
	ListEvents(ctx context.Context, user string, limit int) ([]*models.Event, error)
}

type GRPCServer struct {
	address   string
	vaults    VaultService
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, vs VaultService, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		vaults:    vs,
		jwtSecret: []byte(secretKey),
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))
	pb.RegisterVaultServiceServer(srv, s)
	reflection.Register(srv)
	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	stopped := make(chan struct{})
	defer close(stopped)

	go func() {
		select {
		case <-ctx.Done():
			s.logger.Info(ctx, "Stopping gRPC server...")
			srv.GracefulStop()
		case <-stopped:
		}
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
