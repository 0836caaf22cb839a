package client

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/timevault/internal/common"
	pb "github.com/dmitrijs2005/timevault/internal/vaultpb"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      pb.VaultServiceClient
	accessToken string
	user        string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if s.accessToken != "" {
		ctx = withAccessToken(ctx, s.accessToken)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewVaultClient(endpointURL string, timeout time.Duration) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}

	conn, err := grpc.NewClient(c.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()), grpc.WithUnaryInterceptor(c.accessTokenInterceptor))
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewVaultServiceClient(conn)
	return c, nil
}

// SetAccessToken switches the identity the client acts for.
func (s *GRPCClient) SetAccessToken(token string) error {
	user, err := TokenSubject(token)
	if err != nil {
		return err
	}
	s.accessToken = token
	s.user = user
	return nil
}

// User is the subject of the current access token, or "".
func (s *GRPCClient) User() string {
	return s.user
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *GRPCClient) signedUser() (string, error) {
	if s.user == "" {
		return "", ErrNoToken
	}
	return s.user, nil
}

func (s *GRPCClient) InitializeFeePool(ctx context.Context, asset string) (*pb.FeePoolResponse, error) {
	user, err := s.signedUser()
	if err != nil {
		return nil, err
	}
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.InitializeFeePool(ctx, &pb.InitializeFeePoolRequest{Initializer: user, Asset: asset})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) Provision(ctx context.Context, asset string) (*pb.Vault, error) {
	user, err := s.signedUser()
	if err != nil {
		return nil, err
	}
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.Provision(ctx, &pb.ProvisionRequest{User: user, Asset: asset})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Vault, nil
}

func (s *GRPCClient) Deposit(ctx context.Context, lockPeriod, amount uint64) (*pb.Vault, error) {
	user, err := s.signedUser()
	if err != nil {
		return nil, err
	}
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.Deposit(ctx, &pb.DepositRequest{User: user, LockPeriod: lockPeriod, Amount: amount})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Vault, nil
}

func (s *GRPCClient) Extend(ctx context.Context, extendPeriod uint64) (*pb.Vault, error) {
	user, err := s.signedUser()
	if err != nil {
		return nil, err
	}
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.Extend(ctx, &pb.ExtendRequest{User: user, ExtendPeriod: extendPeriod})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Vault, nil
}

func (s *GRPCClient) Withdraw(ctx context.Context, amount uint64) (*pb.WithdrawResponse, error) {
	user, err := s.signedUser()
	if err != nil {
		return nil, err
	}
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.Withdraw(ctx, &pb.WithdrawRequest{User: user, Amount: amount})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) GetVault(ctx context.Context) (*pb.Vault, error) {
	user, err := s.signedUser()
	if err != nil {
		return nil, err
	}
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.GetVault(ctx, &pb.GetVaultRequest{User: user})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Vault, nil
}

func (s *GRPCClient) GetFeePool(ctx context.Context) (*pb.FeePoolResponse, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.GetFeePool(ctx, &pb.GetFeePoolRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) ListEvents(ctx context.Context, limit int32) ([]*pb.Event, error) {
	user, err := s.signedUser()
	if err != nil {
		return nil, err
	}
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.ListEvents(ctx, &pb.ListEventsRequest{User: user, Limit: limit})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Events, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
