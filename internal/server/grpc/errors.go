package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/timevault/internal/common"
	"github.com/dmitrijs2005/timevault/internal/server/ledger"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func codeOf(err error) codes.Code {
	switch {
	case errors.Is(err, common.ErrMissingSignature),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		return codes.Unauthenticated
	case errors.Is(err, common.ErrInvalidLockPeriod),
		errors.Is(err, common.ErrInvalidExtendPeriod),
		errors.Is(err, common.ErrInvalidAmount),
		errors.Is(err, common.ErrInvalidAsset):
		return codes.InvalidArgument
	case errors.Is(err, common.ErrAlreadyProvisioned):
		return codes.AlreadyExists
	case errors.Is(err, common.ErrNotProvisioned):
		return codes.NotFound
	case errors.Is(err, common.ErrInsufficientVaultBalance),
		errors.Is(err, common.ErrInsufficientAmount),
		errors.Is(err, ledger.ErrLedger):
		return codes.FailedPrecondition
	case errors.Is(err, common.ErrArithmetic):
		return codes.OutOfRange
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	default:
		return codes.Internal
	}
}

// toStatus converts a service error into a gRPC status. Internal failures
// are logged in full and reach the caller only as "internal error".
func (s *GRPCServer) toStatus(ctx context.Context, method string, err error) error {
	code := codeOf(err)
	if code == codes.Internal {
		s.logger.Error(ctx, "request failed", "method", method, "error", err)
		return status.Error(codes.Internal, common.ErrorInternal.Error())
	}
	s.logger.Warn(ctx, "request rejected", "method", method, "code", code.String(), "error", err)
	return status.Error(code, err.Error())
}
