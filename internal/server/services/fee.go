package services

import (
	"math"
	"math/bits"

	"github.com/dmitrijs2005/timevault/internal/common"
)

// Withdrawal fee tiers, in percent of the withdrawn amount.
const (
	LockedFeePercent   uint64 = 5
	UnlockedFeePercent uint64 = 1
)

func FeePercent(locked bool) uint64 {
	if locked {
		return LockedFeePercent
	}
	return UnlockedFeePercent
}

// ComputeFee splits amount into the fee kept by the pool and the remainder
// paid out. The fee is floor(amount*percent/100); fee+afterFee == amount.
func ComputeFee(amount uint64, locked bool) (fee, afterFee uint64, err error) {
	hi, lo := bits.Mul64(amount, FeePercent(locked))
	if hi != 0 {
		return 0, 0, common.ErrArithmetic
	}
	fee = lo / 100

	afterFee, borrow := bits.Sub64(amount, fee, 0)
	if borrow != 0 {
		return 0, 0, common.ErrInsufficientAmount
	}
	return fee, afterFee, nil
}

// AddPeriod returns ts+period, failing with common.ErrArithmetic when the
// result does not fit an int64 unix timestamp.
func AddPeriod(ts int64, period uint64) (int64, error) {
	if period > math.MaxInt64 || ts > math.MaxInt64-int64(period) {
		return 0, common.ErrArithmetic
	}
	return ts + int64(period), nil
}
