package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/timevault/internal/client/client"
	pb "github.com/dmitrijs2005/timevault/internal/vaultpb"
)

var errUsage = errors.New("wrong number of arguments, see help")

// Login stores the access token used for every following call. The token
// is taken from args or read from the terminal without echo.
func (a *App) Login(ctx context.Context, args []string) error {
	var token string
	switch len(args) {
	case 0:
		t, err := GetToken(a.out)
		if err != nil {
			return err
		}
		token = t
	case 1:
		token = args[0]
	default:
		return errUsage
	}

	if err := a.api.SetAccessToken(token); err != nil {
		return err
	}
	printlnFn("Signed in as", a.api.User())
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	if !a.isLoggedIn() {
		return client.ErrNoToken
	}
	printlnFn(a.api.User())
	return nil
}

func (a *App) InitFeePool(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	fp, err := a.api.InitializeFeePool(ctx, args[0])
	if err != nil {
		return err
	}
	printlnFn("Fee pool initialized")
	printFeePool(fp)
	return nil
}

func (a *App) Provision(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	v, err := a.api.Provision(ctx, args[0])
	if err != nil {
		return err
	}
	printlnFn("Vault provisioned")
	printVault(v)
	return nil
}

// Deposit expects "<amount> <lock period>".
func (a *App) Deposit(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	amount, err := parseAmount(args[0])
	if err != nil {
		return err
	}
	lock, err := parsePeriod(args[1])
	if err != nil {
		return err
	}

	v, err := a.api.Deposit(ctx, lock, amount)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Deposited %d, locked until %s", amount, formatTime(v.UnlockTimestamp)))
	return nil
}

func (a *App) Extend(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	period, err := parsePeriod(args[0])
	if err != nil {
		return err
	}

	v, err := a.api.Extend(ctx, period)
	if err != nil {
		return err
	}
	printlnFn("Lock extended until", formatTime(v.UnlockTimestamp))
	return nil
}

// Withdraw expects "<amount> [-y]". While the vault is still locked the user
// is asked to confirm the higher fee unless -y is given.
func (a *App) Withdraw(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return errUsage
	}
	amount, err := parseAmount(args[0])
	if err != nil {
		return err
	}
	confirmed := len(args) == 2 && args[1] == "-y"
	if len(args) == 2 && !confirmed {
		return errUsage
	}

	if !confirmed {
		v, err := a.api.GetVault(ctx)
		if err != nil {
			return err
		}
		if v.Locked {
			answer, err := GetSimpleText(a.reader,
				fmt.Sprintf("Vault is locked until %s, early withdrawal costs a higher fee. Continue? [y/N]",
					formatTime(v.UnlockTimestamp)), a.out)
			if err != nil {
				return err
			}
			if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
				printlnFn("Cancelled")
				return nil
			}
		}
	}

	res, err := a.api.Withdraw(ctx, amount)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Withdrew %d: fee %d, received %d", res.Amount, res.Fee, res.AmountAfterFee))
	return nil
}

func (a *App) Show(ctx context.Context) error {
	v, err := a.api.GetVault(ctx)
	if err != nil {
		return err
	}
	printVault(v)
	return nil
}

func (a *App) FeePool(ctx context.Context) error {
	fp, err := a.api.GetFeePool(ctx)
	if err != nil {
		return err
	}
	printFeePool(fp)
	return nil
}

// History prints the newest events of the signed-in user, optionally capped
// at n.
func (a *App) History(ctx context.Context, args []string) error {
	var limit int32
	switch len(args) {
	case 0:
	case 1:
		n, err := strconv.ParseInt(args[0], 10, 32)
		if err != nil || n <= 0 {
			return errUsage
		}
		limit = int32(n)
	default:
		return errUsage
	}

	events, err := a.api.ListEvents(ctx, limit)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		printlnFn("No events")
		return nil
	}
	for _, e := range events {
		printlnFn(fmt.Sprintf("%s  %-20s %s", formatTime(e.CreatedAt), e.Kind, string(e.Payload)))
	}
	return nil
}

func printVault(v *pb.Vault) {
	printlnFn("Vault:  ", v.Address)
	printlnFn("Owner:  ", v.Owner)
	printlnFn("Asset:  ", v.Asset)
	printlnFn("Pool:   ", v.PoolAddress)
	if v.Wallet != "" {
		printlnFn("Wallet: ", v.Wallet)
	}
	printlnFn("Balance:", v.Balance)

	state := "unlocked"
	if v.Locked {
		state = "locked"
	}
	if v.UnlockTimestamp == 0 {
		printlnFn("Lock:    none")
		return
	}
	printlnFn(fmt.Sprintf("Lock:    %s until %s (period %ds)", state, formatTime(v.UnlockTimestamp), v.LockPeriod))
}

func printFeePool(fp *pb.FeePoolResponse) {
	printlnFn("Fee pool:", fp.Address)
	printlnFn("Asset:   ", fp.Asset)
	printlnFn("Balance: ", fp.Balance)
}

func formatTime(ts int64) string {
	return time.Unix(ts, 0).UTC().Format(time.RFC3339)
}
