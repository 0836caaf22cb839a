package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/timevault/internal/client/client"
	"github.com/dmitrijs2005/timevault/internal/client/config"
	pb "github.com/dmitrijs2005/timevault/internal/vaultpb"
)

// VaultAPI is the subset of the gRPC client used by the CLI.
type VaultAPI interface {
	SetAccessToken(token string) error
	User() string
	Close() error

	InitializeFeePool(ctx context.Context, asset string) (*pb.FeePoolResponse, error)
	Provision(ctx context.Context, asset string) (*pb.Vault, error)
	Deposit(ctx context.Context, lockPeriod, amount uint64) (*pb.Vault, error)
	Extend(ctx context.Context, extendPeriod uint64) (*pb.Vault, error)
	Withdraw(ctx context.Context, amount uint64) (*pb.WithdrawResponse, error)
	GetVault(ctx context.Context) (*pb.Vault, error)
	GetFeePool(ctx context.Context) (*pb.FeePoolResponse, error)
	ListEvents(ctx context.Context, limit int32) ([]*pb.Event, error)
}

type App struct {
	config *config.Config
	api    VaultAPI
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	api, err := client.NewVaultClient(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	if c.AccessToken != "" {
		if err := api.SetAccessToken(c.AccessToken); err != nil {
			_ = api.Close()
			return nil, err
		}
	}

	return newApp(c, api, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, api VaultAPI, in io.Reader, out io.Writer) *App {
	return &App{config: c, api: api, reader: bufio.NewReader(in), out: out}
}

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.api.Close() }()

	printlnFn("Welcome to TimeVault CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.api.User() != ""
}

func (a *App) getStatus() string {
	user := a.api.User()
	if user == "" {
		return "anonymous"
	}
	if len(user) > 12 {
		return user[:6] + ".." + user[len(user)-4:]
	}
	return user
}
