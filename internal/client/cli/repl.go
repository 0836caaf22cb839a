package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context, args []string) error
	WhoAmI(ctx context.Context) error
	InitFeePool(ctx context.Context, args []string) error
	Provision(ctx context.Context, args []string) error
	Deposit(ctx context.Context, args []string) error
	Extend(ctx context.Context, args []string) error
	Withdraw(ctx context.Context, args []string) error
	Show(ctx context.Context) error
	FeePool(ctx context.Context) error
	History(ctx context.Context, args []string) error
}

const (
	helpAnonymous = "Available commands: login [token], fee-pool, help, exit"
	helpSigned    = "Available commands: init-fee-pool <asset>, provision <asset>, deposit <amount> <lock>, " +
		"extend <period>, withdraw <amount> [-y], show, fee-pool, history [n], login [token], whoami, help, exit"
)

// runREPL reads commands line by line from reader and dispatches them to a.
//
// Periods accept whole seconds or Go durations ("3600", "1h"). The loop
// exits on EOF or when the user types "exit" or "quit". A failing command
// prints its error and the loop keeps going.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("tv %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpSigned)
			} else {
				printlnFn(helpAnonymous)
			}

		case "login":
			cmdErr = a.Login(ctx, args)

		case "whoami":
			cmdErr = a.WhoAmI(ctx)

		case "init-fee-pool":
			cmdErr = a.InitFeePool(ctx, args)

		case "provision":
			cmdErr = a.Provision(ctx, args)

		case "deposit":
			cmdErr = a.Deposit(ctx, args)

		case "extend":
			cmdErr = a.Extend(ctx, args)

		case "withdraw":
			cmdErr = a.Withdraw(ctx, args)

		case "show":
			cmdErr = a.Show(ctx)

		case "fee-pool":
			cmdErr = a.FeePool(ctx)

		case "history":
			cmdErr = a.History(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", cmdErr)
		}
	}
}
