package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"os/signal"
)

// operationContext scopes one menu choice; Ctrl-C cancels only that choice.
// Tests replace it to avoid installing signal handlers.
var operationContext = func(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt)
}

// execIface defines the command surface the menu loop dispatches to.
// The real App type satisfies it; tests provide a lightweight stub.
type execIface interface {
	AddUser(ctx context.Context) error
	RemoveUser(ctx context.Context) error
	ShowUsers(ctx context.Context) error
	ExportUsers(ctx context.Context) error
	SendOne(ctx context.Context) error
	SendAll(ctx context.Context) error
	SendBatch(ctx context.Context) error
}

// runREPL shows the menu, reads a choice and dispatches it, until the
// operator picks 0 or input ends. Errors returned by a command are rendered
// inline and the loop continues.
func runREPL(ctx context.Context, a execIface, r *bufio.Reader, w io.Writer) {
	commands := map[string]func(context.Context) error{
		"1": a.AddUser,
		"2": a.RemoveUser,
		"3": a.ShowUsers,
		"4": a.ExportUsers,
		"5": a.SendOne,
		"6": a.SendAll,
		"7": a.SendBatch,
	}

	for {
		printMenu(w)
		choice, err := GetSimpleText(r, "Choice", w)
		if err != nil {
			return
		}

		if choice == "0" {
			printLine(w, "Bye.")
			return
		}
		cmd, ok := commands[choice]
		if !ok {
			printLine(w, "Invalid choice.")
			continue
		}

		opCtx, stop := operationContext(ctx)
		err = cmd(opCtx)
		stop()
		if err != nil {
			renderError(w, err)
		}
	}
}
