package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/mailadmin/internal/common"
	"github.com/dmitrijs2005/mailadmin/internal/recipients"
	"github.com/dmitrijs2005/mailadmin/internal/services"
)

// SendOne sends the welcome message to a single stored user.
func (a *App) SendOne(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	if username == "" {
		printWarn(a.out, "Empty username, canceled.")
		return nil
	}

	records, err := a.userService.List(ctx)
	if err != nil {
		return err
	}

	res, err := a.sendService.SendToUser(ctx, records, username)
	if err != nil {
		if res.Status == services.StatusFailed {
			printError(a.out, fmt.Sprintf("Failed to send to %s: %s", res.Email, res.Reason))
			return nil
		}
		return err
	}
	printOK(a.out, fmt.Sprintf("Email sent to %s", res.Email))
	return nil
}

// SendAll sends the welcome message to every stored user.
func (a *App) SendAll(ctx context.Context) error {
	records, err := a.userService.List(ctx)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		printWarn(a.out, "No users to email.")
		return nil
	}

	report, err := a.sendService.SendToAll(ctx, records, a.progress)
	if err != nil {
		return err
	}
	printSummary(a.out, "Summary", report)
	return nil
}

// SendBatch sends the welcome message to the entries of the batch file,
// capped at the configured maximum.
func (a *App) SendBatch(ctx context.Context) error {
	entries, err := recipients.LoadFile(a.config.BatchFile, a.config.MaxBatch)
	if err != nil && !errors.Is(err, common.ErrResourceMissing) {
		return err
	}
	if len(entries) == 0 {
		printWarn(a.out, fmt.Sprintf("No valid lines found in %s (or file missing).", a.config.BatchFile))
		return nil
	}

	report, err := a.sendService.SendBatch(ctx, entries, a.progress)
	if err != nil {
		return err
	}
	printSummary(a.out, fmt.Sprintf("Batch summary (%d max)", a.config.MaxBatch), report)
	return nil
}

func (a *App) progress(it services.ItemResult) {
	printItem(a.out, it)
}
