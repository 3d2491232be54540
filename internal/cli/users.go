package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/mailadmin/internal/common"
	"github.com/dmitrijs2005/mailadmin/internal/repositories/users"
)

// AddUser prompts for a username, an email and a password and stores the
// new record. Duplicates and bad addresses are rejected before the password
// is asked for.
func (a *App) AddUser(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "New username", a.out)
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
	if i, _ := users.Find(records, username); i >= 0 {
		return fmt.Errorf("user %q: %w", username, common.ErrAlreadyExists)
	}

	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	if !a.validator.IsValidAddress(email) {
		printError(a.out, fmt.Sprintf("Only @%s addresses are allowed.", a.validator.Domain()))
		return nil
	}

	password, err := GetPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	if len(password) == 0 {
		printWarn(a.out, "Empty password, canceled.")
		return nil
	}

	if _, err := a.userService.Add(ctx, username, email, password); err != nil {
		return err
	}
	printOK(a.out, fmt.Sprintf("User %s added.", username))
	return nil
}

// RemoveUser deletes a record after a y/N confirmation.
func (a *App) RemoveUser(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Username to remove", a.out)
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
	if i, _ := users.Find(records, username); i < 0 {
		return fmt.Errorf("user %q: %w", username, common.ErrNotFound)
	}

	ok, err := Confirm(a.reader, fmt.Sprintf("Remove %s? (y/N)", username), "y", a.out)
	if err != nil {
		return err
	}
	if !ok {
		printLine(a.out, "Canceled.")
		return nil
	}

	if err := a.userService.Remove(ctx, username); err != nil {
		return err
	}
	printOK(a.out, fmt.Sprintf("User %s removed.", username))
	return nil
}

func (a *App) ShowUsers(ctx context.Context) error {
	records, err := a.userService.List(ctx)
	if err != nil {
		return err
	}
	printUsers(a.out, records)
	return nil
}

// ExportUsers writes the public columns to a CSV file. An empty answer keeps
// the configured default name.
func (a *App) ExportUsers(ctx context.Context) error {
	path, err := GetSimpleText(a.reader, fmt.Sprintf("Export file [%s]", a.config.ExportFile), a.out)
	if err != nil {
		return err
	}
	if path == "" {
		path = a.config.ExportFile
	}

	n, err := a.userService.Export(ctx, path)
	if err != nil {
		return err
	}
	printOK(a.out, fmt.Sprintf("Exported %d users to %s", n, path))
	return nil
}
