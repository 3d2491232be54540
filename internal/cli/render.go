package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/mailadmin/internal/common"
	"github.com/dmitrijs2005/mailadmin/internal/repositories/users"
	"github.com/dmitrijs2005/mailadmin/internal/services"
)

var (
	bannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

var banner = []string{
	`      _     ____  __  __ ___ _   _ `,
	`     / \   |  _ \|  \/  |_ _| \ | |`,
	`    / _ \  | | | | |\/| || ||  \| |`,
	`   / ___ \ | |_| | |  | || || |\  |`,
	`  /_/   \_\|____/|_|  |_|___|_| \_|`,
	`------------ ADMIN TOOL ------------`,
}

type menuItem struct {
	key  string
	text string
}

var menu = []menuItem{
	{"1", "Add user"},
	{"2", "Remove user"},
	{"3", "Show users"},
	{"4", "Export users (CSV)"},
	{"5", "Send welcome email to ONE user"},
	{"6", "Send welcome email to ALL users"},
	{"7", "Send welcome email to users from the batch file"},
	{"0", "Exit"},
}

func printLine(w io.Writer, s string) {
	fmt.Fprintln(w, s)
}

func printOK(w io.Writer, s string)    { fmt.Fprintln(w, okStyle.Render(s)) }
func printWarn(w io.Writer, s string)  { fmt.Fprintln(w, warnStyle.Render(s)) }
func printError(w io.Writer, s string) { fmt.Fprintln(w, errStyle.Render(s)) }

func printBanner(w io.Writer) {
	for _, line := range banner {
		fmt.Fprintln(w, bannerStyle.Render(line))
	}
	fmt.Fprintln(w)
}

func printMenu(w io.Writer) {
	for _, it := range menu {
		fmt.Fprintf(w, "%s - %s\n", keyStyle.Render(it.key), it.text)
	}
}

// renderError maps the sentinel taxonomy onto operator-facing lines.
func renderError(w io.Writer, err error) {
	switch {
	case errors.Is(err, common.ErrNotFound):
		printWarn(w, "User not found.")
	case errors.Is(err, common.ErrAlreadyExists):
		printWarn(w, "User already exists.")
	case errors.Is(err, common.ErrInvalidRecipient):
		printError(w, fmt.Sprintf("Invalid address, canceled: %v", err))
	case errors.Is(err, common.ErrTransportConnect):
		printError(w, fmt.Sprintf("SMTP login failed: %v", err))
	case errors.Is(err, common.ErrMalformedInput):
		printWarn(w, fmt.Sprintf("Canceled: %v", err))
	default:
		printError(w, fmt.Sprintf("Error: %v", err))
	}
}

func printUsers(w io.Writer, records []users.Record) {
	if len(records) == 0 {
		printWarn(w, "No users found.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "USERNAME\tEMAIL\tCREATED AT")
	fmt.Fprintln(tw, "--------\t-----\t----------")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Username, r.Email, r.CreatedAt)
	}
	_ = tw.Flush()
	fmt.Fprintln(w)
}

func printItem(w io.Writer, it services.ItemResult) {
	prefix := fmt.Sprintf("[%d/%d]", it.Index, it.Total)
	switch it.Status {
	case services.StatusSent:
		printOK(w, fmt.Sprintf("%s Sent to %s", prefix, it.Email))
	case services.StatusSkipped:
		printWarn(w, fmt.Sprintf("%s Skipped: %s", prefix, it.Email))
	case services.StatusFailed:
		printError(w, fmt.Sprintf("%s Failed: %s: %s", prefix, it.Email, it.Reason))
	}
}

func printSummary(w io.Writer, label string, r services.Report) {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s: sent=%d, skipped=%d, failed=%d", label, r.Sent, r.Skipped, r.Failed)
	if r.Canceled {
		b.WriteString(" (interrupted)")
	}
	printLine(w, b.String())
}
