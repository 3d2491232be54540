package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/mailadmin/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-u string   users CSV file
//	-b string   batch recipients file
//	-t string   HTML template file
//	-l string   log file ("-" for stderr)
//	-d int      delay between bulk sends (seconds)
//	-dry-run    use the log transport
//
// os.Args is filtered with flagx.FilterArgs first so the -c/-config flag
// handled by parseJSON does not cause an error here.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:],
		[]string{"-u", "-b", "-t", "-l", "-d"},
		[]string{"-dry-run", "--dry-run"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.UsersFile, "u", cfg.UsersFile, "users CSV file")
	fs.StringVar(&cfg.BatchFile, "b", cfg.BatchFile, "batch recipients file")
	fs.StringVar(&cfg.TemplateFile, "t", cfg.TemplateFile, "HTML template file")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, `log file ("-" for stderr)`)
	delay := fs.Int("d", int(cfg.BulkDelay.Seconds()), "delay between bulk sends (in seconds)")
	dryRun := fs.Bool("dry-run", false, "log messages instead of sending them")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// Only an explicit -d overrides, so sub-second JSON delays survive.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "d" {
			cfg.BulkDelay = time.Duration(*delay) * time.Second
		}
	})
	if *dryRun {
		cfg.Transport = TransportLog
	}
}
