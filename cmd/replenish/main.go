// Command replenish lists stock items whose opening balance has fallen below
// their minimum level, reading a Google Sheet or a local snapshot.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/JonMunkholm/replenish/internal/config"
	"github.com/JonMunkholm/replenish/internal/core"
	"github.com/JonMunkholm/replenish/internal/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// Load .env if present. Variables already set in the environment win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "ERROR: load .env: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		stop()
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &reportOptions{}

	rootCmd := &cobra.Command{
		Use:   "replenish",
		Short: "Stock replenishment report for the inventory sheet",
		Long: `Reads the stock sheet, finds every item whose opening balance is below
its minimum level, prints them as a table and saves them to a file.

Running replenish with no subcommand is the same as "replenish report".

Configuration is read from the environment and an optional .env file:
- SPREADSHEET_ID, SERVICE_ACCOUNT_FILE, SHEET_NAME (Google Sheets)
- SOURCE_FILE (local .xlsx or .csv snapshot instead of the API)
- REPORT_OUTPUT, REPORT_FORMAT, REPORT_MAX_HEADER_ROWS
- LOG_LEVEL, LOG_FORMAT`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, out, opts)
		},
	}
	addReportFlags(rootCmd, opts)

	rootCmd.AddCommand(
		newReportCmd(out),
		newVerifyCmd(out),
		newServeCmd(),
	)
	rootCmd.SetOut(out)

	return rootCmd
}

// loadConfig loads configuration with the command's overrides applied and
// configures logging from it.
func loadConfig(overrides ...config.Override) (*config.Config, error) {
	cfg, err := config.Load(overrides...)
	if err != nil {
		return nil, err
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	slog.Debug("configuration loaded", "config", cfg.String())

	return cfg, nil
}

// printError writes the technical error and, when one is known, the
// user-facing explanation with its code.
func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "\nERROR: %v\n", err)
	if core.IsUserFacing(err) {
		fmt.Fprintln(w, core.FormatUserError(err))
	}
}
