package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/JonMunkholm/replenish/internal/config"
	"github.com/JonMunkholm/replenish/internal/core"
	"github.com/JonMunkholm/replenish/internal/export"
	"github.com/JonMunkholm/replenish/internal/render"
	"github.com/JonMunkholm/replenish/internal/source"
	"github.com/spf13/cobra"
)

type reportOptions struct {
	sourceFile    string
	sheet         string
	output        string
	format        string
	maxHeaderRows int
	noExport      bool
}

func addReportFlags(cmd *cobra.Command, opts *reportOptions) {
	cmd.Flags().StringVar(&opts.sourceFile, "source-file", "", "Read a local .xlsx or .csv snapshot instead of Google Sheets")
	cmd.Flags().StringVar(&opts.sheet, "sheet", "", "Sheet to read (default: SHEET_NAME, or the first sheet of a snapshot)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Export file path (default: REPORT_OUTPUT)")
	cmd.Flags().StringVar(&opts.format, "format", "", "Export format: csv|xlsx (default: REPORT_FORMAT)")
	cmd.Flags().IntVar(&opts.maxHeaderRows, "max-header-rows", 0, "Rows scanned for the header (default: REPORT_MAX_HEADER_ROWS)")
	cmd.Flags().BoolVar(&opts.noExport, "no-export", false, "Print the table without writing an export file")
}

// overrides turns the flags the user actually set into config overrides.
func (o *reportOptions) overrides(cmd *cobra.Command) []config.Override {
	var out []config.Override
	flags := cmd.Flags()

	if flags.Changed("source-file") {
		out = append(out, func(c *config.Config) { c.Source.File = o.sourceFile })
	}
	if flags.Changed("sheet") {
		out = append(out, func(c *config.Config) {
			c.Sheets.SheetName = o.sheet
			c.Source.Sheet = o.sheet
		})
	}
	if flags.Changed("output") {
		out = append(out, func(c *config.Config) { c.Report.Output = o.output })
	}
	if flags.Changed("format") {
		out = append(out, func(c *config.Config) { c.Report.Format = strings.ToLower(o.format) })
	}
	if flags.Changed("max-header-rows") {
		out = append(out, func(c *config.Config) { c.Report.MaxHeaderRows = o.maxHeaderRows })
	}
	return out
}

func newReportCmd(out io.Writer) *cobra.Command {
	opts := &reportOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print and export the items that need replenishment",
		Long: `Read the stock sheet, locate the header row, and list every item whose
opening balance is strictly below its minimum level.

The items are printed as a table and written to REPORT_OUTPUT. No file is
written when nothing needs replenishment.

Example: replenish report --source-file stock.xlsx --format xlsx -o reorder.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, out, opts)
		},
	}
	addReportFlags(cmd, opts)

	return cmd
}

func runReport(cmd *cobra.Command, out io.Writer, opts *reportOptions) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(opts.overrides(cmd)...)
	if err != nil {
		return err
	}

	format, err := export.ParseFormat(cfg.Report.Format)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	src, err := source.New(ctx, cfg)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Stock Replenishment Report Generator")
	fmt.Fprintln(out, strings.Repeat("=", 80))

	report, err := core.NewService(src, cfg.Report.MaxHeaderRows).Run(ctx)
	if err != nil {
		return err
	}

	render.Summary(out, report)
	render.Results(out, report.Items)

	if opts.noExport {
		return nil
	}

	written, err := export.Write(cfg.Report.Output, format, report.Items)
	if err != nil {
		return err
	}
	if written {
		fmt.Fprintf(out, "Results saved to: %s\n", cfg.Report.Output)
	} else {
		fmt.Fprintln(out, "No items to save.")
	}

	return nil
}
