package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/JonMunkholm/replenish/internal/config"
	"github.com/JonMunkholm/replenish/internal/render"
	"github.com/JonMunkholm/replenish/internal/source"
	"github.com/spf13/cobra"
)

func newVerifyCmd(out io.Writer) *cobra.Command {
	var rows int
	var sheet string
	var sourceFile string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that the spreadsheet can be read",
		Long: `Authenticate, list the spreadsheet's sheets, and preview the first rows
of one of them. Use this to confirm the service account has been given
access before running a report.

Example: replenish verify --rows 5 --sheet "STOCK SHEET (Add New Item here)"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var overrides []config.Override
			if cmd.Flags().Changed("source-file") {
				overrides = append(overrides, func(c *config.Config) { c.Source.File = sourceFile })
			}

			cfg, err := loadConfig(overrides...)
			if err != nil {
				return err
			}

			fmt.Fprintln(out, "Google Sheets Access Verification")
			fmt.Fprintln(out, strings.Repeat("=", 60))

			src, err := source.New(ctx, cfg)
			if err != nil {
				return err
			}

			info, err := src.Describe(ctx)
			if err != nil {
				return err
			}
			render.Describe(out, info)

			name := sheet
			if name == "" && len(info.Sheets) > 0 {
				name = info.Sheets[0]
			}
			if name == "" {
				return fmt.Errorf("%w: spreadsheet has no sheets", source.ErrSheetNotFound)
			}

			fmt.Fprintf(out, "\nReading data from sheet: '%s'...\n", name)
			grid, err := src.FetchSheet(ctx, name)
			if err != nil {
				return err
			}
			render.Preview(out, grid, rows)

			fmt.Fprintln(out)
			fmt.Fprintln(out, strings.Repeat("=", 60))
			fmt.Fprintln(out, "SUCCESS: sheet access verified!")
			fmt.Fprintln(out, strings.Repeat("=", 60))
			return nil
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 10, "Number of rows to preview")
	cmd.Flags().StringVar(&sheet, "sheet", "", "Sheet to preview (default: the first sheet)")
	cmd.Flags().StringVar(&sourceFile, "source-file", "", "Verify a local .xlsx or .csv snapshot instead of Google Sheets")

	return cmd
}
