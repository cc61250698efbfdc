package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/costbook/internal/database"
	"github.com/MrJamesThe3rd/costbook/internal/importer"
	"github.com/MrJamesThe3rd/costbook/internal/report"
)

func newMigrateCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := e.open(cmd.Context()); err != nil {
				return err
			}

			if err := database.Migrate(e.db); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")

			return nil
		},
	}
}

func newImportCmd(e *env) *cobra.Command {
	var categoriesFile, costLinesFile string

	cmd := &cobra.Command{
		Use:   "import-categories",
		Short: "Replace categories and/or cost lines from CSV files",
		Example: `  costctl import-categories --categories categories.csv
  costctl import-categories --categories categories.csv --cost-lines cost_lines.csv`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if categoriesFile == "" && costLinesFile == "" {
				return fmt.Errorf("at least one of --categories or --cost-lines is required")
			}

			if err := e.open(cmd.Context()); err != nil {
				return err
			}

			ctx := cmd.Context()

			if categoriesFile != "" {
				data, err := os.ReadFile(categoriesFile)
				if err != nil {
					return err
				}

				names, err := importer.Categories(bytes.NewReader(data))
				if err != nil {
					return err
				}

				cats, err := e.app.Categories.ReplaceCategories(ctx, names)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "imported %d categories\n", len(cats))
			}

			if costLinesFile != "" {
				data, err := os.ReadFile(costLinesFile)
				if err != nil {
					return err
				}

				rows, err := importer.CostLines(bytes.NewReader(data))
				if err != nil {
					return err
				}

				lines, err := e.app.Categories.ReplaceCostLines(ctx, rows)
				if err != nil {
					return err
				}

				if err := e.app.Categories.Refresh(ctx); err != nil {
					return fmt.Errorf("refreshing balances: %w", err)
				}

				fmt.Fprintf(cmd.OutOrStdout(), "imported %d cost lines\n", len(lines))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&categoriesFile, "categories", "", "CSV with a header row and one category name per row")
	cmd.Flags().StringVar(&costLinesFile, "cost-lines", "", "CSV with columns category, cost_line, budget")

	return cmd
}

func newRenderPOCmd(e *env) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "render-po <purchase-order-id>",
		Short: "Render a purchase order PDF onto the configured letterhead",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid purchase order id: %w", err)
			}

			if err := e.open(cmd.Context()); err != nil {
				return err
			}

			data, order, _, err := e.app.PurchaseOrders.PDF(cmd.Context(), id)
			if err != nil {
				return err
			}

			if out == "" {
				out = order.Reference() + ".pdf"
			}

			if err := os.WriteFile(out, data, 0o644); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", out, len(data))

			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default <reference>.pdf)")

	return cmd
}

func newSyncContactsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "sync-contacts",
		Short: "Pull active Xero contacts into counterparties",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := e.open(cmd.Context()); err != nil {
				return err
			}

			res, err := e.app.Sync.SyncContacts(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "synced %d contacts, skipped %d\n", res.Synced, res.Skipped)

			return nil
		},
	}
}

func newPushBillCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "push-bill <bill-id>",
		Short: "Send an approved bill to Xero",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid bill id: %w", err)
			}

			if err := e.open(cmd.Context()); err != nil {
				return err
			}

			invoiceID, err := e.app.Sync.PushBill(cmd.Context(), id)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "bill %s sent as Xero invoice %s\n", id, invoiceID)

			return nil
		},
	}
}

func newExportCmd(e *env) *cobra.Command {
	var format, out string

	cmd := &cobra.Command{
		Use:   "export-committed",
		Short: "Write the committed cost summary as CSV or XLSX",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "csv" && format != "xlsx" {
				return fmt.Errorf("unknown format %q: use csv or xlsx", format)
			}

			if err := e.open(cmd.Context()); err != nil {
				return err
			}

			lines, err := e.app.Reports.Committed(cmd.Context())
			if err != nil {
				return err
			}

			var data []byte

			if format == "xlsx" {
				data, err = report.CommittedXLSX(lines)
				if err != nil {
					return err
				}
			} else {
				var buf bytes.Buffer
				if err := report.WriteCommittedCSV(&buf, lines); err != nil {
					return err
				}

				data = buf.Bytes()
			}

			if out == "" || out == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			return os.WriteFile(out, data, 0o644)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "csv", "csv or xlsx")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")

	return cmd
}
