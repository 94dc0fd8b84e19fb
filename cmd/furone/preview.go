package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/LeoFurone/personal-finance-furone/internal/cli"
	"github.com/LeoFurone/personal-finance-furone/internal/common"
	"github.com/LeoFurone/personal-finance-furone/internal/review"
	"github.com/LeoFurone/personal-finance-furone/internal/statement"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func previewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <statement.csv>",
		Short: "Show which rows a review would cover, without reviewing",
		Long: `Parse and filter a statement export, then list the rows that would be
offered for review. With --ledger none the dedup check is skipped and all
filter-eligible rows are listed.`,
		Args: cobra.ExactArgs(1),
		RunE: runPreview,
	}

	cmd.Flags().String("ledger", "none", "ledger backend for the dedup check (sheets, local, none)")

	_ = viper.BindPFlag("preview.ledger", cmd.Flags().Lookup("ledger"))

	return cmd
}

func runPreview(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	entries, err := statement.ParseFile(args[0])
	if err != nil {
		if errors.Is(err, common.ErrInvalidStatement) {
			return common.NewUserError("Could not read the statement: make sure it is a valid CSV export", err)
		}
		return err
	}

	known := map[string]struct{}{}
	if backend := viper.GetString("preview.ledger"); backend != "none" {
		ledger, _, openErr := openLedger(ctx, backend)
		if openErr != nil {
			return openErr
		}
		defer func() {
			_ = ledger.Close()
		}()

		known, err = ledger.KnownIdentifiers(ctx)
		if err != nil {
			return fmt.Errorf("failed to load recorded identifiers: %w", err)
		}
	}

	batch := review.Filter(entries, known)
	slog.Info("Filtered statement", "rows", len(entries), "eligible", len(batch))

	if len(batch) == 0 {
		fmt.Println(cli.FormatSuccess("Nothing to review: no new expenses in this statement."))
		return nil
	}

	var b strings.Builder
	for i, entry := range batch {
		fmt.Fprintf(&b, "%2d. %s\n", i+1, entry.Summary())
	}
	fmt.Fprintf(&b, "\n%d row(s) would be offered for review.", len(batch))
	fmt.Println(cli.RenderBox("Review Preview", b.String()))

	return nil
}
