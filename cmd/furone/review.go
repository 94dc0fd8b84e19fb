package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/LeoFurone/personal-finance-furone/internal/cli"
	"github.com/LeoFurone/personal-finance-furone/internal/common"
	"github.com/LeoFurone/personal-finance-furone/internal/config"
	"github.com/LeoFurone/personal-finance-furone/internal/review"
	"github.com/LeoFurone/personal-finance-furone/internal/service"
	"github.com/LeoFurone/personal-finance-furone/internal/sheets"
	"github.com/LeoFurone/personal-finance-furone/internal/statement"
	"github.com/LeoFurone/personal-finance-furone/internal/storage"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func reviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review <statement.csv>",
		Short: "Review a statement export interactively",
		Long: `Walk a Nubank CSV export row by row. Rows already in the ledger, credit
card bill payments and incoming amounts are filtered out; each remaining
expense is classified through three questions and appended to the ledger.

Type /cancel at any prompt to abort without saving the current row.`,
		Args: cobra.ExactArgs(1),
		RunE: runReview,
	}

	cmd.Flags().String("ledger", "sheets", "ledger backend (sheets, local)")
	cmd.Flags().Bool("no-progress", false, "disable the progress bar")

	_ = viper.BindPFlag("review.ledger", cmd.Flags().Lookup("ledger"))
	_ = viper.BindPFlag("review.no_progress", cmd.Flags().Lookup("no-progress"))

	return cmd
}

func runReview(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	fmt.Println(cli.FormatTitle("Statement review"))

	entries, err := statement.ParseFile(args[0])
	if err != nil {
		if errors.Is(err, common.ErrInvalidStatement) {
			return common.NewUserError("Could not read the statement: make sure it is a valid CSV export", err)
		}
		return err
	}

	ledger, engineConfig, err := openLedger(ctx, viper.GetString("review.ledger"))
	if err != nil {
		return err
	}
	defer func() {
		_ = ledger.Close()
	}()

	known, err := ledger.KnownIdentifiers(ctx)
	if err != nil {
		return fmt.Errorf("failed to load recorded identifiers: %w", err)
	}

	batch := review.Filter(entries, known)
	slog.Info("Filtered statement",
		"rows", len(entries),
		"already_recorded", len(known),
		"eligible", len(batch))

	conv := cli.NewConversation(nil, nil)
	if !viper.GetBool("review.no_progress") && len(batch) > 0 {
		conv.TrackProgress(len(batch))
	}

	session := review.NewSession(batch)
	engine := review.NewWithConfig(ledger, conv, engineConfig)

	stats, err := engine.Run(ctx, session)
	if errors.Is(err, common.ErrReviewCanceled) {
		fmt.Println(cli.FormatWarning("Review canceled; nothing else was saved."))
		return nil
	}
	if err != nil {
		return err
	}

	content := fmt.Sprintf(`Eligible rows: %d
Saved:         %d
Skipped:       %d
Duration:      %s`,
		stats.Eligible, stats.Written, stats.Skipped, stats.Duration.Round(time.Millisecond))
	fmt.Println(cli.RenderBox("Review Summary", content))

	return nil
}

// openLedger builds the configured ledger backend along with the engine
// configuration matching it. The sheets backend carries its own retry
// settings; the local backend keeps the defaults.
func openLedger(ctx context.Context, backend string) (service.Ledger, review.Config, error) {
	engineConfig := review.DefaultConfig()

	switch backend {
	case "local":
		ledger, err := storage.NewSQLiteLedger(config.LedgerPath())
		return ledger, engineConfig, err
	case "sheets":
		sheetsConfig, err := config.LoadSheetsConfig()
		if err != nil {
			return nil, engineConfig, common.NewUserError("Google Sheets is not configured", err)
		}
		engineConfig.Retry.MaxAttempts = sheetsConfig.RetryAttempts
		engineConfig.Retry.InitialDelay = sheetsConfig.RetryDelay
		ledger, err := sheets.NewLedger(ctx, *sheetsConfig, slog.Default())
		return ledger, engineConfig, err
	default:
		return nil, engineConfig, fmt.Errorf("%w: unknown ledger backend %q", common.ErrInvalidConfig, backend)
	}
}
