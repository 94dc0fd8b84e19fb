package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/LeoFurone/personal-finance-furone/internal/model"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Column layout of the ledger worksheet. Column B holds the entry kind and
// is counted to find the next free row; column N holds the statement
// identifier used for deduplication.
const (
	countColumn = "B"
	dedupColumn = "N"
	dedupHeader = "Id Nubank"
	lastColumn  = "N"
)

// Ledger implements service.Ledger against a Google Sheets spreadsheet.
// Appends are serialized through a mutex so that a single process never has
// two writers computing the same next free row.
type Ledger struct {
	service *sheets.Service
	logger  *slog.Logger
	config  Config
	writeMu sync.Mutex
}

// NewLedger creates a Google Sheets ledger.
func NewLedger(ctx context.Context, config Config, logger *slog.Logger) (*Ledger, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	srv, err := createSheetsService(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Ledger{
		service: srv,
		logger:  logger,
		config:  config,
	}, nil
}

// KnownIdentifiers reads the dedup column and returns the set of statement
// identifiers already recorded. The column header is excluded and values are
// trimmed of surrounding whitespace.
func (l *Ledger) KnownIdentifiers(ctx context.Context) (map[string]struct{}, error) {
	readRange := fmt.Sprintf("%s!%s:%s", l.config.SheetName, dedupColumn, dedupColumn)
	resp, err := l.service.Spreadsheets.Values.Get(l.config.SpreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read dedup column: %w", err)
	}

	known := collectIdentifiers(resp.Values)

	l.logger.Debug("loaded known identifiers", "count", len(known))

	return known, nil
}

// Append writes one record at the next free row, located by counting the
// existing values in the count column.
func (l *Ledger) Append(ctx context.Context, record model.LedgerRecord) error {
	l.writeMu.Lock()
	defer l.writeMu.Unlock()

	countRange := fmt.Sprintf("%s!%s:%s", l.config.SheetName, countColumn, countColumn)
	resp, err := l.service.Spreadsheets.Values.Get(l.config.SpreadsheetID, countRange).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to locate next free row: %w", err)
	}

	row := len(resp.Values) + 1
	writeRange := recordRange(l.config.SheetName, row)
	values := &sheets.ValueRange{
		Values: [][]any{record.Cells()},
	}

	_, err = l.service.Spreadsheets.Values.
		Update(l.config.SpreadsheetID, writeRange, values).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append record %s: %w", record.Identifier, err)
	}

	l.logger.Info("appended record to ledger",
		"identifier", record.Identifier,
		"row", row)

	return nil
}

// Close is a no-op; the underlying HTTP client needs no teardown.
func (l *Ledger) Close() error {
	return nil
}

// collectIdentifiers extracts the trimmed identifier set from a dedup-column
// read, skipping blanks and the column header.
func collectIdentifiers(rows [][]any) map[string]struct{} {
	known := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		id := strings.TrimSpace(fmt.Sprintf("%v", row[0]))
		if id == "" || id == dedupHeader {
			continue
		}
		known[id] = struct{}{}
	}
	return known
}

// recordRange returns the A1-notation range covering all 14 record columns
// of one row.
func recordRange(sheetName string, row int) string {
	return fmt.Sprintf("%s!A%d:%s%d", sheetName, row, lastColumn, row)
}

// createSheetsService creates a Google Sheets API service using either a
// service account key or OAuth2 credentials.
func createSheetsService(ctx context.Context, config Config) (*sheets.Service, error) {
	var tokenSource oauth2.TokenSource

	if config.ServiceAccountPath != "" {
		jsonKey, err := os.ReadFile(config.ServiceAccountPath)
		if err != nil {
			return nil, fmt.Errorf("unable to read service account key file: %w", err)
		}

		jwtConfig, err := google.JWTConfigFromJSON(jsonKey, sheets.SpreadsheetsScope)
		if err != nil {
			return nil, fmt.Errorf("unable to parse service account key: %w", err)
		}

		tokenSource = jwtConfig.TokenSource(ctx)
	} else {
		oauthConfig := &oauth2.Config{
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{sheets.SpreadsheetsScope},
		}

		token := &oauth2.Token{
			RefreshToken: config.RefreshToken,
			TokenType:    "Bearer",
		}

		tokenSource = oauthConfig.TokenSource(ctx, token)
	}

	httpClient := oauth2.NewClient(ctx, tokenSource)
	srv, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("unable to create sheets service: %w", err)
	}

	return srv, nil
}
