// Package statement parses Nubank CSV statement exports into statement
// entries.
package statement

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/LeoFurone/personal-finance-furone/internal/common"
	"github.com/LeoFurone/personal-finance-furone/internal/model"
	"github.com/shopspring/decimal"
)

// Column headers required in the export.
const (
	headerIdentifier  = "Identificador"
	headerDate        = "Data"
	headerAmount      = "Valor"
	headerDescription = "Descrição"
)

// Parse reads a statement CSV. The header row must contain the required
// columns; column order does not matter. A row whose amount cell is not
// numeric is carried with AmountValid unset rather than failing the whole
// file; an unreadable file or a missing column is fatal.
func Parse(r io.Reader) ([]model.StatementEntry, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: unable to read header: %v", common.ErrInvalidStatement, err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		// Strip the UTF-8 BOM some exports carry on the first cell.
		index[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	for _, required := range []string{headerIdentifier, headerDate, headerAmount, headerDescription} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", common.ErrInvalidStatement, required)
		}
	}

	var entries []model.StatementEntry
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrInvalidStatement, err)
		}

		entry := model.StatementEntry{
			Identifier:  strings.TrimSpace(record[index[headerIdentifier]]),
			Date:        strings.TrimSpace(record[index[headerDate]]),
			Description: strings.TrimSpace(record[index[headerDescription]]),
		}
		if amount, parseErr := decimal.NewFromString(strings.TrimSpace(record[index[headerAmount]])); parseErr == nil {
			entry.Amount = amount
			entry.AmountValid = true
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

// ParseFile reads a statement CSV from disk.
func ParseFile(path string) ([]model.StatementEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open statement: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	return Parse(f)
}
