package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerPath_Default(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := LedgerPath()

	assert.Contains(t, path, "furone")
	assert.Equal(t, "furone.db", filepath.Base(path))
}

func TestLedgerPath_FromViper(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("ledger.path", "/tmp/custom/ledger.db")

	assert.Equal(t, "/tmp/custom/ledger.db", LedgerPath())
}

func TestLoadSheetsConfig_FromViper(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("sheets.service_account_path", "/path/to/key.json")
	viper.Set("sheets.spreadsheet_id", "sheet-id")
	viper.Set("sheets.sheet_name", "Transações")

	config, err := LoadSheetsConfig()

	require.NoError(t, err)
	assert.Equal(t, "/path/to/key.json", config.ServiceAccountPath)
	assert.Equal(t, "sheet-id", config.SpreadsheetID)
	assert.Equal(t, "Transações", config.SheetName)
}

func TestLoadSheetsConfig_MissingAuth(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("GOOGLE_SHEETS_SERVICE_ACCOUNT_PATH", "")
	t.Setenv("GOOGLE_SHEETS_CLIENT_ID", "")
	t.Setenv("GOOGLE_SHEETS_CLIENT_SECRET", "")
	t.Setenv("GOOGLE_SHEETS_REFRESH_TOKEN", "")
	t.Setenv("GOOGLE_SHEETS_SPREADSHEET_ID", "")

	_, err := LoadSheetsConfig()

	assert.Error(t, err)
}
