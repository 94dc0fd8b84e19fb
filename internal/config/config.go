// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"

	"github.com/LeoFurone/personal-finance-furone/internal/sheets"
	"github.com/spf13/viper"
)

// LoadSheetsConfig loads Google Sheets ledger configuration. Precedence:
// 1. Viper configuration (config file or FURONE_ env vars)
// 2. Direct environment variables (GOOGLE_SHEETS_*)
// 3. Default values
func LoadSheetsConfig() (*sheets.Config, error) {
	config := sheets.DefaultConfig()
	config.LoadFromEnv()

	if v := viper.GetString("sheets.service_account_path"); v != "" {
		config.ServiceAccountPath = v
	}
	if v := viper.GetString("sheets.client_id"); v != "" {
		config.ClientID = v
	}
	if v := viper.GetString("sheets.client_secret"); v != "" {
		config.ClientSecret = v
	}
	if v := viper.GetString("sheets.refresh_token"); v != "" {
		config.RefreshToken = v
	}
	if v := viper.GetString("sheets.spreadsheet_id"); v != "" {
		config.SpreadsheetID = v
	}
	if v := viper.GetString("sheets.sheet_name"); v != "" {
		config.SheetName = v
	}

	config.ServiceAccountPath = expandPath(config.ServiceAccountPath)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// LedgerPath returns the path of the local SQLite ledger database.
func LedgerPath() string {
	if v := viper.GetString("ledger.path"); v != "" {
		return expandPath(v)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "furone.db"
	}
	return filepath.Join(home, ".config", "furone", "furone.db")
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home + path[1:]
		}
	}
	return os.ExpandEnv(path)
}
