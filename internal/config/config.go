// Package config provides centralized configuration management for the application.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
package config

import (
	"strconv"
	"time"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Sheets  SheetsConfig
	Source  SourceConfig
	Report  ReportConfig
	Server  ServerConfig
	Logging LoggingConfig
}

// SheetsConfig identifies the remote spreadsheet and the credentials used to
// read it. It is passed whole to the Sheets source at construction.
type SheetsConfig struct {
	// SpreadsheetID is the id from the spreadsheet URL (required unless SOURCE_FILE is set)
	SpreadsheetID string `env:"SPREADSHEET_ID"`

	// ServiceAccountFile is the path to the service account JSON key (required unless SOURCE_FILE is set)
	ServiceAccountFile string `env:"SERVICE_ACCOUNT_FILE" envAlt:"GOOGLE_APPLICATION_CREDENTIALS"`

	// SheetName is the tab to read (default: STOCK SHEET (Add New Item here))
	SheetName string `env:"SHEET_NAME" default:"STOCK SHEET (Add New Item here)"`

	// Range is an optional A1 range within the tab, e.g. "A1:Z500"
	Range string `env:"SHEET_RANGE"`

	// Timeout bounds the remote read (default: 30s)
	Timeout time.Duration `env:"SHEETS_TIMEOUT" default:"30s"`
}

// SourceConfig selects a local snapshot instead of the Sheets API.
type SourceConfig struct {
	// File is a local .xlsx, .xlsm or .csv snapshot
	File string `env:"SOURCE_FILE"`

	// Sheet is the worksheet to read from an xlsx file (default: first sheet)
	Sheet string `env:"SOURCE_SHEET"`
}

// ReportConfig holds report and export settings.
type ReportConfig struct {
	// MaxHeaderRows is how many leading rows are scanned for the header (default: 10)
	MaxHeaderRows int `env:"REPORT_MAX_HEADER_ROWS" default:"10"`

	// Output is the export file path (default: replenishment_items.csv)
	Output string `env:"REPORT_OUTPUT" default:"replenishment_items.csv"`

	// Format is the export format: csv or xlsx (default: csv)
	Format string `env:"REPORT_FORMAT" default:"csv"`
}

// ServerConfig holds HTTP server settings for the serve command.
type ServerConfig struct {
	// Host is the interface to bind to (default: 127.0.0.1)
	Host string `env:"SERVER_HOST" default:"127.0.0.1"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading the request (default: 15s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing the response (default: 60s)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"60s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 30s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`

	// RequestTimeout is the middleware timeout for requests (default: 60s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"60s"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// UseLocalFile reports whether the report reads a local snapshot instead of
// the Sheets API.
func (c *Config) UseLocalFile() bool {
	return c.Source.File != ""
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}
