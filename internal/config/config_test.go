package config

import (
	"strings"
	"testing"
	"time"
)

// clearEnv blanks every variable the loader reads so the host environment
// cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"SPREADSHEET_ID", "SERVICE_ACCOUNT_FILE", "GOOGLE_APPLICATION_CREDENTIALS",
		"SHEET_NAME", "SHEET_RANGE", "SHEETS_TIMEOUT",
		"SOURCE_FILE", "SOURCE_SHEET",
		"REPORT_MAX_HEADER_ROWS", "REPORT_OUTPUT", "REPORT_FORMAT",
		"SERVER_HOST", "SERVER_PORT", "SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT",
		"SERVER_IDLE_TIMEOUT", "SERVER_SHUTDOWN_TIMEOUT", "SERVER_REQUEST_TIMEOUT",
		"LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(k, "")
	}
}

func setSheetsEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SPREADSHEET_ID", "sheet-123")
	t.Setenv("SERVICE_ACCOUNT_FILE", "service-account.json")
}

func validConfig() *Config {
	return &Config{
		Sheets:  SheetsConfig{SpreadsheetID: "sheet-123", ServiceAccountFile: "sa.json", SheetName: "Stock", Timeout: time.Second},
		Report:  ReportConfig{MaxHeaderRows: 10, Output: "out.csv", Format: "csv"},
		Server:  ServerConfig{Port: 8080, ShutdownTimeout: time.Second, RequestTimeout: time.Second},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	setSheetsEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Sheets.SheetName != "STOCK SHEET (Add New Item here)" {
		t.Errorf("Sheets.SheetName = %q, want %q", cfg.Sheets.SheetName, "STOCK SHEET (Add New Item here)")
	}
	if cfg.Sheets.Timeout != 30*time.Second {
		t.Errorf("Sheets.Timeout = %v, want %v", cfg.Sheets.Timeout, 30*time.Second)
	}
	if cfg.Report.MaxHeaderRows != 10 {
		t.Errorf("Report.MaxHeaderRows = %d, want %d", cfg.Report.MaxHeaderRows, 10)
	}
	if cfg.Report.Output != "replenishment_items.csv" {
		t.Errorf("Report.Output = %q, want %q", cfg.Report.Output, "replenishment_items.csv")
	}
	if cfg.Report.Format != "csv" {
		t.Errorf("Report.Format = %q, want %q", cfg.Report.Format, "csv")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 8080)
	}
	if cfg.UseLocalFile() {
		t.Error("UseLocalFile() = true, want false")
	}
}

func TestLoad_OverrideDefaults(t *testing.T) {
	clearEnv(t)
	setSheetsEnv(t)
	t.Setenv("REPORT_MAX_HEADER_ROWS", "25")
	t.Setenv("REPORT_FORMAT", "xlsx")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SHEETS_TIMEOUT", "1m30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Report.MaxHeaderRows != 25 {
		t.Errorf("Report.MaxHeaderRows = %d, want %d", cfg.Report.MaxHeaderRows, 25)
	}
	if cfg.Report.Format != "xlsx" {
		t.Errorf("Report.Format = %q, want %q", cfg.Report.Format, "xlsx")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
	if cfg.Sheets.Timeout != 90*time.Second {
		t.Errorf("Sheets.Timeout = %v, want %v", cfg.Sheets.Timeout, 90*time.Second)
	}
}

func TestLoad_AltEnvVar(t *testing.T) {
	clearEnv(t)
	t.Setenv("SPREADSHEET_ID", "sheet-123")
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "/etc/creds.json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Sheets.ServiceAccountFile != "/etc/creds.json" {
		t.Errorf("Sheets.ServiceAccountFile = %q, want %q", cfg.Sheets.ServiceAccountFile, "/etc/creds.json")
	}
}

func TestLoad_MissingSheetsSettings(t *testing.T) {
	clearEnv(t)

	_, err := Load()
	if err == nil {
		t.Fatal("Load() expected error for missing SPREADSHEET_ID and SERVICE_ACCOUNT_FILE")
	}
	if !strings.Contains(err.Error(), "SPREADSHEET_ID") {
		t.Errorf("error should mention SPREADSHEET_ID: %v", err)
	}
	if !strings.Contains(err.Error(), "SERVICE_ACCOUNT_FILE") {
		t.Errorf("error should mention SERVICE_ACCOUNT_FILE: %v", err)
	}
}

func TestLoad_LocalFileSkipsSheetsSettings(t *testing.T) {
	clearEnv(t)
	t.Setenv("SOURCE_FILE", "stock.xlsx")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.UseLocalFile() {
		t.Error("UseLocalFile() = false, want true")
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(func(c *Config) {
		c.Source.File = "snapshot.csv"
		c.Report.Output = "custom.csv"
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Source.File != "snapshot.csv" {
		t.Errorf("Source.File = %q, want %q", cfg.Source.File, "snapshot.csv")
	}
	if cfg.Report.Output != "custom.csv" {
		t.Errorf("Report.Output = %q, want %q", cfg.Report.Output, "custom.csv")
	}
}

func TestLoad_InvalidInteger(t *testing.T) {
	clearEnv(t)
	setSheetsEnv(t)
	t.Setenv("SERVER_PORT", "eighty")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() expected error for non-numeric SERVER_PORT")
	}
	if !strings.Contains(err.Error(), "SERVER_PORT") {
		t.Errorf("error should mention SERVER_PORT: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"invalid port", func(c *Config) { c.Server.Port = 99999 }, "SERVER_PORT"},
		{"invalid log level", func(c *Config) { c.Logging.Level = "verbose" }, "LOG_LEVEL"},
		{"invalid log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
		{"invalid report format", func(c *Config) { c.Report.Format = "pdf" }, "REPORT_FORMAT"},
		{"zero header rows", func(c *Config) { c.Report.MaxHeaderRows = 0 }, "REPORT_MAX_HEADER_ROWS"},
		{"empty output", func(c *Config) { c.Report.Output = "" }, "REPORT_OUTPUT"},
		{"zero sheets timeout", func(c *Config) { c.Sheets.Timeout = 0 }, "SHEETS_TIMEOUT"},
		{"empty sheet name", func(c *Config) { c.Sheets.SheetName = "" }, "SHEET_NAME"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error mentioning %s", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error should mention %s: %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = 0
	cfg.Logging.Level = "loud"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error")
	}
	if !strings.Contains(err.Error(), "SERVER_PORT") || !strings.Contains(err.Error(), "LOG_LEVEL") {
		t.Errorf("error should list every failure: %v", err)
	}
}

func TestServerAddr(t *testing.T) {
	tests := []struct {
		host string
		port int
		want string
	}{
		{"", 8080, ":8080"},
		{"0.0.0.0", 8080, "0.0.0.0:8080"},
		{"127.0.0.1", 3000, "127.0.0.1:3000"},
	}

	for _, tt := range tests {
		cfg := &ServerConfig{Host: tt.host, Port: tt.port}
		got := cfg.Addr()
		if got != tt.want {
			t.Errorf("Addr() with host=%q, port=%d = %q, want %q", tt.host, tt.port, got, tt.want)
		}
	}
}

func TestConfigString_MasksCredentials(t *testing.T) {
	cfg := validConfig()
	cfg.Sheets.ServiceAccountFile = "/secret/keys/prod.json"

	str := cfg.String()
	if strings.Contains(str, "/secret/keys") {
		t.Error("String() should mask the service account file")
	}
	if !strings.Contains(str, "MASKED") {
		t.Error("String() should contain MASKED placeholder")
	}
	if !strings.Contains(str, "sheet-123") {
		t.Error("String() should include the spreadsheet id")
	}
}
