package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Override adjusts a loaded Config before validation. The CLI uses
// overrides to apply command-line flags on top of the environment.
type Override func(*Config)

// Load reads configuration from environment variables, applies overrides,
// and validates the result.
func Load(overrides ...Override) (*Config, error) {
	cfg := &Config{}

	if err := loadStruct(reflect.ValueOf(cfg).Elem()); err != nil {
		return nil, fmt.Errorf("config load: %w", err)
	}

	for _, o := range overrides {
		o(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// loadStruct recursively populates struct fields from environment variables.
func loadStruct(v reflect.Value) error {
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldVal := v.Field(i)

		if !fieldVal.CanSet() {
			continue
		}

		if field.Type.Kind() == reflect.Struct && field.Type != reflect.TypeOf(time.Time{}) {
			if err := loadStruct(fieldVal); err != nil {
				return err
			}
			continue
		}

		envName := field.Tag.Get("env")
		envAlt := field.Tag.Get("envAlt")
		defaultVal := field.Tag.Get("default")
		required := field.Tag.Get("required") == "true"

		if envName == "" {
			continue
		}

		// Try primary env var, then alternate
		value := os.Getenv(envName)
		if value == "" && envAlt != "" {
			value = os.Getenv(envAlt)
		}

		if value == "" {
			if required {
				return fmt.Errorf("required environment variable %s is not set", envName)
			}
			value = defaultVal
		}

		if value == "" {
			continue
		}

		if err := setField(fieldVal, value); err != nil {
			return fmt.Errorf("invalid value for %s=%q: %w", envName, value, err)
		}
	}

	return nil
}

// setField sets a reflect.Value from a string based on its type.
func setField(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int64:
		if field.Type() == reflect.TypeOf(time.Duration(0)) {
			d, err := time.ParseDuration(value)
			if err != nil {
				return fmt.Errorf("invalid duration: %w", err)
			}
			field.Set(reflect.ValueOf(d))
		} else {
			i, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer: %w", err)
			}
			field.SetInt(i)
		}

	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean: %w", err)
		}
		field.SetBool(b)

	default:
		return fmt.Errorf("unsupported field type: %s", field.Kind())
	}

	return nil
}

// Validate checks that the configuration is valid.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	var errs []string

	// Source validation: either a local snapshot or full Sheets credentials
	if !c.UseLocalFile() {
		if c.Sheets.SpreadsheetID == "" {
			errs = append(errs, "SPREADSHEET_ID is required (or set SOURCE_FILE)")
		}
		if c.Sheets.ServiceAccountFile == "" {
			errs = append(errs, "SERVICE_ACCOUNT_FILE is required (or set SOURCE_FILE)")
		}
		if c.Sheets.SheetName == "" {
			errs = append(errs, "SHEET_NAME must not be empty")
		}
	}
	if c.Sheets.Timeout <= 0 {
		errs = append(errs, "SHEETS_TIMEOUT must be positive")
	}

	// Report validation
	if c.Report.MaxHeaderRows <= 0 {
		errs = append(errs, "REPORT_MAX_HEADER_ROWS must be positive")
	}
	if c.Report.Output == "" {
		errs = append(errs, "REPORT_OUTPUT must not be empty")
	}
	validReportFormats := map[string]bool{"csv": true, "xlsx": true}
	if !validReportFormats[strings.ToLower(c.Report.Format)] {
		errs = append(errs, fmt.Sprintf("REPORT_FORMAT (%q) must be one of: csv, xlsx", c.Report.Format))
	}

	// Server validation
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("SERVER_PORT (%d) must be 1-65535", c.Server.Port))
	}
	if c.Server.ReadTimeout < 0 {
		errs = append(errs, "SERVER_READ_TIMEOUT must be non-negative")
	}
	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, "SERVER_SHUTDOWN_TIMEOUT must be positive")
	}
	if c.Server.RequestTimeout <= 0 {
		errs = append(errs, "SERVER_REQUEST_TIMEOUT must be positive")
	}

	// Logging validation
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL (%q) must be one of: debug, info, warn, error", c.Logging.Level))
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, fmt.Sprintf("LOG_FORMAT (%q) must be one of: text, json", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// String returns a safe string representation of the config for logging.
// The credentials path is masked.
func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("Config{")
	if c.UseLocalFile() {
		b.WriteString(fmt.Sprintf("Source: {File: %q, Sheet: %q}, ", c.Source.File, c.Source.Sheet))
	} else {
		b.WriteString(fmt.Sprintf("Sheets: {SpreadsheetID: %q, ServiceAccountFile: [MASKED], SheetName: %q, Range: %q}, ",
			c.Sheets.SpreadsheetID, c.Sheets.SheetName, c.Sheets.Range))
	}
	b.WriteString(fmt.Sprintf("Report: {MaxHeaderRows: %d, Output: %q, Format: %q}, ",
		c.Report.MaxHeaderRows, c.Report.Output, c.Report.Format))
	b.WriteString(fmt.Sprintf("Server: {Host: %q, Port: %d}, ", c.Server.Host, c.Server.Port))
	b.WriteString(fmt.Sprintf("Logging: {Level: %q, Format: %q}",
		c.Logging.Level, c.Logging.Format))
	b.WriteString("}")
	return b.String()
}
