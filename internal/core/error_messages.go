// Package core implements the stock replenishment report.
//
// # Error Codes Reference
//
// User-facing messages carry a code so an operator can look up the fix
// without reading the technical error.
//
// # Sheet Layout Errors (HDR, COL)
//
//	HDR001 - Header row not found within the scan bound
//	         Action: Make sure a row near the top contains Sno and UID titles
//	         Patterns: "header row not found"
//
//	COL001 - Required column missing from the header row
//	         Action: Rename the column title so it contains an accepted term
//	         Patterns: "required column"
//
// # Source Errors (SRC)
//
//	SRC001 - Sheet or range not found
//	SRC002 - Permission denied (sheet not shared with the service account)
//	SRC003 - Service account file not found
//	SRC004 - Unsupported source file type
//
// # Export, Configuration and Run Errors
//
//	EXP001 - Export file could not be written
//	CFG001 - Configuration invalid
//	RUN001 - Run cancelled
//	RUN002 - Run timed out
//
// # Default Error (ERR000)
//
// Fallback when no specific pattern matches. Check the logs for the
// technical error.
//
// Patterns are matched case-insensitively with strings.Contains and the
// first match wins, so specific patterns come before general ones.
package core

import (
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened
	Action  string // What to do about it
	Code    string // Error code for support reference
}

type errorPattern struct {
	pattern string
	msg     UserMessage
}

var errorPatterns = []errorPattern{
	// =========================================================================
	// Sheet layout (HDR001, COL001)
	// =========================================================================
	{
		pattern: "header row not found",
		msg: UserMessage{
			Message: "Could not find the header row",
			Action:  "Make sure a row near the top of the sheet contains the Sno and UID column titles",
			Code:    "HDR001",
		},
	},
	{
		pattern: "required column",
		msg: UserMessage{
			Message: "A required column is missing from the header row",
			Action:  "Rename the column title in the sheet so it contains one of the searched terms",
			Code:    "COL001",
		},
	},

	// =========================================================================
	// Export (EXP001)
	// Must precede "permission denied": export errors can wrap one.
	// =========================================================================
	{
		pattern: "write export",
		msg: UserMessage{
			Message: "The export file could not be written",
			Action:  "Check that the output directory exists and is writable",
			Code:    "EXP001",
		},
	},

	// =========================================================================
	// Source (SRC001-SRC004)
	// =========================================================================
	{
		pattern: "sheet or range not found",
		msg: UserMessage{
			Message: "The spreadsheet, sheet or range was not found",
			Action:  "Check SPREADSHEET_ID, SHEET_NAME and SHEET_RANGE",
			Code:    "SRC001",
		},
	},
	{
		pattern: "permission denied",
		msg: UserMessage{
			Message: "The service account cannot read this spreadsheet",
			Action:  "Share the spreadsheet with the service account email",
			Code:    "SRC002",
		},
	},
	{
		pattern: "service account file not found",
		msg: UserMessage{
			Message: "Service account credentials file not found",
			Action:  "Set SERVICE_ACCOUNT_FILE to an existing JSON key file",
			Code:    "SRC003",
		},
	},
	{
		pattern: "unsupported source file",
		msg: UserMessage{
			Message: "Source file type is not supported",
			Action:  "Use a .xlsx, .xlsm or .csv snapshot",
			Code:    "SRC004",
		},
	},

	// =========================================================================
	// Configuration, run (CFG001, RUN001-RUN002)
	// =========================================================================
	{
		pattern: "config",
		msg: UserMessage{
			Message: "Configuration is invalid",
			Action:  "Check the .env file and environment variables",
			Code:    "CFG001",
		},
	},
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "Report run was cancelled",
			Action:  "Run the report again",
			Code:    "RUN001",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "Reading the sheet timed out",
			Action:  "Check your connection or raise SHEETS_TIMEOUT",
			Code:    "RUN002",
		},
	},
}

// defaultMessage is returned when no pattern matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Check the logs for details",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// If no pattern matches, the ERR000 fallback is returned.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())

	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError formats err as "Message (Code: XXX). Action".
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err matches a known pattern.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}
