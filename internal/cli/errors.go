package cli

import (
	"errors"
	"strings"

	serrors "github.com/spetersoncode/skillinit/internal/errors"
)

// ExitCode returns the exit code for any error.
func ExitCode(err error) int {
	var serr *serrors.Error
	if errors.As(err, &serr) {
		return serr.CLIExitCode()
	}
	return ExitGeneralError
}

// FormatErrorMessage returns the formatted error with suggestion if available.
func FormatErrorMessage(err error) string {
	var b strings.Builder
	b.WriteString("Error: ")
	b.WriteString(err.Error())

	var serr *serrors.Error
	if errors.As(err, &serr) && serr.Suggestion != "" {
		b.WriteString("\n\nSuggestion: ")
		b.WriteString(serr.Suggestion)
	}
	return b.String()
}
