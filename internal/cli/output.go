package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// Exit codes. 0 means the command succeeded and all checks passed,
// 1 means the command ran but at least one check failed, and 2 means
// the command itself could not run (bad flags, unreadable files,
// invalid scenarios).
const (
	ExitOK          = 0
	ExitCheckFailed = 1
	ExitUsage       = 2
)

// ExitError carries an exit code alongside an error so that main can
// translate command failures into process exit statuses.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// NewExitError creates an ExitError with the given code and underlying error.
func NewExitError(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

// GetExitCode extracts the exit code from an error. A nil error maps
// to ExitOK and a non-ExitError maps to ExitUsage.
func GetExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if ee, ok := err.(*ExitError); ok {
		return ee.Code
	}
	return ExitUsage
}

// CLIResponse is the envelope for JSON output.
type CLIResponse struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
}

// OutputFormatter writes command results in the selected format.
type OutputFormatter struct {
	format string
	out    io.Writer
}

// NewOutputFormatter creates a formatter writing to out.
func NewOutputFormatter(format string, out io.Writer) *OutputFormatter {
	return &OutputFormatter{format: format, out: out}
}

// Success writes a success response. In text mode data is expected to
// be a string and is written verbatim.
func (f *OutputFormatter) Success(data any) error {
	if f.format == "json" {
		return f.writeJSON(CLIResponse{Status: "ok", Data: data})
	}
	if s, ok := data.(string); ok {
		_, err := fmt.Fprint(f.out, s)
		return err
	}
	_, err := fmt.Fprintln(f.out, data)
	return err
}

// Failure writes a failure response.
func (f *OutputFormatter) Failure(msg string, data any) error {
	if f.format == "json" {
		return f.writeJSON(CLIResponse{Status: "failed", Data: data, Error: msg})
	}
	_, err := fmt.Fprintln(f.out, msg)
	return err
}

func (f *OutputFormatter) writeJSON(resp CLIResponse) error {
	enc := json.NewEncoder(f.out)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}
