package apperr

import "fmt"

// OutputError is the closed set of failures raised by the final
// formatting/output step. Output is the terminal stage: an OutputError is
// never produced in response to presenting another OutputError.
type OutputError interface {
	error
	outputError()
}

var (
	_ OutputError = (*FormattingFailed)(nil)
	_ OutputError = (*WriteFailed)(nil)
)

// FormattingFailed reports data that could not be rendered for display.
type FormattingFailed struct {
	DataType string
	Reason   string
}

func (e *FormattingFailed) Error() string {
	return fmt.Sprintf("Failed to format %s for output: %s", e.DataType, e.Reason)
}

func (e *FormattingFailed) outputError() {}

// WriteFailed reports output that could not be written to its target.
type WriteFailed struct {
	Target string
	Reason string
}

func (e *WriteFailed) Error() string {
	return fmt.Sprintf("Failed to write output to %s: %s", e.Target, e.Reason)
}

func (e *WriteFailed) outputError() {}
