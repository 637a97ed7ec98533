package apperr

import (
	"fmt"
	"time"
)

// AnalysisError is the closed set of failures raised by the analytical
// engine.
type AnalysisError interface {
	error
	analysisError()
}

var (
	_ AnalysisError = (*InsufficientData)(nil)
	_ AnalysisError = (*CalculationFailed)(nil)
	_ AnalysisError = (*InvalidPosition)(nil)
	_ AnalysisError = (*StatisticalError)(nil)
	_ AnalysisError = (*StaleData)(nil)
)

// InsufficientData reports an analysis that lacks the inputs it needs.
type InsufficientData struct {
	AnalysisType string
	Reason       string
}

func (e *InsufficientData) Error() string {
	return fmt.Sprintf("Insufficient data for %s analysis: %s", e.AnalysisType, e.Reason)
}

func (e *InsufficientData) analysisError() {}

// CalculationFailed reports a calculation that could not complete.
type CalculationFailed struct {
	AnalysisType string
	Reason       string
}

func (e *CalculationFailed) Error() string {
	return fmt.Sprintf("%s calculation failed: %s", e.AnalysisType, e.Reason)
}

func (e *CalculationFailed) analysisError() {}

// InvalidPosition reports position data the engine refuses to analyze.
type InvalidPosition struct {
	PositionID string
	Reason     string
}

func (e *InvalidPosition) Error() string {
	return fmt.Sprintf("Invalid position '%s': %s", e.PositionID, e.Reason)
}

func (e *InvalidPosition) analysisError() {}

// StatisticalError reports a statistical computation that degenerated.
type StatisticalError struct {
	AnalysisType string
	Reason       string
}

func (e *StatisticalError) Error() string {
	return fmt.Sprintf("Statistical error in %s analysis: %s", e.AnalysisType, e.Reason)
}

func (e *StatisticalError) analysisError() {}

// StaleData reports inputs older than the analysis tolerates. Both the
// observed age and the configured maximum are carried so the message is
// self-explanatory.
type StaleData struct {
	AnalysisType string
	Age          time.Duration
	MaxAge       time.Duration
}

func (e *StaleData) Error() string {
	return fmt.Sprintf("Stale data for %s analysis: age %s exceeds maximum %s",
		e.AnalysisType, e.Age, e.MaxAge)
}

func (e *StaleData) analysisError() {}
