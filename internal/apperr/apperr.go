// Package apperr defines the failure model for the explorer pipeline:
// one closed set of failure variants per stage (HTTP, data source, parse,
// normalization, analysis, output) and a single top-level AppError that
// wraps exactly one stage failure for propagation to the process boundary.
package apperr

// Stage identifies which pipeline stage produced a failure.
type Stage int

const (
	StageHTTP Stage = iota
	StageDataSource
	StageParse
	StageNormalization
	StageAnalysis
	StageOutput
)

// String returns a stable machine-readable stage name.
func (s Stage) String() string {
	switch s {
	case StageHTTP:
		return "http"
	case StageDataSource:
		return "data_source"
	case StageParse:
		return "parse"
	case StageNormalization:
		return "normalization"
	case StageAnalysis:
		return "analysis"
	case StageOutput:
		return "output"
	}
	return "unknown"
}

// label is the human-readable prefix used in rendered messages.
func (s Stage) label() string {
	switch s {
	case StageHTTP:
		return "HTTP Error"
	case StageDataSource:
		return "Data Source Error"
	case StageParse:
		return "Parse Error"
	case StageNormalization:
		return "Normalization Error"
	case StageAnalysis:
		return "Analysis Error"
	case StageOutput:
		return "Output Error"
	}
	return "Error"
}

// AppError is the top-level failure type. It holds exactly one stage
// failure, tagged by the stage that produced it. Wrapping is lossless:
// the stage failure is stored as-is and can be recovered via errors.As.
type AppError struct {
	stage Stage
	err   error
}

func (e *AppError) Error() string {
	return e.stage.label() + ": " + e.err.Error()
}

// Unwrap exposes the wrapped stage failure to errors.Is / errors.As.
func (e *AppError) Unwrap() error { return e.err }

// Stage reports which pipeline stage produced the wrapped failure.
func (e *AppError) Stage() Stage { return e.stage }

// Promotion constructors, one per stage. Each is total: every stage
// failure value has exactly one top-level wrapping. A stage failure is
// promoted at most once; an *AppError is never wrapped again.

// HTTP promotes a transport-stage failure.
func HTTP(err HTTPError) *AppError {
	return &AppError{stage: StageHTTP, err: err}
}

// DataSource promotes a data-source-stage failure.
func DataSource(err DataSourceError) *AppError {
	return &AppError{stage: StageDataSource, err: err}
}

// Parse promotes a parse-stage failure.
func Parse(err ParseError) *AppError {
	return &AppError{stage: StageParse, err: err}
}

// Normalization promotes a normalization-stage failure.
func Normalization(err NormalizationError) *AppError {
	return &AppError{stage: StageNormalization, err: err}
}

// Analysis promotes an analysis-stage failure.
func Analysis(err AnalysisError) *AppError {
	return &AppError{stage: StageAnalysis, err: err}
}

// Output promotes an output-stage failure. Output is the terminal stage:
// its failures are wrapped here once and never re-wrapped.
func Output(err OutputError) *AppError {
	return &AppError{stage: StageOutput, err: err}
}
