// Package cli renders reports and failures for the terminal.
package cli

import (
	"errors"
	"fmt"
	"io"

	"polymarket_explorer/internal/apperr"
	"polymarket_explorer/internal/infra"
)

// ExitCode is the process exit status after a rendered failure.
const ExitCode = 1

// tips maps each pipeline stage to its remediation hint. The table is
// immutable process-wide static data; selection uses the top-level stage
// tag only, never the nested variant.
var tips = map[apperr.Stage]string{
	apperr.StageHTTP:          "check connectivity and URL correctness",
	apperr.StageDataSource:    "verify the identifier exists at the remote source",
	apperr.StageParse:         "the remote response shape may have changed",
	apperr.StageNormalization: "source data failed a consistency check",
	apperr.StageAnalysis:      "insufficient or stale data for the requested analysis",
	apperr.StageOutput:        "local output/formatting environment issue",
}

// Tip returns the remediation hint for a stage.
func Tip(stage apperr.Stage) string {
	if tip, ok := tips[stage]; ok {
		return tip
	}
	return "unexpected failure; re-run with POLY_LOG_LEVEL=debug for detail"
}

// Report writes the failure message and its stage tip to w. Errors that
// never went through promotion are printed as-is with the fallback tip.
func Report(w io.Writer, err error) {
	var appErr *apperr.AppError
	if !errors.As(err, &appErr) {
		fmt.Fprintf(w, "Error: %s\n", err)
		fmt.Fprintf(w, "Tip: %s\n", Tip(apperr.Stage(-1)))
		return
	}

	infra.GlobalMetrics.RecordFailure(int(appErr.Stage()))

	fmt.Fprintf(w, "Error: %s\n", appErr)
	fmt.Fprintf(w, "Tip: %s\n", Tip(appErr.Stage()))
}
