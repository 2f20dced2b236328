package commands

import "net/http"

// Stage names the pipeline states in their strict linear order:
// received → authenticated → validated → enriched → assembled → published →
// responded. Every failure exit jumps straight to responded carrying a
// StageError. Received, authenticated and assembled have no failure exit
// here: auth failures abort in the transport middleware before the pipeline
// runs, and assembly is a pure stamp that cannot fail.
type Stage string

const (
	StageReceived      Stage = "received"
	StageAuthenticated Stage = "authenticated"
	StageValidated     Stage = "validated"
	StageEnriched      Stage = "enriched"
	StageAssembled     Stage = "assembled"
	StagePublished     Stage = "published"
)

// StageError is the single failure exit of the pipeline. The HTTP status is a
// pure function of the failing stage's error kind, fixed at construction.
type StageError struct {
	Stage   Stage
	Status  int
	Message string
	// Details is a []string for validation failures, a string otherwise.
	Details any
	cause   error
}

func (e *StageError) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *StageError) Unwrap() error {
	return e.cause
}

func newValidationFailure(details []string) *StageError {
	return &StageError{
		Stage:   StageValidated,
		Status:  http.StatusBadRequest,
		Message: "Validation failed",
		Details: details,
	}
}

func newEnrichmentFailure(enrichErr *EnrichmentError) *StageError {
	return &StageError{
		Stage:   StageEnriched,
		Status:  http.StatusBadGateway,
		Message: "Failed to enrich item with SKU " + enrichErr.SKU,
		Details: enrichErr.Cause.Error(),
		cause:   enrichErr,
	}
}

func newPublishFailure(cause error) *StageError {
	return &StageError{
		Stage:   StagePublished,
		Status:  http.StatusServiceUnavailable,
		Message: "Failed to publish order to queue",
		Details: cause.Error(),
		cause:   cause,
	}
}
