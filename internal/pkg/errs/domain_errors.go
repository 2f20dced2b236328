package errs

import "errors"

// Sentinel errors shared between the infra gateways and the assembly pipeline
var (
	// Catalog errors
	ErrSKUNotFound        = errors.New("sku not found in catalog")
	ErrCatalogTimeout     = errors.New("catalog lookup timed out")
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	// Queue errors
	ErrQueuePublishFailed = errors.New("queue publish failed")
)
