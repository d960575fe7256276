package summary

import "errors"

var (
	// ErrMissingAPIKey indicates a model backend was constructed
	// without a usable API key. Configuration problems surface at
	// construction, never mid-pipeline.
	ErrMissingAPIKey = errors.New("summary: missing API key")

	// ErrEmptyCompletion indicates the model returned no usable text.
	ErrEmptyCompletion = errors.New("summary: model returned an empty completion")

	// ErrMissingStore indicates the Service was constructed without a
	// policy store.
	ErrMissingStore = errors.New("summary: policy store is required")

	// ErrMissingBaseURL indicates the HTTP policy store was
	// constructed without an upstream URL.
	ErrMissingBaseURL = errors.New("summary: policy store base URL is required")
)
