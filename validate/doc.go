// Package validate gates tool outputs behind a declared schema before
// they cross back to a caller.
//
// Results produced at the model boundary are dynamically shaped; the
// gate re-establishes the type contract by parsing them against a
// Schema, applying declared defaults and coercions. Expected schema
// failures never surface as Go errors: they become a structured
// Outcome the caller can inspect and log. Only the OrError variant
// converts a failed outcome into an error, for call sites that want
// to bail out.
package validate
