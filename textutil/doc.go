// Package textutil provides bounded-text helpers for prompt and
// summary construction.
//
// Truncate enforces a character budget on arbitrary text with a
// deterministic marker, so that model inputs and fallback summaries
// stay within known sizes.
package textutil
