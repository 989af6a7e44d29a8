// Package normalizer flattens the upstream API's deeply nested,
// optionally-populated JSON documents into the typed display records of the
// domain package. Every function is pure, never mutates its input, and
// tolerates any field being absent: missing data degrades to "N/A" or empty
// defaults because upstream payloads are sparse depending on plan and payer.
package normalizer
