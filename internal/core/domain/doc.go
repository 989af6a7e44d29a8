// Package domain holds the core types of the eligibility checker: tokens
// and their lifecycle, the query and request shapes for the four upstream
// operations, the flattened display records the normalizer produces, and
// the tagged error types every boundary returns.
package domain
