// Package gateway implements the HTTP client for the eligibility API: one
// thin method per upstream operation, returning raw response documents and
// structured errors. Response interpretation beyond the card image/JSON
// split belongs to the normalizer.
package gateway
