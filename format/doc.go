// Package format provides the display helpers the marketplace UI layers
// share: relative timestamps, price strings for the supported currencies,
// and pagination page ranges.
package format
