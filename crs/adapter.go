// Package crs converts coordinate triples between EPSG-coded reference
// systems through pluggable transform drivers.
package crs

import "context"

// Config carries options shared by all transform drivers.
type Config struct {
	Network bool `koanf:"network"` // allow remote transformation-grid downloads
}

// Transformer is the injected projection capability. Implementations wrap a
// projection engine (or a test double) and must be deterministic: the same
// request yields the same output.
type Transformer interface {
	Configure(Config) error

	// Transform converts equal-length x/y(/z) slices from the source EPSG
	// code to the target one. z may be nil for a 2D conversion. Returned
	// slices are freshly allocated and never alias the inputs.
	Transform(ctx context.Context, sourceEPSG, targetEPSG int, x, y, z []float64) (tx, ty, tz []float64, err error)

	Close() error
}
