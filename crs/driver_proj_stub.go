//go:build !cgo

package crs

import (
	"context"
	"fmt"
)

// ProjAvailable reports whether this binary carries the native PROJ engine.
const ProjAvailable = false

func init() { Register("proj", func() Transformer { return &ProjDriver{} }) }

// ProjDriver is a placeholder in binaries built without cgo. Configure fails
// with guidance and no conversion ever proceeds.
type ProjDriver struct{}

func (d *ProjDriver) Configure(Config) error {
	return fmt.Errorf("proj: driver requires CGO (install PROJ >= 9 and build with CGO_ENABLED=1)")
}

func (d *ProjDriver) Transform(context.Context, int, int, []float64, []float64, []float64) ([]float64, []float64, []float64, error) {
	return nil, nil, nil, fmt.Errorf("proj: driver requires CGO (install PROJ >= 9 and build with CGO_ENABLED=1)")
}

func (d *ProjDriver) Close() error { return nil }
