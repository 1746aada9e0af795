package crs

import (
	"context"
	"errors"
)

func init() { Register("identity", func() Transformer { return &IdentityDriver{} }) }

// IdentityDriver passes coordinates through untouched. It serves identity
// pairs without a projection engine; any distinct pair is refused.
type IdentityDriver struct{}

func (d *IdentityDriver) Configure(Config) error { return nil }

func (d *IdentityDriver) Transform(_ context.Context, sourceEPSG, targetEPSG int, x, y, z []float64) ([]float64, []float64, []float64, error) {
	if sourceEPSG != targetEPSG {
		return nil, nil, nil, &InvalidCRSError{
			SourceEPSG: sourceEPSG,
			TargetEPSG: targetEPSG,
			Err:        errors.New("identity driver cannot re-project"),
		}
	}
	var tz []float64
	if z != nil {
		tz = append([]float64(nil), z...)
	}
	return append([]float64(nil), x...), append([]float64(nil), y...), tz, nil
}

func (d *IdentityDriver) Close() error { return nil }
