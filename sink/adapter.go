package sink

import "fmt"

// Record is one converted coordinate row on its way out of the pipeline.
type Record struct {
	Longitude float64
	Latitude  float64
	Elevation float64
	HasZ      bool // Elevation carries a value
}

// Adapter is the common behaviour every output driver exposes.
type Adapter interface {
	Configure(any) error // driver-specific config struct
	Push(Record) error   // consume one row
	Close() error        // flush; idempotent
}

/*──────── registry ───────*/

type factory = func() Adapter

var reg = map[string]factory{}

func Register(name string, f factory) { reg[name] = f }

func NewAdapter(name string) (Adapter, error) {
	if f, ok := reg[name]; ok {
		return f(), nil
	}
	return nil, fmt.Errorf("unknown sink %q", name)
}
