// Package stdout prints converted rows, for dry runs and debugging.
package stdout

import (
	"fmt"

	"datumsync/sink"
)

/* ────────── public config ────────── */

type Config struct {
	PrintCounter bool `yaml:"print_counter"` // prepend seq#
}

/* ────────── driver ────────── */

type driver struct {
	cfg Config
	seq uint64
}

/* ────────── sink.Adapter ────────── */

func (d *driver) Configure(raw any) error {
	if raw == nil {
		return nil
	}
	c, ok := raw.(Config)
	if !ok {
		return fmt.Errorf("stdout-sink: expected Config, got %T", raw)
	}
	d.cfg = c
	return nil
}

func (d *driver) Push(r sink.Record) error {
	d.seq++
	if d.cfg.PrintCounter {
		fmt.Printf("[%06d] ", d.seq)
	}
	if r.HasZ {
		fmt.Printf("%.7f,%.7f,%.4f\n", r.Longitude, r.Latitude, r.Elevation)
	} else {
		fmt.Printf("%.7f,%.7f\n", r.Longitude, r.Latitude)
	}
	return nil
}

func (d *driver) Close() error { return nil }

/* ────────── auto-register ────────── */

func init() {
	sink.Register("stdout", func() sink.Adapter { return &driver{} })
}
