// Package csvfile writes converted coordinate rows to a CSV file.
package csvfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"datumsync/sink"
)

/* ────────── public config ────────── */

type Config struct {
	Path    string   // output file, parent directories are created
	Columns []string // header row; empty writes no header
}

/* ────────── driver ────────── */

type driver struct {
	cfg Config
	f   *os.File
	w   *csv.Writer
}

/* ────────── sink.Adapter ────────── */

func (d *driver) Configure(raw any) error {
	c, ok := raw.(Config)
	if !ok {
		return fmt.Errorf("csv-sink: expected Config, got %T", raw)
	}
	if c.Path == "" {
		return fmt.Errorf("csv-sink: output path required")
	}
	if err := os.MkdirAll(filepath.Dir(c.Path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(c.Path)
	if err != nil {
		return err
	}
	d.cfg, d.f = c, f
	d.w = csv.NewWriter(f)
	if len(c.Columns) > 0 {
		return d.w.Write(c.Columns)
	}
	return nil
}

func (d *driver) Push(r sink.Record) error {
	if d.w == nil {
		return fmt.Errorf("csv-sink: not configured")
	}
	row := []string{fmtFloat(r.Longitude), fmtFloat(r.Latitude)}
	if r.HasZ {
		row = append(row, fmtFloat(r.Elevation))
	}
	return d.w.Write(row)
}

func (d *driver) Close() error {
	if d.w == nil {
		return nil
	}
	d.w.Flush()
	err := d.w.Error()
	if cerr := d.f.Close(); err == nil {
		err = cerr
	}
	d.w, d.f = nil, nil
	return err
}

/* ────────── internals ────────── */

func fmtFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

/* ────────── auto-register ────────── */

func init() {
	sink.Register("csv", func() sink.Adapter { return &driver{} })
}
