// Generates synthetic coastal sample CSVs for the examples: points along a
// stretch of the Chesapeake shoreline with small tidal-zone elevations.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
)

func writeFixture(path string, header []string, n int, withZ bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		lon := -76.5 + 0.8*t
		lat := 38.9 - 1.4*t + 0.05*math.Sin(12*t)
		row := []string{
			strconv.FormatFloat(lon, 'f', 6, 64),
			strconv.FormatFloat(lat, 'f', 6, 64),
		}
		if withZ {
			elev := 2.5 + 2.0*math.Sin(6*t) // meters above the local datum
			row = append(row, strconv.FormatFloat(elev, 'f', 3, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func main() {
	outDir := flag.String("out", "testdata", "directory for generated fixtures")
	n := flag.Int("n", 25, "points per file")
	flag.Parse()

	fixtures := []struct {
		name   string
		header []string
		withZ  bool
	}{
		{"coastal_xyz.csv", []string{"longitude", "latitude", "elevation"}, true},
		// alias headers exercise the column matcher
		{"coastal_xy.csv", []string{"long", "lat"}, false},
	}
	for _, fx := range fixtures {
		path := filepath.Join(*outDir, fx.name)
		if err := writeFixture(path, fx.header, *n, fx.withZ); err != nil {
			fmt.Fprintln(os.Stderr, "mkfixtures:", err)
			os.Exit(1)
		}
		fmt.Println("wrote", path)
	}
}
