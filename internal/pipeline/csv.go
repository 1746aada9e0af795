package pipeline

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Column aliases accepted in input CSVs, matching common hydrofabric and
// forcing file vocabularies. Matching is case-insensitive on substrings and
// the first alias wins.
var (
	lonAliases  = []string{"lon", "long", "longitude"}
	latAliases  = []string{"lat", "latitude"}
	elevAliases = []string{"z", "elev", "elevation"}
)

// Frame is a parsed input CSV: parallel coordinate columns plus the header
// names they were found under.
type Frame struct {
	Lon, Lat, Elev []float64

	LonCol, LatCol string
	ElevCol        string // empty when the file has no elevation column
}

// HasZ reports whether the frame carries an elevation column.
func (f *Frame) HasZ() bool { return f.ElevCol != "" }

// ReadFrame loads an input CSV. Longitude and latitude columns are required;
// elevation is optional.
func ReadFrame(path string) (Frame, error) {
	var fr Frame
	f, err := os.Open(path)
	if err != nil {
		return fr, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return fr, fmt.Errorf("%s: read header: %w", path, err)
	}
	lon := findColumn(header, lonAliases)
	lat := findColumn(header, latAliases)
	if lon < 0 || lat < 0 {
		return fr, fmt.Errorf("%s: no longitude/latitude columns in header %v", path, header)
	}
	elev := findColumn(header, elevAliases)
	fr.LonCol, fr.LatCol = header[lon], header[lat]
	if elev >= 0 {
		fr.ElevCol = header[elev]
	}

	row := 1
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fr, fmt.Errorf("%s: %w", path, err)
		}
		row++
		v, err := parseCell(rec[lon])
		if err != nil {
			return fr, fmt.Errorf("%s row %d: column %q: %w", path, row, fr.LonCol, err)
		}
		fr.Lon = append(fr.Lon, v)
		v, err = parseCell(rec[lat])
		if err != nil {
			return fr, fmt.Errorf("%s row %d: column %q: %w", path, row, fr.LatCol, err)
		}
		fr.Lat = append(fr.Lat, v)
		if elev >= 0 {
			v, err = parseCell(rec[elev])
			if err != nil {
				return fr, fmt.Errorf("%s row %d: column %q: %w", path, row, fr.ElevCol, err)
			}
			fr.Elev = append(fr.Elev, v)
		}
	}
	return fr, nil
}

// findColumn returns the index of the first header cell matching any alias,
// or -1.
func findColumn(header []string, aliases []string) int {
	for _, a := range aliases {
		for i, col := range header {
			if strings.Contains(strings.ToLower(col), a) {
				return i
			}
		}
	}
	return -1
}

func parseCell(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
