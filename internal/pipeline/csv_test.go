package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCSV(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "points.csv")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func TestReadFrame_AliasedColumns(t *testing.T) {
	path := writeCSV(t, "LONG,Lat,ELEVATION (m)\n-79.4,43.7,100\n-79.0,43.0,110\n")
	fr, err := ReadFrame(path)
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if fr.LonCol != "LONG" || fr.LatCol != "Lat" || fr.ElevCol != "ELEVATION (m)" {
		t.Fatalf("columns matched wrong: %q %q %q", fr.LonCol, fr.LatCol, fr.ElevCol)
	}
	if len(fr.Lon) != 2 || fr.Lon[0] != -79.4 || fr.Lat[1] != 43.0 || fr.Elev[1] != 110 {
		t.Fatalf("values parsed wrong: %+v", fr)
	}
	if !fr.HasZ() {
		t.Fatal("elevation column not detected")
	}
}

func TestReadFrame_ExtraColumnsIgnored(t *testing.T) {
	path := writeCSV(t, "id,longitude,latitude,elevation,station\n7,-76.5,38.9,1.2,annapolis\n")
	fr, err := ReadFrame(path)
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if fr.Lon[0] != -76.5 || fr.Lat[0] != 38.9 || fr.Elev[0] != 1.2 {
		t.Fatalf("values parsed wrong: %+v", fr)
	}
}

func TestReadFrame_NoElevationColumn(t *testing.T) {
	path := writeCSV(t, "longitude,latitude\n-76.5,38.9\n")
	fr, err := ReadFrame(path)
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if fr.HasZ() || len(fr.Elev) != 0 {
		t.Fatalf("phantom elevation column: %+v", fr)
	}
}

func TestReadFrame_MissingLatitude(t *testing.T) {
	path := writeCSV(t, "longitude,elevation\n-76.5,1.2\n")
	if _, err := ReadFrame(path); err == nil {
		t.Fatal("missing latitude column accepted")
	}
}

func TestReadFrame_BadCell(t *testing.T) {
	path := writeCSV(t, "longitude,latitude\n-76.5,38.9\n-76.4,not-a-number\n")
	_, err := ReadFrame(path)
	if err == nil {
		t.Fatal("unparseable cell accepted")
	}
	if !strings.Contains(err.Error(), "row 3") {
		t.Fatalf("error does not locate the row: %v", err)
	}
}

func TestReadFrame_WhitespaceTolerated(t *testing.T) {
	path := writeCSV(t, "longitude,latitude,elevation\n -76.5 , 38.9 , 1.2 \n")
	fr, err := ReadFrame(path)
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if fr.Lon[0] != -76.5 || fr.Elev[0] != 1.2 {
		t.Fatalf("values parsed wrong: %+v", fr)
	}
}
