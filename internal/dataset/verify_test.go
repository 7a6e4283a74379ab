package dataset

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pkg.jsn.cam/persongen/internal/person"
)

func writeDataset(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	var content string
	if len(lines) > 0 {
		content = strings.Join(lines, "\n") + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestVerifyGenerated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	res, err := Generate(Options{Path: path, Count: 500, Seed: 77})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	rep, err := Verify(path)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if rep.Records != res.Records {
		t.Errorf("Report.Records = %d, Result.Records = %d", rep.Records, res.Records)
	}
	if rep.Bytes != res.Bytes {
		t.Errorf("Report.Bytes = %d, Result.Bytes = %d", rep.Bytes, res.Bytes)
	}
	if rep.Checksum != res.Checksum {
		t.Errorf("Report.Checksum = %x, Result.Checksum = %x", rep.Checksum, res.Checksum)
	}
}

func TestVerifyEmpty(t *testing.T) {
	path := writeDataset(t)

	rep, err := Verify(path)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if rep.Records != 0 || rep.Bytes != 0 {
		t.Errorf("Report = %d records, %d bytes, want 0, 0", rep.Records, rep.Bytes)
	}
}

func TestVerifyMissingFile(t *testing.T) {
	if _, err := Verify(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatal("Verify succeeded on a missing file")
	}
}

func TestVerifyRejects(t *testing.T) {
	valid := "2010-06-15;Name42;Surname7;Patronymic9;City30;Country5"

	tests := []struct {
		name    string
		lines   []string
		wantErr error
	}{
		{"five columns", []string{"2010-06-15;Name42;Surname7;Patronymic9;City30"}, csv.ErrFieldCount},
		{"seven columns", []string{valid + ";extra"}, csv.ErrFieldCount},
		{"bad date", []string{"15.06.2010;Name42;Surname7;Patronymic9;City30;Country5"}, person.ErrBadDate},
		{"date out of range", []string{"2031-06-15;Name42;Surname7;Patronymic9;City30;Country5"}, person.ErrDateRange},
		{"wrong prefix", []string{"2010-06-15;name42;Surname7;Patronymic9;City30;Country5"}, person.ErrFieldPattern},
		{"value over max", []string{"2010-06-15;Name42;Surname7;Patronymic9;City30;Country101"}, person.ErrFieldRange},
		{"bad row after good rows", []string{valid, valid, "2010-06-15;Name0;Surname7;Patronymic9;City30;Country5"}, person.ErrFieldRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDataset(t, tt.lines...)
			_, err := Verify(path)
			if err == nil {
				t.Fatal("Verify accepted a malformed dataset")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Verify error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestVerifyReportsRowNumber(t *testing.T) {
	valid := "2010-06-15;Name42;Surname7;Patronymic9;City30;Country5"
	path := writeDataset(t, valid, valid, "2010-06-15;Name0;Surname7;Patronymic9;City30;Country5")

	_, err := Verify(path)
	if err == nil {
		t.Fatal("Verify accepted a malformed dataset")
	}
	if !strings.Contains(err.Error(), "row 3") {
		t.Errorf("error %q does not name the offending row", err)
	}
}

func TestVerifyLargeSeeded(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping bulk verification in short mode")
	}
	path := filepath.Join(t.TempDir(), "out.csv")

	res, err := Generate(Options{Path: path, Count: 50_000, Seed: 42})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	rep, err := Verify(path)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if rep.Records != res.Records || rep.Checksum != res.Checksum {
		t.Errorf("report %+v disagrees with result %+v", rep, res)
	}
}
