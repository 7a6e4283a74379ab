package dataset

import (
	"bufio"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"

	"pkg.jsn.cam/persongen/internal/person"
)

// Reference dataset shape: one million records in test_large.csv
const (
	DefaultPath  = "test_large.csv"
	DefaultCount = 1_000_000
)

// Options configures one generation run
type Options struct {
	Path     string // output file, created or truncated
	Count    int64  // number of records to write
	Seed     uint64 // PCG seed; 0 draws a random one
	Progress bool   // render a progress bar on stderr
}

// Result summarizes a completed run
type Result struct {
	Path       string
	Records    int64
	Bytes      int64
	Checksum   uint64 // XXH3 of the file contents
	Seed       uint64 // seed actually used; rerunning with it reproduces the file
	StartedAt  time.Time
	FinishedAt time.Time
}

// Duration returns the wall-clock time the run took
func (r *Result) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// Generate writes opts.Count person records to opts.Path in one sequential
// pass and returns the run summary. The output file is truncated first, so
// rerunning with the same path replaces the dataset. Any failure aborts the
// run; whatever was already written stays on disk.
func Generate(opts Options) (*Result, error) {
	if opts.Count < 0 {
		return nil, fmt.Errorf("record count must be >= 0, got %d", opts.Count)
	}

	// 0 is reserved to mean "pick one", so a drawn seed must be nonzero for
	// the run to be replayable from its Result
	seed := opts.Seed
	for seed == 0 {
		seed = rand.Uint64()
	}

	started := time.Now()

	f, err := os.Create(opts.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	bw := bufio.NewWriterSize(f, 256*1024)
	w := NewWriter(bw)
	gen := person.New(rand.New(rand.NewPCG(seed, seed)))

	var bar *progressbar.ProgressBar
	if opts.Progress {
		bar = progressbar.Default(opts.Count, "generating")
	}

	for i := int64(0); i < opts.Count; i++ {
		if err := w.WriteRow(gen.Generate().Fields()); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write record %d: %w", i, err)
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to flush rows: %w", err)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to flush output: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to sync output file: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close output file: %w", err)
	}

	return &Result{
		Path:       opts.Path,
		Records:    w.Rows(),
		Bytes:      w.Bytes(),
		Checksum:   w.Sum64(),
		Seed:       seed,
		StartedAt:  started,
		FinishedAt: time.Now(),
	}, nil
}
