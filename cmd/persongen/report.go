package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dustin/go-humanize"

	"pkg.jsn.cam/persongen/internal/catalog"
	"pkg.jsn.cam/persongen/internal/dataset"
)

func cmdVerify(args []string) {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	var (
		file = fs.String("file", dataset.DefaultPath, "Dataset file to verify")
		db   = fs.String("db", "", "Catalog database to cross-check against")
	)
	fs.Parse(args)

	rep, err := dataset.Verify(*file)
	if err != nil {
		log.Fatalf("Verification failed: %v", err)
	}

	fmt.Printf("%s: %s records, %s, xxh3 %s\n",
		rep.Path,
		humanize.Comma(rep.Records),
		humanize.Bytes(uint64(rep.Bytes)),
		dataset.ChecksumString(rep.Checksum))

	if *db != "" {
		crossCheck(*db, rep)
	}
}

// crossCheck compares a verification report against the newest recorded run
// for the same path
func crossCheck(dbPath string, rep *dataset.Report) {
	store, err := catalog.NewBoltStore(dbPath)
	if err != nil {
		log.Fatalf("Failed to open catalog: %v", err)
	}
	defer store.Close()

	runs, err := store.LoadRuns()
	if err != nil {
		log.Fatalf("Failed to load runs: %v", err)
	}

	var latest *catalog.Run
	for _, run := range catalog.Sorted(runs) {
		if run.Path == rep.Path {
			latest = run
			break
		}
	}
	if latest == nil {
		log.Fatalf("No recorded run for %s", rep.Path)
	}

	sum := dataset.ChecksumString(rep.Checksum)
	if latest.Records != rep.Records || latest.Checksum != sum {
		log.Fatalf("Dataset does not match run %s: file has %d records (xxh3 %s), run recorded %d (%s)",
			latest.ID, rep.Records, sum, latest.Records, latest.Checksum)
	}
	fmt.Printf("matches run %s from %s\n", latest.ID, latest.StartedAt.Format("2006-01-02 15:04:05"))
}

func cmdRuns(args []string) {
	fs := flag.NewFlagSet("runs", flag.ExitOnError)
	var (
		db     = fs.String("db", "", "Catalog database path")
		forget = fs.String("forget", "", "Delete the run with this ID instead of listing")
	)
	fs.Parse(args)

	if *db == "" {
		fmt.Fprintln(os.Stderr, "Usage: persongen runs -db <path> [-forget <id>]")
		os.Exit(1)
	}

	store, err := catalog.NewBoltStore(*db)
	if err != nil {
		log.Fatalf("Failed to open catalog: %v", err)
	}
	defer store.Close()

	if *forget != "" {
		if err := store.DeleteRun(*forget); err != nil {
			log.Fatalf("Failed to forget run: %v", err)
		}
		fmt.Printf("forgot run %s\n", *forget)
		return
	}

	runs, err := store.LoadRuns()
	if err != nil {
		log.Fatalf("Failed to load runs: %v", err)
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded")
		return
	}

	fmt.Printf("%-36s %-20s %12s %10s %20s %s\n", "RUN ID", "PATH", "RECORDS", "SIZE", "SEED", "STARTED")
	fmt.Println("──────────────────────────────────────────────────────────────────────────────────────────────────────────────────────")
	for _, run := range catalog.Sorted(runs) {
		fmt.Printf("%-36s %-20s %12s %10s %20d %s\n",
			run.ID,
			run.Path,
			humanize.Comma(run.Records),
			humanize.Bytes(uint64(run.Bytes)),
			run.Seed,
			run.StartedAt.Format("2006-01-02 15:04:05"))
	}
}
