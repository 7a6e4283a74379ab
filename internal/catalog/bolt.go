package catalog

import (
	"fmt"
	"log"

	bolt "go.etcd.io/bbolt"
)

var runsBucket = []byte("runs")

// BoltStore implements Store using bbolt
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore opens (creating if needed) the catalog database at dbPath
func NewBoltStore(dbPath string) (*BoltStore, error) {
	db, err := bolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(runsBucket); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	log.Printf("[CATALOG] Catalog opened at %s", dbPath)
	return &BoltStore{db: db}, nil
}

// Close closes the database
func (s *BoltStore) Close() error {
	return s.db.Close()
}

func (s *BoltStore) SaveRun(run *Run) error {
	stamp(run)
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(runsBucket)
		data, err := encodeJSON(run)
		if err != nil {
			return err
		}
		return b.Put([]byte(run.ID), data)
	})
}

func (s *BoltStore) LoadRuns() (map[string]*Run, error) {
	runs := make(map[string]*Run)

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(runsBucket)
		return b.ForEach(func(k, v []byte) error {
			var run Run
			if err := decodeJSON(v, &run); err != nil {
				log.Printf("[CATALOG] Warning: Failed to decode run %s: %v", k, err)
				return nil // Skip corrupted runs
			}
			if !IsCompatibleVersion(run.Tool) {
				log.Printf("[CATALOG] Warning: Skipping run %s written by incompatible version %q", run.ID, run.Tool)
				return nil
			}
			runs[run.ID] = &run
			return nil
		})
	})

	return runs, err
}

func (s *BoltStore) DeleteRun(id string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(runsBucket)
		return b.Delete([]byte(id))
	})
}
