package storage

import (
	"time"

	"go.etcd.io/bbolt"
)

// Bucket layout:
//
//	resolutions       id     -> JSON models.Resolution
//	resolution_index  target -> JSON []id, in insertion order
const (
	bucketResolutions     = "resolutions"
	bucketResolutionIndex = "resolution_index"
)

// Store keeps the history of output directories handed out per target.
// bbolt allows one writer process at a time, so open it per command and close it promptly.
type Store struct {
	db *bbolt.DB
}

// NewStore opens the history database, creating it and its buckets on first use.
// It gives up after a second when another wordstress process holds the file lock.
func NewStore(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(bucketResolutions)); err != nil {
			return err
		}
		if _, err := tx.CreateBucketIfNotExists([]byte(bucketResolutionIndex)); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the bbolt database
func (s *Store) Close() error {
	return s.db.Close()
}
