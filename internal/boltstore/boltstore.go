// Package boltstore persists cached ranges in a bbolt database so that a
// restarted process doesn't have to go back to the spreadsheet for ranges
// that are still fresh.
package boltstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/creativecreature/sheetcache"
)

// Store is a sheetcache.DistributedStorage backed by a single bbolt bucket.
// It is safe for concurrent use by multiple goroutines.
type Store struct {
	db     *bolt.DB
	bucket []byte
	log    sheetcache.Logger
	mu     sync.RWMutex
}

type Options struct {
	// Bucket is the name of the Bolt bucket to use.
	Bucket string
	// Log receives write failures, since DistributedStorage.Set can't return them.
	Log sheetcache.Logger
}

var _ sheetcache.DistributedStorage = (*Store)(nil)

// Open initializes or opens a Store at the given path.
func Open(path string, opts Options) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("boltstore: opening %s: %w", path, err)
	}
	bucket := []byte("ranges")
	if opts.Bucket != "" {
		bucket = []byte(opts.Bucket)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucket)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("boltstore: creating bucket: %w", err)
	}
	s := &Store{db: db, bucket: bucket, log: opts.Log}
	if s.log == nil {
		s.log = nopLogger{}
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Get returns the stored value for key.
func (s *Store) Get(_ context.Context, key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []byte
	if err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(s.bucket).Get([]byte(key))
		if v != nil {
			// The slice is only valid for the lifetime of the transaction.
			out = append([]byte(nil), v...)
		}
		return nil
	}); err != nil {
		s.log.Error("boltstore: read failed", "key", key, "error", err)
		return nil, false
	}
	return out, out != nil
}

// Set stores value under key.
func (s *Store) Set(_ context.Context, key string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Put([]byte(key), value)
	}); err != nil {
		s.log.Error("boltstore: write failed", "key", key, "error", err)
	}
}

// Delete removes a key.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Delete([]byte(key))
	})
}

// Purge removes every stored range and returns how many there were.
func (s *Store) Purge() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int
	err := s.db.Update(func(tx *bolt.Tx) error {
		n = tx.Bucket(s.bucket).Stats().KeyN
		if err := tx.DeleteBucket(s.bucket); err != nil {
			return err
		}
		_, err := tx.CreateBucket(s.bucket)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("boltstore: purging: %w", err)
	}
	return n, nil
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
