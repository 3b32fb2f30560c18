package sheetcache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

type distributedRecord struct {
	CreatedAt time.Time `json:"created_at"`
	Rows      Rows      `json:"rows"`
}

// DistributedStorage is a key/value store that can be shared between
// processes, or survive a restart.
type DistributedStorage interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
}

func (c *Client) marshalRecord(rows Rows, createdAt time.Time) ([]byte, error) {
	record := distributedRecord{CreatedAt: createdAt, Rows: rows}
	bytes, err := json.Marshal(record)
	if err != nil {
		c.log.Error(fmt.Sprintf("sheetcache: error marshalling record: %v", err))
	}
	return bytes, err
}

func (c *Client) unmarshalRecord(bytes []byte) (distributedRecord, error) {
	var record distributedRecord
	if err := json.Unmarshal(bytes, &record); err != nil {
		return record, fmt.Errorf("%w: %w", ErrInvalidType, err)
	}
	return record, nil
}

// usable reports whether a record may stand in for a remote fetch.
func (c *Client) usable(record distributedRecord) bool {
	c.gateMu.Lock()
	invalidatedAt := c.invalidatedAt
	c.gateMu.Unlock()

	if !invalidatedAt.IsZero() && !record.CreatedAt.After(invalidatedAt) {
		return false
	}
	return c.clock.Now().Sub(record.CreatedAt) < c.ttl
}

// distributedFetch returns the rows for the key, and the time at which they
// were read from the data source. Rows that come from a stored record are as
// old as the record.
func (c *Client) distributedFetch(ctx context.Context, key string) (Rows, time.Time, error) {
	if c.distributedStorage == nil {
		rows, err := c.fetcher.FetchRange(ctx, key)
		return rows, c.clock.Now(), err
	}

	if bytes, ok := c.distributedStorage.Get(ctx, key); ok {
		record, err := c.unmarshalRecord(bytes)
		if err != nil {
			c.log.Error(fmt.Sprintf("sheetcache: error unmarshalling record: %v", err))
		}
		if err == nil && c.usable(record) {
			c.reportDistributedCacheHit(true)
			return record.Rows, record.CreatedAt, nil
		}
	}
	c.reportDistributedCacheHit(false)

	rows, err := c.fetcher.FetchRange(ctx, key)
	fetchedAt := c.clock.Now()
	if err != nil {
		return rows, fetchedAt, err
	}

	if bytes, marshalErr := c.marshalRecord(rows, fetchedAt); marshalErr == nil {
		c.distributedStorage.Set(ctx, key, bytes)
	}
	return rows, fetchedAt, nil
}
