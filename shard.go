package sheetcache

import "sync"

type shard struct {
	mu      sync.RWMutex
	entries map[string]Rows
}

func newShard() *shard {
	return &shard{
		mu:      sync.RWMutex{},
		entries: make(map[string]Rows),
	}
}

func (s *shard) size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *shard) get(key string) (Rows, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows, ok := s.entries[key]
	return rows, ok
}

func (s *shard) set(key string, rows Rows) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = rows
}

func (s *shard) delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

// clear removes every entry in the shard and returns how many there were.
func (s *shard) clear() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.entries)
	s.entries = make(map[string]Rows)
	return n
}
