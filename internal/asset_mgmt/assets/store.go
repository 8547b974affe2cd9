package assets

import "sync"

// Store は取得時点の正規化済み資産スナップショット。
// 更新は必ずコレクションごとの差し替えで行う（部分書き換えを見せない）。
type Store struct {
	mu     sync.RWMutex
	items  []Asset
	loaded bool
}

func NewStore() *Store { return &Store{} }

func (s *Store) Replace(items []Asset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	s.loaded = true
}

func (s *Store) Snapshot() []Asset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Asset, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}
