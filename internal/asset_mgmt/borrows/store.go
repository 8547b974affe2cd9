package borrows

import "sync"

// Store は取得時点の正規化済み貸出スナップショット。
// 書き込みは「新しいコレクションへの差し替え」だけ。途中状態は外から見えない。
type Store struct {
	mu     sync.RWMutex
	items  []Borrow
	loaded bool
}

func NewStore() *Store { return &Store{} }

func (s *Store) Replace(items []Borrow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	s.loaded = true
}

func (s *Store) Snapshot() []Borrow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Borrow, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Append は作成済みレコードを末尾に足した新しいコレクションへ差し替える。
func (s *Store) Append(b Borrow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]Borrow, 0, len(s.items)+1)
	next = append(next, s.items...)
	next = append(next, b)
	s.items = next
	s.loaded = true
}

// PatchStatus は識別子一致の1件だけ status を入れ替えたコレクションへ差し替える。
// 一致する要素が無ければ何もせず false。
func (s *Store) PatchStatus(id, status string) bool {
	if id == "" {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	found := false
	next := make([]Borrow, len(s.items))
	for i, b := range s.items {
		if !found && b.ID == id {
			b.Status = status
			found = true
		}
		next[i] = b
	}
	if !found {
		return false
	}
	s.items = next
	return true
}
