package employees

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrSuperseded は待ち時間中により新しい入力が来たことを示す。
// 古い候補でサジェスト表示を上書きしないための合図。
var ErrSuperseded = errors.New("superseded by newer query")

// Suggester は連続入力を一定時間まとめてから検索する。キー入力のたびに
// 呼ばれる前提で、待機中の呼び出しは新しい呼び出しが来た時点で負ける。
type Suggester struct {
	cache *Cache
	delay time.Duration

	mu  sync.Mutex
	gen uint64
}

func NewSuggester(cache *Cache, delay time.Duration) *Suggester {
	return &Suggester{cache: cache, delay: delay}
}

// Suggest は delay だけ待ってからキャッシュ検索する。待機中に次の Suggest が
// 呼ばれたら ErrSuperseded、context が切れたら ctx.Err() を返す。
func (s *Suggester) Suggest(ctx context.Context, query string) ([]Employee, error) {
	s.mu.Lock()
	s.gen++
	my := s.gen
	s.mu.Unlock()

	t := time.NewTimer(s.delay)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-t.C:
	}

	s.mu.Lock()
	latest := s.gen
	s.mu.Unlock()
	if my != latest {
		return nil, ErrSuperseded
	}
	return s.cache.Search(query), nil
}
