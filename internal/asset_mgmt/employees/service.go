package employees

import (
	"context"
	"time"
)

// Gateway は upstream クライアントのうち社員名簿で使う操作。
type Gateway interface {
	FetchEmployees(ctx context.Context, name string) (any, error)
}

// suggestDelay はキー入力をまとめる待ち時間。
const suggestDelay = 300 * time.Millisecond

type Service struct {
	gw        Gateway
	cache     *Cache
	suggester *Suggester
}

func NewService(gw Gateway) *Service {
	cache := NewCache()
	return &Service{
		gw:        gw,
		cache:     cache,
		suggester: NewSuggester(cache, suggestDelay),
	}
}

// Load は名簿全体を一度だけ取ってキャッシュする。以後の検索はキャッシュ内で完結。
func (s *Service) Load(ctx context.Context) error {
	payload, err := s.gw.FetchEmployees(ctx, "")
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	s.cache.Replace(Normalize(payload))
	return nil
}

// Search は名簿キャッシュへの即時検索。未ロードなら先に取得する。
func (s *Service) Search(ctx context.Context, query string, refresh bool) ([]Employee, error) {
	if refresh || !s.cache.Loaded() {
		if err := s.Load(ctx); err != nil {
			return nil, err
		}
	}
	return s.cache.Search(query), nil
}

// Suggest はデバウンスつき検索。連続入力の最後の1回だけが結果を返す。
func (s *Service) Suggest(ctx context.Context, query string) ([]Employee, error) {
	if !s.cache.Loaded() {
		if err := s.Load(ctx); err != nil {
			return nil, err
		}
	}
	return s.suggester.Suggest(ctx, query)
}
