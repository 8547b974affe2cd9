package assets

import (
	"context"
	"strings"

	"AMS-backend/internal/platform/upstream"
)

// Gateway は upstream クライアントのうち資産まわりで使う操作。
type Gateway interface {
	FetchAssets(ctx context.Context) (any, error)
	CreateAsset(ctx context.Context, form upstream.AssetForm) error
	UpdateAsset(ctx context.Context, id string, form upstream.AssetForm) error
}

type Service struct {
	gw    Gateway
	store *Store
}

func NewService(gw Gateway) *Service {
	return &Service{gw: gw, store: NewStore()}
}

// Store はダッシュボード等が同じ正規コレクションを読むために公開する。
func (s *Service) Store() *Store { return s.store }

// Load は upstream から取り直してスナップショットを差し替える。
// context が切れていたら結果は捨てる（古い応答で新しい状態を上書きしない）。
func (s *Service) Load(ctx context.Context) error {
	payload, err := s.gw.FetchAssets(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return wrapUpstream(err)
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	s.store.Replace(Normalize(payload))
	return nil
}

// List は正規コレクションを検索語で絞って返す。未ロードなら先に取得する。
func (s *Service) List(ctx context.Context, query string, refresh bool) ([]Asset, error) {
	if refresh || !s.store.Loaded() {
		if err := s.Load(ctx); err != nil {
			return nil, err
		}
	}
	items := s.store.Snapshot()
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items, nil
	}
	out := make([]Asset, 0, len(items))
	for _, a := range items {
		if containsFold(a.ItemName, q) ||
			containsFold(a.Category, q) ||
			containsFold(a.Condition, q) ||
			containsFold(a.Owner, q) ||
			containsFold(a.Description, q) {
			out = append(out, a)
		}
	}
	return out, nil
}

// Create は upstream に登録してからコレクションを取り直す。
func (s *Service) Create(ctx context.Context, form upstream.AssetForm) error {
	if strings.TrimSpace(form.ItemName) == "" {
		return &APIError{Code: CodeInvalidArgument, Message: "item_name is required"}
	}
	if err := s.gw.CreateAsset(ctx, form); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return wrapUpstream(err)
	}
	return s.Load(ctx)
}

// Update は upstream を更新してからコレクションを取り直す。
func (s *Service) Update(ctx context.Context, id string, form upstream.AssetForm) error {
	if id == "" {
		return &APIError{Code: CodeInvalidArgument, Message: "id is required"}
	}
	if strings.TrimSpace(form.ItemName) == "" {
		return &APIError{Code: CodeInvalidArgument, Message: "item_name is required"}
	}
	if err := s.gw.UpdateAsset(ctx, id, form); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return wrapUpstream(err)
	}
	return s.Load(ctx)
}

func containsFold(s, lowerQ string) bool {
	return strings.Contains(strings.ToLower(s), lowerQ)
}
