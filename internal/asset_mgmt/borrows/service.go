package borrows

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"AMS-backend/internal/platform/upstream"
)

// ===== インターフェース群 =====

type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

// Gateway は upstream クライアントのうち貸出まわりで使う操作。
type Gateway interface {
	FetchBorrows(ctx context.Context) (any, error)
	CreateBorrow(ctx context.Context, form upstream.BorrowForm) (string, error)
	UpdateBorrowStatus(ctx context.Context, id, status string) error
}

// ===== Service本体 =====

type Service struct {
	gw    Gateway
	store *Store
	clock Clock
}

func NewService(gw Gateway) *Service {
	return &Service{gw: gw, store: NewStore(), clock: realClock{}}
}

func (s *Service) Store() *Store { return s.store }

// Load は upstream から貸出一覧を取り直す。このリソースだけは upstream の失敗を
// エラーにせず空集合へ縮退させる（レポートとダッシュボードを落とさないため）。
// context 切断だけはそのまま返し、状態には触らない。
func (s *Service) Load(ctx context.Context) error {
	payload, err := s.gw.FetchBorrows(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Printf("[WARN] borrow list fetch failed, degrading to empty: %v", err)
		s.store.Replace([]Borrow{})
		return nil
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	s.store.Replace(Normalize(payload))
	return nil
}

// Report は正規コレクションへクエリを適用した1ページ分を返す。
func (s *Service) Report(ctx context.Context, q Query, refresh bool) (PageResult, error) {
	if refresh || !s.store.Loaded() {
		if err := s.Load(ctx); err != nil {
			return PageResult{}, err
		}
	}
	return Apply(s.store.Snapshot(), q, s.clock.Now()), nil
}

// ReportRows は Report と同じ絞り込みをページングなしで返す（エクスポート用）。
func (s *Service) ReportRows(ctx context.Context, q Query, refresh bool) ([]Row, error) {
	if refresh || !s.store.Loaded() {
		if err := s.Load(ctx); err != nil {
			return nil, err
		}
	}
	items := s.store.Snapshot()
	now := s.clock.Now()
	rows := make([]Row, len(items))
	for i, b := range items {
		rows[i] = Row{Borrow: b, Overdue: b.OverdueRow(now)}
	}
	sortRows(rows)
	rows = filterStatus(rows, q.Status)
	rows = filterDate(rows, q.Date)
	rows = filterSearch(rows, q.Search)
	return rows, nil
}

// CreateBatch は資産行を列挙順に1件ずつ upstream へ登録し、成功するたびに
// 正規コレクションへ追記する。途中で失敗したら残りは中断するが、
// 追記済みのレコードは巻き戻さない（部分成功をそのまま見せる方針）。
func (s *Service) CreateBatch(ctx context.Context, req CreateBorrowRequest) (resp CreateBorrowResponse, err error) {
	if strings.TrimSpace(req.BorrowID) == "" {
		return resp, NewInvalidArgumentError("borrowID is required")
	}
	if len(req.Assets) == 0 {
		return resp, NewInvalidArgumentError("at least one asset line is required")
	}

	for i, line := range req.Assets {
		if strings.TrimSpace(line.AssetID) == "" {
			resp.FailedLine = i + 1
			return resp, NewInvalidArgumentError(fmt.Sprintf("line %d: assetID is required", i+1))
		}

		form := upstream.BorrowForm{
			AssetID:    line.AssetID,
			BorrowID:   req.BorrowID,
			Qty:        strconv.Itoa(line.Qty),
			Name:       req.Name,
			Branch:     req.Branch,
			Department: req.Department,
			Date:       req.Date,
			ReturnDate: req.ReturnDate,
			Status:     req.Status,
		}

		serverID, callErr := s.gw.CreateBorrow(ctx, form)
		if callErr != nil {
			if ctx.Err() != nil {
				return resp, ctx.Err()
			}
			resp.FailedLine = i + 1
			return resp, NewUpstreamError(fmt.Errorf("line %d: %w", i+1, callErr))
		}

		// サーバ採番の識別子が勝ち、残りはフォームの値をそのまま使う
		created := Borrow{
			ID:          serverID,
			BorrowingID: serverID,
			BorrowID:    req.BorrowID,
			AssetID:     line.AssetID,
			ItemName:    line.ItemName,
			Qty:         clampQty(line.Qty),
			Name:        req.Name,
			Branch:      req.Branch,
			Department:  req.Department,
			Date:        req.Date,
			ReturnDate:  req.ReturnDate,
			Status:      req.Status,
		}
		s.store.Append(created)
		resp.Created = append(resp.Created, created)
	}
	return resp, nil
}

// UpdateStatus は upstream を更新できた場合にだけ手元の1件を差し替える。
// 失敗時は手元の状態に触らない。
func (s *Service) UpdateStatus(ctx context.Context, id, status string) error {
	if strings.TrimSpace(id) == "" {
		return NewInvalidArgumentError("id is required")
	}
	if strings.TrimSpace(status) == "" {
		return NewInvalidArgumentError("status is required")
	}
	if err := s.gw.UpdateBorrowStatus(ctx, id, status); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return NewUpstreamError(err)
	}
	if !s.store.PatchStatus(id, status) {
		// 手元に無い＝別セッションで消えた等。次の Load で揃うので警告だけ
		log.Printf("[WARN] status updated upstream but id %s not in local snapshot", id)
	}
	return nil
}

func clampQty(q int) int {
	if q < 0 {
		return 0
	}
	return q
}
