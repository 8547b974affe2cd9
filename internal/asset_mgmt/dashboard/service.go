package dashboard

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"AMS-backend/internal/asset_mgmt/assets"
	"AMS-backend/internal/asset_mgmt/borrows"
)

type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Service はレポートと同じ正規コレクションを読む。ここでは書かない
// （書くのは貸出・資産それぞれの Service だけ）。
type Service struct {
	assets  *assets.Service
	borrows *borrows.Service
	clock   Clock
}

func NewService(a *assets.Service, b *borrows.Service) *Service {
	return &Service{assets: a, borrows: b, clock: realClock{}}
}

// Summary は資産と貸出を同時に取り直してから集計する。
// 片方だけ新しい状態で混ざった集計を見せないため、両方そろってから畳み込む。
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.assets.Load(gctx) })
	g.Go(func() error { return s.borrows.Load(gctx) })
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}
	if ctx.Err() != nil {
		return Summary{}, ctx.Err()
	}

	return Aggregate(s.assets.Store().Snapshot(), s.borrows.Store().Snapshot(), s.clock.Now()), nil
}
