// Package dashboard は資産・貸出の正規コレクションをサマリ統計へ畳み込む。
package dashboard

import (
	"strings"
	"time"

	"AMS-backend/internal/asset_mgmt/assets"
	"AMS-backend/internal/asset_mgmt/borrows"
)

type Stats struct {
	TotalAsset  int `json:"total_asset"`
	Available   int `json:"available"`
	Borrowed    int `json:"borrowed"`
	Overdue     int `json:"overdue"`
	Maintenance int `json:"maintenance"`
}

// Slice は円グラフの1区分。値ゼロの区分はそもそも作らない。
type Slice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type Summary struct {
	Stats        Stats            `json:"stats"`
	AssetStatus  []Slice          `json:"asset_status"`
	ReturnStatus []Slice          `json:"return_status"`
	Overdue      []borrows.Borrow `json:"overdue"`
}

// Aggregate は取得時点のスナップショットから5つのスカラーと2つの内訳、
// 期限超過一覧を作る。期限超過は日付粒度の判定（レポート行の判定とは別物）。
func Aggregate(as []assets.Asset, bs []borrows.Borrow, now time.Time) Summary {
	var stock, available, maintenance int
	for _, a := range as {
		q := a.QtyInStock
		stock += q
		if a.UnderMaintenance() {
			maintenance += q
		} else {
			available += q
		}
	}

	var borrowed, overdueQty, returned, active int
	overdueList := make([]borrows.Borrow, 0)
	for _, b := range bs {
		borrowed += b.Qty
		switch {
		case strings.EqualFold(b.Status, borrows.StatusReturned):
			returned += b.Qty
		case strings.EqualFold(b.Status, borrows.StatusActive):
			active += b.Qty
		}
		if b.OverdueAggregate(now) {
			overdueQty += b.Qty
			overdueList = append(overdueList, b)
		}
	}

	return Summary{
		Stats: Stats{
			TotalAsset:  stock + borrowed,
			Available:   available,
			Borrowed:    borrowed,
			Overdue:     overdueQty,
			Maintenance: maintenance,
		},
		AssetStatus: slices3(
			Slice{Name: "Borrowed", Value: borrowed},
			Slice{Name: "Available", Value: available},
			Slice{Name: "Damaged", Value: maintenance},
		),
		ReturnStatus: slices3(
			Slice{Name: "Returned", Value: returned},
			Slice{Name: "Active", Value: active},
		),
		Overdue: overdueList,
	}
}

// slices3 は値ゼロの区分を落とす（ゼロ幅の扇形を描かせない）。
func slices3(in ...Slice) []Slice {
	out := make([]Slice, 0, len(in))
	for _, s := range in {
		if s.Value > 0 {
			out = append(out, s)
		}
	}
	return out
}
