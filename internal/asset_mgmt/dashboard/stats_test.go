package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AMS-backend/internal/asset_mgmt/assets"
	"AMS-backend/internal/asset_mgmt/borrows"
)

var aggNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.Local)

func TestAggregateScalars(t *testing.T) {
	as := []assets.Asset{
		{ID: "1", QtyInStock: 5, Condition: "Good"},
		{ID: "2", QtyInStock: 2, Condition: "Damaged"},
	}
	bs := []borrows.Borrow{
		{ID: "10", Qty: 3, Status: borrows.StatusActive, ReturnDate: "2026-04-01"},
		{ID: "11", Qty: 1, Status: borrows.StatusActive, ReturnDate: "2026-03-01"}, // 超過
		{ID: "12", Qty: 2, Status: borrows.StatusReturned, ReturnDate: "2026-03-01"},
	}

	sum := Aggregate(as, bs, aggNow)

	// 総数 = 在庫 + 貸出中
	assert.Equal(t, 13, sum.Stats.TotalAsset)
	assert.Equal(t, 5, sum.Stats.Available)
	assert.Equal(t, 6, sum.Stats.Borrowed)
	assert.Equal(t, 2, sum.Stats.Maintenance)
	// 超過は active かつ日付粒度で過去のものだけ（returned は数えない）
	assert.Equal(t, 1, sum.Stats.Overdue)

	require.Len(t, sum.Overdue, 1)
	assert.Equal(t, "11", sum.Overdue[0].ID)
}

// 値ゼロの区分は内訳に現れない
func TestAggregateOmitsZeroSlices(t *testing.T) {
	as := []assets.Asset{{ID: "1", QtyInStock: 4, Condition: "Good"}}
	bs := []borrows.Borrow{{ID: "10", Qty: 2, Status: borrows.StatusActive, ReturnDate: "2026-04-01"}}

	sum := Aggregate(as, bs, aggNow)

	// メンテナンス0なので Damaged 区分がない
	require.Len(t, sum.AssetStatus, 2)
	assert.Equal(t, Slice{Name: "Borrowed", Value: 2}, sum.AssetStatus[0])
	assert.Equal(t, Slice{Name: "Available", Value: 4}, sum.AssetStatus[1])

	// returned 0 なので Active だけ
	require.Len(t, sum.ReturnStatus, 1)
	assert.Equal(t, Slice{Name: "Active", Value: 2}, sum.ReturnStatus[0])
}

func TestAggregateEmpty(t *testing.T) {
	sum := Aggregate(nil, nil, aggNow)
	assert.Equal(t, Stats{}, sum.Stats)
	assert.Empty(t, sum.AssetStatus)
	assert.Empty(t, sum.ReturnStatus)
	assert.NotNil(t, sum.Overdue)
	assert.Empty(t, sum.Overdue)
}

// ステータス表記は大文字小文字を区別しない
func TestAggregateStatusFold(t *testing.T) {
	bs := []borrows.Borrow{
		{Qty: 1, Status: "Active", ReturnDate: "2026-04-01"},
		{Qty: 1, Status: "RETURNED"},
	}
	sum := Aggregate(nil, bs, aggNow)
	require.Len(t, sum.ReturnStatus, 2)
	assert.Equal(t, 1, sum.ReturnStatus[0].Value) // Returned
	assert.Equal(t, 1, sum.ReturnStatus[1].Value) // Active
}
