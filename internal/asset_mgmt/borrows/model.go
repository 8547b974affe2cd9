package borrows

import (
	"strings"
	"time"

	"AMS-backend/internal/asset_mgmt/records"
)

// Borrow は貸出トランザクション1件の正規形。
// ID と BorrowingID は常に同じ値（表示側が別名を参照している歴史的事情）。
// BorrowID は人が振る伝票コードで、識別子とは別物。
type Borrow struct {
	ID          string `json:"id,omitempty"`
	BorrowingID string `json:"borrowingId,omitempty"`
	BorrowID    string `json:"borrowID,omitempty"`
	AssetID     string `json:"assetID,omitempty"`
	ItemName    string `json:"item_name,omitempty"`
	Qty         int    `json:"qty"`
	Name        string `json:"name,omitempty"`
	Branch      string `json:"branch,omitempty"`
	Department  string `json:"department,omitempty"`
	Date        string `json:"date,omitempty"`
	ReturnDate  string `json:"return_date,omitempty"`
	Status      string `json:"status,omitempty"`
}

const (
	StatusActive   = "active"
	StatusReturned = "returned"
)

// OverdueRow はレポート行の期限超過判定（時刻粒度）。
// returned 済みは日付に関わらず超過扱いにしない。
func (b Borrow) OverdueRow(now time.Time) bool {
	if strings.EqualFold(b.Status, StatusReturned) {
		return false
	}
	return records.OverdueAt(b.ReturnDate, now)
}

// OverdueAggregate はダッシュボード集計の期限超過判定（日付粒度）。
// 集計対象は active のみ。
func (b Borrow) OverdueAggregate(now time.Time) bool {
	return strings.EqualFold(b.Status, StatusActive) && records.Overdue(b.ReturnDate, now)
}
