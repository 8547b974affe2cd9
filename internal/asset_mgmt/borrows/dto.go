package borrows

// ===== Requests =====

// CreateBorrowRequest は1回の申請。資産行ごとに upstream への登録が1回走る。
type CreateBorrowRequest struct {
	BorrowID   string `json:"borrowID" binding:"required"`
	Name       string `json:"name"`
	Branch     string `json:"branch"`
	Department string `json:"department"`
	// datetime-local 形式の文字列を想定（"2006-01-02T15:04"）
	Date       string       `json:"date"`
	ReturnDate string       `json:"return_date"`
	Status     string       `json:"status"`
	Assets     []BorrowLine `json:"assets" binding:"required,min=1,dive"`
}

// BorrowLine は申請に紐づく資産1行。
type BorrowLine struct {
	AssetID  string `json:"assetID" binding:"required"`
	ItemName string `json:"item_name"`
	Qty      int    `json:"qty"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ===== Responses =====

// CreateBorrowResponse は途中失敗でも作成済み分を必ず返す。
// FailedLine は 1 始まりで、失敗がなければ 0。
type CreateBorrowResponse struct {
	Created    []Borrow `json:"created"`
	FailedLine int      `json:"failed_line,omitempty"`
	Error      string   `json:"error,omitempty"`
}
