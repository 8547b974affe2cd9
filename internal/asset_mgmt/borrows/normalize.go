package borrows

import "AMS-backend/internal/asset_mgmt/records"

// Unwrap は貸出一覧の生ペイロードから配列本体を取り出す。
// upstream は素の配列のほか {borrowing:[...]} / {data:[...]} で包んで返すことがある。
func Unwrap(payload any) []any {
	switch p := payload.(type) {
	case []any:
		return p
	case map[string]any:
		if list, ok := p["borrowing"].([]any); ok {
			return list
		}
		if list, ok := p["data"].([]any); ok {
			return list
		}
	}
	return nil
}

// Normalize は {id, data:{...}} ラッパーの配列を正規形へ平坦化する。
// 識別子は id と borrowingId の両方に同じ値を入れる。配列以外は空。
// 壊れた行はフィールド欠落として残し、1行のせいで全体を空にはしない。
func Normalize(payload any) []Borrow {
	list := Unwrap(payload)
	out := make([]Borrow, 0, len(list))
	for _, row := range list {
		w, ok := row.(map[string]any)
		if !ok {
			continue
		}
		id := records.ID(w["id"])
		data, _ := w["data"].(map[string]any)
		out = append(out, Borrow{
			ID:          id,
			BorrowingID: id,
			BorrowID:    records.Str(data["borrowID"]),
			AssetID:     records.ID(data["assetID"]),
			ItemName:    records.Str(data["item_name"]),
			Qty:         records.Qty(data["qty"]),
			Name:        records.Str(data["name"]),
			Branch:      records.Str(data["branch"]),
			Department:  records.Str(data["department"]),
			Date:        records.Str(data["date"]),
			ReturnDate:  records.Str(data["return_date"]),
			Status:      records.Str(data["status"]),
		})
	}
	return out
}
