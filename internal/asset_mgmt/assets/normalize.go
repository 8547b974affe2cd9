package assets

import "AMS-backend/internal/asset_mgmt/records"

// Normalize は資産ペイロードを正規化する。許容する形は3つ（優先順）:
//   - [ {...}, ... ]                     … そのまま使う
//   - { "data": [ {...}, ... ] }         … data 配下を使う
//   - { "asset": [ {id, data:{...}} ] }  … ラッパーを {id, ...data} に平坦化
//
// どれにも当てはまらなければ空。壊れた行は欠落フィールド扱いで残し、決して全体を落とさない。
func Normalize(payload any) []Asset {
	switch p := payload.(type) {
	case []any:
		return fromObjects(p)
	case map[string]any:
		if list, ok := p["data"].([]any); ok {
			return fromObjects(list)
		}
		if list, ok := p["asset"].([]any); ok {
			return fromWrappers(list)
		}
	}
	return []Asset{}
}

func fromObjects(list []any) []Asset {
	out := make([]Asset, 0, len(list))
	for _, row := range list {
		m, ok := row.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, fromMap(records.ID(m["id"]), m))
	}
	return out
}

func fromWrappers(list []any) []Asset {
	out := make([]Asset, 0, len(list))
	for _, row := range list {
		w, ok := row.(map[string]any)
		if !ok {
			continue
		}
		data, _ := w["data"].(map[string]any)
		out = append(out, fromMap(records.ID(w["id"]), data))
	}
	return out
}

func fromMap(id string, m map[string]any) Asset {
	a := Asset{
		ID:          id,
		ItemName:    records.Str(m["item_name"]),
		Category:    records.Str(m["category"]),
		Condition:   records.Str(m["condition"]),
		QtyInStock:  records.Qty(m["qty_in_stock"]),
		Owner:       records.Str(m["owner"]),
		Description: records.Str(m["description"]),
	}
	if s, ok := m["picture"].(string); ok && s != "" {
		a.Picture = &s
	}
	return a
}
