package records

import "strconv"

// ID は upstream の識別子（数値 or 文字列 or 欠落）を文字列へ正規化する。
// 欠落・非対応型は空文字（=識別子なし）として扱う。
func ID(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		if x == float64(int64(x)) {
			return strconv.FormatInt(int64(x), 10)
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	default:
		return ""
	}
}

// Str は map から取り出した任意値を表示用文字列へ寄せる。文字列以外の
// スカラーは ID と同じ規則、それ以外は空文字。
func Str(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	default:
		return ID(v)
	}
}
