// Package records は upstream から取り込んだレコードの正規化ルールをまとめる。
// 数量・日付・状態の解釈はレポート側とダッシュボード側で必ず同じ関数を使うこと。
package records

import (
	"strings"
	"time"
)

// Qty は upstream の数量値（数値 or 文字列 or その他）を 0 以上の整数へ正規化する。
// 文字列は先頭の整数部分だけを読む（"5.9" → 5）。解釈できない値はすべて 0。
func Qty(v any) int {
	switch x := v.(type) {
	case float64:
		if x <= 0 {
			return 0
		}
		return int(x) // 小数は切り捨て
	case int:
		if x < 0 {
			return 0
		}
		return x
	case string:
		n, ok := leadingInt(strings.TrimSpace(x))
		if !ok || n < 0 {
			return 0
		}
		return n
	default:
		return 0
	}
}

// leadingInt は符号つき先頭整数を読む。数字が1つもなければ ok=false。
func leadingInt(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	neg := false
	i := 0
	if s[0] == '+' || s[0] == '-' {
		neg = s[0] == '-'
		i++
	}
	n := 0
	digits := 0
	for ; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
		digits++
	}
	if digits == 0 {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}

// DatePart は日時文字列から日付部分だけを取り出す（"T" と空白のどちらの区切りも許容）。
func DatePart(s string) string {
	s = strings.TrimSpace(strings.ReplaceAll(s, "T", " "))
	if i := strings.IndexByte(s, ' '); i >= 0 {
		s = s[:i]
	}
	return s
}

// ParseDueDate は返却期限の日付部分をカレンダー日付として解釈する。
func ParseDueDate(s string) (time.Time, bool) {
	p := DatePart(s)
	if p == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{"2006-01-02", "2006/01/02"} {
		if t, err := time.ParseInLocation(layout, p, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Overdue は日付粒度の期限超過判定。期限日・現在日とも深夜0時へ切り詰めて
// 厳密に過去のときだけ true。期限なし・解釈不能は false。
// ステータス判定（active のみ集計する等）は呼び出し側の責務。
func Overdue(due string, now time.Time) bool {
	d, ok := ParseDueDate(due)
	if !ok {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return d.Before(today)
}

// OverdueAt は時刻粒度の期限超過判定。レポートの行ハイライト用で、
// 同一営業日内の超過も拾うため深夜0時へは切り詰めない。
// 日付粒度の Overdue と統合してはいけない（深夜付近で結果が変わる）。
func OverdueAt(due string, now time.Time) bool {
	s := strings.TrimSpace(due)
	if s == "" {
		return false
	}
	s = strings.Replace(s, " ", "T", 1)
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t.Before(now)
		}
	}
	return false
}

// IsMaintenance は状態文字列からメンテナンス・故障扱いかどうかを判定する。
// "maintanance" は upstream に実在する綴りゆれ。
func IsMaintenance(condition string) bool {
	c := strings.ToLower(condition)
	return strings.Contains(c, "damaged") ||
		strings.Contains(c, "maintenance") ||
		strings.Contains(c, "maintanance")
}
