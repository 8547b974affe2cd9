package records

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQty(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"整数のfloat", float64(5), 5},
		{"小数は切り捨て", float64(5.9), 5},
		{"負のfloatは0", float64(-3), 0},
		{"文字列の整数", "7", 7},
		{"文字列の小数は先頭整数", "5.9", 5},
		{"先頭整数+ゴミ", "12個", 12},
		{"符号つき", "+3", 3},
		{"負の文字列は0", "-4", 0},
		{"空白のみ", "   ", 0},
		{"数字なし", "abc", 0},
		{"nil", nil, 0},
		{"bool", true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Qty(tt.in))
		})
	}
}

func TestID(t *testing.T) {
	assert.Equal(t, "42", ID(float64(42)))
	assert.Equal(t, "42", ID("42"))
	assert.Equal(t, "abc", ID("abc"))
	assert.Equal(t, "", ID(nil))
	assert.Equal(t, "", ID([]any{}))
}

func TestDatePart(t *testing.T) {
	assert.Equal(t, "2026-03-01", DatePart("2026-03-01T10:00:00"))
	assert.Equal(t, "2026-03-01", DatePart("2026-03-01 10:00"))
	assert.Equal(t, "2026-03-01", DatePart("  2026-03-01  "))
	assert.Equal(t, "", DatePart(""))
}

func TestOverdue(t *testing.T) {
	now := time.Date(2026, 3, 15, 9, 30, 0, 0, time.Local)

	// 昨日が期限 → 超過
	assert.True(t, Overdue("2026-03-14", now))
	// 当日は時刻に関わらず超過ではない（日付粒度）
	assert.False(t, Overdue("2026-03-15", now))
	assert.False(t, Overdue("2026-03-15T00:00:00", now))
	// 未来
	assert.False(t, Overdue("2026-03-16", now))
	// 期限なし・壊れた値
	assert.False(t, Overdue("", now))
	assert.False(t, Overdue("いつか", now))
	// スラッシュ区切りも許容
	assert.True(t, Overdue("2026/03/14", now))
}

func TestOverdueAt(t *testing.T) {
	now := time.Date(2026, 3, 15, 9, 30, 0, 0, time.Local)

	// 同日の過去時刻は超過（時刻粒度）
	assert.True(t, OverdueAt("2026-03-15T09:00", now))
	assert.True(t, OverdueAt("2026-03-15 09:00", now))
	// 同日の未来時刻
	assert.False(t, OverdueAt("2026-03-15T10:00", now))
	// 日付だけなら深夜0時扱いで当日は超過
	assert.True(t, OverdueAt("2026-03-15", now))
	assert.False(t, OverdueAt("2026-03-16", now))
	assert.False(t, OverdueAt("", now))
}

func TestIsMaintenance(t *testing.T) {
	assert.True(t, IsMaintenance("Damaged"))
	assert.True(t, IsMaintenance("under maintenance"))
	assert.True(t, IsMaintenance("Maintanance")) // upstream の綴りゆれ
	assert.False(t, IsMaintenance("Good"))
	assert.False(t, IsMaintenance(""))
}
