package borrows

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, s string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(s), &v))
	return v
}

func TestUnwrap(t *testing.T) {
	bare := decode(t, `[{"id":1}]`)
	assert.Len(t, Unwrap(bare), 1)
	assert.Len(t, Unwrap(decode(t, `{"borrowing":[{"id":1}]}`)), 1)
	assert.Len(t, Unwrap(decode(t, `{"data":[{"id":1}]}`)), 1)
	assert.Nil(t, Unwrap(decode(t, `{"other":[{"id":1}]}`)))
	assert.Nil(t, Unwrap("scalar"))
}

func TestNormalizeFlattens(t *testing.T) {
	payload := decode(t, `[{
		"id": 31,
		"data": {
			"borrowID": "B-100",
			"assetID": 7,
			"item_name": "プロジェクタ",
			"qty": "2個",
			"name": "山田",
			"branch": "本社",
			"department": "営業",
			"date": "2026-03-01T10:00",
			"return_date": "2026-03-10T18:00",
			"status": "active"
		}
	}]`)

	got := Normalize(payload)
	require.Len(t, got, 1)
	b := got[0]
	// 識別子は id と borrowingId の両方に入る
	assert.Equal(t, "31", b.ID)
	assert.Equal(t, "31", b.BorrowingID)
	assert.Equal(t, "B-100", b.BorrowID)
	assert.Equal(t, "7", b.AssetID)
	assert.Equal(t, 2, b.Qty)
	assert.Equal(t, "active", b.Status)
}

func TestNormalizeDegenerate(t *testing.T) {
	assert.Empty(t, Normalize(nil))
	assert.Empty(t, Normalize(decode(t, `{"borrowing":"oops"}`)))
	// data 欠落の行は欠落フィールドのまま残す
	got := Normalize(decode(t, `[{"id":5}]`))
	require.Len(t, got, 1)
	assert.Equal(t, "5", got[0].ID)
	assert.Equal(t, 0, got[0].Qty)
	assert.Equal(t, "", got[0].Status)
}
