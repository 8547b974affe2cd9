package assets

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

// 3つの包み方すべてが同じ正規形に落ちること
func TestNormalizeShapes(t *testing.T) {
	want := []Asset{{
		ID:         "1",
		ItemName:   "ノートPC",
		Category:   "PC",
		Condition:  "Good",
		QtyInStock: 3,
		Owner:      "総務",
	}}

	bare := decode(t, `[{"id":1,"item_name":"ノートPC","category":"PC","condition":"Good","qty_in_stock":3,"owner":"総務"}]`)
	data := decode(t, `{"data":[{"id":1,"item_name":"ノートPC","category":"PC","condition":"Good","qty_in_stock":3,"owner":"総務"}]}`)
	wrapped := decode(t, `{"asset":[{"id":1,"data":{"item_name":"ノートPC","category":"PC","condition":"Good","qty_in_stock":3,"owner":"総務"}}]}`)

	assert.Equal(t, want, Normalize(bare))
	assert.Equal(t, want, Normalize(data))
	assert.Equal(t, want, Normalize(wrapped))
}

func TestNormalizeGarbage(t *testing.T) {
	assert.Empty(t, Normalize(nil))
	assert.Empty(t, Normalize("not json shape"))
	assert.Empty(t, Normalize(decode(t, `{"unrelated":true}`)))
	// 配列内の壊れた行は読み飛ばし、残りは生かす
	mixed := decode(t, `[{"id":1,"item_name":"A"}, "broken", {"id":2,"item_name":"B"}]`)
	got := Normalize(mixed)
	assert.Len(t, got, 2)
	assert.Equal(t, "A", got[0].ItemName)
	assert.Equal(t, "B", got[1].ItemName)
}

func TestNormalizeQtyCoercion(t *testing.T) {
	got := Normalize(decode(t, `[
		{"id":1,"item_name":"A","qty_in_stock":"5.9"},
		{"id":2,"item_name":"B","qty_in_stock":-2},
		{"id":3,"item_name":"C","qty_in_stock":null}
	]`))
	assert.Equal(t, 5, got[0].QtyInStock)
	assert.Equal(t, 0, got[1].QtyInStock)
	assert.Equal(t, 0, got[2].QtyInStock)
}

func TestUnderMaintenance(t *testing.T) {
	assert.True(t, Asset{Condition: "Damaged"}.UnderMaintenance())
	assert.False(t, Asset{Condition: "Good"}.UnderMaintenance())
}
