package upstream

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Error は upstream の非2xx応答。Message にはエラーボディから抽出した文言が入る。
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// errorMessage はエラーボディの error / message フィールドを優先して取り出す。
// どちらも無ければステータスコード入りの汎用文言。
func errorMessage(body []byte, status int) string {
	var obj map[string]any
	if json.Unmarshal(body, &obj) == nil {
		if s, ok := obj["error"].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
		if s, ok := obj["message"].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return fmt.Sprintf("request failed: %d", status)
}
