package employees

import (
	"strings"
	"sync"

	"AMS-backend/internal/asset_mgmt/records"
)

// statusResigned の社員は正規化の段階で落とす。どの包み方で届いても同じ。
const statusResigned = "Resign"

// Normalize は社員名簿ペイロードを正規化する。許容する形:
// 素の配列 / {data:[...]} / {employees:[...]} / {results:[...]}。それ以外は空。
func Normalize(payload any) []Employee {
	var list []any
	switch p := payload.(type) {
	case []any:
		list = p
	case map[string]any:
		for _, key := range []string{"data", "employees", "results"} {
			if l, ok := p[key].([]any); ok {
				list = l
				break
			}
		}
	}

	out := make([]Employee, 0, len(list))
	for _, row := range list {
		m, ok := row.(map[string]any)
		if !ok {
			continue
		}
		e := Employee{
			ID:             records.ID(m["id"]),
			Name:           records.Str(m["name"]),
			Department:     records.Str(m["department"]),
			Branch:         records.Str(m["branch"]),
			EmployeeStatus: records.Str(m["employee_status"]),
		}
		if e.EmployeeStatus == statusResigned {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Cache はセッション中だけ持つ名簿。検索はネットワークを介さずここで完結する。
type Cache struct {
	mu     sync.RWMutex
	items  []Employee
	loaded bool
}

func NewCache() *Cache { return &Cache{} }

func (c *Cache) Replace(items []Employee) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = items
	c.loaded = true
}

func (c *Cache) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// Search は名前への部分一致（大文字小文字無視）。空クエリは全件。
func (c *Cache) Search(query string) []Employee {
	c.mu.RLock()
	defer c.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Employee, 0, len(c.items))
	for _, e := range c.items {
		if q == "" || strings.Contains(strings.ToLower(e.Name), q) {
			out = append(out, e)
		}
	}
	return out
}
