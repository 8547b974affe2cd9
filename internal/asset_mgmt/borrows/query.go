package borrows

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// StatusOverdue はフィルタ専用の合成値。upstream に実在するステータスではない。
const StatusOverdue = "overdue"

// PageSizes は選択可能なページサイズ。
var PageSizes = []int{10, 25, 50, 100}

const defaultPageSize = 10

// Query はレポート絞り込みの入力。ゼロ値は「絞り込みなし・1ページ目」。
type Query struct {
	Status   string // 完全一致（大文字小文字無視）。"overdue" だけは合成条件
	Date     string // 貸出日の YYYY-MM-DD 完全一致
	Search   string // 伝票コード・品名・借用者・支店・部署への部分一致
	Page     int
	PageSize int
}

// Row はレポート1行。Overdue は行ハイライト用の導出フラグ。
type Row struct {
	Borrow
	Overdue bool `json:"overdue"`
}

type PageResult struct {
	Items      []Row `json:"items"`
	Total      int   `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// Apply は 整列 → ステータス → 日付 → 検索 → ページング の順で評価する。
// 整列はフィルタより先（どの絞り込みでも表示順が揺れないように）。
func Apply(items []Borrow, q Query, now time.Time) PageResult {
	rows := make([]Row, len(items))
	for i, b := range items {
		rows[i] = Row{Borrow: b, Overdue: b.OverdueRow(now)}
	}
	sortRows(rows)

	rows = filterStatus(rows, q.Status)
	rows = filterDate(rows, q.Date)
	rows = filterSearch(rows, q.Search)

	return paginate(rows, q.Page, q.PageSize)
}

// sortRows: 期限超過が先、各区画内は識別子の降順。識別子なしは区画の最後。
func sortRows(rows []Row) {
	col := collate.New(language.Und, collate.Numeric)
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Overdue != b.Overdue {
			return a.Overdue
		}
		switch {
		case a.ID == "" && b.ID == "":
			return false
		case a.ID == "":
			return false
		case b.ID == "":
			return true
		}
		return compareID(col, a.ID, b.ID) > 0
	})
}

// compareID: 両方が数値として読めれば数値比較、そうでなければ
// 数値を意識した照合順序（"10" が "2" の後に来る）。
func compareID(col *collate.Collator, a, b string) int {
	na, errA := strconv.ParseInt(a, 10, 64)
	nb, errB := strconv.ParseInt(b, 10, 64)
	if errA == nil && errB == nil {
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		}
		return 0
	}
	return col.CompareString(a, b)
}

func filterStatus(rows []Row, status string) []Row {
	s := strings.TrimSpace(status)
	if s == "" {
		return rows
	}
	out := rows[:0]
	if strings.EqualFold(s, StatusOverdue) {
		for _, r := range rows {
			if strings.EqualFold(r.Status, StatusActive) && r.Overdue {
				out = append(out, r)
			}
		}
		return out
	}
	for _, r := range rows {
		if strings.EqualFold(r.Status, s) {
			out = append(out, r)
		}
	}
	return out
}

// filterDate は保存されている日付文字列の先頭10文字とだけ比較する。
// upstream が YYYY-MM-DD 始まりで返す前提の割り切り。
func filterDate(rows []Row, date string) []Row {
	d := strings.TrimSpace(date)
	if d == "" {
		return rows
	}
	out := rows[:0]
	for _, r := range rows {
		v := r.Date
		if len(v) > 10 {
			v = v[:10]
		}
		if v == d {
			out = append(out, r)
		}
	}
	return out
}

func filterSearch(rows []Row, search string) []Row {
	q := strings.ToLower(strings.TrimSpace(search))
	if q == "" {
		return rows
	}
	out := rows[:0]
	for _, r := range rows {
		if containsFold(r.BorrowID, q) ||
			containsFold(r.ItemName, q) ||
			containsFold(r.Name, q) ||
			containsFold(r.Branch, q) ||
			containsFold(r.Department, q) {
			out = append(out, r)
		}
	}
	return out
}

// paginate はページ番号を [1, ceil(total/size)] に丸める。
// フィルタ変更で空ページに取り残されないための挙動。
func paginate(rows []Row, page, size int) PageResult {
	if !validPageSize(size) {
		size = defaultPageSize
	}
	total := len(rows)
	totalPages := (total + size - 1) / size

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		// 空コレクションでも 1 ページ目に立たせる
		if totalPages > 0 {
			page = totalPages
		} else {
			page = 1
		}
	}

	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	return PageResult{
		Items:      append([]Row{}, rows[start:end]...),
		Total:      total,
		Page:       page,
		PageSize:   size,
		TotalPages: totalPages,
	}
}

func validPageSize(size int) bool {
	for _, s := range PageSizes {
		if s == size {
			return true
		}
	}
	return false
}

func containsFold(s, lowerQ string) bool {
	return strings.Contains(strings.ToLower(s), lowerQ)
}
