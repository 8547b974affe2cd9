// Package upstream は社外の資産・貸出・社員サービスへの HTTP クライアント。
// 認証ヘッダの付与とレスポンス解釈だけを受け持ち、正規化は各ドメイン側で行う。
package upstream

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// Endpoint は upstream リソース1つ分の接続先。
type Endpoint struct {
	URL   string
	Token string
}

type IDGen interface {
	New() (string, error)
}

type ulidGen struct{}

func (ulidGen) New() (string, error) {
	t := time.Now().UTC()
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(t), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

type Client struct {
	httpc     *http.Client
	assets    Endpoint
	borrows   Endpoint
	employees Endpoint
	id        IDGen
}

func NewClient(assets, borrows, employees Endpoint) *Client {
	return &Client{
		httpc:     &http.Client{Timeout: 15 * time.Second},
		assets:    assets,
		borrows:   borrows,
		employees: employees,
		id:        ulidGen{},
	}
}

// ===== 取得系 =====

// FetchAssets は資産一覧の生ペイロードを返す。形の解釈は assets 側。
func (c *Client) FetchAssets(ctx context.Context) (any, error) {
	return c.getJSON(ctx, c.assets, c.assets.URL)
}

// FetchBorrows は貸出一覧の生ペイロードを返す。非2xxはエラーとして返すが、
// このリソースは呼び出し側で空集合へ縮退させる運用（レポートを落とさない）。
func (c *Client) FetchBorrows(ctx context.Context) (any, error) {
	return c.getJSON(ctx, c.borrows, c.borrows.URL)
}

// FetchEmployees は社員名簿の生ペイロードを返す。
func (c *Client) FetchEmployees(ctx context.Context, name string) (any, error) {
	u := c.employees.URL
	if name != "" {
		sep := "?"
		if strings.Contains(u, "?") {
			sep = "&"
		}
		u = u + sep + "name=" + url.QueryEscape(name)
	}
	return c.getJSON(ctx, c.employees, u)
}

func (c *Client) getJSON(ctx context.Context, ep Endpoint, rawURL string) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	setHeaders(req, ep.Token, "")

	res, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &Error{Status: res.StatusCode, Message: errorMessage(body, res.StatusCode)}
	}
	if len(body) == 0 {
		return nil, nil
	}
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("upstream returned invalid json: %w", err)
	}
	return payload, nil
}

// ===== 更新系 =====

// AssetForm は資産作成・更新で upstream に渡すフィールド群。
// Picture が nil なら URL エンコード、あれば multipart で送る。
type AssetForm struct {
	ItemName    string
	Category    string
	Condition   string
	QtyInStock  string
	Owner       string
	Description string
	PictureName string
	Picture     io.Reader
}

func (f AssetForm) values() url.Values {
	v := url.Values{}
	v.Set("item_name", f.ItemName)
	v.Set("category", f.Category)
	v.Set("condition", f.Condition)
	v.Set("qty_in_stock", f.QtyInStock)
	v.Set("owner", f.Owner)
	v.Set("description", f.Description)
	return v
}

func (c *Client) CreateAsset(ctx context.Context, form AssetForm) error {
	return c.sendAsset(ctx, http.MethodPost, c.assets.URL, form)
}

func (c *Client) UpdateAsset(ctx context.Context, id string, form AssetForm) error {
	return c.sendAsset(ctx, http.MethodPut, joinURL(c.assets.URL, url.PathEscape(id)), form)
}

func (c *Client) sendAsset(ctx context.Context, method, rawURL string, form AssetForm) error {
	var body io.Reader
	contentType := "application/x-www-form-urlencoded"

	if form.Picture != nil {
		var buf strings.Builder
		// multipart はメモリ上で組み立てる（画像は小さい前提の運用）
		w := multipart.NewWriter(&buf)
		for k, vs := range form.values() {
			for _, v := range vs {
				if err := w.WriteField(k, v); err != nil {
					return err
				}
			}
		}
		part, err := w.CreateFormFile("picture", form.PictureName)
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, form.Picture); err != nil {
			return err
		}
		if err := w.Close(); err != nil {
			return err
		}
		body = strings.NewReader(buf.String())
		contentType = w.FormDataContentType()
	} else {
		body = strings.NewReader(form.values().Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return err
	}
	setHeaders(req, c.assets.Token, contentType)
	if err := c.addIdempotencyKey(req); err != nil {
		return err
	}

	res, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	b, _ := io.ReadAll(res.Body)
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &Error{Status: res.StatusCode, Message: errorMessage(b, res.StatusCode)}
	}
	return nil
}

// BorrowForm は貸出作成1件分のフィールド群。
type BorrowForm struct {
	AssetID    string
	BorrowID   string
	Qty        string
	Name       string
	Branch     string
	Department string
	Date       string
	ReturnDate string
	Status     string
}

// CreateBorrow は貸出を1件登録し、サーバ採番の識別子を返す。
func (c *Client) CreateBorrow(ctx context.Context, form BorrowForm) (string, error) {
	v := url.Values{}
	v.Set("assetID", form.AssetID)
	v.Set("borrowID", form.BorrowID)
	v.Set("qty", form.Qty)
	v.Set("name", form.Name)
	v.Set("branch", form.Branch)
	v.Set("department", form.Department)
	// datetime-local の "T" 区切りは upstream が受けない
	v.Set("date", strings.Replace(form.Date, "T", " ", 1))
	v.Set("return_date", strings.Replace(form.ReturnDate, "T", " ", 1))
	v.Set("status", form.Status)

	body, err := c.send(ctx, http.MethodPost, c.borrows, c.borrows.URL, v)
	if err != nil {
		return "", err
	}

	var echo struct {
		BorrowingID json.RawMessage `json:"borrowingId"`
		ID          json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(body, &echo); err != nil {
		return "", fmt.Errorf("upstream create echo is not json: %w", err)
	}
	if id := rawID(echo.BorrowingID); id != "" {
		return id, nil
	}
	if id := rawID(echo.ID); id != "" {
		return id, nil
	}
	return "", fmt.Errorf("upstream create echo has no identifier")
}

// UpdateBorrowStatus は貸出1件のステータスだけを更新する。
func (c *Client) UpdateBorrowStatus(ctx context.Context, id, status string) error {
	v := url.Values{}
	v.Set("status", status)
	_, err := c.send(ctx, http.MethodPut, c.borrows, joinURL(c.borrows.URL, url.PathEscape(id)), v)
	return err
}

func (c *Client) send(ctx context.Context, method string, ep Endpoint, rawURL string, v url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, strings.NewReader(v.Encode()))
	if err != nil {
		return nil, err
	}
	setHeaders(req, ep.Token, "application/x-www-form-urlencoded")
	if err := c.addIdempotencyKey(req); err != nil {
		return nil, err
	}

	res, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &Error{Status: res.StatusCode, Message: errorMessage(body, res.StatusCode)}
	}
	return body, nil
}

func (c *Client) addIdempotencyKey(req *http.Request) error {
	key, err := c.id.New()
	if err != nil {
		return err
	}
	req.Header.Set("Idempotency-Key", key)
	return nil
}

// ===== helpers =====

func setHeaders(req *http.Request, token, contentType string) {
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		// バックエンドによってヘッダの流儀が違うので両方付ける（余分でも害はない）
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("x-api-token", token)
	}
}

func joinURL(base, p string) string {
	b := strings.TrimSuffix(base, "/")
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return b + p
}

func rawID(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return fmt.Sprintf("%d", int64(x))
	default:
		return ""
	}
}
