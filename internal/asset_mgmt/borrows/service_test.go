package borrows

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AMS-backend/internal/platform/upstream"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// fakeGateway は upstream を台本どおりに演じる。
type fakeGateway struct {
	fetchPayload any
	fetchErr     error

	createdIDs []string // CreateBorrow が順に返す識別子
	createErr  error
	failAt     int // n 件目の CreateBorrow で失敗させる（1始まり、0なら失敗なし）
	createLog  []upstream.BorrowForm

	statusErr error
	statusLog []string
}

func (g *fakeGateway) FetchBorrows(ctx context.Context) (any, error) {
	return g.fetchPayload, g.fetchErr
}

func (g *fakeGateway) CreateBorrow(ctx context.Context, form upstream.BorrowForm) (string, error) {
	g.createLog = append(g.createLog, form)
	if g.failAt > 0 && len(g.createLog) == g.failAt {
		return "", g.createErr
	}
	id := g.createdIDs[len(g.createLog)-1]
	return id, nil
}

func (g *fakeGateway) UpdateBorrowStatus(ctx context.Context, id, status string) error {
	if g.statusErr != nil {
		return g.statusErr
	}
	g.statusLog = append(g.statusLog, id+"="+status)
	return nil
}

func newTestService(gw Gateway) *Service {
	s := NewService(gw)
	s.clock = fixedClock{t: time.Date(2026, 3, 15, 12, 0, 0, 0, time.Local)}
	return s
}

// upstream の失敗は空集合へ縮退し、エラーにしない
func TestLoadDegradesOnUpstreamFailure(t *testing.T) {
	gw := &fakeGateway{fetchErr: errors.New("boom")}
	s := newTestService(gw)

	require.NoError(t, s.Load(context.Background()))
	assert.True(t, s.store.Loaded())
	assert.Empty(t, s.store.Snapshot())
}

func TestLoadPropagatesContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	gw := &fakeGateway{fetchErr: ctx.Err()}
	s := newTestService(gw)

	err := s.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, s.store.Loaded())
}

func TestCreateBatchAppendsPerLine(t *testing.T) {
	gw := &fakeGateway{createdIDs: []string{"101", "102"}}
	s := newTestService(gw)
	s.store.Replace([]Borrow{})

	resp, err := s.CreateBatch(context.Background(), CreateBorrowRequest{
		BorrowID: "B-1",
		Name:     "山田",
		Status:   StatusActive,
		Assets: []BorrowLine{
			{AssetID: "7", ItemName: "プロジェクタ", Qty: 1},
			{AssetID: "8", ItemName: "モニタ", Qty: 2},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Created, 2)

	// サーバ採番の識別子が勝つ
	assert.Equal(t, "101", resp.Created[0].ID)
	assert.Equal(t, "101", resp.Created[0].BorrowingID)
	assert.Equal(t, "102", resp.Created[1].ID)

	// 成功するたびに手元へ追記されている
	snap := s.store.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "B-1", snap[0].BorrowID)
}

// 途中失敗: 失敗行以降は送らず、追記済み分は巻き戻さない
func TestCreateBatchStopsAtFirstFailure(t *testing.T) {
	gw := &fakeGateway{
		createdIDs: []string{"101", "", ""},
		failAt:     2,
		createErr:  &upstream.Error{Status: 500, Message: "insert failed"},
	}
	s := newTestService(gw)
	s.store.Replace([]Borrow{})

	resp, err := s.CreateBatch(context.Background(), CreateBorrowRequest{
		BorrowID: "B-1",
		Assets: []BorrowLine{
			{AssetID: "1", Qty: 1},
			{AssetID: "2", Qty: 1},
			{AssetID: "3", Qty: 1},
		},
	})
	require.Error(t, err)
	assert.Equal(t, 2, resp.FailedLine)
	assert.Len(t, resp.Created, 1)
	// 3行目は送信すらしない
	assert.Len(t, gw.createLog, 2)
	// 1行目は手元に残る
	assert.Len(t, s.store.Snapshot(), 1)

	var de *DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, ErrCodeUpstream, de.Code)
	assert.Contains(t, de.Message, "line 2")
}

func TestCreateBatchValidation(t *testing.T) {
	s := newTestService(&fakeGateway{})

	_, err := s.CreateBatch(context.Background(), CreateBorrowRequest{Assets: []BorrowLine{{AssetID: "1"}}})
	var de *DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, ErrCodeInvalidArgument, de.Code)

	_, err = s.CreateBatch(context.Background(), CreateBorrowRequest{BorrowID: "B-1"})
	require.ErrorAs(t, err, &de)
	assert.Equal(t, ErrCodeInvalidArgument, de.Code)
}

func TestUpdateStatusPatchesOnSuccessOnly(t *testing.T) {
	gw := &fakeGateway{}
	s := newTestService(gw)
	s.store.Replace([]Borrow{
		{ID: "1", Status: StatusActive},
		{ID: "2", Status: StatusActive},
	})

	require.NoError(t, s.UpdateStatus(context.Background(), "2", StatusReturned))
	snap := s.store.Snapshot()
	assert.Equal(t, StatusActive, snap[0].Status)
	assert.Equal(t, StatusReturned, snap[1].Status)
}

func TestUpdateStatusKeepsLocalOnFailure(t *testing.T) {
	gw := &fakeGateway{statusErr: &upstream.Error{Status: 404, Message: "no such record"}}
	s := newTestService(gw)
	s.store.Replace([]Borrow{{ID: "1", Status: StatusActive}})

	err := s.UpdateStatus(context.Background(), "1", StatusReturned)
	require.Error(t, err)
	assert.Equal(t, StatusActive, s.store.Snapshot()[0].Status)

	var de *DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "no such record", de.Message)
}

// 取得 → 申請 → 検索 の一巡
func TestReportRoundTrip(t *testing.T) {
	gw := &fakeGateway{
		fetchPayload: decode(t, `[{"id":1,"data":{"borrowID":"B-0","item_name":"既存","qty":1,"status":"active","return_date":"2026-04-01"}}]`),
		createdIDs:   []string{"2"},
	}
	s := newTestService(gw)

	// 初回 Report が Load を誘発する
	page, err := s.Report(context.Background(), Query{}, false)
	require.NoError(t, err)
	require.Equal(t, 1, page.Total)

	_, err = s.CreateBatch(context.Background(), CreateBorrowRequest{
		BorrowID:   "B-9",
		ReturnDate: "2026-04-02",
		Status:     StatusActive,
		Assets:     []BorrowLine{{AssetID: "7", ItemName: "新規", Qty: 1}},
	})
	require.NoError(t, err)

	page, err = s.Report(context.Background(), Query{Search: "新規"}, false)
	require.NoError(t, err)
	require.Equal(t, 1, page.Total)
	assert.Equal(t, "2", page.Items[0].ID)
	assert.Equal(t, "B-9", page.Items[0].BorrowID)
}

func TestStorePatchStatusMiss(t *testing.T) {
	st := NewStore()
	st.Replace([]Borrow{{ID: "1"}})
	assert.False(t, st.PatchStatus("99", StatusReturned))
	assert.False(t, st.PatchStatus("", StatusReturned))
}
