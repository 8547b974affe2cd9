package borrows

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	// レポート（貸出一覧の照会）
	r.GET("/report", h.GetReport)
	r.GET("/report/export", h.ExportReport)

	// 貸出リソース
	r.POST("/borrows", h.CreateBorrows)
	r.POST("/borrows/refresh", h.Refresh)
	r.PUT("/borrows/:id/status", h.UpdateStatus)
}

// ---------- handlers ----------

// GetReport godoc
// @Summary 貸出レポート（整列・絞り込み・ページングつき）
// @Tags report
// @Produce json
// @Param status query string false "active / returned / overdue など"
// @Param date query string false "YYYY-MM-DD"
// @Param q query string false "search"
// @Param page query int false "1 始まり"
// @Param page_size query int false "10 / 25 / 50 / 100"
// @Success 200 {object} PageResult
// @Router /report [get]
func (h *Handler) GetReport(c *gin.Context) {
	q := queryFrom(c)
	refresh := c.Query("refresh") == "1" || c.Query("refresh") == "true"

	res, err := h.svc.Report(c.Request.Context(), q, refresh)
	if err != nil {
		c.JSON(ToHTTPStatus(err), errorFromErr(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

// ExportReport godoc
// @Summary 絞り込み済みレポートの xlsx ダウンロード
// @Tags report
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Router /report/export [get]
func (h *Handler) ExportReport(c *gin.Context) {
	rows, err := h.svc.ReportRows(c.Request.Context(), queryFrom(c), false)
	if err != nil {
		c.JSON(ToHTTPStatus(err), errorFromErr(err))
		return
	}
	f, err := Export(rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorBody(ErrCodeInternal, err.Error()))
		return
	}
	defer f.Close()

	name := fmt.Sprintf("report-%s.xlsx", time.Now().Format("20060102-150405"))
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		// ヘッダ送信後なのでステータスは変えられない
		log.Printf("[WARN] report export write failed: %v", err)
	}
}

// CreateBorrows godoc
// @Summary 貸出の一括登録（資産行ごとに1件）
// @Tags report
// @Accept json
// @Produce json
// @Param body body CreateBorrowRequest true "borrow request"
// @Success 201 {object} CreateBorrowResponse
// @Router /borrows [post]
func (h *Handler) CreateBorrows(c *gin.Context) {
	var req CreateBorrowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(ErrCodeInvalidArgument, "invalid json or missing required fields"))
		return
	}

	resp, err := h.svc.CreateBatch(c.Request.Context(), req)
	if err != nil {
		// 部分成功でも作成済み分は返す
		resp.Error = errText(err)
		c.JSON(ToHTTPStatus(err), resp)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Refresh godoc
// @Summary 貸出コレクションを upstream から取り直す
// @Tags report
// @Produce json
// @Success 200 {object} map[string]string
// @Router /borrows/refresh [post]
func (h *Handler) Refresh(c *gin.Context) {
	if err := h.svc.Load(c.Request.Context()); err != nil {
		c.JSON(ToHTTPStatus(err), errorFromErr(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "refreshed"})
}

// UpdateStatus godoc
// @Summary 貸出1件のステータス変更
// @Tags report
// @Accept json
// @Produce json
// @Param id path string true "borrow id"
// @Param body body UpdateStatusRequest true "status"
// @Success 200 {object} map[string]string
// @Router /borrows/{id}/status [put]
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(ErrCodeInvalidArgument, "invalid json"))
		return
	}
	if err := h.svc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		c.JSON(ToHTTPStatus(err), errorFromErr(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "status updated"})
}

// ---------- helpers ----------

func queryFrom(c *gin.Context) Query {
	return Query{
		Status:   c.Query("status"),
		Date:     c.Query("date"),
		Search:   c.Query("q"),
		Page:     parseIntDefault(c.Query("page"), 1),
		PageSize: parseIntDefault(c.Query("page_size"), defaultPageSize),
	}
}

func parseIntDefault(s string, d int) int {
	if s == "" {
		return d
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return d
	}
	return v
}

type errorDTO struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func errorBody(code, msg string) errorDTO {
	var e errorDTO
	e.Error.Code = code
	e.Error.Message = msg
	return e
}

func errorFromErr(err error) errorDTO {
	if de, ok := err.(*DomainError); ok {
		return errorBody(de.Code, de.Message)
	}
	return errorBody(ErrCodeInternal, err.Error())
}

func errText(err error) string {
	if de, ok := err.(*DomainError); ok {
		return de.Message
	}
	return err.Error()
}
