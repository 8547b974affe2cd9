package assets

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"AMS-backend/internal/platform/upstream"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}
	r.GET("/assets", h.ListAssets)
	r.POST("/assets", h.CreateAsset)
	r.PUT("/assets/:id", h.UpdateAsset)
}

// ListAssets godoc
// @Summary 資産一覧（正規化済み、フリーテキスト検索つき）
// @Tags assets
// @Produce json
// @Param q query string false "search"
// @Param refresh query string false "1 で upstream から取り直す"
// @Success 200 {object} ListAssetsResponse
// @Router /assets [get]
func (h *Handler) ListAssets(c *gin.Context) {
	refresh := c.Query("refresh") == "1" || c.Query("refresh") == "true"
	items, err := h.svc.List(c.Request.Context(), c.Query("q"), refresh)
	if err != nil {
		c.JSON(toHTTPStatus(err), apiErrFrom(err))
		return
	}
	c.JSON(http.StatusOK, ListAssetsResponse{Items: items, Total: len(items)})
}

// CreateAsset godoc
// @Summary 資産の新規登録（multipart / form どちらも可）
// @Tags assets
// @Accept mpfd
// @Produce json
// @Success 201 {object} map[string]string
// @Router /assets [post]
func (h *Handler) CreateAsset(c *gin.Context) {
	form, err := bindAssetForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, apiErr(CodeInvalidArgument, err.Error()))
		return
	}
	if err := h.svc.Create(c.Request.Context(), form); err != nil {
		c.JSON(toHTTPStatus(err), apiErrFrom(err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "asset created"})
}

// UpdateAsset godoc
// @Summary 資産の更新
// @Tags assets
// @Accept mpfd
// @Produce json
// @Param id path string true "asset id"
// @Success 200 {object} map[string]string
// @Router /assets/{id} [put]
func (h *Handler) UpdateAsset(c *gin.Context) {
	form, err := bindAssetForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, apiErr(CodeInvalidArgument, err.Error()))
		return
	}
	if err := h.svc.Update(c.Request.Context(), c.Param("id"), form); err != nil {
		c.JSON(toHTTPStatus(err), apiErrFrom(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "asset updated"})
}

// bindAssetForm は multipart / URL エンコードのどちらからでもフォームを組む。
// 画像はバイト列のまま upstream へ渡す（ここでは保存しない）。
func bindAssetForm(c *gin.Context) (upstream.AssetForm, error) {
	form := upstream.AssetForm{
		ItemName:    c.PostForm("item_name"),
		Category:    c.PostForm("category"),
		Condition:   c.PostForm("condition"),
		QtyInStock:  c.DefaultPostForm("qty_in_stock", "0"),
		Owner:       c.PostForm("owner"),
		Description: c.PostForm("description"),
	}

	file, err := c.FormFile("picture")
	if err != nil {
		// 画像なしは正常系
		return form, nil
	}
	f, err := file.Open()
	if err != nil {
		return form, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return form, err
	}
	form.PictureName = file.Filename
	form.Picture = bytes.NewReader(data)
	return form, nil
}

// ===== helpers =====

type errDTO struct {
	Error struct {
		Code    Code   `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func apiErr(code Code, msg string) errDTO {
	var e errDTO
	e.Error.Code = code
	e.Error.Message = msg
	return e
}

func apiErrFrom(err error) errDTO {
	if api, ok := err.(*APIError); ok {
		return apiErr(api.Code, api.Message)
	}
	return apiErr(CodeInternal, err.Error())
}
