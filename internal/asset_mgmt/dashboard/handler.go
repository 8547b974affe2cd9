package dashboard

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"AMS-backend/internal/asset_mgmt/assets"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}
	r.GET("/dashboard", h.GetSummary)
}

// GetSummary godoc
// @Summary ダッシュボード統計（スカラー5つ・内訳2つ・期限超過一覧）
// @Tags dashboard
// @Produce json
// @Success 200 {object} Summary
// @Router /dashboard [get]
func (h *Handler) GetSummary(c *gin.Context) {
	res, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		c.JSON(statusOf(err), gin.H{"error": gin.H{
			"code":    "UPSTREAM",
			"message": err.Error(),
		}})
		return
	}
	c.JSON(http.StatusOK, res)
}

func statusOf(err error) int {
	var api *assets.APIError
	if errors.As(err, &api) {
		return http.StatusBadGateway
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}
