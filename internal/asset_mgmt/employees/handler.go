package employees

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}
	r.GET("/employees", h.SearchEmployees)
}

type ListEmployeesResponse struct {
	Items []Employee `json:"items"`
	Total int        `json:"total"`
}

// SearchEmployees godoc
// @Summary 社員名簿の検索（セッション中のキャッシュに対する部分一致）
// @Tags employees
// @Produce json
// @Param name query string false "name substring"
// @Param refresh query string false "1 で名簿を取り直す"
// @Param debounce query string false "1 で入力をまとめてから検索"
// @Success 200 {object} ListEmployeesResponse
// @Success 204 "より新しい入力に破棄された"
// @Router /employees [get]
func (h *Handler) SearchEmployees(c *gin.Context) {
	name := c.Query("name")

	var (
		items []Employee
		err   error
	)
	if c.Query("debounce") == "1" {
		items, err = h.svc.Suggest(c.Request.Context(), name)
		if errors.Is(err, ErrSuperseded) {
			c.Status(http.StatusNoContent)
			return
		}
	} else {
		refresh := c.Query("refresh") == "1" || c.Query("refresh") == "true"
		items, err = h.svc.Search(c.Request.Context(), name, refresh)
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": gin.H{
			"code":    "UPSTREAM",
			"message": err.Error(),
		}})
		return
	}
	c.JSON(http.StatusOK, ListEmployeesResponse{Items: items, Total: len(items)})
}
