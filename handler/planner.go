package handler

import (
	"Tripper/config"
	"Tripper/pkg/context"
	"Tripper/pkg/response"
	"Tripper/service"
	"Tripper/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Planner struct {
	Config         *config.Config
	PlannerService service.IPlannerService
}

func (h *Planner) RegisterRouter(r gin.IRouter) {
	g := r.Group("/api/v1/itinerary-planner", authorize(h.Config))
	g.POST("/create-from-ai", context.Wrap(h.CreateFromAI))
}

func (h *Planner) CreateFromAI(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.CreateFromAIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	resp, err := h.PlannerService.CreateFromAI(c.Request.Context(), userID.String(), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
