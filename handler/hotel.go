package handler

import (
	"Tripper/config"
	"Tripper/models"
	"Tripper/pkg/context"
	"Tripper/pkg/response"
	"Tripper/service"
	"Tripper/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Hotel struct {
	Config       *config.Config
	PlaceService service.IPlaceService
}

func (h *Hotel) RegisterRouter(r gin.IRouter) {
	g := r.Group("/api/v1/hotels", authorize(h.Config))
	g.GET("", context.Wrap(h.List))
	g.GET("/:place_id", context.Wrap(h.Get))
}

func (h *Hotel) Get(c *gin.Context) error {
	placeID, err := parseUintParam(c, "place_id")
	if err != nil {
		return err
	}

	resp, err := h.PlaceService.GetByType(c.Request.Context(), placeID, models.PlaceTypeHotel)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Hotel) List(c *gin.Context) error {
	var query types.PlaceListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}
	query.Type = models.PlaceTypeHotel

	items, pagination, err := h.PlaceService.List(c.Request.Context(), &query)
	if err != nil {
		return err
	}
	response.Success(c, response.PageList{Items: items, Pagination: pagination})
	return nil
}
