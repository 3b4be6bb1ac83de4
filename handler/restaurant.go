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

type Restaurant struct {
	Config       *config.Config
	PlaceService service.IPlaceService
}

func (h *Restaurant) RegisterRouter(r gin.IRouter) {
	g := r.Group("/api/v1/restaurants", authorize(h.Config))
	g.GET("", context.Wrap(h.List))
	g.GET("/:place_id", context.Wrap(h.Get))
	g.PUT("/:place_id/detail", context.Wrap(h.SetDetail))
}

func (h *Restaurant) Get(c *gin.Context) error {
	placeID, err := parseUintParam(c, "place_id")
	if err != nil {
		return err
	}

	resp, err := h.PlaceService.GetByType(c.Request.Context(), placeID, models.PlaceTypeRestaurant)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Restaurant) List(c *gin.Context) error {
	var query types.PlaceListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}
	query.Type = models.PlaceTypeRestaurant

	items, pagination, err := h.PlaceService.List(c.Request.Context(), &query)
	if err != nil {
		return err
	}
	response.Success(c, response.PageList{Items: items, Pagination: pagination})
	return nil
}

func (h *Restaurant) SetDetail(c *gin.Context) error {
	placeID, err := parseUintParam(c, "place_id")
	if err != nil {
		return err
	}

	var req types.RestaurantDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	if err := h.PlaceService.SetRestaurantDetail(c.Request.Context(), placeID, &req); err != nil {
		return err
	}
	response.Success(c, "已保存")
	return nil
}
