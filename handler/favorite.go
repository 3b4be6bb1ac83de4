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

type Favorite struct {
	Config          *config.Config
	FavoriteService service.IFavoriteService
}

func (h *Favorite) RegisterRouter(r gin.IRouter) {
	g := r.Group("/api/v1/itineraries", authorize(h.Config))
	g.POST("/:itinerary_id/favorite", context.Wrap(h.Add))
	g.DELETE("/:itinerary_id/favorite", context.Wrap(h.Remove))

	r.GET("/api/v1/favorite-itineraries", authorize(h.Config), context.Wrap(h.ListMine))
}

func (h *Favorite) Add(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	itineraryID, err := parseUintParam(c, "itinerary_id")
	if err != nil {
		return err
	}

	resp, err := h.FavoriteService.Add(c.Request.Context(), userID.String(), itineraryID)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Favorite) Remove(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	itineraryID, err := parseUintParam(c, "itinerary_id")
	if err != nil {
		return err
	}

	if err := h.FavoriteService.Remove(c.Request.Context(), userID.String(), itineraryID); err != nil {
		return err
	}
	response.Success(c, "已取消收藏")
	return nil
}

func (h *Favorite) ListMine(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var query types.FavoriteListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	items, pagination, err := h.FavoriteService.ListMine(c.Request.Context(), userID.String(), &query)
	if err != nil {
		return err
	}
	response.Success(c, response.PageList{Items: items, Pagination: pagination})
	return nil
}
