package handler

import (
	"Tripper/config"
	"Tripper/pkg/context"
	"Tripper/pkg/response"
	"Tripper/service"
	"Tripper/types"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Share struct {
	Config       *config.Config
	ShareService service.IShareService
}

func (h *Share) RegisterRouter(r gin.IRouter) {
	g := r.Group("/api/v1/itinerary-shares", authorize(h.Config))
	g.POST("", context.Wrap(h.Create))
	g.GET("", context.Wrap(h.List))
	g.PATCH("/:share_id", context.Wrap(h.Update))
	g.DELETE("/:share_id", context.Wrap(h.Delete))
	g.GET("/search-users-to-share", context.Wrap(h.SearchUsers))
	g.GET("/me/shared-itineraries", context.Wrap(h.SharedWithMe))
}

func (h *Share) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.CreateShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	resp, err := h.ShareService.Create(c.Request.Context(), userID.String(), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Share) List(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var query types.ShareListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	items, pagination, err := h.ShareService.ListForItinerary(c.Request.Context(), userID.String(), &query)
	if err != nil {
		return err
	}
	response.Success(c, response.PageList{Items: items, Pagination: pagination})
	return nil
}

func (h *Share) Update(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	shareID, err := parseUintParam(c, "share_id")
	if err != nil {
		return err
	}

	var req types.UpdateShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	if err := h.ShareService.Update(c.Request.Context(), userID.String(), shareID, &req); err != nil {
		return err
	}
	response.Success(c, "已更新")
	return nil
}

func (h *Share) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	shareID, err := parseUintParam(c, "share_id")
	if err != nil {
		return err
	}

	if err := h.ShareService.Delete(c.Request.Context(), userID.String(), shareID); err != nil {
		return err
	}
	response.Success(c, "已取消分享")
	return nil
}

func (h *Share) SharedWithMe(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	items, pagination, err := h.ShareService.SharedWithMe(c.Request.Context(), userID.String(), page, limit)
	if err != nil {
		return err
	}
	response.Success(c, response.PageList{Items: items, Pagination: pagination})
	return nil
}

func (h *Share) SearchUsers(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var query types.SearchUsersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		return response.NewError(http.StatusBadRequest, "缺少 keyword")
	}

	resp, err := h.ShareService.SearchUsers(c.Request.Context(), userID.String(), &query)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
