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

// Admin 用户管理后台，角色校验在 service 层
type Admin struct {
	Config       *config.Config
	AdminService service.IAdminService
}

func (h *Admin) RegisterRouter(r gin.IRouter) {
	g := r.Group("/api/v1/admin/users", authorize(h.Config))
	g.GET("", context.Wrap(h.List))
	g.POST("", context.Wrap(h.Create))
	g.GET("/:user_id", context.Wrap(h.Get))
	g.PATCH("/:user_id", context.Wrap(h.Update))
	g.DELETE("/:user_id", context.Wrap(h.Delete))
}

func (h *Admin) List(c *gin.Context) error {
	actorID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var query types.AdminUserListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	items, pagination, err := h.AdminService.ListUsers(c.Request.Context(), actorID.String(), &query)
	if err != nil {
		return err
	}
	response.Success(c, response.PageList{Items: items, Pagination: pagination})
	return nil
}

func (h *Admin) Create(c *gin.Context) error {
	actorID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.AdminCreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	resp, err := h.AdminService.CreateUser(c.Request.Context(), actorID.String(), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Admin) Get(c *gin.Context) error {
	actorID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	resp, err := h.AdminService.GetUser(c.Request.Context(), actorID.String(), c.Param("user_id"))
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Admin) Update(c *gin.Context) error {
	actorID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.AdminUpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	resp, err := h.AdminService.UpdateUser(c.Request.Context(), actorID.String(), c.Param("user_id"), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Admin) Delete(c *gin.Context) error {
	actorID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	if err := h.AdminService.DeleteUser(c.Request.Context(), actorID.String(), c.Param("user_id")); err != nil {
		return err
	}
	response.Success(c, "用户已删除")
	return nil
}
