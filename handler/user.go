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

type User struct {
	Config      *config.Config
	UserService service.IUserService
	AuthService service.IAuthService
}

func (h *User) RegisterRouter(r gin.IRouter) {
	g := r.Group("/api/v1/users", authorize(h.Config))
	g.GET("/me", context.Wrap(h.GetMe))
	g.PATCH("/me", context.Wrap(h.UpdateMe))
	g.DELETE("/me", context.Wrap(h.DeleteMe))
	g.PATCH("/me/password", context.Wrap(h.ChangePassword))
	g.POST("/me/avatar", context.Wrap(h.UploadAvatar))
	g.POST("/me/fcm-token", context.Wrap(h.RegisterFcmToken))
}

func (h *User) GetMe(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	resp, err := h.UserService.GetMe(c.Request.Context(), userID.String())
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *User) UpdateMe(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	resp, err := h.UserService.UpdateMe(c.Request.Context(), userID.String(), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *User) DeleteMe(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	if err := h.UserService.DeleteMe(c.Request.Context(), userID.String()); err != nil {
		return err
	}
	response.Success(c, "账号已删除")
	return nil
}

func (h *User) ChangePassword(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	if err := h.UserService.ChangePassword(c.Request.Context(), userID.String(), &req); err != nil {
		return err
	}
	response.Success(c, "密码已修改")
	return nil
}

func (h *User) UploadAvatar(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	header, err := c.FormFile("image")
	if err != nil {
		return response.NewError(400, "请选择图片")
	}

	resp, err := h.UserService.UploadAvatar(c.Request.Context(), userID.String(), header)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *User) RegisterFcmToken(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.RegisterFcmTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	if err := h.AuthService.RegisterFcmToken(c.Request.Context(), userID.String(), &req); err != nil {
		return err
	}
	response.Success(c, "推送 token 已注册")
	return nil
}
