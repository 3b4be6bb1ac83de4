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

type Auth struct {
	Config        *config.Config
	AuthService   service.IAuthService
	GoogleService service.IGoogleAuthService
	OtpService    service.IOtpService
}

func (h *Auth) RegisterRouter(r gin.IRouter) {
	g := r.Group("/api/v1")
	g.POST("/register", context.Wrap(h.Register))
	g.POST("/login", context.Wrap(h.Login))
	g.POST("/login/refresh", context.Wrap(h.Refresh))
	g.POST("/login/google", context.Wrap(h.GoogleLogin))
	g.POST("/otp/request", context.Wrap(h.RequestOTP))
	g.POST("/otp/verify", context.Wrap(h.VerifyOTP))
	g.POST("/password/reset-by-email", context.Wrap(h.ResetPassword))

	auth := g.Group("", authorize(h.Config))
	auth.POST("/logout", context.Wrap(h.Logout))
	auth.POST("/logout/all", context.Wrap(h.LogoutAll))
}

func (h *Auth) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	resp, err := h.AuthService.Register(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	resp, err := h.AuthService.Login(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Auth) Refresh(c *gin.Context) error {
	var req types.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	resp, err := h.AuthService.Refresh(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Auth) GoogleLogin(c *gin.Context) error {
	var req types.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	resp, err := h.GoogleService.Login(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Auth) Logout(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.LogoutRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.AuthService.Logout(c.Request.Context(), userID.String(), &req); err != nil {
		return err
	}
	response.Success(c, "已退出登录")
	return nil
}

func (h *Auth) LogoutAll(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	if err := h.AuthService.LogoutAll(c.Request.Context(), userID.String()); err != nil {
		return err
	}
	response.Success(c, "已退出所有设备")
	return nil
}

func (h *Auth) RequestOTP(c *gin.Context) error {
	var req types.OTPRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	resp, err := h.OtpService.Request(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Auth) VerifyOTP(c *gin.Context) error {
	var req types.OTPVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	resp, err := h.OtpService.Verify(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Auth) ResetPassword(c *gin.Context) error {
	var req types.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	if err := h.OtpService.ResetPassword(c.Request.Context(), &req); err != nil {
		return err
	}
	response.Success(c, "密码已重置")
	return nil
}
