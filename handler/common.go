package handler

import (
	"Tripper/config"
	"Tripper/middleware"
	"Tripper/pkg/response"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

func authorize(cfg *config.Config) gin.HandlerFunc {
	return middleware.Auth(
		[]byte(cfg.Jwt.Secret),
		time.Duration(cfg.Jwt.AccessExpireMinutes)*time.Minute,
	)
}

func parseUintParam(c *gin.Context, name string) (uint64, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		return 0, response.NewError(400, "路径参数 "+name+" 无效")
	}
	return v, nil
}
