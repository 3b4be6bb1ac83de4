package service

import (
	"Tripper/config"
	"Tripper/dao"
	"Tripper/pkg/encrypt"
	"Tripper/pkg/jwt"
	"Tripper/pkg/log"
	"Tripper/pkg/response"
	"Tripper/types"
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	otpExpire       = 5 * time.Minute
	otpRateInterval = time.Minute
	resetExpire     = 10 * time.Minute
)

var _ IOtpService = (*OtpService)(nil)

type IOtpService interface {
	// Request 发验证码邮件，返回绑定 email+code 的一次性凭证
	Request(ctx context.Context, req *types.OTPRequestRequest) (*types.OTPRequestResponse, error)

	// Verify 校验验证码，通过后签发重置凭证
	Verify(ctx context.Context, req *types.OTPVerifyRequest) (*types.OTPVerifyResponse, error)

	// ResetPassword 凭重置凭证改密码
	ResetPassword(ctx context.Context, req *types.ResetPasswordRequest) error
}

type OtpService struct {
	UserDAO *dao.Users
	Mail    IMailService
	Redis   *redis.Client
	Conf    *config.Config
}

func (s *OtpService) Request(ctx context.Context, req *types.OTPRequestRequest) (*types.OTPRequestResponse, error) {
	exist := s.UserDAO.IsEmailExist(ctx, req.Email)
	switch req.Purpose {
	case types.OTPPurposeRegister:
		if exist {
			return nil, response.NewError(409, "该邮箱已注册")
		}
	case types.OTPPurposeRecovery:
		if !exist {
			return nil, response.NewError(404, "该邮箱未注册")
		}
	}

	// 同一邮箱一分钟内只发一次
	ok, err := s.Redis.SetNX(ctx, "otp:rate:"+req.Email, 1, otpRateInterval).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, response.NewError(429, "验证码请求过于频繁，请稍后再试")
	}

	code, err := genOTPCode()
	if err != nil {
		return nil, err
	}

	token, err := jwt.GenerateOTPToken([]byte(s.Conf.Jwt.Secret), req.Email, hashOTPCode(code), otpExpire)
	if err != nil {
		return nil, err
	}

	if err := s.Mail.SendOTP(req.Email, code); err != nil {
		log.L.Error("send otp mail failed", zap.String("email", req.Email), zap.Error(err))
		return nil, response.NewError(500, "验证码发送失败")
	}

	return &types.OTPRequestResponse{OtpToken: token}, nil
}

func (s *OtpService) Verify(ctx context.Context, req *types.OTPVerifyRequest) (*types.OTPVerifyResponse, error) {
	claims, err := jwt.ParseOTPToken([]byte(s.Conf.Jwt.Secret), req.OtpToken)
	if err != nil {
		return nil, response.NewError(400, "验证码已过期或无效")
	}

	got := hashOTPCode(req.Code)
	if subtle.ConstantTimeCompare([]byte(got), []byte(claims.CodeHash)) != 1 {
		return nil, response.NewError(400, "验证码错误")
	}

	// token 本身是无状态的，用 redis 保证只能核销一次
	usedKey := "otp:used:" + hashOTPCode(req.OtpToken)
	ok, err := s.Redis.SetNX(ctx, usedKey, 1, otpExpire).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, response.NewError(400, "验证码已使用")
	}

	resp := &types.OTPVerifyResponse{Email: claims.Email}

	// 注册场景下邮箱还没有账号，核销完直接返回；找回密码则追发重置凭证
	user, err := s.UserDAO.FindByEmail(ctx, claims.Email)
	if err != nil {
		return resp, nil
	}
	resp.ResetToken, err = jwt.GenerateToken([]byte(s.Conf.Jwt.Secret), user.UserID, jwt.TypeReset, resetExpire)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *OtpService) ResetPassword(ctx context.Context, req *types.ResetPasswordRequest) error {
	claims, err := jwt.ParseToken([]byte(s.Conf.Jwt.Secret), jwt.TypeReset, req.ResetToken)
	if err != nil {
		return response.NewError(400, "重置凭证已过期或无效")
	}

	usedKey := "otp:reset-used:" + hashOTPCode(req.ResetToken)
	ok, err := s.Redis.SetNX(ctx, usedKey, 1, resetExpire).Result()
	if err != nil {
		return err
	}
	if !ok {
		return response.NewError(400, "重置凭证已使用")
	}

	_, err = s.UserDAO.UpdateById(ctx, claims.UserID, map[string]any{
		"password":   encrypt.HashPassword(req.NewPassword),
		"updated_at": time.Now(),
	})
	return err
}

func genOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func hashOTPCode(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
