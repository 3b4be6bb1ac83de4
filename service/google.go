package service

import (
	"Tripper/config"
	"Tripper/dao"
	"Tripper/models"
	"Tripper/pkg/encrypt"
	"Tripper/pkg/log"
	"Tripper/pkg/response"
	"Tripper/types"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	goauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
	"gorm.io/gorm"
)

var _ IGoogleAuthService = (*GoogleAuthService)(nil)

type IGoogleAuthService interface {
	// Login 用 Google access token 换 userinfo，账号不存在则自动注册
	Login(ctx context.Context, req *types.GoogleLoginRequest) (*types.TokenResponse, error)
}

type GoogleAuthService struct {
	UserDAO  *dao.Users
	TokenDAO *dao.FCMTokenDAO
	Conf     *config.Config
}

func (s *GoogleAuthService) Login(ctx context.Context, req *types.GoogleLoginRequest) (*types.TokenResponse, error) {
	svc, err := goauth2.NewService(ctx, option.WithTokenSource(
		oauth2.StaticTokenSource(&oauth2.Token{AccessToken: req.AccessToken}),
	))
	if err != nil {
		return nil, err
	}

	// 配置了 client_id 时校验受众，别家应用签发的 token 不能用来登录
	if s.Conf.Google.ClientID != "" {
		ti, err := svc.Tokeninfo().Context(ctx).Do()
		if err != nil {
			log.L.Warn("google tokeninfo failed", zap.Error(err))
			return nil, response.NewError(401, "Google 授权无效")
		}
		if !audienceMatches(s.Conf.Google.ClientID, ti.Audience, ti.IssuedTo) {
			return nil, response.NewError(401, "Google 授权不属于本应用")
		}
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		log.L.Warn("google userinfo failed", zap.Error(err))
		return nil, response.NewError(401, "Google 授权无效")
	}
	if info.Email == "" || info.VerifiedEmail == nil || !*info.VerifiedEmail {
		return nil, response.NewError(401, "Google 邮箱未验证")
	}

	user, err := s.UserDAO.FindByEmail(ctx, info.Email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user, err = s.createFromGoogle(ctx, info)
		if err != nil {
			return nil, err
		}
	}

	if req.FcmToken != "" {
		if err := s.TokenDAO.Upsert(ctx, user.UserID, req.FcmToken, req.Device); err != nil {
			log.L.Warn("register fcm token failed", zap.String("user_id", user.UserID), zap.Error(err))
		}
	}

	return issueTokenPair(s.Conf, user)
}

func (s *GoogleAuthService) createFromGoogle(ctx context.Context, info *goauth2.Userinfo) (*models.Users, error) {
	username := s.uniqueUsername(ctx, info.Email)

	now := time.Now()
	user := &models.Users{
		UserID:   uuid.NewString(),
		Username: username,
		Email:    info.Email,
		// Google 账号没有本地密码，占位一个不可猜测的随机串
		Password:       encrypt.HashPassword(uuid.NewString()),
		FullName:       info.Name,
		Role:           models.RoleUser,
		ProfilePicture: info.Picture,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.UserDAO.Create(ctx, user); err != nil {
		return nil, err
	}

	log.L.Info("user created from google", zap.String("user_id", user.UserID))
	return user, nil
}

// audienceMatches audience 或 issued_to 任一匹配即通过
func audienceMatches(clientID string, values ...string) bool {
	for _, v := range values {
		if v != "" && v == clientID {
			return true
		}
	}
	return false
}

// uniqueUsername 邮箱前缀做用户名，冲突时追加数字后缀
func (s *GoogleAuthService) uniqueUsername(ctx context.Context, email string) string {
	base := strings.SplitN(email, "@", 2)[0]
	if base == "" {
		base = "user"
	}

	candidate := base
	for i := 1; s.UserDAO.IsUsernameExist(ctx, candidate); i++ {
		candidate = fmt.Sprintf("%s%d", base, i)
	}
	return candidate
}
