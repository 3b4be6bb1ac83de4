package service

import (
	"Tripper/config"
	"Tripper/dao"
	"Tripper/pkg/log"
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

var _ IFcmService = (*FcmService)(nil)

type IFcmService interface {
	// NotifyItineraryShared 行程被分享给某人时推送，失败只记日志不影响主流程
	NotifyItineraryShared(ctx context.Context, toUserID, fromUsername, itineraryTitle, permission string)
}

type FcmService struct {
	// Client 为 nil 表示推送关闭
	Client   *messaging.Client
	TokenDAO *dao.FCMTokenDAO
}

// NewFcmClient 推送开关关闭或初始化失败时返回 nil
func NewFcmClient(conf *config.Config) *messaging.Client {
	if conf.Fcm == nil || !conf.Fcm.Enabled || conf.Fcm.CredentialFile == "" {
		return nil
	}

	app, err := firebase.NewApp(context.Background(), nil,
		option.WithCredentialsFile(conf.Fcm.CredentialFile))
	if err != nil {
		log.L.Error("init firebase app failed", zap.Error(err))
		return nil
	}

	client, err := app.Messaging(context.Background())
	if err != nil {
		log.L.Error("init fcm messaging client failed", zap.Error(err))
		return nil
	}
	return client
}

func (s *FcmService) NotifyItineraryShared(ctx context.Context, toUserID, fromUsername, itineraryTitle, permission string) {
	if s.Client == nil {
		return
	}

	tokens, err := s.TokenDAO.GetActiveTokens(ctx, toUserID)
	if err != nil {
		log.L.Warn("load fcm tokens failed", zap.String("user_id", toUserID), zap.Error(err))
		return
	}

	body := fmt.Sprintf("%s 向你分享了行程「%s」", fromUsername, itineraryTitle)
	for _, t := range tokens {
		msg := &messaging.Message{
			Token: t.FcmToken,
			Notification: &messaging.Notification{
				Title: "收到新的行程分享",
				Body:  body,
			},
			Data: map[string]string{
				"type":       "itinerary_share",
				"permission": permission,
			},
		}

		if _, err := s.Client.Send(ctx, msg); err != nil {
			// 失效 token 直接下线
			if messaging.IsRegistrationTokenNotRegistered(err) {
				_ = s.TokenDAO.Deactivate(ctx, toUserID, t.FcmToken)
				continue
			}
			log.L.Warn("send fcm message failed", zap.String("user_id", toUserID), zap.Error(err))
		}
	}
}
