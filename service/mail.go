package service

import (
	"Tripper/config"
	"fmt"

	"gopkg.in/gomail.v2"
)

var _ IMailService = (*MailService)(nil)

type IMailService interface {
	// SendOTP 发送验证码邮件
	SendOTP(to, code string) error
}

type MailService struct {
	Conf *config.Config
}

const otpMailTemplate = `<div style="max-width:480px;margin:0 auto;font-family:sans-serif">
  <h2>%s</h2>
  <p>你正在进行邮箱验证，验证码为：</p>
  <p style="font-size:28px;letter-spacing:6px;font-weight:bold">%s</p>
  <p>验证码 5 分钟内有效，请勿泄露给他人。</p>
  <p>回到 <a href="%s">%s</a> 填入验证码完成验证。</p>
  <p style="color:#999">如果这不是你本人的操作，请忽略本邮件。</p>
</div>`

func buildOTPMail(conf *config.Config, code string) (subject, body string) {
	subject = fmt.Sprintf("【%s】邮箱验证码", conf.App.Name)
	body = fmt.Sprintf(otpMailTemplate, conf.App.Name, code,
		conf.App.FrontendHost, conf.App.FrontendHost)
	return subject, body
}

func (s *MailService) SendOTP(to, code string) error {
	subject, body := buildOTPMail(s.Conf, code)

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.Conf.Mail.FromMail, s.Conf.Mail.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		s.Conf.Mail.Host,
		s.Conf.Mail.Port,
		s.Conf.Mail.Username,
		s.Conf.Mail.Password,
	)
	return d.DialAndSend(m)
}
