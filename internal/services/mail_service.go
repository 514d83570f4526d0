package services

import (
	"fmt"
	"net/smtp"

	"menulink/pkg/utils"
)

type IMailService interface {
	SendMembershipActivated(to, restaurantName, planName string, expiry int64) error
}

// SMTPConfig holds SMTP credentials. An empty Host disables sending, which
// keeps local development and tests mail-free.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

type smtpMailService struct {
	cfg SMTPConfig
}

func NewSMTPMailService(cfg SMTPConfig) IMailService {
	return &smtpMailService{cfg: cfg}
}

func (s *smtpMailService) SendMembershipActivated(to, restaurantName, planName string, expiry int64) error {
	if s.cfg.Host == "" || to == "" {
		return nil
	}

	subject := fmt.Sprintf("Membership activated: %s", restaurantName)
	body := fmt.Sprintf(
		"Restaurant %q activated the %q plan.\r\nMembership valid until %s.\r\n",
		restaurantName, planName, utils.FromUnixMillis(expiry).Format("2006-01-02 15:04:05 MST"),
	)

	msg := fmt.Sprintf("From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.cfg.FromName, s.cfg.From, to, subject, body)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	return smtp.SendMail(addr, auth, s.cfg.From, []string{to}, []byte(msg))
}
