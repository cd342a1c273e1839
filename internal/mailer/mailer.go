package mailer

import (
	"fmt"
	"io"

	"hackpass/config"
	"hackpass/pkg/logger"

	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"
)

// Mailer 寄送報到 QR code。寄信是 best-effort：失敗由呼叫端降級成
// warning，不影響已完成的資料庫寫入。
type Mailer interface {
	// Configured 回報是否有 SMTP 憑證；未設定時呼叫端直接略過寄信
	Configured() bool
	SendQRCode(to, name string, png []byte) error
}

type SMTPMailer struct {
	cfg config.MailConfig
}

func NewSMTPMailer(cfg config.MailConfig) Mailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Configured() bool {
	return m.cfg.Address != "" && m.cfg.Password != ""
}

func (m *SMTPMailer) SendQRCode(to, name string, png []byte) error {
	msg := gomail.NewMessage()
	msg.SetHeader("Subject", "Your HackPass Check-in QR Code")
	msg.SetAddressHeader("From", m.cfg.Address, m.cfg.Sender)
	msg.SetHeader("To", to)
	msg.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\n"+
			"You have been registered. "+
			"Please use the attached QR code for venue check-in.\n\n"+
			"-- %s Team",
		name, m.cfg.Sender,
	))
	msg.Attach(
		fmt.Sprintf("HackPass_%s.png", name),
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(png)
			return err
		}),
	)

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Address, m.cfg.Password)
	dialer.SSL = m.cfg.Port == 465

	if err := dialer.DialAndSend(msg); err != nil {
		logger.WithComponent("mailer").Warn("failed to send QR code email",
			zap.String("to", to), zap.Error(err))
		return err
	}
	return nil
}
