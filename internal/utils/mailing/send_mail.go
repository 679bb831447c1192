package mailing

import (
	"Recipe-Share-Backend/internal/utils"
	"fmt"
	"strconv"

	"gopkg.in/gomail.v2"
)

func SendMail(toEmail string, subject string, body string) error {
	mailer := gomail.NewMessage()
	mailer.SetAddressHeader("From", utils.GetConfig("SMTP_AUTH_EMAIL"), utils.GetConfig("SMTP_SENDER_NAME"))
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)

	port, err := strconv.Atoi(utils.GetConfig("SMTP_PORT"))
	if err != nil {
		return err
	}

	dialer := gomail.NewDialer(
		utils.GetConfig("SMTP_HOST"),
		port,
		utils.GetConfig("SMTP_AUTH_EMAIL"),
		utils.GetConfig("SMTP_AUTH_PASSWORD"),
	)

	return dialer.DialAndSend(mailer)
}

// SendPasswordResetMail mails the reset link for the given token. The link
// points at APP_URL so the frontend can collect the new password.
func SendPasswordResetMail(toEmail string, username string, token string) error {
	resetLink := fmt.Sprintf("%s/reset-password?token=%s", utils.GetConfig("APP_URL"), token)
	body := fmt.Sprintf(
		"<p>Hello %s,</p><p>Click the link below to reset your password. The link expires in 15 minutes.</p><p><a href=\"%s\">Reset Password</a></p>",
		username,
		resetLink,
	)

	return SendMail(toEmail, "Reset your password", body)
}
