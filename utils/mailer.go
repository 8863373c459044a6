package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// sendMail delivers one message through the SMTP server configured in the
// environment.
func sendMail(to, subject, plainBody, htmlBody string) error {
	fromEmail := os.Getenv("SMTP_USER")

	m := gomail.NewMessage()
	m.SetHeader("From", fromEmail)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	if htmlBody != "" {
		m.AddAlternative("text/html", htmlBody)
	}

	smtpHost := os.Getenv("SMTP_HOST")
	smtpPortStr := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	smtpPort, err := strconv.Atoi(smtpPortStr)
	if err != nil {
		log.Printf("Invalid SMTP_PORT value: %v", err)
		return fmt.Errorf("invalid SMTP_PORT value: %w", err)
	}

	d := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPass)
	return d.DialAndSend(m)
}

// SendResetCodeEmail mails a password reset code to the user.
func SendResetCodeEmail(email, code string) error {
	plain := "Your password reset code is: " + code
	html := `
	<!DOCTYPE html>
	<html>
	<head>
		<title>Password Reset Code</title>
		<style>
			body { font-family: Arial, sans-serif; background-color: #f4f4f4; margin: 0; padding: 0; }
			.container { background-color: #ffffff; margin: 20px auto; padding: 20px; border-radius: 8px; max-width: 600px; }
			h1 { color: #333333; }
			p { color: #666666; }
			.code { font-weight: bold; color: #007bff; }
		</style>
	</head>
	<body>
		<div class="container">
			<h1>University Health Clinic</h1>
			<p>Your password reset code is:</p>
			<p class="code">` + code + `</p>
			<p>If you did not request a password reset, please ignore this email.</p>
		</div>
	</body>
	</html>
	`
	return sendMail(email, "Password Reset Code", plain, html)
}

// SendAppointmentEmail mails a short appointment lifecycle update. Delivery
// failures are the caller's concern; the notification row is the source of
// truth either way.
func SendAppointmentEmail(email, subject, message string) error {
	html := `
	<!DOCTYPE html>
	<html>
	<head>
		<title>` + subject + `</title>
		<style>
			body { font-family: Arial, sans-serif; background-color: #f4f4f4; margin: 0; padding: 0; }
			.container { background-color: #ffffff; margin: 20px auto; padding: 20px; border-radius: 8px; max-width: 600px; }
			h1 { color: #333333; }
			p { color: #666666; }
		</style>
	</head>
	<body>
		<div class="container">
			<h1>University Health Clinic</h1>
			<p>` + message + `</p>
		</div>
	</body>
	</html>
	`
	return sendMail(email, subject, message, html)
}
