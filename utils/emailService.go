package utils

import (
	"fmt"
	"internhub/config"
	"internhub/models"
	"log"
	"net/smtp"
	"time"
)

func sendMail(to, subject, body string) error {
	cfg := config.AppConfig
	if cfg.EmailSender == "" {
		log.Printf("EMAIL_SENDER not configured, skipping email to %s (%s)", to, subject)
		return nil
	}

	header := fmt.Sprintf("Subject: %s\nMIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n", subject)
	message := []byte(header + body)

	auth := smtp.PlainAuth("", cfg.EmailSender, cfg.Password, cfg.SMTPHost)
	if err := smtp.SendMail(cfg.SMTPHost+":"+cfg.SMTPPort, auth, cfg.EmailSender, []string{to}, message); err != nil {
		log.Printf("Error sending email to %s: %v", to, err)
		return err
	}
	return nil
}

// SendApplicationDecisionEmail tells a candidate their application was accepted or rejected
func SendApplicationDecisionEmail(email, name, internshipTitle, status, feedback string) error {
	decision := "not been selected for"
	color := "#E53935"
	if status == models.ApplicationAccepted {
		decision = "been accepted into"
		color = "#4CAF50"
	}

	feedbackBlock := ""
	if feedback != "" {
		feedbackBlock = fmt.Sprintf(`<p style="font-size: 14px; color: #555555;">Reviewer note: %s</p>`, feedback)
	}

	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Internship Application Update</h2>
					<p style="font-size: 16px; color: #555555;">Hi %s,</p>
					<p style="font-size: 16px; color: %s;">You have %s <b>%s</b>.</p>
					%s
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">This is an automated message.</p>
				</div>
			</body>
		</html>
	`, name, color, decision, internshipTitle, feedbackBlock)

	return sendMail(email, "Your internship application result", body)
}

// SendDeadlineReminderEmail nudges an intern about an upcoming or missed task deadline
func SendDeadlineReminderEmail(email, name, taskTitle string, deadline time.Time, overdue bool) error {
	subject := "Task deadline approaching"
	lead := "is due on"
	color := "#FB8C00"
	if overdue {
		subject = "Task deadline missed"
		lead = "was due on"
		color = "#E53935"
	}

	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Internship Task Reminder</h2>
					<p style="font-size: 16px; color: #555555;">Hi %s,</p>
					<p style="font-size: 16px; color: %s;">Your task <b>%s</b> %s %s.</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">This is an automated message.</p>
				</div>
			</body>
		</html>
	`, name, color, taskTitle, lead, deadline.Format("Monday, 02 Jan 2006"))

	return sendMail(email, subject, body)
}
