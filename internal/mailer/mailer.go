// Package mailer sends transactional email over SMTP. Callers treat every
// send as best-effort: a failed send is logged and the triggering request is
// never affected.
package mailer

import (
	"fmt"
	"html"
	"time"

	"gopkg.in/gomail.v2"

	"portfolio-api/internal/config"
	"portfolio-api/internal/models"
)

type SMTPMailer struct {
	dialer     *gomail.Dialer
	from       string
	ownerEmail string
}

func New(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer:     gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:       cfg.From,
		ownerEmail: cfg.OwnerEmail,
	}
}

// SendContactNotification mails the site owner about a new contact message.
func (m *SMTPMailer) SendContactNotification(msg models.Message) error {
	name := html.EscapeString(msg.Name)
	email := html.EscapeString(msg.Email)
	subject := html.EscapeString(msg.Subject)
	body := html.EscapeString(msg.Body)

	mail := gomail.NewMessage()
	mail.SetHeader("From", m.from)
	mail.SetHeader("To", m.ownerEmail)
	mail.SetHeader("Reply-To", msg.Email)
	mail.SetHeader("Subject", "New Message from Website: "+msg.Subject)
	mail.SetBody("text/plain", fmt.Sprintf(
		"New Message from Website\n\nName: %s\nEmail: %s\nSubject: %s\n\nMessage:\n%s\n\nReply to: %s\n",
		msg.Name, msg.Email, msg.Subject, msg.Body, msg.Email,
	))
	mail.AddAlternative("text/html", fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
		  <h2 style="color: #0ea5e9; text-align: center;">New Message from Your Website</h2>
		  <div style="background-color: #f3f4f6; padding: 15px; border-radius: 5px; margin: 20px 0;">
		    <p><strong>Name:</strong> %s</p>
		    <p><strong>Email:</strong> %s</p>
		    <p><strong>Subject:</strong> %s</p>
		  </div>
		  <div style="background-color: #ffffff; padding: 15px; border-left: 4px solid #0ea5e9; margin: 20px 0;">
		    <h3 style="color: #374151; margin-top: 0;">Message:</h3>
		    <p style="color: #6b7280; line-height: 1.6;">%s</p>
		  </div>
		  <div style="text-align: center; margin-top: 30px; padding: 15px; background-color: #f9fafb;">
		    <p style="color: #6b7280;">Sent at: %s</p>
		    <p style="color: #9ca3af; font-size: 12px;">To reply, send an email directly to: %s</p>
		  </div>
		</div>`,
		name, email, subject, body, time.Now().Format("Jan 2, 2006 15:04 MST"), email,
	))

	return m.dialer.DialAndSend(mail)
}

// SendAcknowledgment thanks the submitter and tells them to expect a reply.
func (m *SMTPMailer) SendAcknowledgment(msg models.Message) error {
	name := html.EscapeString(msg.Name)

	mail := gomail.NewMessage()
	mail.SetHeader("From", m.from)
	mail.SetHeader("To", msg.Email)
	mail.SetHeader("Subject", "Thank You for Contacting Us!")
	mail.SetBody("text/plain", fmt.Sprintf(
		"Hello %s!\n\nThank you for contacting us. We have received your message and will get back to you as soon as possible.\n\nBest regards,\nThe Team\n",
		msg.Name,
	))
	mail.AddAlternative("text/html", fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
		  <h2 style="color: #0ea5e9;">Hello %s!</h2>
		  <p style="color: #374151; line-height: 1.6;">
		    Thank you for contacting us. We have received your message and will get back to you
		    as soon as possible.
		  </p>
		  <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">
		    Best regards,<br>The Team
		  </p>
		</div>`,
		name,
	))

	return m.dialer.DialAndSend(mail)
}
