package service

import (
	"fmt"
	"strings"

	"condopark/internal/utils"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Mailer delivers a single e-mail.
type Mailer interface {
	SendEmail(toEmail, toName, subject, plainText, html string) error
}

// Texter delivers a single SMS.
type Texter interface {
	SendSMS(toNumber, body string) error
}

type SendGridMailer struct {
	APIKey    string
	FromEmail string
	FromName  string
}

func NewSendGridMailer(apiKey, fromEmail, fromName string) *SendGridMailer {
	if fromName == "" {
		fromName = "CondoPark"
	}
	return &SendGridMailer{APIKey: apiKey, FromEmail: fromEmail, FromName: fromName}
}

func (m *SendGridMailer) SendEmail(toEmail, toName, subject, plainText, html string) error {
	if m.APIKey == "" || m.FromEmail == "" {
		return fmt.Errorf("SendGrid is not configured")
	}

	from := mail.NewEmail(m.FromName, m.FromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainText, html)

	client := sendgrid.NewSendClient(m.APIKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email through SendGrid: %w", err)
	}
	if response.StatusCode >= 200 && response.StatusCode < 300 {
		utils.Logger.Infof("Email sent to %s (subject: %s), status %d", toEmail, subject, response.StatusCode)
		return nil
	}
	return fmt.Errorf("SendGrid returned status %d: %s", response.StatusCode, response.Body)
}

type TwilioTexter struct {
	client     *twilio.RestClient
	fromNumber string
}

func NewTwilioTexter(accountSid, authToken, fromNumber string) *TwilioTexter {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username:   accountSid,
		Password:   authToken,
		AccountSid: accountSid,
	})
	return &TwilioTexter{client: client, fromNumber: fromNumber}
}

func (t *TwilioTexter) SendSMS(toNumber, body string) error {
	if t.fromNumber == "" {
		return fmt.Errorf("Twilio is not configured")
	}
	if !strings.HasPrefix(toNumber, "+") {
		utils.Logger.Warnf("Destination number '%s' is not in E.164 format, the SMS may fail", toNumber)
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(toNumber)
	params.SetFrom(t.fromNumber)
	params.SetBody(body)

	resp, err := t.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("failed to send SMS: %w", err)
	}
	if resp != nil && resp.Sid != nil {
		utils.Logger.Infof("SMS sent to %s, SID %s", toNumber, *resp.Sid)
	}
	return nil
}
