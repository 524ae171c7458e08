package services

import (
	"fmt"
	"sync"

	"elsabor_server/structs"
	"elsabor_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/resend/resend-go/v3"
)

var (
	client     *resend.Client
	clientOnce = sync.Once{}
)

type EmailService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	client *resend.Client
}

func NewEmailService(logger *gecho.Logger, cfg *structs.Config) *EmailService {
	es := &EmailService{
		logger: logger,
		cfg:    cfg,
	}
	if cfg.Email.ApiKey != "" {
		es.client = getEmailClient(cfg.Email.ApiKey)
	}
	return es
}

func getEmailClient(apiKey string) *resend.Client {
	clientOnce.Do(func() {
		client = resend.NewClient(apiKey)
	})
	return client
}

func (es *EmailService) SendEmail(to []string, subject string, body string) error {
	if es.client == nil {
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    es.cfg.Email.From,
		To:      to,
		Html:    body,
		Subject: subject,
	}

	_, err := es.client.Emails.Send(params)
	if err != nil {
		es.logger.Error("Failed to send email", gecho.Field("error", err), gecho.Field("to", to))
		return err
	}

	return nil
}

// SendOrderNotification mails the configured staff addresses about a new
// order. A no-op when no API key or recipients are configured.
func (es *EmailService) SendOrderNotification(order *tables.Order) error {
	if es.client == nil || len(es.cfg.Email.OrderNotifyTo) == 0 {
		return nil
	}

	subject := fmt.Sprintf("New order from %s", order.CustomerName)
	body := fmt.Sprintf(
		"<h2>New order received</h2>"+
			"<p><strong>Customer:</strong> %s (%s)</p>"+
			"<p><strong>Total:</strong> %.2f</p>"+
			"<p><strong>Payment:</strong> %s</p>"+
			"<p><strong>Order ID:</strong> %s</p>",
		order.CustomerName, order.CustomerPhone, order.Total, order.PaymentMethod, order.ID,
	)

	return es.SendEmail(es.cfg.Email.OrderNotifyTo, subject, body)
}
