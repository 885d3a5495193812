package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"job-search-buddy/misc"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Subject is the report email subject
const Subject = "AI Job Search Buddy Report"

// Mailer is the transactional email api
type Mailer interface {
	Send(email *mail.SGMailV3) (*rest.Response, error)
}

// Publisher delivers a copy of the report to another channel
type Publisher interface {
	Publish(ctx context.Context, text string) error
}

// Notifier delivers the report, at most once and best effort
type Notifier struct {
	mailer    Mailer
	sender    string
	recipient string
	copies    []Publisher
}

// NewNotifier creates a notifier sending from sender to recipient
func NewNotifier(mailer Mailer, sender, recipient string, copies ...Publisher) *Notifier {
	return &Notifier{mailer: mailer, sender: sender, recipient: recipient, copies: copies}
}

// NewMessage return the report email
func NewMessage(sender, recipient, report string) *mail.SGMailV3 {
	message := mail.NewV3Mail()
	message.SetFrom(mail.NewEmail("", sender))
	message.Subject = Subject
	personalization := mail.NewPersonalization()
	personalization.AddTos(mail.NewEmail("", recipient))
	message.AddPersonalizations(personalization)
	message.AddContent(mail.NewContent("text/plain", report))
	return message
}

// Notify sends the report, delivery errors are logged and never returned
func (n *Notifier) Notify(ctx context.Context, report string) {
	response, err := n.mailer.Send(NewMessage(n.sender, n.recipient, report))
	switch {
	case err != nil:
		misc.Error("send_email", "send email", err)
		if response != nil && response.Body != "" {
			misc.Error("send_email", "send email response", errors.New(response.Body))
		}
	case response != nil && response.StatusCode >= http.StatusBadRequest:
		misc.Error("send_email", "send email", fmt.Errorf("status %d: %s", response.StatusCode, response.Body))
	default:
		misc.Info(fmt.Sprintf("sent email to %s", n.recipient))
	}

	for _, publisher := range n.copies {
		if err := publisher.Publish(ctx, report); err != nil {
			misc.Error("publish_copy", "publish report copy", err)
		}
	}
}
