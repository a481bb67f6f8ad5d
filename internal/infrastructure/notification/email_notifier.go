package notification

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"guytogo/internal/domain/entities"
	"guytogo/internal/usecase/interfaces"
	"log"
	"text/template"
)

const (
	DefaultBrand   = "Guy to Go"
	DefaultBaseURL = "https://guytogo.com"
)

var ErrMissingRecipient = errors.New("notification recipient has no email")

// Message is a rendered email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Outbox delivers a rendered Message.
type Outbox interface {
	Send(ctx context.Context, msg Message) error
}

// LogOutbox writes messages to the process log instead of a mail server.
type LogOutbox struct{}

func (LogOutbox) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	log.Printf("[notify][email] dispatch to=%s subject=%q\n%s", msg.To, msg.Subject, msg.Body)
	return nil
}

// EmailNotifier renders storefront emails and hands them to an Outbox.
type EmailNotifier struct {
	outbox  Outbox
	brand   string
	baseURL string
}

var _ interfaces.INotifier = (*EmailNotifier)(nil)

func NewEmailNotifier(outbox Outbox, baseURL string) *EmailNotifier {
	if outbox == nil {
		outbox = LogOutbox{}
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &EmailNotifier{outbox: outbox, brand: DefaultBrand, baseURL: baseURL}
}

func (n *EmailNotifier) NotifyWelcome(ctx context.Context, identity entities.Identity) error {
	if identity.Email == "" {
		return ErrMissingRecipient
	}
	body, err := render(welcomeTmpl, map[string]any{"Name": identity.Name, "Brand": n.brand})
	if err != nil {
		return err
	}
	return n.outbox.Send(ctx, Message{
		To:      identity.Email,
		Subject: fmt.Sprintf("Welcome to %s!", n.brand),
		Body:    body,
	})
}

// NotifyProductAlert sends one message per recipient and keeps going after a
// failed send; the first error is returned.
func (n *EmailNotifier) NotifyProductAlert(ctx context.Context, product entities.Product, recipients []entities.Identity) error {
	log.Printf("[notify][email] product alert product_id=%s recipients=%d", product.ID, len(recipients))
	var first error
	for _, r := range recipients {
		if r.Email == "" {
			continue
		}
		body, err := render(productAlertTmpl, map[string]any{"Name": r.Name, "Brand": n.brand, "Product": product})
		if err == nil {
			err = n.outbox.Send(ctx, Message{
				To:      r.Email,
				Subject: fmt.Sprintf("New Resource Available: %s", product.Title),
				Body:    body,
			})
		}
		if err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (n *EmailNotifier) NotifyDecision(ctx context.Context, identity entities.Identity, request entities.PaymentRequest, status entities.SubscriptionStatus) error {
	if identity.Email == "" {
		return ErrMissingRecipient
	}
	approved := status.IsApproval()
	subject := fmt.Sprintf("Payment Update - %s", n.brand)
	if approved {
		subject = fmt.Sprintf("Payment Approved - %s", n.brand)
	}
	body, err := render(decisionTmpl, map[string]any{
		"Name":          identity.Name,
		"Brand":         n.brand,
		"BaseURL":       n.baseURL,
		"Approved":      approved,
		"Subscription":  request.Kind == entities.PaymentKindSubscription,
		"ShortID":       shortID(request.ID),
		"TransactionID": request.TransactionID,
	})
	if err != nil {
		return err
	}
	return n.outbox.Send(ctx, Message{To: identity.Email, Subject: subject, Body: body})
}

func render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
