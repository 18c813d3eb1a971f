// Package notify turns a stored order into the customer confirmation and the
// admin alert emails and hands them to the email transport.
package notify

import (
	"context"
	"errors"
	"fmt"

	"bakery-storefront/internal/config"
	"bakery-storefront/internal/model"
)

type Message struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type Sender interface {
	Send(ctx context.Context, msg *Message) error
}

type Notifier struct {
	sender    Sender
	from      string
	storeName string
	ownerName string
}

func NewNotifier(sender Sender, emailCfg config.Email, storeCfg config.Store) *Notifier {
	return &Notifier{
		sender:    sender,
		from:      emailCfg.From,
		storeName: storeCfg.Name,
		ownerName: storeCfg.OwnerName,
	}
}

// SendOrderEmails sends the customer confirmation and, when adminEmail is set,
// the admin alert. A failed customer email does not stop the admin email.
func (n *Notifier) SendOrderEmails(ctx context.Context, order *model.Order, adminEmail string) error {
	var errs []error

	if err := n.send(ctx, order, order.CustomerEmail,
		fmt.Sprintf("🫏 Your %s Order Confirmation", n.storeName), false); err != nil {
		errs = append(errs, fmt.Errorf("send customer email: %w", err))
	}

	if adminEmail != "" {
		if err := n.send(ctx, order, adminEmail,
			fmt.Sprintf("🫏 New Order from %s!", order.CustomerName), true); err != nil {
			errs = append(errs, fmt.Errorf("send admin email: %w", err))
		}
	}

	return errors.Join(errs...)
}

func (n *Notifier) send(ctx context.Context, order *model.Order, to, subject string, forAdmin bool) error {
	html, err := n.RenderOrder(order, forAdmin)
	if err != nil {
		return err
	}

	return n.sender.Send(ctx, &Message{
		From:    n.from,
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	})
}
