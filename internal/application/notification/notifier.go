package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopnet/backend/internal/domain/identity"
	"github.com/shopnet/backend/internal/domain/order"
	"github.com/shopnet/backend/internal/domain/shared"
	"github.com/shopnet/backend/internal/domain/shop"
	"github.com/shopnet/backend/internal/infrastructure/mail"
	"github.com/shopnet/backend/internal/infrastructure/queue"
	"go.uber.org/zap"
)

// TaskSubmitter enqueues background work
type TaskSubmitter interface {
	Submit(task queue.Task) error
}

// EmailNotifier turns domain events into emails. Delivery happens on the
// task runner so event publishing never blocks on SMTP.
type EmailNotifier struct {
	sender    mail.Sender
	tasks     TaskSubmitter
	userRepo  identity.UserRepository
	shopRepo  shop.ShopRepository
	orderRepo order.OrderRepository
	logger    *zap.Logger
}

// NewEmailNotifier creates a new email notifier
func NewEmailNotifier(
	sender mail.Sender,
	tasks TaskSubmitter,
	userRepo identity.UserRepository,
	shopRepo shop.ShopRepository,
	orderRepo order.OrderRepository,
	logger *zap.Logger,
) *EmailNotifier {
	return &EmailNotifier{
		sender:    sender,
		tasks:     tasks,
		userRepo:  userRepo,
		shopRepo:  shopRepo,
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// EventTypes lists the events that trigger an email
func (n *EmailNotifier) EventTypes() []string {
	return []string{
		identity.EventTypeConfirmEmailRequested,
		identity.EventTypeUserEmailConfirmed,
		order.EventTypeOrderPlaced,
		order.EventTypeOrderStatusChanged,
	}
}

// Handle dispatches the event to its email composer
func (n *EmailNotifier) Handle(ctx context.Context, event shared.DomainEvent) error {
	switch e := event.(type) {
	case *identity.ConfirmEmailRequestedEvent:
		return n.enqueue(mail.Message{
			To:      e.Email,
			Subject: "Confirm your registration",
			Body: fmt.Sprintf("Hello %s,\n\nUse this token to confirm your email address: %s\n",
				e.FirstName, e.Key),
		})

	case *identity.UserEmailConfirmedEvent:
		return n.enqueue(mail.Message{
			To:      e.Email,
			Subject: "Welcome",
			Body:    fmt.Sprintf("Hello %s,\n\nYour account is now active.\n", e.FirstName),
		})

	case *order.OrderPlacedEvent:
		return n.notifyOrderPlaced(ctx, e)

	case *order.OrderStatusChangedEvent:
		return n.notifyStatusChanged(ctx, e)
	}

	return nil
}

// notifyOrderPlaced mails the buyer a summary and each involved shop an invoice
func (n *EmailNotifier) notifyOrderPlaced(ctx context.Context, e *order.OrderPlacedEvent) error {
	placed, err := n.orderRepo.FindByID(ctx, e.OrderID)
	if err != nil {
		return fmt.Errorf("can't load order %s: %w", e.OrderID, err)
	}

	buyer, err := n.userRepo.FindByID(ctx, e.UserID)
	if err != nil {
		return fmt.Errorf("can't load buyer %s: %w", e.UserID, err)
	}

	if err := n.enqueue(mail.Message{
		To:      buyer.Email,
		Subject: fmt.Sprintf("Order %s placed", shortID(placed.ID.String())),
		Body: fmt.Sprintf("Hello %s,\n\nYour order has been placed.\n\n%sTotal: %s\n",
			buyer.FirstName, orderLines(placed.Items), placed.Total().StringFixed(2)),
	}); err != nil {
		return err
	}

	for _, shopID := range e.ShopIDs {
		partnerShop, err := n.shopRepo.FindByID(ctx, shopID)
		if err != nil || partnerShop.UserID == nil {
			n.logger.Warn("No owner to invoice for shop",
				zap.String("shop_id", shopID.String()))
			continue
		}

		owner, err := n.userRepo.FindByID(ctx, *partnerShop.UserID)
		if err != nil {
			n.logger.Warn("Shop owner account missing",
				zap.String("shop_id", shopID.String()))
			continue
		}

		items := placed.ItemsForShop(shopID)
		if len(items) == 0 {
			continue
		}
		if err := n.enqueue(mail.Message{
			To:      owner.Email,
			Subject: fmt.Sprintf("New order %s for %s", shortID(placed.ID.String()), partnerShop.Name),
			Body: fmt.Sprintf("A new order includes your items.\n\n%sSubtotal: %s\n",
				orderLines(items), subtotal(items)),
		}); err != nil {
			return err
		}
	}

	return nil
}

func (n *EmailNotifier) notifyStatusChanged(ctx context.Context, e *order.OrderStatusChangedEvent) error {
	buyer, err := n.userRepo.FindByID(ctx, e.UserID)
	if err != nil {
		return fmt.Errorf("can't load buyer %s: %w", e.UserID, err)
	}

	return n.enqueue(mail.Message{
		To:      buyer.Email,
		Subject: fmt.Sprintf("Order %s is now %s", shortID(e.OrderID.String()), e.NewStatus),
		Body: fmt.Sprintf("Hello %s,\n\nYour order status changed from %s to %s.\n",
			buyer.FirstName, e.OldStatus, e.NewStatus),
	})
}

func (n *EmailNotifier) enqueue(msg mail.Message) error {
	err := n.tasks.Submit(queue.Task{
		Name: "send-email",
		Run: func(taskCtx context.Context) error {
			return n.sender.Send(taskCtx, msg)
		},
	})
	if err != nil {
		n.logger.Error("Failed to enqueue email",
			zap.String("to", msg.To),
			zap.Error(err))
		return err
	}
	return nil
}

func orderLines(items []order.OrderItem) string {
	var b strings.Builder
	for i := range items {
		fmt.Fprintf(&b, "- %s: %d x %s = %s\n",
			items[i].Model,
			items[i].Quantity,
			items[i].PriceRRC.StringFixed(2),
			items[i].Amount().StringFixed(2))
	}
	return b.String()
}

func subtotal(items []order.OrderItem) string {
	total := items[0].Amount()
	for i := 1; i < len(items); i++ {
		total = total.Add(items[i].Amount())
	}
	return total.StringFixed(2)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Ensure EmailNotifier implements EventHandler
var _ shared.EventHandler = (*EmailNotifier)(nil)
