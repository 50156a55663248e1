package email

import (
	"context"
	"fmt"

	"github.com/parthodeb03/Project-Comfy-Go-sub000/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	fmt.Printf("notify owner %s: %s for booking %s (%s, %d units)\n", event.OwnerID, event.Type, event.BookingID, event.ResourceKey, event.Quantity)
	return nil
}
