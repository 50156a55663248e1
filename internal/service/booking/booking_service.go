package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/parthodeb03/Project-Comfy-Go-sub000/internal/domain"
	"github.com/parthodeb03/Project-Comfy-Go-sub000/internal/idgen"
	"github.com/parthodeb03/Project-Comfy-Go-sub000/internal/kafka"
	"github.com/parthodeb03/Project-Comfy-Go-sub000/internal/repository"
	"go.uber.org/zap"
)

const (
	paymentIDDigits = 10
	bookingIDDigits = 10
	idMaxAttempts   = 5
)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*BookingResult, error)
	CancelBooking(ctx context.Context, ownerID, bookingID string) (*domain.Booking, error)
	ListBookings(ctx context.Context, ownerID string) ([]domain.Booking, error)
}

// Resources supplies the availability snapshot for the optimistic pre-check.
// The authoritative check happens at debit time inside the transaction.
type Resources interface {
	GetByKey(ctx context.Context, key string) (*domain.InventoryRecord, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	store              repository.Store
	resources          Resources
	producer           Producer
	logger             *zap.Logger
	bookingTopic       string
	notificationsTopic string
}

type CreateBookingInput struct {
	OwnerID             string     `json:"owner_id"`
	ResourceKey         string     `json:"resource_key"`
	ResourceDescriptor  string     `json:"resource_descriptor"`
	Quantity            int        `json:"quantity"`
	TotalPriceCents     int64      `json:"total_price_cents"`
	Method              string     `json:"method"`
	Description         string     `json:"description"`
	AmountTenderedCents int64      `json:"amount_tendered_cents"`
	CheckIn             *time.Time `json:"check_in,omitempty"`
	CheckOut            *time.Time `json:"check_out,omitempty"`
}

// BookingResult reports the committed outcome of a create flow: both final
// statuses are always present, never "booking created but payment unknown".
type BookingResult struct {
	Booking *domain.Booking
	Payment *domain.Payment
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func NewBookingService(
	store repository.Store,
	resources Resources,
	producer Producer,
	logger *zap.Logger,
	bookingTopic string,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		store:        store,
		resources:    resources,
		producer:     producer,
		logger:       logger,
		bookingTopic: bookingTopic,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (in CreateBookingInput) validate() error {
	if in.OwnerID == "" {
		return fmt.Errorf("%w: owner is required", ErrInvalidInput)
	}
	if in.ResourceKey == "" {
		return fmt.Errorf("%w: resource key is required", ErrInvalidInput)
	}
	if in.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}
	if in.TotalPriceCents <= 0 {
		return fmt.Errorf("%w: total price must be positive", ErrInvalidInput)
	}
	if in.Method == "" {
		return fmt.Errorf("%w: payment method is required", ErrInvalidInput)
	}
	if in.CheckIn != nil && in.CheckOut != nil && !in.CheckOut.After(*in.CheckIn) {
		return fmt.Errorf("%w: check-out must be after check-in", ErrInvalidInput)
	}
	return nil
}

// CreateBooking runs the whole create flow in one transaction: allocate a
// payment, allocate a booking, settle the payment against the tendered
// amount, then debit inventory only when the settlement completed. The
// pre-check on availability is optimistic; losing the race at debit time
// rolls everything back, so a committed booking never exists without its
// inventory units.
func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*BookingResult, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	resource, err := s.resources.GetByKey(ctx, input.ResourceKey)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, fmt.Errorf("lookup resource: %w", err)
	}
	if resource.AvailableUnits < input.Quantity {
		return nil, ErrInsufficientInventory
	}

	uow, err := s.store.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer uow.Rollback(ctx)

	payments := uow.Payments()
	bookings := uow.Bookings()

	paymentID, err := idgen.Allocate(ctx, paymentIDDigits, idMaxAttempts, payments.Exists)
	if err != nil {
		return nil, fmt.Errorf("allocate payment id: %w", err)
	}
	payment := &domain.Payment{
		ID:          paymentID,
		AmountCents: input.TotalPriceCents,
		Method:      input.Method,
		Description: input.Description,
	}
	if err := payments.CreatePending(ctx, payment); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	bookingID, err := idgen.Allocate(ctx, bookingIDDigits, idMaxAttempts, bookings.Exists)
	if err != nil {
		return nil, fmt.Errorf("allocate booking id: %w", err)
	}
	b := &domain.Booking{
		ID:                 bookingID,
		OwnerID:            input.OwnerID,
		ResourceKey:        input.ResourceKey,
		ResourceDescriptor: input.ResourceDescriptor,
		Quantity:           input.Quantity,
		TotalPriceCents:    input.TotalPriceCents,
		PaymentID:          paymentID,
		CheckIn:            input.CheckIn,
		CheckOut:           input.CheckOut,
	}
	if err := bookings.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	paymentStatus, err := payments.Settle(ctx, paymentID, input.TotalPriceCents, input.AmountTenderedCents)
	if err != nil {
		return nil, fmt.Errorf("settle payment: %w", err)
	}

	bookingStatus := domain.BookingStatusFailed
	if paymentStatus == domain.PaymentStatusCompleted {
		bookingStatus = domain.BookingStatusCompleted
	}
	if err := bookings.SetStatus(ctx, bookingID, bookingStatus); err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}

	if bookingStatus == domain.BookingStatusCompleted {
		debited, err := uow.Inventory().TryDebit(ctx, input.ResourceKey, input.Quantity)
		if err != nil {
			return nil, fmt.Errorf("debit inventory: %w", err)
		}
		if !debited {
			return nil, ErrInsufficientInventory
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit booking transaction: %w", err)
	}

	b.Status = bookingStatus
	payment.Status = paymentStatus

	eventType := "booking_failed"
	if bookingStatus == domain.BookingStatusCompleted {
		eventType = "booking_completed"
	}
	s.publish(ctx, eventType, b, payment.Status)

	return &BookingResult{Booking: b, Payment: payment}, nil
}

// CancelBooking compensates a committed booking: mark it CANCELLED, refund
// the payment if it completed, and restore inventory only when the prior
// status actually consumed units. Repeat cancellation is rejected, and any
// failure rolls the whole cancellation back.
func (s *BookingService) CancelBooking(ctx context.Context, ownerID, bookingID string) (*domain.Booking, error) {
	if ownerID == "" || bookingID == "" {
		return nil, fmt.Errorf("%w: owner and booking id are required", ErrInvalidInput)
	}

	uow, err := s.store.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer uow.Rollback(ctx)

	b, err := uow.Bookings().GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("lookup booking: %w", err)
	}
	if b.OwnerID != ownerID {
		return nil, ErrBookingNotFound
	}
	if b.Status == domain.BookingStatusCancelled {
		return nil, ErrAlreadyCancelled
	}
	priorStatus := b.Status

	if err := uow.Bookings().SetStatus(ctx, bookingID, domain.BookingStatusCancelled); err != nil {
		return nil, fmt.Errorf("mark booking cancelled: %w", err)
	}

	paymentStatus := domain.PaymentStatus("")
	if b.PaymentID != "" {
		payment, err := uow.Payments().GetByID(ctx, b.PaymentID)
		if err != nil {
			return nil, fmt.Errorf("lookup payment: %w", err)
		}
		paymentStatus = payment.Status
		if payment.Status == domain.PaymentStatusCompleted {
			if err := uow.Payments().Refund(ctx, payment.ID); err != nil {
				return nil, fmt.Errorf("refund payment: %w", err)
			}
			paymentStatus = domain.PaymentStatusRefunded
		}
	}

	if priorStatus.ConsumedInventory() {
		if err := uow.Inventory().Credit(ctx, b.ResourceKey, b.Quantity); err != nil {
			return nil, fmt.Errorf("restore inventory: %w", err)
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit cancellation: %w", err)
	}

	b.Status = domain.BookingStatusCancelled
	s.publish(ctx, "booking_cancelled", b, paymentStatus)
	return b, nil
}

func (s *BookingService) ListBookings(ctx context.Context, ownerID string) ([]domain.Booking, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner is required", ErrInvalidInput)
	}
	return s.store.Bookings().ListByOwner(ctx, ownerID)
}

func (s *BookingService) publish(ctx context.Context, eventType string, b *domain.Booking, paymentStatus domain.PaymentStatus) {
	if s.producer == nil || s.bookingTopic == "" {
		return
	}
	event := kafka.BookingEvent{
		Type:            eventType,
		BookingID:       b.ID,
		OwnerID:         b.OwnerID,
		ResourceKey:     b.ResourceKey,
		Quantity:        b.Quantity,
		TotalPriceCents: b.TotalPriceCents,
		BookingStatus:   string(b.Status),
		PaymentStatus:   string(paymentStatus),
		OccurredAt:      time.Now(),
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, b.ID, event); err != nil {
		s.logger.Warn("failed to publish booking event", zap.String("type", eventType), zap.String("booking_id", b.ID), zap.Error(err))
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, b.ID, event); err != nil {
			s.logger.Warn("failed to publish notification event", zap.String("type", eventType), zap.String("booking_id", b.ID), zap.Error(err))
		}
	}
}

var _ BookingUseCase = (*BookingService)(nil)
