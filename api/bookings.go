package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/parthodeb03/Project-Comfy-Go-sub000/internal/domain"
	"github.com/parthodeb03/Project-Comfy-Go-sub000/internal/service/booking"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
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

type bookingResponse struct {
	BookingID       string `json:"booking_id"`
	OwnerID         string `json:"owner_id"`
	ResourceKey     string `json:"resource_key"`
	Quantity        int    `json:"quantity"`
	TotalPriceCents int64  `json:"total_price_cents"`
	Status          string `json:"status"`
	PaymentID       string `json:"payment_id"`
	PaymentStatus   string `json:"payment_status,omitempty"`
	CreatedAt       string `json:"created_at,omitempty"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/", h.list)
	router.DELETE("/:id", h.cancel)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.CreateBooking(c.Request.Context(), booking.CreateBookingInput{
		OwnerID:             c.GetString(ContextOwnerID),
		ResourceKey:         req.ResourceKey,
		ResourceDescriptor:  req.ResourceDescriptor,
		Quantity:            req.Quantity,
		TotalPriceCents:     req.TotalPriceCents,
		Method:              req.Method,
		Description:         req.Description,
		AmountTenderedCents: req.AmountTenderedCents,
		CheckIn:             req.CheckIn,
		CheckOut:            req.CheckOut,
	})
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, toBookingResponse(result.Booking, string(result.Payment.Status)))
}

func (h *BookingHandler) cancel(c *gin.Context) {
	cancelled, err := h.service.CancelBooking(c.Request.Context(), c.GetString(ContextOwnerID), c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toBookingResponse(cancelled, ""))
}

func (h *BookingHandler) list(c *gin.Context) {
	bookings, err := h.service.ListBookings(c.Request.Context(), c.GetString(ContextOwnerID))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	out := make([]bookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, toBookingResponse(&bookings[i], ""))
	}
	c.JSON(http.StatusOK, out)
}

func toBookingResponse(b *domain.Booking, paymentStatus string) bookingResponse {
	resp := bookingResponse{
		BookingID:       b.ID,
		OwnerID:         b.OwnerID,
		ResourceKey:     b.ResourceKey,
		Quantity:        b.Quantity,
		TotalPriceCents: b.TotalPriceCents,
		Status:          string(b.Status),
		PaymentID:       b.PaymentID,
		PaymentStatus:   paymentStatus,
	}
	if !b.CreatedAt.IsZero() {
		resp.CreatedAt = b.CreatedAt.Format(time.RFC3339)
	}
	return resp
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, booking.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, booking.ErrBookingNotFound), errors.Is(err, booking.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, booking.ErrInsufficientInventory), errors.Is(err, booking.ErrAlreadyCancelled):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
