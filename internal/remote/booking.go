package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"travel-agency/internal/booking"
)

const bookingsPath = "/api/bookings"

// BookingSubmitter forwards completed booking drafts to the backend.
type BookingSubmitter struct {
	client *Client
}

func NewBookingSubmitter(client *Client) *BookingSubmitter {
	return &BookingSubmitter{client: client}
}

type bookingReceipt struct {
	Reference string `json:"reference"`
}

func (b *BookingSubmitter) Submit(ctx context.Context, req booking.Request) (string, error) {
	var receipt bookingReceipt
	if err := b.client.Do(ctx, http.MethodPost, bookingsPath, req, &receipt); err != nil {
		return "", fmt.Errorf("submit booking: %w", err)
	}
	if receipt.Reference == "" {
		return "", errors.New("submit booking: backend returned no reference")
	}
	return receipt.Reference, nil
}
