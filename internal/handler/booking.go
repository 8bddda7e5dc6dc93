package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/villastay/property-reservation/internal/booking"
	"github.com/villastay/property-reservation/internal/queue"
	queue_publisher "github.com/villastay/property-reservation/internal/service"
)

// BookingHandler exposes the reservation engine over HTTP: booking
// creation, reserved-date enumeration, per-user listings and the sweep
// trigger.
type BookingHandler struct {
	Engine *booking.Engine
}

// NewBookingHandler constructs a BookingHandler.  The engine must be
// non-nil.
func NewBookingHandler(engine *booking.Engine) *BookingHandler {
	if engine == nil {
		panic("nil engine passed to NewBookingHandler")
	}
	return &BookingHandler{Engine: engine}
}

type reserveReq struct {
	PropertyID uint64 `json:"property_id" validate:"required"`
	UserID     uint64 `json:"user_id" validate:"required"`
	InTime     string `json:"in_time" validate:"required"`
	OutTime    string `json:"out_time" validate:"required"`
}

// Reserve handles POST /v1/reserve.  Validation failures and range
// conflicts map to 4xx responses; storage failures are logged by the
// engine's store and surface as a generic 500.
func (h *BookingHandler) Reserve(c echo.Context) error {
	var req reserveReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b, err := h.Engine.Reserve(ctx, req.PropertyID, req.UserID, req.InTime, req.OutTime)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidDate),
			errors.Is(err, booking.ErrPastDate),
			errors.Is(err, booking.ErrInvalidRange):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		case errors.Is(err, booking.ErrOverlap):
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		case errors.Is(err, booking.ErrPropertyNotFound),
			errors.Is(err, booking.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
		}
		c.Logger().Errorf("reserve: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create booking"})
	}

	// Best effort: the booking is committed, the event is only a notification.
	_ = queue_publisher.PublishBookingCreated(ctx, queue.BookingCreatedEvent{
		BookingID:  b.ID,
		PropertyID: b.PropertyID,
		UserID:     b.UserID,
		InTime:     booking.FormatDate(b.InTime),
		OutTime:    booking.FormatDate(b.OutTime),
		CreatedAt:  b.CreatedAt.UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, echo.Map{
		"booking_id":  b.ID,
		"property_id": b.PropertyID,
		"user_id":     b.UserID,
		"in_time":     booking.FormatDate(b.InTime),
		"out_time":    booking.FormatDate(b.OutTime),
		"status":      b.Status,
	})
}

// ReservedDates handles GET /v1/properties/:id/reserved-dates.  A
// property with no bookings (or an unknown id) yields an empty list.
func (h *BookingHandler) ReservedDates(c echo.Context) error {
	propertyID, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid property id"})
	}
	dates, err := h.Engine.ReservedDates(c.Request().Context(), propertyID)
	if err != nil {
		c.Logger().Errorf("reserved dates: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load reserved dates"})
	}
	return c.JSON(http.StatusOK, echo.Map{"reserved_dates": dates})
}

// ActiveReservations handles GET /v1/users/:id/reservations/active.
func (h *BookingHandler) ActiveReservations(c echo.Context) error {
	userID, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}
	items, err := h.Engine.ActiveReservations(c.Request().Context(), userID)
	if err != nil {
		c.Logger().Errorf("active reservations: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load reservations"})
	}
	return c.JSON(http.StatusOK, echo.Map{"reservations": items})
}

// PastReservations handles GET /v1/users/:id/reservations/past.
func (h *BookingHandler) PastReservations(c echo.Context) error {
	userID, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}
	items, err := h.Engine.PastReservations(c.Request().Context(), userID)
	if err != nil {
		c.Logger().Errorf("past reservations: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load reservations"})
	}
	return c.JSON(http.StatusOK, echo.Map{"reservations": items})
}

// TriggerSweep handles POST /v1/reservations/sweep.  Fire-and-forget:
// the sweep request is handed to the broker and the caller is acknowledged
// immediately.  When the broker is unreachable the sweep still runs in a
// spawned goroutine so the trigger is never silently lost.
func (h *BookingHandler) TriggerSweep(c echo.Context) error {
	jobID := uuid.NewString()
	ev := queue.SweepRequestedEvent{
		JobID:       jobID,
		RequestedAt: time.Now().UTC().Format(time.RFC3339),
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()
	if err := queue_publisher.PublishSweepRequested(ctx, ev); err != nil {
		engine := h.Engine
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if _, err := engine.SweepExpired(ctx); err != nil {
				log.Printf("sweep job %s: %v", jobID, err)
			}
		}()
	}

	return c.JSON(http.StatusAccepted, echo.Map{
		"status": "scheduled",
		"job_id": jobID,
	})
}
