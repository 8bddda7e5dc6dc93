package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/villastay/property-reservation/internal/model"
	"github.com/villastay/property-reservation/internal/repository"
)

// FeedbackHandler exposes property reviews.
type FeedbackHandler struct {
	Feedback *repository.FeedbackRepo
}

func NewFeedbackHandler(feedback *repository.FeedbackRepo) *FeedbackHandler {
	if feedback == nil {
		panic("nil repository passed to NewFeedbackHandler")
	}
	return &FeedbackHandler{Feedback: feedback}
}

type feedbackReq struct {
	PropertyID uint64 `json:"property_id" validate:"required"`
	Comment    string `json:"comment" validate:"required"`
	Rating     int    `json:"rating" validate:"required,gte=1,lte=5"`
}

// Create handles POST /v1/feedback.
func (h *FeedbackHandler) Create(c echo.Context) error {
	var req feedbackReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	f := &model.Feedback{PropertyID: req.PropertyID, Comment: req.Comment, Rating: req.Rating}
	if err := h.Feedback.Create(c.Request().Context(), f); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "property not found"})
		}
		c.Logger().Errorf("create feedback: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to save feedback"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": f.ID})
}

// ListByProperty handles GET /v1/properties/:id/feedback.
func (h *FeedbackHandler) ListByProperty(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid property id"})
	}
	items, err := h.Feedback.ListByProperty(c.Request().Context(), id)
	if err != nil {
		c.Logger().Errorf("list feedback: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load feedback"})
	}
	return c.JSON(http.StatusOK, echo.Map{"feedback": items})
}
