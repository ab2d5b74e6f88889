package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

// ReviewHandler handles gig review endpoints.
type ReviewHandler struct {
	service ports.ReviewService
}

func NewReviewHandler(service ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

type createReviewRequest struct {
	GigID string `json:"gigId" validate:"required"`
	Star  int    `json:"star"  validate:"required,min=1,max=5"`
	Desc  string `json:"desc"  validate:"required"`
}

type reviewResponse struct {
	ID        string `json:"id"`
	GigID     string `json:"gigId"`
	UserID    string `json:"userId"`
	Star      int    `json:"star"`
	Desc      string `json:"desc"`
	CreatedAt string `json:"createdAt"`
}

func toReviewResponse(r *domain.Review) reviewResponse {
	return reviewResponse{
		ID:        r.ID,
		GigID:     r.GigID,
		UserID:    r.UserID,
		Star:      r.Star,
		Desc:      r.Desc,
		CreatedAt: r.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

// ListByGig handles GET /reviews/:gigID.
//
// @Summary      List a gig's reviews
// @Tags         reviews
// @Produce      json
// @Param        gigID  path      string  true  "Gig id"
// @Success      200    {array}   reviewResponse
// @Router       /reviews/{gigID} [get]
func (h *ReviewHandler) ListByGig(c echo.Context) error {
	reviews, err := h.service.ListByGig(c.Request().Context(), c.Param("gigID"))
	if err != nil {
		return err
	}

	out := make([]reviewResponse, len(reviews))
	for i, r := range reviews {
		out[i] = toReviewResponse(r)
	}
	return c.JSON(http.StatusOK, out)
}

// Create handles POST /reviews. One review per user per gig; sellers cannot
// review their own listings.
//
// @Summary      Create a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createReviewRequest  true  "Review"
// @Success      201   {object}  reviewResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	review, err := h.service.Create(c.Request().Context(), ports.CreateReviewInput{
		GigID:  req.GigID,
		UserID: userID,
		Star:   req.Star,
		Desc:   req.Desc,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toReviewResponse(review))
}
