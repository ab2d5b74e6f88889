package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

// GigHandler handles HTTP requests for gig listings.
type GigHandler struct {
	service ports.GigService
}

func NewGigHandler(service ports.GigService) *GigHandler {
	return &GigHandler{service: service}
}

// List handles GET /gigs with the public listing filters.
//
// @Summary      List gigs
// @Tags         gigs
// @Produce      json
// @Param        category  query     string  false  "Category filter"
// @Param        search    query     string  false  "Title search"
// @Param        userId    query     string  false  "Owning seller"
// @Param        min       query     int     false  "Minimum price"
// @Param        max       query     int     false  "Maximum price"
// @Param        sort      query     string  false  "sales | createdAt | price"
// @Success      200       {array}   gigResponse
// @Router       /gigs [get]
func (h *GigHandler) List(c echo.Context) error {
	min, _ := strconv.Atoi(c.QueryParam("min"))
	max, _ := strconv.Atoi(c.QueryParam("max"))

	gigs, err := h.service.List(c.Request().Context(), ports.ListGigsInput{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
		UserID:   c.QueryParam("userId"),
		MinPrice: min,
		MaxPrice: max,
		Sort:     c.QueryParam("sort"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toGigListResponse(gigs))
}

// Get handles GET /gigs/single/:id.
//
// @Summary      Get a gig
// @Tags         gigs
// @Produce      json
// @Param        id   path      string  true  "Gig id"
// @Success      200  {object}  gigResponse
// @Failure      404  {object}  errorResponse
// @Router       /gigs/single/{id} [get]
func (h *GigHandler) Get(c echo.Context) error {
	gig, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toGigResponse(gig))
}

// Mine handles GET /gigs/seller/mine: the caller's own listings.
//
// @Summary      List the caller's gigs
// @Tags         gigs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   gigResponse
// @Failure      401  {object}  errorResponse
// @Router       /gigs/seller/mine [get]
func (h *GigHandler) Mine(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	gigs, err := h.service.ListBySeller(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toGigListResponse(gigs))
}

// Create handles POST /gigs.
//
// @Summary      Create a gig
// @Tags         gigs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      gigRequest  true  "Gig details"
// @Success      201   {object}  gigResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /gigs [post]
func (h *GigHandler) Create(c echo.Context) error {
	var req gigRequest
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

	gig, err := h.service.Create(c.Request().Context(), userID, toGigInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toGigResponse(gig))
}

// Update handles PUT /gigs/:id. Only the owning seller may update.
//
// @Summary      Update a gig
// @Tags         gigs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string      true  "Gig id"
// @Param        body  body      gigRequest  true  "Gig details"
// @Success      200   {object}  gigResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /gigs/{id} [put]
func (h *GigHandler) Update(c echo.Context) error {
	var req gigRequest
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

	gig, err := h.service.Update(c.Request().Context(), c.Param("id"), userID, toGigInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toGigResponse(gig))
}

// Delete handles DELETE /gigs/:id. Owner or admin.
//
// @Summary      Delete a gig
// @Tags         gigs
// @Security     BearerAuth
// @Param        id  path  string  true  "Gig id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /gigs/{id} [delete]
func (h *GigHandler) Delete(c echo.Context) error {
	userID, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), userID, role); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
