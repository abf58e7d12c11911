package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/codexiq/review-api/internal/api/metrics"
	"github.com/codexiq/review-api/internal/core/domain"
	"github.com/codexiq/review-api/internal/core/ports"
)

// ReviewHandler handles the protected review endpoints. Both endpoints share
// one orchestration path; they differ only in which source channel the
// request carries.
type ReviewHandler struct {
	service ports.ReviewService
}

func NewReviewHandler(service ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// ReviewCode handles POST /review/code — reviews inline code.
//
// @Summary      Review pasted code
// @Tags         review
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      reviewCodeRequest  true  "Code and language"
// @Success      200   {object}  reviewResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /review/code [post]
func (h *ReviewHandler) ReviewCode(c echo.Context) error {
	var req reviewCodeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return h.review(c, domain.ReviewInput{Code: req.Code, Language: req.Language}, "inline")
}

// ReviewRemote handles POST /review/remote — reviews a remotely hosted file.
//
// @Summary      Review a file referenced by URL
// @Tags         review
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      reviewRemoteRequest  true  "Source URL and language"
// @Success      200   {object}  reviewResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /review/remote [post]
func (h *ReviewHandler) ReviewRemote(c echo.Context) error {
	var req reviewRemoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return h.review(c, domain.ReviewInput{SourceURL: req.SourceURL, Language: req.Language}, "remote")
}

func (h *ReviewHandler) review(c echo.Context, in domain.ReviewInput, source string) error {
	if _, err := ctxUserID(c); err != nil {
		return err
	}

	start := time.Now()
	review, err := h.service.Review(c.Request().Context(), in)
	metrics.ReviewDuration.WithLabelValues(source).Observe(time.Since(start).Seconds())
	metrics.ReviewsTotal.WithLabelValues(source, outcomeLabel(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, reviewResponse{Review: review})
}

func outcomeLabel(err error) string {
	if err == nil {
		return "ok"
	}
	var de *domain.Error
	if errors.As(err, &de) {
		return string(de.Kind)
	}
	return "error"
}
