package fiber

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"generator-stats-service/internal/metrics/core/domain"
	"generator-stats-service/internal/metrics/core/temporal"
	"generator-stats-service/internal/metrics/core/usecase"
	"generator-stats-service/internal/platform/logger"
	recdomain "generator-stats-service/internal/records/core/domain"

	"github.com/gofiber/fiber/v2"
)

const defaultUnit = "day"

type GetStatisticsUseCase interface {
	Count(ctx context.Context, in usecase.GetCountInput) ([]domain.CountResult, error)
	FieldCount(ctx context.Context, in usecase.GetFieldCountInput) ([]domain.FieldDistributionResult, error)
}

type StatisticsHandler struct {
	uc GetStatisticsUseCase
}

func NewStatisticsHandler(uc GetStatisticsUseCase) *StatisticsHandler {
	return &StatisticsHandler{uc: uc}
}

func (h *StatisticsHandler) Register(r fiber.Router) {
	r.Get("/statistics/count", h.GetCount)
	r.Get("/statistics/count/:field", h.GetFieldCount)
}

// GetCount godoc
// @Summary Count records per time bucket
// @Description Counts records created strictly after the after instant, grouped by unit. Buckets start at UTC boundaries; weeks start on Monday.
// @Tags Statistics
// @Produce json
// @Param after query string false "RFC3339 instant or unix seconds; omitted counts every record"
// @Param unit query string false "hour | day | week | month | year (default day)"
// @Success 200 {object} CountResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /statistics/count [get]
func (h *StatisticsHandler) GetCount(c *fiber.Ctx) error {
	after, err := parseAfter(c.Query("after"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_after",
			Message: err.Error(),
		})
	}
	unit := c.Query("unit", defaultUnit)

	res, err := h.uc.Count(c.UserContext(), usecase.GetCountInput{After: after, Unit: unit})
	if err != nil {
		return writeError(c, err)
	}

	resp := CountResponse{
		Unit:    canonicalUnit(unit),
		After:   afterPtr(after),
		Buckets: make([]CountBucketResponse, 0, len(res)),
	}
	for _, r := range res {
		resp.Buckets = append(resp.Buckets, CountBucketResponse{
			BucketStart: r.BucketStart,
			Count:       r.Count,
		})
		resp.Total += r.Count
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// GetFieldCount godoc
// @Summary Count records per time bucket and field value
// @Description Same as /statistics/count, broken down by the distinct values of one record field. Records without the field are skipped.
// @Tags Statistics
// @Produce json
// @Param field path string true "Field name, e.g. databaseType, buildTool, clientFramework"
// @Param after query string false "RFC3339 instant or unix seconds; omitted counts every record"
// @Param unit query string false "hour | day | week | month | year (default day)"
// @Success 200 {object} FieldCountResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /statistics/count/{field} [get]
func (h *StatisticsHandler) GetFieldCount(c *fiber.Ctx) error {
	after, err := parseAfter(c.Query("after"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_after",
			Message: err.Error(),
		})
	}
	unit := c.Query("unit", defaultUnit)
	field := c.Params("field")

	res, err := h.uc.FieldCount(c.UserContext(), usecase.GetFieldCountInput{
		After: after,
		Unit:  unit,
		Field: field,
	})
	if err != nil {
		return writeError(c, err)
	}

	resp := FieldCountResponse{
		Unit:    canonicalUnit(unit),
		Field:   canonicalField(field),
		After:   afterPtr(after),
		Buckets: make([]FieldBucketResponse, 0, len(res)),
	}
	for _, r := range res {
		resp.Buckets = append(resp.Buckets, FieldBucketResponse{
			BucketStart: r.BucketStart,
			Values:      r.Values,
		})
	}

	return c.Status(http.StatusOK).JSON(resp)
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidUnit):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_unit",
			Message: "unit must be one of " + unitNames(),
		})
	case errors.Is(err, usecase.ErrInvalidField):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_field",
			Message: err.Error(),
		})
	default:
		logger.C(c.UserContext()).Error().Err(err).Str("path", c.Path()).Msg("statistics query failed")
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}

// parseAfter accepts an RFC3339 instant or unix seconds. Empty means the zero time.
func parseAfter(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	if secs, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return time.Unix(secs, 0).UTC(), nil
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, errors.New("after must be an RFC3339 instant or unix seconds")
	}
	return t.UTC(), nil
}

func afterPtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// canonicalUnit and canonicalField are only called after the usecase accepted the name.
func canonicalUnit(name string) string {
	u, _ := temporal.ParseUnit(name)
	return u.String()
}

func canonicalField(name string) string {
	f, _ := recdomain.ParseField(name)
	return f.String()
}

func unitNames() string {
	names := make([]string, 0, len(temporal.Units()))
	for _, u := range temporal.Units() {
		names = append(names, u.String())
	}
	return strings.Join(names, ", ")
}
