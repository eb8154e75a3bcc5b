package fiber

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"generator-stats-service/internal/platform/logger"
	"generator-stats-service/internal/records/core/domain"
	"generator-stats-service/internal/records/core/usecase"

	"github.com/gofiber/fiber/v2"
)

// OwnerHeader carries the opaque identity of the client submitting records.
const OwnerHeader = "X-Owner"

type StoreRecordUseCase interface {
	Save(ctx context.Context, in usecase.SaveRecordInput) (usecase.SaveRecordResult, error)
	BulkSave(ctx context.Context, in usecase.BulkSaveRecordsInput) (usecase.BulkSaveRecordsResult, error)
	Ingest(ctx context.Context, owner string, payload []byte) (usecase.SaveRecordResult, error)
}

type QueryRecordUseCase interface {
	Get(ctx context.Context, id string) (*domain.Record, error)
	List(ctx context.Context, limit, offset int) ([]domain.Record, error)
	Delete(ctx context.Context, id string) error
	CountAll(ctx context.Context) (int64, error)
}

type RecordHandler struct {
	storeUC StoreRecordUseCase
	queryUC QueryRecordUseCase
}

func NewRecordHandler(storeUC StoreRecordUseCase, queryUC QueryRecordUseCase) *RecordHandler {
	return &RecordHandler{storeUC: storeUC, queryUC: queryUC}
}

// Register mounts the record routes; /records/count precedes /records/:id.
func (h *RecordHandler) Register(r fiber.Router) {
	r.Post("/records", h.CreateRecord)
	r.Post("/records/bulk", h.BulkCreateRecords)
	r.Post("/records/yorc", h.IngestYoRC)
	r.Get("/records", h.ListRecords)
	r.Get("/records/count", h.CountRecords)
	r.Get("/records/:id", h.GetRecord)
	r.Delete("/records/:id", h.DeleteRecord)
}

// CreateRecord godoc
// @Summary Store a generator record
// @Description Stores a single record; re-sending a known id is reported as duplicate
// @Tags Records
// @Accept json
// @Produce json
// @Param X-Owner header string false "Submitting client"
// @Param request body RecordRequest true "Record payload"
// @Success 201 {object} CreateRecordResponse
// @Success 200 {object} CreateRecordResponse "Duplicate record"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /records [post]
func (h *RecordHandler) CreateRecord(c *fiber.Ctx) error {
	var req RecordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}

	if err := validateStruct(req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_record",
			Message: err.Error(),
		})
	}

	res, err := h.storeUC.Save(c.UserContext(), req.toInput(c.Get(OwnerHeader)))
	if err != nil {
		return writeError(c, err)
	}

	return writeSaved(c, res)
}

// BulkCreateRecords godoc
// @Summary Bulk store generator records
// @Description Validates every record first, then stores them in order
// @Tags Records
// @Accept json
// @Produce json
// @Param X-Owner header string false "Submitting client"
// @Param request body BulkCreateRecordsRequest true "Bulk record payload"
// @Success 201 {object} BulkCreateRecordsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /records/bulk [post]
func (h *RecordHandler) BulkCreateRecords(c *fiber.Ctx) error {
	var req BulkCreateRecordsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}

	if len(req.Records) == 0 {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "records_list_required",
		})
	}

	owner := c.Get(OwnerHeader)
	inputs := make([]usecase.SaveRecordInput, len(req.Records))
	for i, r := range req.Records {
		if err := validateStruct(r); err != nil {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_record",
				Message: fmt.Sprintf("records[%d]: %v", i, err),
			})
		}
		inputs[i] = r.toInput(owner)
	}

	result, err := h.storeUC.BulkSave(c.UserContext(), usecase.BulkSaveRecordsInput{Records: inputs})
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(BulkCreateRecordsResponse{
		Created:    result.Created,
		Duplicates: result.Duplicates,
	})
}

// IngestYoRC godoc
// @Summary Ingest a .yo-rc.json document
// @Description Reads the generator-jhipster section of a raw .yo-rc.json body and stores it
// @Tags Records
// @Accept json
// @Produce json
// @Param X-Owner header string false "Submitting client"
// @Param request body object true ".yo-rc.json content"
// @Success 201 {object} CreateRecordResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /records/yorc [post]
func (h *RecordHandler) IngestYoRC(c *fiber.Ctx) error {
	res, err := h.storeUC.Ingest(c.UserContext(), c.Get(OwnerHeader), c.Body())
	if err != nil {
		return writeError(c, err)
	}

	return writeSaved(c, res)
}

// ListRecords godoc
// @Summary List stored records
// @Description Returns records newest first
// @Tags Records
// @Produce json
// @Param limit query int false "Page size (default 100, max 1000)"
// @Param offset query int false "Records to skip"
// @Success 200 {object} ListRecordsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /records [get]
func (h *RecordHandler) ListRecords(c *fiber.Ctx) error {
	limit, err := intQuery(c, "limit")
	if err != nil {
		return writeError(c, usecase.ErrInvalidPage)
	}
	offset, err := intQuery(c, "offset")
	if err != nil {
		return writeError(c, usecase.ErrInvalidPage)
	}

	records, err := h.queryUC.List(c.UserContext(), limit, offset)
	if err != nil {
		return writeError(c, err)
	}

	if limit == 0 {
		limit = usecase.DefaultListLimit
	}
	resp := ListRecordsResponse{
		Records: make([]RecordResponse, 0, len(records)),
		Limit:   limit,
		Offset:  offset,
	}
	for _, r := range records {
		resp.Records = append(resp.Records, toRecordResponse(r))
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// CountRecords godoc
// @Summary Count stored records
// @Tags Records
// @Produce json
// @Success 200 {object} CountRecordsResponse
// @Failure 500 {object} ErrorResponse
// @Router /records/count [get]
func (h *RecordHandler) CountRecords(c *fiber.Ctx) error {
	n, err := h.queryUC.CountAll(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(CountRecordsResponse{Count: n})
}

// GetRecord godoc
// @Summary Get a record
// @Tags Records
// @Produce json
// @Param id path string true "Record id"
// @Success 200 {object} RecordResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /records/{id} [get]
func (h *RecordHandler) GetRecord(c *fiber.Ctx) error {
	r, err := h.queryUC.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(toRecordResponse(*r))
}

// DeleteRecord godoc
// @Summary Delete a record
// @Tags Records
// @Param id path string true "Record id"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /records/{id} [delete]
func (h *RecordHandler) DeleteRecord(c *fiber.Ctx) error {
	if err := h.queryUC.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}

	return c.SendStatus(http.StatusNoContent)
}

func writeSaved(c *fiber.Ctx, res usecase.SaveRecordResult) error {
	if !res.Created {
		return c.Status(http.StatusOK).JSON(CreateRecordResponse{
			Status: "duplicate",
			ID:     res.ID,
		})
	}

	return c.Status(http.StatusCreated).JSON(CreateRecordResponse{
		Status: "created",
		ID:     res.ID,
	})
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidRecord),
		errors.Is(err, usecase.ErrInvalidID),
		errors.Is(err, usecase.ErrFutureTime):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_record",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrInvalidPayload):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_payload",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrInvalidPage):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_page",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrRecordNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error: "record_not_found",
		})
	default:
		logger.C(c.UserContext()).Error().Err(err).Str("path", c.Path()).Msg("record request failed")
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}

func intQuery(c *fiber.Ctx, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
