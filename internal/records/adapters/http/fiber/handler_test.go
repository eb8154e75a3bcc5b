package fiber

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"generator-stats-service/internal/records/core/domain"
	"generator-stats-service/internal/records/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type fakeStoreRecordUseCase struct {
	SaveFunc      func(ctx context.Context, in usecase.SaveRecordInput) (usecase.SaveRecordResult, error)
	BulkSaveFunc  func(ctx context.Context, in usecase.BulkSaveRecordsInput) (usecase.BulkSaveRecordsResult, error)
	IngestFunc    func(ctx context.Context, owner string, payload []byte) (usecase.SaveRecordResult, error)
	LastSaveInput usecase.SaveRecordInput
	LastBulkInput usecase.BulkSaveRecordsInput
	LastOwner     string
	LastPayload   []byte
}

func (f *fakeStoreRecordUseCase) Save(ctx context.Context, in usecase.SaveRecordInput) (usecase.SaveRecordResult, error) {
	f.LastSaveInput = in
	if f.SaveFunc != nil {
		return f.SaveFunc(ctx, in)
	}
	return usecase.SaveRecordResult{}, nil
}

func (f *fakeStoreRecordUseCase) BulkSave(ctx context.Context, in usecase.BulkSaveRecordsInput) (usecase.BulkSaveRecordsResult, error) {
	f.LastBulkInput = in
	if f.BulkSaveFunc != nil {
		return f.BulkSaveFunc(ctx, in)
	}
	return usecase.BulkSaveRecordsResult{}, nil
}

func (f *fakeStoreRecordUseCase) Ingest(ctx context.Context, owner string, payload []byte) (usecase.SaveRecordResult, error) {
	f.LastOwner = owner
	f.LastPayload = append([]byte(nil), payload...)
	if f.IngestFunc != nil {
		return f.IngestFunc(ctx, owner, payload)
	}
	return usecase.SaveRecordResult{}, nil
}

type fakeQueryRecordUseCase struct {
	GetFunc    func(ctx context.Context, id string) (*domain.Record, error)
	ListFunc   func(ctx context.Context, limit, offset int) ([]domain.Record, error)
	DeleteFunc func(ctx context.Context, id string) error
	CountFunc  func(ctx context.Context) (int64, error)
	LastLimit  int
	LastOffset int
	LastID     string
}

func (f *fakeQueryRecordUseCase) Get(ctx context.Context, id string) (*domain.Record, error) {
	f.LastID = id
	if f.GetFunc != nil {
		return f.GetFunc(ctx, id)
	}
	return nil, usecase.ErrRecordNotFound
}

func (f *fakeQueryRecordUseCase) List(ctx context.Context, limit, offset int) ([]domain.Record, error) {
	f.LastLimit = limit
	f.LastOffset = offset
	if f.ListFunc != nil {
		return f.ListFunc(ctx, limit, offset)
	}
	return nil, nil
}

func (f *fakeQueryRecordUseCase) Delete(ctx context.Context, id string) error {
	f.LastID = id
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, id)
	}
	return nil
}

func (f *fakeQueryRecordUseCase) CountAll(ctx context.Context) (int64, error) {
	if f.CountFunc != nil {
		return f.CountFunc(ctx)
	}
	return 0, nil
}

// helper: create fiber app and routes
func setupTestApp(store StoreRecordUseCase, query QueryRecordUseCase) *fiber.App {
	app := fiber.New()
	NewRecordHandler(store, query).Register(app)
	return app
}

// helper: send request
func doRequest(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, []byte) {
	t.Helper()

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	_ = resp.Body.Close()

	return resp, respBody
}

func jsonRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()

	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		buf = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decode(t *testing.T, body []byte) map[string]any {
	t.Helper()

	var out map[string]any
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("invalid json response: %v (body: %s)", err, string(body))
	}
	return out
}

// ---- Create ----

func TestCreateRecord_Success_Created(t *testing.T) {
	store := &fakeStoreRecordUseCase{
		SaveFunc: func(ctx context.Context, in usecase.SaveRecordInput) (usecase.SaveRecordResult, error) {
			return usecase.SaveRecordResult{ID: "rec-1", Created: true}, nil
		},
	}
	app := setupTestApp(store, &fakeQueryRecordUseCase{})

	req := jsonRequest(t, http.MethodPost, "/records", RecordRequest{
		JHipsterVersion:   "7.9.3",
		BuildTool:         "maven",
		UseSass:           domain.Bool(false),
		ServerPort:        domain.Int(8080),
		SelectedLanguages: []string{"en"},
	})
	req.Header.Set(OwnerHeader, "team-a")

	resp, body := doRequest(t, app, req)

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusCreated, resp.StatusCode, string(body))
	}

	respJSON := decode(t, body)
	if respJSON["status"] != "created" || respJSON["id"] != "rec-1" {
		t.Errorf("unexpected response: %v", respJSON)
	}

	in := store.LastSaveInput
	if in.Owner != "team-a" {
		t.Errorf("expected owner team-a, got %q", in.Owner)
	}
	if in.BuildTool != "maven" || in.UseSass == nil || *in.UseSass || *in.ServerPort != 8080 {
		t.Errorf("fields not mapped: %+v", in)
	}
}

func TestCreateRecord_Success_Duplicate(t *testing.T) {
	store := &fakeStoreRecordUseCase{
		SaveFunc: func(ctx context.Context, in usecase.SaveRecordInput) (usecase.SaveRecordResult, error) {
			return usecase.SaveRecordResult{ID: in.ID, Created: false}, nil
		},
	}
	app := setupTestApp(store, &fakeQueryRecordUseCase{})

	resp, body := doRequest(t, app, jsonRequest(t, http.MethodPost, "/records", RecordRequest{
		ID:              "0b7f4b5e-9a43-4d7e-8f55-3f1b0c4c2a10",
		JHipsterVersion: "7.9.3",
	}))

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusOK, resp.StatusCode, string(body))
	}
	if decode(t, body)["status"] != "duplicate" {
		t.Errorf("expected status=duplicate, got %s", string(body))
	}
}

func TestCreateRecord_InvalidJSON(t *testing.T) {
	app := setupTestApp(&fakeStoreRecordUseCase{}, &fakeQueryRecordUseCase{})

	req := httptest.NewRequest(http.MethodPost, "/records", bytes.NewBufferString(`{"jhipsterVersion":`))
	req.Header.Set("Content-Type", "application/json")

	resp, body := doRequest(t, app, req)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusBadRequest, resp.StatusCode, string(body))
	}
}

func TestCreateRecord_ValidationErrors(t *testing.T) {
	for _, uerr := range []error{usecase.ErrInvalidRecord, usecase.ErrInvalidID, usecase.ErrFutureTime} {
		store := &fakeStoreRecordUseCase{
			SaveFunc: func(ctx context.Context, in usecase.SaveRecordInput) (usecase.SaveRecordResult, error) {
				return usecase.SaveRecordResult{}, uerr
			},
		}
		app := setupTestApp(store, &fakeQueryRecordUseCase{})

		resp, body := doRequest(t, app, jsonRequest(t, http.MethodPost, "/records", RecordRequest{
			JHipsterVersion: "7.9.3",
			Timestamp:       time.Now().Add(time.Hour).Unix(),
		}))

		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("%v: expected status %d, got %d (body: %s)", uerr, http.StatusBadRequest, resp.StatusCode, string(body))
		}
		if decode(t, body)["error"] != "invalid_record" {
			t.Errorf("%v: expected error=invalid_record, got %s", uerr, string(body))
		}
	}
}

func TestCreateRecord_InternalError(t *testing.T) {
	store := &fakeStoreRecordUseCase{
		SaveFunc: func(ctx context.Context, in usecase.SaveRecordInput) (usecase.SaveRecordResult, error) {
			return usecase.SaveRecordResult{}, errors.New("db error")
		},
	}
	app := setupTestApp(store, &fakeQueryRecordUseCase{})

	resp, body := doRequest(t, app, jsonRequest(t, http.MethodPost, "/records", RecordRequest{JHipsterVersion: "7.9.3"}))

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusInternalServerError, resp.StatusCode, string(body))
	}
	if decode(t, body)["error"] != "internal_server_error" {
		t.Errorf("expected error=internal_server_error, got %s", string(body))
	}
}

func TestCreateRecord_RequestValidation(t *testing.T) {
	tests := []struct {
		name string
		req  RecordRequest
		want string
	}{
		{"missing version", RecordRequest{BuildTool: "maven"}, "jhipsterVersion"},
		{"bad id", RecordRequest{ID: "not-a-uuid", JHipsterVersion: "7.9.3"}, "id"},
		{"bad port", RecordRequest{JHipsterVersion: "7.9.3", ServerPort: domain.Int(70000)}, "serverPort"},
		{"empty language", RecordRequest{JHipsterVersion: "7.9.3", SelectedLanguages: []string{"en", ""}}, "selectedLanguages[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStoreRecordUseCase{
				SaveFunc: func(ctx context.Context, in usecase.SaveRecordInput) (usecase.SaveRecordResult, error) {
					t.Fatalf("usecase should not be called for an invalid request")
					return usecase.SaveRecordResult{}, nil
				},
			}
			app := setupTestApp(store, &fakeQueryRecordUseCase{})

			resp, body := doRequest(t, app, jsonRequest(t, http.MethodPost, "/records", tt.req))

			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected status %d, got %d (body: %s)", http.StatusBadRequest, resp.StatusCode, string(body))
			}
			respJSON := decode(t, body)
			if respJSON["error"] != "invalid_record" {
				t.Errorf("expected error=invalid_record, got %v", respJSON["error"])
			}
			if msg, _ := respJSON["message"].(string); !strings.Contains(msg, tt.want) {
				t.Errorf("expected message to mention %q, got %q", tt.want, msg)
			}
		})
	}
}

// ---- Bulk ----

func TestBulkCreateRecords_Success(t *testing.T) {
	store := &fakeStoreRecordUseCase{
		BulkSaveFunc: func(ctx context.Context, in usecase.BulkSaveRecordsInput) (usecase.BulkSaveRecordsResult, error) {
			return usecase.BulkSaveRecordsResult{Created: len(in.Records) - 1, Duplicates: 1}, nil
		},
	}
	app := setupTestApp(store, &fakeQueryRecordUseCase{})

	req := jsonRequest(t, http.MethodPost, "/records/bulk", BulkCreateRecordsRequest{
		Records: []RecordRequest{
			{JHipsterVersion: "7.9.3"},
			{JHipsterVersion: "8.0.0"},
			{JHipsterVersion: "8.0.0"},
		},
	})
	req.Header.Set(OwnerHeader, "ci")

	resp, body := doRequest(t, app, req)

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusCreated, resp.StatusCode, string(body))
	}

	var out BulkCreateRecordsResponse
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if out.Created != 2 || out.Duplicates != 1 {
		t.Errorf("unexpected result: %+v", out)
	}
	if len(store.LastBulkInput.Records) != 3 || store.LastBulkInput.Records[2].Owner != "ci" {
		t.Errorf("owner not propagated: %+v", store.LastBulkInput)
	}
}

func TestBulkCreateRecords_InvalidItem(t *testing.T) {
	store := &fakeStoreRecordUseCase{}
	app := setupTestApp(store, &fakeQueryRecordUseCase{})

	resp, body := doRequest(t, app, jsonRequest(t, http.MethodPost, "/records/bulk", BulkCreateRecordsRequest{
		Records: []RecordRequest{{JHipsterVersion: "7.9.3"}, {BuildTool: "gradle"}},
	}))

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusBadRequest, resp.StatusCode, string(body))
	}
	if msg, _ := decode(t, body)["message"].(string); !strings.HasPrefix(msg, "records[1]") {
		t.Errorf("expected failing index in message, got %q", msg)
	}
	if store.LastBulkInput.Records != nil {
		t.Errorf("usecase should not be called")
	}
}

func TestBulkCreateRecords_EmptyList(t *testing.T) {
	store := &fakeStoreRecordUseCase{}
	app := setupTestApp(store, &fakeQueryRecordUseCase{})

	resp, body := doRequest(t, app, jsonRequest(t, http.MethodPost, "/records/bulk", BulkCreateRecordsRequest{}))

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusBadRequest, resp.StatusCode, string(body))
	}
	if decode(t, body)["error"] != "records_list_required" {
		t.Errorf("unexpected body: %s", string(body))
	}
}

// ---- yo-rc ingestion ----

func TestIngestYoRC_Success(t *testing.T) {
	store := &fakeStoreRecordUseCase{
		IngestFunc: func(ctx context.Context, owner string, payload []byte) (usecase.SaveRecordResult, error) {
			return usecase.SaveRecordResult{ID: "rec-9", Created: true}, nil
		},
	}
	app := setupTestApp(store, &fakeQueryRecordUseCase{})

	payload := `{"generator-jhipster":{"jhipsterVersion":"7.9.3","buildTool":"gradle"}}`
	req := httptest.NewRequest(http.MethodPost, "/records/yorc", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(OwnerHeader, "alice")

	resp, body := doRequest(t, app, req)

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusCreated, resp.StatusCode, string(body))
	}
	if store.LastOwner != "alice" {
		t.Errorf("expected owner alice, got %q", store.LastOwner)
	}
	if string(store.LastPayload) != payload {
		t.Errorf("payload not forwarded verbatim: %s", string(store.LastPayload))
	}
}

func TestIngestYoRC_InvalidPayload(t *testing.T) {
	store := &fakeStoreRecordUseCase{
		IngestFunc: func(ctx context.Context, owner string, payload []byte) (usecase.SaveRecordResult, error) {
			return usecase.SaveRecordResult{}, usecase.ErrInvalidPayload
		},
	}
	app := setupTestApp(store, &fakeQueryRecordUseCase{})

	req := httptest.NewRequest(http.MethodPost, "/records/yorc", bytes.NewBufferString(`{}`))

	resp, body := doRequest(t, app, req)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusBadRequest, resp.StatusCode, string(body))
	}
	if decode(t, body)["error"] != "invalid_payload" {
		t.Errorf("unexpected body: %s", string(body))
	}
}

// ---- Queries ----

func TestListRecords_DefaultsAndMapping(t *testing.T) {
	created := time.Date(2023, 1, 1, 10, 0, 0, 0, time.UTC)
	query := &fakeQueryRecordUseCase{
		ListFunc: func(ctx context.Context, limit, offset int) ([]domain.Record, error) {
			return []domain.Record{
				{ID: "a", CreatedAt: created, JHipsterVersion: "7.9.3", UseSass: domain.Bool(true)},
			}, nil
		},
	}
	app := setupTestApp(&fakeStoreRecordUseCase{}, query)

	resp, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/records", nil))

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusOK, resp.StatusCode, string(body))
	}
	if query.LastLimit != 0 || query.LastOffset != 0 {
		t.Errorf("expected zero paging passed through, got %d/%d", query.LastLimit, query.LastOffset)
	}

	var out ListRecordsResponse
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if out.Limit != usecase.DefaultListLimit {
		t.Errorf("expected limit %d, got %d", usecase.DefaultListLimit, out.Limit)
	}
	if len(out.Records) != 1 || out.Records[0].ID != "a" || !out.Records[0].CreatedAt.Equal(created) {
		t.Fatalf("unexpected records: %+v", out.Records)
	}
	if out.Records[0].SelectedLanguages == nil {
		t.Errorf("expected selectedLanguages to be an empty list")
	}
}

func TestListRecords_InvalidPaging(t *testing.T) {
	app := setupTestApp(&fakeStoreRecordUseCase{}, &fakeQueryRecordUseCase{})

	resp, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/records?limit=abc", nil))

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusBadRequest, resp.StatusCode, string(body))
	}
}

func TestListRecords_PagingForwarded(t *testing.T) {
	query := &fakeQueryRecordUseCase{}
	app := setupTestApp(&fakeStoreRecordUseCase{}, query)

	resp, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/records?limit=5&offset=10", nil))

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusOK, resp.StatusCode, string(body))
	}
	if query.LastLimit != 5 || query.LastOffset != 10 {
		t.Errorf("expected 5/10, got %d/%d", query.LastLimit, query.LastOffset)
	}
}

func TestCountRecords(t *testing.T) {
	query := &fakeQueryRecordUseCase{
		CountFunc: func(ctx context.Context) (int64, error) { return 42, nil },
	}
	app := setupTestApp(&fakeStoreRecordUseCase{}, query)

	resp, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/records/count", nil))

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusOK, resp.StatusCode, string(body))
	}
	if decode(t, body)["count"] != float64(42) {
		t.Errorf("unexpected body: %s", string(body))
	}
	if query.LastID != "" {
		t.Errorf("/records/count must not be routed to GetRecord")
	}
}

func TestGetRecord_Found(t *testing.T) {
	query := &fakeQueryRecordUseCase{
		GetFunc: func(ctx context.Context, id string) (*domain.Record, error) {
			return &domain.Record{ID: id, JHipsterVersion: "7.9.3", ServerPort: domain.Int(9000)}, nil
		},
	}
	app := setupTestApp(&fakeStoreRecordUseCase{}, query)

	resp, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/records/abc", nil))

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusOK, resp.StatusCode, string(body))
	}
	respJSON := decode(t, body)
	if respJSON["id"] != "abc" || respJSON["serverPort"] != float64(9000) {
		t.Errorf("unexpected body: %s", string(body))
	}
	if _, ok := respJSON["useSass"]; ok {
		t.Errorf("missing boolean should be omitted: %s", string(body))
	}
}

func TestGetRecord_NotFound(t *testing.T) {
	app := setupTestApp(&fakeStoreRecordUseCase{}, &fakeQueryRecordUseCase{})

	resp, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/records/missing", nil))

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusNotFound, resp.StatusCode, string(body))
	}
}

func TestDeleteRecord(t *testing.T) {
	query := &fakeQueryRecordUseCase{}
	app := setupTestApp(&fakeStoreRecordUseCase{}, query)

	resp, _ := doRequest(t, app, httptest.NewRequest(http.MethodDelete, "/records/abc", nil))

	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, resp.StatusCode)
	}
	if query.LastID != "abc" {
		t.Errorf("expected id abc, got %q", query.LastID)
	}

	query.DeleteFunc = func(ctx context.Context, id string) error { return usecase.ErrRecordNotFound }
	resp, _ = doRequest(t, app, httptest.NewRequest(http.MethodDelete, "/records/abc", nil))

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, resp.StatusCode)
	}
}
