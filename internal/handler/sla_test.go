package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"brightline/internal/models"
	"brightline/internal/service"
)

type mockSLAService struct {
	createFunc func(ctx context.Context, form service.SLAForm) service.SLAResult
	listFunc   func(ctx context.Context) ([]models.SLA, error)
	lastForm   service.SLAForm
}

func (m *mockSLAService) Create(ctx context.Context, form service.SLAForm) service.SLAResult {
	m.lastForm = form
	if m.createFunc != nil {
		return m.createFunc(ctx, form)
	}
	return service.SLAResult{Status: service.SLACreated, ID: 1}
}

func (m *mockSLAService) ListRecent(ctx context.Context) ([]models.SLA, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func newSLARouter(svc service.SLAService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewSLAHandler(svc)
	router.POST("/api/sla", h.Submit)
	router.GET("/api/sla", h.List)
	return router
}

func slaForm() url.Values {
	return url.Values{
		"effectiveDate":     {"2030-01-01"},
		"clientName":        {"Acme Corp"},
		"clientSignature":   {"data:image/png;base64,aaa"},
		"providerSignature": {"data:image/png;base64,bbb"},
	}
}

func TestSLASubmitOK(t *testing.T) {
	mock := &mockSLAService{
		createFunc: func(ctx context.Context, form service.SLAForm) service.SLAResult {
			return service.SLAResult{Status: service.SLACreated, ID: 7}
		},
	}
	rec := postForm(t, newSLARouter(mock), "/api/sla", slaForm())

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if mock.lastForm.ClientName != "Acme Corp" {
		t.Errorf("form fields not passed through: %+v", mock.lastForm)
	}

	var resp struct {
		OK bool `json:"ok"`
		ID uint `json:"id"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if !resp.OK || resp.ID != 7 {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestSLASubmitValidationErrors(t *testing.T) {
	mock := &mockSLAService{
		createFunc: func(ctx context.Context, form service.SLAForm) service.SLAResult {
			return service.SLAResult{
				Status:      service.SLAInvalid,
				FieldErrors: map[string]string{"clientName": "Client name is required"},
			}
		},
	}
	rec := postForm(t, newSLARouter(mock), "/api/sla", url.Values{})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Errors["clientName"] != "Client name is required" {
		t.Errorf("expected field error, got %v", resp.Errors)
	}
}

func TestSLASubmitStoreFailure(t *testing.T) {
	mock := &mockSLAService{
		createFunc: func(ctx context.Context, form service.SLAForm) service.SLAResult {
			return service.SLAResult{Status: service.SLAStoreFailed}
		},
	}
	rec := postForm(t, newSLARouter(mock), "/api/sla", slaForm())

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestSLAList(t *testing.T) {
	mock := &mockSLAService{
		listFunc: func(ctx context.Context) ([]models.SLA, error) {
			return []models.SLA{
				{ID: 2, ClientName: "Newer", CreatedAt: time.Now()},
				{ID: 1, ClientName: "Older", CreatedAt: time.Now().Add(-time.Hour)},
			}, nil
		},
	}
	router := newSLARouter(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/sla", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		SLAs []models.SLA `json:"slas"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.SLAs) != 2 || resp.SLAs[0].ClientName != "Newer" {
		t.Errorf("unexpected listing: %+v", resp.SLAs)
	}
}

func TestSLAListEmpty(t *testing.T) {
	router := newSLARouter(&mockSLAService{})

	req := httptest.NewRequest(http.MethodGet, "/api/sla", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		SLAs []models.SLA `json:"slas"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.SLAs == nil {
		t.Error("expected [] not null for an empty listing")
	}
}

func TestSLAListFailure(t *testing.T) {
	mock := &mockSLAService{
		listFunc: func(ctx context.Context) ([]models.SLA, error) {
			return nil, errors.New("connection reset")
		},
	}
	router := newSLARouter(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/sla", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
