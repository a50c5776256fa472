package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avelikanov/dui-admin/internal/middleware"
	"github.com/avelikanov/dui-admin/internal/models"
	"github.com/avelikanov/dui-admin/internal/services"
	"github.com/avelikanov/dui-admin/pkg/dto"
	"github.com/avelikanov/dui-admin/tests/testutil"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTemplateApp(handler *TemplateHandler, jwtSvc *services.JWTService) http.Handler {
	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Post("/template/list", handler.List)
	app.Get("/template/:templateId/page", handler.GetPage)
	app.Get("/template/:templateId/image", handler.GetImage)
	return app
}

func TestTemplateHandler_List_Success(t *testing.T) {
	mockService := new(testutil.MockTemplateService)
	handler := NewTemplateHandler(mockService)
	jwtSvc := newTestJWTService()

	id := uuid.New()
	templates := []dto.TemplateListEntry{
		{UUID: id, Title: "Blank page", ImageURL: "/app/v1/template/" + id.String() + "/image"},
	}

	mockService.On("List", mock.Anything, "").Return(templates, nil)

	app := newTemplateApp(handler, jwtSvc)

	token := generateTestToken(t, jwtSvc, uuid.New(), "test@example.com")
	req := httptest.NewRequest(http.MethodPost, "/template/list", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response []dto.TemplateListEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response, 1)
	assert.Equal(t, id, response[0].UUID)

	mockService.AssertExpectations(t)
}

func TestTemplateHandler_List_FilterByType(t *testing.T) {
	mockService := new(testutil.MockTemplateService)
	handler := NewTemplateHandler(mockService)
	jwtSvc := newTestJWTService()

	mockService.On("List", mock.Anything, string(models.TemplateTypeComponent)).
		Return([]dto.TemplateListEntry{}, nil)

	app := newTemplateApp(handler, jwtSvc)

	jsonBody, _ := json.Marshal(dto.TemplateFilterRequest{Type: string(models.TemplateTypeComponent)})
	token := generateTestToken(t, jwtSvc, uuid.New(), "test@example.com")
	req := httptest.NewRequest(http.MethodPost, "/template/list", bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	mockService.AssertExpectations(t)
}

func TestTemplateHandler_List_NotAuthenticated(t *testing.T) {
	mockService := new(testutil.MockTemplateService)
	handler := NewTemplateHandler(mockService)

	app := newTemplateApp(handler, newTestJWTService())

	req := httptest.NewRequest(http.MethodPost, "/template/list", nil)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	mockService.AssertNotCalled(t, "List")
}

func TestTemplateHandler_GetPage_Success(t *testing.T) {
	mockService := new(testutil.MockTemplateService)
	handler := NewTemplateHandler(mockService)
	jwtSvc := newTestJWTService()

	id := uuid.New()
	content := []byte(`{"components": []}`)

	mockService.On("GetPage", mock.Anything, id).Return(content, nil)

	app := newTemplateApp(handler, jwtSvc)

	token := generateTestToken(t, jwtSvc, uuid.New(), "test@example.com")
	req := httptest.NewRequest(http.MethodGet, "/template/"+id.String()+"/page", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, string(content), rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	mockService.AssertExpectations(t)
}

func TestTemplateHandler_GetPage_NotFound(t *testing.T) {
	mockService := new(testutil.MockTemplateService)
	handler := NewTemplateHandler(mockService)
	jwtSvc := newTestJWTService()

	id := uuid.New()
	mockService.On("GetPage", mock.Anything, id).Return(nil, services.ErrTemplateNotFound)

	app := newTemplateApp(handler, jwtSvc)

	token := generateTestToken(t, jwtSvc, uuid.New(), "test@example.com")
	req := httptest.NewRequest(http.MethodGet, "/template/"+id.String()+"/page", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "TEMPLATE_NOT_FOUND")

	mockService.AssertExpectations(t)
}

func TestTemplateHandler_GetImage_Success(t *testing.T) {
	mockService := new(testutil.MockTemplateService)
	handler := NewTemplateHandler(mockService)
	jwtSvc := newTestJWTService()

	id := uuid.New()
	content := []byte{0x89, 0x50, 0x4e, 0x47}

	mockService.On("GetImage", mock.Anything, id).Return("blank.png", content, nil)

	app := newTemplateApp(handler, jwtSvc)

	token := generateTestToken(t, jwtSvc, uuid.New(), "test@example.com")
	req := httptest.NewRequest(http.MethodGet, "/template/"+id.String()+"/image", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, content, rec.Body.Bytes())
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "blank.png")

	mockService.AssertExpectations(t)
}

func TestTemplateHandler_GetImage_InvalidID(t *testing.T) {
	mockService := new(testutil.MockTemplateService)
	handler := NewTemplateHandler(mockService)
	jwtSvc := newTestJWTService()

	app := newTemplateApp(handler, jwtSvc)

	token := generateTestToken(t, jwtSvc, uuid.New(), "test@example.com")
	req := httptest.NewRequest(http.MethodGet, "/template/not-a-uuid/image", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
