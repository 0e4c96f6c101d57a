package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portfolio-api/internal/models"
	"portfolio-api/internal/repositories"
	"portfolio-api/internal/services"
	"portfolio-api/internal/validation"
)

// ---------------------------------------------------------------------------
// Mock MessageManager
// ---------------------------------------------------------------------------

type mockMessageManager struct {
	listFunc     func(ctx context.Context, filter repositories.MessageFilter) ([]models.Message, error)
	getFunc      func(ctx context.Context, id uuid.UUID) (*models.Message, error)
	createFunc   func(ctx context.Context, req services.CreateMessageRequest) (*models.Message, error)
	markReadFunc func(ctx context.Context, id uuid.UUID) (*models.Message, error)
	deleteFunc   func(ctx context.Context, id uuid.UUID) error
}

func (m *mockMessageManager) List(ctx context.Context, filter repositories.MessageFilter) ([]models.Message, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return nil, nil
}
func (m *mockMessageManager) Get(ctx context.Context, id uuid.UUID) (*models.Message, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, nil
}
func (m *mockMessageManager) Create(ctx context.Context, req services.CreateMessageRequest) (*models.Message, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return nil, nil
}
func (m *mockMessageManager) MarkRead(ctx context.Context, id uuid.UUID) (*models.Message, error) {
	if m.markReadFunc != nil {
		return m.markReadFunc(ctx, id)
	}
	return nil, nil
}
func (m *mockMessageManager) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func newMessageRouter(mock *mockMessageManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewMessageHandler(mock)
	api := router.Group("/api")
	messages := api.Group("/messages")
	messages.GET("", h.ListMessages)
	messages.GET("/:id", h.GetMessage)
	messages.POST("", h.CreateMessage)
	messages.PATCH("/:id/read", h.MarkMessageRead)
	messages.DELETE("/:id", h.DeleteMessage)
	return router
}

type envelope struct {
	Success bool                    `json:"success"`
	Message string                  `json:"message"`
	Count   *int                    `json:"count"`
	Data    json.RawMessage         `json:"data"`
	Error   string                  `json:"error"`
	Errors  []validation.FieldError `json:"errors"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return env
}

// ---------------------------------------------------------------------------
// POST /api/messages tests
// ---------------------------------------------------------------------------

func TestMessageHandler_Create_Success(t *testing.T) {
	var got services.CreateMessageRequest
	mock := &mockMessageManager{
		createFunc: func(ctx context.Context, req services.CreateMessageRequest) (*models.Message, error) {
			got = req
			return &models.Message{
				ID:      uuid.New(),
				Name:    req.Name,
				Email:   req.Email,
				Subject: req.Subject,
				Body:    req.Message,
			}, nil
		},
	}
	router := newMessageRouter(mock)

	body := `{"name":"Jane Doe","email":"jane@example.com","subject":"Project inquiry","message":"I would like a website for my bakery."}`
	req := httptest.NewRequest(http.MethodPost, "/api/messages", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d, body: %s", rec.Code, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	if !env.Success {
		t.Errorf("expected success=true")
	}
	if env.Message != "Message sent successfully! We will contact you soon." {
		t.Errorf("unexpected message: %q", env.Message)
	}
	if got.Email != "jane@example.com" {
		t.Errorf("request not forwarded to service: %+v", got)
	}

	var data models.Message
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.IsRead {
		t.Errorf("new message must start unread")
	}
}

func TestMessageHandler_Create_ValidationErrors(t *testing.T) {
	mock := &mockMessageManager{
		createFunc: func(ctx context.Context, req services.CreateMessageRequest) (*models.Message, error) {
			return nil, validation.Errors{
				{Field: "message", Message: "message must be at least 10 characters"},
			}
		},
	}
	router := newMessageRouter(mock)

	body := `{"name":"Jane Doe","email":"jane@example.com","subject":"Hi","message":"short"}`
	req := httptest.NewRequest(http.MethodPost, "/api/messages", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Success {
		t.Errorf("expected success=false")
	}
	if len(env.Errors) != 1 || env.Errors[0].Field != "message" {
		t.Errorf("expected one field error for message, got %+v", env.Errors)
	}
}

func TestMessageHandler_Create_MalformedBody(t *testing.T) {
	router := newMessageRouter(&mockMessageManager{})

	req := httptest.NewRequest(http.MethodPost, "/api/messages", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Error != "Invalid request body" {
		t.Errorf("unexpected error: %q", env.Error)
	}
}

// ---------------------------------------------------------------------------
// GET /api/messages tests
// ---------------------------------------------------------------------------

func TestMessageHandler_List_ForwardsIsReadFilter(t *testing.T) {
	var gotFilter repositories.MessageFilter
	mock := &mockMessageManager{
		listFunc: func(ctx context.Context, filter repositories.MessageFilter) ([]models.Message, error) {
			gotFilter = filter
			return []models.Message{{ID: uuid.New(), Name: "Jane"}}, nil
		},
	}
	router := newMessageRouter(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/messages?isRead=false", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotFilter.IsRead == nil || *gotFilter.IsRead {
		t.Errorf("expected isRead=false filter, got %+v", gotFilter.IsRead)
	}
	env := decodeEnvelope(t, rec)
	if env.Count == nil || *env.Count != 1 {
		t.Errorf("expected count=1, got %+v", env.Count)
	}
}

func TestMessageHandler_List_IgnoresUnknownParams(t *testing.T) {
	var gotFilter repositories.MessageFilter
	mock := &mockMessageManager{
		listFunc: func(ctx context.Context, filter repositories.MessageFilter) ([]models.Message, error) {
			gotFilter = filter
			return nil, nil
		},
	}
	router := newMessageRouter(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/messages?bogus=1&replied=true", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotFilter.IsRead != nil {
		t.Errorf("unknown params must not populate the filter")
	}
}

// ---------------------------------------------------------------------------
// GET / PATCH / DELETE by id tests
// ---------------------------------------------------------------------------

func TestMessageHandler_Get_MalformedIDIs404(t *testing.T) {
	router := newMessageRouter(&mockMessageManager{})

	req := httptest.NewRequest(http.MethodGet, "/api/messages/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Error != "Message not found" {
		t.Errorf("unexpected error: %q", env.Error)
	}
}

func TestMessageHandler_Get_UnknownIDIs404(t *testing.T) {
	mock := &mockMessageManager{
		getFunc: func(ctx context.Context, id uuid.UUID) (*models.Message, error) {
			return nil, repositories.ErrNotFound
		},
	}
	router := newMessageRouter(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/messages/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestMessageHandler_MarkRead_Success(t *testing.T) {
	id := uuid.New()
	mock := &mockMessageManager{
		markReadFunc: func(ctx context.Context, gotID uuid.UUID) (*models.Message, error) {
			if gotID != id {
				t.Errorf("expected id %s, got %s", id, gotID)
			}
			return &models.Message{ID: gotID, IsRead: true}, nil
		},
	}
	router := newMessageRouter(mock)

	req := httptest.NewRequest(http.MethodPatch, "/api/messages/"+id.String()+"/read", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	var data models.Message
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if !data.IsRead {
		t.Errorf("expected isRead=true after mark read")
	}
}

func TestMessageHandler_Delete_Success(t *testing.T) {
	mock := &mockMessageManager{}
	router := newMessageRouter(mock)

	req := httptest.NewRequest(http.MethodDelete, "/api/messages/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Message != "Message deleted successfully" {
		t.Errorf("unexpected message: %q", env.Message)
	}
}
