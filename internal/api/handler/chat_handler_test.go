package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/entarch/systems-catalog/internal/core/ports"
)

type stubChatService struct {
	respondFn func(ctx context.Context, prompt string) (*ports.ChatReply, error)
}

func (s *stubChatService) Respond(ctx context.Context, prompt string) (*ports.ChatReply, error) {
	return s.respondFn(ctx, prompt)
}

func TestChatHandler_Respond_Success(t *testing.T) {
	e := testEcho()
	h := NewChatHandler(&stubChatService{
		respondFn: func(_ context.Context, prompt string) (*ports.ChatReply, error) {
			if prompt != "how many systems?" {
				t.Fatalf("unexpected prompt: %q", prompt)
			}
			return &ports.ChatReply{Response: "There are currently 2 systems.", ModelUsed: "catalog-mock"}, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"prompt":"how many systems?"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Respond(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["model_used"] != "catalog-mock" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestChatHandler_Respond_EmptyPromptRejected(t *testing.T) {
	e := testEcho()
	h := NewChatHandler(&stubChatService{
		respondFn: func(context.Context, string) (*ports.ChatReply, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"prompt":"  "}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Respond(c)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Fields) != 1 || ve.Fields[0].Field != "prompt" {
		t.Fatalf("expected prompt violation, got %+v", ve.Fields)
	}
}
