package contact_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lifestream-health/donation-backend/internal/contact"
)

type fakeMessageStore struct {
	messages []contact.Message
}

func (f *fakeMessageStore) Insert(m *contact.Message) error {
	f.messages = append(f.messages, *m)
	return nil
}

func postContact(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// TestContactMessageStored verifies a valid submission is persisted with a
// 201 response.
func TestContactMessageStored(t *testing.T) {
	store := &fakeMessageStore{}
	handler := contact.NewHandler(store).SetupRoutes()

	rec := postContact(t, handler, `{"name":"Carol","email":"carol@x.com","message":"How do I donate?"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d; body: %s", rec.Code, rec.Body.String())
	}

	if len(store.messages) != 1 {
		t.Fatalf("expected 1 stored message, got %d", len(store.messages))
	}
	m := store.messages[0]
	if m.Name != "Carol" || m.Email != "carol@x.com" || m.Message != "How do I donate?" {
		t.Errorf("unexpected stored message: %+v", m)
	}
	if m.ID == "" || m.CreatedAt.IsZero() {
		t.Errorf("missing id or timestamp: %+v", m)
	}
}

// TestContactMessageValidation verifies missing fields get 400 and nothing
// is stored.
func TestContactMessageValidation(t *testing.T) {
	cases := []string{
		`{"email":"carol@x.com","message":"hi"}`,
		`{"name":"Carol","message":"hi"}`,
		`{"name":"Carol","email":"carol@x.com"}`,
		`not json`,
	}

	for _, body := range cases {
		store := &fakeMessageStore{}
		handler := contact.NewHandler(store).SetupRoutes()

		rec := postContact(t, handler, body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected 400, got %d", body, rec.Code)
		}
		if len(store.messages) != 0 {
			t.Errorf("body %s: expected nothing stored, got %d", body, len(store.messages))
		}
	}
}
