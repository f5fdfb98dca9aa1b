package donation_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/lifestream-health/donation-backend/internal/auth"
	"github.com/lifestream-health/donation-backend/internal/donation"
	"github.com/lifestream-health/donation-backend/internal/middleware"
)

// fakeAccounts implements auth.UserStore in memory for the end-to-end tests.
type fakeAccounts struct {
	users map[string]*auth.User
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{users: map[string]*auth.User{}}
}

func (f *fakeAccounts) FindByEmail(email string) (*auth.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, auth.ErrNotFound
}

func (f *fakeAccounts) FindByID(id string) (*auth.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, auth.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeAccounts) Insert(user *auth.User) error {
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeAccounts) UpdateByID(id string, fields map[string]any) error {
	u, ok := f.users[id]
	if !ok {
		return auth.ErrNotFound
	}
	for column, value := range fields {
		s, _ := value.(string)
		switch column {
		case "full_name":
			u.FullName = s
		case "telephone":
			u.Telephone = s
		case "address":
			u.Address = s
		case "blood_group":
			u.BloodGroup = s
		}
	}
	return nil
}

// newPortalServer wires the full API surface the way main.go does, with
// in-memory stores and a real token service.
func newPortalServer(t *testing.T) (*httptest.Server, *auth.TokenService, *fakeDonationStore) {
	t.Helper()

	accounts := newFakeAccounts()
	donations := newFakeDonationStore()
	tokens := auth.NewTokenService("test-secret", "lifestream", time.Hour)

	authHandler := auth.NewHandler(auth.NewCredentialService(accounts), tokens)
	donationHandler := donation.NewHandler(donation.NewService(donations, accounts))

	authn := middleware.Authenticate(tokens)

	r := chi.NewRouter()
	r.Mount("/api/auth", authHandler.SetupRoutes(nil))
	r.Mount("/api/donations", donationHandler.SetupRoutes(authn))
	r.Route("/api/user", func(r chi.Router) {
		r.Use(authn)
		r.Get("/profile", authHandler.ProfileHandler)
		r.Put("/profile", authHandler.UpdateProfileHandler)
		r.Get("/donations", donationHandler.ListOwnHandler)
	})

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server, tokens, donations
}

func do(t *testing.T, method, url, token string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode body: %v", err)
	}
}

// signup registers a user over HTTP and returns the bearer token.
func signup(t *testing.T, server *httptest.Server, email, role string) string {
	t.Helper()

	resp := do(t, http.MethodPost, server.URL+"/api/auth/signup", "", map[string]string{
		"email":      email,
		"password":   "pw123",
		"role":       role,
		"fullName":   "Test " + role,
		"telephone":  "555-0100",
		"address":    "1 Main St",
		"bloodGroup": "O+",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("signup %s: expected 201, got %d", email, resp.StatusCode)
	}

	var body struct {
		Token string `json:"token"`
	}
	decode(t, resp, &body)
	return body.Token
}

func createDonation(t *testing.T, server *httptest.Server, token string) donation.Donation {
	t.Helper()

	resp := do(t, http.MethodPost, server.URL+"/api/donations", token, map[string]string{
		"type":          "blood",
		"hospital":      "City Hosp",
		"preferredDate": "2025-01-01",
		"time":          "10:00",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create donation: expected 201, got %d", resp.StatusCode)
	}

	var d donation.Donation
	decode(t, resp, &d)
	return d
}

func listOwn(t *testing.T, server *httptest.Server, token string) []donation.Donation {
	t.Helper()

	resp := do(t, http.MethodGet, server.URL+"/api/user/donations", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list own: expected 200, got %d", resp.StatusCode)
	}

	var ds []donation.Donation
	decode(t, resp, &ds)
	return ds
}

// TestDonorSubmitsRequest covers the main donor flow: signup, submit a
// request, and see it pending in the own-requests list.
func TestDonorSubmitsRequest(t *testing.T) {
	server, _, _ := newPortalServer(t)
	token := signup(t, server, "alice@x.com", "donor")

	created := createDonation(t, server, token)
	if created.Status != donation.StatusPending {
		t.Errorf("expected pending, got %q", created.Status)
	}
	if created.FullName != "Test donor" || created.BloodGroup != "O+" {
		t.Errorf("profile snapshot missing: %+v", created)
	}

	own := listOwn(t, server, token)
	if len(own) != 1 {
		t.Fatalf("expected 1 request, got %d", len(own))
	}
	if own[0].ID != created.ID || own[0].Status != donation.StatusPending {
		t.Errorf("unexpected listing: %+v", own[0])
	}
}

// TestAdminApprovesRequest covers the admin flow: approve a pending request,
// the donor sees the new status, and a second transition is refused.
func TestAdminApprovesRequest(t *testing.T) {
	server, _, _ := newPortalServer(t)
	donorToken := signup(t, server, "alice@x.com", "donor")
	adminToken := signup(t, server, "admin@x.com", "admin")

	created := createDonation(t, server, donorToken)

	resp := do(t, http.MethodPut, server.URL+"/api/donations/"+created.ID, adminToken, map[string]string{
		"status": "approved",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("transition: expected 200, got %d", resp.StatusCode)
	}
	var approved donation.Donation
	decode(t, resp, &approved)
	if approved.Status != donation.StatusApproved {
		t.Errorf("expected approved, got %q", approved.Status)
	}

	own := listOwn(t, server, donorToken)
	if len(own) != 1 || own[0].Status != donation.StatusApproved {
		t.Errorf("donor does not see the approval: %+v", own)
	}

	// The record is terminal now; re-transitioning conflicts.
	resp = do(t, http.MethodPut, server.URL+"/api/donations/"+created.ID, adminToken, map[string]string{
		"status": "rejected",
	})
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("second transition: expected 409, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

// TestDonorCannotListAll verifies the admin-only gate on the full listing.
func TestDonorCannotListAll(t *testing.T) {
	server, _, _ := newPortalServer(t)
	token := signup(t, server, "alice@x.com", "donor")

	resp := do(t, http.MethodGet, server.URL+"/api/donations", token, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

// TestCreateMissingHospital verifies a request missing a required field is
// rejected and nothing is persisted.
func TestCreateMissingHospital(t *testing.T) {
	server, _, donations := newPortalServer(t)
	token := signup(t, server, "alice@x.com", "donor")

	resp := do(t, http.MethodPost, server.URL+"/api/donations", token, map[string]string{
		"type":          "blood",
		"preferredDate": "2025-01-01",
		"time":          "10:00",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	if len(donations.donations) != 0 {
		t.Errorf("expected no record persisted, found %d", len(donations.donations))
	}
}

// TestCancelFlow verifies a donor can cancel their own pending request while
// someone else's request reads as not-found.
func TestCancelFlow(t *testing.T) {
	server, _, _ := newPortalServer(t)
	aliceToken := signup(t, server, "alice@x.com", "donor")
	bobToken := signup(t, server, "bob@x.com", "donor")

	created := createDonation(t, server, aliceToken)

	// Bob probing Alice's request gets 404, not 403.
	resp := do(t, http.MethodDelete, server.URL+"/api/donations/"+created.ID, bobToken, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("non-owner cancel: expected 404, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = do(t, http.MethodDelete, server.URL+"/api/donations/"+created.ID, aliceToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("owner cancel: expected 200, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	if own := listOwn(t, server, aliceToken); len(own) != 0 {
		t.Errorf("expected empty list after cancel, got %d", len(own))
	}
}

// TestExpiredTokenRejected verifies a signed but expired token is refused on
// every bearer route.
func TestExpiredTokenRejected(t *testing.T) {
	server, _, _ := newPortalServer(t)
	signup(t, server, "alice@x.com", "donor")

	// Sign with the same secret and issuer but an already-passed expiry.
	staleTokens := auth.NewTokenService("test-secret", "lifestream", -time.Minute)
	stale, err := staleTokens.Issue("alice-id", auth.RoleDonor)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	resp := do(t, http.MethodGet, server.URL+"/api/user/donations", stale, nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}

	var body struct {
		Message string `json:"message"`
	}
	decode(t, resp, &body)
	if body.Message != "Token expired" {
		t.Errorf("expected message %q, got %q", "Token expired", body.Message)
	}
}
