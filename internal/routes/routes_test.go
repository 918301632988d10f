package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/store"
	"github.com/gofiber/fiber/v2"
)

const demoPassword = "password123"

func newTestApp(t *testing.T) (*fiber.App, *store.Store) {
	t.Helper()
	auth, err := store.NewDemoAuthenticator(store.SeedUsers(), demoPassword, 0)
	if err != nil {
		t.Fatal(err)
	}
	st := store.New(store.Options{Authenticator: auth})
	cfg := &config.Config{JWTSecret: "test-secret", JWTAccessExpiry: time.Hour}
	authService := services.NewAuthService(st, cfg)

	app := fiber.New()
	Setup(app, cfg, authService, Handlers{
		Auth:      handlers.NewAuthHandler(authService, st),
		Profile:   handlers.NewProfileHandler(st),
		User:      handlers.NewUserHandler(st),
		Report:    handlers.NewReportHandler(st),
		Inbox:     handlers.NewInboxHandler(st),
		Dashboard: handlers.NewDashboardHandler(st),
		FAQ:       handlers.NewFAQHandler(services.NewFAQService(services.DefaultFAQs)),
		Health:    handlers.NewHealthHandler(nil),
	}, Limits{})
	return app, st
}

func do(t *testing.T, app *fiber.App, method, path, token string, body any) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp.StatusCode, out
}

func decode(t *testing.T, data []byte, dst any) {
	t.Helper()
	if err := json.Unmarshal(data, dst); err != nil {
		t.Fatalf("decode %s: %v", data, err)
	}
}

func login(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	code, body := do(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: email, Password: demoPassword})
	if code != http.StatusOK {
		t.Fatalf("login %s: status %d body %s", email, code, body)
	}
	var resp dto.AuthResponse
	decode(t, body, &resp)
	return resp.AccessToken
}

func TestPublicRoutes(t *testing.T) {
	app, _ := newTestApp(t)

	code, body := do(t, app, http.MethodGet, "/api/health", "", nil)
	if code != http.StatusOK {
		t.Fatalf("health: %d", code)
	}
	var health dto.HealthResponse
	decode(t, body, &health)
	if health.Storage != "ok" {
		t.Errorf("storage status = %q", health.Storage)
	}

	code, body = do(t, app, http.MethodGet, "/api/faqs?q=password", "", nil)
	if code != http.StatusOK {
		t.Fatalf("faqs: %d", code)
	}
	var faqs dto.FAQListResponse
	decode(t, body, &faqs)
	if len(faqs.FAQs) != 1 {
		t.Errorf("expected 1 faq, got %d", len(faqs.FAQs))
	}
}

func TestLoginFailures(t *testing.T) {
	app, st := newTestApp(t)

	code, _ := do(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "admin@helpdesk.com", Password: "nope"})
	if code != http.StatusUnauthorized {
		t.Errorf("wrong password: expected 401, got %d", code)
	}

	code, body := do(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{"email": "not-an-email"})
	if code != http.StatusBadRequest {
		t.Fatalf("invalid body: expected 400, got %d", code)
	}
	var errResp dto.ErrorResponse
	decode(t, body, &errResp)
	if !errResp.Error || errResp.Fields["Email"] == "" || errResp.Fields["Password"] == "" {
		t.Errorf("expected field errors, got %+v", errResp)
	}

	if st.IsAuthenticated() {
		t.Error("failed logins must not open a session")
	}
}

func TestGuards(t *testing.T) {
	app, _ := newTestApp(t)

	if code, _ := do(t, app, http.MethodGet, "/api/reports", "", nil); code != http.StatusUnauthorized {
		t.Errorf("no token: expected 401, got %d", code)
	}
	if code, _ := do(t, app, http.MethodGet, "/api/reports", "garbage", nil); code != http.StatusUnauthorized {
		t.Errorf("bad token: expected 401, got %d", code)
	}

	staff := login(t, app, "staff@helpdesk.com")
	if code, _ := do(t, app, http.MethodGet, "/api/users", staff, nil); code != http.StatusForbidden {
		t.Errorf("staff on /users: expected 403, got %d", code)
	}
	if code, _ := do(t, app, http.MethodPatch, "/api/reports/1", staff, map[string]string{"status": "completed"}); code != http.StatusForbidden {
		t.Errorf("staff patching report: expected 403, got %d", code)
	}

	admin := login(t, app, "admin@helpdesk.com")
	if code, _ := do(t, app, http.MethodPost, "/api/reports", admin, dto.CreateReportRequest{Title: "t", Description: "d"}); code != http.StatusForbidden {
		t.Errorf("admin creating report: expected 403, got %d", code)
	}
}

func TestSessionTokenLifecycle(t *testing.T) {
	app, _ := newTestApp(t)

	staff := login(t, app, "staff@helpdesk.com")
	code, body := do(t, app, http.MethodGet, "/api/auth/me", staff, nil)
	if code != http.StatusOK {
		t.Fatalf("me: %d", code)
	}
	var sess dto.SessionResponse
	decode(t, body, &sess)
	if !sess.IsAuthenticated || sess.User == nil || sess.User.ID != "2" {
		t.Errorf("unexpected session %+v", sess)
	}

	admin := login(t, app, "admin@helpdesk.com")
	if code, _ := do(t, app, http.MethodGet, "/api/auth/me", staff, nil); code != http.StatusUnauthorized {
		t.Errorf("superseded token: expected 401, got %d", code)
	}

	if code, _ := do(t, app, http.MethodPost, "/api/auth/logout", admin, nil); code != http.StatusOK {
		t.Fatalf("logout: %d", code)
	}
	if code, _ := do(t, app, http.MethodGet, "/api/auth/me", admin, nil); code != http.StatusUnauthorized {
		t.Errorf("token after logout: expected 401, got %d", code)
	}
}

func TestUserManagement(t *testing.T) {
	app, st := newTestApp(t)
	admin := login(t, app, "admin@helpdesk.com")

	code, body := do(t, app, http.MethodGet, "/api/users", admin, nil)
	if code != http.StatusOK {
		t.Fatalf("list: %d", code)
	}
	var users []dto.UserResponse
	decode(t, body, &users)
	if len(users) != 1 || users[0].Role != "staff" {
		t.Errorf("admin must see only staff, got %+v", users)
	}

	if code, _ := do(t, app, http.MethodPost, "/api/users", admin, dto.CreateUserRequest{Name: "A2", Email: "a2@helpdesk.com", Role: "admin"}); code != http.StatusForbidden {
		t.Errorf("admin creating admin: expected 403, got %d", code)
	}

	code, body = do(t, app, http.MethodPost, "/api/users", admin, dto.CreateUserRequest{Name: "New Staff", Email: "new@helpdesk.com", Role: "staff"})
	if code != http.StatusCreated {
		t.Fatalf("create: %d %s", code, body)
	}
	var created dto.UserResponse
	decode(t, body, &created)

	code, body = do(t, app, http.MethodPut, "/api/users/"+created.ID, admin, map[string]string{"address": "Jl. Merdeka 1"})
	if code != http.StatusOK {
		t.Fatalf("update: %d %s", code, body)
	}
	if u, _ := st.FindUser(created.ID); u.Address != "Jl. Merdeka 1" {
		t.Errorf("address not stored: %+v", u)
	}

	if code, _ := do(t, app, http.MethodPut, "/api/users/missing", admin, map[string]string{"name": "x"}); code != http.StatusNotFound {
		t.Errorf("update missing: expected 404, got %d", code)
	}
	if code, _ := do(t, app, http.MethodPut, "/api/users/3", admin, map[string]string{"name": "x"}); code != http.StatusForbidden {
		t.Errorf("admin editing master: expected 403, got %d", code)
	}

	if code, _ := do(t, app, http.MethodDelete, "/api/users/"+created.ID, admin, nil); code != http.StatusNoContent {
		t.Errorf("delete: expected 204, got %d", code)
	}
	if code, _ := do(t, app, http.MethodDelete, "/api/users/"+created.ID, admin, nil); code != http.StatusNoContent {
		t.Errorf("delete again: expected 204, got %d", code)
	}
	if _, ok := st.FindUser(created.ID); ok {
		t.Error("user still present")
	}
}

func TestReportWorkflow(t *testing.T) {
	app, _ := newTestApp(t)
	staff := login(t, app, "staff@helpdesk.com")

	code, body := do(t, app, http.MethodPost, "/api/reports", staff, dto.CreateReportRequest{Title: "Printer jam", Description: "Floor 2", AssignedTo: "1"})
	if code != http.StatusCreated {
		t.Fatalf("create: %d %s", code, body)
	}
	var created dto.ReportResponse
	decode(t, body, &created)
	if created.Status != "pending" || created.CreatedBy != "2" || created.AssignedToName != "Admin User" {
		t.Errorf("unexpected report %+v", created)
	}

	code, _ = do(t, app, http.MethodPost, "/api/reports", staff, dto.CreateReportRequest{Title: "x", Description: "y", AssignedTo: "3"})
	if code != http.StatusBadRequest {
		t.Errorf("assigning to master: expected 400, got %d", code)
	}

	code, body = do(t, app, http.MethodGet, "/api/notifications", staff, nil)
	if code != http.StatusOK {
		t.Fatalf("notifications: %d", code)
	}
	var inbox dto.NotificationListResponse
	decode(t, body, &inbox)
	if inbox.UnreadCount != 1 || len(inbox.Notifications) != 1 {
		t.Fatalf("expected one unread notification, got %+v", inbox)
	}
	if code, _ := do(t, app, http.MethodPut, "/api/notifications/"+inbox.Notifications[0].ID+"/read", staff, nil); code != http.StatusOK {
		t.Errorf("mark read: %d", code)
	}
	if code, _ := do(t, app, http.MethodPut, "/api/notifications/missing/read", staff, nil); code != http.StatusNotFound {
		t.Errorf("mark missing: expected 404, got %d", code)
	}

	master := login(t, app, "master@helpdesk.com")
	code, body = do(t, app, http.MethodPatch, "/api/reports/"+created.ID, master, map[string]string{"status": "completed"})
	if code != http.StatusOK {
		t.Fatalf("patch: %d %s", code, body)
	}
	var updated dto.ReportResponse
	decode(t, body, &updated)
	if updated.Status != "completed" || updated.UpdatedAt == nil {
		t.Errorf("unexpected update %+v", updated)
	}

	if code, _ := do(t, app, http.MethodPatch, "/api/reports/missing", master, map[string]string{"status": "completed"}); code != http.StatusNotFound {
		t.Errorf("patch missing: expected 404, got %d", code)
	}
	if code, _ := do(t, app, http.MethodPatch, "/api/reports/1", master, map[string]string{"status": "closed"}); code != http.StatusBadRequest {
		t.Errorf("unknown status: expected 400, got %d", code)
	}
	if code, _ := do(t, app, http.MethodGet, "/api/reports/missing", master, nil); code != http.StatusNotFound {
		t.Errorf("get missing: expected 404, got %d", code)
	}

	code, body = do(t, app, http.MethodGet, "/api/reports?status=completed", master, nil)
	if code != http.StatusOK {
		t.Fatalf("filter: %d", code)
	}
	var completed []dto.ReportResponse
	decode(t, body, &completed)
	if len(completed) != 3 {
		t.Errorf("expected 3 completed reports, got %d", len(completed))
	}
	if code, _ := do(t, app, http.MethodGet, "/api/reports?status=bogus", master, nil); code != http.StatusBadRequest {
		t.Errorf("bogus filter: expected 400, got %d", code)
	}
}

func TestReportsMineFilter(t *testing.T) {
	app, _ := newTestApp(t)
	admin := login(t, app, "admin@helpdesk.com")

	code, body := do(t, app, http.MethodGet, "/api/reports?mine=true", admin, nil)
	if code != http.StatusOK {
		t.Fatalf("list: %d", code)
	}
	var mine []dto.ReportResponse
	decode(t, body, &mine)
	if len(mine) != 0 {
		t.Errorf("admin created no reports, got %d", len(mine))
	}

	code, body = do(t, app, http.MethodGet, "/api/reports", admin, nil)
	if code != http.StatusOK {
		t.Fatalf("list: %d", code)
	}
	var all []dto.ReportResponse
	decode(t, body, &all)
	if len(all) != 5 {
		t.Errorf("expected the 5 seeded reports, got %d", len(all))
	}
}

func TestProfileChatAndDashboard(t *testing.T) {
	app, st := newTestApp(t)
	staff := login(t, app, "staff@helpdesk.com")

	mismatch := map[string]string{"current_password": demoPassword, "new_password": "longenough", "confirm_password": "different"}
	if code, _ := do(t, app, http.MethodPut, "/api/profile", staff, mismatch); code != http.StatusBadRequest {
		t.Errorf("password mismatch: expected 400, got %d", code)
	}

	code, body := do(t, app, http.MethodPut, "/api/profile", staff, map[string]string{"name": "Siti"})
	if code != http.StatusOK {
		t.Fatalf("profile: %d %s", code, body)
	}
	if u, _ := st.FindUser("2"); u.Name != "Siti" {
		t.Errorf("directory not updated: %+v", u)
	}

	code, body = do(t, app, http.MethodPost, "/api/chat", staff, dto.ChatMessageRequest{Message: "hello"})
	if code != http.StatusCreated {
		t.Fatalf("chat: %d %s", code, body)
	}
	code, body = do(t, app, http.MethodGet, "/api/chat", staff, nil)
	if code != http.StatusOK {
		t.Fatalf("chat list: %d", code)
	}
	var msgs []map[string]any
	decode(t, body, &msgs)
	if len(msgs) != 1 || msgs[0]["sender_name"] != "Siti" {
		t.Errorf("unexpected chat %v", msgs)
	}

	code, body = do(t, app, http.MethodGet, "/api/dashboard", staff, nil)
	if code != http.StatusOK {
		t.Fatalf("dashboard: %d", code)
	}
	var stats store.DashboardStats
	decode(t, body, &stats)
	if stats.TotalReports != 5 || stats.CompletionRate != 40 {
		t.Errorf("unexpected stats %+v", stats)
	}
}
