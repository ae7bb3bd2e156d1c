package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adaptifocus/adaptifocus/internal/focus"
	"github.com/adaptifocus/adaptifocus/internal/store"
)

func setupTest(t *testing.T) http.Handler {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	st, err := store.Open(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	svc := focus.New(focus.DefaultConfig(),
		st.EventRepo(), st.InterventionRepo(), st.SessionRepo(), st.SnapshotRepo())
	t.Cleanup(svc.Close)

	return NewServer(svc, "test", "127.0.0.1", 0).Handler
}

func doJSON(t *testing.T, h http.Handler, method, path, body string, header map[string]string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out map[string]any
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
			t.Fatalf("decode %s %s response: %v\nbody: %s", method, path, err, rec.Body.String())
		}
	}
	return rec, out
}

func TestHealthz(t *testing.T) {
	h := setupTest(t)
	rec, body := doJSON(t, h, "GET", "/healthz", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body["status"] != "ok" || body["version"] != "test" {
		t.Errorf("body = %v", body)
	}
}

func TestClassify(t *testing.T) {
	h := setupTest(t)

	rec, body := doJSON(t, h, "POST", "/classify",
		`{"domain":"www.netflix.com","title":"trending tonight"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %v", rec.Code, body)
	}
	if body["category"] != "distraction" {
		t.Errorf("category = %v, want distraction", body["category"])
	}
	if body["domain"] != "netflix.com" {
		t.Errorf("domain = %v, want normalized netflix.com", body["domain"])
	}
}

func TestClassifyTitleOverride(t *testing.T) {
	h := setupTest(t)

	rec, body := doJSON(t, h, "POST", "/classify",
		`{"domain":"youtube.com","title":"MIT 6.006 Lecture 3"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body["category"] != "study" {
		t.Errorf("category = %v, want study", body["category"])
	}
}

func TestClassifyRejectsUnknownFields(t *testing.T) {
	h := setupTest(t)

	rec, _ := doJSON(t, h, "POST", "/classify",
		`{"domain":"reddit.com","bogus":true}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestClassifyRequiresDomainOrURL(t *testing.T) {
	h := setupTest(t)

	rec, _ := doJSON(t, h, "POST", "/classify", `{"title":"something"}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestCheckAndResponseFlow(t *testing.T) {
	h := setupTest(t)

	rec, body := doJSON(t, h, "POST", "/interventions/check",
		`{"domain":"netflix.com","title":"trending tonight","dwell_seconds":700}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %v", rec.Code, body)
	}
	if body["should_intervene"] != true {
		t.Fatalf("expected intervention, got %v", body)
	}
	id, _ := body["intervention_id"].(string)
	if id == "" {
		t.Fatal("expected intervention_id")
	}
	if body["level"] != "nudge" {
		t.Errorf("level = %v, want nudge", body["level"])
	}

	rec, body = doJSON(t, h, "POST", "/interventions/"+id+"/response",
		`{"response":"complied"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("response status = %d, want 200\nbody: %v", rec.Code, body)
	}
	if body["effective"] != true {
		t.Errorf("effective = %v, want true", body["effective"])
	}
}

func TestCheckStudyPage(t *testing.T) {
	h := setupTest(t)

	rec, body := doJSON(t, h, "POST", "/interventions/check",
		`{"domain":"github.com","title":"review pull request","dwell_seconds":900}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body["should_intervene"] != false {
		t.Errorf("study page should not intervene: %v", body)
	}
}

func TestResponseUnknownIntervention(t *testing.T) {
	h := setupTest(t)

	rec, _ := doJSON(t, h, "POST", "/interventions/no-such-id/response",
		`{"response":"complied"}`, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestResponseRejectsBadValue(t *testing.T) {
	h := setupTest(t)

	rec, _ := doJSON(t, h, "POST", "/interventions/iv-1/response",
		`{"response":"shrugged"}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestIngestEvents(t *testing.T) {
	h := setupTest(t)

	rec, body := doJSON(t, h, "POST", "/events",
		`{"events":[
			{"domain":"github.com","title":"docs","duration_seconds":120},
			{"domain":"reddit.com","duration_seconds":60}
		]}`, nil)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202\nbody: %v", rec.Code, body)
	}
	if body["accepted"] != float64(2) || body["received"] != float64(2) {
		t.Errorf("body = %v", body)
	}
}

func TestIngestRequiresEvents(t *testing.T) {
	h := setupTest(t)

	rec, _ := doJSON(t, h, "POST", "/events", `{}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestSummary(t *testing.T) {
	h := setupTest(t)

	rec, body := doJSON(t, h, "GET", "/events/today/summary", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body["user_id"] != "local" {
		t.Errorf("user_id = %v, want local", body["user_id"])
	}
}

func TestSessionLifecycle(t *testing.T) {
	h := setupTest(t)

	rec, body := doJSON(t, h, "POST", "/sessions",
		`{"topic":"linear algebra","planned_duration_minutes":60}`, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201\nbody: %v", rec.Code, body)
	}
	id, _ := body["session_id"].(string)
	if id == "" {
		t.Fatal("expected session_id")
	}
	if body["active"] != true {
		t.Errorf("active = %v, want true", body["active"])
	}

	rec, body = doJSON(t, h, "POST", "/sessions/"+id+"/end", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("end status = %d, want 200\nbody: %v", rec.Code, body)
	}
	if body["active"] != false {
		t.Errorf("active = %v, want false", body["active"])
	}
}

func TestEndSessionUnknown(t *testing.T) {
	h := setupTest(t)

	rec, _ := doJSON(t, h, "POST", "/sessions/no-such-session/end", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestUsersAreIsolated(t *testing.T) {
	h := setupTest(t)

	// Alice accrues a cooldown.
	rec, body := doJSON(t, h, "POST", "/interventions/check",
		`{"domain":"netflix.com","dwell_seconds":700}`, map[string]string{"X-User": "alice"})
	if rec.Code != http.StatusOK || body["should_intervene"] != true {
		t.Fatalf("alice check: status=%d body=%v", rec.Code, body)
	}

	// Bob's first identical check fires independently.
	rec, body = doJSON(t, h, "POST", "/interventions/check",
		`{"domain":"netflix.com","dwell_seconds":700}`, map[string]string{"X-User": "bob"})
	if rec.Code != http.StatusOK || body["should_intervene"] != true {
		t.Fatalf("bob check: status=%d body=%v", rec.Code, body)
	}

	// Alice's second check is inside her cooldown.
	rec, body = doJSON(t, h, "POST", "/interventions/check",
		`{"domain":"netflix.com","dwell_seconds":700}`, map[string]string{"X-User": "alice"})
	if rec.Code != http.StatusOK || body["should_intervene"] != false {
		t.Fatalf("alice recheck: status=%d body=%v", rec.Code, body)
	}
}

func TestSecurityHeaders(t *testing.T) {
	h := setupTest(t)
	rec, _ := doJSON(t, h, "GET", "/healthz", "", nil)
	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q", got)
	}
}
