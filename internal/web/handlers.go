package web

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/adaptifocus/adaptifocus/internal/focus"
	"github.com/adaptifocus/adaptifocus/internal/store"
)

// userHeader carries the caller identity; single-machine installs leave
// it unset and share the "local" user.
const (
	userHeader  = "X-User"
	defaultUser = "local"
)

// Handlers contains the JSON API route handlers.
type Handlers struct {
	svc     *focus.Service
	version string
}

func requestUser(r *http.Request) string {
	if u := r.Header.Get(userHeader); u != "" {
		return u
	}
	return defaultUser
}

// HandleClassify handles POST /classify — stateless page classification.
func (h *Handlers) HandleClassify(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL    string `json:"url"`
		Domain string `json:"domain"`
		Title  string `json:"title"`
		Topic  string `json:"topic"`
	}
	if err := decodeBody(r, classifySchema, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.svc.Classify(focus.ClassifyRequest{
		URL:    req.URL,
		Domain: req.Domain,
		Title:  req.Title,
		Topic:  req.Topic,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"domain":     res.Domain,
		"category":   string(res.Verdict.Label),
		"source":     string(res.Verdict.Source),
		"confidence": res.Verdict.Confidence,
	})
}

// HandleCheck handles POST /interventions/check — the core operation.
func (h *Handlers) HandleCheck(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL          string `json:"url"`
		Domain       string `json:"domain"`
		Title        string `json:"title"`
		DwellSeconds int    `json:"dwell_seconds"`
	}
	if err := decodeBody(r, checkSchema, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.svc.Check(r.Context(), focus.CheckRequest{
		UserID:       requestUser(r),
		URL:          req.URL,
		Domain:       req.Domain,
		Title:        req.Title,
		DwellSeconds: req.DwellSeconds,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// HandleResponse handles POST /interventions/{id}/response — feedback on
// how the user reacted to a fired intervention.
func (h *Handlers) HandleResponse(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req struct {
		Response string `json:"response"`
	}
	if err := decodeBody(r, responseSchema, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.svc.RecordResponse(r.Context(), id, req.Response)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if res == nil {
		writeError(w, http.StatusNotFound, "intervention not found")
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// HandleIngest handles POST /events — batch observation ingest.
func (h *Handlers) HandleIngest(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Events []struct {
			URL             string `json:"url"`
			Domain          string `json:"domain"`
			Title           string `json:"title"`
			DurationSeconds int    `json:"duration_seconds"`
		} `json:"events"`
	}
	if err := decodeBody(r, ingestSchema, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	events := make([]focus.EventInput, 0, len(req.Events))
	for _, e := range req.Events {
		events = append(events, focus.EventInput{
			URL:             e.URL,
			Domain:          e.Domain,
			Title:           e.Title,
			DurationSeconds: e.DurationSeconds,
		})
	}

	accepted, err := h.svc.IngestEvents(r.Context(), requestUser(r), events)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]any{
		"accepted": accepted,
		"received": len(req.Events),
	})
}

// HandleSummary handles GET /events/today/summary.
func (h *Handlers) HandleSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.svc.TodaySummary(r.Context(), requestUser(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

// HandleStartSession handles POST /sessions.
func (h *Handlers) HandleStartSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Topic                  string `json:"topic"`
		PlannedDurationMinutes int    `json:"planned_duration_minutes"`
	}
	if err := decodeBody(r, sessionSchema, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rec, err := h.svc.StartSession(r.Context(), requestUser(r), req.Topic, req.PlannedDurationMinutes)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, sessionJSON(rec))
}

// HandleEndSession handles POST /sessions/{id}/end.
func (h *Handlers) HandleEndSession(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	rec, err := h.svc.EndSession(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if rec == nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	writeJSON(w, http.StatusOK, sessionJSON(rec))
}

// HandleHealth handles GET /healthz.
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": h.version,
	})
}

// sessionJSON shapes a session record for the wire.
func sessionJSON(rec *store.SessionRecord) map[string]any {
	out := map[string]any{
		"session_id":               rec.SessionID,
		"user_id":                  rec.UserID,
		"topic":                    rec.Topic,
		"started_at":               rec.StartedAt,
		"planned_duration_minutes": rec.PlannedDurationMinutes,
		"active":                   rec.Active,
	}
	if rec.EndedAt != nil {
		out["ended_at"] = *rec.EndedAt
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"error": msg})
}

// writeServiceError maps service errors to HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	var inv *focus.ErrInvalidInput
	if errors.As(err, &inv) {
		writeError(w, http.StatusBadRequest, inv.Error())
		return
	}
	var unavail *focus.ErrStateUnavailable
	if errors.As(err, &unavail) {
		writeError(w, http.StatusServiceUnavailable, "persistence unavailable, try again")
		return
	}
	log.Printf("internal error: %v", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}
