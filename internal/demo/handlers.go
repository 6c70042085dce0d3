package demo

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/csrfkit/pkg/csrf"
	"github.com/dmitrymomot/csrfkit/pkg/logger"
)

type handlers struct {
	protector *csrf.Protector
	log       *slog.Logger
}

func (h *handlers) form(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := formPage(h.protector.HiddenField(), r.URL.Query().Get("signed")).Render(r.Context(), w); err != nil {
		h.log.ErrorContext(r.Context(), "render form", logger.Error(err))
	}
}

func (h *handlers) submit(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.PostFormValue("name"))
	if name == "" {
		http.Error(w, "name is required", http.StatusUnprocessableEntity)
		return
	}
	h.log.InfoContext(r.Context(), "guestbook signed", slog.String("name", name))
	http.Redirect(w, r, "/?signed="+url.QueryEscape(name), http.StatusSeeOther)
}

type noteRequest struct {
	Text string `json:"text"`
}

type noteResponse struct {
	Text      string `json:"text"`
	NextToken string `json:"next_token"`
}

// createNote accepts JSON submitted by scripts that echo the token header.
func (h *handlers) createNote(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "text is required"})
		return
	}
	writeJSON(w, http.StatusCreated, noteResponse{
		Text:      req.Text,
		NextToken: csrf.TokenFromContext(r.Context()),
	})
}

type counterSignals struct {
	Count int `json:"count"`
}

// increment is a Datastar action: the token arrives with the signals and a
// fresh one is patched back alongside the new count.
func (h *handlers) increment(w http.ResponseWriter, r *http.Request) {
	var signals counterSignals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sse := datastar.NewSSE(w, r)
	data, err := json.Marshal(map[string]int{"count": signals.Count + 1})
	if err != nil {
		h.log.ErrorContext(r.Context(), "marshal signals", logger.Error(err))
		return
	}
	if err := sse.PatchSignals(data); err != nil {
		h.log.ErrorContext(r.Context(), "patch count", logger.Error(err))
		return
	}
	if err := h.protector.PatchTokenSignal(r.Context(), sse); err != nil {
		h.log.ErrorContext(r.Context(), "patch token", logger.Error(err))
	}
}

func ping(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
