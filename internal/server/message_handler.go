// Package server exposes the translation pipeline over HTTP for the
// browser-extension UI.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ymatsuda/wordglass/internal/config"
	"github.com/ymatsuda/wordglass/internal/history"
	"github.com/ymatsuda/wordglass/internal/translate"
)

// MessageTypeTranslateAndDefine is the only inbound message type.
const MessageTypeTranslateAndDefine = "TRANSLATE_AND_DEFINE"

// Message is the request envelope the extension UI sends.
type Message struct {
	Type   string `json:"type"`
	Text   string `json:"text"`
	IsWord bool   `json:"isWord"`
}

// Orchestrator sequences provider calls and merges results.
type Orchestrator interface {
	TranslateAndDefine(ctx context.Context, settings config.Settings, request translate.TranslateRequest) translate.Result
}

// SettingsResolver takes a fresh settings snapshot for each request, so
// preference changes apply without a restart.
type SettingsResolver func() config.Settings

type MessageHandler struct {
	orchestrator    Orchestrator
	resolveSettings SettingsResolver
	lookups         history.LookupRepository
}

type Option func(*MessageHandler)

// WithLookupRepository records successful lookups. Write failures are logged
// and never surface to the UI.
func WithLookupRepository(lookups history.LookupRepository) Option {
	return func(h *MessageHandler) {
		h.lookups = lookups
	}
}

func NewMessageHandler(orchestrator Orchestrator, resolveSettings SettingsResolver, options ...Option) *MessageHandler {
	handler := &MessageHandler{
		orchestrator:    orchestrator,
		resolveSettings: resolveSettings,
	}
	for _, option := range options {
		option(handler)
	}
	return handler
}

// Register mounts the handler's routes on the mux.
func (h *MessageHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/messages", h.handleMessage)
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *MessageHandler) handleMessage(w http.ResponseWriter, r *http.Request) {
	var message Message
	if err := json.NewDecoder(r.Body).Decode(&message); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid request body: %v", err)})
		return
	}
	if message.Type != MessageTypeTranslateAndDefine {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("unsupported message type: %q", message.Type)})
		return
	}

	settings := h.resolveSettings()
	result := h.orchestrator.TranslateAndDefine(r.Context(), settings, translate.TranslateRequest{
		Text:   message.Text,
		IsWord: message.IsWord,
	})

	if result.Success && h.lookups != nil {
		h.record(r.Context(), message, result)
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *MessageHandler) record(ctx context.Context, message Message, result translate.Result) {
	lookup := &history.Lookup{
		Text:        message.Text,
		IsWord:      message.IsWord,
		Translation: result.Translation,
		Provider:    result.ProviderName,
	}
	if result.Dict != nil {
		lookup.IPA = result.Dict.IPA
		lookup.AudioURL = result.Dict.AudioURL
	}
	if err := h.lookups.Insert(ctx, lookup); err != nil {
		slog.Default().Warn("failed to record lookup", "text", message.Text, "error", err)
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Default().Error("failed to encode response", "error", err)
	}
}

// CORSMiddleware allows the extension UI's origins to call the API.
func CORSMiddleware(allowedOrigins []string, next http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = struct{}{}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if _, ok := allowed[origin]; ok {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.Header().Set("Access-Control-Max-Age", "3600")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
