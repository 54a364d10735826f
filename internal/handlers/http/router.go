// Package http exposes the webhook endpoints over HTTP: transaction
// deliveries from Helius, chat updates from Telegram, plus health and
// Prometheus metrics.
package http

import (
	"encoding/json"
	"net/http"

	"github.com/gabapcia/solwatch/internal/chatbot"
	"github.com/gabapcia/solwatch/internal/pkg/logger"
	"github.com/gabapcia/solwatch/internal/pkg/metrics"
	"github.com/gabapcia/solwatch/internal/txingest"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const (
	requestIDHeader = "X-Request-Id"
	maxBodyBytes    = 5 << 20
)

type handler struct {
	ingest         txingest.Service
	bot            chatbot.Service
	webhookSecret  string
	telegramSecret string
}

// RouterOption customizes the router.
type RouterOption func(*handler)

// WithTelegramSecret requires Telegram updates to carry secret in the
// X-Telegram-Bot-Api-Secret-Token header, as registered through setWebhook.
// Without it updates are accepted unauthenticated.
func WithTelegramSecret(secret string) RouterOption {
	return func(h *handler) {
		h.telegramSecret = secret
	}
}

// NewRouter registers every route on a fresh router.
func NewRouter(ingest txingest.Service, bot chatbot.Service, webhookSecret string, opts ...RouterOption) *mux.Router {
	h := &handler{
		ingest:        ingest,
		bot:           bot,
		webhookSecret: webhookSecret,
	}
	for _, opt := range opts {
		opt(h)
	}

	router := mux.NewRouter()
	router.Use(recoverMiddleware, requestIDMiddleware)

	router.HandleFunc("/webhooks/helius", h.heliusWebhook).Methods(http.MethodPost)
	router.HandleFunc("/webhooks/telegram", h.telegramWebhook).Methods(http.MethodPost)

	router.HandleFunc("/healthz", healthz).Methods(http.MethodGet)
	router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	return router
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// requestIDMiddleware tags the request context with a v7 UUID, reusing the
// caller's id when one is sent.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			if v7, err := uuid.NewV7(); err == nil {
				id = v7.String()
			}
		}

		w.Header().Set(requestIDHeader, id)
		ctx := logger.Derive(r.Context(), "request.id", id, "http.path", r.URL.Path)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error(r.Context(), "panic while handling request", "panic", rec)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
