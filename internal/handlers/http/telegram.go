package http

import (
	"crypto/subtle"
	"encoding/json"
	"mime"
	"net/http"

	"github.com/gabapcia/solwatch/internal/chatbot"
	"github.com/gabapcia/solwatch/internal/pkg/logger"
)

const telegramSecretHeader = "X-Telegram-Bot-Api-Secret-Token"

type telegramUpdate struct {
	UpdateID int64            `json:"update_id"`
	Message  *telegramMessage `json:"message"`
}

type telegramMessage struct {
	MessageID int64 `json:"message_id"`
	Chat      struct {
		ID int64 `json:"id"`
	} `json:"chat"`
	Text string `json:"text"`
}

func (h *handler) telegramAuthorized(r *http.Request) bool {
	if h.telegramSecret == "" {
		return true
	}

	token := r.Header.Get(telegramSecretHeader)
	return subtle.ConstantTimeCompare([]byte(token), []byte(h.telegramSecret)) == 1
}

func (h *handler) telegramWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !h.telegramAuthorized(r) {
		logger.Warn(ctx, "rejected telegram update with a bad secret token")
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type")); err != nil || mediaType != "application/json" {
		writeError(w, http.StatusUnsupportedMediaType, "only application/json is accepted")
		return
	}

	var update telegramUpdate
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&update); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	switch {
	case update.Message == nil:
		writeError(w, http.StatusBadRequest, "missing message")
		return
	case update.Message.Chat.ID == 0:
		writeError(w, http.StatusBadRequest, "missing chat id")
		return
	}

	ctx = logger.Derive(ctx, "chat.id", update.Message.Chat.ID, "update.id", update.UpdateID)
	err := h.bot.HandleMessage(ctx, chatbot.IncomingMessage{
		ChatID:    update.Message.Chat.ID,
		MessageID: update.Message.MessageID,
		Text:      update.Message.Text,
	})
	if err != nil {
		logger.Error(ctx, "chat update failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to handle update")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "ok"})
}
