// Package telegram sends messages through the Telegram Bot API.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gabapcia/solwatch/internal/alerting"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	defaultBaseURL = "https://api.telegram.org"

	// replyNotFound is the API description for a reply to a deleted message.
	replyNotFound = "message to be replied not found"
)

// ErrAPI is returned when the Bot API answers with ok=false.
var ErrAPI = errors.New("telegram api error")

type sendMessageRequest struct {
	ChatID                int64  `json:"chat_id"`
	Text                  string `json:"text"`
	ParseMode             string `json:"parse_mode"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
	ReplyToMessageID      *int64 `json:"reply_to_message_id,omitempty"`
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code"`
	Description string `json:"description"`
}

func (r apiResponse) Err() error {
	if r.OK {
		return nil
	}

	err := fmt.Errorf("%w: [%d] %s", ErrAPI, r.ErrorCode, r.Description)
	if strings.Contains(strings.ToLower(r.Description), replyNotFound) {
		return errors.Join(alerting.ErrReplyTargetNotFound, err)
	}

	return err
}

type client struct {
	httpClient *retryablehttp.Client
	baseURL    string
	token      string
}

var _ alerting.Messenger = (*client)(nil)

// NewClient creates a Bot API client. baseURL may be empty to use the public API.
func NewClient(httpClient *retryablehttp.Client, baseURL, token string) *client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
	}
}

func (c *client) endpoint(method string) string {
	return fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)
}

// SendMessage posts msg as HTML with link previews disabled.
func (c *client) SendMessage(ctx context.Context, msg alerting.Message) error {
	body, err := json.Marshal(sendMessageRequest{
		ChatID:                msg.ChatID,
		Text:                  msg.Text,
		ParseMode:             "HTML",
		DisableWebPagePreview: true,
		ReplyToMessageID:      msg.ReplyToID,
	})
	if err != nil {
		return err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("sendMessage"), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		// the token is part of the URL; keep it out of logs
		return errors.New(strings.ReplaceAll(err.Error(), c.token, "<redacted>"))
	}
	defer res.Body.Close()

	var data apiResponse
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return fmt.Errorf("error decoding telegram response (status %d): %w", res.StatusCode, err)
	}

	return data.Err()
}
