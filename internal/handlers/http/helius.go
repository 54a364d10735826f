package http

import (
	"bytes"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gabapcia/solwatch/internal/pkg/logger"
	"github.com/gabapcia/solwatch/internal/pkg/metrics"
	"github.com/gabapcia/solwatch/internal/txingest"
)

type ingestResponse struct {
	Success   bool `json:"success"`
	Processed int  `json:"processed"`
	Skipped   int  `json:"skipped"`
	Failed    int  `json:"failed"`
}

type skippedResponse struct {
	Skipped bool   `json:"skipped"`
	Message string `json:"message"`
}

func (h *handler) authorized(r *http.Request) bool {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || h.webhookSecret == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(token), []byte(h.webhookSecret)) == 1
}

// rejectedPayload is an element of a delivery that is valid JSON but does not
// have the payload shape.
type rejectedPayload struct {
	index     int
	signature string
	err       error
}

// decodePayloads accepts either a JSON array of payloads or a single object.
// Array elements are decoded one by one so a malformed element does not
// sink the rest of the delivery. Only a body that is not JSON at all is an
// error.
func decodePayloads(body []byte) ([]txingest.Payload, []rejectedPayload, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, nil, errors.New("empty body")
	}

	if body[0] != '[' {
		var p txingest.Payload
		if err := json.Unmarshal(body, &p); err != nil {
			return nil, nil, err
		}
		return []txingest.Payload{p}, nil, nil
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(body, &elements); err != nil {
		return nil, nil, err
	}

	var (
		payloads = make([]txingest.Payload, 0, len(elements))
		rejected []rejectedPayload
	)
	for i, raw := range elements {
		var p txingest.Payload
		if err := json.Unmarshal(raw, &p); err != nil {
			rejected = append(rejected, rejectedPayload{index: i, signature: rawSignature(raw), err: err})
			continue
		}
		payloads = append(payloads, p)
	}

	return payloads, rejected, nil
}

// rawSignature salvages the signature of an element that failed to decode,
// for logging.
func rawSignature(raw json.RawMessage) string {
	var partial struct {
		Signature any `json:"signature"`
	}
	if err := json.Unmarshal(raw, &partial); err != nil {
		return ""
	}

	sig, _ := partial.Signature.(string)
	return sig
}

func (h *handler) heliusWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !h.authorized(r) {
		logger.Warn(ctx, "unauthorized webhook delivery")
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "unable to read body")
		return
	}

	payloads, rejected, err := decodePayloads(body)
	if err != nil {
		logger.Warn(ctx, "invalid webhook body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	var report txingest.BatchReport
	if len(payloads) > 0 {
		report, err = h.ingest.IngestBatch(ctx, payloads)
		if err != nil {
			logger.Error(ctx, "webhook delivery failed", "payloads", len(payloads), "error", err)
			writeError(w, http.StatusInternalServerError, "failed to process transactions")
			return
		}
	}

	for _, rej := range rejected {
		logger.Warn(ctx, "undecodable webhook payload", "index", rej.index, "signature", rej.signature, "error", rej.err)
		metrics.IngestPayloads.WithLabelValues(string(txingest.OutcomeFailed)).Inc()
		report.AddFailed(rej.signature, rej.err)
	}

	logger.Info(ctx, "webhook delivery handled",
		"processed", report.Processed,
		"skipped", report.Skipped,
		"failed", report.Failed,
		"alerts", report.AlertsSent,
	)

	if report.AllSkipped() {
		writeJSON(w, http.StatusOK, skippedResponse{Skipped: true, Message: skipMessage(report)})
		return
	}

	writeJSON(w, http.StatusOK, ingestResponse{
		Success:   true,
		Processed: report.Processed,
		Skipped:   report.Skipped,
		Failed:    report.Failed,
	})
}

// skipMessage is the shared reason of every skipped payload, or a generic
// summary when they differ.
func skipMessage(report txingest.BatchReport) string {
	reasons := report.SkipReasons()
	if len(reasons) != 1 {
		return "All payloads skipped"
	}

	for reason := range reasons {
		return string(reason)
	}
	return ""
}
