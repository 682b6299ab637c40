package transport

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/pi-builder/sdk-go/internal/config"
	"github.com/pi-builder/sdk-go/internal/models"
)

// Engine is the single execution path every API call goes through. It owns
// the HTTP client, header assembly, envelope unwrapping, and the retry
// loop. One Engine serves a client instance for its whole life and is safe
// for concurrent use.
type Engine struct {
	client  *resty.Client
	retries int
	log     *logrus.Entry
}

// New builds an Engine from a session configuration.
func New(cfg *config.Config) *Engine {
	client := resty.New().
		SetBaseURL(cfg.APIURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")

	if len(cfg.APIKey) > 0 {
		client.SetAuthToken(cfg.APIKey)
	}

	return &Engine{
		client:  client,
		retries: cfg.Retries,
		log:     cfg.NewLogger().WithField("component", "pibuilder.transport"),
	}
}

// Execute issues one API call and returns the data payload of its
// successful envelope. The call is attempted up to the configured retry
// budget with exponentially growing pauses in between; once the budget is
// spent the failure from the final attempt is returned.
//
// The body is serialized only when non-empty. A body that cannot be
// serialized fails immediately without consuming any of the budget, since
// no attempt could ever be issued for it.
func (e *Engine) Execute(method, path string, body map[string]any) (json.RawMessage, error) {
	var payload []byte
	if len(body) > 0 {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		payload = encoded
	}

	log := e.log.WithFields(logrus.Fields{
		"request_id": uuid.New().String(),
		"method":     method,
		"path":       path,
	})

	var lastErr *Error
	attempts := 0

	for attempt := 0; attempt < e.retries; attempt++ {
		attempts++
		log.WithField("attempt", attempt+1).Debug("Issuing API request")

		data, reqErr := e.attempt(method, path, payload)
		if reqErr == nil {
			return data, nil
		}
		lastErr = reqErr

		if !reqErr.Retryable() {
			break
		}

		if attempt < e.retries-1 {
			delay := backoffDelay(attempt)
			log.WithError(reqErr).WithFields(logrus.Fields{
				"attempt": attempt + 1,
				"delay":   delay.String(),
			}).Warn("API request failed, retrying")
			time.Sleep(delay)
		}
	}

	if lastErr == nil {
		lastErr = &Error{Kind: KindLogical, Message: fallbackMessage}
	}
	lastErr.Attempts = attempts

	log.WithError(lastErr).WithField("attempts", attempts).Debug("Giving up on API request")
	return nil, lastErr
}

// attempt performs a single round-trip and classifies its outcome.
func (e *Engine) attempt(method, path string, payload []byte) (json.RawMessage, *Error) {
	req := e.client.R()
	if payload != nil {
		req.SetBody(payload)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Message: err.Error(), Err: err}
	}

	// Error statuses are not special-cased: a well-formed envelope names the
	// failure and anything else degrades to an unparseable-body error.
	env, err := models.DecodeEnvelope(resp.Body())
	if err != nil {
		return nil, &Error{
			Kind:       KindLogical,
			Message:    fmt.Sprintf("unparseable response body (%s)", resp.Status()),
			StatusCode: resp.StatusCode(),
			Err:        err,
		}
	}

	if !env.Success {
		message := env.Error
		if len(message) == 0 {
			message = fallbackMessage
		}
		return nil, &Error{Kind: KindLogical, Message: message, StatusCode: resp.StatusCode()}
	}

	return env.Data, nil
}
