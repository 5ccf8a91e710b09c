package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"hvacpro-backend/config"
	"hvacpro-backend/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultTimeout = 30 * time.Second

// Client is the only component that performs network I/O against the remote
// spreadsheet endpoint. It holds no mutable state beyond the http.Client;
// the endpoint URL is fixed at construction.
type Client struct {
	baseURL string
	httpc   *http.Client
	log     *zap.Logger
}

func NewClient(cfg config.Config, logger *zap.Logger) *Client {
	return &Client{
		baseURL: cfg.SheetsURL,
		httpc:   &http.Client{Timeout: defaultTimeout},
		log:     logger,
	}
}

// Connected reports whether an endpoint URL was configured.
func (c *Client) Connected() bool {
	return c.baseURL != ""
}

// envelope is the uniform response wrapper shared with the remote store.
// The shape is a fixed contract, not renegotiable from this side.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// Get issues an HTTP GET with params as the query string and returns the
// envelope's data field.
func (c *Client) Get(ctx context.Context, params map[string]string) (json.RawMessage, error) {
	if !c.Connected() {
		return nil, ErrNotConnected
	}

	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, &TransportError{Op: "GET", Err: err}
	}

	data, _, err := c.do(req, params["action"], params["sheet"])
	return data, err
}

// Post issues an HTTP POST with body JSON-encoded as a text/plain payload
// and returns the envelope's data field, or the whole response body when the
// remote omits data (some mutations answer with a bare envelope).
func (c *Client) Post(ctx context.Context, body any) (json.RawMessage, error) {
	if !c.Connected() {
		return nil, ErrNotConnected
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, &TransportError{Op: "POST encode", Err: err}
	}

	// Labels for logging/metrics only; the payload itself goes out untouched.
	var meta struct {
		Action string `json:"action"`
		Sheet  string `json:"sheet"`
	}
	_ = json.Unmarshal(payload, &meta)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, &TransportError{Op: "POST", Err: err}
	}
	// The remote endpoint's cross-origin policy only accepts text/plain
	// bodies, JSON payload or not.
	req.Header.Set("Content-Type", "text/plain")

	data, whole, err := c.do(req, meta.Action, meta.Sheet)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 || string(data) == "null" {
		return whole, nil
	}
	return data, nil
}

func (c *Client) do(req *http.Request, action, sheet string) (json.RawMessage, []byte, error) {
	reqID := uuid.NewString()
	start := time.Now()

	resp, err := c.httpc.Do(req)
	if err != nil {
		metrics.ObserveSheetsCall(action, sheet, "transport_error", time.Since(start))
		c.log.Warn("sheets call failed",
			zap.String("requestId", reqID),
			zap.String("action", action),
			zap.String("sheet", sheet),
			zap.Error(err),
		)
		return nil, nil, &TransportError{Op: req.Method + " " + action, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.ObserveSheetsCall(action, sheet, "transport_error", time.Since(start))
		return nil, nil, &TransportError{Op: req.Method + " " + action, Err: err}
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		metrics.ObserveSheetsCall(action, sheet, "bad_body", time.Since(start))
		return nil, nil, &TransportError{Op: req.Method + " " + action, Err: err}
	}

	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = "request failed"
		}
		metrics.ObserveSheetsCall(action, sheet, "rejected", time.Since(start))
		c.log.Info("sheets call rejected",
			zap.String("requestId", reqID),
			zap.String("action", action),
			zap.String("sheet", sheet),
			zap.String("error", msg),
		)
		return nil, nil, &RequestError{Message: msg}
	}

	metrics.ObserveSheetsCall(action, sheet, "ok", time.Since(start))
	c.log.Debug("sheets call ok",
		zap.String("requestId", reqID),
		zap.String("action", action),
		zap.String("sheet", sheet),
		zap.Duration("time", time.Since(start)),
	)
	return env.Data, body, nil
}
