// Package gateway is the resilient data client for the back-office resource
// collections. Every call first attempts the real HTTP API; any transport
// error, non-2xx status, or unparseable body is absorbed and answered from
// the collection's fixed mock dataset (reads) or a synthetic acknowledgement
// (writes). Callers never see a "backend unreachable" failure; the Result's
// Source field is the only visible difference between a live and a mocked
// answer.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/ndgrowth/backoffice/internal/common"
	"github.com/ndgrowth/backoffice/internal/config"
	"github.com/ndgrowth/backoffice/internal/logging"
)

// Source tells a call site whether its answer came over the wire or from the
// canned fallback. Diagnostic only; both shapes are identical.
type Source string

const (
	SourceLive Source = "live"
	SourceMock Source = "mock"
)

// Result is the uniform answer for every gateway call.
type Result struct {
	Source Source
	Data   json.RawMessage
}

// WriteAck is the acknowledgement shape returned for mocked writes. It
// carries the same fields as a real success response, so callers cannot
// distinguish a mocked write from a live one.
type WriteAck struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
	Message string `json:"message"`
}

// TokenProvider supplies the current session's bearer token. *auth.Store
// satisfies it.
type TokenProvider interface {
	SessionToken() (string, bool)
}

type Gateway struct {
	baseURL     string
	publicToken string
	tokens      TokenProvider
	client      *http.Client
	log         logging.Logger

	// Test seam for generated ack ids.
	newID func() string
}

// New builds a Gateway. The http.Client carries an explicit timeout so the
// fallback path is reliably reached instead of hanging on a dead endpoint.
func New(cfg *config.Config, tokens TokenProvider, log logging.Logger) *Gateway {
	return &Gateway{
		baseURL:     strings.TrimRight(cfg.APIBaseURL, "/"),
		publicToken: cfg.PublicToken,
		tokens:      tokens,
		client:      &http.Client{Timeout: cfg.RequestTimeout},
		log:         log.With("component", "gateway"),
		newID:       uuid.NewString,
	}
}

// List reads a collection, forwarding query to the live API and applying the
// same filter semantics to the mock dataset on fallback.
func (g *Gateway) List(ctx context.Context, collection string, query url.Values) (*Result, error) {
	dataset, err := MockDataset(collection)
	if err != nil {
		return nil, err
	}

	body, err := g.do(ctx, http.MethodGet, collection, "", query, nil)
	if err == nil {
		return &Result{Source: SourceLive, Data: body}, nil
	}
	g.log.Warn(ctx, "list failed, serving mock dataset", "collection", collection, "error", err)

	raw, err := json.Marshal(filterMockDataset(dataset, query))
	if err != nil {
		return nil, fmt.Errorf("marshalling mock dataset: %w", err)
	}
	return &Result{Source: SourceMock, Data: raw}, nil
}

// Get reads a single record. On fallback the record is looked up in the mock
// dataset by id. A missing record yields JSON null, not an error.
func (g *Gateway) Get(ctx context.Context, collection, id string) (*Result, error) {
	dataset, err := MockDataset(collection)
	if err != nil {
		return nil, err
	}

	body, err := g.do(ctx, http.MethodGet, collection, id, nil, nil)
	if err == nil {
		return &Result{Source: SourceLive, Data: body}, nil
	}
	g.log.Warn(ctx, "get failed, serving mock record", "collection", collection, "id", id, "error", err)

	record, err := findMockRecord(dataset, id)
	if err != nil {
		return nil, fmt.Errorf("searching mock dataset: %w", err)
	}
	if record == nil {
		record = json.RawMessage("null")
	}
	return &Result{Source: SourceMock, Data: record}, nil
}

// Create posts a new record. A mocked create acknowledges with a generated
// id without persisting anything.
func (g *Gateway) Create(ctx context.Context, collection string, payload any) (*Result, error) {
	if _, err := MockDataset(collection); err != nil {
		return nil, err
	}

	body, err := g.do(ctx, http.MethodPost, collection, "", nil, payload)
	if err == nil {
		return &Result{Source: SourceLive, Data: body}, nil
	}
	g.log.Warn(ctx, "create failed, acknowledging locally", "collection", collection, "error", err)

	return g.mockAck(WriteAck{Success: true, ID: g.newID(), Message: "created"})
}

// Update puts changes to an existing record.
func (g *Gateway) Update(ctx context.Context, collection, id string, payload any) (*Result, error) {
	if _, err := MockDataset(collection); err != nil {
		return nil, err
	}

	body, err := g.do(ctx, http.MethodPut, collection, id, nil, payload)
	if err == nil {
		return &Result{Source: SourceLive, Data: body}, nil
	}
	g.log.Warn(ctx, "update failed, acknowledging locally", "collection", collection, "id", id, "error", err)

	return g.mockAck(WriteAck{Success: true, ID: id, Message: "updated"})
}

// Delete removes a record.
func (g *Gateway) Delete(ctx context.Context, collection, id string) (*Result, error) {
	if _, err := MockDataset(collection); err != nil {
		return nil, err
	}

	body, err := g.do(ctx, http.MethodDelete, collection, id, nil, nil)
	if err == nil {
		return &Result{Source: SourceLive, Data: body}, nil
	}
	g.log.Warn(ctx, "delete failed, acknowledging locally", "collection", collection, "id", id, "error", err)

	return g.mockAck(WriteAck{Success: true, ID: id, Message: "deleted"})
}

func (g *Gateway) mockAck(ack WriteAck) (*Result, error) {
	raw, err := json.Marshal(ack)
	if err != nil {
		return nil, err
	}
	return &Result{Source: SourceMock, Data: raw}, nil
}

// bearerToken prefers the current session's token and falls back to the
// fixed public token.
func (g *Gateway) bearerToken() string {
	if g.tokens != nil {
		if token, ok := g.tokens.SessionToken(); ok {
			return token
		}
	}
	return g.publicToken
}

// do performs one HTTP round trip and returns the body only when the status
// is 2xx and the body is valid JSON. Every other outcome is an error for the
// caller to absorb.
func (g *Gateway) do(ctx context.Context, method, collection, id string, query url.Values, payload any) (json.RawMessage, error) {
	endpoint := g.baseURL + "/" + collection
	if id != "" {
		endpoint += "/" + url.PathEscape(id)
	}
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshalling payload: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set(common.AuthorizationHeaderName, "Bearer "+g.bearerToken())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("response body is not valid JSON")
	}

	return body, nil
}
