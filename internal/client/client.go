// Package client is the thin HTTP consumer of the portal API for
// presentation layers. It mirrors the server's wire contract: list feeds,
// resolve the viewer identity once per session, and submit stage actions
// whose endpoint paths are built from the same stage enum the server
// registers routes from.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"hrportal/internal/approval"
	"hrportal/internal/feed"
	"hrportal/internal/model"
)

// Client talks to one portal instance on behalf of one authenticated user.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New returns a client for the given base URL using the given bearer token.
// httpClient may be nil; a 15s-timeout default is used then.
func New(baseURL, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{baseURL: baseURL, token: token, http: httpClient}
}

// NetworkError wraps a transport failure. Retryable by the user, never
// retried automatically.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *NetworkError) Unwrap() error { return e.Err }

// FeedItem is the wire shape of one feed entry. Record stays raw until the
// caller asks for the concrete variant.
type FeedItem struct {
	Kind      model.Kind           `json:"kind"`
	ID        uint                 `json:"id"`
	Name      string               `json:"name"`
	Division  string               `json:"division"`
	Status    model.ApprovalStatus `json:"approval_status"`
	CreatedAt time.Time            `json:"created_at"`
	Actions   []approval.Action    `json:"actions"`
	Record    json.RawMessage      `json:"record"`
}

// DecodeRecord unmarshals the raw record into its kind's concrete type.
func (i FeedItem) DecodeRecord() (model.Request, error) {
	rec, err := decodeRecord(i.Kind, i.Record)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s record %d: %w", i.Kind, i.ID, err)
	}
	return rec, nil
}

// Me fetches the authoritative viewer identity. Call once at session start
// and pass the value into every subsequent decision.
func (c *Client) Me(ctx context.Context) (model.ViewerIdentity, error) {
	var viewer model.ViewerIdentity
	if err := c.get(ctx, "/auth/me", nil, &viewer); err != nil {
		return model.ViewerIdentity{}, err
	}
	return viewer, nil
}

// ReviewerFeed fetches the merged review feed with optional filters.
func (c *Client) ReviewerFeed(ctx context.Context, filters feed.Filters) ([]FeedItem, error) {
	return c.feedRequest(ctx, "/requests/feed", filters)
}

// MyFeed fetches the viewer's own submissions across all kinds.
func (c *Client) MyFeed(ctx context.Context, filters feed.Filters) ([]FeedItem, error) {
	return c.feedRequest(ctx, "/requests/my", filters)
}

func (c *Client) feedRequest(ctx context.Context, path string, filters feed.Filters) ([]FeedItem, error) {
	query := url.Values{}
	if filters.Search != "" {
		query.Set("search", filters.Search)
	}
	if filters.Status != "" {
		query.Set("status", string(filters.Status))
	}
	if filters.Kind != "" {
		query.Set("kind", filters.Kind.Collection())
	}

	var items []FeedItem
	if err := c.get(ctx, path, query, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SubmitAction applies one stage decision to one record and returns the
// updated record. 409 responses map to StaleStateError, 403 responses to
// AuthorizationError; both mean "reload the feed", not "retry".
func (c *Client) SubmitAction(ctx context.Context, kind model.Kind, id uint, stage approval.Stage, action approval.Action) (model.Request, error) {
	wireAction := "approve"
	if action == approval.ActionReject {
		wireAction = "deny"
	}
	path := fmt.Sprintf("/%s/%d/%s-%s", kind.Collection(), id, stage, wireAction)

	raw, env, err := c.do(ctx, http.MethodPut, path, nil, nil)
	if err != nil {
		return nil, err
	}
	if env.StatusCode >= 400 {
		return nil, stageError(stage, env)
	}

	rec, err := decodeRecord(kind, raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s record %d: %w", kind, id, err)
	}
	return rec, nil
}

// ActionsFor computes the controls to render for a record, using the same
// state machine the server enforces with. The server stays the final
// authority: a 403 on submission is handled like a local denial.
func ActionsFor(rec model.Request, viewer model.ViewerIdentity) []approval.Action {
	return approval.AllowedActions(rec, viewer)
}

// --- wire plumbing ---

// envelope is the server's response wrapper (pkg/response.Response) with the
// payload kept raw.
type envelope struct {
	Status     string          `json:"status"`
	StatusCode int             `json:"status_code"`
	Data       json.RawMessage `json:"data"`
	Error      string          `json:"error"`
	Reason     string          `json:"reason"`
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	raw, env, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	if env.StatusCode >= 400 {
		return fmt.Errorf("%s: %s", path, env.Error)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}) (json.RawMessage, *envelope, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, &NetworkError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, &NetworkError{Op: method + " " + path, Err: err}
	}

	// Acknowledgement-only responses (e.g. 204) carry no envelope.
	var env envelope
	if len(bytes.TrimSpace(payload)) > 0 {
		if err := json.Unmarshal(payload, &env); err != nil {
			return nil, nil, fmt.Errorf("failed to decode %s response: %w", path, err)
		}
	}
	if env.StatusCode == 0 {
		env.StatusCode = resp.StatusCode
	}
	return env.Data, &env, nil
}

// stageError maps an error envelope from a stage action onto the approval
// error taxonomy.
func stageError(stage approval.Stage, env *envelope) error {
	switch env.StatusCode {
	case http.StatusConflict:
		return &approval.StaleStateError{Attempted: stage}
	case http.StatusForbidden:
		reason := env.Reason
		if reason == "" {
			reason = approval.ReasonNotPermitted
		}
		return &approval.AuthorizationError{Stage: stage, Reason: reason}
	}
	return fmt.Errorf("stage action failed: %s", env.Error)
}

func decodeRecord(kind model.Kind, raw json.RawMessage) (model.Request, error) {
	switch kind {
	case model.KindPersonalLeave:
		var rec model.PersonalLeaveRequest
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, err
		}
		return &rec, nil
	case model.KindAnnualLeave:
		var rec model.AnnualLeaveRequest
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, err
		}
		return &rec, nil
	case model.KindInTownTravel:
		var rec model.InTownTravelRequest
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, err
		}
		return &rec, nil
	case model.KindOutOfTownTravel:
		var rec model.OutOfTownTravelRequest
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, err
		}
		return &rec, nil
	}
	return nil, fmt.Errorf("unknown request kind %q", kind)
}
