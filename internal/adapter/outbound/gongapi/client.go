// Package gongapi is the outbound HTTP client for the Gong REST API (v2).
// It translates validated request contracts into the exact wire shapes the
// API expects and parses responses through the structural contracts in
// types.go. No retries, no caching; a non-success status is surfaced as a
// remote error carrying the raw body.
package gongapi

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"gong-mcp/internal/domain"
	"gong-mcp/internal/request"
)

// Client talks to one Gong deployment with one fixed credential pair. The
// authorization header value is computed once at construction; credentials
// are not rotated within a process lifetime.
type Client struct {
	http       *http.Client
	baseURL    string
	authHeader string
	logger     *slog.Logger
}

// New creates a Client. The access key pair forms a Basic authorization
// header attached to every request.
func New(httpClient *http.Client, baseURL, accessKey, accessKeySecret string, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	creds := base64.StdEncoding.EncodeToString([]byte(accessKey + ":" + accessKeySecret))
	return &Client{
		http:       httpClient,
		baseURL:    baseURL,
		authHeader: "Basic " + creds,
		logger:     logger.With("component", "gong_client"),
	}
}

// do executes one HTTP exchange. body may be nil for GET requests; out may be
// nil when the response body is irrelevant.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", c.authHeader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("Calling Gong API.", slog.String("method", method), slog.String("path", path))

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to Gong API failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read Gong API response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("Gong API returned an error status.",
			slog.String("path", path),
			slog.Int("status", resp.StatusCode))
		return domain.NewRemoteError(resp.StatusCode, resp.Status, string(raw))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return domain.NewStructuralError(fmt.Sprintf("%s %s: %v", method, path, err))
	}
	return nil
}

// ListCalls lists minimal call metadata via GET /calls with the filter
// flattened into query parameters.
func (c *Client) ListCalls(ctx context.Context, req request.ListCalls) (*domain.CallPage, error) {
	q := url.Values{}
	if req.FromDateTime != "" {
		q.Set("fromDateTime", req.FromDateTime)
	}
	if req.ToDateTime != "" {
		q.Set("toDateTime", req.ToDateTime)
	}
	if req.WorkspaceID != "" {
		q.Set("workspaceId", req.WorkspaceID)
	}
	if req.Cursor != "" {
		q.Set("cursor", req.Cursor)
	}

	var env callsEnvelope
	if err := c.do(ctx, http.MethodGet, "/calls", q, nil, &env); err != nil {
		return nil, err
	}
	if err := checkCallIDs(env.Calls); err != nil {
		return nil, err
	}
	return &domain.CallPage{Calls: env.Calls, Records: env.Records}, nil
}

// SearchCalls searches calls via POST /calls/extensive without a content
// selector, so the API returns its default metadata-only shape.
func (c *Client) SearchCalls(ctx context.Context, req request.SearchCalls) (*domain.ExtensiveCallPage, error) {
	body := extensiveBody{
		Filter: callFilter{
			FromDateTime:   req.FromDateTime,
			ToDateTime:     req.ToDateTime,
			WorkspaceID:    req.WorkspaceID,
			PrimaryUserIDs: nonEmpty(req.PrimaryUserIDs),
			CallIDs:        nonEmpty(req.CallIDs),
		},
		Cursor: req.Cursor,
	}

	var env extensiveEnvelope
	if err := c.do(ctx, http.MethodPost, "/calls/extensive", nil, body, &env); err != nil {
		return nil, err
	}
	if err := checkExtensiveCallIDs(env.Calls); err != nil {
		return nil, err
	}
	return &domain.ExtensiveCallPage{Calls: env.Calls, Records: env.Records}, nil
}

// GetCall fetches a single call's metadata via GET /calls/{id}.
func (c *Client) GetCall(ctx context.Context, callID string) (*domain.Call, error) {
	var env callEnvelope
	if err := c.do(ctx, http.MethodGet, "/calls/"+url.PathEscape(callID), nil, nil, &env); err != nil {
		return nil, err
	}
	if env.Call.ID == "" {
		return nil, domain.NewStructuralError("call record is missing its id")
	}
	return &env.Call, nil
}

// GetCallDetails fetches the rich detail view of one call via
// POST /calls/extensive with the full summary content selector.
func (c *Client) GetCallDetails(ctx context.Context, callID string) (*domain.ExtensiveCall, error) {
	body := extensiveBody{
		Filter:          callFilter{CallIDs: []string{callID}},
		ContentSelector: summaryContentSelector(),
	}

	var env extensiveEnvelope
	if err := c.do(ctx, http.MethodPost, "/calls/extensive", nil, body, &env); err != nil {
		return nil, err
	}
	if err := checkExtensiveCallIDs(env.Calls); err != nil {
		return nil, err
	}
	if len(env.Calls) == 0 {
		return nil, domain.NewNotFoundError("Call", callID)
	}
	return &env.Calls[0], nil
}

// GetTranscript fetches one call's transcript via POST /calls/transcript.
func (c *Client) GetTranscript(ctx context.Context, callID string) (*domain.CallTranscript, error) {
	body := extensiveBody{Filter: callFilter{CallIDs: []string{callID}}}

	var env transcriptEnvelope
	if err := c.do(ctx, http.MethodPost, "/calls/transcript", nil, body, &env); err != nil {
		return nil, err
	}
	if err := checkTranscriptIDs(env.CallTranscripts); err != nil {
		return nil, err
	}
	if len(env.CallTranscripts) == 0 {
		return nil, domain.NewNotFoundError("Transcript", callID)
	}
	return &env.CallTranscripts[0], nil
}

// ListUsers lists users via GET /users.
func (c *Client) ListUsers(ctx context.Context, req request.ListUsers) (*domain.UserPage, error) {
	q := url.Values{}
	if req.Cursor != "" {
		q.Set("cursor", req.Cursor)
	}
	if req.IncludeAvatars != nil {
		q.Set("includeAvatars", strconv.FormatBool(*req.IncludeAvatars))
	}

	var env usersEnvelope
	if err := c.do(ctx, http.MethodGet, "/users", q, nil, &env); err != nil {
		return nil, err
	}
	if err := checkUserIDs(env.Users); err != nil {
		return nil, err
	}
	return &domain.UserPage{Users: env.Users, Records: env.Records}, nil
}

// SearchUsers searches users via POST /users/extensive.
func (c *Client) SearchUsers(ctx context.Context, req request.SearchUsers) (*domain.UserPage, error) {
	body := usersBody{
		Filter: userFilter{
			UserIDs:             nonEmpty(req.UserIDs),
			CreatedFromDateTime: req.CreatedFromDateTime,
			CreatedToDateTime:   req.CreatedToDateTime,
		},
		Cursor: req.Cursor,
	}

	var env usersEnvelope
	if err := c.do(ctx, http.MethodPost, "/users/extensive", nil, body, &env); err != nil {
		return nil, err
	}
	if err := checkUserIDs(env.Users); err != nil {
		return nil, err
	}
	return &domain.UserPage{Users: env.Users, Records: env.Records}, nil
}

// GetUser fetches a single user via GET /users/{id}.
func (c *Client) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	var env userEnvelope
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(userID), nil, nil, &env); err != nil {
		return nil, err
	}
	if env.User.ID == "" {
		return nil, domain.NewStructuralError("user record is missing its id")
	}
	return &env.User, nil
}

// ListWorkspaces lists all workspaces via GET /workspaces.
func (c *Client) ListWorkspaces(ctx context.Context) ([]domain.Workspace, error) {
	var env workspacesEnvelope
	if err := c.do(ctx, http.MethodGet, "/workspaces", nil, nil, &env); err != nil {
		return nil, err
	}
	for i, w := range env.Workspaces {
		if w.ID == "" {
			return nil, domain.NewStructuralError(fmt.Sprintf("workspace record %d is missing its id", i))
		}
	}
	return env.Workspaces, nil
}

// ListTrackers lists tracker definitions via GET /settings/trackers.
func (c *Client) ListTrackers(ctx context.Context, workspaceID string) ([]domain.Tracker, error) {
	q := url.Values{}
	if workspaceID != "" {
		q.Set("workspaceId", workspaceID)
	}

	var env trackersEnvelope
	if err := c.do(ctx, http.MethodGet, "/settings/trackers", q, nil, &env); err != nil {
		return nil, err
	}
	return env.KeywordTrackers, nil
}

// ListFolders lists a workspace's library folders via GET /library/folders.
func (c *Client) ListFolders(ctx context.Context, workspaceID string) ([]domain.LibraryFolder, error) {
	q := url.Values{}
	q.Set("workspaceId", workspaceID)

	var env foldersEnvelope
	if err := c.do(ctx, http.MethodGet, "/library/folders", q, nil, &env); err != nil {
		return nil, err
	}
	for i, f := range env.Folders {
		if f.ID == "" {
			return nil, domain.NewStructuralError(fmt.Sprintf("folder record %d is missing its id", i))
		}
	}
	return env.Folders, nil
}

// GetFolderContent lists the calls curated into one library folder via
// GET /library/folder-content.
func (c *Client) GetFolderContent(ctx context.Context, folderID string) (*domain.FolderContent, error) {
	q := url.Values{}
	q.Set("folderId", folderID)

	var env folderContentEnvelope
	if err := c.do(ctx, http.MethodGet, "/library/folder-content", q, nil, &env); err != nil {
		return nil, err
	}
	return &domain.FolderContent{ID: env.ID, Name: env.Name, Calls: env.Calls}, nil
}

// nonEmpty maps an empty slice to nil so omitempty drops it from the outgoing
// filter; the API treats an empty array as an invalid filter, not a no-op.
func nonEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}
