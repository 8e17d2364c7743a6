// Package request defines one contract per MCP tool: the fields the tool
// accepts, their defaults, and the validation rules applied before any
// network call. Requests are plain immutable structs; an empty string or nil
// slice means the field was not supplied. Defaulting happens once, at
// construction, never downstream.
package request

import "gong-mcp/internal/validate"

// Transcript windowing defaults and bounds.
const (
	DefaultTranscriptMaxLength = 10000
	MinTranscriptMaxLength     = 1000
	MaxTranscriptMaxLength     = 100000
)

// ListCalls filters the minimal call listing.
type ListCalls struct {
	FromDateTime string
	ToDateTime   string
	WorkspaceID  string
	Cursor       string
}

func (r ListCalls) Validate() error {
	var c validate.Collector
	c.Optional("fromDateTime", r.FromDateTime, validate.Timestamp)
	c.Optional("toDateTime", r.ToDateTime, validate.Timestamp)
	c.Optional("workspaceId", r.WorkspaceID, validate.Identifier)
	c.DateOrder(r.FromDateTime, r.ToDateTime)
	return c.Err()
}

// SearchCalls filters the extensive call search.
type SearchCalls struct {
	FromDateTime   string
	ToDateTime     string
	WorkspaceID    string
	PrimaryUserIDs []string
	CallIDs        []string
	Cursor         string
}

func (r SearchCalls) Validate() error {
	var c validate.Collector
	c.Optional("fromDateTime", r.FromDateTime, validate.Timestamp)
	c.Optional("toDateTime", r.ToDateTime, validate.Timestamp)
	c.Optional("workspaceId", r.WorkspaceID, validate.Identifier)
	c.Each("primaryUserIds", r.PrimaryUserIDs, validate.Identifier)
	c.Each("callIds", r.CallIDs, validate.Identifier)
	c.DateOrder(r.FromDateTime, r.ToDateTime)
	return c.Err()
}

// GetCall fetches a single call's metadata.
type GetCall struct {
	CallID string
}

func (r GetCall) Validate() error {
	var c validate.Collector
	c.Required("callId", r.CallID, validate.Identifier)
	return c.Err()
}

// GetCallSummary fetches the rich detail view of one call.
type GetCallSummary struct {
	CallID string
}

func (r GetCallSummary) Validate() error {
	var c validate.Collector
	c.Required("callId", r.CallID, validate.Identifier)
	return c.Err()
}

// GetCallTranscript fetches a character window of one call's transcript.
// MaxLength and Offset carry their defaults when the caller omitted them.
type GetCallTranscript struct {
	CallID    string
	MaxLength int
	Offset    int
}

func (r GetCallTranscript) Validate() error {
	var c validate.Collector
	c.Required("callId", r.CallID, validate.Identifier)
	c.IntRange("maxLength", r.MaxLength, MinTranscriptMaxLength, MaxTranscriptMaxLength)
	c.Min("offset", r.Offset, 0)
	return c.Err()
}

// ListUsers pages through all users. IncludeAvatars is tri-state: nil means
// the caller did not ask either way and the query parameter is omitted.
type ListUsers struct {
	Cursor         string
	IncludeAvatars *bool
}

func (r ListUsers) Validate() error {
	return nil
}

// SearchUsers filters the extensive user search.
type SearchUsers struct {
	UserIDs             []string
	CreatedFromDateTime string
	CreatedToDateTime   string
	Cursor              string
}

func (r SearchUsers) Validate() error {
	var c validate.Collector
	c.Each("userIds", r.UserIDs, validate.Identifier)
	c.Optional("createdFromDateTime", r.CreatedFromDateTime, validate.Timestamp)
	c.Optional("createdToDateTime", r.CreatedToDateTime, validate.Timestamp)
	return c.Err()
}

// GetUser fetches a single user.
type GetUser struct {
	UserID string
}

func (r GetUser) Validate() error {
	var c validate.Collector
	c.Required("userId", r.UserID, validate.Identifier)
	return c.Err()
}

// GetTrackers lists tracker definitions, optionally scoped to a workspace.
type GetTrackers struct {
	WorkspaceID string
}

func (r GetTrackers) Validate() error {
	var c validate.Collector
	c.Optional("workspaceId", r.WorkspaceID, validate.Identifier)
	return c.Err()
}

// ListLibraryFolders lists the library folders of a workspace.
type ListLibraryFolders struct {
	WorkspaceID string
}

func (r ListLibraryFolders) Validate() error {
	var c validate.Collector
	c.Required("workspaceId", r.WorkspaceID, validate.Identifier)
	return c.Err()
}

// GetLibraryFolderCalls lists the calls curated into one library folder.
type GetLibraryFolderCalls struct {
	FolderID string
}

func (r GetLibraryFolderCalls) Validate() error {
	var c validate.Collector
	c.Required("folderId", r.FolderID, validate.Identifier)
	return c.Err()
}
