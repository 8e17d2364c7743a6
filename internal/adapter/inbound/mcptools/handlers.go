package mcptools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"gong-mcp/internal/domain"
	"gong-mcp/internal/format"
	"gong-mcp/internal/request"
)

func (s *Server) listCalls(ctx context.Context, args map[string]any) (string, error) {
	b := newBinder(args)
	req := request.ListCalls{
		FromDateTime: b.str("fromDateTime"),
		ToDateTime:   b.str("toDateTime"),
		WorkspaceID:  b.str("workspaceId"),
		Cursor:       b.str("cursor"),
	}
	if err := b.err(); err != nil {
		return "", err
	}
	if err := req.Validate(); err != nil {
		return "", err
	}

	page, err := s.api.ListCalls(ctx, req)
	if err != nil {
		return "", err
	}
	return format.Calls(page.Calls, page.Records), nil
}

func (s *Server) searchCalls(ctx context.Context, args map[string]any) (string, error) {
	b := newBinder(args)
	req := request.SearchCalls{
		FromDateTime:   b.str("fromDateTime"),
		ToDateTime:     b.str("toDateTime"),
		WorkspaceID:    b.str("workspaceId"),
		PrimaryUserIDs: b.strSlice("primaryUserIds"),
		CallIDs:        b.strSlice("callIds"),
		Cursor:         b.str("cursor"),
	}
	if err := b.err(); err != nil {
		return "", err
	}
	if err := req.Validate(); err != nil {
		return "", err
	}

	page, err := s.api.SearchCalls(ctx, req)
	if err != nil {
		return "", err
	}
	return format.ExtensiveCalls(page.Calls, page.Records), nil
}

func (s *Server) getCall(ctx context.Context, args map[string]any) (string, error) {
	b := newBinder(args)
	req := request.GetCall{CallID: b.str("callId")}
	if err := b.err(); err != nil {
		return "", err
	}
	if err := req.Validate(); err != nil {
		return "", err
	}

	call, err := s.api.GetCall(ctx, req.CallID)
	if err != nil {
		return "", err
	}
	return format.CallDetails(call), nil
}

func (s *Server) getCallSummary(ctx context.Context, args map[string]any) (string, error) {
	b := newBinder(args)
	req := request.GetCallSummary{CallID: b.str("callId")}
	if err := b.err(); err != nil {
		return "", err
	}
	if err := req.Validate(); err != nil {
		return "", err
	}

	call, err := s.api.GetCallDetails(ctx, req.CallID)
	if err != nil {
		return "", err
	}
	return format.CallSummary(call), nil
}

func (s *Server) getCallTranscript(ctx context.Context, args map[string]any) (string, error) {
	b := newBinder(args)
	req := request.GetCallTranscript{
		CallID:    b.str("callId"),
		MaxLength: b.intOr("maxLength", request.DefaultTranscriptMaxLength),
		Offset:    b.intOr("offset", 0),
	}
	if err := b.err(); err != nil {
		return "", err
	}
	if err := req.Validate(); err != nil {
		return "", err
	}

	// The transcript and the call detail (for speaker names) are independent
	// fetches for the same call; run them concurrently and require both.
	type transcriptResult struct {
		transcript *domain.CallTranscript
		err        error
	}
	trCh := make(chan transcriptResult, 1)
	go func() {
		t, err := s.api.GetTranscript(ctx, req.CallID)
		trCh <- transcriptResult{transcript: t, err: err}
	}()

	call, callErr := s.api.GetCallDetails(ctx, req.CallID)
	tr := <-trCh
	if callErr != nil {
		return "", callErr
	}
	if tr.err != nil {
		return "", tr.err
	}

	return format.Transcript(req.CallID, tr.transcript, call.Parties, req.Offset, req.MaxLength), nil
}

func (s *Server) listUsers(ctx context.Context, args map[string]any) (string, error) {
	b := newBinder(args)
	req := request.ListUsers{
		Cursor:         b.str("cursor"),
		IncludeAvatars: b.boolPtr("includeAvatars"),
	}
	if err := b.err(); err != nil {
		return "", err
	}
	if err := req.Validate(); err != nil {
		return "", err
	}

	page, err := s.api.ListUsers(ctx, req)
	if err != nil {
		return "", err
	}
	return format.Users(page.Users, page.Records), nil
}

func (s *Server) searchUsers(ctx context.Context, args map[string]any) (string, error) {
	b := newBinder(args)
	req := request.SearchUsers{
		UserIDs:             b.strSlice("userIds"),
		CreatedFromDateTime: b.str("createdFromDateTime"),
		CreatedToDateTime:   b.str("createdToDateTime"),
		Cursor:              b.str("cursor"),
	}
	if err := b.err(); err != nil {
		return "", err
	}
	if err := req.Validate(); err != nil {
		return "", err
	}

	page, err := s.api.SearchUsers(ctx, req)
	if err != nil {
		return "", err
	}
	return format.Users(page.Users, page.Records), nil
}

func (s *Server) getUser(ctx context.Context, args map[string]any) (string, error) {
	b := newBinder(args)
	req := request.GetUser{UserID: b.str("userId")}
	if err := b.err(); err != nil {
		return "", err
	}
	if err := req.Validate(); err != nil {
		return "", err
	}

	user, err := s.api.GetUser(ctx, req.UserID)
	if err != nil {
		return "", err
	}
	return format.UserDetails(user), nil
}

func (s *Server) listWorkspaces(ctx context.Context, _ map[string]any) (string, error) {
	workspaces, err := s.api.ListWorkspaces(ctx)
	if err != nil {
		return "", err
	}
	return format.Workspaces(workspaces), nil
}

func (s *Server) getTrackers(ctx context.Context, args map[string]any) (string, error) {
	b := newBinder(args)
	req := request.GetTrackers{WorkspaceID: b.str("workspaceId")}
	if err := b.err(); err != nil {
		return "", err
	}
	if err := req.Validate(); err != nil {
		return "", err
	}

	trackers, err := s.api.ListTrackers(ctx, req.WorkspaceID)
	if err != nil {
		return "", err
	}
	return format.Trackers(trackers), nil
}

func (s *Server) listLibraryFolders(ctx context.Context, args map[string]any) (string, error) {
	b := newBinder(args)
	req := request.ListLibraryFolders{WorkspaceID: b.str("workspaceId")}
	if err := b.err(); err != nil {
		return "", err
	}
	if err := req.Validate(); err != nil {
		return "", err
	}

	folders, err := s.api.ListFolders(ctx, req.WorkspaceID)
	if err != nil {
		return "", err
	}
	return format.LibraryFolders(folders), nil
}

func (s *Server) getLibraryFolderCalls(ctx context.Context, args map[string]any) (string, error) {
	b := newBinder(args)
	req := request.GetLibraryFolderCalls{FolderID: b.str("folderId")}
	if err := b.err(); err != nil {
		return "", err
	}
	if err := req.Validate(); err != nil {
		return "", err
	}

	content, err := s.api.GetFolderContent(ctx, req.FolderID)
	if err != nil {
		return "", err
	}
	return format.FolderCalls(content), nil
}

// usersResource serves the fixed gong://users resource: the complete user
// list fetched page by page and rendered as one text document.
func (s *Server) usersResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	var (
		users  []domain.User
		cursor string
		total  int
	)
	for {
		page, err := s.api.ListUsers(ctx, request.ListUsers{Cursor: cursor})
		if err != nil {
			return nil, err
		}
		users = append(users, page.Users...)
		total = page.Records.TotalRecords
		cursor = page.Records.Cursor
		if cursor == "" {
			break
		}
	}

	text := format.Users(users, domain.PageInfo{TotalRecords: total})
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     text,
		},
	}, nil
}
