// Package mcptools is the inbound adapter: it declares every Gong tool on an
// MCP server and routes incoming invocations through the validate -> fetch ->
// format pipeline. All failures are converted to error-flagged text results;
// no error escapes past the dispatch boundary.
package mcptools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"gong-mcp/internal/domain"
	"gong-mcp/internal/request"
)

// UsersResourceURI is the fixed name of the pre-rendered user list resource.
const UsersResourceURI = "gong://users"

// GongAPI is the outbound contract the tool handlers depend on. Implemented
// by gongapi.Client.
type GongAPI interface {
	ListCalls(ctx context.Context, req request.ListCalls) (*domain.CallPage, error)
	SearchCalls(ctx context.Context, req request.SearchCalls) (*domain.ExtensiveCallPage, error)
	GetCall(ctx context.Context, callID string) (*domain.Call, error)
	GetCallDetails(ctx context.Context, callID string) (*domain.ExtensiveCall, error)
	GetTranscript(ctx context.Context, callID string) (*domain.CallTranscript, error)
	ListUsers(ctx context.Context, req request.ListUsers) (*domain.UserPage, error)
	SearchUsers(ctx context.Context, req request.SearchUsers) (*domain.UserPage, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	ListWorkspaces(ctx context.Context) ([]domain.Workspace, error)
	ListTrackers(ctx context.Context, workspaceID string) ([]domain.Tracker, error)
	ListFolders(ctx context.Context, workspaceID string) ([]domain.LibraryFolder, error)
	GetFolderContent(ctx context.Context, folderID string) (*domain.FolderContent, error)
}

// Server owns the tool handlers and their shared dependencies.
type Server struct {
	api    GongAPI
	logger *slog.Logger
	tracer trace.Tracer
}

// New creates the inbound adapter.
func New(api GongAPI, logger *slog.Logger) *Server {
	return &Server{
		api:    api,
		logger: logger.With("component", "mcp_tools"),
		tracer: otel.Tracer("gong-mcp/mcptools"),
	}
}

// Register declares every tool and the users resource on the MCP server.
func (s *Server) Register(srv *server.MCPServer) {
	srv.AddTool(mcp.NewTool("list_calls",
		mcp.WithDescription("List calls within an optional date range. Returns a paginated table of call metadata."),
		mcp.WithString("fromDateTime", mcp.Description("ISO 8601 datetime with timezone, e.g. 2024-01-01T00:00:00Z. Inclusive lower bound.")),
		mcp.WithString("toDateTime", mcp.Description("ISO 8601 datetime with timezone. Exclusive upper bound; must be after fromDateTime.")),
		mcp.WithString("workspaceId", mcp.Description("Restrict to one workspace (numeric id).")),
		mcp.WithString("cursor", mcp.Description("Opaque cursor from a previous page.")),
	), s.handle("list_calls", s.listCalls))

	srv.AddTool(mcp.NewTool("search_calls",
		mcp.WithDescription("Search calls by date range, workspace, host users, or explicit call ids. Returns a paginated table of call metadata."),
		mcp.WithString("fromDateTime", mcp.Description("ISO 8601 datetime with timezone. Inclusive lower bound.")),
		mcp.WithString("toDateTime", mcp.Description("ISO 8601 datetime with timezone. Must be after fromDateTime.")),
		mcp.WithString("workspaceId", mcp.Description("Restrict to one workspace (numeric id).")),
		mcp.WithArray("primaryUserIds", mcp.Description("Restrict to calls hosted by these user ids."), mcp.Items(map[string]any{"type": "string"})),
		mcp.WithArray("callIds", mcp.Description("Fetch these specific call ids."), mcp.Items(map[string]any{"type": "string"})),
		mcp.WithString("cursor", mcp.Description("Opaque cursor from a previous page.")),
	), s.handle("search_calls", s.searchCalls))

	srv.AddTool(mcp.NewTool("get_call",
		mcp.WithDescription("Fetch the metadata of a single call."),
		mcp.WithString("callId", mcp.Required(), mcp.Description("Numeric call id.")),
	), s.handle("get_call", s.getCall))

	srv.AddTool(mcp.NewTool("get_call_summary",
		mcp.WithDescription("Fetch the rich AI-generated summary of a call: participants, brief, key points, action items, topics, and outline."),
		mcp.WithString("callId", mcp.Required(), mcp.Description("Numeric call id.")),
	), s.handle("get_call_summary", s.getCallSummary))

	srv.AddTool(mcp.NewTool("get_call_transcript",
		mcp.WithDescription("Fetch a character window of a call's transcript with speaker names resolved. Re-request with offset = previous offset + previous maxLength to continue reading."),
		mcp.WithString("callId", mcp.Required(), mcp.Description("Numeric call id.")),
		mcp.WithNumber("maxLength", mcp.Description("Maximum characters to return, between 1000 and 100000. Defaults to 10000.")),
		mcp.WithNumber("offset", mcp.Description("Character offset to start from. Defaults to 0.")),
	), s.handle("get_call_transcript", s.getCallTranscript))

	srv.AddTool(mcp.NewTool("list_users",
		mcp.WithDescription("List all users. Returns a paginated table."),
		mcp.WithString("cursor", mcp.Description("Opaque cursor from a previous page.")),
		mcp.WithBoolean("includeAvatars", mcp.Description("Include avatar URLs in the underlying fetch.")),
	), s.handle("list_users", s.listUsers))

	srv.AddTool(mcp.NewTool("search_users",
		mcp.WithDescription("Search users by id or creation date range. Returns a paginated table."),
		mcp.WithArray("userIds", mcp.Description("Restrict to these user ids."), mcp.Items(map[string]any{"type": "string"})),
		mcp.WithString("createdFromDateTime", mcp.Description("ISO 8601 datetime with timezone. Inclusive lower bound on creation time.")),
		mcp.WithString("createdToDateTime", mcp.Description("ISO 8601 datetime with timezone. Upper bound on creation time.")),
		mcp.WithString("cursor", mcp.Description("Opaque cursor from a previous page.")),
	), s.handle("search_users", s.searchUsers))

	srv.AddTool(mcp.NewTool("get_user",
		mcp.WithDescription("Fetch a single user's identity record."),
		mcp.WithString("userId", mcp.Required(), mcp.Description("Numeric user id.")),
	), s.handle("get_user", s.getUser))

	srv.AddTool(mcp.NewTool("list_workspaces",
		mcp.WithDescription("List all workspaces."),
	), s.handle("list_workspaces", s.listWorkspaces))

	srv.AddTool(mcp.NewTool("get_trackers",
		mcp.WithDescription("List keyword tracker definitions, optionally scoped to a workspace."),
		mcp.WithString("workspaceId", mcp.Description("Restrict to one workspace (numeric id).")),
	), s.handle("get_trackers", s.getTrackers))

	srv.AddTool(mcp.NewTool("list_library_folders",
		mcp.WithDescription("List the call library folders of a workspace."),
		mcp.WithString("workspaceId", mcp.Required(), mcp.Description("Numeric workspace id.")),
	), s.handle("list_library_folders", s.listLibraryFolders))

	srv.AddTool(mcp.NewTool("get_library_folder_calls",
		mcp.WithDescription("List the calls curated into one library folder, with snippets and curator notes."),
		mcp.WithString("folderId", mcp.Required(), mcp.Description("Numeric folder id.")),
	), s.handle("get_library_folder_calls", s.getLibraryFolderCalls))

	srv.AddResource(mcp.NewResource(UsersResourceURI, "Gong Users",
		mcp.WithResourceDescription("The full Gong user list, rendered as text."),
		mcp.WithMIMEType("text/markdown"),
	), s.usersResource)

	s.logger.Info("Registered Gong tools.", slog.Int("tool_count", 12))
}

// handlerFunc is the uniform pipeline signature: argument bag in, rendered
// text or pipeline error out.
type handlerFunc func(ctx context.Context, args map[string]any) (string, error)

// handle wraps a pipeline handler into the MCP handler shape. Every error is
// converted to an error-flagged text result, and a panic is caught the same
// way; the hosting shell never sees a failure surface as anything else.
func (s *Server) handle(name string, fn handlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (result *mcp.CallToolResult, retErr error) {
		requestID := uuid.NewString()
		log := s.logger.With(slog.String("tool", name), slog.String("request_id", requestID))

		defer func() {
			if r := recover(); r != nil {
				log.Error("Tool invocation panicked.", slog.Any("panic", r))
				result = mcp.NewToolResultError(fmt.Sprintf("Error: internal failure in %s", name))
				retErr = nil
			}
		}()

		ctx, span := s.tracer.Start(ctx, "tool/"+name)
		defer span.End()
		span.SetAttributes(
			attribute.String("mcp.tool", name),
			attribute.String("request.id", requestID),
		)

		log.Debug("Tool invocation started.")
		text, err := fn(ctx, req.GetArguments())
		if err != nil {
			span.RecordError(err)
			log.Warn("Tool invocation failed.",
				slog.String("kind", string(domain.KindOf(err))),
				slog.Any("error", err))
			return mcp.NewToolResultError(errorText(err)), nil
		}
		log.Debug("Tool invocation completed.", slog.Int("response_chars", len(text)))
		return mcp.NewToolResultText(text), nil
	}
}

// errorText is the single-line message returned to the caller. Pipeline
// errors already carry their kind-specific prefix; anything else is reported
// generically.
func errorText(err error) string {
	var de *domain.Error
	if errors.As(err, &de) {
		return de.Message
	}
	return "Error: " + err.Error()
}
