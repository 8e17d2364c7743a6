package mcptools

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gong-mcp/internal/domain"
	"gong-mcp/internal/request"
)

// fakeAPI lets each test stub exactly the calls it expects; everything else
// fails loudly.
type fakeAPI struct {
	listCalls      func(context.Context, request.ListCalls) (*domain.CallPage, error)
	searchCalls    func(context.Context, request.SearchCalls) (*domain.ExtensiveCallPage, error)
	getCall        func(context.Context, string) (*domain.Call, error)
	getCallDetails func(context.Context, string) (*domain.ExtensiveCall, error)
	getTranscript  func(context.Context, string) (*domain.CallTranscript, error)
	listUsers      func(context.Context, request.ListUsers) (*domain.UserPage, error)
}

func (f *fakeAPI) ListCalls(ctx context.Context, req request.ListCalls) (*domain.CallPage, error) {
	return f.listCalls(ctx, req)
}
func (f *fakeAPI) SearchCalls(ctx context.Context, req request.SearchCalls) (*domain.ExtensiveCallPage, error) {
	return f.searchCalls(ctx, req)
}
func (f *fakeAPI) GetCall(ctx context.Context, id string) (*domain.Call, error) {
	return f.getCall(ctx, id)
}
func (f *fakeAPI) GetCallDetails(ctx context.Context, id string) (*domain.ExtensiveCall, error) {
	return f.getCallDetails(ctx, id)
}
func (f *fakeAPI) GetTranscript(ctx context.Context, id string) (*domain.CallTranscript, error) {
	return f.getTranscript(ctx, id)
}
func (f *fakeAPI) ListUsers(ctx context.Context, req request.ListUsers) (*domain.UserPage, error) {
	return f.listUsers(ctx, req)
}
func (f *fakeAPI) SearchUsers(context.Context, request.SearchUsers) (*domain.UserPage, error) {
	return nil, errors.New("not stubbed")
}
func (f *fakeAPI) GetUser(context.Context, string) (*domain.User, error) {
	return nil, errors.New("not stubbed")
}
func (f *fakeAPI) ListWorkspaces(context.Context) ([]domain.Workspace, error) {
	return nil, errors.New("not stubbed")
}
func (f *fakeAPI) ListTrackers(context.Context, string) ([]domain.Tracker, error) {
	return nil, errors.New("not stubbed")
}
func (f *fakeAPI) ListFolders(context.Context, string) ([]domain.LibraryFolder, error) {
	return nil, errors.New("not stubbed")
}
func (f *fakeAPI) GetFolderContent(context.Context, string) (*domain.FolderContent, error) {
	return nil, errors.New("not stubbed")
}

func newTestServer(api GongAPI) *Server {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	return New(api, logger)
}

func callTool(t *testing.T, s *Server, name string, fn handlerFunc, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args

	result, err := s.handle(name, fn)(context.Background(), req)
	require.NoError(t, err, "the dispatch boundary must never propagate an error")
	require.NotNil(t, result)
	return result
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := mcp.AsTextContent(result.Content[0])
	require.True(t, ok)
	return text.Text
}

func TestValidationErrorBecomesErrorResult(t *testing.T) {
	s := newTestServer(&fakeAPI{})

	result := callTool(t, s, "get_call", s.getCall, map[string]any{"callId": "not numeric"})

	assert.True(t, result.IsError)
	text := resultText(t, result)
	assert.Contains(t, text, "Validation error:")
	assert.Contains(t, text, "callId: must be a numeric string up to 20 digits")
}

func TestBindingErrorsAreCollected(t *testing.T) {
	s := newTestServer(&fakeAPI{})

	result := callTool(t, s, "search_calls", s.searchCalls, map[string]any{
		"fromDateTime":   12345,
		"primaryUserIds": "not an array",
	})

	assert.True(t, result.IsError)
	text := resultText(t, result)
	assert.Contains(t, text, "fromDateTime: must be a string")
	assert.Contains(t, text, "primaryUserIds: must be an array of strings")
}

func TestRemoteErrorBecomesErrorResult(t *testing.T) {
	s := newTestServer(&fakeAPI{
		getCall: func(context.Context, string) (*domain.Call, error) {
			return nil, domain.NewRemoteError(502, "502 Bad Gateway", "upstream sad")
		},
	})

	result := callTool(t, s, "get_call", s.getCall, map[string]any{"callId": "1"})

	assert.True(t, result.IsError)
	text := resultText(t, result)
	assert.Contains(t, text, "Gong API error: 502 Bad Gateway")
	assert.Contains(t, text, "upstream sad")
}

func TestListCallsSuccess(t *testing.T) {
	s := newTestServer(&fakeAPI{
		listCalls: func(_ context.Context, req request.ListCalls) (*domain.CallPage, error) {
			assert.Equal(t, "2024-01-01T00:00:00Z", req.FromDateTime)
			return &domain.CallPage{
				Calls:   []domain.Call{{ID: "1", Title: "Hello", Duration: 1800}},
				Records: domain.PageInfo{TotalRecords: 1},
			}, nil
		},
	})

	result := callTool(t, s, "list_calls", s.listCalls, map[string]any{
		"fromDateTime": "2024-01-01T00:00:00Z",
	})

	assert.False(t, result.IsError)
	text := resultText(t, result)
	assert.Contains(t, text, "**Calls** (1 total)")
	assert.Contains(t, text, "30m")
}

func TestTranscriptDefaultsApplied(t *testing.T) {
	var sawTranscript, sawDetails bool
	s := newTestServer(&fakeAPI{
		getTranscript: func(_ context.Context, id string) (*domain.CallTranscript, error) {
			sawTranscript = true
			assert.Equal(t, "9", id)
			return &domain.CallTranscript{
				CallID: "9",
				Transcript: []domain.Monologue{{
					SpeakerID: "s1",
					Sentences: []domain.Sentence{{Start: 0, End: 500, Text: "Hi."}},
				}},
			}, nil
		},
		getCallDetails: func(_ context.Context, id string) (*domain.ExtensiveCall, error) {
			sawDetails = true
			return &domain.ExtensiveCall{
				MetaData: domain.Call{ID: "9"},
				Parties:  []domain.Party{{SpeakerID: "s1", Name: "Ada"}},
			}, nil
		},
	})

	// Omitted maxLength/offset take their defaults; a short transcript has no
	// windowing annotations.
	result := callTool(t, s, "get_call_transcript", s.getCallTranscript, map[string]any{"callId": "9"})

	assert.False(t, result.IsError)
	text := resultText(t, result)
	assert.Contains(t, text, "[Ada]: Hi.")
	assert.NotContains(t, text, "Showing characters")
	assert.True(t, sawTranscript)
	assert.True(t, sawDetails)
}

func TestTranscriptMaxLengthOutOfRange(t *testing.T) {
	s := newTestServer(&fakeAPI{})

	result := callTool(t, s, "get_call_transcript", s.getCallTranscript, map[string]any{
		"callId":    "9",
		"maxLength": float64(500),
	})

	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "maxLength: must be between 1000 and 100000")
}

func TestTranscriptOffsetNearIntegerLimitDoesNotPanic(t *testing.T) {
	s := newTestServer(&fakeAPI{
		getTranscript: func(context.Context, string) (*domain.CallTranscript, error) {
			return &domain.CallTranscript{
				CallID: "9",
				Transcript: []domain.Monologue{{
					SpeakerID: "s1",
					Sentences: []domain.Sentence{{Start: 0, End: 500, Text: "Hi."}},
				}},
			}, nil
		},
		getCallDetails: func(context.Context, string) (*domain.ExtensiveCall, error) {
			return &domain.ExtensiveCall{MetaData: domain.Call{ID: "9"}}, nil
		},
	})

	// 2^63-1024, exactly representable as a float64: survives binding and the
	// offset >= 0 rule, then must be clamped in the windowing math.
	result := callTool(t, s, "get_call_transcript", s.getCallTranscript, map[string]any{
		"callId": "9",
		"offset": float64(1<<63 - 1024),
	})

	assert.False(t, result.IsError)
	assert.Contains(t, resultText(t, result), "total")
}

func TestPanicBecomesErrorResult(t *testing.T) {
	s := newTestServer(&fakeAPI{})
	boom := func(context.Context, map[string]any) (string, error) {
		panic("kaboom")
	}

	result := callTool(t, s, "boom", boom, nil)

	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "internal failure in boom")
}

func TestTranscriptFailsWhenEitherFetchFails(t *testing.T) {
	tests := []struct {
		name          string
		transcriptErr error
		detailsErr    error
		want          string
	}{
		{"transcript missing", domain.NewNotFoundError("Transcript", "9"), nil, "Transcript not found: 9"},
		{"call missing", nil, domain.NewNotFoundError("Call", "9"), "Call not found: 9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(&fakeAPI{
				getTranscript: func(context.Context, string) (*domain.CallTranscript, error) {
					if tt.transcriptErr != nil {
						return nil, tt.transcriptErr
					}
					return &domain.CallTranscript{CallID: "9"}, nil
				},
				getCallDetails: func(context.Context, string) (*domain.ExtensiveCall, error) {
					if tt.detailsErr != nil {
						return nil, tt.detailsErr
					}
					return &domain.ExtensiveCall{MetaData: domain.Call{ID: "9"}}, nil
				},
			})

			result := callTool(t, s, "get_call_transcript", s.getCallTranscript, map[string]any{"callId": "9"})

			assert.True(t, result.IsError)
			assert.Contains(t, resultText(t, result), tt.want)
		})
	}
}

func TestUsersResourcePaginatesToCompletion(t *testing.T) {
	pages := map[string]*domain.UserPage{
		"": {
			Users:   []domain.User{{ID: "1", FirstName: "Ada"}},
			Records: domain.PageInfo{TotalRecords: 2, Cursor: "p2"},
		},
		"p2": {
			Users:   []domain.User{{ID: "2", FirstName: "Grace"}},
			Records: domain.PageInfo{TotalRecords: 2},
		},
	}
	var fetches int
	s := newTestServer(&fakeAPI{
		listUsers: func(_ context.Context, req request.ListUsers) (*domain.UserPage, error) {
			fetches++
			page, ok := pages[req.Cursor]
			require.True(t, ok, "unexpected cursor %q", req.Cursor)
			return page, nil
		},
	})

	req := mcp.ReadResourceRequest{}
	req.Params.URI = UsersResourceURI
	contents, err := s.usersResource(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, UsersResourceURI, text.URI)
	assert.Contains(t, text.Text, "**Users** (2 total)")
	assert.Contains(t, text.Text, "Ada")
	assert.Contains(t, text.Text, "Grace")
	// The rendered full list must not advertise a further page.
	assert.NotContains(t, text.Text, "cursor")
	assert.Equal(t, 2, fetches)
}
