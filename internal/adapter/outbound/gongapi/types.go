package gongapi

import (
	"fmt"

	"gong-mcp/internal/domain"
)

// Wire envelopes for each Gong response shape. Decoding into these is the
// structural contract: optional data may be absent, but the id fields and the
// records block checked below must be present.

type callsEnvelope struct {
	RequestID string          `json:"requestId"`
	Records   domain.PageInfo `json:"records"`
	Calls     []domain.Call   `json:"calls"`
}

type extensiveEnvelope struct {
	RequestID string                 `json:"requestId"`
	Records   domain.PageInfo        `json:"records"`
	Calls     []domain.ExtensiveCall `json:"calls"`
}

type callEnvelope struct {
	RequestID string      `json:"requestId"`
	Call      domain.Call `json:"call"`
}

type transcriptEnvelope struct {
	RequestID       string                  `json:"requestId"`
	Records         domain.PageInfo         `json:"records"`
	CallTranscripts []domain.CallTranscript `json:"callTranscripts"`
}

type usersEnvelope struct {
	RequestID string          `json:"requestId"`
	Records   domain.PageInfo `json:"records"`
	Users     []domain.User   `json:"users"`
}

type userEnvelope struct {
	RequestID string      `json:"requestId"`
	User      domain.User `json:"user"`
}

type workspacesEnvelope struct {
	RequestID  string             `json:"requestId"`
	Workspaces []domain.Workspace `json:"workspaces"`
}

type trackersEnvelope struct {
	RequestID       string           `json:"requestId"`
	KeywordTrackers []domain.Tracker `json:"keywordTrackers"`
}

type foldersEnvelope struct {
	RequestID string                 `json:"requestId"`
	Folders   []domain.LibraryFolder `json:"folders"`
}

type folderContentEnvelope struct {
	RequestID string              `json:"requestId"`
	ID        string              `json:"id"`
	Name      string              `json:"name,omitempty"`
	Calls     []domain.FolderCall `json:"calls"`
}

// callFilter is the filter sub-object of the POST call endpoints. Empty
// slices must be omitted entirely; the API rejects explicit empty arrays on
// some deployments, so nil-or-omit is the only safe form.
type callFilter struct {
	FromDateTime   string   `json:"fromDateTime,omitempty"`
	ToDateTime     string   `json:"toDateTime,omitempty"`
	WorkspaceID    string   `json:"workspaceId,omitempty"`
	PrimaryUserIDs []string `json:"primaryUserIds,omitempty"`
	CallIDs        []string `json:"callIds,omitempty"`
}

type userFilter struct {
	UserIDs             []string `json:"userIds,omitempty"`
	CreatedFromDateTime string   `json:"createdFromDateTime,omitempty"`
	CreatedToDateTime   string   `json:"createdToDateTime,omitempty"`
}

// extensiveBody is the POST /calls/extensive and /calls/transcript body. The
// cursor rides at the top level, never inside the filter.
type extensiveBody struct {
	Filter          callFilter       `json:"filter"`
	Cursor          string           `json:"cursor,omitempty"`
	ContentSelector *contentSelector `json:"contentSelector,omitempty"`
}

type usersBody struct {
	Filter userFilter `json:"filter"`
	Cursor string     `json:"cursor,omitempty"`
}

// contentSelector opts in to the AI-generated content blocks. The summary
// pipeline always requests the full set below; the search pipeline omits the
// selector entirely and relies on the API's metadata-only default.
type contentSelector struct {
	ExposedFields exposedFields `json:"exposedFields"`
}

type exposedFields struct {
	Parties       bool                  `json:"parties"`
	Content       contentFields         `json:"content"`
	Interaction   interactionFields     `json:"interaction"`
	Collaboration collaborationSelector `json:"collaboration"`
}

type contentFields struct {
	Brief            bool `json:"brief,omitempty"`
	Outline          bool `json:"outline,omitempty"`
	KeyPoints        bool `json:"keyPoints,omitempty"`
	Topics           bool `json:"topics,omitempty"`
	PointsOfInterest bool `json:"pointsOfInterest,omitempty"`
	CallOutcome      bool `json:"callOutcome,omitempty"`
	Trackers         bool `json:"trackers,omitempty"`
}

type interactionFields struct {
	Speakers               bool `json:"speakers,omitempty"`
	PersonInteractionStats bool `json:"personInteractionStats,omitempty"`
	Questions              bool `json:"questions,omitempty"`
}

type collaborationSelector struct {
	PublicComments bool `json:"publicComments,omitempty"`
}

func summaryContentSelector() *contentSelector {
	return &contentSelector{
		ExposedFields: exposedFields{
			Parties: true,
			Content: contentFields{
				Brief:            true,
				Outline:          true,
				KeyPoints:        true,
				Topics:           true,
				PointsOfInterest: true,
				CallOutcome:      true,
				Trackers:         true,
			},
			Interaction: interactionFields{
				Speakers:               true,
				PersonInteractionStats: true,
				Questions:              true,
			},
			Collaboration: collaborationSelector{PublicComments: true},
		},
	}
}

// Structural checks applied after decoding. Absence of optional data is never
// an error; a record without its id is.

func checkCallIDs(calls []domain.Call) error {
	for i, c := range calls {
		if c.ID == "" {
			return domain.NewStructuralError(fmt.Sprintf("call record %d is missing its id", i))
		}
	}
	return nil
}

func checkExtensiveCallIDs(calls []domain.ExtensiveCall) error {
	for i, c := range calls {
		if c.MetaData.ID == "" {
			return domain.NewStructuralError(fmt.Sprintf("call record %d is missing its id", i))
		}
	}
	return nil
}

func checkUserIDs(users []domain.User) error {
	for i, u := range users {
		if u.ID == "" {
			return domain.NewStructuralError(fmt.Sprintf("user record %d is missing its id", i))
		}
	}
	return nil
}

func checkTranscriptIDs(ts []domain.CallTranscript) error {
	for i, t := range ts {
		if t.CallID == "" {
			return domain.NewStructuralError(fmt.Sprintf("transcript record %d is missing its callId", i))
		}
	}
	return nil
}
