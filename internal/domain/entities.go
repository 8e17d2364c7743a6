// Package domain holds the read-only projections of Gong API data that flow
// between the API client and the formatters. Every entity is constructed when
// a response is parsed and discarded after formatting; nothing here is
// persisted or mutated after construction.
package domain

// PageInfo describes the pagination block (`records`) Gong attaches to every
// list response. Cursor is an opaque token; empty means there is no next page.
type PageInfo struct {
	TotalRecords      int    `json:"totalRecords"`
	CurrentPageSize   int    `json:"currentPageSize"`
	CurrentPageNumber int    `json:"currentPageNumber"`
	Cursor            string `json:"cursor,omitempty"`
}

// Call is the minimal call shape returned by GET /calls and embedded as
// `metaData` in extensive responses. Only ID is guaranteed; everything else
// may be absent depending on the call's source system.
type Call struct {
	ID            string `json:"id"`
	URL           string `json:"url,omitempty"`
	Title         string `json:"title,omitempty"`
	Scheduled     string `json:"scheduled,omitempty"`
	Started       string `json:"started,omitempty"`
	Duration      int    `json:"duration,omitempty"`
	PrimaryUserID string `json:"primaryUserId,omitempty"`
	Direction     string `json:"direction,omitempty"`
	System        string `json:"system,omitempty"`
	Scope         string `json:"scope,omitempty"`
	Media         string `json:"media,omitempty"`
	Language      string `json:"language,omitempty"`
	WorkspaceID   string `json:"workspaceId,omitempty"`
	MeetingURL    string `json:"meetingUrl,omitempty"`
	IsPrivate     *bool  `json:"isPrivate,omitempty"`
	Purpose       string `json:"purpose,omitempty"`
}

// Party is one participant on a call. SpeakerID joins a party to the
// monologues it owns in the call's transcript.
type Party struct {
	ID           string `json:"id,omitempty"`
	EmailAddress string `json:"emailAddress,omitempty"`
	Name         string `json:"name,omitempty"`
	Title        string `json:"title,omitempty"`
	UserID       string `json:"userId,omitempty"`
	SpeakerID    string `json:"speakerId,omitempty"`
	Affiliation  string `json:"affiliation,omitempty"`
	PhoneNumber  string `json:"phoneNumber,omitempty"`
}

// OutlineItem is one bullet inside an outline section.
type OutlineItem struct {
	Text      string  `json:"text"`
	StartTime float64 `json:"startTime,omitempty"`
}

// OutlineSection is one block of the AI-generated call outline.
type OutlineSection struct {
	Section   string        `json:"section"`
	StartTime float64       `json:"startTime,omitempty"`
	Duration  int           `json:"duration,omitempty"`
	Items     []OutlineItem `json:"items,omitempty"`
}

// KeyPoint is a single AI-generated key point.
type KeyPoint struct {
	Text string `json:"text"`
}

// ActionItem is an AI-detected action item snippet.
type ActionItem struct {
	Snippet string `json:"snippet"`
}

// PointsOfInterest groups AI-detected moments worth surfacing.
type PointsOfInterest struct {
	ActionItems []ActionItem `json:"actionItems,omitempty"`
}

// Topic is one discussed topic and how long it ran, in seconds.
type Topic struct {
	Name     string `json:"name"`
	Duration int    `json:"duration,omitempty"`
}

// TrackerOccurrence reports how often a configured tracker fired on a call.
type TrackerOccurrence struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Count int    `json:"count,omitempty"`
}

// CallOutcome is the AI-classified outcome of a call.
type CallOutcome struct {
	ID       string `json:"id,omitempty"`
	Category string `json:"category,omitempty"`
	Name     string `json:"name,omitempty"`
}

// CallContent carries the AI-generated content of a call. Every field is
// opt-in on the API side and therefore optional here.
type CallContent struct {
	Brief            string              `json:"brief,omitempty"`
	Outline          []OutlineSection    `json:"outline,omitempty"`
	KeyPoints        []KeyPoint          `json:"keyPoints,omitempty"`
	Topics           []Topic             `json:"topics,omitempty"`
	PointsOfInterest *PointsOfInterest   `json:"pointsOfInterest,omitempty"`
	CallOutcome      *CallOutcome        `json:"callOutcome,omitempty"`
	Trackers         []TrackerOccurrence `json:"trackers,omitempty"`
}

// SpeakerStat is per-speaker talk time in seconds.
type SpeakerStat struct {
	ID       string  `json:"id,omitempty"`
	UserID   string  `json:"userId,omitempty"`
	TalkTime float64 `json:"talkTime,omitempty"`
}

// InteractionStat is one named interaction metric.
type InteractionStat struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Questions counts questions asked by each side of the call.
type Questions struct {
	CompanyCount    int `json:"companyCount,omitempty"`
	NonCompanyCount int `json:"nonCompanyCount,omitempty"`
}

// Interaction groups the interaction statistics of a call.
type Interaction struct {
	Speakers         []SpeakerStat     `json:"speakers,omitempty"`
	InteractionStats []InteractionStat `json:"interactionStats,omitempty"`
	Questions        *Questions        `json:"questions,omitempty"`
}

// PublicComment is a collaboration comment visible to the whole workspace.
type PublicComment struct {
	Comment        string  `json:"comment"`
	Posted         string  `json:"posted,omitempty"`
	PostedBy       string  `json:"postedBy,omitempty"`
	AudioStartTime float64 `json:"audioStartTime,omitempty"`
}

// Collaboration groups the collaboration artifacts of a call.
type Collaboration struct {
	PublicComments []PublicComment `json:"publicComments,omitempty"`
}

// ExtensiveCall is the detailed call shape returned by POST /calls/extensive.
// The nested blocks are only populated when the request's content selector
// asked for them.
type ExtensiveCall struct {
	MetaData      Call           `json:"metaData"`
	Parties       []Party        `json:"parties,omitempty"`
	Content       *CallContent   `json:"content,omitempty"`
	Interaction   *Interaction   `json:"interaction,omitempty"`
	Collaboration *Collaboration `json:"collaboration,omitempty"`
}

// Sentence is one transcribed sentence; Start and End are milliseconds from
// the beginning of the call.
type Sentence struct {
	Start int64  `json:"start"`
	End   int64  `json:"end"`
	Text  string `json:"text"`
}

// Monologue is an uninterrupted stretch of speech by a single speaker.
// Sentences are chronological; monologues arrive in source order and are
// never re-sorted.
type Monologue struct {
	SpeakerID string     `json:"speakerId"`
	Topic     string     `json:"topic,omitempty"`
	Sentences []Sentence `json:"sentences"`
}

// CallTranscript is the full transcript of one call.
type CallTranscript struct {
	CallID     string      `json:"callId"`
	Transcript []Monologue `json:"transcript"`
}

// SpokenLanguage is one language a user speaks.
type SpokenLanguage struct {
	Language string `json:"language"`
	Primary  bool   `json:"primary,omitempty"`
}

// User is a Gong user identity record.
type User struct {
	ID              string           `json:"id"`
	EmailAddress    string           `json:"emailAddress,omitempty"`
	FirstName       string           `json:"firstName,omitempty"`
	LastName        string           `json:"lastName,omitempty"`
	Title           string           `json:"title,omitempty"`
	PhoneNumber     string           `json:"phoneNumber,omitempty"`
	Created         string           `json:"created,omitempty"`
	Active          *bool            `json:"active,omitempty"`
	ManagerID       string           `json:"managerId,omitempty"`
	SpokenLanguages []SpokenLanguage `json:"spokenLanguages,omitempty"`
}

// TrackerPhrase is the keyword list a tracker watches in one language.
type TrackerPhrase struct {
	Language string   `json:"language,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}

// Tracker is a keyword-tracking definition from workspace settings.
type Tracker struct {
	ID          string          `json:"trackerId"`
	Name        string          `json:"trackerName"`
	WorkspaceID string          `json:"workspaceId,omitempty"`
	Affiliation string          `json:"affiliation,omitempty"`
	SaidAt      string          `json:"saidAt,omitempty"`
	Phrases     []TrackerPhrase `json:"phrases,omitempty"`
}

// Workspace is an organizational container for calls and users.
type Workspace struct {
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// LibraryFolder is a curated folder in the call library.
type LibraryFolder struct {
	ID             string `json:"id"`
	Name           string `json:"name,omitempty"`
	ParentFolderID string `json:"parentFolderId,omitempty"`
	CreatedBy      string `json:"createdBy,omitempty"`
	Updated        string `json:"updated,omitempty"`
}

// Snippet marks an inclusive second range of a call highlighted by a curator.
// Either bound may be absent in the source payload.
type Snippet struct {
	FromSec *int `json:"fromSec,omitempty"`
	ToSec   *int `json:"toSec,omitempty"`
}

// FolderCall is one call curated into a library folder.
type FolderCall struct {
	ID      string   `json:"id"`
	Title   string   `json:"title,omitempty"`
	AddedBy string   `json:"addedBy,omitempty"`
	Created string   `json:"created,omitempty"`
	Snippet *Snippet `json:"snippet,omitempty"`
	Note    string   `json:"note,omitempty"`
}

// FolderContent is the listing of a single library folder.
type FolderContent struct {
	ID    string       `json:"id"`
	Name  string       `json:"name,omitempty"`
	Calls []FolderCall `json:"calls,omitempty"`
}

// CallPage is one page of minimal calls.
type CallPage struct {
	Calls   []Call
	Records PageInfo
}

// ExtensiveCallPage is one page of detailed calls.
type ExtensiveCallPage struct {
	Calls   []ExtensiveCall
	Records PageInfo
}

// UserPage is one page of users.
type UserPage struct {
	Users   []User
	Records PageInfo
}
