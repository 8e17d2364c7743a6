package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gong-mcp/internal/domain"
	"gong-mcp/internal/format"
)

func TestCallSummaryFull(t *testing.T) {
	call := &domain.ExtensiveCall{
		MetaData: domain.Call{
			ID:       "123",
			Title:    "Quarterly Review",
			Started:  "2024-03-01T10:00:00Z",
			Duration: 2700,
			Scope:    "External",
			URL:      "https://app.gong.io/call?id=123",
		},
		Parties: []domain.Party{
			{Name: "Ada Lovelace", Affiliation: "Internal", SpeakerID: "s1"},
			{Name: "Grace Hopper", Affiliation: "External", SpeakerID: "s2"},
			{EmailAddress: "silent@example.com"},
		},
		Content: &domain.CallContent{
			Brief:     "A productive quarterly review.",
			KeyPoints: []domain.KeyPoint{{Text: "Renewal confirmed"}, {Text: "Upsell discussed"}},
			PointsOfInterest: &domain.PointsOfInterest{
				ActionItems: []domain.ActionItem{{Snippet: "Send the proposal by Friday"}},
			},
			Topics: []domain.Topic{{Name: "Pricing", Duration: 600}, {Name: "Roadmap", Duration: 1200}},
			Outline: []domain.OutlineSection{
				{Section: "Introductions", Duration: 300, Items: []domain.OutlineItem{{Text: "Team intros"}}},
				{Section: "Renewal", Duration: 900, Items: []domain.OutlineItem{{Text: "Terms"}, {Text: "Timeline"}}},
			},
		},
	}
	out := format.CallSummary(call)

	assert.Contains(t, out, "## Quarterly Review")
	assert.Contains(t, out, "**ID:** 123 | **Date:** 2024-03-01 | **Duration:** 45m | **Scope:** External")
	assert.Contains(t, out, "**URL:** https://app.gong.io/call?id=123")
	assert.Contains(t, out, "### Participants")
	assert.Contains(t, out, "Ada Lovelace (Internal), Grace Hopper (External), silent@example.com")
	assert.Contains(t, out, "### Summary\nA productive quarterly review.")
	assert.Contains(t, out, "### Key Points\n- Renewal confirmed\n- Upsell discussed")
	assert.Contains(t, out, "### Action Items\n- Send the proposal by Friday")
	assert.Contains(t, out, "### Topics\nPricing (10m), Roadmap (20m)")
	assert.Contains(t, out, "**Introductions (5m)**\n- Team intros")
	assert.Contains(t, out, "**Renewal (15m)**\n- Terms\n- Timeline")
	// Blank line between outline sections.
	assert.Contains(t, out, "- Team intros\n\n**Renewal (15m)**")
}

func TestCallSummaryMinimal(t *testing.T) {
	out := format.CallSummary(&domain.ExtensiveCall{MetaData: domain.Call{ID: "9"}})

	assert.Contains(t, out, "## Untitled Call")
	assert.Contains(t, out, "**ID:** 9")
	assert.NotContains(t, out, "**Date:**")
	assert.NotContains(t, out, "**URL:**")
	assert.NotContains(t, out, "### Participants")
	assert.NotContains(t, out, "### Summary")
	assert.NotContains(t, out, "### Outline")
}

func TestCallSummaryIdempotent(t *testing.T) {
	call := &domain.ExtensiveCall{
		MetaData: domain.Call{ID: "1", Title: "T", Started: "2024-01-01T00:00:00Z"},
		Content:  &domain.CallContent{Brief: "b"},
	}
	assert.Equal(t, format.CallSummary(call), format.CallSummary(call))
}

func TestCallDetails(t *testing.T) {
	private := true
	call := &domain.Call{
		ID:            "42",
		Title:         "Kickoff",
		Started:       "2024-02-02T09:00:00Z",
		Duration:      1500,
		Direction:     "Outbound",
		Scope:         "Internal",
		Media:         "Video",
		Language:      "eng",
		WorkspaceID:   "7",
		PrimaryUserID: "88",
		URL:           "https://app.gong.io/call?id=42",
		IsPrivate:     &private,
	}
	out := format.CallDetails(call)

	assert.Contains(t, out, "## Kickoff")
	assert.Contains(t, out, "**ID:** 42")
	assert.Contains(t, out, "**Duration:** 25m")
	assert.Contains(t, out, "**Direction:** Outbound")
	assert.Contains(t, out, "**Workspace ID:** 7")
	assert.Contains(t, out, "**Host User ID:** 88")
	assert.Contains(t, out, "**Private:** Yes")

	bare := format.CallDetails(&domain.Call{ID: "1"})
	assert.Contains(t, bare, "## Untitled Call")
	assert.Contains(t, bare, "**ID:** 1")
	assert.NotContains(t, bare, "**Duration:**")
	assert.NotContains(t, bare, "**Private:**")
}

func TestUserDetails(t *testing.T) {
	active := true
	user := &domain.User{
		ID:           "55",
		FirstName:    "Ada",
		LastName:     "Lovelace",
		EmailAddress: "ada@example.com",
		Title:        "Engineer",
		Active:       &active,
		ManagerID:    "1",
		Created:      "2023-06-01T00:00:00Z",
		SpokenLanguages: []domain.SpokenLanguage{
			{Language: "en-US", Primary: true},
			{Language: "fr-FR"},
		},
	}
	out := format.UserDetails(user)

	assert.Contains(t, out, "## Ada Lovelace")
	assert.Contains(t, out, "**Email:** ada@example.com")
	assert.Contains(t, out, "**Active:** Yes")
	assert.Contains(t, out, "**Spoken Languages:** en-US (primary), fr-FR")

	bare := format.UserDetails(&domain.User{ID: "2"})
	assert.Contains(t, bare, "## Unknown")
	assert.NotContains(t, bare, "**Email:**")
}
