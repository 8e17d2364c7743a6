package format

import (
	"fmt"
	"strings"

	"gong-mcp/internal/domain"
)

const untitledCall = "Untitled Call"

// CallSummary renders the rich detail view of one call: a heading, a compact
// metadata line, and one section per content block that is actually present.
func CallSummary(call *domain.ExtensiveCall) string {
	meta := call.MetaData

	title := untitledCall
	if meta.Title != "" {
		title = meta.Title
	}

	var b strings.Builder
	b.WriteString("## " + title + "\n\n")
	b.WriteString(metadataLine(meta) + "\n")
	if meta.URL != "" {
		b.WriteString("**URL:** " + meta.URL + "\n")
	}

	if len(call.Parties) > 0 {
		b.WriteString("\n### Participants\n")
		b.WriteString(participants(call.Parties) + "\n")
	}

	if c := call.Content; c != nil {
		if c.Brief != "" {
			b.WriteString("\n### Summary\n")
			b.WriteString(c.Brief + "\n")
		}
		if len(c.KeyPoints) > 0 {
			b.WriteString("\n### Key Points\n")
			for _, kp := range c.KeyPoints {
				b.WriteString("- " + kp.Text + "\n")
			}
		}
		if c.PointsOfInterest != nil && len(c.PointsOfInterest.ActionItems) > 0 {
			b.WriteString("\n### Action Items\n")
			for _, ai := range c.PointsOfInterest.ActionItems {
				b.WriteString("- " + ai.Snippet + "\n")
			}
		}
		if len(c.Topics) > 0 {
			b.WriteString("\n### Topics\n")
			topics := make([]string, len(c.Topics))
			for i, t := range c.Topics {
				topics[i] = fmt.Sprintf("%s (%s)", t.Name, minutes(t.Duration))
			}
			b.WriteString(strings.Join(topics, ", ") + "\n")
		}
		if len(c.Outline) > 0 {
			b.WriteString("\n### Outline\n")
			for i, section := range c.Outline {
				if i > 0 {
					b.WriteString("\n")
				}
				b.WriteString(fmt.Sprintf("**%s (%s)**\n", section.Section, minutes(section.Duration)))
				for _, item := range section.Items {
					b.WriteString("- " + item.Text + "\n")
				}
			}
		}
	}

	if in := call.Interaction; in != nil && len(in.InteractionStats) > 0 {
		b.WriteString("\n### Interaction Statistics\n")
		for _, s := range in.InteractionStats {
			b.WriteString(fmt.Sprintf("- %s: %g\n", s.Name, s.Value))
		}
	}

	if co := call.Collaboration; co != nil && len(co.PublicComments) > 0 {
		b.WriteString("\n### Comments\n")
		for _, c := range co.PublicComments {
			if c.PostedBy != "" {
				b.WriteString(fmt.Sprintf("- %s: %s\n", c.PostedBy, c.Comment))
			} else {
				b.WriteString("- " + c.Comment + "\n")
			}
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// metadataLine joins the present metadata sub-fields with " | " separators.
func metadataLine(meta domain.Call) string {
	parts := []string{"**ID:** " + meta.ID}
	if d := callDate(meta); d != "" {
		parts = append(parts, "**Date:** "+d)
	}
	if meta.Duration != 0 {
		parts = append(parts, "**Duration:** "+minutes(meta.Duration))
	}
	if meta.Scope != "" {
		parts = append(parts, "**Scope:** "+meta.Scope)
	}
	return strings.Join(parts, " | ")
}

// participants renders Name (Affiliation) pairs, comma-joined, with the
// affiliation omitted when absent.
func participants(parties []domain.Party) string {
	out := make([]string, len(parties))
	for i, p := range parties {
		name := partyDisplayName(p)
		if p.Affiliation != "" {
			out[i] = fmt.Sprintf("%s (%s)", name, p.Affiliation)
		} else {
			out[i] = name
		}
	}
	return strings.Join(out, ", ")
}

func partyDisplayName(p domain.Party) string {
	switch {
	case p.Name != "":
		return p.Name
	case p.EmailAddress != "":
		return p.EmailAddress
	case p.ID != "":
		return p.ID
	default:
		return "Unknown"
	}
}

// CallDetails renders a single call's metadata as a heading followed by one
// labeled line per present attribute.
func CallDetails(call *domain.Call) string {
	title := untitledCall
	if call.Title != "" {
		title = call.Title
	}

	var b strings.Builder
	b.WriteString("## " + title + "\n\n")
	b.WriteString("**ID:** " + call.ID + "\n")
	writeLine(&b, "Scheduled", call.Scheduled)
	writeLine(&b, "Started", call.Started)
	if call.Duration != 0 {
		writeLine(&b, "Duration", minutes(call.Duration))
	}
	writeLine(&b, "Direction", call.Direction)
	writeLine(&b, "Scope", call.Scope)
	writeLine(&b, "Media", call.Media)
	writeLine(&b, "Language", call.Language)
	writeLine(&b, "Workspace ID", call.WorkspaceID)
	writeLine(&b, "Host User ID", call.PrimaryUserID)
	writeLine(&b, "URL", call.URL)
	if call.IsPrivate != nil {
		writeLine(&b, "Private", yesNo(call.IsPrivate))
	}
	return strings.TrimRight(b.String(), "\n")
}

// UserDetails renders a single user as a heading followed by one labeled
// line per present attribute.
func UserDetails(user *domain.User) string {
	name := strings.TrimSpace(user.FirstName + " " + user.LastName)
	if name == "" {
		name = "Unknown"
	}

	var b strings.Builder
	b.WriteString("## " + name + "\n\n")
	b.WriteString("**ID:** " + user.ID + "\n")
	writeLine(&b, "Email", user.EmailAddress)
	writeLine(&b, "Title", user.Title)
	writeLine(&b, "Phone", user.PhoneNumber)
	if user.Active != nil {
		writeLine(&b, "Active", yesNo(user.Active))
	}
	writeLine(&b, "Manager ID", user.ManagerID)
	writeLine(&b, "Created", user.Created)
	if len(user.SpokenLanguages) > 0 {
		writeLine(&b, "Spoken Languages", spokenLanguages(user.SpokenLanguages))
	}
	return strings.TrimRight(b.String(), "\n")
}

func spokenLanguages(langs []domain.SpokenLanguage) string {
	out := make([]string, len(langs))
	for i, l := range langs {
		if l.Primary {
			out[i] = l.Language + " (primary)"
		} else {
			out[i] = l.Language
		}
	}
	return strings.Join(out, ", ")
}

func writeLine(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	b.WriteString("**" + label + ":** " + value + "\n")
}
