package format

import (
	"fmt"
	"strings"

	"gong-mcp/internal/domain"
)

// Transcript renders one call's transcript as a character window over the
// canonical full text. Offset and maxLength address Unicode code points, the
// same unit used for the reported lengths, so a window boundary can never
// split a multi-byte character.
//
// Pagination contract: to continue reading, the caller re-requests with
// offset = previous offset + previous maxLength; consecutive windows
// concatenate with no gap and no overlap.
func Transcript(callID string, transcript *domain.CallTranscript, parties []domain.Party, offset, maxLength int) string {
	heading := "## Transcript for Call " + callID

	if len(transcript.Transcript) == 0 {
		return heading + "\n\nNo transcript available for this call."
	}

	full := []rune(transcriptText(transcript.Transcript, parties))
	total := len(full)

	start := offset
	if start > total {
		start = total
	}
	// Computed from the clamped start so a huge offset cannot wrap the sum
	// negative and break the slice bounds.
	end := start + maxLength
	if end < start || end > total {
		end = total
	}
	slice := string(full[start:end])

	truncatedStart := offset > 0
	truncatedEnd := end < total

	var b strings.Builder
	b.WriteString(heading + "\n\n")
	if truncatedStart || truncatedEnd {
		// 1-indexed inclusive range; the upper bound never exceeds the total.
		b.WriteString(fmt.Sprintf("Showing characters %d-%d of %d total\n\n", offset+1, end, total))
	}
	if truncatedStart {
		b.WriteString("[...truncated start...]\n")
	}
	b.WriteString(slice)
	if truncatedEnd {
		b.WriteString("\n[...truncated...]\n\n")
		b.WriteString(fmt.Sprintf("Transcript continues. Request again with offset=%d to read more.", end))
	}
	return b.String()
}

// transcriptText builds the canonical full transcript text: one line per
// monologue, speaker label in brackets, sentences space-joined, monologues
// separated by blank lines. All offset math is relative to this text.
func transcriptText(monologues []domain.Monologue, parties []domain.Party) string {
	labels := speakerLabels(parties)

	lines := make([]string, len(monologues))
	for i, m := range monologues {
		label, ok := labels[m.SpeakerID]
		if !ok {
			label = fallbackSpeakerLabel(m.SpeakerID)
		}
		texts := make([]string, len(m.Sentences))
		for j, s := range m.Sentences {
			texts[j] = s.Text
		}
		lines[i] = fmt.Sprintf("[%s]: %s", label, escapeCell(strings.Join(texts, " ")))
	}
	return strings.Join(lines, "\n\n")
}

// speakerLabels maps each party's speaker id to its display label, preferring
// the name, then the email address, then a synthesized label. With no party
// list every lookup misses and the synthesized fallback applies.
func speakerLabels(parties []domain.Party) map[string]string {
	labels := make(map[string]string, len(parties))
	for _, p := range parties {
		if p.SpeakerID == "" {
			continue
		}
		switch {
		case p.Name != "":
			labels[p.SpeakerID] = p.Name
		case p.EmailAddress != "":
			labels[p.SpeakerID] = p.EmailAddress
		default:
			labels[p.SpeakerID] = fallbackSpeakerLabel(p.SpeakerID)
		}
	}
	return labels
}

func fallbackSpeakerLabel(speakerID string) string {
	return "Speaker " + speakerID
}
