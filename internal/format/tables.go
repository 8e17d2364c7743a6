package format

import (
	"fmt"
	"strings"

	"gong-mcp/internal/domain"
)

// Calls renders a page of minimal calls as a table of ID, Title, Date,
// Duration, and Scope.
func Calls(calls []domain.Call, records domain.PageInfo) string {
	count := records.TotalRecords
	if count == 0 {
		count = len(calls)
	}
	header := listHeader("Calls", count)
	if len(calls) == 0 {
		return header + "\n\nNo calls found."
	}

	rows := make([][]string, len(calls))
	for i, c := range calls {
		rows[i] = []string{
			c.ID,
			escapeCell(truncate(orDash(c.Title), 50)),
			orDash(callDate(c)),
			callDuration(c),
			orDash(c.Scope),
		}
	}
	out := header + "\n\n" + table([]string{"ID", "Title", "Date", "Duration", "Scope"}, rows)
	return out + cursorNote(records)
}

// ExtensiveCalls renders the metadata of a detailed call page with the same
// columns as Calls. Used by search, where the content selector is omitted and
// only metadata comes back.
func ExtensiveCalls(calls []domain.ExtensiveCall, records domain.PageInfo) string {
	minimal := make([]domain.Call, len(calls))
	for i, c := range calls {
		minimal[i] = c.MetaData
	}
	return Calls(minimal, records)
}

func callDate(c domain.Call) string {
	switch {
	case c.Started != "":
		return dateOnly(c.Started)
	case c.Scheduled != "":
		return dateOnly(c.Scheduled)
	default:
		return ""
	}
}

func callDuration(c domain.Call) string {
	if c.Duration == 0 {
		return "-"
	}
	return minutes(c.Duration)
}

// Users renders a page of users as a table of ID, Name, Email, Title, and
// Active.
func Users(users []domain.User, records domain.PageInfo) string {
	count := records.TotalRecords
	if count == 0 {
		count = len(users)
	}
	header := listHeader("Users", count)
	if len(users) == 0 {
		return header + "\n\nNo users found."
	}

	rows := make([][]string, len(users))
	for i, u := range users {
		rows[i] = []string{
			u.ID,
			escapeCell(userName(u)),
			orDash(u.EmailAddress),
			escapeCell(truncate(orDash(u.Title), 30)),
			yesNo(u.Active),
		}
	}
	out := header + "\n\n" + table([]string{"ID", "Name", "Email", "Title", "Active"}, rows)
	return out + cursorNote(records)
}

func userName(u domain.User) string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return "-"
	}
	return name
}

func yesNo(b *bool) string {
	if b != nil && *b {
		return "Yes"
	}
	return "No"
}

// Workspaces renders all workspaces as a table of ID, Name, and Description.
func Workspaces(workspaces []domain.Workspace) string {
	header := listHeader("Workspaces", len(workspaces))
	if len(workspaces) == 0 {
		return header + "\n\nNo workspaces found."
	}

	rows := make([][]string, len(workspaces))
	for i, w := range workspaces {
		rows[i] = []string{
			w.ID,
			escapeCell(truncate(orDash(w.Name), 40)),
			escapeCell(truncate(orDash(w.Description), 60)),
		}
	}
	return header + "\n\n" + table([]string{"ID", "Name", "Description"}, rows)
}

// LibraryFolders renders a workspace's library folders as a table of ID,
// Name, and Parent Folder.
func LibraryFolders(folders []domain.LibraryFolder) string {
	header := listHeader("Library Folders", len(folders))
	if len(folders) == 0 {
		return header + "\n\nNo library folders found."
	}

	rows := make([][]string, len(folders))
	for i, f := range folders {
		parent := "Root"
		if f.ParentFolderID != "" {
			parent = f.ParentFolderID
		}
		rows[i] = []string{
			f.ID,
			escapeCell(truncate(orDash(f.Name), 50)),
			parent,
		}
	}
	return header + "\n\n" + table([]string{"ID", "Name", "Parent Folder"}, rows)
}

// FolderCalls renders the calls curated into a library folder as a table of
// Call ID, Title, Added By, Added On, Snippet, and Note.
func FolderCalls(content *domain.FolderContent) string {
	header := listHeader("Folder Calls", len(content.Calls))
	if len(content.Calls) == 0 {
		return header + "\n\nNo calls found."
	}

	rows := make([][]string, len(content.Calls))
	for i, c := range content.Calls {
		added := "-"
		if c.Created != "" {
			added = dateOnly(c.Created)
		}
		rows[i] = []string{
			c.ID,
			escapeCell(truncate(orDash(c.Title), 50)),
			escapeCell(orDash(c.AddedBy)),
			added,
			snippetRange(c.Snippet),
			escapeCell(folderNote(c.Note)),
		}
	}
	return header + "\n\n" + table([]string{"Call ID", "Title", "Added By", "Added On", "Snippet", "Note"}, rows)
}

// snippetRange renders an inclusive second range as M:SS–M:SS, minutes
// unpadded and seconds zero-padded to two digits. Both bounds must be
// present; a half-open snippet renders the placeholder.
func snippetRange(s *domain.Snippet) string {
	if s == nil || s.FromSec == nil || s.ToSec == nil {
		return "-"
	}
	return fmt.Sprintf("%s–%s", clockTime(*s.FromSec), clockTime(*s.ToSec))
}

func clockTime(sec int) string {
	return fmt.Sprintf("%d:%02d", sec/60, sec%60)
}

// folderNote caps curator notes at 60 characters, marking the cut with an
// ellipsis. Shorter notes pass through unmodified.
func folderNote(note string) string {
	if note == "" {
		return "-"
	}
	r := []rune(note)
	if len(r) <= 60 {
		return note
	}
	return string(r[:60]) + "…"
}

// Trackers renders tracker definitions as a table of Name, Affiliation,
// Tracks, and Keywords. At most five keywords are shown across all
// languages, regardless of how many exist.
func Trackers(trackers []domain.Tracker) string {
	header := listHeader("Trackers", len(trackers))
	if len(trackers) == 0 {
		return header + "\n\nNo trackers found."
	}

	rows := make([][]string, len(trackers))
	for i, t := range trackers {
		rows[i] = []string{
			escapeCell(truncate(orDash(t.Name), 40)),
			orDash(t.Affiliation),
			orDash(t.SaidAt),
			escapeCell(trackerKeywords(t)),
		}
	}
	return header + "\n\n" + table([]string{"Name", "Affiliation", "Tracks", "Keywords"}, rows)
}

func trackerKeywords(t domain.Tracker) string {
	var keywords []string
	for _, p := range t.Phrases {
		for _, k := range p.Keywords {
			if len(keywords) == 5 {
				return strings.Join(keywords, ", ")
			}
			keywords = append(keywords, k)
		}
	}
	if len(keywords) == 0 {
		return "-"
	}
	return strings.Join(keywords, ", ")
}
