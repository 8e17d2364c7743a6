// Package format renders validated Gong API data into compact, stable text
// for LLM consumption. Every function here is pure: formatting the same
// value twice yields byte-identical output. Downstream consumers rely on the
// exact text shapes, so table columns, placeholders, and truncation rules
// are fixed.
package format

import (
	"fmt"
	"math"
	"strings"
	"time"

	"gong-mcp/internal/domain"
)

// escapeCell makes free text safe for a markdown table cell: literal pipes
// are escaped and line breaks flattened so a value can never break its row.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", `\|`)
}

// orDash substitutes the fixed placeholder for missing optional values.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// truncate hard-caps s at n characters (code points).
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// minutes renders a duration in seconds rounded to the nearest whole minute.
func minutes(seconds int) string {
	return fmt.Sprintf("%dm", int(math.Round(float64(seconds)/60)))
}

// dateOnly reduces a timestamp to its date part. Unparseable input passes
// through unchanged rather than being dropped.
func dateOnly(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return t.Format("2006-01-02")
}

// table renders a pipe-delimited markdown table with a separator row of
// dashes matching the column count.
func table(header []string, rows [][]string) string {
	var b strings.Builder
	b.WriteString("| " + strings.Join(header, " | ") + " |\n")
	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	b.WriteString("|" + strings.Join(sep, "|") + "|\n")
	for _, row := range rows {
		b.WriteString("| " + strings.Join(row, " | ") + " |\n")
	}
	return b.String()
}

// listHeader is the fixed first line of every list-style response.
func listHeader(label string, count int) string {
	return fmt.Sprintf("**%s** (%d total)", label, count)
}

// cursorNote exposes a pagination cursor verbatim so the caller can request
// the next page. Empty when there is no further page.
func cursorNote(records domain.PageInfo) string {
	if records.Cursor == "" {
		return ""
	}
	return fmt.Sprintf("\nMore results available. Pass cursor `%s` to fetch the next page.", records.Cursor)
}
