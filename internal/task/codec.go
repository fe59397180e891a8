package task

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// Delimiter separates the four record fields.
	Delimiter = ','

	// EscapeMarker precedes a literal delimiter inside a field.
	EscapeMarker = '\\'
)

// Decode errors. Callers that skip bad lines match these with errors.Is.
var (
	ErrMalformedRecord      = errors.New("malformed record")
	ErrInvalidID            = errors.New("invalid task id")
	ErrInvalidCompletedFlag = errors.New("invalid completed flag")
)

// EncodeRecord renders t as one line of text: id,completed,title,notes.
// The completed flag is written as 0 or 1. Delimiters inside title and
// notes are escaped; line breaks are folded to single spaces because the
// format is line oriented.
func EncodeRecord(t Task) string {
	completed := "0"
	if t.Completed {
		completed = "1"
	}
	var b strings.Builder
	b.WriteString(strconv.Itoa(t.ID))
	b.WriteByte(Delimiter)
	b.WriteString(completed)
	b.WriteByte(Delimiter)
	b.WriteString(escapeField(t.Title))
	b.WriteByte(Delimiter)
	b.WriteString(escapeField(t.Notes))
	return b.String()
}

// DecodeRecord parses one line of text back into a Task. It reports
// ErrMalformedRecord if the line has fewer than four fields, ErrInvalidID
// if the id field is not an integer, and ErrInvalidCompletedFlag if the
// completed field is not 0 or 1. Fields past the fourth are ignored.
func DecodeRecord(line string) (Task, error) {
	fields := splitRecord(line)
	if len(fields) < 4 {
		return Task{}, fmt.Errorf("%w: got %d field(s), want 4", ErrMalformedRecord, len(fields))
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return Task{}, fmt.Errorf("%w: %q", ErrInvalidID, fields[0])
	}

	var completed bool
	switch fields[1] {
	case "0":
		completed = false
	case "1":
		completed = true
	default:
		return Task{}, fmt.Errorf("%w: %q", ErrInvalidCompletedFlag, fields[1])
	}

	return Task{ID: id, Title: fields[2], Notes: fields[3], Completed: completed}, nil
}

func escapeField(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case Delimiter:
			b.WriteByte(EscapeMarker)
			b.WriteByte(Delimiter)
		case '\n', '\r':
			b.WriteByte(' ')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// splitRecord splits a line on unescaped delimiters. An escape marker
// immediately followed by the delimiter yields a literal delimiter; an
// escape marker followed by anything else passes through unchanged.
func splitRecord(line string) []string {
	fields := make([]string, 0, 4)
	var cur strings.Builder
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == EscapeMarker && i+1 < len(line) && line[i+1] == Delimiter:
			cur.WriteByte(Delimiter)
			i++
		case c == Delimiter:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	return append(fields, cur.String())
}
