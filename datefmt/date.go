// Package datefmt converts between git's default log date format and a
// compact editable form suitable for a text prompt.
package datefmt

import (
	"fmt"
	"time"
)

// CommitLayout is the date format of default git log output:
// Tue Oct 8 11:59:23 2024 +0300
const CommitLayout = "Mon Jan 2 15:04:05 2006 -0700"

// commitLayoutPadded accepts the ctime-style space-padded day some git
// configurations emit.
const commitLayoutPadded = "Mon Jan _2 15:04:05 2006 -0700"

// EditableLayout is what the user edits, sortable and without the
// weekday: 2024.10.08 11:59:23 +0300
const EditableLayout = "2006.01.02 15:04:05 -0700"

// DateFormatError reports input that does not match the expected
// layout. It is never swallowed: a silently defaulted date would end up
// written into history.
type DateFormatError struct {
	Input  string
	Layout string
	Err    error
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("datefmt: %q does not match layout %q: %v", e.Input, e.Layout, e.Err)
}

func (e *DateFormatError) Unwrap() error { return e.Err }

// ToEditable converts a git commit date to the editable layout. The day
// of month is always zero-padded on the editable side.
func ToEditable(commitDate string) (string, error) {
	t, err := parseCommit(commitDate)
	if err != nil {
		return "", err
	}
	return t.Format(EditableLayout), nil
}

// ToCommitFormat converts an editable date back to the git layout. The
// weekday is recomputed from the date, never taken on faith. Days come
// out unpadded the way git writes them, so round-tripping a padded
// "Oct 08" normalizes to "Oct 8".
func ToCommitFormat(editableDate string) (string, error) {
	t, err := time.Parse(EditableLayout, editableDate)
	if err != nil {
		return "", &DateFormatError{Input: editableDate, Layout: EditableLayout, Err: err}
	}
	return t.Format(CommitLayout), nil
}

func parseCommit(s string) (time.Time, error) {
	t, err := time.Parse(CommitLayout, s)
	if err == nil {
		return t, nil
	}
	if t, perr := time.Parse(commitLayoutPadded, s); perr == nil {
		return t, nil
	}
	return time.Time{}, &DateFormatError{Input: s, Layout: CommitLayout, Err: err}
}
