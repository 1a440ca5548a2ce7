package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure of the batch run.
type Kind string

const (
	RootNotFound     Kind = "root_not_found"
	NoInputFiles     Kind = "no_input_files"
	ReadFailure      Kind = "read_failure"
	EmptyAfterFilter Kind = "empty_after_filter"
	WriteFailure     Kind = "write_failure"
	FatalUnexpected  Kind = "fatal_unexpected"
)

// Error is a classified error with the file or directory it concerns.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

// New creates a classified error.
func New(kind Kind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}

func (e *Error) Error() string {
	switch {
	case e.Path != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
	case e.Path != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Path)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return string(e.Kind)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf extracts the Kind from err. Unclassified errors are FatalUnexpected.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return FatalUnexpected
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// IsFatal reports whether a failure of this kind aborts the whole run.
func IsFatal(kind Kind) bool {
	switch kind {
	case RootNotFound, NoInputFiles, FatalUnexpected:
		return true
	default:
		return false
	}
}

// Hints returns remediation hints shown next to a fatal diagnostic.
func Hints(kind Kind) []string {
	switch kind {
	case RootNotFound:
		return []string{
			"Check that the path exists and is spelled correctly",
			"Quote the path if it contains spaces",
		}
	case NoInputFiles:
		return []string{
			"Check that the folder contains .srt or .vtt files",
			"Files inside the Subtitles output folder are ignored",
		}
	case WriteFailure:
		return []string{
			"Check write permissions on the output folder",
			"Close any program that has the output files open",
		}
	case ReadFailure:
		return []string{
			"Check read permissions on the subtitle file",
			"Make sure the file is saved as UTF-8 or UTF-16 text",
		}
	default:
		return []string{
			"Check that you have permission to read and write the folder",
			"Make sure no other program is using the files",
			"Re-run with --log-level debug for more detail",
		}
	}
}
