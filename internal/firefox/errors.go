package firefox

import "errors"

var (
	// ErrNotFound indicates an expected store file is missing from the
	// profile directory. The browser creates all three stores on first run,
	// so absence means the profile is uninitialized or malformed; stores are
	// never auto-created here.
	ErrNotFound = errors.New("store file not found")

	// ErrParse indicates a store file exists but holds malformed JSON.
	ErrParse = errors.New("malformed store document")

	// ErrProfileOutOfRange indicates a profile index past the end of the
	// profiles.ini list.
	ErrProfileOutOfRange = errors.New("profile index out of range")
)
