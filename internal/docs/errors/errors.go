package errors

// Package errors provides sentinel errors for documentation tree traversal.
// These enable consistent classification of build failures.

import "errors"

var (
	// ErrDocsDirWalkFailed indicates listing a docs directory failed for a reason other than absence.
	ErrDocsDirWalkFailed = errors.New("documentation directory walk failed")

	// ErrStatFailed indicates classifying a directory entry as file or directory failed.
	ErrStatFailed = errors.New("documentation entry stat failed")

	// ErrFileReadFailed indicates reading content from a documentation file failed.
	ErrFileReadFailed = errors.New("documentation file read failed")

	// ErrInvalidEncoding indicates a documentation file is not valid UTF-8 text.
	ErrInvalidEncoding = errors.New("documentation file is not valid UTF-8")
)
