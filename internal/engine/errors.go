package engine

import "errors"

// Kinds of user-visible failure. Match with errors.Is against a *UserError.
var (
	ErrMissingInput          = errors.New("missing input")
	ErrInvalidURL            = errors.New("invalid youtube url")
	ErrTranscriptUnavailable = errors.New("transcript unavailable")
	ErrTranslationFailed     = errors.New("translation failed")
)

// ErrEmptyText is returned by translators asked to translate nothing.
var ErrEmptyText = errors.New("empty text")

// Messages shown to users, one per failure kind.
const (
	MsgMissingInput          = "Please provide a valid YouTube video link."
	MsgInvalidURL            = "Invalid YouTube URL. Please try again."
	MsgTranscriptUnavailable = "Unable to fetch the transcript. Please check if the video has captions enabled."
	MsgTranslationFailed     = "Unable to translate the transcript. Please try again later."
)

// UserError is a pipeline failure that carries the message a user should see.
// Err holds the underlying cause when there is one; it is never shown.
type UserError struct {
	Kind    error
	Message string
	Err     error
}

func (e *UserError) Error() string { return e.Message }

// Is matches the failure kind.
func (e *UserError) Is(target error) bool { return target == e.Kind }

func (e *UserError) Unwrap() error { return e.Err }

func newUserError(kind error, msg string, cause error) *UserError {
	return &UserError{Kind: kind, Message: msg, Err: cause}
}
