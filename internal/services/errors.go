package services

import (
	"errors"

	"football-club/matchday/internal/constants"
)

// ErrorKind classifies expected business failures.
type ErrorKind string

const (
	KindNotFound    ErrorKind = "NOT_FOUND"
	KindValidation  ErrorKind = "VALIDATION"
	KindEligibility ErrorKind = "ELIGIBILITY"
	KindWindow      ErrorKind = "WINDOW"
	KindDelivery    ErrorKind = "DELIVERY"
)

// DomainError is a typed business rejection. Two DomainErrors match with
// errors.Is when their codes are equal, so callers compare against the
// sentinels below even when a detail error is attached.
type DomainError struct {
	Kind    ErrorKind
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error { return e.Err }

func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	return ok && t.Code == e.Code
}

// Wrap returns a copy of e carrying cause as detail.
func (e *DomainError) Wrap(cause error) *DomainError {
	cp := *e
	cp.Err = cause
	return &cp
}

// WithMessage returns a copy of e with a more specific message.
func (e *DomainError) WithMessage(msg string) *DomainError {
	cp := *e
	cp.Message = msg
	return &cp
}

func newError(kind ErrorKind, code, msg string) *DomainError {
	return &DomainError{Kind: kind, Code: code, Message: msg}
}

var (
	ErrInvalidSeason        = newError(KindNotFound, constants.CodeInvalidSeason, constants.MsgInvalidSeason)
	ErrNoSeasonForDate      = newError(KindNotFound, constants.CodeNoSeasonForDate, constants.MsgNoSeasonForDate)
	ErrTemplateNotFound     = newError(KindNotFound, constants.CodeTemplateNotFound, constants.MsgTemplateNotFound)
	ErrMatchNotFound        = newError(KindNotFound, constants.CodeMatchNotFound, constants.MsgMatchNotFound)
	ErrNotificationNotFound = newError(KindNotFound, constants.CodeNotificationNotFound, constants.MsgNotificationNotFound)
	ErrMembershipNotFound   = newError(KindNotFound, constants.CodeMembershipNotFound, constants.MsgMembershipNotFound)
	ErrMemberNotFound       = newError(KindNotFound, constants.CodeMemberNotFound, constants.MsgMemberNotFound)

	ErrNotEligible = newError(KindEligibility, constants.CodeNotEligible, constants.MsgNotEligible)

	ErrVotingNotStarted       = newError(KindWindow, constants.CodeVotingNotStarted, constants.MsgVotingNotStarted)
	ErrVotingClosed           = newError(KindWindow, constants.CodeVotingClosed, constants.MsgVotingClosed)
	ErrPendingNoLongerAllowed = newError(KindWindow, constants.CodePendingNoLongerAllowed, constants.MsgPendingNoLongerAllowed)

	ErrDuplicateMembership = newError(KindValidation, constants.CodeDuplicateMembership, constants.MsgDuplicateMembership)
	ErrInvalidRange        = newError(KindValidation, constants.CodeInvalidRange, constants.MsgInvalidRange)
	ErrInvalidBounds       = newError(KindValidation, constants.CodeInvalidBounds, constants.MsgInvalidBounds)
	ErrInvalidDeadlines    = newError(KindValidation, constants.CodeInvalidDeadlines, constants.MsgInvalidDeadlines)
	ErrInvalidTransition   = newError(KindValidation, constants.CodeInvalidTransition, constants.MsgInvalidTransition)
	ErrInvalidInput        = newError(KindValidation, constants.CodeInvalidInput, "Invalid input")

	ErrDeliveryFailed = newError(KindDelivery, constants.CodeDeliveryFailed, constants.MsgDeliveryFailed)
)

// KindOf returns the kind of a DomainError in err's chain, or "" for
// infrastructure failures.
func KindOf(err error) ErrorKind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

func invalidInput(msg string) *DomainError {
	return ErrInvalidInput.WithMessage(msg)
}
