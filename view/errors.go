// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package view

import "fmt"

// Kind enumerates the ways a Change, Install, or Resolution can fail
// validation. Callers distinguish kinds with errors.As against *Error
// rather than string-matching.
type Kind int8

const (
	// KindChangeInvalid means a Change does not extend its claimed base
	// view by exactly one add or remove, or yields a non-distinct member
	// set.
	KindChangeInvalid Kind = iota
	// KindSourceUnknown means an Install's source view is not registered.
	KindSourceUnknown
	// KindCertificateInvalid means an Install's or Resolution's attached
	// certificate failed to verify.
	KindCertificateInvalid
	// KindEmptyIncrements means an Install carried no increments.
	KindEmptyIncrements
	// KindViewUnknown means a Resolution references an unregistered view.
	KindViewUnknown
	// KindFutureVote means a Resolution's claimed view is ahead of the
	// store's latest known view for that family.
	KindFutureVote
)

func (k Kind) String() string {
	switch k {
	case KindChangeInvalid:
		return "ChangeInvalid"
	case KindSourceUnknown:
		return "SourceUnknown"
	case KindCertificateInvalid:
		return "CertificateInvalid"
	case KindEmptyIncrements:
		return "EmptyIncrements"
	case KindViewUnknown:
		return "ViewUnknown"
	case KindFutureVote:
		return "FutureVote"
	default:
		return "Unknown"
	}
}

// Error is the typed error every validator in this package returns.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return "view: " + e.Kind.String()
	}
	return fmt.Sprintf("view: %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

func errAlreadyMember(id fmt.Stringer) error {
	return fmt.Errorf("%s is already a member", id)
}

func errNotMember(id fmt.Stringer) error {
	return fmt.Errorf("%s is not a member", id)
}

func errNotDistinct() error {
	return fmt.Errorf("resulting member set is not distinct from base")
}

func errUnknownKind(k fmt.Stringer) error {
	return fmt.Errorf("unknown change kind %s", k)
}
