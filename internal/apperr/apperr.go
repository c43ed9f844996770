// Package apperr defines the error kinds surfaced by the trending CLI.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an AppError
type Kind string

const (
	// KindNetwork covers transport failures and unsuccessful HTTP statuses
	KindNetwork Kind = "network"
	// KindDecode covers payloads that do not match the expected JSON shape
	KindDecode Kind = "decode"
	// KindInteraction covers terminal I/O failures and cancelled prompts
	KindInteraction Kind = "interaction"
	// KindNoResults covers a well-formed but empty project list
	KindNoResults Kind = "no results"
	KindUsage     Kind = "usage"
	KindInternal  Kind = "internal"
)

// AppError carries a kind, a user-facing message and an optional cause
type AppError struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause == nil {
		return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s error: %s: %v", e.Kind, e.Message, e.Cause)
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// New builds an AppError. cause may be nil.
func New(kind Kind, message string, cause error) error {
	return &AppError{
		Kind:    kind,
		Message: message,
		Cause:   cause,
	}
}

func Network(message string, cause error) error {
	return New(KindNetwork, message, cause)
}

func Decode(message string, cause error) error {
	return New(KindDecode, message, cause)
}

func Interaction(message string, cause error) error {
	return New(KindInteraction, message, cause)
}

func NoResults(message string) error {
	return New(KindNoResults, message, nil)
}

func Usage(message string) error {
	return New(KindUsage, message, nil)
}

func Internal(message string, cause error) error {
	return New(KindInternal, message, cause)
}

// KindOf returns the kind of the first AppError in the chain, or "" if there is none
func KindOf(err error) Kind {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return ""
}

func IsNetwork(err error) bool     { return KindOf(err) == KindNetwork }
func IsDecode(err error) bool      { return KindOf(err) == KindDecode }
func IsInteraction(err error) bool { return KindOf(err) == KindInteraction }
func IsNoResults(err error) bool   { return KindOf(err) == KindNoResults }
func IsUsage(err error) bool       { return KindOf(err) == KindUsage }
