package domain

import (
	"errors"
	"fmt"
)

// Failure kinds. Match with errors.Is; the request layer maps them to
// 404, 409 and 400.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrBadRequest = errors.New("bad request")
)

// Error is a failure of a single operation against one entity.
type Error struct {
	Kind    error
	Entity  Entity
	ID      int64
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Entity != "" && e.ID != 0 {
		return fmt.Sprintf("%s %d: %v", e.Entity, e.ID, e.Kind)
	}
	return e.Kind.Error()
}

func (e *Error) Unwrap() error { return e.Kind }

func NotFound(entity Entity, id int64) *Error {
	return &Error{
		Kind:    ErrNotFound,
		Entity:  entity,
		ID:      id,
		Message: fmt.Sprintf("%s %d not found", entity, id),
	}
}

func Conflict(entity Entity, id int64, format string, args ...any) *Error {
	return &Error{Kind: ErrConflict, Entity: entity, ID: id, Message: fmt.Sprintf(format, args...)}
}

func BadRequest(format string, args ...any) *Error {
	return &Error{Kind: ErrBadRequest, Message: fmt.Sprintf(format, args...)}
}
