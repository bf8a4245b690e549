package apperr

import (
	"errors"
	"strings"
)

var (
	ErrInvalidIdentifier  = errors.New("invalid identifier")
	ErrInvalidQuery       = errors.New("invalid query")
	ErrEntityNotFound     = errors.New("entity not found")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// FieldError describes one rejected query parameter.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// QueryError is an ErrInvalidQuery carrying the offending parameters.
type QueryError struct {
	Fields []FieldError
}

func (e *QueryError) Error() string {
	if len(e.Fields) == 0 {
		return ErrInvalidQuery.Error()
	}
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return ErrInvalidQuery.Error() + ": " + strings.Join(msgs, "; ")
}

func (e *QueryError) Is(target error) bool {
	return target == ErrInvalidQuery
}

// InvalidQuery builds a QueryError for a single parameter.
func InvalidQuery(field, message string) error {
	return &QueryError{Fields: []FieldError{{Field: field, Message: message}}}
}

// Storage marks err as a backing-store failure. Not-found conditions must be
// mapped by the caller before reaching here.
func Storage(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrStorageUnavailable) {
		return err
	}
	return errors.Join(ErrStorageUnavailable, err)
}
