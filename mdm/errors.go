// mdm/errors.go
package mdm

import (
	"errors"
	"fmt"
)

// ErrMalformedDocument is matched by every *MalformedDocumentError.
var ErrMalformedDocument = errors.New("malformed document")

// MalformedDocumentError reports a custom profile that could not be decoded or parsed.
type MalformedDocumentError struct {
	Reason string
	Err    error
}

func (e *MalformedDocumentError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("malformed profile document: %s", e.Reason)
	}
	return fmt.Sprintf("malformed profile document: %s: %v", e.Reason, e.Err)
}

// Is matches ErrMalformedDocument.
func (e *MalformedDocumentError) Is(target error) bool {
	return target == ErrMalformedDocument
}

func (e *MalformedDocumentError) Unwrap() error {
	return e.Err
}

// NotFoundError is returned by lookups that found no match.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// UnknownServiceError rejects a PPPC request naming a service outside the fixed category table.
type UnknownServiceError struct {
	Service ServiceCategory
}

func (e *UnknownServiceError) Error() string {
	return fmt.Sprintf("unknown PPPC service %q", string(e.Service))
}

var errEmptyDocument = errors.New("document is empty")
