// Where: cli/internal/remote/errors.go
// What: Typed remote call failures.
// Why: Callers branch on network/authorization/not-found without parsing SDK errors.
package remote

import (
	"errors"
	"fmt"
	"net"

	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"
)

// ErrorKind classifies a remote failure by its remote-side cause.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindNetwork
	KindUnauthorized
	KindNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network error"
	case KindUnauthorized:
		return "not authorized"
	case KindNotFound:
		return "not found"
	default:
		return "remote error"
	}
}

// Sentinels matched by errors.Is against *Error.
var (
	ErrNetwork      = errors.New("remote network error")
	ErrUnauthorized = errors.New("remote authorization failure")
	ErrNotFound     = errors.New("remote resource not found")
)

// Error is a failed remote call.
type Error struct {
	Op   string
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the kind sentinels.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNetwork:
		return e.Kind == KindNetwork
	case ErrUnauthorized:
		return e.Kind == KindUnauthorized
	case ErrNotFound:
		return e.Kind == KindNotFound
	}
	return false
}

var unauthorizedCodes = map[string]bool{
	"AccessDenied":                true,
	"AccessDeniedException":       true,
	"UnrecognizedClientException": true,
	"InvalidAccessKeyId":          true,
	"InvalidSignatureException":   true,
	"SignatureDoesNotMatch":       true,
	"ExpiredToken":                true,
	"ExpiredTokenException":       true,
	"MissingAuthenticationToken":  true,
}

var notFoundCodes = map[string]bool{
	"ResourceNotFoundException":       true,
	"ConditionalCheckFailedException": true,
	"NoSuchKey":                       true,
	"NoSuchBucket":                    true,
	"NotFound":                        true,
}

// wrap classifies err for op. nil stays nil; an existing *Error is returned as is.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var existing *Error
	if errors.As(err, &existing) {
		return err
	}
	return &Error{Op: op, Kind: classify(err), Err: err}
}

func classify(err error) ErrorKind {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		switch {
		case unauthorizedCodes[code]:
			return KindUnauthorized
		case notFoundCodes[code]:
			return KindNotFound
		}
	}
	var sendErr *smithyhttp.RequestSendError
	if errors.As(err, &sendErr) {
		return KindNetwork
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return KindNetwork
	}
	return KindUnknown
}
