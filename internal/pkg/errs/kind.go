package errs

import "errors"

// Kind is the closed set of failure categories callers branch on.
type Kind int

const (
	// KindUnknown covers every error that is not one of the classified kinds.
	KindUnknown Kind = iota
	KindNotFound
	KindAlreadyTerminal
	KindParseError
	KindNetworkError
	KindInvalidInput
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindAlreadyTerminal:
		return "AlreadyTerminal"
	case KindParseError:
		return "ParseError"
	case KindNetworkError:
		return "NetworkError"
	case KindInvalidInput:
		return "InvalidInput"
	case KindUnknown:
		return "Unknown"
	}
	return "Unknown"
}

// KindOf classifies err by the sentinel it wraps. A nil error is KindUnknown.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrStatusIsTerminal):
		return KindAlreadyTerminal
	case errors.Is(err, ErrPayloadIsMalformed):
		return KindParseError
	case errors.Is(err, ErrUpstreamUnavailable):
		return KindNetworkError
	case errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsOutOfRange),
		errors.Is(err, ErrValueIsRequired):
		return KindInvalidInput
	}
	return KindUnknown
}
