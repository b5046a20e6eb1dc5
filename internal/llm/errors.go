package llm

import "fmt"

// ErrTransport indicates the request never produced a usable HTTP success:
// a network fault, or a non-2xx status from the assistant service. Status
// is 0 when the failure happened before a response arrived.
type ErrTransport struct {
	Status int
	Err    error
}

func (e *ErrTransport) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("assistant service error: HTTP %d", e.Status)
	}
	return fmt.Sprintf("assistant service unreachable: %v", e.Err)
}

func (e *ErrTransport) Unwrap() error { return e.Err }

// ErrMalformedResponse indicates an HTTP success whose body lacks the
// expected candidate/content shape. Treated as failure, never a crash.
type ErrMalformedResponse struct {
	Detail string
}

func (e *ErrMalformedResponse) Error() string {
	return "no usable response: unexpected response format"
}
