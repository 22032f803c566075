package chat

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrChatPinned blocks deletion of a pinned chat.
	ErrChatPinned = errors.New("pinned sessions cannot be purged")

	ErrInvalidMode = errors.New("invalid chat mode")
	ErrInvalidRole = errors.New("invalid message role")
)

// EngineUnresponsiveError classifies a provider failure in reasoning or code
// mode so the client can show a mode-specific message.
type EngineUnresponsiveError struct {
	Mode string
	Err  error
}

func (e *EngineUnresponsiveError) Error() string {
	return fmt.Sprintf("%s engine unresponsive: %v", e.Mode, e.Err)
}

func (e *EngineUnresponsiveError) Unwrap() error { return e.Err }

// UserMessage is the client-facing text, e.g. "Reasoning engine currently unresponsive."
func (e *EngineUnresponsiveError) UserMessage() string {
	mode := e.Mode
	if mode != "" {
		mode = strings.ToUpper(mode[:1]) + mode[1:]
	}
	return fmt.Sprintf("%s engine currently unresponsive.", mode)
}

// UpstreamError is a generic provider failure for all other modes.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string { return e.Err.Error() }

func (e *UpstreamError) Unwrap() error { return e.Err }
