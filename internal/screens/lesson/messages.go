package lesson

import "github.com/satyarth/dappdojo/internal/session"

// assistantReplyMsg is sent when an assistant request settles. The ticket
// lets the engine discard completions for lessons the user has left.
type assistantReplyMsg struct {
	Ticket session.Ticket
	Reply  string
	Err    error
}
