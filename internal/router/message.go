package router

import "strings"

// ChatKind is the transport-provided kind of the chat a message came from.
type ChatKind string

const (
	ChatKindPrivate ChatKind = "private"
	ChatKindGroup   ChatKind = "group"
)

// Message is one inbound message as delivered by the transport layer. It
// carries only what classification needs; rendering concerns stay with the
// transport.
type Message struct {
	// ID is the message identifier, unique per chat per transport session.
	ID int
	// ChatID identifies the chat the message was sent in.
	ChatID int64
	// ChatKind is the kind of that chat.
	ChatKind ChatKind
	// Text is the message text, empty for non-text content.
	Text string
	// ReplyToID is the identifier of the message this one replies to, or
	// zero if it is not a reply.
	ReplyToID int
}

// IsCommand reports whether the message text starts with the command marker.
func (m Message) IsCommand() bool {
	return strings.HasPrefix(m.Text, "/")
}

// CommandName extracts the command name: the first token without the
// leading slash and without a trailing @botname mention.
func (m Message) CommandName() string {
	if !m.IsCommand() {
		return ""
	}
	name, _, _ := strings.Cut(m.Text[1:], " ")
	name, _, _ = strings.Cut(name, "@")
	return strings.ToLower(name)
}
