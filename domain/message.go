// Package domain contains core concepts of the relay.
// This file defines chat message identities and incoming events.
package domain

type ChannelID int64

type MessageID int64

// MessageRef identifies one message inside one chat. Peer is the chat id
// exactly as the wire carried it; refs parsed from t.me permalinks know
// only the channel number and leave Peer zero.
type MessageRef struct {
	Channel ChannelID
	ID      MessageID
	Peer    int64
}

// APIChatID returns the Bot API chat id to address this message's chat.
// The wire id is authoritative when known; the supergroup encoding is
// synthesized only for permalink refs, which always point into channels.
func (r MessageRef) APIChatID() int64 {
	if r.Peer != 0 {
		return r.Peer
	}
	return -(1_000_000_000_000 + int64(r.Channel))
}

// Document describes a file attached to a chat message.
type Document struct {
	FileID   string
	Name     string
	MimeType string
	Size     int64
}

// IncomingMessage is one triggering chat event.
type IncomingMessage struct {
	Ref      MessageRef
	Text     string
	FromUser bool // direct conversation with a user, not a group
	Document *Document
}
