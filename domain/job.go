package domain

import (
	"io"

	"github.com/google/uuid"
)

const KB = 1024
const MB = KB * KB

// Source is the resolved origin of a job's bytes.
// Exactly one of Stream or RemoteURL is set.
type Source struct {
	Name      string
	Size      int64
	Stream    io.ReadCloser
	RemoteURL string
}

// IsRemote reports whether the destination backend should fetch the bytes
// itself instead of having them streamed through the relay.
func (s Source) IsRemote() bool {
	return s.Stream == nil && s.RemoteURL != ""
}

// Job is one transfer request from a single triggering chat event to a
// single destination. It lives for exactly one orchestrator invocation.
type Job struct {
	ID      uuid.UUID
	Trigger IncomingMessage
	RawURL  string // set when the job originates from a link
}

func NewJob(trigger IncomingMessage, rawURL string) Job {
	return Job{
		ID:      uuid.New(),
		Trigger: trigger,
		RawURL:  rawURL,
	}
}
