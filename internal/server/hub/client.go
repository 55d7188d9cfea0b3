package hub

import (
	"github.com/google/uuid"

	"github.com/iudanet/gophcollab/internal/validation"
)

const clientBuffer = 256

// Client is one connected participant. Its outbound frames are drained by
// the connection's write pump; the hub closes the channel on disconnect.
type Client struct {
	send      chan []byte
	id        string
	workspace string
	name      string
	color     string
	seq       uint64
	cursor    int
}

// NewClient creates a participant that wants to join workspace.
func NewClient(workspace string) *Client {
	return &Client{
		id:        uuid.NewString(),
		workspace: validation.SanitizeWorkspaceID(workspace),
		send:      make(chan []byte, clientBuffer),
	}
}

// ID returns the participant id.
func (c *Client) ID() string {
	return c.id
}

// Outbound returns the frames queued for this participant.
func (c *Client) Outbound() <-chan []byte {
	return c.send
}
