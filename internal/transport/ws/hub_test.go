package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConn(h *Hub, org string) *Connection {
	return &Connection{OrganizationID: org, AnalystID: "a-" + org, Send: make(chan []byte, 4), Hub: h}
}

func receive(t *testing.T, c *Connection) Message {
	t.Helper()
	select {
	case data := <-c.Send:
		var msg Message
		require.NoError(t, json.Unmarshal(data, &msg))
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("no message delivered")
		return Message{}
	}
}

func TestHub_BroadcastIsScopedToOrganization(t *testing.T) {
	h := NewHub()
	mine, theirs := newConn(h, "org-1"), newConn(h, "org-2")
	h.Register(mine)
	h.Register(theirs)

	h.BroadcastToOrganization("org-1", string(MsgAnalysisCompleted), map[string]int{"compositeScore": 60})

	msg := receive(t, mine)
	assert.Equal(t, MsgAnalysisCompleted, msg.Type)
	assert.JSONEq(t, `{"compositeScore":60}`, string(msg.Payload))

	// Broadcasts are processed in order, so theirs holds only its own message.
	h.BroadcastToOrganization("org-2", string(MsgAnalysisCompleted), nil)
	msg = receive(t, theirs)
	assert.JSONEq(t, `null`, string(msg.Payload))
	assert.Empty(t, theirs.Send)
}

func TestHub_UnregisterClosesSend(t *testing.T) {
	h := NewHub()
	c := newConn(h, "org-1")
	h.Register(c)
	h.Unregister(c)

	require.Eventually(t, func() bool { return h.ConnectionCount("org-1") == 0 }, time.Second, 10*time.Millisecond)
	_, open := <-c.Send
	assert.False(t, open)

	// Unregistering twice is a no-op.
	h.Unregister(c)
}

func TestHub_ConnectionCount(t *testing.T) {
	h := NewHub()
	h.Register(newConn(h, "org-1"))
	h.Register(newConn(h, "org-1"))

	assert.Eventually(t, func() bool { return h.ConnectionCount("org-1") == 2 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, 0, h.ConnectionCount("org-2"))
}
