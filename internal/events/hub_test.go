package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasktrack/internal/models"
)

func TestPublishNeverBlocks(t *testing.T) {
	h := NewHub()
	// No Run loop consuming: filling past the buffer must drop, not hang.
	for i := 0; i < 200; i++ {
		h.Publish(ActionCreated, models.Task{ID: i})
	}
}

func TestPublishOnNilHubIsNoop(t *testing.T) {
	var h *Hub
	h.Publish(ActionDeleted, models.Task{ID: 1})
}

func TestPublishedEventShape(t *testing.T) {
	h := NewHub()
	h.Publish(ActionUpdated, models.Task{ID: 3, Title: "T1", Status: "done"})

	raw := <-h.broadcast
	var evt Event
	require.NoError(t, json.Unmarshal(raw, &evt))
	assert.Equal(t, ActionUpdated, evt.Action)
	assert.Equal(t, 3, evt.Task.ID)
	assert.Equal(t, "done", evt.Task.Status)
}
