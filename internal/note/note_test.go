package note

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDefaults(t *testing.T) {
	n := Create("Trip ideas", "go hiking #outdoors maybe #camping")

	assert.Len(t, n.ID, IDLength)
	assert.Equal(t, "Trip ideas", n.Title)
	assert.Equal(t, []string{"outdoors", "camping"}, n.Tags)
	assert.False(t, n.Pinned)
	assert.Empty(t, n.LastUpdated, "a fresh note was never saved")
	assert.False(t, n.Saved())

	_, err := time.Parse(time.RFC3339, n.Timestamp)
	require.NoError(t, err, "timestamp must be RFC 3339")
}

func TestPrepareForSave(t *testing.T) {
	n := Create("draft", "first #draft")
	created := n.Timestamp

	err := n.PrepareForSave("Final", "now about #golang instead", true)
	require.NoError(t, err)

	assert.Equal(t, "Final", n.Title)
	assert.Equal(t, []string{"golang"}, n.Tags, "tags follow content, not history")
	assert.True(t, n.Pinned)
	assert.True(t, n.Saved())
	assert.Equal(t, created, n.Timestamp, "creation time is immutable")
}

func TestPrepareForSaveValidation(t *testing.T) {
	n := Create("", "")

	err := n.PrepareForSave("", "some content", false)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "title", verr.Field)

	err = n.PrepareForSave("A title", "", false)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "content", verr.Field)

	// A failed save applies nothing.
	assert.Empty(t, n.LastUpdated)
	assert.Equal(t, "", n.Title)
}

func TestUpdatedAtFallback(t *testing.T) {
	n := Create("t", "c")
	assert.Equal(t, n.Timestamp, n.UpdatedAt())

	require.NoError(t, n.PrepareForSave("t", "c", false))
	assert.Equal(t, n.LastUpdated, n.UpdatedAt())
}

func TestGenerateID(t *testing.T) {
	id := GenerateID()
	assert.Len(t, id, IDLength)
	assert.Regexp(t, "^[0-9a-f]+$", id)
}
