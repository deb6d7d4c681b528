package chat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultScript(t *testing.T) {
	script := DefaultScript()

	require.Len(t, script, 3)
	assert.Equal(t, CannedMessage{After: time.Second, Username: "StreamBot", Text: "Welcome to the chat! Remember to be kind."}, script[0])
	assert.Equal(t, CannedMessage{After: 2500 * time.Millisecond, Username: "CoolUser123", Text: "Hey everyone! This stream is awesome!"}, script[1])
	assert.Equal(t, CannedMessage{After: 4 * time.Second, Username: "GamerPro", Text: "What game is next?"}, script[2])

	for i := 1; i < len(script); i++ {
		assert.Greater(t, script[i].After, script[i-1].After)
	}
}

func TestScript_Normalize(t *testing.T) {
	script := Script{
		{After: -time.Second, Username: "Early", Text: "first"},
		{After: time.Second, Username: "Blank", Text: "  "},
		{After: 2 * time.Second, Username: "Late", Text: "last"},
	}

	got := script.Normalize()

	require.Len(t, got, 2)
	assert.Equal(t, time.Duration(0), got[0].After)
	assert.Equal(t, "Early", got[0].Username)
	assert.Equal(t, "Late", got[1].Username)
	// the receiver is not modified
	assert.Equal(t, -time.Second, script[0].After)
}
