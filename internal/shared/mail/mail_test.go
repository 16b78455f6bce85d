package mail

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopSender(t *testing.T) {
	id, err := NewNoopSender().Send(context.Background(), Message{
		To:      []string{"agent@partner.com"},
		Subject: "포스터",
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "noop-"))
}

func TestMaskAll(t *testing.T) {
	assert.Equal(t, []string{"a***@partner.com", "b***@x.kr"}, maskAll([]string{"agent@partner.com", "b@x.kr"}))
}
