package database_test

import (
	"testing"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/database"
	"github.com/stretchr/testify/assert"
)

func TestLikeContains(t *testing.T) {
	testCases := []struct {
		q       string
		pattern string
	}{
		{q: "jeju", pattern: "%jeju%"},
		{q: "100%", pattern: `%100\%%`},
		{q: "_", pattern: `%\_%`},
		{q: `a\b`, pattern: `%a\\b%`},
	}

	for _, tc := range testCases {
		t.Run(tc.q, func(t *testing.T) {
			condition, pattern := database.LikeContains("name", tc.q)

			assert.Equal(t, `name LIKE ? ESCAPE '\'`, condition)
			assert.Equal(t, tc.pattern, pattern)
		})
	}
}
