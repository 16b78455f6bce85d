package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTML(t *testing.T) {
	out, err := ToHTML("# 제주 투어\n\n**3박 4일** 일정")
	require.NoError(t, err)

	assert.Contains(t, out, "<h1>제주 투어</h1>")
	assert.Contains(t, out, "<strong>3박 4일</strong>")
}

func TestToHTML_DropsRawHTML(t *testing.T) {
	out, err := ToHTML("hello <script>alert(1)</script>")
	require.NoError(t, err)

	assert.NotContains(t, out, "<script>")
}

func TestToHTML_Table(t *testing.T) {
	out, err := ToHTML("| 일차 | 장소 |\n|---|---|\n| 1 | 성산 |")
	require.NoError(t, err)

	assert.Contains(t, out, "<table>")
}
