package i18n

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNegotiate(t *testing.T) {
	testCases := []struct {
		name  string
		prefs []string
		want  Lang
	}{
		{name: "empty defaults to korean", prefs: nil, want: Korean},
		{name: "english tag", prefs: []string{"en"}, want: English},
		{name: "regional english", prefs: []string{"", "en-US,en;q=0.9"}, want: English},
		{name: "korean header", prefs: []string{"", "ko-KR,ko;q=0.9,en;q=0.8"}, want: Korean},
		{name: "query wins over header", prefs: []string{"en", "ko-KR"}, want: English},
		{name: "unsupported falls back", prefs: []string{"fr"}, want: Korean},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Negotiate(tc.prefs...))
		})
	}
}

func TestMessage_In(t *testing.T) {
	msg := Message{Ko: "저장되었습니다.", En: "Saved."}
	assert.Equal(t, "저장되었습니다.", msg.In(Korean))
	assert.Equal(t, "Saved.", msg.In(English))

	// 영문 번역이 없으면 한국어로 대체
	assert.Equal(t, "한국어만", Message{Ko: "한국어만"}.In(English))
}

func TestFromGin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?lang=en", nil)
	c.Request.Header.Set("Accept-Language", "ko-KR")

	assert.Equal(t, English, FromGin(c))
}
