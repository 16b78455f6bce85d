package i18n

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

// Lang is a locale supported by the back office
type Lang string

const (
	Korean  Lang = "ko"
	English Lang = "en"

	QueryKey = "lang"
)

// 순서가 중요: 첫 번째 항목이 기본 언어
var (
	supported = []Lang{Korean, English}
	matcher   = language.NewMatcher([]language.Tag{language.Korean, language.English})
)

// Message is a text available in every supported locale
type Message struct {
	Ko string
	En string
}

// In returns the text for lang, falling back to Korean when the translation is missing
func (m Message) In(lang Lang) string {
	if lang == English && m.En != "" {
		return m.En
	}
	return m.Ko
}

// Negotiate picks a supported locale. Each argument may be a bare tag ("en")
// or an Accept-Language header value; earlier arguments take priority.
func Negotiate(prefs ...string) Lang {
	_, index := language.MatchStrings(matcher, prefs...)
	if index < 0 || index >= len(supported) {
		return Korean
	}
	return supported[index]
}

// FromGin resolves the request locale from ?lang= and then Accept-Language
func FromGin(c *gin.Context) Lang {
	return Negotiate(c.Query(QueryKey), c.GetHeader("Accept-Language"))
}
