package logger

import "strings"

// Example: john.doe@gmail.com -> j***@gmail.com
func MaskEmail(email string) string {
	if email == "" {
		return ""
	}

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return "***@***"
	}

	username := parts[0]
	domain := parts[1]

	if len(username) == 0 {
		return "***@" + domain
	}

	// Keep only first character of username
	return username[:1] + "***@" + domain
}

// Example: 010-1234-5678 -> 010-****-5678
func MaskPhone(phone string) string {
	runes := []rune(phone)
	if len(runes) <= 4 {
		return strings.Repeat("*", len(runes))
	}

	masked := make([]rune, len(runes))
	digits := 0
	for i := len(runes) - 1; i >= 0; i-- {
		r := runes[i]
		if r < '0' || r > '9' {
			masked[i] = r
			continue
		}
		digits++
		// 마지막 4자리와 앞 3자리만 노출
		if digits <= 4 || i < 3 {
			masked[i] = r
		} else {
			masked[i] = '*'
		}
	}
	return string(masked)
}
