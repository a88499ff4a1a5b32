package validation

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// MaxSessionNameLen максимальная длина имени сессии в символах
	MaxSessionNameLen = 64
	// MaxDisplayNameLen максимальная длина отображаемого имени в символах
	MaxDisplayNameLen = 32
)

// ValidateSessionName проверяет человекочитаемое имя сессии
// Любой печатный unicode ("Склад А, август"), длина 1-64 символа
func ValidateSessionName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("session name cannot be empty")
	}

	if utf8.RuneCountInString(name) > MaxSessionNameLen {
		return fmt.Errorf("session name must not exceed %d characters", MaxSessionNameLen)
	}

	if strings.ContainsFunc(name, unicode.IsControl) {
		return fmt.Errorf("session name cannot contain control characters")
	}

	return nil
}

// ValidateDisplayName проверяет отображаемое имя участника
// Любой печатный unicode, длина 1-32 символа
func ValidateDisplayName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("display name cannot be empty")
	}

	if utf8.RuneCountInString(name) > MaxDisplayNameLen {
		return fmt.Errorf("display name must not exceed %d characters", MaxDisplayNameLen)
	}

	if strings.ContainsFunc(name, unicode.IsControl) {
		return fmt.Errorf("display name cannot contain control characters")
	}

	return nil
}
