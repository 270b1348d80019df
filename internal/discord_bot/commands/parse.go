package commands

import (
	"strings"

	"joke_suggestions_system/internal/db/models"
)

// jokeParts splits "catégorie | blague | réponse" style arguments.
func jokeParts(arguments string, expected int) []string {
	parts := strings.Split(arguments, "|")
	if len(parts) != expected {
		return nil
	}

	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}

	return parts
}

func categoryList() string {
	names := make([]string, 0, len(models.Categories))
	for _, category := range models.Categories {
		names = append(names, string(category))
	}
	return strings.Join(names, ", ")
}

// isSnowflake distinguishes a Discord message id from a joke id: snowflakes
// carry a millisecond timestamp and never fit in 16 digits.
func isSnowflake(value string) bool {
	if len(value) < 17 {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
