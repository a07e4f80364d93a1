package application

import (
	"fmt"
	"strings"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "taskTitle" -> "task title")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"taskTitle":  "task title",
		"entityKind": "entity kind",
		"sourcePath": "source path",
		"todoText":   "todo text",
		"title":      "title",
		"path":       "path",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ValidateFileTitle rejects titles that cannot become a markdown filename
func ValidateFileTitle(fieldName, title string) error {
	if err := ValidateRequired(fieldName, title); err != nil {
		return err
	}
	if strings.ContainsAny(title, `/\:`) {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s must not contain path separators: %q", formatFieldName(fieldName), title),
		}
	}
	return nil
}
