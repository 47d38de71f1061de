package task

import (
	"strings"

	internalstrings "github.com/taskdesk/taskdesk/internal/strings"
)

func normalizeStatus(status Status) Status {
	return Status(internalstrings.NormalizeLowerTrimSpace(string(status)))
}

func normalizePriority(priority Priority) Priority {
	return Priority(internalstrings.NormalizeLowerTrimSpace(string(priority)))
}

// normalizeTags trims each tag, drops empties, and removes case-insensitive
// duplicates while preserving first-occurrence order.
func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		trimmed := strings.TrimSpace(tag)
		if trimmed == "" {
			continue
		}
		key := internalstrings.NormalizeLower(trimmed)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		normalized = append(normalized, trimmed)
	}
	if len(normalized) == 0 {
		return nil
	}
	return normalized
}

func normalizeCategory(category string) string {
	return internalstrings.TrimSpace(category)
}

// normalizeTitle collapses internal whitespace runs so titles render on a
// single display line.
func normalizeTitle(title string) string {
	return internalstrings.NormalizeWhitespace(title)
}
