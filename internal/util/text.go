package util

import (
	"regexp"
	"strings"
)

var youtubeIDPattern = regexp.MustCompile(`(?:youtube\.com/(?:[^/]+/.+/|(?:v|e(?:mbed)?)/|.*[?&]v=)|youtu\.be/)([^"&?/\s]{11})`)

// ExtractYouTubeID pulls the 11-character video id out of a watch, embed or
// short-form URL. Returns "" when the URL carries no recognizable id.
func ExtractYouTubeID(url string) string {
	m := youtubeIDPattern.FindStringSubmatch(url)
	if m == nil {
		return ""
	}
	return m[1]
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Slugify lowercases a topic and collapses whitespace runs into hyphens, the
// form used for templated resource URLs.
func Slugify(s string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "-")
}

// SplitCSV splits a comma-joined value into trimmed non-empty parts. Stored
// rows sometimes carry plain strings where a list is expected; this is the
// coercion point.
func SplitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func JoinCSV(parts []string) string {
	return strings.Join(parts, ", ")
}
