package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractYouTubeID(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/watch?list=abc&v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://example.com/video", ""},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ExtractYouTubeID(tc.url), "url %q", tc.url)
	}
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "machine-learning", Slugify("Machine Learning"))
	assert.Equal(t, "machine-learning", Slugify("  Machine   Learning  "))
	assert.Equal(t, "go", Slugify("Go"))
}

func TestSplitCSV(t *testing.T) {
	assert.Equal(t, []string{"Go", "SQL", "Docker"}, SplitCSV("Go, SQL ,Docker"))
	assert.Equal(t, []string{"solo"}, SplitCSV("solo"))
	assert.Empty(t, SplitCSV("  "))
	assert.Empty(t, SplitCSV(""))
	assert.Equal(t, []string{"a", "b"}, SplitCSV("a,,b,"))
}

func TestJoinCSVRoundTrip(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitCSV(JoinCSV([]string{"a", "b"})))
}
