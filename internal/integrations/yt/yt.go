package yt

import "regexp"

// Patterns recognizing video URLs, in order of precedence.
// The first capture group is the video ID.
var videoPatterns = []*regexp.Regexp{
	// watch?v= and shortened youtu.be links
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/)([^&\n?#]+)`),
	// shorts
	regexp.MustCompile(`youtube\.com/shorts/([^?&\n]+)`),
}

// ExtractVideoID returns the video ID from a YouTube URL.
// The first matching pattern wins.
func ExtractVideoID(rawURL string) (string, bool) {
	for _, pattern := range videoPatterns {
		matches := pattern.FindStringSubmatch(rawURL)
		if len(matches) > 1 && matches[1] != "" {
			return matches[1], true
		}
	}

	return "", false
}
