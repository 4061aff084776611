package transcript

import "regexp"

var (
	videoIDPattern = regexp.MustCompile(`(?:v=|/)([0-9A-Za-z_-]{11})`)
	bareIDPattern  = regexp.MustCompile(`^[0-9A-Za-z_-]{11}$`)
)

// ParseVideoID extracts the 11-character video id from a YouTube URL.
// A string that already looks like a bare id is returned unchanged.
func ParseVideoID(input string) string {
	if bareIDPattern.MatchString(input) {
		return input
	}
	if m := videoIDPattern.FindStringSubmatch(input); m != nil {
		return m[1]
	}
	return input
}
