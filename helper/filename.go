package helper

import "regexp"

var unsafeFilenameChars = regexp.MustCompile(`[^\w.\- ]`)

// SafeFilename strips anything outside word characters, dots, dashes and
// spaces so the value is safe inside a Content-Disposition header.
func SafeFilename(name string) string {
	if name == "" {
		name = "article-image"
	}
	return unsafeFilenameChars.ReplaceAllString(name, "_")
}
