package resolve

import "regexp"

// urlPattern is the usual "URL in prose" heuristic: a scheme, www. or bare
// domain.tld/ prefix, a body that may contain balanced parentheses, and an
// ending that excludes trailing punctuation.
var urlPattern = regexp.MustCompile(`(?i)\b((?:https?://|www\d{0,3}[.]|[a-z0-9.\-]+[.][a-z]{2,4}/)(?:[^\s()<>]+|\(([^\s()<>]+|(\([^\s()<>]+\)))*\))+(?:\(([^\s()<>]+|(\([^\s()<>]+\)))*\)|[^\s` + "`" + `!()\[\]{};:'".,<>?«»“”‘’]))`)

// ExtractLink returns the first URL found in text. The second return value
// is false when the text contains no link, which is a normal outcome, not
// a failure.
func ExtractLink(text string) (string, bool) {
	match := urlPattern.FindStringSubmatch(text)
	if match == nil || match[1] == "" {
		return "", false
	}
	return match[1], true
}
