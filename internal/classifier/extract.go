package classifier

import "regexp"

// The model is instructed to emit only a JSON object, but models wrap output
// in prose anyway. Greedy span from the first "{" through the last "}", so a
// single object survives surrounding noise and nested braces stay intact.
var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// extractJSONPayload returns the brace-delimited span of raw, or raw itself
// when no braces exist. It never judges validity; parsing decides that.
func extractJSONPayload(raw string) string {
	if match := jsonObjectPattern.FindString(raw); match != "" {
		return match
	}
	return raw
}
