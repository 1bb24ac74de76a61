// Package logging ships sanitized application logs to a Loki push endpoint.
package logging

import "regexp"

const mask = "*****"

type rule struct {
	re   *regexp.Regexp
	repl string
}

// A JSON string value, honouring backslash escapes.
const jsonString = `"(?:[^"\\]|\\.)*"`

// The same value inside a JSON document that was itself embedded as a string,
// such as a request body logged verbatim. An escape of the inner document
// shows up as a doubled backslash.
const escapedChars = `(?:[^"\\]|\\\\(?:\\"|\\\\|[^"\\])|\\[^"\\])*`

var rules = []rule{
	{regexp.MustCompile(`\\"(password|apiKey|token)\\":\s*\\"` + escapedChars + `\\"`), `\"${1}\": \"` + mask + `\"`},
	{regexp.MustCompile(`"(password|apiKey|token)":\s*` + jsonString), `"${1}": "` + mask + `"`},
	{regexp.MustCompile(`\\"authorization\\":\s*\\"Bearer ` + escapedChars + `\\"`), `\"authorization\": \"Bearer ` + mask + `\"`},
	{regexp.MustCompile(`"authorization":\s*"Bearer (?:[^"\\]|\\.)*"`), `"authorization": "Bearer ` + mask + `"`},
	{regexp.MustCompile(`Bearer\s+[A-Za-z0-9\-._~+/:]+=*`), `Bearer ` + mask},
}

// Sanitize masks passwords, API keys, tokens and bearer credentials in a
// JSON log line.
func Sanitize(line string) string {
	for _, r := range rules {
		line = r.re.ReplaceAllString(line, r.repl)
	}
	return line
}
