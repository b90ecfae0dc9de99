package llm

import "strings"

// StripReplyEnvelope trims chat-model decoration from a reply so that what
// remains is the bare JSON object: surrounding whitespace, markdown code
// fences, and any prose before the first '{' or after the last '}'.
func StripReplyEnvelope(reply string) string {
	s := strings.TrimSpace(reply)

	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
		s = strings.TrimSpace(s)
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		s = s[start : end+1]
	}
	return strings.TrimSpace(s)
}
