package guardrails

import "strings"

// InputFilter rejects unsafe messages before they reach the backend,
// using keyword-based heuristics. Rules are evaluated in priority order
// and the first matching rule wins.
type InputFilter struct {
	rules []rule
}

type rule struct {
	name     string
	keywords []string
	response string
}

func NewInputFilter() *InputFilter {
	return &InputFilter{
		rules: []rule{
			{
				name: "jailbreak",
				keywords: []string{
					"ignore", "forget", "pretend", "bypass", "restriction",
					"unsafe", "inappropriate", "adult", "skip safety",
				},
				response: "I'm here to help you learn in a safe way! I can't ignore my safety rules. What would you like to learn about today?",
			},
			{
				name: "personal_info",
				keywords: []string{
					"password", "address", "phone number", "credit card", "social security",
				},
				response: "I don't collect or share personal information. Let's focus on learning something fun instead!",
			},
			{
				name: "inappropriate_content",
				keywords: []string{
					"inappropriate", "not for kids", "adult content", "explicit",
				},
				response: "I keep things safe and educational for kids. What educational topic would you like to explore?",
			},
		},
	}
}

// Check returns the canned rejection for the first rule with a keyword hit.
// Matching is a case-insensitive substring test, so a keyword occurring
// anywhere in an otherwise innocent sentence still triggers — a known
// false-positive source.
func (f *InputFilter) Check(message string) (rejection string, rejected bool) {
	lower := strings.ToLower(message)
	for _, r := range f.rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.response, true
			}
		}
	}
	return "", false
}
