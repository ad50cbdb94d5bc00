package assistant

import (
	"regexp"
	"strings"
)

// Common strong action verbs for CV entries (heuristic check)
var strongVerbs = map[string]bool{
	"achieved": true, "architected": true, "built": true, "created": true,
	"delivered": true, "designed": true, "developed": true, "engineered": true,
	"implemented": true, "improved": true, "increased": true, "launched": true,
	"led": true, "managed": true, "optimized": true, "owned": true,
	"reduced": true, "scaled": true, "shipped": true, "supported": true,
	"transformed": true,
}

// weakPhrases maps filler phrases to the stronger wording that replaces them.
// Order matters: longer phrases are replaced before their prefixes.
var weakPhrases = []struct {
	phrase      string
	replacement string
}{
	{"was responsible for", "owned"},
	{"responsible for", "owned"},
	{"duties included", "delivered"},
	{"worked on", "built"},
	{"helped with", "contributed to"},
	{"in charge of", "led"},
	{"tasked with", "delivered"},
}

var (
	digitPattern      = regexp.MustCompile(`\d`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	weakPatterns      = compileWeakPatterns()
)

func compileWeakPatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(weakPhrases))
	for i, wp := range weakPhrases {
		patterns[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(wp.phrase) + `\b`)
	}
	return patterns
}

// checkStrongVerb checks if text starts with a strong action verb
func checkStrongVerb(textLower string) bool {
	words := strings.Fields(textLower)
	if len(words) == 0 {
		return false
	}

	firstWord := strings.TrimRight(words[0], ".,!?;:")
	if strongVerbs[firstWord] {
		return true
	}

	// verbs ending in -ed are usually past-tense actions
	return strings.HasSuffix(firstWord, "ed") && len(firstWord) > 3
}

// checkQuantifiedImpact checks if text contains numbers or metrics
func checkQuantifiedImpact(text string) bool {
	return digitPattern.MatchString(text) || strings.Contains(text, "%")
}

// findWeakPhrases returns the filler phrases found in text, deduplicated, in table order
func findWeakPhrases(text string) []string {
	var found []string
	for i, wp := range weakPhrases {
		if !weakPatterns[i].MatchString(text) {
			continue
		}
		// "was responsible for" already covers "responsible for"
		covered := false
		for _, f := range found {
			if strings.Contains(f, wp.phrase) {
				covered = true
				break
			}
		}
		if !covered {
			found = append(found, wp.phrase)
		}
	}
	return found
}

// improve rewrites text deterministically: weak phrases replaced, whitespace
// collapsed, first letter capitalized and a closing period added.
func improve(text string) string {
	out := strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
	if out == "" {
		return ""
	}
	for i, wp := range weakPhrases {
		out = weakPatterns[i].ReplaceAllString(out, wp.replacement)
	}
	out = capitalizeFirst(out)
	if !strings.HasSuffix(out, ".") && !strings.HasSuffix(out, "!") && !strings.HasSuffix(out, "?") {
		out += "."
	}
	return out
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}
