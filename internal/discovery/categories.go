package discovery

import (
	"strings"

	"github.com/Arkhalisal/kevin-work/internal/domain"
)

// Categories returns the distinct bracketed tags found in venue names, in
// order of first appearance. Each name contributes at most the content of
// its first "(...)" pair; an unterminated bracket contributes nothing.
func Categories(venues []domain.Venue) []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, v := range venues {
		tag, ok := bracketTag(v.Name)
		if !ok {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}

func bracketTag(name string) (string, bool) {
	open := strings.IndexByte(name, '(')
	if open < 0 {
		return "", false
	}
	length := strings.IndexByte(name[open+1:], ')')
	if length < 0 {
		return "", false
	}
	return name[open+1 : open+1+length], true
}
