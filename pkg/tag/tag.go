// Package tag handles the inline link markers used in article text. A
// marker looks like [%personlink#1 f l]: a kind, a subject number referring
// to a participant slot, and optional format arguments.
package tag

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// linkPattern matches a link marker and captures the prefix up to the
// subject number, the number itself, and the remainder through the closing
// bracket.
var linkPattern = regexp.MustCompile(`(\[%\w+link#)(\d+)(\s*[^\]]*\])`)

// Templates maps each tag kind to its marker with subject number 1. Insert
// rewrites the number before returning the marker.
var Templates = map[string]string{
	"person":      "[%personlink#1 f l]",
	"person-last": "[%personlink#1 l]",
	"team":        "[%teamlink#1]",
	"city":        "[%citylink#1]",
	"stat":        "[%statlink#1]",
	"date":        "[%datelink#1]",
	"league":      "[%leaguelink#1]",
	"stadium":     "[%stadiumlink#1]",
	"award":       "[%awardlink#1]",
	"salary":      "[%salarylink#1]",
	"record":      "[%recordlink#1]",
	"age":         "[%agelink#1]",
}

// Kinds returns the sorted tag kind names usable with Insert.
func Kinds() []string {
	kinds := make([]string, 0, len(Templates))
	for k := range Templates {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Insert returns the marker for the given kind pointed at the given
// subject number.
func Insert(kind string, number int) (string, error) {
	tpl, ok := Templates[kind]
	if !ok {
		return "", fmt.Errorf("unknown tag kind: %s", kind)
	}
	return strings.Replace(tpl, "#1", fmt.Sprintf("#%d", number), 1), nil
}

// Renumber rewrites the subject number of every link marker in text to
// number and reports how many markers changed. Text without markers is
// returned unchanged with a zero count.
func Renumber(text string, number int) (string, int) {
	count := 0
	updated := linkPattern.ReplaceAllStringFunc(text, func(match string) string {
		parts := linkPattern.FindStringSubmatch(match)
		replacement := fmt.Sprintf("%s%d%s", parts[1], number, parts[3])
		if replacement != match {
			count++
		}
		return replacement
	})
	return updated, count
}

// Find returns every link marker present in text, in order of appearance.
func Find(text string) []string {
	return linkPattern.FindAllString(text, -1)
}
