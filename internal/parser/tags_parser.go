package parser

import (
	"regexp"
	"strings"
)

// tagSplitRegex splits on the separators people actually type: commas,
// semicolons and whitespace
var tagSplitRegex = regexp.MustCompile(`[,;\s]+`)

// ParseTags extracts tags from free input such as "#go, sql;testing".
// Leading '#' is dropped, duplicates and empties are removed and the first
// occurrence order is kept.
func ParseTags(inputs ...string) []string {
	tags := []string{}
	seen := make(map[string]bool)

	for _, input := range inputs {
		for _, tag := range tagSplitRegex.Split(input, -1) {
			tag = strings.TrimLeft(strings.TrimSpace(tag), "#")
			if tag == "" || seen[tag] {
				continue
			}
			seen[tag] = true
			tags = append(tags, tag)
		}
	}

	return tags
}

// JoinTags renders tags in the stored semicolon-delimited form
func JoinTags(tags []string) string {
	return strings.Join(tags, ";")
}

// SplitList splits comma-separated flag or query values and trims them.
// Unlike ParseTags it keeps whitespace inside values ("Go Course").
func SplitList(inputs ...string) []string {
	var values []string
	for _, input := range inputs {
		for _, v := range strings.Split(input, ",") {
			v = strings.TrimSpace(v)
			if v != "" {
				values = append(values, v)
			}
		}
	}
	return values
}
