package search

import (
	"strconv"
	"strings"
)

// Query represents the structured parameters of a channel search.
// It decouples the raw console input from the index requirements.
type Query struct {
	RawInput string // The original input from the user
	Terms    string // The actual text to search in Bluge
	Limit    int    // Maximum number of hits
}

// ParseQuery extracts command-line style arguments from a raw string.
// Example: /search "deploy" --limit 5
func ParseQuery(input string, defaultLimit int) Query {
	query := Query{RawInput: input, Limit: defaultLimit}

	parts := strings.Fields(input)
	var textTerms []string

	for i := 0; i < len(parts); i++ {
		part := parts[i]

		if part == "--limit" && i+1 < len(parts) {
			if limit, err := strconv.Atoi(parts[i+1]); err == nil && limit > 0 {
				query.Limit = limit
			}
			i++ // Skip the value part in next iteration
			continue
		}

		if !strings.HasPrefix(part, "/") {
			textTerms = append(textTerms, strings.Trim(part, `"`))
		}
	}

	query.Terms = strings.TrimSpace(strings.Join(textTerms, " "))
	return query
}
