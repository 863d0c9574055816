// Package formatting provides parsing helpers for values that arrive as
// loosely formatted text: byte sizes and model-produced JSON.
package formatting

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrParseFailed indicates content could not be decoded as JSON, either
// directly or out of a markdown code fence.
var ErrParseFailed = errors.New("failed to parse response")

var fencedJSON = regexp.MustCompile(`(?s)` + "```" + `(?:json)?\s*\n?(.*?)\n?` + "```")

// ParseJSON decodes content into T. Models sometimes wrap their JSON in a
// markdown fence despite instructions; when direct decoding fails the
// fenced payload is extracted and retried.
func ParseJSON[T any](content string) (T, error) {
	var result T
	content = strings.TrimSpace(content)

	if err := json.Unmarshal([]byte(content), &result); err == nil {
		return result, nil
	}

	if matches := fencedJSON.FindStringSubmatch(content); len(matches) >= 2 {
		cleaned := strings.TrimSpace(matches[1])
		if err := json.Unmarshal([]byte(cleaned), &result); err == nil {
			return result, nil
		}
	}

	return result, fmt.Errorf("%w: %s", ErrParseFailed, content)
}
