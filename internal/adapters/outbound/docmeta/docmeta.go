// Package docmeta reads the YAML frontmatter block of markdown documents.
package docmeta

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Frontmatter is the subset of doc metadata governance checks read.
type Frontmatter struct {
	Title        string `yaml:"title"`
	Type         string `yaml:"type"`
	LastReviewed string `yaml:"last_reviewed"`
}

// Read parses the leading YAML block of a markdown file. The second return
// is false when the file has no parseable frontmatter.
func Read(path string) (Frontmatter, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Frontmatter{}, false
	}

	text := string(data)
	if !strings.HasPrefix(text, "---") {
		return Frontmatter{}, false
	}
	parts := strings.SplitN(text, "---", 3)
	if len(parts) < 3 {
		return Frontmatter{}, false
	}

	var fm Frontmatter
	if err := yaml.Unmarshal([]byte(parts[1]), &fm); err != nil {
		return Frontmatter{}, false
	}
	return fm, true
}

// ParseDate accepts the date formats docs teams actually write.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}
