package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const separator = "---\n"

// RenderFrontmatter prefixes body with meta encoded as a YAML frontmatter block.
func RenderFrontmatter(meta any, body string) (string, error) {
	raw, err := yaml.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("marshal frontmatter: %w", err)
	}
	buf := bytes.Buffer{}
	buf.WriteString(separator)
	buf.Write(raw)
	buf.WriteString(separator)
	if !strings.HasPrefix(body, "\n") {
		buf.WriteString("\n")
	}
	buf.WriteString(body)
	return buf.String(), nil
}

// StripFrontmatter drops a leading frontmatter block, returning the body only.
func StripFrontmatter(content string) string {
	if !strings.HasPrefix(content, separator) {
		return content
	}
	rest := strings.TrimPrefix(content, separator)
	idx := strings.Index(rest, "\n"+separator)
	if idx < 0 {
		return content
	}
	return strings.TrimLeft(rest[idx+len("\n"+separator):], "\n")
}
