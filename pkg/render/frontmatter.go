package render

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
)

// SplitFrontMatter separates a leading front matter block (YAML "---" or
// TOML "+++") from the markdown body. A document without front matter is
// returned unchanged with nil metadata.
func SplitFrontMatter(src []byte) (map[string]any, []byte, error) {
	if !hasFrontMatterPrefix(src) {
		return nil, src, nil
	}

	var meta map[string]any
	body, err := frontmatter.Parse(bytes.NewReader(src), &meta)
	if err != nil {
		return nil, nil, fmt.Errorf("front matter: %w", err)
	}
	return meta, body, nil
}

func hasFrontMatterPrefix(src []byte) bool {
	return bytes.HasPrefix(src, []byte("---\n")) ||
		bytes.HasPrefix(src, []byte("---\r\n")) ||
		bytes.HasPrefix(src, []byte("+++\n")) ||
		bytes.HasPrefix(src, []byte("+++\r\n"))
}
