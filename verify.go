package sitehelper

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/literallytheone/site-helper/internal/yamlutil"
)

var yamlFrontmatter = frontmatter.NewFormat(YAMLMarker, YAMLMarker, unmarshalFrontmatter)

// VerifyFrontmatter checks that content starts with a YAML frontmatter block
// that decodes cleanly. It returns the decoded fields.
func VerifyFrontmatter(content string) (map[string]any, error) {
	fields := map[string]any{}

	_, err := frontmatter.MustParse(strings.NewReader(content), &fields, yamlFrontmatter)
	if err != nil {
		if errors.Is(err, frontmatter.ErrNotFound) {
			return nil, ErrNoFrontmatter
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
	}

	return fields, nil
}

// unmarshalFrontmatter accepts an empty block, which yamlutil rejects.
func unmarshalFrontmatter(data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	return yamlutil.Unmarshal(data, v)
}
