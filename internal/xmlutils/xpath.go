package xmlutils

import (
	"bytes"
	"fmt"

	"gopkg.in/xmlpath.v2"
)

// ParseResponse parses an XML response body into a queryable node tree.
func ParseResponse(body []byte) (*xmlpath.Node, error) {
	root, err := xmlpath.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}
	return root, nil
}

// ExtractAll returns every value matched by the XPath expression, in document
// order. A response element that appears once yields a one-element slice and
// a missing element yields an empty slice, so callers never have to handle
// the decoder's single-value-versus-list ambiguity themselves.
func ExtractAll(root *xmlpath.Node, xpath string) ([]string, error) {
	path, err := xmlpath.Compile(xpath)
	if err != nil {
		return nil, fmt.Errorf("failed to compile XPath: %w", err)
	}

	values := []string{}
	iter := path.Iter(root)
	for iter.Next() {
		values = append(values, iter.Node().String())
	}
	return values, nil
}

// ExtractOne returns the first value matched by the XPath expression and
// whether a match existed.
func ExtractOne(root *xmlpath.Node, xpath string) (string, bool) {
	path, err := xmlpath.Compile(xpath)
	if err != nil {
		return "", false
	}
	return path.String(root)
}

// GetOrEmpty returns the value at index, or an empty string when the index is
// out of bounds.
func GetOrEmpty(slice []string, index int) string {
	if index < len(slice) {
		return slice[index]
	}
	return ""
}
