package update

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// Diff returns a line diff between two JSON documents after normalizing
// their indentation. It is meant for display; use Equal to compare values.
func Diff(previous, current []byte) string {
	prevLines := splitLines(normalize(previous))
	currLines := splitLines(normalize(current))
	return cmp.Diff(prevLines, currLines)
}

// Equal reports whether two JSON documents hold the same values. Object
// member order and formatting are ignored.
func Equal(a, b []byte) (bool, error) {
	var av, bv any
	if err := json.Unmarshal(a, &av); err != nil {
		return false, fmt.Errorf("decode: %w", err)
	}
	if err := json.Unmarshal(b, &bv); err != nil {
		return false, fmt.Errorf("decode: %w", err)
	}
	return cmp.Equal(av, bv), nil
}

func normalize(data []byte) []byte {
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(data), "", "  "); err != nil {
		return data
	}
	return buf.Bytes()
}

func splitLines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return []string{""}
	}
	return strings.Split(text, "\n")
}
