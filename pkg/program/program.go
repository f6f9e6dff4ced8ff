// Package program loads Intcode program images from their textual form:
// signed decimal integers separated by commas, with optional whitespace and
// newlines between them.
package program

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Parse converts Intcode source text into a program image. Values are
// separated by commas; whitespace around values and trailing commas or
// newlines are tolerated.
func Parse(src string) ([]int64, error) {
	fields := strings.Split(src, ",")
	image := make([]int64, 0, len(fields))

	for i, field := range fields {
		field = strings.TrimSpace(field)
		if field == "" {
			// Trailing comma or blank line.
			continue
		}
		value, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("value %d (%q): %w", i, field, err)
		}
		image = append(image, value)
	}

	if len(image) == 0 {
		return nil, fmt.Errorf("empty program")
	}
	return image, nil
}

// LoadFile reads and parses an Intcode program from a file.
func LoadFile(path string) ([]int64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	image, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	return image, nil
}
