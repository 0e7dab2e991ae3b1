package main

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// readSource returns the contents named by arg, falling back to the configured
// input path. "-" reads from stdin.
func readSource(arg, configured string, stdin io.Reader) (string, error) {
	path := strings.TrimSpace(arg)
	if path == "" {
		path = strings.TrimSpace(configured)
	}
	if path == "" {
		return "", fmt.Errorf("no input: pass a file, --hex, or set input in the config")
	}
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}
