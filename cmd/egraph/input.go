package main

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// readExpression returns the graph expression from the argument list, or
// from stdin when no argument is given.
func readExpression(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	expr := strings.TrimSpace(string(data))
	if expr == "" {
		return "", fmt.Errorf("no expression given (pass it as an argument or on stdin)")
	}
	return expr, nil
}
