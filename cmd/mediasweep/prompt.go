package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

const promptText = "Enter the path to the project directory (slug): "

// promptRoot asks for the project root on out and reads one line from in.
// Only the line ending is removed; surrounding spaces are part of the path.
func promptRoot(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, promptText)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read project root: %w", err)
	}
	line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
	if line == "" {
		return "", errors.New("no project root given")
	}
	return line, nil
}
