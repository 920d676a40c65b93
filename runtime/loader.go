//go:generate go run go.uber.org/mock/mockgen -source=loader.go -destination=../mocks/mock_loader.go -package=mocks
// Package runtime handles the infrastructure-level tasks like loading rosters.
package runtime

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"people-lab/errors"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// IRosterSource provides the ordered list of names an operation runs on.
type IRosterSource interface {
	Names(ctx context.Context) ([]string, error)
}

// FileRosterSource reads one name per line from a plain text file.
type FileRosterSource struct {
	path string
}

func NewFileRosterSource(path string) IRosterSource {
	return &FileRosterSource{path: path}
}

// Names sniffs the file before parsing it, anything that is not text is refused.
// An empty file is a valid, empty roster.
func (s *FileRosterSource) Names(ctx context.Context) ([]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	if detected := mimetype.Detect(data); !isText(detected) {
		return nil, fmt.Errorf("%s detected as %s: %w", s.path, detected.String(), errors.ErrNotTextFile)
	}
	return readNames(ctx, bytes.NewReader(data))
}

// ReaderRosterSource reads one name per line from any reader, typically stdin.
type ReaderRosterSource struct {
	reader io.Reader
}

func NewReaderRosterSource(reader io.Reader) IRosterSource {
	return &ReaderRosterSource{reader: reader}
}

func (s *ReaderRosterSource) Names(ctx context.Context) ([]string, error) {
	return readNames(ctx, s.reader)
}

// readNames keeps the file order, skips blank lines and trims surrounding spaces.
// Interior spaces are left untouched.
func readNames(ctx context.Context, reader io.Reader) ([]string, error) {
	var names []string

	// Use a scanner to handle different line endings (\n vs \r\n) correctly
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			names = append(names, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

// isText walks up the detection tree, so csv or other text subtypes are accepted.
func isText(detected *mimetype.MIME) bool {
	for mtype := detected; mtype != nil; mtype = mtype.Parent() {
		if mtype.Is("text/plain") {
			return true
		}
	}
	return false
}
