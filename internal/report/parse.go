package report

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
)

// maxTokenSize bounds a single token. Lines may be any length.
const maxTokenSize = 1 << 20

var newline = []byte{'\n'}

// ParseError reports an input token that is not a valid integer.
type ParseError struct {
	// Token is the offending text.
	Token string

	// Index is the 0-based position of the token among all tokens.
	Index int

	// Line is the 1-based input line holding the token.
	Line int

	// Err is the underlying strconv error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: invalid entry %q (token %d): %v", e.Line, e.Token, e.Index, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsParseError returns true if err is or wraps a *ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// Parse builds a report from whitespace-separated integers.
func Parse(input string) (*Report, error) {
	return Read(strings.NewReader(input))
}

// Read builds a report from whitespace-separated integers read from r.
// Read errors are returned wrapped; a malformed token returns a *ParseError.
func Read(r io.Reader) (*Report, error) {
	words := &wordLines{line: 1}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxTokenSize)
	scanner.Split(words.split)

	var entries []Entry
	for scanner.Scan() {
		tok := scanner.Text()
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return nil, &ParseError{
				Token: tok,
				Index: len(entries),
				Line:  words.tokenLine,
				Err:   err,
			}
		}
		entries = append(entries, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}

	return New(entries...), nil
}

// Load reads a report from the file at path.
// A missing file yields an error satisfying errors.Is(err, fs.ErrNotExist).
func Load(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load report: %w", err)
	}
	defer f.Close()

	r, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("load report %s: %w", path, err)
	}
	return r, nil
}

// wordLines splits input like bufio.ScanWords and remembers the line each
// token starts on.
type wordLines struct {
	line      int // line at the scan position
	tokenLine int // line of the last token returned
}

func (w *wordLines) split(data []byte, atEOF bool) (int, []byte, error) {
	advance, token, err := bufio.ScanWords(data, atEOF)
	if token != nil {
		start := bytes.IndexFunc(data, func(r rune) bool { return !unicode.IsSpace(r) })
		w.tokenLine = w.line + bytes.Count(data[:start], newline)
	}
	w.line += bytes.Count(data[:advance], newline)
	return advance, token, err
}
