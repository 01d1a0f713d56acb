package shell

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

var (
	ErrUnrecognized = errors.New("Unrecognized command!")
	ErrNoInteger    = errors.New("Could not read an integer value!")
)

// reader splits command input into characters, words and the rest of a line.
type reader struct {
	r         *bufio.Reader
	lineStart bool // no part of the current line has been consumed
}

func newReader(r io.Reader) *reader {
	return &reader{r: bufio.NewReader(r), lineStart: true}
}

func (rd *reader) readRune() (rune, error) {
	c, _, err := rd.r.ReadRune()
	if err != nil {
		return 0, err
	}
	rd.lineStart = c == '\n'
	return c, nil
}

func (rd *reader) unreadRune() {
	_ = rd.r.UnreadRune()
}

// char returns the next character that is not whitespace.
func (rd *reader) char() (rune, error) {
	for {
		c, err := rd.readRune()
		if err != nil {
			return 0, err
		}
		if !unicode.IsSpace(c) {
			return c, nil
		}
	}
}

// word returns the next run of characters that are not whitespace.
func (rd *reader) word() (string, error) {
	c, err := rd.char()
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for !unicode.IsSpace(c) {
		sb.WriteRune(c)
		if c, _, err = rd.r.ReadRune(); err != nil {
			break
		}
	}
	if err == nil {
		rd.unreadRune()
	}
	return sb.String(), nil
}

func (rd *reader) integer() (int, error) {
	w, err := rd.word()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(w)
	if err != nil {
		return 0, ErrNoInteger
	}
	return n, nil
}

// line returns what is left of the current line, without the newline.
func (rd *reader) line() (string, error) {
	s, err := rd.r.ReadString('\n')
	if err != nil && s == "" {
		return "", err
	}
	rd.lineStart = true
	return strings.TrimSuffix(s, "\n"), nil
}

// skipLine discards what is left of the current line, if anything.
func (rd *reader) skipLine() {
	if rd.lineStart {
		return
	}
	_, _ = rd.line()
}
