// Package console reads player input and writes game text.
package console

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/myrjola/detectivequest/internal/errors"
)

var (
	ErrInputClosed    = errors.NewSentinel("input closed")
	ErrMalformedInput = errors.NewSentinel("malformed input")
	ErrNameTooLong    = errors.NewSentinel("name too long")
)

// Console is a line oriented terminal.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// readLine returns the next line without its line terminator. A final line without terminator is still returned.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", errors.Wrap(err, "read line")
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadChoice returns the first non-space character of the next non-blank line in lower case. The rest of the line is
// discarded.
func (c *Console) ReadChoice() (rune, error) {
	for {
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(line)
		if r == utf8.RuneError && size <= 1 {
			return 0, errors.Wrap(ErrMalformedInput, "decode choice", slog.String("line", line))
		}
		return unicode.ToLower(r), nil
	}
}

// ReadName returns the next non-blank line trimmed of surrounding space. Lines longer than maxLength characters are
// consumed and rejected with ErrNameTooLong.
func (c *Console) ReadName(maxLength int) (string, error) {
	for {
		line, err := c.readLine()
		if err != nil {
			return "", err
		}
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		if !utf8.ValidString(name) {
			return "", errors.Wrap(ErrMalformedInput, "decode name", slog.String("line", line))
		}
		if n := utf8.RuneCountInString(name); n > maxLength {
			return "", errors.Wrap(ErrNameTooLong, "read name",
				slog.Int("length", n), slog.Int("maxLength", maxLength))
		}
		return name, nil
	}
}

// Printf writes formatted text. Write errors are ignored, the player's terminal is the only reader.
func (c *Console) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(c.out, format, a...)
}

// Println writes the operands followed by a newline.
func (c *Console) Println(a ...any) {
	_, _ = fmt.Fprintln(c.out, a...)
}
