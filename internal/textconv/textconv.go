// SPDX-License-Identifier: MPL-2.0

// Package textconv converts text between letter-case styles.
package textconv

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/toolbelt/toolbelt/internal/fsutil"

	"github.com/spf13/afero"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	Upper       Format = "upper"
	Lower       Format = "lower"
	Title       Format = "title"
	Sentence    Format = "sentence"
	Alternating Format = "alternating"
)

// ErrUnknownFormat is wrapped when a format name is not recognized.
var ErrUnknownFormat = errors.New("unknown format")

// Format names a case conversion.
type Format string

// Formats lists every supported format in help-text order.
func Formats() []Format {
	return []Format{Upper, Lower, Title, Sentence, Alternating}
}

// ParseFormat validates s as a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q (valid: upper, lower, title, sentence, alternating)", ErrUnknownFormat, s)
}

// Convert applies format to text.
func Convert(text string, format Format) (string, error) {
	switch format {
	case Upper:
		return cases.Upper(language.Und).String(text), nil
	case Lower:
		return cases.Lower(language.Und).String(text), nil
	case Title:
		return cases.Title(language.Und).String(text), nil
	case Sentence:
		return sentenceCase(text), nil
	case Alternating:
		return alternatingCase(text), nil
	default:
		_, err := ParseFormat(string(format))
		return "", err
	}
}

// sentenceCase splits on '.', drops blank segments, capitalizes each one and
// joins them with ". ". A trailing period in the input is kept.
func sentenceCase(text string) string {
	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)

	var sentences []string
	for _, seg := range strings.Split(text, ".") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		first, size := utf8.DecodeRuneInString(seg)
		sentences = append(sentences, upper.String(string(first))+lower.String(seg[size:]))
	}

	out := strings.Join(sentences, ". ")
	if out != "" && strings.HasSuffix(strings.TrimSpace(text), ".") {
		out += "."
	}
	return out
}

// alternatingCase upper-cases runes at even indexes and lower-cases the rest.
// Every rune counts toward the index, spaces included.
func alternatingCase(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	i := 0
	for _, r := range text {
		if i%2 == 0 {
			sb.WriteRune(unicode.ToUpper(r))
		} else {
			sb.WriteRune(unicode.ToLower(r))
		}
		i++
	}
	return sb.String()
}

// Run converts the UTF-8 contents of input and writes them to output.
func Run(fs afero.Fs, input, output string, format Format) error {
	if _, err := ParseFormat(string(format)); err != nil {
		return err
	}
	if err := fsutil.RequireFile(fs, input); err != nil {
		return err
	}

	data, err := afero.ReadFile(fs, input)
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}

	converted, err := Convert(string(data), format)
	if err != nil {
		return err
	}
	return fsutil.WriteFileAtomic(fs, output, []byte(converted))
}
