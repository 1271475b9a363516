// SPDX-License-Identifier: MPL-2.0

// Package urlextract finds http(s) URLs in a text file and keeps those with a
// given prefix.
package urlextract

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/toolbelt/toolbelt/internal/fsutil"

	"github.com/spf13/afero"
)

// urlPattern matches an http or https scheme followed by everything up to
// whitespace, a double quote, or an angle bracket.
var urlPattern = regexp.MustCompile(`https?://[^\s"<>]+`)

// Result summarizes one extraction run.
type Result struct {
	// Found is the number of URLs in the input before filtering.
	Found int
	// URLs are the URLs that start with the prefix, in input order.
	URLs []string
}

// FindAll returns every URL in text, in order of appearance.
func FindAll(text string) []string {
	return urlPattern.FindAllString(text, -1)
}

// Extract returns the URLs in text that start with prefix. An empty prefix
// keeps every URL.
func Extract(text, prefix string) []string {
	return filterPrefix(FindAll(text), prefix)
}

func filterPrefix(urls []string, prefix string) []string {
	kept := make([]string, 0, len(urls))
	for _, u := range urls {
		if strings.HasPrefix(u, prefix) {
			kept = append(kept, u)
		}
	}
	return kept
}

// Run reads input, extracts URLs starting with prefix and writes them to
// output, one per line.
func Run(fs afero.Fs, input, output, prefix string) (Result, error) {
	if err := fsutil.RequireFile(fs, input); err != nil {
		return Result{}, err
	}

	data, err := afero.ReadFile(fs, input)
	if err != nil {
		return Result{}, fmt.Errorf("read %s: %w", input, err)
	}

	all := FindAll(string(data))
	res := Result{Found: len(all), URLs: filterPrefix(all, prefix)}

	err = fsutil.WriteAtomic(fs, output, func(w io.Writer) error {
		for _, u := range res.URLs {
			if _, err := io.WriteString(w, u+"\n"); err != nil {
				return fmt.Errorf("%w %s: %w", fsutil.ErrWriteFailed, output, err)
			}
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	return res, nil
}
