// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"maps"
	"slices"

	"github.com/charmbracelet/glamour"
)

// Id identifies a catalog entry. Each Id corresponds to one failure kind.
type Id int

const (
	InputNotFoundId Id = iota + 1
	InvalidArgumentId
	EmptyInputId
	WriteFailedId
	UnexpectedErrorId
	ConfigLoadFailedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

// Render renders the Markdown page with the given glamour style ("dark",
// "light", "notty", or a path to a JSON style file).
func (i *Issue) Render(stylePath string) (string, error) {
	md := string(i.mdMsg)
	if len(i.docLinks) > 0 {
		md += "\n\n## See also:\n"
		for _, link := range i.docLinks {
			md += "- <" + string(link) + ">\n"
		}
	}
	return render(md, stylePath)
}

var (
	render = glamour.Render

	inputNotFoundIssue = &Issue{
		id: InputNotFoundId,
		mdMsg: `
# Input not found

The path given as input does not exist, or is not the kind of entry the
command expects (a regular file for ` + "`urls`, `csv` and `convert`" + `, a
directory for ` + "`rename`" + `).

## Things you can try:
- Check the path for typos; relative paths resolve from the current directory
- List the directory to confirm the file is there:
~~~
$ ls -l path/to/input
~~~`,
	}

	invalidArgumentIssue = &Issue{
		id: InvalidArgumentId,
		mdMsg: `
# Invalid argument

A flag or positional argument was rejected before any output was written.

## Common causes:
- ` + "`--columns`" + ` names a column that is not in the CSV header
- ` + "`--operation filter`" + ` without ` + "`--value`" + `
- an invalid regular expression passed with ` + "`rename --regex`" + `
- an unknown ` + "`--format`" + `

## Things you can try:
- Print the CSV header to check column names (they are case-sensitive):
~~~
$ head -n 1 data.csv
~~~
- Run the command with ` + "`--help`" + ` to see accepted values`,
	}

	emptyInputIssue = &Issue{
		id: EmptyInputId,
		mdMsg: `
# Input is empty or unreadable

The input file exists but could not be parsed: it has no content, no header
row, or rows with an inconsistent number of fields.

## Things you can try:
- Make sure the first line is a header row
- Check the delimiter; use ` + "`--delimiter`" + ` for tab or semicolon separated files
- Quote fields that contain the delimiter`,
	}

	writeFailedIssue = &Issue{
		id: WriteFailedId,
		mdMsg: `
# Could not write output

The result was computed but writing it failed. No partial file was left at
the output path.

## Things you can try:
- Check permissions on the output directory
- Check free disk space
- Choose a different output path`,
	}

	unexpectedErrorIssue = &Issue{
		id: UnexpectedErrorId,
		mdMsg: `
# Unexpected error

Something failed that the utility does not classify.

## Things you can try:
- Run again with ` + "`--verbose`" + ` to see the full error chain`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration

The configuration file exists but is not valid CUE, or does not match the
configuration schema.

## Things you can try:
- Show where the configuration is read from:
~~~
$ toolbelt config path
~~~
- Regenerate a default file and compare:
~~~
$ toolbelt config dump
~~~`,
	}

	issues = map[Id]*Issue{
		inputNotFoundIssue.Id():    inputNotFoundIssue,
		invalidArgumentIssue.Id():  invalidArgumentIssue,
		emptyInputIssue.Id():       emptyInputIssue,
		writeFailedIssue.Id():      writeFailedIssue,
		unexpectedErrorIssue.Id():  unexpectedErrorIssue,
		configLoadFailedIssue.Id(): configLoadFailedIssue,
	}
)

// Values returns every catalog entry ordered by Id.
func Values() []*Issue {
	ids := slices.Sorted(maps.Keys(issues))
	out := make([]*Issue, 0, len(ids))
	for _, id := range ids {
		out = append(out, issues[id])
	}
	return out
}

// Get returns the catalog entry for id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}
