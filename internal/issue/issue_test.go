// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestId_Constants(t *testing.T) {
	ids := []Id{
		InputNotFoundId,
		InvalidArgumentId,
		EmptyInputId,
		WriteFailedId,
		UnexpectedErrorId,
		ConfigLoadFailedId,
	}

	seen := make(map[Id]bool)
	for _, id := range ids {
		if seen[id] {
			t.Errorf("duplicate ID: %d", id)
		}
		seen[id] = true

		if Get(id) == nil {
			t.Errorf("Get(%d) returned nil; every Id needs a catalog entry", id)
		}
	}

	if InputNotFoundId != 1 {
		t.Errorf("InputNotFoundId = %d, want 1", InputNotFoundId)
	}
}

func TestGet_Unknown(t *testing.T) {
	if got := Get(Id(999)); got != nil {
		t.Errorf("Get(999) = %v, want nil", got)
	}
}

func TestValues_OrderedById(t *testing.T) {
	values := Values()
	if len(values) != len(issues) {
		t.Fatalf("Values() returned %d entries, want %d", len(values), len(issues))
	}
	for i := 1; i < len(values); i++ {
		if values[i-1].Id() >= values[i].Id() {
			t.Errorf("Values() not ordered: %d before %d", values[i-1].Id(), values[i].Id())
		}
	}
}

func TestIssue_MarkdownMsg(t *testing.T) {
	msg := string(Get(InvalidArgumentId).MarkdownMsg())
	if !strings.Contains(msg, "# Invalid argument") {
		t.Errorf("markdown should contain heading, got %q", msg)
	}
	if !strings.Contains(msg, "--columns") {
		t.Error("markdown should mention --columns")
	}
}

func TestIssue_Render(t *testing.T) {
	original := render
	t.Cleanup(func() { render = original })

	var gotStyle, gotInput string
	render = func(in, stylePath string) (string, error) {
		gotInput, gotStyle = in, stylePath
		return "rendered", nil
	}

	iss := &Issue{id: 42, mdMsg: "# Title", docLinks: []HttpLink{"https://example.com/docs"}}
	out, err := iss.Render("dark")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if out != "rendered" {
		t.Errorf("Render() = %q, want %q", out, "rendered")
	}
	if gotStyle != "dark" {
		t.Errorf("style = %q, want dark", gotStyle)
	}
	if !strings.Contains(gotInput, "See also") || !strings.Contains(gotInput, "https://example.com/docs") {
		t.Errorf("doc links not appended: %q", gotInput)
	}
}

func TestIssue_RenderWithGlamour(t *testing.T) {
	out, err := Get(EmptyInputId).Render("notty")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(out, "Input is empty or unreadable") {
		t.Errorf("rendered output missing heading: %q", out)
	}
}
