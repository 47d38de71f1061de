package ui

import (
	"strings"
	"testing"
)

func TestFormatTableAligns(t *testing.T) {
	got := FormatTable(
		[]string{"ID", "TITLE"},
		[][]string{
			{"ab", "write report"},
			{"cdef", "ship"},
		},
	)

	want := "ID    TITLE\nab    write report\ncdef  ship\n"
	if got != want {
		t.Errorf("FormatTable = %q, want %q", got, want)
	}
}

func TestFormatTableNormalizesNewlines(t *testing.T) {
	got := FormatTable([]string{"TITLE"}, [][]string{{"two\nlines"}})
	if strings.Count(got, "\n") != 2 {
		t.Errorf("embedded newline should collapse to a space: %q", got)
	}
	if !strings.Contains(got, "two lines") {
		t.Errorf("got %q", got)
	}
}

func TestFormatTableIgnoresANSIWidth(t *testing.T) {
	styled := "\x1b[1mab\x1b[0m"
	got := FormatTable([]string{"ID", "TITLE"}, [][]string{
		{styled, "x"},
		{"cd", "y"},
	})

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if idx := strings.Index(stripANSICodes(lines[1]), "x"); idx != strings.Index(lines[2], "y") {
		t.Errorf("styled cell broke alignment:\n%s", got)
	}
}

func TestTruncateTableCell(t *testing.T) {
	short := "hello"
	if got := TruncateTableCell(short); got != short {
		t.Errorf("short cell should pass through, got %q", got)
	}

	long := strings.Repeat("x", 80)
	got := TruncateTableCell(long)
	if !strings.HasSuffix(got, "...") {
		t.Errorf("long cell should end with ellipsis, got %q", got)
	}
	if w := displayWidth(got); w != tableCellMaxWidth {
		t.Errorf("truncated width = %d, want %d", w, tableCellMaxWidth)
	}
}

func TestTableBuilder(t *testing.T) {
	builder := NewTableBuilder([]string{"A"}, 2)
	if !builder.Empty() {
		t.Error("new builder should be empty")
	}
	builder.AddRow([]string{"1"})
	if builder.Empty() {
		t.Error("builder with a row should not be empty")
	}
	if got := builder.String(); got != "A\n1\n" {
		t.Errorf("String = %q", got)
	}
}

func TestUniqueIDPrefixLengths(t *testing.T) {
	lengths := UniqueIDPrefixLengths([]string{"abcd", "abxy", "zzzz"})

	if lengths["abcd"] != 3 {
		t.Errorf("abcd prefix = %d, want 3", lengths["abcd"])
	}
	if lengths["abxy"] != 3 {
		t.Errorf("abxy prefix = %d, want 3", lengths["abxy"])
	}
	if lengths["zzzz"] != 1 {
		t.Errorf("zzzz prefix = %d, want 1", lengths["zzzz"])
	}
}
