package manifest

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/llmtxt-labs/llmtxt/internal/dataset"
)

var pageColumns = []string{"Address", "Title 1", "Meta Description 1"}

func pages(records ...[]string) *dataset.Dataset {
	return dataset.New(pageColumns, records)
}

func TestRender_LiteralScenario(t *testing.T) {
	ds := pages([]string{"https://a.com", "A Page", "desc A"})

	want := "> Business Description: We sell widgets\n\n- [A Page](https://a.com): desc A\n"
	if got := Render(ds, "We sell widgets"); got != want {
		t.Errorf("Render() =\n%q\nwant\n%q", got, want)
	}
}

func TestRender_EmptyDescription(t *testing.T) {
	got := Render(pages(), "")
	if want := "> Business Description: \n\n"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_LineCount(t *testing.T) {
	for _, n := range []int{0, 1, 2, 25} {
		records := make([][]string, n)
		for i := range records {
			records[i] = []string{"https://a.com", "t", "d"}
		}
		out := Render(pages(records...), "biz")

		lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
		if got, want := len(lines), n+2; got != want {
			t.Errorf("n=%d: lines = %d, want %d", n, got, want)
		}
		bullets := 0
		for _, line := range lines {
			if strings.HasPrefix(line, "- [") {
				bullets++
			}
		}
		if bullets != n {
			t.Errorf("n=%d: bullets = %d", n, bullets)
		}
	}
}

func TestRender_PreservesOrder(t *testing.T) {
	ds := pages(
		[]string{"https://b.com", "t2", "d2"},
		[]string{"https://a.com", "t1", "d1"},
	)

	lines := strings.Split(Render(ds, ""), "\n")
	if lines[2] != "- [t2](https://b.com): d2" {
		t.Errorf("line 3 = %q", lines[2])
	}
	if lines[3] != "- [t1](https://a.com): d1" {
		t.Errorf("line 4 = %q", lines[3])
	}
}

func TestRender_Idempotent(t *testing.T) {
	ds := pages(
		[]string{"https://a.com", "A", "one"},
		[]string{"https://b.com", "B", "two"},
	)
	if Render(ds, "desc") != Render(ds, "desc") {
		t.Error("Render is not deterministic")
	}
}

func TestRender_NoEscaping(t *testing.T) {
	ds := pages([]string{"https://a.com/x?(y)", "A ] tricky [ title", "uses (parens) and ]"})

	want := "- [A ] tricky [ title](https://a.com/x?(y)): uses (parens) and ]\n"
	if got := Render(ds, ""); !strings.HasSuffix(got, want) {
		t.Errorf("Render() = %q, want suffix %q", got, want)
	}
}

func TestRender_EmptyCellsIncluded(t *testing.T) {
	ds := pages([]string{"https://a.com", "", ""})

	if got := Render(ds, "x"); !strings.HasSuffix(got, "- [](https://a.com): \n") {
		t.Errorf("Render() = %q", got)
	}
}

func TestRender_IgnoresExtraColumns(t *testing.T) {
	ds := dataset.New(
		[]string{"Status Code", "Meta Description 1", "Address", "Title 1"},
		[][]string{{"200", "desc", "https://a.com", "Title"}},
	)

	if got := Render(ds, ""); !strings.HasSuffix(got, "- [Title](https://a.com): desc\n") {
		t.Errorf("Render() = %q", got)
	}
}

func TestRows(t *testing.T) {
	rows := Rows(pages([]string{"https://a.com", "A", "d"}))
	if len(rows) != 1 {
		t.Fatalf("len = %d, want 1", len(rows))
	}
	if rows[0] != (Row{Address: "https://a.com", Title: "A", Description: "d"}) {
		t.Errorf("row = %+v", rows[0])
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWrite_PropagatesWriterError(t *testing.T) {
	err := Write(failingWriter{}, pages([]string{"https://a.com", "A", "d"}), "")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestWrite_MatchesRender(t *testing.T) {
	ds := pages([]string{"https://a.com", "A", "d"})

	var buf bytes.Buffer
	if err := Write(&buf, ds, "biz"); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if buf.String() != Render(ds, "biz") {
		t.Error("Write and Render disagree")
	}
}

func TestSummarize(t *testing.T) {
	ds := pages(
		[]string{"https://a.com", "A", "d"},
		[]string{"https://b.com", "B", "e"},
	)
	text := Render(ds, "biz")

	stats := Summarize(ds, text)
	if stats.Entries != 2 {
		t.Errorf("Entries = %d, want 2", stats.Entries)
	}
	if stats.Lines != 4 {
		t.Errorf("Lines = %d, want 4", stats.Lines)
	}
	if stats.Bytes != len(text) {
		t.Errorf("Bytes = %d, want %d", stats.Bytes, len(text))
	}
}
