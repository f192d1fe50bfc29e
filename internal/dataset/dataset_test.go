package dataset

import "testing"

func TestNewPadsShortRecords(t *testing.T) {
	ds := New([]string{"Address", "Title 1", "Meta Description 1"}, [][]string{
		{"https://a.com", "A"},
	})

	if got := len(ds.Records[0]); got != 3 {
		t.Fatalf("record len = %d, want 3", got)
	}
	if got := ds.Value(0, "Meta Description 1"); got != "" {
		t.Errorf("Value(missing cell) = %q, want empty", got)
	}
}

func TestHasColumnExactMatch(t *testing.T) {
	ds := New([]string{"Address", "Title 1"}, nil)

	tests := []struct {
		name string
		want bool
	}{
		{"Address", true},
		{"Title 1", true},
		{"address", false},
		{"Title 1 ", false},
		{"Meta Description 1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ds.HasColumn(tt.name); got != tt.want {
				t.Errorf("HasColumn(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestDuplicateColumnFirstWins(t *testing.T) {
	ds := New([]string{"Title 1", "Title 1"}, [][]string{{"first", "second"}})
	if got := ds.Value(0, "Title 1"); got != "first" {
		t.Errorf("Value = %q, want %q", got, "first")
	}
}

func TestValueUnknownColumn(t *testing.T) {
	ds := New([]string{"Address"}, [][]string{{"https://a.com"}})
	if got := ds.Value(0, "Nope"); got != "" {
		t.Errorf("Value(unknown) = %q, want empty", got)
	}
	if ds.Len() != 1 {
		t.Errorf("Len() = %d, want 1", ds.Len())
	}
}
