package rocksling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_Cell(t *testing.T) {
	table := &Table{Header: []string{"A", "B"}, Rows: [][]string{{"1", "2"}, {"3"}}}
	testCases := []struct {
		row  int
		col  string
		want string
	}{
		{0, "B", "2"},
		{1, "A", "3"},
		{1, "B", ""},
		{0, "C", ""},
		{2, "A", ""},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, table.Cell(tc.row, tc.col), "Cell(%d, %q)", tc.row, tc.col)
	}
}

func TestParseID(t *testing.T) {
	testCases := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"12", 12, true},
		{" 12.0 ", 12, true},
		{"12.5", 0, false},
		{"", 0, false},
		{"abc", 0, false},
	}
	for _, tc := range testCases {
		got, ok := parseID(tc.in)
		assert.Equal(t, tc.want, got, "parseID(%q)", tc.in)
		assert.Equal(t, tc.wantOK, ok, "parseID(%q) ok", tc.in)
	}
}
