package renderer

import (
	"strconv"

	"github.com/etnz/rocksling"
	md "github.com/nao1215/markdown"
)

func itoa(n int) string { return strconv.Itoa(n) }

// countTable renders label counts as a two column table.
func countTable(doc *md.Markdown, label, unit string, counts []rocksling.Count) {
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{label, unit},
	}
	for _, c := range counts {
		table.Rows = append(table.Rows, []string{c.Label, itoa(c.N)})
	}
	doc.Table(table)
}
