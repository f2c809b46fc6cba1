package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/rocksling"
	md "github.com/nao1215/markdown"
)

// StrategiesMarkdown renders the strategy mapping and the target selected by
// the underwriting.
func StrategiesMarkdown(s rocksling.Strategies, u rocksling.Underwriting) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Strategy Mapping to Target Returns")
	doc.PlainText(fmt.Sprintf("%d Preqin strategies, underwriting %s.", len(s), md.Bold(string(u))))

	doc.H2("Mapping")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Preqin Strategy", "RockSling Strategy", "Target Net IRR", "Target Net MoIC", "Underwriting Target"},
	}
	for _, name := range s.Names() {
		st := s[name]
		target := rocksling.Multiple(st.TargetNetMoIC)
		if u == rocksling.IRRBased {
			target = rocksling.Percent(st.TargetNetIRR)
		}
		table.Rows = append(table.Rows, []string{
			st.Preqin,
			st.Rocksling,
			rocksling.Percent(st.TargetNetIRR),
			rocksling.Multiple(st.TargetNetMoIC),
			target,
		})
	}
	doc.Table(table)
	return doc.String()
}
