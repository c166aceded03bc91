package evaluation

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
)

// bcosPerLine is the number of values per line in the exported BCO list.
const bcosPerLine = 10

// PrintRunSummary writes the run totals.
func PrintRunSummary(w io.Writer, summary RunSummary) error {
	data := pterm.TableData{
		{"Quantity", "Value"},
		{"Events processed", humanize.Comma(int64(summary.EventsProcessed))},
		{"Events discarded", humanize.Comma(int64(summary.EventsDiscarded))},
		{"Waveforms", humanize.Comma(int64(summary.Waveforms))},
		{"Orphan waveforms", humanize.Comma(int64(summary.OrphanWaveforms))},
		{"Distinct orphans", humanize.Comma(int64(summary.DistinctOrphans))},
		{"Distinct lvl1 BCOs", humanize.Comma(int64(len(summary.Histogram)))},
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("error rendering run summary: %w", err)
	}
	_, err = fmt.Fprintln(w, table)
	return err
}

// PrintBcoHistogram writes the number of waveforms per lvl1 BCO.
func PrintBcoHistogram(w io.Writer, entries []BcoCount) error {
	data := pterm.TableData{{"lvl1 BCO", "waveforms"}}
	for _, entry := range entries {
		data = append(data, []string{
			fmt.Sprintf("0x%x", entry.Bco),
			humanize.Comma(int64(entry.Count)),
		})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("error rendering bco histogram: %w", err)
	}
	_, err = fmt.Fprintln(w, table)
	return err
}

// WriteBcoList exports the lvl1 BCOs as a Go slice literal, so that they can
// be pasted in offline code.
func WriteBcoList(w io.Writer, bcos []uint64) error {
	var b strings.Builder
	b.WriteString("var lvl1BcoList = []uint64{\n")
	for i, bco := range bcos {
		if i%bcosPerLine == 0 {
			b.WriteString("\t")
		} else {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "0x%x,", bco)
		if i%bcosPerLine == bcosPerLine-1 || i == len(bcos)-1 {
			b.WriteString("\n")
		}
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}
