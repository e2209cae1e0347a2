// internal/writers/stats_text.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"fastakit/pkg/api"
)

func init() {
	RegisterStats("text", writeStatsText)
	RegisterStats("tsv", writeStatsTSV)
}

// typeNames returns the alphabet names in deterministic order.
func typeNames(m map[string]int) []string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func writeStatsText(w io.Writer, st api.StatsV1) error {
	if _, err := fmt.Fprintf(w,
		"file\t%s\nsequences\t%d\ntotal_length\t%d\nmin_length\t%d\nmax_length\t%d\navg_length\t%.2f\n",
		st.Path, st.Sequences, st.TotalLength, st.MinLength, st.MaxLength, st.AvgLength,
	); err != nil {
		return err
	}
	for _, name := range typeNames(st.SequenceTypes) {
		if _, err := fmt.Fprintf(w, "type_%s\t%d\n", name, st.SequenceTypes[name]); err != nil {
			return err
		}
	}
	return nil
}

// TSVHeader is the canonical header row for the tabular stats output.
const TSVHeader = "path\tsequences\ttotal_length\tmin_length\tmax_length\tavg_length\tdna\trna\tprotein\tunknown"

func writeStatsTSV(w io.Writer, st api.StatsV1) error {
	if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%.2f\t%d\t%d\t%d\t%d\n",
		st.Path, st.Sequences, st.TotalLength, st.MinLength, st.MaxLength, st.AvgLength,
		st.SequenceTypes["DNA"], st.SequenceTypes["RNA"],
		st.SequenceTypes["PROTEIN"], st.SequenceTypes["UNKNOWN"],
	)
	return err
}
