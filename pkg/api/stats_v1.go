// pkg/api/stats_v1.go
package api

import "fastakit-core/fasta"

// StatsV1 is the stable JSON schema for file statistics. Keep fields,
// names, and types stable. Add new fields only with ",omitempty".
type StatsV1 struct {
	Path          string         `json:"path,omitempty"`
	Sequences     int            `json:"total_sequences"`
	TotalLength   int            `json:"total_length"`
	SequenceTypes map[string]int `json:"sequence_types"`
	MinLength     int            `json:"min_length"`
	MaxLength     int            `json:"max_length"`
	AvgLength     float64        `json:"avg_length"`
}

// StatsFromCore converts the library's FileStats into the wire schema.
func StatsFromCore(path string, st *fasta.FileStats) StatsV1 {
	out := StatsV1{
		Path:          path,
		Sequences:     st.Sequences,
		TotalLength:   st.TotalLength,
		SequenceTypes: make(map[string]int, len(st.TypeCounts)),
		MinLength:     st.MinLength,
		MaxLength:     st.MaxLength,
		AvgLength:     st.AvgLength,
	}
	for a, n := range st.TypeCounts {
		out.SequenceTypes[a.String()] = n
	}
	return out
}
