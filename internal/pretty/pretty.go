// internal/pretty/pretty.go
package pretty

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"fastakit/pkg/api"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 2)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
)

// RenderStats renders file statistics as a bordered terminal card.
func RenderStats(st api.StatsV1) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(st.Path))
	b.WriteByte('\n')

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(value)
		b.WriteByte('\n')
	}
	row("sequences", fmt.Sprintf("%d", st.Sequences))
	row("total length", fmt.Sprintf("%d", st.TotalLength))
	row("min / max", fmt.Sprintf("%d / %d", st.MinLength, st.MaxLength))
	row("avg length", fmt.Sprintf("%.2f", st.AvgLength))

	names := make([]string, 0, len(st.SequenceTypes))
	for k := range st.SequenceTypes {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, name := range names {
		row(strings.ToLower(name), fmt.Sprintf("%d", st.SequenceTypes[name]))
	}

	return cardStyle.Render(strings.TrimSuffix(b.String(), "\n")) + "\n"
}
