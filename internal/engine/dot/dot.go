// Package dot renders a task graph as Graphviz DOT text, for visualization
// only — it never influences scheduling or execution.
package dot

import (
	"fmt"
	"strings"

	"go.heftrun.dev/heft/internal/core/domain"
)

// Render returns g as a DOT digraph: one node per task, one edge per
// dependency, pointing from producer to consumer.
func Render(g *domain.Graph) (string, error) {
	if err := g.Validate(); err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("digraph tasks {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=box, style=rounded];\n\n")

	for _, id := range g.Keys() {
		task, _ := g.GetTask(id)
		sb.WriteString(fmt.Sprintf("  %q [label=%q];\n", id.String(), fmt.Sprintf("%s\\ncost=%g", id.String(), task.Cost)))
	}

	sb.WriteString("\n")

	for _, id := range g.Keys() {
		task, _ := g.GetTask(id)
		for _, dep := range task.Args.Dependencies() {
			sb.WriteString(fmt.Sprintf("  %q -> %q [label=%q];\n", dep.Producer.String(), id.String(), fmt.Sprintf("comm=%g", dep.CommCost)))
		}
	}

	sb.WriteString("}\n")
	return sb.String(), nil
}
