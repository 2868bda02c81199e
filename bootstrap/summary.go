package bootstrap

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/kbukum/fixturekit/component"
)

// Summary prints what a task started and how healthy it is.
type Summary struct {
	serviceName     string
	version         string
	startupDuration time.Duration
	out             io.Writer
}

// NewSummary creates a summary written to out.
func NewSummary(serviceName, version string, out io.Writer) *Summary {
	return &Summary{
		serviceName: serviceName,
		version:     version,
		out:         out,
	}
}

// SetStartupDuration records how long startup took.
func (s *Summary) SetStartupDuration(d time.Duration) {
	s.startupDuration = d
}

// Display prints the components described by registry followed by a live
// health check of every registered component.
func (s *Summary) Display(ctx context.Context, registry *component.Registry) {
	w := s.out
	header := s.serviceName
	if s.version != "" {
		header += " " + s.version
	}
	fmt.Fprintf(w, "\n🧪 %s ready in %.2fs\n", header, s.startupDuration.Seconds())

	if registry == nil {
		fmt.Fprintf(w, "   └── No components registered\n\n")
		return
	}

	descriptions := registry.Describe()
	if len(descriptions) > 0 {
		fmt.Fprintf(w, "\n📦 Components\n")
		for i, d := range descriptions {
			fmt.Fprintf(w, "   %s %s [%s]: %s\n", treePrefix(i, len(descriptions)), d.Name, d.Type, d.Details)
		}
	}

	results := registry.HealthAll(ctx)
	if len(results) == 0 {
		fmt.Fprintf(w, "   └── No components registered\n\n")
		return
	}

	fmt.Fprintf(w, "\n🏥 Health Check\n")
	healthy := 0
	for i, h := range results {
		msg := ""
		if h.Message != "" {
			msg = " (" + h.Message + ")"
		}
		fmt.Fprintf(w, "   %s %s %s: %s%s\n",
			treePrefix(i, len(results)), healthStatusIcon(h.Status), h.Name, strings.ToLower(string(h.Status)), msg)
		if h.OK() {
			healthy++
		}
	}

	if healthy == len(results) {
		fmt.Fprintf(w, "\n✅ All components healthy (%d/%d)\n\n", healthy, len(results))
	} else {
		fmt.Fprintf(w, "\n⚠️  Some components have issues (%d/%d healthy)\n\n", healthy, len(results))
	}
}

func treePrefix(i, n int) string {
	if i == n-1 {
		return "└──"
	}
	return "├──"
}

func healthStatusIcon(status component.HealthStatus) string {
	switch status {
	case component.StatusHealthy:
		return "✅"
	case component.StatusDegraded:
		return "⚠️"
	case component.StatusUnhealthy:
		return "❌"
	default:
		return "❓"
	}
}
