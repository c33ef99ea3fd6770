package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"gcombinatr/internal/core/domain"
)

var (
	colorHealthy   = lipgloss.Color("42")  // green
	colorUnhealthy = lipgloss.Color("196") // red
	colorRequired  = lipgloss.Color("220") // yellow
	colorMuted     = lipgloss.Color("241") // grey
	colorTitle     = lipgloss.Color("51")  // cyan

	titleStyle = lipgloss.NewStyle().
			Foreground(colorTitle).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("201")).
			Bold(true)

	serviceStyle = lipgloss.NewStyle().
			Foreground(colorTitle)

	healthyStyle = lipgloss.NewStyle().
			Foreground(colorHealthy)

	unhealthyStyle = lipgloss.NewStyle().
			Foreground(colorUnhealthy)

	requiredStyle = lipgloss.NewStyle().
			Foreground(colorRequired)

	optionalStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	detailStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// Column widths mirror the report's fixed layout.
const (
	serviceWidth  = 20
	statusWidth   = 8
	detailWidth   = 50
	requiredWidth = 10
)

// Renderer writes the human-facing verification report.
type Renderer struct {
	w io.Writer
}

// NewRenderer creates a report renderer over w.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Table renders all probe results as a table, preserving probe order.
func (r *Renderer) Table(summary domain.RunSummary) {
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, titleStyle.Render("GCombinatr Service Verification"))
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, titleStyle.Render("Service Status"))

	fmt.Fprintln(r.w, row(
		headerStyle.Render(cell("Service", serviceWidth)),
		headerStyle.Render(cell("Status", statusWidth)),
		headerStyle.Render(cell("Details", detailWidth)),
		headerStyle.Render(cell("Required", requiredWidth)),
	))

	for _, rep := range summary.Reports {
		status := unhealthyStyle.Render(cell("❌", statusWidth))
		if rep.Result.OK {
			status = healthyStyle.Render(cell("✅", statusWidth))
		}
		required := optionalStyle.Render(cell("No", requiredWidth))
		if rep.Required {
			required = requiredStyle.Render(cell("Yes", requiredWidth))
		}

		fmt.Fprintln(r.w, row(
			serviceStyle.Render(cell(rep.Name, serviceWidth)),
			status,
			detailStyle.Render(cell(rep.Result.Detail, detailWidth)),
			required,
		))
	}
}

// Summary prints the overall verdict and, on failure, where to look next.
func (r *Renderer) Summary(summary domain.RunSummary) {
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, "Summary:")
	if summary.AllRequiredOK {
		fmt.Fprintln(r.w, healthyStyle.Bold(true).Render("✅ All required services are running!"))
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, "You're ready to start the GCombinatr ecosystem! 🚀")
		return
	}
	fmt.Fprintln(r.w, unhealthyStyle.Bold(true).Render("❌ Some required services are not running."))
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, "Please check the INSTALL.md file for setup instructions.")
	fmt.Fprintln(r.w, "Run ./scripts/start-services.sh to start all services.")
}

// EnvFileNotice reports whether the local environment file exists. It is
// informational only and never affects the exit code.
func (r *Renderer) EnvFileNotice(found bool, path string) {
	fmt.Fprintln(r.w)
	if found {
		fmt.Fprintln(r.w, healthyStyle.Render(fmt.Sprintf("✅ %s file found", path)))
		return
	}
	fmt.Fprintln(r.w, requiredStyle.Render(fmt.Sprintf("⚠️  %s file not found. Run: cp %s.example %s", path, path, path)))
}

func cell(s string, width int) string {
	return lipgloss.NewStyle().Width(width).MaxHeight(1).Render(s)
}

func row(cells ...string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}
