package logview

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// Renderer formats table rows for the terminal. Styling goes through
// termenv, so output degrades to plain text automatically when the
// destination is not a TTY (pipes, test buffers).
type Renderer struct {
	out   *termenv.Output
	width int
}

// NewRenderer creates a renderer for w. width sizes the horizontal rules;
// pass 0 for the default 80 columns.
func NewRenderer(w io.Writer, width int) *Renderer {
	if width <= 0 {
		width = 80
	}
	return &Renderer{
		out:   termenv.NewOutput(w),
		width: width,
	}
}

// Header returns the column-header block. The viewer reprints it every 20
// rows so the columns stay identifiable while streaming.
func (r *Renderer) Header(container string) string {
	rule := r.dim(strings.Repeat("─", r.width))
	title := fmt.Sprintf("%s - Container: %s",
		r.bold("MCP Server Log Viewer"), r.cyan(container))
	columns := r.dim("Time     St Tool                 Arguments                  Duration Size")
	return fmt.Sprintf("\n%s\n%s\n%s\n%s", rule, title, columns, rule)
}

// Banner announces a server start.
func (r *Renderer) Banner(version string) string {
	bar := strings.Repeat("═", r.width)
	body := fmt.Sprintf("%s\n🚀 MCP Server v%s\n%s", bar, version, bar)
	return "\n" + r.green(body) + "\n"
}

// Success renders one completed call.
func (r *Renderer) Success(ts, tool, args string, durationMS float64, size int) string {
	return fmt.Sprintf("%s %s %s %s %s %s",
		r.gray(ts),
		r.green("✓"),
		r.bold(fmt.Sprintf("%-20s", tool)),
		r.cyan(fmt.Sprintf("%-25s", args)),
		r.yellow(fmt.Sprintf("%8.2fms", durationMS)),
		r.dim(fmt.Sprintf("%4db", size)),
	)
}

// Failure renders one failed call. errText is expected pre-truncated.
func (r *Renderer) Failure(ts, tool, errText string) string {
	return fmt.Sprintf("%s %s %s %s",
		r.gray(ts),
		r.red("✗"),
		r.bold(fmt.Sprintf("%-20s", tool)),
		r.red(errText),
	)
}

// Stopped renders the shutdown marker.
func (r *Renderer) Stopped() string {
	return r.yellow("⏹  Stopped")
}

func (r *Renderer) bold(s string) string { return r.out.String(s).Bold().String() }
func (r *Renderer) dim(s string) string  { return r.out.String(s).Faint().String() }

func (r *Renderer) green(s string) string {
	return r.out.String(s).Foreground(termenv.ANSIGreen).String()
}

func (r *Renderer) red(s string) string {
	return r.out.String(s).Foreground(termenv.ANSIRed).String()
}

func (r *Renderer) yellow(s string) string {
	return r.out.String(s).Foreground(termenv.ANSIYellow).String()
}

func (r *Renderer) cyan(s string) string {
	return r.out.String(s).Foreground(termenv.ANSICyan).String()
}

func (r *Renderer) gray(s string) string {
	return r.out.String(s).Foreground(termenv.ANSIBrightBlack).String()
}
