package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-ats-gateway/internal/gateway"
	"github.com/MKhiriev/go-ats-gateway/internal/service"
)

type toastKind int

const (
	toastInfo toastKind = iota
	toastSuccess
	toastWarning
	toastError
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	headerStyle = lipgloss.NewStyle().Bold(true)
	keyStyle    = lipgloss.NewStyle().Faint(true)
	emptyStyle  = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	deniedStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	toastStyles = map[toastKind]lipgloss.Style{
		toastInfo:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		toastSuccess: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Foreground(lipgloss.Color("42")),
		toastWarning: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Foreground(lipgloss.Color("214")),
		toastError:   lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Padding(0, 1).Foreground(lipgloss.Color("196")),
	}
)

const (
	messageEmpty  = "Nothing to show."
	messageDenied = "Access denied. Your role does not allow this action."
)

// toast writes a boxed notification to the error stream.
func (a *App) toast(kind toastKind, msg string) {
	fmt.Fprintln(a.errOut, toastStyles[kind].Render(msg))
}

// fail renders err for the user and returns [ErrHandled]. A missing
// resource renders as an empty state and is not a failure.
func (a *App) fail(err error) error {
	switch {
	case err == nil:
		return nil
	case service.IsAbsent(err):
		fmt.Fprintln(a.out, emptyStyle.Render(messageEmpty))
		return nil
	case service.IsDenied(err):
		fmt.Fprintln(a.errOut, deniedStyle.Render(messageDenied))
		return ErrHandled
	}

	msg := err.Error()
	if apiErr, ok := gateway.AsAPIError(err); ok {
		msg = apiErr.Message
	}
	a.toast(toastError, msg)

	if a.logger != nil {
		log := a.logger.Debug().Err(err).Str("command", a.currentPath)
		var apiErr *gateway.APIError
		if errors.As(err, &apiErr) {
			log = log.Int("status", apiErr.Status).Str("code", apiErr.Code)
		}
		log.Msg("command failed")
	}
	return ErrHandled
}

// table renders rows under headers in aligned columns. An empty row set
// renders as the empty state.
func table(w io.Writer, headers []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(w, emptyStyle.Render(messageEmpty))
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := range headers {
			if i < len(row) {
				widths[i] = max(widths[i], lipgloss.Width(row[i]))
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		for i := range headers {
			if i > 0 {
				b.WriteString(" │ ")
			}
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			b.WriteString(cell)
			if i < len(headers)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)))
			}
		}
		b.WriteString("\n")
	}

	header := make([]string, len(headers))
	for i, h := range headers {
		header[i] = headerStyle.Render(h)
	}
	writeRow(header)

	for i, width := range widths {
		if i > 0 {
			b.WriteString("─┼─")
		}
		b.WriteString(strings.Repeat("─", width))
	}
	b.WriteString("\n")

	for _, row := range rows {
		writeRow(row)
	}

	fmt.Fprint(w, b.String())
}

// details renders label/value pairs one per line.
func details(w io.Writer, title string, pairs [][2]string) {
	width := 0
	for _, p := range pairs {
		width = max(width, lipgloss.Width(p[0]))
	}

	fmt.Fprintln(w, titleStyle.Render(title))
	for _, p := range pairs {
		label := p[0] + strings.Repeat(" ", width-lipgloss.Width(p[0]))
		fmt.Fprintf(w, "  %s  %s\n", keyStyle.Render(label), p[1])
	}
}

// pageFooter reports the position within a paginated listing.
func pageFooter(w io.Writer, page, pageSize, total int, hasNext bool) {
	if total == 0 {
		return
	}
	footer := fmt.Sprintf("page %d · %d per page · %d total", max(page, 1), pageSize, total)
	if hasNext {
		footer += " · more with --page " + fmt.Sprint(max(page, 1)+1)
	}
	fmt.Fprintln(w, helpStyle.Render(footer))
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// show prints v as JSON when --json is set and calls render otherwise.
func (a *App) show(v any, render func()) error {
	if a.jsonOutput {
		return printJSON(a.out, v)
	}
	render()
	return nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(time.DateTime)
}

func formatSalary(lo, hi *int) string {
	switch {
	case lo != nil && hi != nil:
		return fmt.Sprintf("%d-%d", *lo, *hi)
	case lo != nil:
		return fmt.Sprintf("from %d", *lo)
	case hi != nil:
		return fmt.Sprintf("up to %d", *hi)
	}
	return "-"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
