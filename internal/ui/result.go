package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// maxReplyLines caps how much of a rejected reply is shown in a failure box
const maxReplyLines = 12

// ResultType indicates success or failure
type ResultType int

const (
	ResultSuccess ResultType = iota
	ResultFailure
)

// Result represents a result box for a decoded (or rejected) reply
type Result struct {
	Type            ResultType        // Success or failure
	Title           string            // e.g., "Status decoded"
	Details         map[string]string // Key-value details, rendered in key order
	Body            string            // Preformatted record (success results)
	Error           error             // Error (failure results)
	Reply           string            // Rejected reply text (failure results)
	Troubleshooting []string          // Troubleshooting tips (failure results)
	Width           int               // Terminal width
	Plain           bool              // Render without borders or colors
}

// NewSuccessResult creates a success result box
func NewSuccessResult(title string, details map[string]string) *Result {
	return &Result{
		Type:    ResultSuccess,
		Title:   title,
		Details: details,
		Width:   GetTerminalWidth(),
		Plain:   !IsTerminal(),
	}
}

// NewFailureResult creates a failure result box
func NewFailureResult(title string, err error, troubleshooting []string) *Result {
	return &Result{
		Type:            ResultFailure,
		Title:           title,
		Error:           err,
		Troubleshooting: troubleshooting,
		Width:           GetTerminalWidth(),
		Plain:           !IsTerminal(),
	}
}

// SetPlain switches plain-text rendering on or off
func (r *Result) SetPlain(plain bool) *Result {
	r.Plain = plain
	return r
}

// SetBody sets the preformatted record shown below the details
func (r *Result) SetBody(body string) *Result {
	r.Body = body
	return r
}

// SetReply sets the rejected reply shown in a failure box
func (r *Result) SetReply(reply string) *Result {
	r.Reply = reply
	return r
}

// AddDetail adds a detail key-value pair
func (r *Result) AddDetail(key, value string) *Result {
	if r.Details == nil {
		r.Details = make(map[string]string)
	}
	r.Details[key] = value
	return r
}

// Render returns the result box as a string
func (r *Result) Render() string {
	if r.Plain {
		return r.renderPlain()
	}
	switch r.Type {
	case ResultFailure:
		return r.renderFailure()
	default:
		return r.renderSuccess()
	}
}

func (r *Result) width() int {
	if r.Width < MinTerminalWidth {
		return MinTerminalWidth
	}
	return r.Width
}

func (r *Result) sortedKeys() []string {
	keys := make([]string, 0, len(r.Details))
	for k := range r.Details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// renderSuccess renders a success result box
func (r *Result) renderSuccess() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, SuccessTitleStyle.Render(fmt.Sprintf("   %s  SUCCESS  ─  %s", SuccessMarker, r.Title)))
	lines = append(lines, "")

	for _, key := range r.sortedKeys() {
		keyStyled := ResultKeyStyle.Render(fmt.Sprintf("   %s:", key))
		valueStyled := ResultValueStyle.Render(r.Details[key])
		lines = append(lines, keyStyled+" "+valueStyled)
	}

	if r.Body != "" {
		lines = append(lines, "")
		lines = append(lines, ResultValueStyle.Render(strings.TrimRight(r.Body, "\n")))
	}

	lines = append(lines, "")

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(SuccessColor).
		Width(r.width() - 2).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
}

// renderFailure renders a failure result box
func (r *Result) renderFailure() string {
	width := r.width()
	var lines []string

	lines = append(lines, "")
	lines = append(lines, ErrorTitleStyle.Render(fmt.Sprintf("   %s  FAILED  ─  %s", FailureMarker, r.Title)))
	lines = append(lines, "")

	if r.Error != nil {
		lines = append(lines, ErrorMessageStyle.Render("   Error: "+firstLine(r.Error.Error())))
		lines = append(lines, "")
	}

	if len(r.Details) > 0 {
		for _, key := range r.sortedKeys() {
			lines = append(lines, ResultKeyStyle.Render(fmt.Sprintf("   %s:", key))+" "+ResultValueStyle.Render(r.Details[key]))
		}
		lines = append(lines, "")
	}

	if r.Reply != "" {
		lines = append(lines, r.renderReplyBox(width))
		lines = append(lines, "")
	}

	if len(r.Troubleshooting) > 0 {
		lines = append(lines, r.renderTroubleshootingBox(width))
		lines = append(lines, "")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(ErrorColor).
		Width(width - 2).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
}

// renderReplyBox renders the excerpt of the rejected reply
func (r *Result) renderReplyBox(width int) string {
	content := ReplyTitleStyle.Render("Reply:") + "\n" + ReplyContentStyle.Render(replyExcerpt(r.Reply))
	return ReplyBoxStyle(width).MarginLeft(3).Render(content)
}

// renderTroubleshootingBox renders the inner troubleshooting box
func (r *Result) renderTroubleshootingBox(width int) string {
	var lines []string

	lines = append(lines, TroubleshootingTitleStyle.Render("Troubleshooting:"))
	lines = append(lines, "")

	for _, tip := range r.Troubleshooting {
		lines = append(lines, TroubleshootingItemStyle.Render("  • "+tip))
	}

	innerWidth := width - 12
	if innerWidth < 40 {
		innerWidth = 40
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(MutedColor).
		Width(innerWidth).
		Padding(0, 1).
		MarginLeft(3).
		Render(strings.Join(lines, "\n"))
}

// renderPlain renders the result as unstyled text for pipes and files
func (r *Result) renderPlain() string {
	var b strings.Builder

	if r.Type == ResultFailure {
		b.WriteString(fmt.Sprintf("%s FAILED: %s\n", FailureMarker, r.Title))
		if r.Error != nil {
			b.WriteString(fmt.Sprintf("Error: %s\n", firstLine(r.Error.Error())))
		}
		for _, key := range r.sortedKeys() {
			b.WriteString(fmt.Sprintf("%-14s %s\n", key+":", r.Details[key]))
		}
		if r.Reply != "" {
			b.WriteString("Reply:\n")
			for _, line := range strings.Split(replyExcerpt(r.Reply), "\n") {
				b.WriteString("  " + line + "\n")
			}
		}
		if len(r.Troubleshooting) > 0 {
			b.WriteString("Troubleshooting:\n")
			for _, tip := range r.Troubleshooting {
				b.WriteString("  - " + tip + "\n")
			}
		}
		return b.String()
	}

	b.WriteString(fmt.Sprintf("%s %s\n", SuccessMarker, r.Title))
	for _, key := range r.sortedKeys() {
		b.WriteString(fmt.Sprintf("%-14s %s\n", key+":", r.Details[key]))
	}
	if r.Body != "" {
		b.WriteString("\n")
		b.WriteString(strings.TrimRight(r.Body, "\n"))
		b.WriteString("\n")
	}
	return b.String()
}

// String implements fmt.Stringer
func (r *Result) String() string {
	return r.Render()
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

// replyExcerpt returns at most maxReplyLines lines of a reply
func replyExcerpt(reply string) string {
	lines := strings.Split(strings.TrimSpace(reply), "\n")
	if len(lines) <= maxReplyLines {
		return strings.Join(lines, "\n")
	}
	return strings.Join(lines[:maxReplyLines], "\n") + fmt.Sprintf("\n... (%d more lines)", len(lines)-maxReplyLines)
}
