// Package ui renders decode results for the wifictrl CLI.
//
// Components follow a "render once and exit" pattern. A Result is either a
// success box (headline details plus the formatted record) or a failure box
// (error, an excerpt of the rejected reply and troubleshooting tips). Boxes are
// drawn with Lipgloss when stdout is a terminal and fall back to plain text
// when output is piped.
//
// Example:
//
//	fmt.Println(ui.NewSuccessResult("Config decoded", config.Details()).
//	    SetBody(config.FormatDetailed()).
//	    Render())
package ui
