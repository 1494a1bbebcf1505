// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"fmt"
	"io"
)

// Successln writes a green status line.
func Successln(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, SuccessStyle.Render("✓ "+fmt.Sprintf(format, args...)))
}

// Failureln writes a red status line.
func Failureln(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, ErrorStyle.Render("✗ "+fmt.Sprintf(format, args...)))
}

// Warnln writes an amber notice line.
func Warnln(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, WarningStyle.Render(fmt.Sprintf(format, args...)))
}

// Headerln writes a section header followed by the engine output that comes
// after it.
func Headerln(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, TitleStyle.Render(title))
}
