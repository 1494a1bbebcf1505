// SPDX-License-Identifier: MPL-2.0

// Package tui holds the operator-facing input and output helpers: line
// prompts, confirmation gates, and the lipgloss styles shared by every menu
// and status line.
package tui
