// SPDX-License-Identifier: MPL-2.0

// Package ops implements the per-resource operations the menus dispatch to.
// Each operation validates operator input, gates destructive actions behind a
// confirmation, asks the engine to run, and renders a one-line outcome. The
// engine is never invoked for input that fails local validation.
package ops
