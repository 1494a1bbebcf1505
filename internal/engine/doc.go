// SPDX-License-Identifier: MPL-2.0

// Package engine wraps a CLI-based container engine (Docker/Podman) behind a
// small execution contract: argument vectors in, either captured text or a
// live terminal session out. Non-zero exits from the engine are data, not
// errors; only spawn-level faults surface as errors.
package engine
