// SPDX-License-Identifier: MPL-2.0

package ops

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"dockhand-cli/internal/engine"
	"dockhand-cli/internal/tui"

	"github.com/charmbracelet/log"
)

// ImageOps groups the image lifecycle operations.
type ImageOps struct {
	base
}

// NewImageOps creates the image operation set.
func NewImageOps(eng Engine, prompt tui.Prompter, out io.Writer, logger *log.Logger) *ImageOps {
	return &ImageOps{base{engine: eng, prompt: prompt, out: out, logger: logger}}
}

// List prints the engine's image table unmodified.
func (o *ImageOps) List(ctx context.Context) (Outcome, error) {
	tui.Headerln(o.out, "Images")
	res, outcome, ok := o.captured(ctx, engine.ImagesArgs()...)
	if !ok {
		return outcome, nil
	}
	if !res.OK() {
		tui.Failureln(o.out, "could not list images: %s", res.Stderr)
		return EngineFailed(res.Stderr), nil
	}
	fmt.Fprintln(o.out, res.Stdout)
	return Ok(), nil
}

// Pull downloads an image from a registry. The engine owns the terminal so
// the operator sees the layer progress live.
func (o *ImageOps) Pull(ctx context.Context) (Outcome, error) {
	image, outcome, err := o.requireInput("Image to pull (e.g. nginx:latest)", "image name")
	if err != nil || image == "" {
		return outcome, err
	}

	fmt.Fprintf(o.out, "Pulling %s...\n", image)
	result := o.interactive(ctx, engine.PullArgs(image)...)
	if result.OK() {
		tui.Successln(o.out, "image %s pulled", image)
	} else if result.Status == StatusEngineFailed && result.Reason != spawnFailureReason {
		tui.Failureln(o.out, "failed to pull %s", image)
	}
	return result, nil
}

// Build builds an image from a Dockerfile. The build descriptor must exist
// before the engine is invoked at all: the engine's own error for a missing
// Dockerfile is less actionable than ours.
func (o *ImageOps) Build(ctx context.Context) (Outcome, error) {
	contextDir, err := o.prompt.Input("Build context directory (. for current)")
	if err != nil {
		return Outcome{}, err
	}
	if contextDir == "" {
		contextDir = "."
	}

	tag, outcome, err := o.requireInput("Tag for the new image", "image name")
	if err != nil || tag == "" {
		return outcome, err
	}

	dockerfile := filepath.Join(contextDir, "Dockerfile")
	if _, statErr := os.Stat(dockerfile); statErr != nil {
		tui.Failureln(o.out, "no Dockerfile found in %s", contextDir)
		return Invalid("no Dockerfile in " + contextDir), nil
	}

	fmt.Fprintf(o.out, "Building %s...\n", tag)
	result := o.interactive(ctx, engine.BuildArgs(tag, contextDir)...)
	if result.OK() {
		tui.Successln(o.out, "image %s built", tag)
	} else if result.Status == StatusEngineFailed && result.Reason != spawnFailureReason {
		tui.Failureln(o.out, "failed to build %s", tag)
	}
	return result, nil
}

// Remove deletes an image after listing the candidates and passing the
// confirmation gate.
func (o *ImageOps) Remove(ctx context.Context) (Outcome, error) {
	if _, err := o.List(ctx); err != nil {
		return Outcome{}, err
	}

	image, outcome, err := o.requireInput("Image id or name to remove", "image id")
	if err != nil || image == "" {
		return outcome, err
	}

	proceed, err := o.confirmGate(fmt.Sprintf("Remove image %s?", image))
	if err != nil {
		return Outcome{}, err
	}
	if !proceed {
		return AbortedByOperator(), nil
	}

	res, outcome, ok := o.captured(ctx, engine.RemoveImageArgs(image)...)
	if !ok {
		return outcome, nil
	}
	if !res.OK() {
		tui.Failureln(o.out, "failed to remove image %s: %s", image, res.Stderr)
		return EngineFailed(res.Stderr), nil
	}
	tui.Successln(o.out, "image %s removed", image)
	return Ok(), nil
}
