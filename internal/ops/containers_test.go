// SPDX-License-Identifier: MPL-2.0

package ops

import (
	"bytes"
	"context"
	"slices"
	"strings"
	"testing"

	"dockhand-cli/internal/engine"
)

func newContainerOps(eng *fakeEngine, prompt *scriptedPrompter, out *bytes.Buffer) *ContainerOps {
	return NewContainerOps(eng, prompt, out, testLogger(), 50, "/bin/bash")
}

func TestContainerList_RunningVsAll(t *testing.T) {
	t.Parallel()
	eng := &fakeEngine{result: engine.Result{Stdout: "CONTAINER ID   NAMES"}}
	ops := newContainerOps(eng, &scriptedPrompter{}, &bytes.Buffer{})

	if _, err := ops.List(context.Background(), false); err != nil {
		t.Fatal(err)
	}
	if slices.Contains(eng.captured[0], "-a") {
		t.Errorf("running-only listing must not pass -a: %v", eng.captured[0])
	}

	if _, err := ops.List(context.Background(), true); err != nil {
		t.Fatal(err)
	}
	if !slices.Contains(eng.captured[1], "-a") {
		t.Errorf("full listing must pass -a: %v", eng.captured[1])
	}
}

func TestContainerRun_OptionalFieldsOmitted(t *testing.T) {
	t.Parallel()
	eng := &fakeEngine{result: engine.Result{Stdout: "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"}}
	var out bytes.Buffer
	ops := newContainerOps(eng, &scriptedPrompter{inputs: []string{"nginx:latest", "", ""}}, &out)

	outcome, err := ops.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !outcome.OK() {
		t.Fatalf("expected ok, got %+v", outcome)
	}
	want := []string{"run", "-d", "nginx:latest"}
	if got := eng.captured[0]; !slices.Equal(got, want) {
		t.Errorf("expected exactly %v, got %v", want, got)
	}
	if !strings.Contains(out.String(), "9f86d081884c") {
		t.Errorf("expected 12-char id prefix in output, got %q", out.String())
	}
}

func TestContainerRun_WithNameAndPort(t *testing.T) {
	t.Parallel()
	eng := &fakeEngine{result: engine.Result{Stdout: "abc"}}
	ops := newContainerOps(eng, &scriptedPrompter{inputs: []string{"nginx:latest", "web1", "8080:80"}}, &bytes.Buffer{})

	if _, err := ops.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	want := []string{"run", "-d", "--name", "web1", "-p", "8080:80", "nginx:latest"}
	if got := eng.captured[0]; !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestContainerStop_ListsBeforePrompting(t *testing.T) {
	t.Parallel()
	eng := &fakeEngine{}
	ops := newContainerOps(eng, &scriptedPrompter{inputs: []string{"web1"}}, &bytes.Buffer{})

	outcome, err := ops.Stop(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !outcome.OK() {
		t.Fatalf("expected ok, got %+v", outcome)
	}
	if eng.captured[0][0] != "ps" {
		t.Errorf("expected an orienting listing first, got %v", eng.captured[0])
	}
	want := []string{"stop", "web1"}
	if got := eng.captured[1]; !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestContainerStop_EmptyIdRejectedLocally(t *testing.T) {
	t.Parallel()
	eng := &fakeEngine{}
	ops := newContainerOps(eng, &scriptedPrompter{inputs: []string{"   "}}, &bytes.Buffer{})

	outcome, err := ops.Stop(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Status != StatusValidationFailed {
		t.Errorf("expected validation failure, got %+v", outcome)
	}
	// Only the orienting listing ran.
	if len(eng.captured) != 1 || eng.captured[0][0] != "ps" {
		t.Errorf("expected only the listing invocation, got %v", eng.captured)
	}
}

func TestContainerRemove_AlwaysForced(t *testing.T) {
	t.Parallel()
	eng := &fakeEngine{}
	ops := newContainerOps(eng, &scriptedPrompter{inputs: []string{"web1"}, confirms: []string{"s"}}, &bytes.Buffer{})

	outcome, err := ops.Remove(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !outcome.OK() {
		t.Fatalf("expected ok, got %+v", outcome)
	}
	want := []string{"rm", "-f", "web1"}
	if got := eng.captured[len(eng.captured)-1]; !slices.Equal(got, want) {
		t.Errorf("expected %v regardless of running state, got %v", want, got)
	}
}

func TestContainerRemove_AbortBuildsNoCommand(t *testing.T) {
	t.Parallel()
	eng := &fakeEngine{}
	ops := newContainerOps(eng, &scriptedPrompter{inputs: []string{"web1"}, confirms: []string{""}}, &bytes.Buffer{})

	outcome, err := ops.Remove(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Status != StatusAborted {
		t.Errorf("expected aborted, got %+v", outcome)
	}
	for _, args := range eng.captured {
		if args[0] == "rm" {
			t.Errorf("no removal command may be built after abort, got %v", eng.captured)
		}
	}
}

func TestContainerLogs_TailsConfiguredLineCount(t *testing.T) {
	t.Parallel()
	eng := &fakeEngine{}
	ops := newContainerOps(eng, &scriptedPrompter{inputs: []string{"web1"}}, &bytes.Buffer{})

	outcome, err := ops.Logs(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !outcome.OK() {
		t.Fatalf("expected ok, got %+v", outcome)
	}
	want := []string{"logs", "--tail", "50", "web1"}
	if len(eng.interactive) != 1 || !slices.Equal(eng.interactive[0], want) {
		t.Errorf("expected %v, got %v", want, eng.interactive)
	}
}

func TestContainerExec_ListsOnlyRunning(t *testing.T) {
	t.Parallel()
	eng := &fakeEngine{}
	ops := newContainerOps(eng, &scriptedPrompter{inputs: []string{"web1"}}, &bytes.Buffer{})

	if _, err := ops.Exec(context.Background()); err != nil {
		t.Fatal(err)
	}
	if slices.Contains(eng.captured[0], "-a") {
		t.Errorf("exec orientation must list running containers only: %v", eng.captured[0])
	}
	want := []string{"exec", "-it", "web1", "/bin/bash"}
	if len(eng.interactive) != 1 || !slices.Equal(eng.interactive[0], want) {
		t.Errorf("expected %v, got %v", want, eng.interactive)
	}
}

func TestContainerOps_SpawnFaultMapsToGenericEngineFailure(t *testing.T) {
	t.Parallel()
	eng := &fakeEngine{capturedErr: &engine.SpawnError{Binary: "docker", Err: context.DeadlineExceeded}}
	ops := newContainerOps(eng, &scriptedPrompter{}, &bytes.Buffer{})

	outcome, err := ops.List(context.Background(), true)
	if err != nil {
		t.Fatalf("spawn faults must not escalate as errors, got %v", err)
	}
	if outcome.Status != StatusEngineFailed {
		t.Errorf("expected engine failure, got %+v", outcome)
	}
	if strings.Contains(outcome.Reason, "docker") {
		t.Errorf("executor detail must not leak upward, got %q", outcome.Reason)
	}
}
