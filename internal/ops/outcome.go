// SPDX-License-Identifier: MPL-2.0

package ops

// Status classifies how an operation ended.
type Status int

const (
	// StatusOK means the operation ran and the engine reported success.
	StatusOK Status = iota
	// StatusValidationFailed means operator input was rejected locally and
	// the engine was never invoked.
	StatusValidationFailed
	// StatusAborted means the operator declined a confirmation gate; no
	// command was built and nothing was executed.
	StatusAborted
	// StatusEngineFailed means the engine ran and failed, or could not be
	// started at all.
	StatusEngineFailed
)

// Outcome is what every operation yields upward. The session layer only ever
// sees these four shapes; executor-level faults are mapped to EngineFailed
// with a generic reason before they get here.
type Outcome struct {
	Status Status
	Reason string
}

// OK reports whether the operation succeeded.
func (o Outcome) OK() bool { return o.Status == StatusOK }

// Ok builds a success outcome.
func Ok() Outcome { return Outcome{Status: StatusOK} }

// Invalid builds a validation-failure outcome.
func Invalid(reason string) Outcome {
	return Outcome{Status: StatusValidationFailed, Reason: reason}
}

// AbortedByOperator builds an operator-abort outcome.
func AbortedByOperator() Outcome {
	return Outcome{Status: StatusAborted, Reason: "aborted by operator"}
}

// EngineFailed builds an engine-failure outcome.
func EngineFailed(reason string) Outcome {
	return Outcome{Status: StatusEngineFailed, Reason: reason}
}
