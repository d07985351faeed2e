package triage

import "github.com/fraudsentry/sentry/internal/model"

// InspectionState is the lifecycle of the single shared inspection slot.
type InspectionState int

// Inspection slot states.
const (
	InspectionIdle InspectionState = iota
	InspectionPending
	InspectionReady
	InspectionFailed
)

// Inspector manages the on-demand deep-analysis slot. There is exactly one
// slot: starting an inspection for a new row supersedes any outstanding
// request, whose eventual response is then dropped on arrival. No
// cancellation is sent to the service and no queuing occurs. Each Begin
// bumps a generation counter; a response is applied only when it carries
// the latest generation.
type Inspector struct {
	state  InspectionState
	index  int
	gen    uint64
	result *model.Explanation
	err    error
}

// State returns the slot's current lifecycle state.
func (in *Inspector) State() InspectionState {
	return in.state
}

// Index returns the batch index the slot currently refers to. Only
// meaningful outside InspectionIdle.
func (in *Inspector) Index() int {
	return in.index
}

// Generation returns the latest issued request generation.
func (in *Inspector) Generation() uint64 {
	return in.gen
}

// Result returns the resolved explanation, or nil unless the slot is in
// InspectionReady.
func (in *Inspector) Result() *model.Explanation {
	return in.result
}

// Err returns the failure captured in the slot, or nil unless the slot is
// in InspectionFailed. The analyst retries by issuing Begin again.
func (in *Inspector) Err() error {
	return in.err
}

// Begin issues a new inspection for the given row and returns the
// generation the eventual response must carry. Any outstanding request is
// orphaned: its response will no longer match the latest generation.
func (in *Inspector) Begin(index int) uint64 {
	in.gen++
	in.state = InspectionPending
	in.index = index
	in.result = nil
	in.err = nil
	return in.gen
}

// Resolve applies a successful response. Stale generations are dropped and
// leave the slot untouched; returns whether the response was applied.
func (in *Inspector) Resolve(gen uint64, expl *model.Explanation) bool {
	if gen != in.gen {
		return false
	}
	in.state = InspectionReady
	in.result = expl
	in.err = nil
	return true
}

// Fail records a terminal failure for the matching request. Stale failures
// are dropped like stale results.
func (in *Inspector) Fail(gen uint64, err error) bool {
	if gen != in.gen {
		return false
	}
	in.state = InspectionFailed
	in.result = nil
	in.err = err
	return true
}

// Close dismisses the slot and orphans any in-flight request by bumping
// the generation, so its response cannot reopen the slot.
func (in *Inspector) Close() {
	in.gen++
	in.state = InspectionIdle
	in.result = nil
	in.err = nil
}
