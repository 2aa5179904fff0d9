// Package step defines the recorded-state primitives shared by every
// algorithm generator and by the playback layer:
//
//   - [View]: the primary data shape of one frame (array, chars, list, tree,
//     trie, table or graph)
//   - [Annotations]: role → value highlights consumed only by renderers
//   - [Step]: one immutable snapshot (view + annotations + narration)
//   - [Sequence]: the ordered, non-empty recording of one generator run
//   - [Recorder]: the only way generators build a Sequence
//
// # Snapshot semantics
//
// Recorder.Emit deep-copies both the view and the annotations, so generators
// can hand it their working storage at every decision point without aliasing
// state across steps.
//
//	r := step.NewRecorder()
//	r.Emit(step.ArrayView(arr), nil, "Initial array")
//	...
//	seq := r.Finish(step.ArrayView(arr), nil, "Sorted!")
package step
