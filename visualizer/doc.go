// Package visualizer coordinates one interactive session: the graph being
// edited, the search that runs on request and the animation that replays
// its result.
//
// A Session is an explicit state machine:
//
//	idle ──Run──▶ searching ──result──▶ animating ──last transition──▶ idle
//	  ▲               │                      │
//	  └──error────────┘                      └──Cancel / Run──▶ (previous voided)
//
// Mutating entry points other than Run and Cancel (MoveNode, Select,
// Replace) are rejected with ErrBusy unless the session is idle. Run itself
// is always accepted: it cancels the animation in flight, wipes the previous
// annotations and starts over, so two runs never interleave.
//
// Every run gets a random run id that tags its log records and its
// "visualizer.Run" trace span.
package visualizer
