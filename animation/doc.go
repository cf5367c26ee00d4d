// Package animation replays a finished search as timed role transitions.
//
// The search engine produces a complete dijkstra.Result up front; this
// package turns it into a plan and plays it back:
//
//	Plan(result, step)        pure: visited transitions, then path transitions,
//	                          the k-th at offset k·step, endpoints excluded.
//	Scheduler.Schedule(...)   one delayed task per transition on a Clock.
//	Scheduler.Cancel(h)       voids every task of h that has not applied yet.
//	Scheduler.CancelAll()     voids every pending task of every run.
//
// Guarantees:
//
//   - Transitions of one run apply in offset order. A task whose timer fires
//     early waits until its predecessors have applied.
//   - A transition either applies completely or not at all; after Cancel
//     returns no transition of the cancelled run applies.
//   - Cancel and CancelAll are no-ops when nothing is pending.
//
// The role change itself is a RoleFunc callback, so the package knows
// nothing about rendering. RoleFunc runs under the scheduler lock and must
// not call back into the Scheduler.
package animation
