// Package attach bridges the compile/reload boundary: it binds freshly
// generated view types to their root nodes and, in reference mode, writes
// resolved binding values into the persisted instance's reference slots.
//
// An attach request resolves immediately when the generated type is
// already loadable. Otherwise it is queued in a deduplicated, ordinally
// sorted set that survives the reload boundary in session-scoped storage;
// the reload signal drains the queue and retries each entry once.
//
// The queue is cleared before the retries run, so an entry whose type
// still fails to resolve at the reload boundary is dropped rather than
// re-queued. That matches the observed host behavior; callers needing
// another attempt issue a new request.
package attach
