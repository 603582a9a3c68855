package attach

import (
	"context"
	"log/slog"

	"viewgen/internal/ctxlog"
	"viewgen/internal/host"
	"viewgen/scene"
)

// Status is the outcome of an attach request.
type Status int

const (
	// StatusApplied means the type resolved and the root now carries the
	// capability.
	StatusApplied Status = iota

	// StatusQueued means the type is not loadable yet; the request waits
	// for the reload boundary.
	StatusQueued
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusApplied:
		return "applied"
	case StatusQueued:
		return "queued"
	default:
		return "unknown"
	}
}

// Attacher owns the pending attach queue and the assignment stats table.
// It is single-threaded like the rest of the core; the reload signal
// handler runs on the caller's thread.
type Attacher struct {
	host  host.Host
	store host.SessionStore
	log   *slog.Logger

	stats map[string]Stats
}

// New builds an Attacher and subscribes it to the reload boundary signal
// once. The logger is taken from ctx.
func New(ctx context.Context, h host.Host, store host.SessionStore, reload host.ReloadSource) *Attacher {
	a := &Attacher{
		host:  h,
		store: store,
		log:   ctxlog.FromContext(ctx),
		stats: map[string]Stats{},
	}

	reload.Subscribe(a.onReload)

	return a
}

// Request attempts to bind the generated type to the root right away,
// falling back to the pending queue when the type is not loadable yet.
// Never blocks waiting for a reload.
func (a *Attacher) Request(root *scene.Node, typeName, artifactPath string) Status {
	if a.tryApply(root, typeName, artifactPath) {
		return StatusApplied
	}

	enqueue(a.store, Request{RootID: root.ID, TypeName: typeName, ArtifactPath: artifactPath})

	a.log.Debug("attach queued until reload", "root", root.ID, "type", typeName)

	return StatusQueued
}

// Pending returns the queued requests in stored order, for inspection.
func (a *Attacher) Pending() []Request {
	return loadQueue(a.store)
}

// tryApply resolves the type and attaches it to the root when possible.
func (a *Attacher) tryApply(root *scene.Node, typeName, artifactPath string) bool {
	t, ok := a.resolve(typeName, artifactPath)
	if !ok || !t.IsBehavior() {
		return false
	}

	if root.HasCapability(typeName) {
		return true
	}

	if err := a.host.Attach(root, t); err != nil {
		a.log.Warn("attach failed", "root", root.ID, "type", typeName, "error", err)

		return false
	}

	if err := a.host.Persist(root); err != nil {
		a.log.Warn("persist failed after attach", "root", root.ID, "error", err)
	}

	return true
}

// resolve looks the type up via the artifact's compiled-unit handle first,
// then by bare name across all loaded units.
func (a *Attacher) resolve(typeName, artifactPath string) (host.Type, bool) {
	if artifactPath != "" {
		if t, ok := a.host.ResolveTypeAt(artifactPath); ok {
			return t, true
		}
	}

	return a.host.ResolveType(typeName)
}

// onReload drains the queue at the reload boundary. The queue is cleared
// before the retries run; entries that still fail to resolve are dropped
// (see the package comment).
func (a *Attacher) onReload() {
	pending := loadQueue(a.store)
	clearQueue(a.store)

	for _, req := range pending {
		root, ok := a.host.Root(req.RootID)
		if !ok {
			a.log.Warn("queued attach for unknown root", "root", req.RootID)
			continue
		}

		if !a.tryApply(root, req.TypeName, req.ArtifactPath) {
			a.log.Warn("queued attach still unresolved, dropping",
				"root", req.RootID, "type", req.TypeName)
		}
	}
}
