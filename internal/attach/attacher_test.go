package attach

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"viewgen/internal/host"
	"viewgen/scene"
)

func newFixture() (*Attacher, *host.MemHost, *host.MemSessionStore, *host.ReloadSignal) {
	h := host.NewMemHost()
	store := host.NewMemSessionStore()
	signal := &host.ReloadSignal{}
	a := New(context.Background(), h, store, signal)

	return a, h, store, signal
}

func TestAttacher_Request_AppliesWhenTypeResolves(t *testing.T) {
	a, h, _, _ := newFixture()

	root := &scene.Node{ID: "root-1", Name: "MainMenu"}
	h.AddRoot(root)
	h.Register(&host.MemType{
		TypeName:     "MainMenu",
		Behavior:     true,
		ArtifactPath: "views/MainMenu.src",
		Slots:        []string{"_btnOk"},
	})

	status := a.Request(root, "MainMenu", "views/MainMenu.src")

	assert.Equal(t, StatusApplied, status)
	assert.True(t, root.HasCapability("MainMenu"))
	assert.Equal(t, 1, h.Persists["root-1"])
	assert.Empty(t, a.Pending())
}

func TestAttacher_Request_AlreadyAttachedSkipsPersist(t *testing.T) {
	a, h, _, _ := newFixture()

	root := &scene.Node{ID: "root-1", Name: "MainMenu"}
	root.Attach("MainMenu")
	h.AddRoot(root)
	h.Register(&host.MemType{TypeName: "MainMenu", Behavior: true})

	status := a.Request(root, "MainMenu", "")

	assert.Equal(t, StatusApplied, status)
	assert.Equal(t, 0, h.Persists["root-1"])
	assert.Len(t, root.CapabilitiesOf("MainMenu"), 1)
}

func TestAttacher_Request_QueuesWhenUnresolved(t *testing.T) {
	a, h, store, _ := newFixture()

	root := &scene.Node{ID: "root-1", Name: "MainMenu"}
	h.AddRoot(root)

	status := a.Request(root, "MainMenu", "views/MainMenu.src")

	assert.Equal(t, StatusQueued, status)
	assert.False(t, root.HasCapability("MainMenu"))
	assert.Equal(t, "root-1|MainMenu|views/MainMenu.src", store.Get(QueueKey))
}

func TestAttacher_Queue_DedupedAndSorted(t *testing.T) {
	a, h, store, _ := newFixture()

	rootB := &scene.Node{ID: "b-root", Name: "BView"}
	rootA := &scene.Node{ID: "a-root", Name: "AView"}
	h.AddRoot(rootA).AddRoot(rootB)

	a.Request(rootB, "BView", "views/B.src")
	a.Request(rootA, "AView", "views/A.src")
	a.Request(rootB, "BView", "views/B.src") // duplicate

	assert.Equal(t, "a-root|AView|views/A.src\nb-root|BView|views/B.src", store.Get(QueueKey))

	pending := a.Pending()
	require.Len(t, pending, 2)
	assert.Equal(t, "a-root", pending[0].RootID)
	assert.Equal(t, "b-root", pending[1].RootID)
}

func TestAttacher_Reload_DrainsQueueAndApplies(t *testing.T) {
	a, h, store, signal := newFixture()

	root := &scene.Node{ID: "root-1", Name: "MainMenu"}
	h.AddRoot(root)

	require.Equal(t, StatusQueued, a.Request(root, "MainMenu", "views/MainMenu.src"))

	// Compile finishes: the type becomes resolvable, then the reload
	// boundary fires.
	h.Register(&host.MemType{
		TypeName:     "MainMenu",
		Behavior:     true,
		ArtifactPath: "views/MainMenu.src",
	})
	signal.Fire()

	assert.True(t, root.HasCapability("MainMenu"))
	assert.Equal(t, 1, h.Persists["root-1"])
	assert.Empty(t, store.Get(QueueKey))
}

func TestAttacher_Reload_UnresolvedEntriesAreDropped(t *testing.T) {
	a, h, store, signal := newFixture()

	root := &scene.Node{ID: "root-1", Name: "MainMenu"}
	h.AddRoot(root)

	require.Equal(t, StatusQueued, a.Request(root, "MainMenu", ""))

	// The type still does not resolve at the boundary: the entry is
	// cleared, not re-queued.
	signal.Fire()

	assert.Empty(t, store.Get(QueueKey))
	assert.Empty(t, a.Pending())
	assert.False(t, root.HasCapability("MainMenu"))
}

func TestAttacher_Reload_UnknownRootIsSkipped(t *testing.T) {
	a, h, _, signal := newFixture()

	ghost := &scene.Node{ID: "ghost", Name: "Ghost"}

	require.Equal(t, StatusQueued, a.Request(ghost, "Ghost", ""))

	h.Register(&host.MemType{TypeName: "Ghost", Behavior: true})
	signal.Fire()

	// Root was never registered with the host, so nothing was attached.
	assert.False(t, ghost.HasCapability("Ghost"))
	assert.Empty(t, a.Pending())
}

func TestAttacher_Request_FallsBackToBareNameLookup(t *testing.T) {
	a, h, _, _ := newFixture()

	root := &scene.Node{ID: "root-1", Name: "MainMenu"}
	h.AddRoot(root)
	// Registered without an artifact path: only bare-name lookup works.
	h.Register(&host.MemType{TypeName: "MainMenu", Behavior: true})

	status := a.Request(root, "MainMenu", "views/MainMenu.src")

	assert.Equal(t, StatusApplied, status)
}

func TestAttacher_Request_NonBehaviorTypeIsQueued(t *testing.T) {
	a, h, _, _ := newFixture()

	root := &scene.Node{ID: "root-1", Name: "MainMenu"}
	h.AddRoot(root)
	h.Register(&host.MemType{TypeName: "MainMenu", Behavior: false})

	assert.Equal(t, StatusQueued, a.Request(root, "MainMenu", ""))
}

func TestParseRecord_Malformed(t *testing.T) {
	tests := []string{"", "only", "a|b", "|type|path"}

	for _, rec := range tests {
		_, ok := parseRecord(rec)
		assert.False(t, ok, rec)
	}

	req, ok := parseRecord("root|Type|")
	require.True(t, ok)
	assert.Equal(t, Request{RootID: "root", TypeName: "Type"}, req)
}
