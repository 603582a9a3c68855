package host

// MemSessionStore is the in-memory SessionStore.
type MemSessionStore struct {
	values map[string]string
}

// NewMemSessionStore returns an empty store.
func NewMemSessionStore() *MemSessionStore {
	return &MemSessionStore{values: map[string]string{}}
}

func (s *MemSessionStore) Get(key string) string {
	return s.values[key]
}

func (s *MemSessionStore) Set(key, value string) {
	s.values[key] = value
}

// ReloadSignal is an in-memory ReloadSource: subscribers run in order on
// every Fire.
type ReloadSignal struct {
	subscribers []func()
}

// Subscribe implements ReloadSource.
func (r *ReloadSignal) Subscribe(fn func()) {
	r.subscribers = append(r.subscribers, fn)
}

// Fire delivers the reload-boundary signal to every subscriber.
func (r *ReloadSignal) Fire() {
	for _, fn := range r.subscribers {
		fn()
	}
}
