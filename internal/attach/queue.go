package attach

import (
	"sort"
	"strings"

	"viewgen/internal/host"
)

// QueueKey is the session store key holding the pending attach queue.
const QueueKey = "viewgen.pendingAttach"

// recordSep joins the fields of one queue record.
const recordSep = "|"

// Request identifies one pending attach: which root, which generated type,
// which artifact it was compiled from.
type Request struct {
	RootID       string
	TypeName     string
	ArtifactPath string
}

// record renders the request in the queue wire format.
func (r Request) record() string {
	return r.RootID + recordSep + r.TypeName + recordSep + r.ArtifactPath
}

// parseRecord parses one queue record. Malformed records are dropped.
func parseRecord(record string) (Request, bool) {
	parts := strings.SplitN(record, recordSep, 3)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
		return Request{}, false
	}

	return Request{RootID: parts[0], TypeName: parts[1], ArtifactPath: parts[2]}, true
}

// loadQueue reads the pending requests from the session store, in stored
// order.
func loadQueue(store host.SessionStore) []Request {
	raw := store.Get(QueueKey)
	if raw == "" {
		return nil
	}

	var out []Request

	for _, line := range strings.Split(raw, "\n") {
		if req, ok := parseRecord(line); ok {
			out = append(out, req)
		}
	}

	return out
}

// enqueue adds a request to the stored queue, deduplicating and sorting
// records ordinally so retries are order-independent.
func enqueue(store host.SessionStore, req Request) {
	records := map[string]struct{}{req.record(): {}}

	for _, existing := range loadQueue(store) {
		records[existing.record()] = struct{}{}
	}

	sorted := make([]string, 0, len(records))
	for rec := range records {
		sorted = append(sorted, rec)
	}

	sort.Strings(sorted)

	store.Set(QueueKey, strings.Join(sorted, "\n"))
}

// clearQueue empties the stored queue.
func clearQueue(store host.SessionStore) {
	store.Set(QueueKey, "")
}
