package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/afristyle/afristyle/internal/logging"
)

// Helper wraps a Store with JSON serialization and a never-throws contract:
// write operations report success as a boolean and log failures internally;
// reads fall back to the caller's default on a missing key or a parse error.
type Helper struct {
	store Store
	log   logging.Logger
}

func NewHelper(store Store, log logging.Logger) *Helper {
	return &Helper{store: store, log: log.With("component", "storage")}
}

// Save serializes value to JSON and writes it under key. Returns false (and
// logs) on any failure; it never propagates an error to the caller.
func (h *Helper) Save(ctx context.Context, key string, value any) bool {
	data, err := json.Marshal(value)
	if err != nil {
		h.log.Error(ctx, "failed to serialize value", "key", key, "error", err)
		return false
	}
	if err := h.store.Set(ctx, key, data); err != nil {
		h.log.Error(ctx, "failed to save value", "key", key, "error", err)
		return false
	}
	return true
}

// Load deserializes the value under key into out. Returns false when the key
// is absent or parsing fails; out is left untouched in that case, so callers
// pre-populate it with their default.
func (h *Helper) Load(ctx context.Context, key string, out any) bool {
	data, err := h.store.Get(ctx, key)
	if err != nil {
		h.log.Error(ctx, "failed to load value", "key", key, "error", err)
		return false
	}
	if data == nil {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		h.log.Warn(ctx, "failed to parse stored value", "key", key, "error", err)
		return false
	}
	return true
}

// Delete removes key. Same never-throws contract as Save.
func (h *Helper) Delete(ctx context.Context, key string) bool {
	if err := h.store.Delete(ctx, key); err != nil {
		h.log.Error(ctx, "failed to delete value", "key", key, "error", err)
		return false
	}
	return true
}

// BatchSave serializes every value and writes all pairs through a single
// multi-key store operation.
func (h *Helper) BatchSave(ctx context.Context, values map[string]any) bool {
	encoded := make(map[string][]byte, len(values))
	for key, value := range values {
		data, err := json.Marshal(value)
		if err != nil {
			h.log.Error(ctx, "failed to serialize value", "key", key, "error", err)
			return false
		}
		encoded[key] = data
	}
	if err := h.store.MultiSet(ctx, encoded); err != nil {
		h.log.Error(ctx, "failed to batch save", "count", len(encoded), "error", err)
		return false
	}
	return true
}

// BatchLoad fetches the given keys in one multi-key operation and returns
// the raw JSON per present key. Absent keys are simply missing from the map.
func (h *Helper) BatchLoad(ctx context.Context, keys []string) map[string]json.RawMessage {
	result := make(map[string]json.RawMessage, len(keys))
	values, err := h.store.MultiGet(ctx, keys)
	if err != nil {
		h.log.Error(ctx, "failed to batch load", "count", len(keys), "error", err)
		return result
	}
	for key, data := range values {
		result[key] = json.RawMessage(data)
	}
	return result
}

// Snapshot is a portable dump of the fixed backup key set.
type Snapshot struct {
	CreatedAt time.Time                  `json:"created_at"`
	Entries   map[string]json.RawMessage `json:"entries"`
}

// Backup snapshots the BackupKeys set into a single object with a timestamp.
func (h *Helper) Backup(ctx context.Context) (*Snapshot, error) {
	values, err := h.store.MultiGet(ctx, BackupKeys)
	if err != nil {
		return nil, err
	}

	snapshot := &Snapshot{
		CreatedAt: time.Now().UTC(),
		Entries:   make(map[string]json.RawMessage, len(values)),
	}
	for key, data := range values {
		snapshot.Entries[key] = json.RawMessage(data)
	}
	return snapshot, nil
}

// Restore writes a snapshot's entries back. Keys outside the backup set are
// ignored so a tampered snapshot cannot plant arbitrary keys.
func (h *Helper) Restore(ctx context.Context, snapshot *Snapshot) error {
	allowed := make(map[string]struct{}, len(BackupKeys))
	for _, key := range BackupKeys {
		allowed[key] = struct{}{}
	}

	values := make(map[string][]byte, len(snapshot.Entries))
	for key, data := range snapshot.Entries {
		if _, ok := allowed[key]; !ok {
			h.log.Warn(ctx, "skipping unknown key in snapshot", "key", key)
			continue
		}
		values[key] = []byte(data)
	}
	return h.store.MultiSet(ctx, values)
}
