// Package orders persists confirmed orders to an append-only JSONL log.
package orders

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"altura_store/internal/apperr"
	"altura_store/internal/models"

	"github.com/google/uuid"
)

// Notifier sends a best-effort confirmation message for a recorded order. An
// implementation decides for itself whether it is configured and whether the
// payload carries a contact address; returning nil in either case is fine.
type Notifier interface {
	NotifyOrder(ctx context.Context, orderID string, payload map[string]any) error
}

// Recorder owns the order log. Records are only ever appended, one atomic
// write per record, serialized by a mutex for concurrent confirms.
type Recorder struct {
	path     string
	notifier Notifier

	mu sync.Mutex
}

func NewRecorder(dataDir string, notifier Notifier) (*Recorder, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Recorder{path: filepath.Join(dataDir, "orders.jsonl"), notifier: notifier}, nil
}

// Confirm appends one order record and returns its generated id. The durable
// append is the only step allowed to fail the operation; a notification
// failure is logged and swallowed. Confirm is deliberately not idempotent:
// the same payload confirmed twice produces two distinct records.
func (r *Recorder) Confirm(ctx context.Context, payload map[string]any) (string, error) {
	id := newOrderID()
	rec := models.OrderRecord{ID: id, CreatedAt: time.Now(), Payload: payload}

	line, err := json.Marshal(rec)
	if err != nil {
		return "", &apperr.PersistenceError{Op: "encode order", Err: err}
	}
	if err := r.append(line); err != nil {
		return "", &apperr.PersistenceError{Op: "append order", Err: err}
	}
	log.Printf("📦 Order recorded: %s", id)

	if r.notifier != nil {
		if err := r.notifier.NotifyOrder(ctx, id, payload); err != nil {
			log.Printf("⚠️  Order %s: confirmation notification failed: %v", id, err)
		}
	}
	return id, nil
}

func (r *Recorder) append(line []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

// newOrderID returns a collision-resistant identifier with a cryptographically
// random suffix, e.g. order_8f14e45fceea167a5a36dedd4bea2543.
func newOrderID() string {
	u := uuid.New()
	return "order_" + hex.EncodeToString(u[:])
}
