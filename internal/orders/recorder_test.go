package orders_test

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"altura_store/internal/apperr"
	"altura_store/internal/orders"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingNotifier struct {
	calls int
}

func (n *failingNotifier) NotifyOrder(ctx context.Context, orderID string, payload map[string]any) error {
	n.calls++
	return errors.New("smtp: connection refused")
}

func readLog(t *testing.T, dir string) []map[string]any {
	t.Helper()
	f, err := os.Open(filepath.Join(dir, "orders.jsonl"))
	require.NoError(t, err)
	defer f.Close()

	var records []map[string]any
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &rec))
		records = append(records, rec)
	}
	require.NoError(t, sc.Err())
	return records
}

func TestConfirm_AppendsOneRecord(t *testing.T) {
	dir := t.TempDir()
	rec, err := orders.NewRecorder(dir, nil)
	require.NoError(t, err)

	payload := map[string]any{
		"email":    "x@y.com",
		"lang":     "fr",
		"currency": "EUR",
		"items":    []any{map[string]any{"slug": "aero-trainer", "qty": float64(1)}},
	}
	id, err := rec.Confirm(context.Background(), payload)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "order_"))

	records := readLog(t, dir)
	require.Len(t, records, 1)
	assert.Equal(t, id, records[0]["id"])
	assert.Equal(t, "x@y.com", records[0]["email"])
	assert.Equal(t, "fr", records[0]["lang"])
	assert.NotEmpty(t, records[0]["created_at"])
}

func TestConfirm_IdentifiersAreDistinct(t *testing.T) {
	dir := t.TempDir()
	rec, err := orders.NewRecorder(dir, nil)
	require.NoError(t, err)

	const n = 10000
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id, err := rec.Confirm(context.Background(), map[string]any{})
		require.NoError(t, err)
		_, dup := seen[id]
		require.False(t, dup, "duplicate order id %s", id)
		seen[id] = struct{}{}
	}
}

func TestConfirm_IsNotIdempotent(t *testing.T) {
	// Two confirms with the same payload are two orders. Documented behavior,
	// not a bug: the server has no way to tell a retry from a new order.
	dir := t.TempDir()
	rec, err := orders.NewRecorder(dir, nil)
	require.NoError(t, err)

	payload := map[string]any{"email": "x@y.com"}
	id1, err := rec.Confirm(context.Background(), payload)
	require.NoError(t, err)
	id2, err := rec.Confirm(context.Background(), payload)
	require.NoError(t, err)

	assert.NotEqual(t, id1, id2)
	assert.Len(t, readLog(t, dir), 2)
}

func TestConfirm_NotifierFailureIsSwallowed(t *testing.T) {
	dir := t.TempDir()
	notifier := &failingNotifier{}
	rec, err := orders.NewRecorder(dir, notifier)
	require.NoError(t, err)

	id, err := rec.Confirm(context.Background(), map[string]any{"email": "x@y.com"})

	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, 1, notifier.calls)
	assert.Len(t, readLog(t, dir), 1)
}

func TestConfirm_AppendFailurePropagates(t *testing.T) {
	dir := t.TempDir()
	rec, err := orders.NewRecorder(dir, nil)
	require.NoError(t, err)

	// Shadow the log path with a directory so the append cannot succeed.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "orders.jsonl"), 0o755))

	_, err = rec.Confirm(context.Background(), map[string]any{"email": "x@y.com"})

	var pe *apperr.PersistenceError
	require.ErrorAs(t, err, &pe)
}

func TestConfirm_ConcurrentAppendsKeepOneRecordPerLine(t *testing.T) {
	dir := t.TempDir()
	rec, err := orders.NewRecorder(dir, nil)
	require.NoError(t, err)

	const n = 100
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := rec.Confirm(context.Background(), map[string]any{"email": "x@y.com"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Len(t, readLog(t, dir), n)
}
