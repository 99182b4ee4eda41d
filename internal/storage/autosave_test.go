package storage

import (
	"sync"
	"testing"
	"time"

	"careerpro/internal/resume"
)

// countingStore records every save for debounce assertions.
type countingStore struct {
	mu    sync.Mutex
	saves []*resume.Document
}

func (c *countingStore) Save(doc *resume.Document) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.saves = append(c.saves, doc)
	return nil
}

func (c *countingStore) Load() (*resume.Document, bool, error) { return nil, false, nil }
func (c *countingStore) Clear() error                          { return nil }
func (c *countingStore) Path() string                          { return "memory" }

func (c *countingStore) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.saves)
}

func (c *countingStore) last() *resume.Document {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.saves) == 0 {
		return nil
	}
	return c.saves[len(c.saves)-1]
}

func docWithSummary(s string) *resume.Document {
	doc := resume.NewDocument()
	doc.Summary = s
	return doc
}

func TestAutosaverCoalescesBurstsIntoOneWrite(t *testing.T) {
	store := &countingStore{}
	saver := NewAutosaver(store, 50*time.Millisecond, nil)
	defer saver.Close()

	// A burst of edits inside the debounce window.
	saver.Notify(docWithSummary("a"))
	saver.Notify(docWithSummary("ab"))
	saver.Notify(docWithSummary("abc"))

	// Wait past the debounce window for the single write.
	deadline := time.After(2 * time.Second)
	for store.count() == 0 {
		select {
		case <-deadline:
			t.Fatal("Autosaver never flushed")
		case <-time.After(10 * time.Millisecond):
		}
	}

	if got := store.count(); got != 1 {
		t.Errorf("Expected the burst to coalesce into 1 write, got %d", got)
	}
	if got := store.last().Summary; got != "abc" {
		t.Errorf("Expected the latest state to be written, got %q", got)
	}
}

func TestFlushWritesPendingStateImmediately(t *testing.T) {
	store := &countingStore{}
	saver := NewAutosaver(store, time.Hour, nil)
	defer saver.Close()

	saver.Notify(docWithSummary("pending"))
	saver.Flush()

	if got := store.count(); got != 1 {
		t.Fatalf("Expected exactly one write after Flush, got %d", got)
	}
	if got := store.last().Summary; got != "pending" {
		t.Errorf("Flush wrote the wrong state: %q", got)
	}

	// Flush with nothing pending writes nothing.
	saver.Flush()
	if got := store.count(); got != 1 {
		t.Errorf("Flush with no pending state wrote anyway: %d writes", got)
	}
}

func TestCloseFlushesAndStops(t *testing.T) {
	store := &countingStore{}
	saver := NewAutosaver(store, time.Hour, nil)

	saver.Notify(docWithSummary("final"))
	saver.Close()

	if got := store.count(); got != 1 {
		t.Fatalf("Expected Close to flush pending state, got %d writes", got)
	}

	// Notifications after Close are ignored.
	saver.Notify(docWithSummary("late"))
	saver.Flush()
	if got := store.count(); got != 1 {
		t.Errorf("Notify after Close must be ignored, got %d writes", got)
	}
}

func TestOnSaveObserverFires(t *testing.T) {
	store := &countingStore{}
	saver := NewAutosaver(store, time.Hour, nil)
	defer saver.Close()

	saved := make(chan time.Time, 1)
	saver.OnSave(func(at time.Time) { saved <- at })

	saver.Notify(docWithSummary("observed"))
	saver.Flush()

	select {
	case at := <-saved:
		if at.IsZero() {
			t.Error("OnSave received a zero time")
		}
	case <-time.After(time.Second):
		t.Fatal("OnSave observer never fired")
	}
}
