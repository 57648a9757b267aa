package ports

import (
	"context"
	"errors"
	"testing"

	"tapeline/pkg/domain"
)

// RunSessionStoreContract exercises the SessionStore behavior every
// adapter must provide. Adapter test files call it with a fresh store.
func RunSessionStoreContract(t *testing.T, store SessionStore) {
	t.Helper()
	ctx := context.Background()

	snap := &domain.SessionState{
		ID:           "s1",
		CurrentState: "[move]2",
		HeadIndex:    -1,
		Left:         "_",
		Right:        "abc",
		Steps:        7,
		Status:       domain.Running,
	}

	t.Run("SaveAndLoad", func(t *testing.T) {
		if err := store.Save(ctx, "s1", snap); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		loaded, err := store.Load(ctx, "s1")
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if loaded.CurrentState != snap.CurrentState {
			t.Errorf("CurrentState: got %q, want %q", loaded.CurrentState, snap.CurrentState)
		}
		if loaded.HeadIndex != snap.HeadIndex {
			t.Errorf("HeadIndex: got %d, want %d", loaded.HeadIndex, snap.HeadIndex)
		}
		if loaded.Left != snap.Left || loaded.Right != snap.Right {
			t.Errorf("tape: got (%q, %q), want (%q, %q)", loaded.Left, loaded.Right, snap.Left, snap.Right)
		}
		if loaded.Steps != snap.Steps {
			t.Errorf("Steps: got %d, want %d", loaded.Steps, snap.Steps)
		}
		if loaded.Status != snap.Status {
			t.Errorf("Status: got %v, want %v", loaded.Status, snap.Status)
		}
	})

	t.Run("Overwrite", func(t *testing.T) {
		updated := *snap
		updated.Steps = 8
		updated.Status = domain.Accept
		if err := store.Save(ctx, "s1", &updated); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		loaded, err := store.Load(ctx, "s1")
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if loaded.Steps != 8 || loaded.Status != domain.Accept {
			t.Errorf("overwrite not applied: %+v", loaded)
		}
	})

	t.Run("LoadMissing", func(t *testing.T) {
		_, err := store.Load(ctx, "nope")
		if !errors.Is(err, domain.ErrSessionNotFound) {
			t.Errorf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := store.Delete(ctx, "s1"); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, err := store.Load(ctx, "s1"); !errors.Is(err, domain.ErrSessionNotFound) {
			t.Errorf("expected ErrSessionNotFound after delete, got %v", err)
		}
	})

	t.Run("DeleteMissingIsIdempotent", func(t *testing.T) {
		if err := store.Delete(ctx, "nope"); err != nil {
			t.Errorf("Delete of a missing session must not fail: %v", err)
		}
	})
}
