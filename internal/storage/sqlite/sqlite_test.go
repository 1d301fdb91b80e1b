package sqlite

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestSQLiteStore(t *testing.T) {
	// Create temp directory for test profile
	tempDir, err := os.MkdirTemp("", "techmart-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	profilePath := filepath.Join(tempDir, "profile.db")
	store, err := New(profilePath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	t.Run("Get on absent key reports not found", func(t *testing.T) {
		value, found, err := store.Get(ctx, "cart")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if found {
			t.Errorf("Expected absent key, got value %q", value)
		}
	})

	t.Run("Put then Get round-trips the value", func(t *testing.T) {
		want := []byte(`[{"name":"PhoneX","price":12000,"img":"/x.png","quantity":1}]`)
		if err := store.Put(ctx, "cart", want); err != nil {
			t.Fatalf("Put failed: %v", err)
		}

		got, found, err := store.Get(ctx, "cart")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !found {
			t.Fatal("Expected key to be found after Put")
		}
		if !bytes.Equal(got, want) {
			t.Errorf("Get returned %q, want %q", got, want)
		}
	})

	t.Run("Put overwrites the previous value", func(t *testing.T) {
		if err := store.Put(ctx, "favorites", []byte(`["PhoneX"]`)); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		want := []byte(`["PhoneX","TabletY"]`)
		if err := store.Put(ctx, "favorites", want); err != nil {
			t.Fatalf("Put failed: %v", err)
		}

		got, found, err := store.Get(ctx, "favorites")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !found {
			t.Fatal("Expected key to be found")
		}
		if !bytes.Equal(got, want) {
			t.Errorf("Get returned %q, want %q", got, want)
		}
	})

	t.Run("Delete removes the key and is idempotent", func(t *testing.T) {
		if err := store.Put(ctx, "scratch", []byte("x")); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		if err := store.Delete(ctx, "scratch"); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, found, _ := store.Get(ctx, "scratch"); found {
			t.Error("Expected key to be gone after Delete")
		}
		if err := store.Delete(ctx, "scratch"); err != nil {
			t.Errorf("Delete of absent key failed: %v", err)
		}
	})
}

func TestSQLiteStoreReopen(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "techmart-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	profilePath := filepath.Join(tempDir, "profile.db")
	ctx := context.Background()
	want := []byte(`["PhoneX"]`)

	store, err := New(profilePath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	if err := store.Put(ctx, "favorites", want); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// A write must survive reopening the same profile, like localStorage
	// surviving a page reload.
	reopened, err := New(profilePath)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	defer reopened.Close()

	got, found, err := reopened.Get(ctx, "favorites")
	if err != nil {
		t.Fatalf("Get after reopen failed: %v", err)
	}
	if !found {
		t.Fatal("Expected value to survive reopen")
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Get after reopen returned %q, want %q", got, want)
	}
}
