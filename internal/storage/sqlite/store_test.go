package sqlite

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/julianstephens/fitfinder/internal/constants"
	"github.com/julianstephens/fitfinder/internal/models"
	"github.com/julianstephens/fitfinder/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "nested", "fitfinder.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreKeyValue(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Get("missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Get(missing) error = %v, want ErrNotFound", err)
	}

	if err := store.Put("b", []byte(`{"x":1}`)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := store.Put("a", []byte(`[1,2]`)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := store.Put("b", []byte(`{"x":2}`)); err != nil {
		t.Fatalf("Put overwrite failed: %v", err)
	}

	got, err := store.Get("b")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != `{"x":2}` {
		t.Errorf("Get(b) = %s, want {\"x\":2}", got)
	}

	keys, err := store.Keys()
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if !reflect.DeepEqual(keys, []string{"a", "b"}) {
		t.Errorf("Keys() = %v, want [a b]", keys)
	}

	if err := store.Delete("a"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := store.Delete("a"); err != nil {
		t.Errorf("Delete of a missing key should not fail: %v", err)
	}
	if _, err := store.Get("a"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Get after delete error = %v, want ErrNotFound", err)
	}
}

func TestStoreLoadRequiresInit(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "absent.db"))
	if err := store.Load(); err == nil {
		t.Fatal("Load should fail before Init")
	}
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fitfinder.db")

	first := NewStore(path)
	if err := first.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	repo := storage.NewRepository(first)
	if err := repo.SaveFavorites(models.NewFavoriteSet("ex-2", "ex-1")); err != nil {
		t.Fatalf("SaveFavorites failed: %v", err)
	}
	first.Close()

	second := NewStore(path)
	if err := second.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer second.Close()

	raw, err := second.Get(constants.KeyFavorites)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(raw) != `["ex-1","ex-2"]` {
		t.Errorf("stored favorites = %s", raw)
	}

	favs, err := storage.NewRepository(second).LoadFavorites()
	if err != nil {
		t.Fatalf("LoadFavorites failed: %v", err)
	}
	if !favs.Has("ex-1") || !favs.Has("ex-2") || favs.Len() != 2 {
		t.Errorf("LoadFavorites() = %v", favs.IDs())
	}
}

func TestStoreInitIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	if err := store.Put("k", []byte(`1`)); err != nil {
		t.Fatal(err)
	}
	if err := store.Init(); err != nil {
		t.Fatalf("second Init failed: %v", err)
	}
	if _, err := store.Get("k"); err != nil {
		t.Errorf("value lost after second Init: %v", err)
	}
	if store.GetDB() == nil {
		t.Error("GetDB() returned nil after Init")
	}
}
