package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestOpenMigratesOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if s := db.Schema(); !s.Applied || s.Version != 1 {
		t.Errorf("first open schema = %+v, want applied at version 1", s)
	}
	if err := db.Close(); err != nil {
		t.Fatal(err)
	}

	db, err = Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()
	if s := db.Schema(); s.Applied || s.Version != 1 {
		t.Errorf("reopen schema = %+v, want version 1 with nothing applied", s)
	}
}

func TestOpenRefusesDirtySchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec(`UPDATE schema_migrations SET dirty = 1`); err != nil {
		t.Fatal(err)
	}
	_ = db.Close()

	if _, err := Open(path); !errors.Is(err, ErrDirtySchema) {
		t.Errorf("Open(dirty) error = %v, want ErrDirtySchema", err)
	}
}

func TestGetValueAbsent(t *testing.T) {
	db := testDB(t)

	v, ok, err := db.GetValue(context.Background(), "@theme_mode")
	if err != nil {
		t.Fatal(err)
	}
	if ok || v != "" {
		t.Errorf("GetValue(absent) = %q, %v; want \"\", false", v, ok)
	}
}

func TestSetValueDistinguishesEmptyFromAbsent(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	if err := db.SetValue(ctx, "k", ""); err != nil {
		t.Fatal(err)
	}
	v, ok, err := db.GetValue(ctx, "k")
	if err != nil {
		t.Fatal(err)
	}
	if !ok || v != "" {
		t.Errorf("GetValue(empty) = %q, %v; want \"\", true", v, ok)
	}
}

func TestSetValueOverwrites(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	for _, v := range []string{`"light"`, `"dark"`} {
		if err := db.SetValue(ctx, "@theme_mode", v); err != nil {
			t.Fatal(err)
		}
	}
	v, _, err := db.GetValue(ctx, "@theme_mode")
	if err != nil {
		t.Fatal(err)
	}
	if v != `"dark"` {
		t.Errorf("value = %s, want \"dark\"", v)
	}

	entries, err := db.ListEntries(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].UpdatedAt == 0 {
		t.Error("updated_at not set")
	}
}

func TestDeleteAndClear(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	for _, k := range []string{"a", "b", "c"} {
		if err := db.SetValue(ctx, k, "[]"); err != nil {
			t.Fatal(err)
		}
	}
	if err := db.DeleteValue(ctx, "b"); err != nil {
		t.Fatal(err)
	}
	if err := db.DeleteValue(ctx, "missing"); err != nil {
		t.Errorf("DeleteValue(missing) error = %v", err)
	}

	entries, _ := db.ListEntries(ctx)
	if len(entries) != 2 || entries[0].Key != "a" || entries[1].Key != "c" {
		t.Errorf("entries after delete = %+v, want a, c", entries)
	}

	if err := db.ClearValues(ctx); err != nil {
		t.Fatal(err)
	}
	entries, _ = db.ListEntries(ctx)
	if len(entries) != 0 {
		t.Errorf("entries after clear = %+v, want none", entries)
	}
}
