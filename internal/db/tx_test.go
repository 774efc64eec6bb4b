package db

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`CREATE TABLE favorites (playlist_id TEXT PRIMARY KEY)`)
	if err != nil {
		db.Close()
		t.Fatalf("failed to create table: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func countRows(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM favorites`).Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestWithTx_Commit(t *testing.T) {
	db := setupTestDB(t)

	err := WithTx(context.Background(), db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT INTO favorites (playlist_id) VALUES (?)`, "mindful-moments")
		return err
	})
	if err != nil {
		t.Fatalf("WithTx failed: %v", err)
	}
	if got := countRows(t, db); got != 1 {
		t.Errorf("count = %d, want 1", got)
	}
}

func TestWithTx_Rollback(t *testing.T) {
	db := setupTestDB(t)
	boom := errors.New("boom")

	err := WithTx(context.Background(), db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO favorites (playlist_id) VALUES (?)`, "be-happy"); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if got := countRows(t, db); got != 0 {
		t.Errorf("count = %d, want 0 after rollback", got)
	}
}

func TestWithTx_CanceledContext(t *testing.T) {
	db := setupTestDB(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := WithTx(ctx, db, func(*sql.Tx) error {
		called = true
		return nil
	})
	if err == nil {
		t.Fatal("expected error for canceled context")
	}
	if called {
		t.Error("fn should not run when the transaction cannot begin")
	}
}

func TestNullString(t *testing.T) {
	if NullString("").Valid {
		t.Error("empty string should be NULL")
	}
	n := NullString("3 min")
	if !n.Valid || n.String != "3 min" {
		t.Errorf("NullString = %+v", n)
	}
	if got := NullStringValue(sql.NullString{}); got != "" {
		t.Errorf("NullStringValue(NULL) = %q", got)
	}
	if got := NullStringValue(n); got != "3 min" {
		t.Errorf("NullStringValue = %q", got)
	}
}

func TestUnixTime(t *testing.T) {
	if !UnixTime(0).IsZero() {
		t.Error("UnixTime(0) should be the zero time")
	}
	want := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	if got := UnixTime(want.Unix()); !got.Equal(want) {
		t.Errorf("UnixTime = %v, want %v", got, want)
	}
}

func TestBoolInt(t *testing.T) {
	if BoolInt(true) != 1 || BoolInt(false) != 0 {
		t.Error("BoolInt mapping wrong")
	}
}
