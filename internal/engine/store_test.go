package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"sladrehank/internal/models"
)

func TestStoreCachesWithinTTL(t *testing.T) {
	calls := 0
	store := NewStore(func(ctx context.Context) ([]models.Record, error) {
		calls++
		return []models.Record{{Year: 2020, Gender: GenderBoth, AgeGroup: AgeTotal}}, nil
	}, time.Hour)

	now := time.Unix(1000, 0)
	store.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		table, err := store.Table(context.Background())
		if err != nil {
			t.Fatalf("Table returned error: %v", err)
		}
		if len(table) != 1 {
			t.Fatalf("expected 1 record, got %d", len(table))
		}
	}
	if calls != 1 {
		t.Fatalf("expected a single fetch within the TTL window, got %d", calls)
	}
}

func TestStoreRefetchesAfterExpiry(t *testing.T) {
	calls := 0
	store := NewStore(func(ctx context.Context) ([]models.Record, error) {
		calls++
		return nil, nil
	}, time.Hour)

	now := time.Unix(1000, 0)
	store.now = func() time.Time { return now }

	if _, err := store.Table(context.Background()); err != nil {
		t.Fatalf("Table returned error: %v", err)
	}

	now = now.Add(59 * time.Minute)
	if _, err := store.Table(context.Background()); err != nil {
		t.Fatalf("Table returned error: %v", err)
	}
	if calls != 1 {
		t.Fatalf("cache expired too early: %d fetches", calls)
	}

	now = now.Add(2 * time.Minute)
	if _, err := store.Table(context.Background()); err != nil {
		t.Fatalf("Table returned error: %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected refetch after expiry, got %d fetches", calls)
	}
}

func TestStoreDoesNotCacheFailures(t *testing.T) {
	calls := 0
	fail := true
	store := NewStore(func(ctx context.Context) ([]models.Record, error) {
		calls++
		if fail {
			return nil, errors.New("ssb unreachable")
		}
		return []models.Record{}, nil
	}, time.Hour)

	if _, err := store.Table(context.Background()); err == nil {
		t.Fatal("expected fetch error")
	}

	// A reload after the outage must retry immediately, not wait for the TTL.
	fail = false
	if _, err := store.Table(context.Background()); err != nil {
		t.Fatalf("Table returned error after recovery: %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected 2 fetches, got %d", calls)
	}
}

func TestStoreCachesEmptyTable(t *testing.T) {
	calls := 0
	store := NewStore(func(ctx context.Context) ([]models.Record, error) {
		calls++
		return []models.Record{}, nil
	}, time.Hour)

	for i := 0; i < 2; i++ {
		if _, err := store.Table(context.Background()); err != nil {
			t.Fatalf("Table returned error: %v", err)
		}
	}
	if calls != 1 {
		t.Fatalf("an empty table is still a successful fetch; got %d fetches", calls)
	}
}
