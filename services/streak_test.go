package services

import (
	"context"
	"testing"
	"time"

	"motmystere/db"
	"motmystere/models"
)

func TestNextStreak(t *testing.T) {
	today := time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name       string
		streak     int
		lastPlayed string
		want       int
		wantChange bool
	}{
		{"never played", 0, "", 1, true},
		{"already played today", 4, "2025-03-15", 4, false},
		{"played yesterday", 4, "2025-03-14", 5, true},
		{"two day gap", 4, "2025-03-13", 1, true},
		{"long gap", 12, "2024-11-02", 1, true},
		{"future date from clock skew", 4, "2025-03-16", 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := NextStreak(tt.streak, tt.lastPlayed, today)
			if got != tt.want || changed != tt.wantChange {
				t.Errorf("NextStreak(%d, %q) = (%d, %v), want (%d, %v)",
					tt.streak, tt.lastPlayed, got, changed, tt.want, tt.wantChange)
			}
		})
	}
}

// memoryUserStore implements db.UserStore over a single in-memory record with
// the same guarded-write semantics as the Mongo store.
type memoryUserStore struct {
	user *models.User
}

func (s *memoryUserStore) FindByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	if s.user == nil || s.user.GoogleID != googleID {
		return nil, db.ErrNotFound
	}
	copied := *s.user
	return &copied, nil
}

func (s *memoryUserStore) SyncProfile(ctx context.Context, googleID, email, name, photo string) (*models.User, error) {
	if s.user == nil || s.user.GoogleID != googleID {
		s.user = &models.User{GoogleID: googleID}
	}
	s.user.Email = email
	s.user.Name = name
	s.user.Photo = photo
	copied := *s.user
	return &copied, nil
}

func (s *memoryUserStore) RaiseBestScore(ctx context.Context, googleID string, score int) (int, error) {
	if s.user == nil || s.user.GoogleID != googleID {
		return 0, db.ErrNotFound
	}
	if score > s.user.BestScore {
		s.user.BestScore = score
	}
	return s.user.BestScore, nil
}

func (s *memoryUserStore) SetStreak(ctx context.Context, googleID, ifLastPlayed string, streak int, lastPlayed string) (bool, error) {
	if s.user == nil || s.user.GoogleID != googleID || s.user.LastPlayed != ifLastPlayed {
		return false, nil
	}
	s.user.Streak = streak
	s.user.LastPlayed = lastPlayed
	return true, nil
}

func (s *memoryUserStore) Ping(ctx context.Context) error { return nil }

func TestReportPlay_Sequences(t *testing.T) {
	ctx := context.Background()
	day := func(d int) time.Time {
		return time.Date(2025, 3, d, 10, 0, 0, 0, time.UTC)
	}

	t.Run("consecutive days advance", func(t *testing.T) {
		store := &memoryUserStore{user: &models.User{GoogleID: "g-1"}}

		streak, err := ReportPlay(ctx, store, "g-1", day(10))
		if err != nil || streak != 1 {
			t.Fatalf("first play: got (%d, %v), want (1, nil)", streak, err)
		}
		streak, err = ReportPlay(ctx, store, "g-1", day(11))
		if err != nil || streak != 2 {
			t.Fatalf("next day: got (%d, %v), want (2, nil)", streak, err)
		}
	})

	t.Run("gap resets", func(t *testing.T) {
		store := &memoryUserStore{user: &models.User{GoogleID: "g-1"}}

		if _, err := ReportPlay(ctx, store, "g-1", day(10)); err != nil {
			t.Fatal(err)
		}
		streak, err := ReportPlay(ctx, store, "g-1", day(12))
		if err != nil || streak != 1 {
			t.Fatalf("after gap: got (%d, %v), want (1, nil)", streak, err)
		}
	})

	t.Run("same day is idempotent", func(t *testing.T) {
		store := &memoryUserStore{user: &models.User{GoogleID: "g-1"}}

		if _, err := ReportPlay(ctx, store, "g-1", day(10)); err != nil {
			t.Fatal(err)
		}
		before := *store.user
		streak, err := ReportPlay(ctx, store, "g-1", day(10))
		if err != nil || streak != 1 {
			t.Fatalf("repeat: got (%d, %v), want (1, nil)", streak, err)
		}
		if store.user.Streak != before.Streak || store.user.LastPlayed != before.LastPlayed {
			t.Errorf("record changed on same-day repeat: %+v -> %+v", before, *store.user)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		store := &memoryUserStore{}
		if _, err := ReportPlay(ctx, store, "g-404", day(10)); err != db.ErrNotFound {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

// lostRaceStore rejects the first guarded write, simulating a concurrent
// report that committed in between the read and the write.
type lostRaceStore struct {
	memoryUserStore
	rejected bool
}

func (s *lostRaceStore) SetStreak(ctx context.Context, googleID, ifLastPlayed string, streak int, lastPlayed string) (bool, error) {
	if !s.rejected {
		s.rejected = true
		// The concurrent winner already recorded today's play.
		s.user.Streak = 3
		s.user.LastPlayed = lastPlayed
		return false, nil
	}
	return s.memoryUserStore.SetStreak(ctx, googleID, ifLastPlayed, streak, lastPlayed)
}

func TestReportPlay_ConcurrentReportWins(t *testing.T) {
	store := &lostRaceStore{memoryUserStore: memoryUserStore{
		user: &models.User{GoogleID: "g-1", Streak: 2, LastPlayed: "2025-03-14"},
	}}

	streak, err := ReportPlay(context.Background(), store, "g-1",
		time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("ReportPlay error: %v", err)
	}
	if streak != 3 {
		t.Errorf("expected the stored winner value 3, got %d", streak)
	}
}
