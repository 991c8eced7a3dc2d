package controllers

import (
	"context"
	"sync"
	"time"

	"motmystere/db"
	"motmystere/models"
)

// memoryUserStore mirrors the Mongo store's semantics over a map, including
// the atomic max on bestScore and the guarded streak write.
type memoryUserStore struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newMemoryUserStore() *memoryUserStore {
	return &memoryUserStore{users: make(map[string]*models.User)}
}

func (s *memoryUserStore) FindByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[googleID]
	if !ok {
		return nil, db.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *memoryUserStore) SyncProfile(ctx context.Context, googleID, email, name, photo string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[googleID]
	if !ok {
		user = &models.User{GoogleID: googleID, CreatedAt: time.Now()}
		s.users[googleID] = user
	}
	user.Email = email
	user.Name = name
	user.Photo = photo
	user.UpdatedAt = time.Now()
	copied := *user
	return &copied, nil
}

func (s *memoryUserStore) RaiseBestScore(ctx context.Context, googleID string, score int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[googleID]
	if !ok {
		return 0, db.ErrNotFound
	}
	if score > user.BestScore {
		user.BestScore = score
	}
	return user.BestScore, nil
}

func (s *memoryUserStore) SetStreak(ctx context.Context, googleID, ifLastPlayed string, streak int, lastPlayed string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[googleID]
	if !ok || user.LastPlayed != ifLastPlayed {
		return false, nil
	}
	user.Streak = streak
	user.LastPlayed = lastPlayed
	return true, nil
}

func (s *memoryUserStore) Ping(ctx context.Context) error { return nil }

// memoryQuoteStore serves a fixed quote list.
type memoryQuoteStore struct {
	quotes []models.Quote
	err    error
}

func (s *memoryQuoteStore) RandomQuote(ctx context.Context) (*models.Quote, error) {
	if s.err != nil {
		return nil, s.err
	}
	if len(s.quotes) == 0 {
		return nil, db.ErrNotFound
	}
	return &s.quotes[0], nil
}

func (s *memoryQuoteStore) Count(ctx context.Context) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return int64(len(s.quotes)), nil
}

func (s *memoryQuoteStore) Authors(ctx context.Context) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	seen := make(map[string]bool)
	var authors []string
	for _, q := range s.quotes {
		if !seen[q.Author] {
			seen[q.Author] = true
			authors = append(authors, q.Author)
		}
	}
	return authors, nil
}

func (s *memoryQuoteStore) InsertMany(ctx context.Context, quotes []models.Quote) error {
	s.quotes = append(s.quotes, quotes...)
	return nil
}
