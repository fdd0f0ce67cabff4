package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/lazygeek007/connect-four/internal/domain"
	"github.com/lazygeek007/connect-four/internal/repository"
)

type StoreSuite struct {
	suite.Suite
	store *Store
	ctx   context.Context
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.store = New()
	s.ctx = context.Background()
}

func (s *StoreSuite) newSnapshot(sessionID string) *repository.GameSnapshot {
	game, err := domain.NewGame(domain.Player2)
	s.Require().NoError(err)

	now := time.Now().UTC()
	return &repository.GameSnapshot{
		SessionID:  sessionID,
		Game:       game.State(),
		Difficulty: "medium",
		Depth:      3,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (s *StoreSuite) TestSaveAndGet() {
	snapshot := s.newSnapshot("session-1")

	err := s.store.Save(s.ctx, snapshot)
	s.Require().NoError(err)

	retrieved, err := s.store.Get(s.ctx, "session-1")
	s.Require().NoError(err)
	s.Equal(snapshot.SessionID, retrieved.SessionID)
	s.Equal(snapshot.Difficulty, retrieved.Difficulty)
	s.Equal(snapshot.Depth, retrieved.Depth)
	s.Equal(snapshot.Game.Status, retrieved.Game.Status)
}

func (s *StoreSuite) TestGetNotFound() {
	_, err := s.store.Get(s.ctx, "nonexistent")
	s.ErrorIs(err, domain.ErrSessionNotFound)
}

func (s *StoreSuite) TestSaveReplacesExisting() {
	first := s.newSnapshot("session-1")
	_ = s.store.Save(s.ctx, first)

	second := s.newSnapshot("session-1")
	second.Difficulty = "hard"
	second.Depth = 5
	err := s.store.Save(s.ctx, second)
	s.Require().NoError(err)

	retrieved, err := s.store.Get(s.ctx, "session-1")
	s.Require().NoError(err)
	s.Equal("hard", retrieved.Difficulty)
	s.Equal(5, retrieved.Depth)
}

func (s *StoreSuite) TestDelete() {
	snapshot := s.newSnapshot("session-1")
	_ = s.store.Save(s.ctx, snapshot)

	err := s.store.Delete(s.ctx, "session-1")
	s.Require().NoError(err)

	_, err = s.store.Get(s.ctx, "session-1")
	s.ErrorIs(err, domain.ErrSessionNotFound)
}

func (s *StoreSuite) TestDeleteUnknownSession() {
	err := s.store.Delete(s.ctx, "nonexistent")
	s.NoError(err)
}

func (s *StoreSuite) TestPing() {
	s.NoError(s.store.Ping(s.ctx))
}

func (s *StoreSuite) TestSessionsAreIndependent() {
	first := s.newSnapshot("session-1")
	second := s.newSnapshot("session-2")
	second.Difficulty = "easy"

	_ = s.store.Save(s.ctx, first)
	_ = s.store.Save(s.ctx, second)

	err := s.store.Delete(s.ctx, "session-1")
	s.Require().NoError(err)

	retrieved, err := s.store.Get(s.ctx, "session-2")
	s.Require().NoError(err)
	s.Equal("easy", retrieved.Difficulty)
}
