package game

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/lazygeek007/connect-four/internal/domain"
	"github.com/lazygeek007/connect-four/internal/repository"
	"github.com/lazygeek007/connect-four/internal/service/bot"
	"github.com/lazygeek007/connect-four/pkg/uid"
)

// SessionManager manages active game sessions. Live sessions are held
// in memory and mirrored into the store after every mutation, so a
// restarted server can rehydrate a game from its snapshot.
type SessionManager struct {
	mu         sync.RWMutex
	sessions   map[string]*GameSession // sessionID → GameSession
	store      repository.SessionStore
	sessionTTL time.Duration
}

// CreateOptions controls how a new session starts. A zero Depth means
// the difficulty preset decides how far the computer searches.
type CreateOptions struct {
	Difficulty    string
	Depth         int
	ComputerFirst bool
}

func NewSessionManager(store repository.SessionStore, sessionTTL time.Duration) *SessionManager {
	return &SessionManager{
		sessions:   make(map[string]*GameSession),
		store:      store,
		sessionTTL: sessionTTL,
	}
}

// Create starts a new game session. When the computer moves first its
// opening move is already applied by the time Create returns.
func (sm *SessionManager) Create(ctx context.Context, opts CreateOptions) (*GameSession, error) {
	difficulty := bot.DifficultyMedium
	if opts.Difficulty != "" {
		parsed, ok := bot.ParseDifficulty(opts.Difficulty)
		if !ok {
			return nil, domain.ErrInvalidDifficulty
		}
		difficulty = parsed
	}

	depth := bot.SearchDepth(difficulty)
	if opts.Depth > 0 {
		depth = bot.ClampDepth(opts.Depth)
	}

	computer := domain.Player2
	if opts.ComputerFirst {
		computer = domain.Player1
	}

	newGame, err := domain.NewGame(computer)
	if err != nil {
		return nil, err
	}

	sessionID, err := uid.GenerateSessionID()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session := &GameSession{
		SessionID:  sessionID,
		Game:       newGame,
		Difficulty: difficulty,
		Depth:      depth,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if opts.ComputerFirst {
		if _, err := session.AdvanceComputer(); err != nil {
			return nil, err
		}
	}

	sm.mu.Lock()
	sm.sessions[sessionID] = session
	sm.mu.Unlock()

	sm.persist(ctx, session)

	log.Printf("[SESSION] Created session %s: you vs %s (difficulty: %s, depth: %d)",
		sessionID, session.BotName(), difficulty, depth)
	return session, nil
}

// Get returns a live session, rehydrating it from the store if the
// server no longer holds it in memory. A snapshot stuck in the
// computer_thinking phase is healed by playing the pending reply.
func (sm *SessionManager) Get(ctx context.Context, sessionID string) (*GameSession, error) {
	sm.mu.RLock()
	session, exists := sm.sessions[sessionID]
	sm.mu.RUnlock()
	if exists {
		return session, nil
	}

	snapshot, err := sm.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	restored, err := domain.RestoreGame(snapshot.Game)
	if err != nil {
		log.Printf("[SESSION] Dropping corrupt snapshot %s: %v", sessionID, err)
		_ = sm.store.Delete(ctx, sessionID)
		return nil, domain.ErrSessionNotFound
	}

	difficulty, ok := bot.ParseDifficulty(snapshot.Difficulty)
	if !ok {
		difficulty = bot.DifficultyMedium
	}

	session = &GameSession{
		SessionID:  snapshot.SessionID,
		Game:       restored,
		Difficulty: difficulty,
		Depth:      bot.ClampDepth(snapshot.Depth),
		CreatedAt:  snapshot.CreatedAt,
		UpdatedAt:  snapshot.UpdatedAt,
	}

	sm.mu.Lock()
	if existing, raced := sm.sessions[sessionID]; raced {
		session = existing
		sm.mu.Unlock()
		return session, nil
	}
	sm.sessions[sessionID] = session
	sm.mu.Unlock()

	log.Printf("[SESSION] Rehydrated session %s from store", sessionID)

	if restored.Phase == domain.PhaseComputerThinking {
		if _, err := session.AdvanceComputer(); err != nil {
			log.Printf("[SESSION] Could not finish pending computer move for %s: %v", sessionID, err)
		} else {
			sm.persist(ctx, session)
		}
	}

	return session, nil
}

// PlayHumanMove runs one full turn exchange on a session and persists
// the result.
func (sm *SessionManager) PlayHumanMove(ctx context.Context, sessionID string, column int) (*MoveReport, error) {
	session, err := sm.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	report, err := session.PlayHumanMove(column)
	if err != nil {
		return nil, err
	}

	sm.persist(ctx, session)
	return report, nil
}

// Remove forgets a session in memory and in the store.
func (sm *SessionManager) Remove(ctx context.Context, sessionID string) error {
	sm.mu.Lock()
	_, exists := sm.sessions[sessionID]
	delete(sm.sessions, sessionID)
	sm.mu.Unlock()

	if !exists {
		if _, err := sm.store.Get(ctx, sessionID); err != nil {
			return err
		}
	}

	log.Printf("[SESSION] Removing session %s", sessionID)
	return sm.store.Delete(ctx, sessionID)
}

// Count reports how many sessions are live in memory.
func (sm *SessionManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sessions)
}

// PruneIdle removes finished games an hour after they ended and
// untouched games once they outlive the session TTL. It returns how
// many sessions were dropped.
func (sm *SessionManager) PruneIdle(ctx context.Context) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	count := 0
	now := time.Now()

	for sessionID, session := range sm.sessions {
		idle := now.Sub(session.LastTouched())
		stale := false
		if session.IsOver() {
			stale = idle > time.Hour
		} else {
			stale = idle > sm.sessionTTL
		}
		if !stale {
			continue
		}

		delete(sm.sessions, sessionID)
		if err := sm.store.Delete(ctx, sessionID); err != nil {
			log.Printf("[SESSION] Error deleting stale session %s: %v", sessionID, err)
		}
		count++
	}

	if count > 0 {
		log.Printf("[SESSION] Memory cleanup: Removed %d stale game sessions", count)
	}
	return count
}

// persist mirrors the session into the store. Store failures are
// logged, not returned: the in-memory game keeps working without its
// snapshot.
func (sm *SessionManager) persist(ctx context.Context, session *GameSession) {
	if err := sm.store.Save(ctx, session.Snapshot()); err != nil {
		log.Printf("[SESSION] Error saving session %s: %v", session.SessionID, err)
	}
}
