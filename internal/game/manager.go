package game

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/socialinept/princessplatelets-server-go/internal/catalog"
)

// Manager tracks active matches by id.
type Manager struct {
	mu        sync.RWMutex
	games     map[string]*Game
	agents    map[string]*Agent
	cardTypes []*catalog.CardType
	logger    *zap.Logger
}

// NewManager creates a manager that builds matches from the given catalog.
func NewManager(cardTypes []*catalog.CardType, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		games:     make(map[string]*Game),
		agents:    make(map[string]*Agent),
		cardTypes: cardTypes,
		logger:    logger,
	}
}

// CreateGame starts a new match with the scripted opponent playing player 2.
func (m *Manager) CreateGame() *Game {
	g := NewGame(m.cardTypes, m.logger)
	agent := NewAgent(g, Player2, m.logger)

	m.mu.Lock()
	m.games[g.ID()] = g
	m.agents[g.ID()] = agent
	m.mu.Unlock()

	m.logger.Info("game created",
		zap.String("game_id", g.ID()),
		zap.Int("card_types", len(m.cardTypes)),
	)
	return g
}

// Game returns the match with the given id.
func (m *Manager) Game(id string) (*Game, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	return g, ok
}

// RemoveGame detaches the match's agent and drops the match.
func (m *Manager) RemoveGame(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return fmt.Errorf("game %s not found", id)
	}
	if agent, ok := m.agents[id]; ok {
		agent.Detach()
	}
	delete(m.games, id)
	delete(m.agents, id)
	return nil
}

// GameCount returns the number of active matches.
func (m *Manager) GameCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
