package game

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/user/potion-wars/config"
	"github.com/user/potion-wars/internal/save"
	"github.com/user/potion-wars/internal/types"
	"go.uber.org/zap"
)

// Session owns one running game: the current state, its message log and
// the save slot they persist to. All gameplay flows through Dispatch;
// the presentation layer reads state and messages but never mutates
// them. Safe for use from a single UI goroutine plus background saves.
type Session struct {
	engine *Engine
	store  *save.Store
	cfg    config.GameConfig
	logger *zap.Logger

	mu       sync.RWMutex
	slot     int
	state    types.GameState
	messages []types.Message
}

// NewSession wires an engine to a store. The logger may be nil.
func NewSession(cfg config.GameConfig, engine *Engine, store *save.Store, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		engine: engine,
		store:  store,
		cfg:    cfg,
		logger: logger,
		slot:   1,
	}
}

// Engine returns the session's rule engine.
func (s *Session) Engine() *Engine {
	return s.engine
}

// StartNew begins a fresh game in the given slot, clearing the slot's
// message log and making the slot active.
func (s *Session) StartNew(slot int) (types.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.engine.NewGame()
	saved, err := s.store.SaveGame(slot, state)
	if err != nil {
		return types.GameState{}, fmt.Errorf("failed to save new game: %w", err)
	}
	if err := s.store.ClearMessages(slot); err != nil {
		return types.GameState{}, fmt.Errorf("failed to reset message log: %w", err)
	}
	if err := s.store.SetActiveSlot(slot); err != nil {
		return types.GameState{}, fmt.Errorf("failed to set active slot: %w", err)
	}

	s.slot = slot
	s.state = saved
	s.messages = nil
	s.appendMessageLocked(types.MessageInfo, "A new venture begins.")
	if err := s.store.SaveMessages(slot, s.messages); err != nil {
		return types.GameState{}, fmt.Errorf("failed to write message log: %w", err)
	}

	s.logger.Info("Started new game",
		zap.Int("slot", slot),
		zap.String("location", saved.Location.Name))

	return saved, nil
}

// Load resumes the game saved in the given slot. A missing or corrupt
// save heals to a fresh game per the store's read contract.
func (s *Session) Load(slot int) (types.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.store.LoadGame(slot, s.engine.NewGame(), func(serr *save.Error) {
		s.logger.Warn("Save file healed to default",
			zap.Int("slot", serr.Slot),
			zap.String("code", serr.Code))
	})
	if err != nil {
		return types.GameState{}, fmt.Errorf("failed to load game: %w", err)
	}

	messages, err := s.store.LoadMessages(slot)
	if err != nil {
		return types.GameState{}, fmt.Errorf("failed to load message log: %w", err)
	}
	if err := s.store.SetActiveSlot(slot); err != nil {
		return types.GameState{}, fmt.Errorf("failed to set active slot: %w", err)
	}

	s.slot = slot
	s.state = state
	s.messages = messages

	s.logger.Info("Loaded game",
		zap.Int("slot", slot),
		zap.Int("day", state.Day),
		zap.String("last_save", state.LastSave))

	return state, nil
}

// Resume loads whichever slot is marked active.
func (s *Session) Resume() (types.GameState, error) {
	slot, err := s.store.ActiveSlot()
	if err != nil {
		return types.GameState{}, fmt.Errorf("failed to read active slot: %w", err)
	}
	return s.Load(slot)
}

// Dispatch applies one action, records its message in the log and
// persists the new state. It returns the next state; a non-nil error
// means a structural persistence failure, after which the in-memory
// state is still advanced so play can continue.
func (s *Session) Dispatch(action Action) (types.GameState, Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	newState, result := s.engine.Reduce(s.state, action)
	s.state = newState

	if result.Message != "" {
		s.appendMessageLocked(result.Type, result.Message)
	}

	s.logger.Debug("Dispatched action",
		zap.String("action", fmt.Sprintf("%T", action)),
		zap.Int("day", newState.Day),
		zap.Int("cash", newState.Cash))

	if err := s.persistLocked(); err != nil {
		s.logger.Error("Failed to persist game state", zap.Error(err))
		return newState, result, err
	}
	// persistLocked restamps LastSave; return the stamped state so callers
	// and State() agree.
	return s.state, result, nil
}

// State returns the current game state.
func (s *Session) State() types.GameState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Slot returns the slot the session persists to.
func (s *Session) Slot() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.slot
}

// Messages returns a copy of the session's message log.
func (s *Session) Messages() []types.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// AddMessage appends presentation-originated text (help, prompts) to the
// log without going through the reducer.
func (s *Session) AddMessage(messageType types.MessageType, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appendMessageLocked(messageType, content)
	if err := s.store.SaveMessages(s.slot, s.messages); err != nil {
		s.logger.Error("Failed to persist message log", zap.Error(err))
	}
}

// GameOver evaluates the end-of-game predicate for the current state.
func (s *Session) GameOver() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine.GameOver(s.state)
}

// Slots lists every save slot with its summary.
func (s *Session) Slots() []save.SlotInfo {
	return s.store.Slots()
}

// DeleteSlot removes a slot's save and log files.
func (s *Session) DeleteSlot(slot int) error {
	return s.store.DeleteSlot(slot)
}

func (s *Session) appendMessageLocked(messageType types.MessageType, content string) {
	s.messages = append(s.messages, types.Message{
		ID:        uuid.New().String(),
		Type:      messageType,
		Content:   content,
		Timestamp: time.Now().Unix(),
	})
	if limit := s.cfg.MessageLogCap; limit > 0 && len(s.messages) > limit {
		s.messages = s.messages[len(s.messages)-limit:]
	}
}

func (s *Session) persistLocked() error {
	saved, err := s.store.SaveGame(s.slot, s.state)
	if err != nil {
		return err
	}
	s.state = saved
	return s.store.SaveMessages(s.slot, s.messages)
}
