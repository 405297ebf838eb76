package game

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/potion-wars/config"
	"github.com/user/potion-wars/internal/save"
	"github.com/user/potion-wars/internal/types"
)

func testSession(t *testing.T, cfg config.GameConfig, seed int64) *Session {
	t.Helper()
	store, err := save.NewStore(t.TempDir(), 3)
	require.NoError(t, err)
	engine := NewEngine(cfg, DefaultCatalog(), nil, rand.New(rand.NewSource(seed)))
	return NewSession(cfg, engine, store, nil)
}

func TestSessionStartNew(t *testing.T) {
	// Setup
	session := testSession(t, testGameConfig(), 1)

	// Test case 1: a new game lands in the chosen slot with the opener
	// message
	state, err := session.StartNew(2)
	require.NoError(t, err)
	assert.Equal(t, 0, state.Day)
	assert.Equal(t, 2000, state.Cash)
	assert.NotEmpty(t, state.LastSave)
	assert.Equal(t, 2, session.Slot())

	messages := session.Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, "A new venture begins.", messages[0].Content)
	assert.Equal(t, types.MessageInfo, messages[0].Type)
	assert.NotEmpty(t, messages[0].ID)

	// Test case 2: the slot file exists and the slot is marked active
	infos := session.Slots()
	assert.True(t, infos[1].Exists)
	assert.False(t, infos[0].Exists)
}

func TestSessionDispatchPersists(t *testing.T) {
	// Setup
	cfg := testGameConfig()
	store, err := save.NewStore(t.TempDir(), 3)
	require.NoError(t, err)
	engine := NewEngine(cfg, DefaultCatalog(), nil, rand.New(rand.NewSource(1)))
	session := NewSession(cfg, engine, store, nil)
	_, err = session.StartNew(1)
	require.NoError(t, err)

	// Test case 1: a dispatch advances the in-memory state and logs its
	// message
	newState, result, err := session.Dispatch(RepayDebtAction{Amount: 500})
	require.NoError(t, err)
	assert.Equal(t, 1500, newState.Cash)
	assert.Equal(t, 4500, newState.Debt)
	assert.Equal(t, "Repaid 500 gold of debt.", result.Message)
	assert.Equal(t, newState, session.State())

	messages := session.Messages()
	require.Len(t, messages, 2)
	assert.Equal(t, result.Message, messages[1].Content)
	assert.Equal(t, types.MessageInfo, messages[1].Type)

	// Test case 2: the dispatch also hit the disk
	persisted, ok, err := store.PeekGame(1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1500, persisted.Cash)
	assert.Equal(t, 4500, persisted.Debt)

	saved, err := store.LoadMessages(1)
	require.NoError(t, err)
	assert.Len(t, saved, 2)
}

func TestSessionLoadRoundTrip(t *testing.T) {
	// Setup
	cfg := testGameConfig()
	store, err := save.NewStore(t.TempDir(), 3)
	require.NoError(t, err)
	engine := NewEngine(cfg, DefaultCatalog(), nil, rand.New(rand.NewSource(7)))
	session := NewSession(cfg, engine, store, nil)

	_, err = session.StartNew(3)
	require.NoError(t, err)
	played, _, err := session.Dispatch(RepayDebtAction{Amount: 1000})
	require.NoError(t, err)

	// Test case 1: a second session over the same store resumes the
	// active slot with identical state and log
	engine2 := NewEngine(cfg, DefaultCatalog(), nil, rand.New(rand.NewSource(8)))
	session2 := NewSession(cfg, engine2, store, nil)

	resumed, err := session2.Resume()
	require.NoError(t, err)
	assert.Equal(t, 3, session2.Slot())
	assert.Equal(t, played.Cash, resumed.Cash)
	assert.Equal(t, played.Debt, resumed.Debt)
	assert.Equal(t, played.Location, resumed.Location)
	assert.Equal(t, len(session.Messages()), len(session2.Messages()))

	// Test case 2: loading an empty slot heals to a fresh game
	fresh, err := session2.Load(1)
	require.NoError(t, err)
	assert.Equal(t, 0, fresh.Day)
	assert.Equal(t, cfg.StartingCash, fresh.Cash)
	assert.Empty(t, session2.Messages())
}

func TestSessionMessageCap(t *testing.T) {
	// Setup: a tiny cap to keep the test fast
	cfg := testGameConfig()
	cfg.MessageLogCap = 5
	session := testSession(t, cfg, 1)
	_, err := session.StartNew(1)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		session.AddMessage(types.MessageInfo, "filler")
	}

	messages := session.Messages()
	assert.Len(t, messages, 5)
	// Oldest entries were dropped.
	for _, m := range messages {
		assert.Equal(t, "filler", m.Content)
	}
}

func TestSessionGameOver(t *testing.T) {
	// Setup
	session := testSession(t, testGameConfig(), 1)
	_, err := session.StartNew(1)
	require.NoError(t, err)
	assert.False(t, session.GameOver())

	// Burn through the whole calendar without events.
	for i := 0; i < 31; i++ {
		_, _, err = session.Dispatch(AdvanceDayAction{})
		require.NoError(t, err)
	}
	assert.True(t, session.GameOver())
	assert.Equal(t, 31, session.State().Day)
}

func TestSessionDeleteSlot(t *testing.T) {
	// Setup
	session := testSession(t, testGameConfig(), 1)
	_, err := session.StartNew(2)
	require.NoError(t, err)
	require.True(t, session.Slots()[1].Exists)

	// Deleting frees the slot; the in-memory session keeps playing.
	require.NoError(t, session.DeleteSlot(2))
	assert.False(t, session.Slots()[1].Exists)
	assert.Equal(t, 2000, session.State().Cash)
}

func TestSessionDeleteSlotFiles(t *testing.T) {
	// Setup
	store, err := save.NewStore(t.TempDir(), 3)
	require.NoError(t, err)
	cfg := testGameConfig()
	engine := NewEngine(cfg, DefaultCatalog(), nil, rand.New(rand.NewSource(1)))
	session := NewSession(cfg, engine, store, nil)
	_, err = session.StartNew(1)
	require.NoError(t, err)

	require.NoError(t, session.DeleteSlot(1))
	assert.NoFileExists(t, filepath.Join(store.Dir(), "slot_1_save.json"))
	assert.NoFileExists(t, filepath.Join(store.Dir(), "slot_1_game_log.json"))
}
