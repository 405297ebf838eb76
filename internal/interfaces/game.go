package interfaces

import (
	"github.com/user/potion-wars/internal/game"
	"github.com/user/potion-wars/internal/save"
	"github.com/user/potion-wars/internal/types"
)

// GameSession is the surface the presentation layer drives. It dispatches
// actions into the core and reads derived values back; it never mutates
// state directly.
type GameSession interface {
	Dispatch(action game.Action) (types.GameState, game.Result, error)
	State() types.GameState
	Messages() []types.Message
	AddMessage(messageType types.MessageType, content string)
	GameOver() bool
	StartNew(slot int) (types.GameState, error)
	Load(slot int) (types.GameState, error)
	Resume() (types.GameState, error)
	Slots() []save.SlotInfo
	DeleteSlot(slot int) error
	Engine() *game.Engine
}
