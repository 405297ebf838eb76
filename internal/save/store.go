// Package save implements the slot-based filesystem store for game
// states and message logs.
//
// File naming convention, under the store directory:
//
//	slot_<N>_save.json     - GameState snapshot
//	slot_<N>_game_log.json - ordered Message array
//	active_slot.json       - currently active slot pointer
//
// Reads follow a self-healing contract: a missing or invalid file is
// repaired by writing back a caller-supplied default, which is then
// returned. Structural problems (invalid slot numbers, write failures)
// are never healed; they surface as *Error.
package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/user/potion-wars/internal/types"
)

// Kind identifies the category of a slot file.
type Kind string

const (
	KindSave       Kind = "save"
	KindLog        Kind = "game_log"
	KindActiveSlot Kind = "active_slot"
)

// Error codes carried by *Error.
const (
	CodeInvalidSlot = "invalid_slot"
	CodeInvalidJSON = "invalid_json"
	CodeInvalidData = "invalid_data"
	CodeNotFound    = "not_found"
	CodeReadError   = "read_error"
	CodeWriteError  = "write_error"
	CodeDeleteError = "delete_error"
)

// Error is the structured persistence error: an error-kind code plus the
// slot and file category it concerns.
type Error struct {
	Code string
	Slot int
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("save: %s (slot %d, %s)", e.Code, e.Slot, e.Kind)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Store is a filesystem-backed save store with numbered slots.
type Store struct {
	dir       string
	slotCount int
}

// NewStore opens (creating if needed) a store rooted at dir with
// slotCount numbered slots, 1-based.
func NewStore(dir string, slotCount int) (*Store, error) {
	if slotCount < 1 {
		slotCount = 3
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create save directory: %w", err)
	}
	return &Store{dir: dir, slotCount: slotCount}, nil
}

// Dir returns the store's root directory.
func (s *Store) Dir() string {
	return s.dir
}

// SlotCount returns the number of available slots.
func (s *Store) SlotCount() int {
	return s.slotCount
}

func (s *Store) filePath(slot int, kind Kind) string {
	// The active slot pointer is process-wide, not per slot.
	if kind == KindActiveSlot {
		return filepath.Join(s.dir, "active_slot.json")
	}
	return filepath.Join(s.dir, fmt.Sprintf("slot_%d_%s.json", slot, kind))
}

func (s *Store) validateSlot(slot int, kind Kind) error {
	if kind == KindActiveSlot {
		return nil
	}
	if slot < 1 || slot > s.slotCount {
		return &Error{Code: CodeInvalidSlot, Slot: slot, Kind: kind}
	}
	return nil
}

// Options controls a self-healing read.
type Options[T any] struct {
	// CreateIfNotExists enables healing: a missing or invalid file is
	// replaced with Default and Default is returned.
	CreateIfNotExists bool
	// Default is the heal value written back on a soft failure.
	Default T
	// Validate rejects structurally bad data; nil accepts everything.
	Validate func(T) bool
	// OnError observes soft failures that were healed or skipped; hard
	// failures are returned, not reported here.
	OnError func(*Error)
}

// Read loads one slot file. The boolean reports whether a value (loaded
// or healed) is being returned; a missing file without healing yields
// (zero, false, nil). Only structural failures return a non-nil error.
func Read[T any](s *Store, slot int, kind Kind, opts Options[T]) (T, bool, error) {
	var zero T

	if err := s.validateSlot(slot, kind); err != nil {
		return zero, false, err
	}

	path := s.filePath(slot, kind)
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return zero, false, &Error{Code: CodeReadError, Slot: slot, Kind: kind, Err: err}
		}
		if opts.CreateIfNotExists {
			if werr := Write(s, slot, kind, opts.Default); werr != nil {
				return zero, false, werr
			}
			return opts.Default, true, nil
		}
		report(opts.OnError, &Error{Code: CodeNotFound, Slot: slot, Kind: kind, Err: err})
		return zero, false, nil
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return heal(s, slot, kind, opts, &Error{Code: CodeInvalidJSON, Slot: slot, Kind: kind, Err: err})
	}
	if opts.Validate != nil && !opts.Validate(value) {
		return heal(s, slot, kind, opts, &Error{Code: CodeInvalidData, Slot: slot, Kind: kind})
	}

	return value, true, nil
}

// heal reports the soft failure and writes the default back when healing
// is enabled.
func heal[T any](s *Store, slot int, kind Kind, opts Options[T], softErr *Error) (T, bool, error) {
	var zero T
	report(opts.OnError, softErr)
	if !opts.CreateIfNotExists {
		return zero, false, nil
	}
	if err := Write(s, slot, kind, opts.Default); err != nil {
		return zero, false, err
	}
	return opts.Default, true, nil
}

func report(onError func(*Error), err *Error) {
	if onError != nil {
		onError(err)
	}
}

// Write overwrites one slot file wholesale.
func Write[T any](s *Store, slot int, kind Kind, data T) error {
	if err := s.validateSlot(slot, kind); err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return &Error{Code: CodeWriteError, Slot: slot, Kind: kind, Err: err}
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return &Error{Code: CodeWriteError, Slot: slot, Kind: kind, Err: err}
	}
	if err := os.WriteFile(s.filePath(slot, kind), encoded, 0644); err != nil {
		return &Error{Code: CodeWriteError, Slot: slot, Kind: kind, Err: err}
	}
	return nil
}

// Clear deletes one slot file if it exists.
func (s *Store) Clear(slot int, kind Kind) error {
	if err := s.validateSlot(slot, kind); err != nil {
		return err
	}
	if err := os.Remove(s.filePath(slot, kind)); err != nil && !os.IsNotExist(err) {
		return &Error{Code: CodeDeleteError, Slot: slot, Kind: kind, Err: err}
	}
	return nil
}

// SaveGame stamps LastSave and writes the snapshot to the slot. The
// stamped state is returned so the caller keeps the timestamp in memory.
func (s *Store) SaveGame(slot int, state types.GameState) (types.GameState, error) {
	stamped := state.Clone()
	stamped.LastSave = time.Now().Format(time.RFC3339)
	if err := Write(s, slot, KindSave, stamped); err != nil {
		return state, err
	}
	return stamped, nil
}

// LoadGame reads the slot's snapshot with healing enabled: a missing or
// corrupt save is replaced by def and def is returned.
func (s *Store) LoadGame(slot int, def types.GameState, onError func(*Error)) (types.GameState, error) {
	state, ok, err := Read(s, slot, KindSave, Options[types.GameState]{
		CreateIfNotExists: true,
		Default:           def,
		Validate:          types.GameState.Valid,
		OnError:           onError,
	})
	if err != nil {
		return def, err
	}
	if !ok {
		return def, nil
	}
	return state, nil
}

// PeekGame reads the slot's snapshot without healing. Missing saves
// report ok == false and create nothing.
func (s *Store) PeekGame(slot int) (types.GameState, bool, error) {
	return Read(s, slot, KindSave, Options[types.GameState]{
		Validate: types.GameState.Valid,
	})
}

// SaveMessages overwrites the slot's message log.
func (s *Store) SaveMessages(slot int, messages []types.Message) error {
	if messages == nil {
		messages = []types.Message{}
	}
	return Write(s, slot, KindLog, messages)
}

// LoadMessages reads the slot's message log, healing to an empty log.
func (s *Store) LoadMessages(slot int) ([]types.Message, error) {
	messages, ok, err := Read(s, slot, KindLog, Options[[]types.Message]{
		CreateIfNotExists: true,
		Default:           []types.Message{},
		Validate: func(all []types.Message) bool {
			for _, m := range all {
				if !types.ValidMessage(m) {
					return false
				}
			}
			return true
		},
	})
	if err != nil {
		return nil, err
	}
	if !ok || messages == nil {
		return []types.Message{}, nil
	}
	return messages, nil
}

// ClearMessages resets the slot's message log to empty.
func (s *Store) ClearMessages(slot int) error {
	return s.SaveMessages(slot, nil)
}

type activeSlotFile struct {
	ActiveSlot int `json:"activeSlot"`
}

// ActiveSlot reads the process-wide active slot pointer, healing to
// slot 1.
func (s *Store) ActiveSlot() (int, error) {
	value, ok, err := Read(s, 0, KindActiveSlot, Options[activeSlotFile]{
		CreateIfNotExists: true,
		Default:           activeSlotFile{ActiveSlot: 1},
		Validate: func(f activeSlotFile) bool {
			return f.ActiveSlot >= 1 && f.ActiveSlot <= s.slotCount
		},
	})
	if err != nil {
		return 1, err
	}
	if !ok {
		return 1, nil
	}
	return value.ActiveSlot, nil
}

// SetActiveSlot records the active slot. Out-of-range slots are a hard
// failure.
func (s *Store) SetActiveSlot(slot int) error {
	if slot < 1 || slot > s.slotCount {
		return &Error{Code: CodeInvalidSlot, Slot: slot, Kind: KindActiveSlot}
	}
	return Write(s, 0, KindActiveSlot, activeSlotFile{ActiveSlot: slot})
}

// SlotInfo summarizes one save slot for slot-picker screens.
type SlotInfo struct {
	Slot   int
	Exists bool
	State  *types.GameState
}

// Slots reports existence and a state summary for every slot, without
// healing anything.
func (s *Store) Slots() []SlotInfo {
	infos := make([]SlotInfo, 0, s.slotCount)
	for slot := 1; slot <= s.slotCount; slot++ {
		info := SlotInfo{Slot: slot}
		state, ok, err := s.PeekGame(slot)
		if err == nil && ok {
			info.Exists = true
			info.State = &state
		}
		infos = append(infos, info)
	}
	return infos
}

// DeleteSlot removes both files of a slot.
func (s *Store) DeleteSlot(slot int) error {
	if err := s.Clear(slot, KindSave); err != nil {
		return err
	}
	return s.Clear(slot, KindLog)
}

// IsStructural reports whether err is a structured persistence failure.
func IsStructural(err error) bool {
	var serr *Error
	return errors.As(err, &serr)
}
