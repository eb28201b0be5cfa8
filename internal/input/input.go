package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical control, not a physical key
type Action int

// Action constants using iota
const (
	ActionQuit Action = iota
	ActionTogglePause
	ActionToggleWireframe
	ActionToggleHUD
	ActionCount // Sentinel value for array sizing
)

// KeySource reports the last known state of a key. *glfw.Window implements it;
// with sticky keys enabled a press between two polls still reads as Press once.
type KeySource interface {
	GetKey(key glfw.Key) glfw.Action
}

// InputManager maps physical keys to actions and tracks per-frame edges
type InputManager struct {
	mu sync.RWMutex

	// Key to action mapping (one key can map to multiple actions)
	keyToActions map[glfw.Key][]Action

	// Current frame state (indexed by Action)
	currentState [ActionCount]bool

	// Just pressed/released flags (reset each frame)
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool
}

// NewInputManager creates a new InputManager with default key bindings
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions: make(map[glfw.Key][]Action),
	}

	im.BindKey(glfw.KeyEscape, ActionQuit)
	im.BindKey(glfw.KeySpace, ActionTogglePause)
	im.BindKey(glfw.KeyF, ActionToggleWireframe)
	im.BindKey(glfw.KeyH, ActionToggleHUD)

	return im
}

// BindKey binds a physical key to a logical action
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}

	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// UnbindKey removes all action bindings for a key
func (im *InputManager) UnbindKey(key glfw.Key) {
	im.mu.Lock()
	defer im.mu.Unlock()

	delete(im.keyToActions, key)
}

// Poll samples every bound key from src and records press/release edges for
// this frame. An action is held while any of its keys is down.
func (im *InputManager) Poll(src KeySource) {
	im.mu.Lock()
	defer im.mu.Unlock()

	var held [ActionCount]bool
	for key, actions := range im.keyToActions {
		state := src.GetKey(key)
		if state != glfw.Press && state != glfw.Repeat {
			continue
		}
		for _, act := range actions {
			held[act] = true
		}
	}

	for i := range ActionCount {
		im.justPressed[i] = held[i] && !im.currentState[i]
		im.justReleased[i] = !held[i] && im.currentState[i]
		im.currentState[i] = held[i]
	}
}

// IsActive returns true if the action is currently being held down
func (im *InputManager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.currentState[action]
}

// JustPressed returns true only if the action was pressed in the current frame
func (im *InputManager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.justPressed[action]
}

// JustReleased returns true only if the action was released in the current frame
func (im *InputManager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.justReleased[action]
}
