package thicket

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyFrame is one tick of keyboard input as seen by a KeyReader.
type KeyFrame struct {
	Pressed  []ebiten.Key // keys that went down this tick
	Released []ebiten.Key // keys that went up this tick
	Chars    []rune       // characters typed this tick
}

func (f *KeyFrame) reset() {
	f.Pressed = f.Pressed[:0]
	f.Released = f.Released[:0]
	f.Chars = f.Chars[:0]
}

// KeyReader is the source of raw keyboard input. ReadKeys is called once per
// tick with a reset frame to fill.
type KeyReader interface {
	ReadKeys(frame *KeyFrame)
}

// EbitenKeys reads the real keyboard through ebiten.
type EbitenKeys struct{}

// ReadKeys fills frame from inpututil and ebiten.AppendInputChars.
func (EbitenKeys) ReadKeys(frame *KeyFrame) {
	frame.Pressed = inpututil.AppendJustPressedKeys(frame.Pressed)
	frame.Released = inpututil.AppendJustReleasedKeys(frame.Released)
	frame.Chars = ebiten.AppendInputChars(frame.Chars)
}

// --- Keyboard ---

// Keyboard is an InputResource tracking key state for one consumer. All
// keyboards of a manager see the same input; each keeps its own state so that
// one consumer closing its keyboard does not affect another.
type Keyboard struct {
	id      uint32
	down    map[ebiten.Key]bool
	pressed []ebiten.Key
	release []ebiten.Key
	chars   []rune
	closed  bool
}

func newKeyboard(id uint32) *Keyboard {
	return &Keyboard{id: id, down: make(map[ebiten.Key]bool)}
}

// ID returns the keyboard's resource ID.
func (k *Keyboard) ID() uint32 {
	return k.id
}

// Close releases the keyboard. Its manager forgets it on the next Update.
func (k *Keyboard) Close() {
	if k.closed {
		return
	}
	k.closed = true
	clear(k.down)
	k.pressed = k.pressed[:0]
	k.release = k.release[:0]
	k.chars = k.chars[:0]
}

// IsClosed reports whether Close has been called.
func (k *Keyboard) IsClosed() bool {
	return k.closed
}

// IsKeyPressed reports whether key is currently held.
func (k *Keyboard) IsKeyPressed(key ebiten.Key) bool {
	return k.down[key]
}

// IsKeyJustPressed reports whether key went down this tick.
func (k *Keyboard) IsKeyJustPressed(key ebiten.Key) bool {
	return slices.Contains(k.pressed, key)
}

// IsKeyJustReleased reports whether key went up this tick.
func (k *Keyboard) IsKeyJustReleased(key ebiten.Key) bool {
	return slices.Contains(k.release, key)
}

// AppendInputChars appends the characters typed this tick to runes.
func (k *Keyboard) AppendInputChars(runes []rune) []rune {
	return append(runes, k.chars...)
}

// PressedKeys returns the held keys in ascending key order.
func (k *Keyboard) PressedKeys() []ebiten.Key {
	keys := make([]ebiten.Key, 0, len(k.down))
	for key := range k.down {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

func (k *Keyboard) update(frame *KeyFrame) {
	k.pressed = append(k.pressed[:0], frame.Pressed...)
	k.release = append(k.release[:0], frame.Released...)
	k.chars = append(k.chars[:0], frame.Chars...)
	for _, key := range frame.Pressed {
		k.down[key] = true
	}
	for _, key := range frame.Released {
		delete(k.down, key)
	}
}

// --- KeyboardManager ---

// KeyboardManager is an InputManager handing out Keyboards. Each Update reads
// the KeyReader once, feeds every open keyboard, and publishes one event per
// keyboard per key change to the gateway.
type KeyboardManager struct {
	gateway   Gateway
	reader    KeyReader
	keyboards []*Keyboard
	frame     KeyFrame
	tick      uint64
	nextID    uint32
	closed    bool
}

// NewKeyboardManager creates a manager publishing to gateway and reading from
// reader. A nil gateway disables publishing; a nil reader reads the real
// keyboard through EbitenKeys.
func NewKeyboardManager(gateway Gateway, reader KeyReader) *KeyboardManager {
	if reader == nil {
		reader = EbitenKeys{}
	}
	return &KeyboardManager{gateway: gateway, reader: reader}
}

// Alloc creates a new Keyboard.
func (m *KeyboardManager) Alloc() (InputResource, error) {
	if m.closed {
		return nil, ErrManagerClosed
	}
	m.nextID++
	kb := newKeyboard(m.nextID)
	m.keyboards = append(m.keyboards, kb)
	return kb, nil
}

// Free closes rsc and forgets it. Reports false if rsc was not allocated by
// this manager or has already been freed.
func (m *KeyboardManager) Free(rsc InputResource) bool {
	kb, ok := rsc.(*Keyboard)
	if !ok {
		return false
	}
	i := slices.Index(m.keyboards, kb)
	if i < 0 {
		return false
	}
	m.keyboards = slices.Delete(m.keyboards, i, i+1)
	kb.Close()
	return true
}

// Keyboards returns the keyboards currently allocated. The returned slice
// MUST NOT be mutated.
func (m *KeyboardManager) Keyboards() []*Keyboard {
	return m.keyboards
}

// Update polls the reader and dispatches the tick's input.
func (m *KeyboardManager) Update() {
	if m.closed {
		return
	}
	m.tick++
	m.frame.reset()
	m.reader.ReadKeys(&m.frame)

	m.keyboards = slices.DeleteFunc(m.keyboards, (*Keyboard).IsClosed)
	for _, kb := range m.keyboards {
		kb.update(&m.frame)
		m.publish(kb.id)
	}
}

func (m *KeyboardManager) publish(device uint32) {
	if m.gateway == nil {
		return
	}
	for _, key := range m.frame.Pressed {
		m.gateway.Publish(InputEvent{Type: InputKeyDown, Device: device, Frame: m.tick, Key: key})
	}
	for _, key := range m.frame.Released {
		m.gateway.Publish(InputEvent{Type: InputKeyUp, Device: device, Frame: m.tick, Key: key})
	}
	for _, ch := range m.frame.Chars {
		m.gateway.Publish(InputEvent{Type: InputChar, Device: device, Frame: m.tick, Char: ch})
	}
}

// Close closes every keyboard. Later Alloc calls return ErrManagerClosed.
func (m *KeyboardManager) Close() {
	if m.closed {
		return
	}
	m.closed = true
	for _, kb := range m.keyboards {
		kb.Close()
	}
	m.keyboards = nil
}
