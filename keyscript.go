package thicket

import (
	"encoding/json"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// keyStep represents a single action in a key script.
type keyStep struct {
	Action string `json:"action"`
	Key    string `json:"key,omitempty"`
	Text   string `json:"text,omitempty"`
	Frames int    `json:"frames,omitempty"`

	key ebiten.Key // parsed from Key
}

// keyScript is the top-level JSON structure for a key script.
type keyScript struct {
	Steps []keyStep `json:"steps"`
}

// KeyScript is a KeyReader that replays scripted keyboard input, one step per
// tick. Use it to drive a KeyboardManager in automated runs:
//
//	{"steps": [
//		{"action": "press", "key": "Space"},
//		{"action": "wait", "frames": 3},
//		{"action": "release", "key": "Space"},
//		{"action": "type", "text": "hi"}
//	]}
type KeyScript struct {
	steps     []keyStep
	cursor    int
	waitCount int
	done      bool
}

// LoadKeyScript parses a JSON key script.
func LoadKeyScript(jsonData []byte) (*KeyScript, error) {
	var script keyScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse key script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse key script: no steps")
	}
	for i := range script.Steps {
		st := &script.Steps[i]
		switch st.Action {
		case "press", "release":
			if err := st.key.UnmarshalText([]byte(st.Key)); err != nil {
				return nil, fmt.Errorf("parse key script: step %d: %w", i, err)
			}
		case "type", "wait":
		default:
			return nil, fmt.Errorf("parse key script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &KeyScript{steps: script.Steps}, nil
}

// Done reports whether all steps in the script have been replayed.
func (s *KeyScript) Done() bool {
	return s.done
}

// ReadKeys replays the next step into frame.
func (s *KeyScript) ReadKeys(frame *KeyFrame) {
	if s.done {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		s.checkDone()
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "press":
		frame.Pressed = append(frame.Pressed, st.key)
	case "release":
		frame.Released = append(frame.Released, st.key)
	case "type":
		frame.Chars = append(frame.Chars, []rune(st.Text)...)
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this tick counts as one
		}
	}
	s.checkDone()
}

func (s *KeyScript) checkDone() {
	if s.cursor >= len(s.steps) && s.waitCount == 0 {
		s.done = true
	}
}
