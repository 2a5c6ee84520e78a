package quill

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single editing gesture in a script. Coordinates are in
// scene space.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	DX     float64 `json:"dx,omitempty"`
	DY     float64 `json:"dy,omitempty"`
	Deg    float64 `json:"deg,omitempty"`
	W      float64 `json:"w,omitempty"`
	H      float64 `json:"h,omitempty"`
	Color  string  `json:"color,omitempty"`
}

// scriptDoc is the top-level JSON structure of a script.
type scriptDoc struct {
	Steps []scriptStep `json:"steps"`
}

// scriptActions lists the accepted actions and whether they need a selection.
var scriptActions = map[string]bool{
	"click":    false,
	"deselect": false,
	"move":     true,
	"rotate":   true,
	"resize":   true,
	"raise":    true,
	"lower":    true,
	"fill":     true,
	"remove":   true,
}

// Script replays a sequence of editing gestures against a scene, the same
// way the interactive editor applies pointer and key events: each step
// mutates the scene, then a full frame pass runs before the next step.
type Script struct {
	steps []scriptStep
}

// StepResult records the selection after a step ran.
type StepResult struct {
	Action   string
	Selected *Node
}

// LoadScript parses a JSON script such as
//
//	{"steps": [{"action": "click", "x": 100, "y": 0}, {"action": "rotate", "deg": 90}]}
func LoadScript(jsonData []byte) (*Script, error) {
	var doc scriptDoc
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return nil, fmt.Errorf("quill: parse script: %w", err)
	}
	if len(doc.Steps) == 0 {
		return nil, fmt.Errorf("quill: parse script: no steps")
	}
	for i, st := range doc.Steps {
		if _, ok := scriptActions[st.Action]; !ok {
			return nil, fmt.Errorf("quill: parse script: step %d: unknown action %q", i, st.Action)
		}
		if st.Action == "fill" {
			if _, err := ParseColor(st.Color); err != nil {
				return nil, fmt.Errorf("quill: parse script: step %d: %w", i, err)
			}
		}
	}
	return &Script{steps: doc.Steps}, nil
}

// Len returns the number of steps.
func (sc *Script) Len() int {
	return len(sc.steps)
}

// Run executes every step against s with a fresh selection. Steps that need
// a selection are no-ops when nothing is selected. The selection outline is
// detached again when Run returns.
func (sc *Script) Run(s *Scene) ([]StepResult, error) {
	var sel Selection
	defer sel.Clear()

	results := make([]StepResult, 0, len(sc.steps))
	ordered := s.Frame()
	for i, st := range sc.steps {
		if err := sc.apply(s, &sel, ordered, st); err != nil {
			return results, fmt.Errorf("quill: script step %d (%s): %w", i, st.Action, err)
		}
		sel.Sync()
		ordered = s.Frame()
		results = append(results, StepResult{Action: st.Action, Selected: sel.Node()})
	}
	return results, nil
}

func (sc *Script) apply(s *Scene, sel *Selection, ordered []*Node, st scriptStep) error {
	n := sel.Node()
	if scriptActions[st.Action] && n == nil {
		return nil
	}
	switch st.Action {
	case "click":
		hit := Pick(Vec2{st.X, st.Y}, ordered, sel.Outline())
		if hit == nil {
			sel.Clear()
			return nil
		}
		return sel.Select(s, hit)
	case "deselect":
		sel.Clear()
	case "move":
		n.SetPosition(n.X+st.DX, n.Y+st.DY)
	case "rotate":
		n.SetRotation(n.R + st.Deg)
	case "resize":
		n.SetSize(st.W, st.H)
	case "raise":
		_, hi := StackingRange(ordered, sel.Outline())
		n.SetZIndex(hi + 1)
	case "lower":
		lo, _ := StackingRange(ordered, sel.Outline())
		n.SetZIndex(lo - 1)
	case "fill":
		c, err := ParseColor(st.Color)
		if err != nil {
			return err
		}
		n.SetFill(c)
	case "remove":
		sel.Clear()
		s.Remove(n)
	}
	return nil
}
