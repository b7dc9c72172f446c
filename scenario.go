package pebble

import (
	"encoding/json"
	"fmt"
)

// scenarioStep represents a single action in a scenario script.
type scenarioStep struct {
	Action      string  `json:"action"`
	X           float64 `json:"x,omitempty"`
	Y           float64 `json:"y,omitempty"`
	Radius      float64 `json:"radius,omitempty"`
	VX          float64 `json:"vx,omitempty"`
	VY          float64 `json:"vy,omitempty"`
	Seconds     float64 `json:"seconds,omitempty"`
	Value       float64 `json:"value,omitempty"`
	Times       int     `json:"times,omitempty"`
	ColR        float64 `json:"r,omitempty"`
	ColG        float64 `json:"g,omitempty"`
	ColB        float64 `json:"b,omitempty"`
	ColA        float64 `json:"a,omitempty"`
}

// scenarioScript is the top-level JSON structure for a scenario.
type scenarioScript struct {
	Steps []scenarioStep `json:"steps"`
}

// Scenario is a replayable sequence of sandbox actions — spawns, ticks,
// pause toggles, parameter changes — decoded from a JSON script. Scenarios
// give tests and demos deterministic end-to-end runs without a real clock
// or pointer.
//
// Supported actions:
//
//	spawn        x, y, radius, vx, vy, r/g/b/a color components
//	tick         seconds of simulated frame time (repeated `times`, default 1)
//	step         `times` raw fixed substeps (default 1)
//	pause        pause the stepper
//	resume       resume the stepper
//	clear        remove all bodies
//	gravity      set gravity to `value`
//	restitution  set restitution to `value`
type Scenario struct {
	steps []scenarioStep
}

// LoadScenario parses a JSON scenario script.
func LoadScenario(jsonData []byte) (*Scenario, error) {
	var script scenarioScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("pebble: parse scenario: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("pebble: parse scenario: no steps")
	}
	return &Scenario{steps: script.Steps}, nil
}

// Run plays the scenario against the given world and stepper. It stops at
// the first failing step and reports its index and action.
func (sc *Scenario) Run(w *World, st *Stepper) error {
	for i, step := range sc.steps {
		if err := applyStep(w, st, step); err != nil {
			return fmt.Errorf("pebble: scenario step %d (%s): %w", i, step.Action, err)
		}
	}
	return nil
}

func applyStep(w *World, st *Stepper, step scenarioStep) error {
	times := step.Times
	if times < 1 {
		times = 1
	}

	switch step.Action {
	case "spawn":
		c := Color{R: step.ColR, G: step.ColG, B: step.ColB, A: step.ColA}
		if c == (Color{}) {
			c = ColorWhite
		}
		_, err := w.Spawn(step.X, step.Y, step.Radius, step.VX, step.VY, c)
		return err
	case "tick":
		for i := 0; i < times; i++ {
			st.Tick(step.Seconds)
		}
		return nil
	case "step":
		for i := 0; i < times; i++ {
			st.StepOnce()
		}
		return nil
	case "pause":
		st.SetPaused(true)
		return nil
	case "resume":
		st.SetPaused(false)
		return nil
	case "clear":
		w.ClearAll()
		return nil
	case "gravity":
		return w.SetGravity(step.Value)
	case "restitution":
		return w.SetRestitution(step.Value)
	default:
		return fmt.Errorf("unknown action %q", step.Action)
	}
}
