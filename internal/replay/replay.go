// Package replay runs recorded command scripts against a fresh engine.
//
// A script fixes the seed, the randomizer and the command sequence, so the
// same script always reproduces the same final state:
//
//	seed: 42
//	randomizer: bag
//	commands: [tick, left, left, rotate, drop, tick]
package replay

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/tetris"

	// Register the built-in randomizers.
	_ "github.com/vovakirdan/tui-tetris/internal/randomizer"
)

// Script is a recorded game.
type Script struct {
	Seed       int64                `yaml:"seed"`
	Randomizer string               `yaml:"randomizer,omitempty"`
	Config     *config.TetrisConfig `yaml:"config,omitempty"` // Overrides the caller's config
	Commands   []tetris.Command     `yaml:"commands"`
}

// Load reads and parses a script file.
func Load(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("replay: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return Script{}, fmt.Errorf("replay: %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a YAML script. Unknown command names are an error.
func Parse(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("parse script: %w", err)
	}
	return s, nil
}

// Marshal encodes s as YAML.
func Marshal(s Script) ([]byte, error) {
	return yaml.Marshal(s)
}

// Run replays s on a new engine built from cfg, or from s.Config when set,
// and returns the state after the last command. The randomizer defaults to
// "uniform".
func Run(s Script, cfg tetris.Config) (tetris.State, error) {
	e, err := NewEngine(s, cfg)
	if err != nil {
		return tetris.State{}, err
	}

	state := e.State()
	for _, cmd := range s.Commands {
		state = e.Apply(cmd)
	}
	return state, nil
}

// NewEngine builds the engine a script starts from, before any command.
func NewEngine(s Script, cfg tetris.Config) (*tetris.Engine, error) {
	if s.Config != nil {
		ec, err := s.Config.EngineConfig()
		if err != nil {
			return nil, fmt.Errorf("replay: %w", err)
		}
		cfg = ec
	}

	name := s.Randomizer
	if name == "" {
		name = "uniform"
	}
	rnd, err := registry.Create(name, s.Seed)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}

	e, err := tetris.New(cfg, rnd)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	return e, nil
}

// Recorder collects the commands a host feeds an engine, gravity ticks
// included, so the session can be saved and replayed later.
type Recorder struct {
	script Script
}

// NewRecorder starts a recording for a game built with seed and randomizer.
func NewRecorder(seed int64, randomizer string) *Recorder {
	return &Recorder{script: Script{Seed: seed, Randomizer: randomizer}}
}

// Record appends cmd. A nil recorder ignores it.
func (r *Recorder) Record(cmd tetris.Command) {
	if r == nil {
		return
	}
	r.script.Commands = append(r.script.Commands, cmd)
}

// SetConfig stores the game configuration the recorded engine was built from,
// so the script replays on the same board and pieces.
func (r *Recorder) SetConfig(cfg config.TetrisConfig) {
	if r == nil {
		return
	}
	r.script.Config = &cfg
}

// Script returns a copy of the recording so far.
func (r *Recorder) Script() Script {
	s := r.script
	s.Commands = append([]tetris.Command(nil), r.script.Commands...)
	return s
}

// Save writes the recording as YAML.
func (r *Recorder) Save(path string) error {
	data, err := Marshal(r.Script())
	if err != nil {
		return fmt.Errorf("replay: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("replay: write %s: %w", path, err)
	}
	return nil
}
