// Package recorder persists live solving sessions to storage.
package recorder

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// AppState represents the persistent application state.
type AppState struct {
	ActiveSessionID string `json:"active_session_id,omitempty"`
	CubeState       string `json:"cube_state,omitempty"`
	HighestPhase    string `json:"highest_phase,omitempty"`
}

// StateFile manages the application state file.
type StateFile struct {
	path  string
	state AppState
}

// DefaultStatePath returns the default state file path.
func DefaultStatePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	dir := filepath.Join(home, ".pocketcube")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(dir, "state.json"), nil
}

// NewStateFile creates a new state file manager.
func NewStateFile(path string) (*StateFile, error) {
	sf := &StateFile{path: path}

	// Try to load existing state
	if err := sf.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return sf, nil
}

// NewDefaultStateFile creates a state file manager with the default path.
func NewDefaultStateFile() (*StateFile, error) {
	path, err := DefaultStatePath()
	if err != nil {
		return nil, err
	}
	return NewStateFile(path)
}

// Load loads the state from disk.
func (sf *StateFile) Load() error {
	data, err := os.ReadFile(sf.path)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, &sf.state)
}

// Save saves the state to disk.
func (sf *StateFile) Save() error {
	data, err := json.MarshalIndent(sf.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := os.WriteFile(sf.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}

	return nil
}

// Path returns the state file path.
func (sf *StateFile) Path() string {
	return sf.path
}

// SetActiveSession sets the active session ID.
func (sf *StateFile) SetActiveSession(sessionID string) error {
	sf.state.ActiveSessionID = sessionID
	return sf.Save()
}

// ClearActiveSession clears the active session along with its cube state.
func (sf *StateFile) ClearActiveSession() error {
	sf.state.ActiveSessionID = ""
	sf.state.CubeState = ""
	sf.state.HighestPhase = ""
	return sf.Save()
}

// HasActiveSession returns true if there is an active session.
func (sf *StateFile) HasActiveSession() bool {
	return sf.state.ActiveSessionID != ""
}

// ActiveSessionID returns the active session ID.
func (sf *StateFile) ActiveSessionID() string {
	return sf.state.ActiveSessionID
}

// SetCubeState stores the compact facelet string of the working cube.
func (sf *StateFile) SetCubeState(compact string) error {
	sf.state.CubeState = compact
	return sf.Save()
}

// CubeState returns the stored compact facelet string, if any.
func (sf *StateFile) CubeState() string {
	return sf.state.CubeState
}

// SetHighestPhase stores the highest phase reached so far.
func (sf *StateFile) SetHighestPhase(phaseKey string) error {
	sf.state.HighestPhase = phaseKey
	return sf.Save()
}

// HighestPhase returns the stored highest phase key, if any.
func (sf *StateFile) HighestPhase() string {
	return sf.state.HighestPhase
}
