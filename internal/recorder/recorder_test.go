package recorder

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/pocketcube"
	"github.com/SeamusWaldron/pocketcube/internal/storage"
)

func newTestRecorder(t *testing.T) (*Recorder, *storage.DB, *StateFile) {
	t.Helper()

	dir := t.TempDir()
	db, err := storage.Open(filepath.Join(dir, "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.MigrateUp())

	sf, err := NewStateFile(filepath.Join(dir, "state.json"))
	require.NoError(t, err)

	return New(db, sf), db, sf
}

func TestRecorderLifecycle(t *testing.T) {
	rec, _, sf := newTestRecorder(t)

	assert.Equal(t, StatusIdle, rec.Status())
	assert.False(t, sf.HasActiveSession())

	id, err := rec.Start("R U R' U'", "", "0.1.0")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	assert.Equal(t, StatusRecording, rec.Status())
	assert.Equal(t, id, rec.SessionID())
	assert.Equal(t, id, sf.ActiveSessionID())

	require.NoError(t, rec.End(pocketcube.NewCube().Compact(), true))
	assert.Equal(t, StatusEnded, rec.Status())
	assert.False(t, sf.HasActiveSession())
}

func TestRecorderRejectsDoubleStart(t *testing.T) {
	rec, _, _ := newTestRecorder(t)

	_, err := rec.Start("", "", "")
	require.NoError(t, err)

	_, err = rec.Start("", "", "")
	assert.Error(t, err)
}

func TestRecorderEndWithoutStart(t *testing.T) {
	rec, _, _ := newTestRecorder(t)
	assert.Error(t, rec.End("", false))
}

func TestRecordMoveAssignsIndexes(t *testing.T) {
	rec, db, _ := newTestRecorder(t)

	id, err := rec.Start("", "", "")
	require.NoError(t, err)

	require.NoError(t, rec.RecordMove(pocketcube.R))
	require.NoError(t, rec.RecordMove(pocketcube.U))
	require.NoError(t, rec.RecordMove(pocketcube.RPrime))
	assert.Equal(t, 3, rec.MoveCount())

	records, err := storage.NewMoveRepository(db).GetBySession(id)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, 0, records[0].MoveIndex)
	assert.Equal(t, "R", records[0].Notation)
	assert.Equal(t, 2, records[2].MoveIndex)
	assert.Equal(t, "R'", records[2].Notation)
}

func TestRecordMoveIgnoredWhenIdle(t *testing.T) {
	rec, _, _ := newTestRecorder(t)

	require.NoError(t, rec.RecordMove(pocketcube.R))
	assert.Equal(t, 0, rec.MoveCount())
}

func TestAttachPersistsSessionActivity(t *testing.T) {
	rec, db, _ := newTestRecorder(t)

	id, err := rec.Start("", "", "")
	require.NoError(t, err)

	session := pocketcube.NewSession()
	rec.Attach(session)

	// R then R' walks the cube out to oriented and back to solved.
	session.Apply(pocketcube.R, pocketcube.RPrime)

	records, err := storage.NewMoveRepository(db).GetBySession(id)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	events, err := storage.NewPhaseRepository(db).GetBySession(id)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "oriented", events[0].PhaseKey)
	assert.Equal(t, "solved", events[1].PhaseKey)
}

func TestRecorderResume(t *testing.T) {
	rec, db, _ := newTestRecorder(t)

	id, err := rec.Start("", "", "")
	require.NoError(t, err)
	require.NoError(t, rec.RecordMove(pocketcube.R))
	require.NoError(t, rec.RecordMove(pocketcube.U))

	// Simulate a fresh process with a new recorder on the same database.
	sf, err := NewStateFile(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)
	fresh := New(db, sf)

	require.NoError(t, fresh.Resume(id))
	assert.Equal(t, StatusRecording, fresh.Status())
	assert.Equal(t, 2, fresh.MoveCount())

	require.NoError(t, fresh.RecordMove(pocketcube.UPrime))

	records, err := storage.NewMoveRepository(db).GetBySession(id)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, 2, records[2].MoveIndex)
}

func TestRecorderResumeRejectsEnded(t *testing.T) {
	rec, db, _ := newTestRecorder(t)

	id, err := rec.Start("", "", "")
	require.NoError(t, err)
	require.NoError(t, rec.End(pocketcube.NewCube().Compact(), true))

	fresh := New(db, nil)
	assert.Error(t, fresh.Resume(id))
	assert.Error(t, fresh.Resume("no-such-session"))
}

func TestStateFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	sf, err := NewStateFile(path)
	require.NoError(t, err)

	require.NoError(t, sf.SetActiveSession("abc"))
	require.NoError(t, sf.SetCubeState("WWWWYYYYRRRROOOOBBBBGGGG"))
	require.NoError(t, sf.SetHighestPhase("first_layer"))

	reloaded, err := NewStateFile(path)
	require.NoError(t, err)
	assert.Equal(t, "abc", reloaded.ActiveSessionID())
	assert.Equal(t, "WWWWYYYYRRRROOOOBBBBGGGG", reloaded.CubeState())
	assert.Equal(t, "first_layer", reloaded.HighestPhase())

	require.NoError(t, reloaded.ClearActiveSession())
	assert.False(t, reloaded.HasActiveSession())
	assert.Empty(t, reloaded.CubeState())
}
