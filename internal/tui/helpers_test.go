package tui

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/ocluk/caolan/internal/app"
	"github.com/ocluk/caolan/internal/config"
	"github.com/ocluk/caolan/internal/models"
	"github.com/ocluk/caolan/internal/store"
	"github.com/ocluk/caolan/internal/testutil"
)

// setupTestModel creates a sized model on a fresh store seeded with names
func setupTestModel(t *testing.T, names ...string) (Model, *store.RecordStore) {
	t.Helper()

	s, application := testutil.SetupTestApp(t)
	for _, name := range names {
		testutil.CreateTestDetail(t, s, name, name+" Street", "1 Jan 2000", "555-"+name)
	}

	m := InitialModel(context.Background(), application, config.Default())
	m = sendMsg(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, s
}

// sendMsg updates the model with a message and returns the updated model
func sendMsg(m Model, msg tea.Msg) Model {
	updated, _ := m.Update(msg)
	return updated.(Model)
}

// pressKey sends a printable key press
func pressKey(m Model, r rune) Model {
	return sendMsg(m, tea.KeyPressMsg(tea.Key{Text: string(r), Code: r}))
}

// pressSpecial sends a non-printable key press like esc or enter
func pressSpecial(m Model, code rune) Model {
	return sendMsg(m, tea.KeyPressMsg(tea.Key{Code: code}))
}

// pressCtrl sends ctrl+<r>
func pressCtrl(m Model, r rune) Model {
	return sendMsg(m, tea.KeyPressMsg(tea.Key{Code: r, Mod: tea.ModCtrl}))
}

var errBroken = errors.New("disk on fire")

// brokenRecords fails every call, standing in for an unusable store
type brokenRecords struct{}

func (brokenRecords) Create(context.Context, string, string, string, string) (int64, error) {
	return store.InvalidID, errBroken
}

func (brokenRecords) FetchAll(context.Context) ([]*models.Detail, error) {
	return nil, errBroken
}

func (brokenRecords) FetchOne(context.Context, int64) (*models.Detail, error) {
	return nil, errBroken
}

func (brokenRecords) Update(context.Context, int64, string, string, string, string) (bool, error) {
	return false, errBroken
}

func (brokenRecords) Delete(context.Context, int64) (bool, error) {
	return false, errBroken
}

var _ app.Records = brokenRecords{}
