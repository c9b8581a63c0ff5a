package preferences

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paul0314/fitts-experiment/internal/core/model"
)

func newTestWindow(t *testing.T, onSave func(model.Config) error) *Window {
	t.Helper()
	return New(test.NewTempApp(t), model.DefaultConfig(), onSave)
}

func TestNewSeedsEntries(t *testing.T) {
	prefs := newTestWindow(t, nil)

	assert.Equal(t, "450", prefs.distance.Text)
	assert.Equal(t, "100", prefs.width.Text)
	assert.Equal(t, "10", prefs.trials.Text)
	assert.Equal(t, model.DefaultConfig(), prefs.Config())
}

func TestSaveValidValues(t *testing.T) {
	var saved []model.Config
	prefs := newTestWindow(t, func(config model.Config) error {
		saved = append(saved, config)
		return nil
	})
	prefs.Show()

	prefs.width.SetText("")
	test.Type(prefs.width, "60")
	prefs.handleSave()

	require.Len(t, saved, 1)
	assert.Equal(t, model.Config{Distance: 450, Width: 60, Trials: 10}, saved[0])
	assert.Equal(t, saved[0], prefs.Config())
	assert.Empty(t, prefs.status.Text)
}

func TestSaveRejectsInvalidValues(t *testing.T) {
	called := false
	prefs := newTestWindow(t, func(model.Config) error {
		called = true
		return nil
	})

	prefs.trials.SetText("abc")
	prefs.handleSave()

	assert.False(t, called)
	assert.Contains(t, prefs.status.Text, model.ErrInvalidTrials.Error())
	assert.Equal(t, model.DefaultConfig(), prefs.Config())
}

func TestSaveErrorIsShown(t *testing.T) {
	prefs := newTestWindow(t, func(model.Config) error {
		return errors.New("write settings file: denied")
	})

	prefs.handleSave()

	assert.Equal(t, "write settings file: denied", prefs.status.Text)
}

func TestUpdateConfigClearsStatus(t *testing.T) {
	prefs := newTestWindow(t, nil)
	prefs.status.SetText("stale")

	prefs.UpdateConfig(model.Config{Distance: 1, Width: 2, Trials: 3})

	assert.Equal(t, "1", prefs.distance.Text)
	assert.Equal(t, "2", prefs.width.Text)
	assert.Equal(t, "3", prefs.trials.Text)
	assert.Empty(t, prefs.status.Text)
}
