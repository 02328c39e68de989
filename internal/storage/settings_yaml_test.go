package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"timetracker/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	dir string
	err error
}

func (service fakeService) GetConfigDir() (string, error) {
	return service.dir, service.err
}

func TestLoadSettingsMissingFile(t *testing.T) {
	config, err := LoadSettings(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, model.DefaultPomodoroConfig(), config)
}

func TestSaveThenLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "TimeTracker")
	want := model.PomodoroConfig{Work: 25 * time.Minute, Relax: 5 * time.Minute}

	require.NoError(t, SaveSettings(dir, want))

	raw, err := os.ReadFile(filepath.Join(dir, settingsFileName))
	require.NoError(t, err)
	assert.Equal(t, "work_seconds: 1500\nrelax_seconds: 300\n", string(raw))

	got, err := LoadSettings(dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadSettingsKeepsDefaultsForBadFields(t *testing.T) {
	tests := []struct {
		name string
		body string
		want model.PomodoroConfig
	}{
		{
			name: "only work set",
			body: "work_seconds: 42\n",
			want: model.PomodoroConfig{Work: 42 * time.Second, Relax: 5 * time.Second},
		},
		{
			name: "non-positive values",
			body: "work_seconds: 0\nrelax_seconds: -5\n",
			want: model.DefaultPomodoroConfig(),
		},
		{
			name: "unknown keys ignored",
			body: "relax_seconds: 60\ntheme: dark\n",
			want: model.PomodoroConfig{Work: 10 * time.Second, Relax: time.Minute},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, settingsFileName), []byte(tt.body), 0o644))

			got, err := LoadSettings(dir)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadSettingsParseError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, settingsFileName), []byte("work_seconds: [oops"), 0o644))

	config, err := LoadSettings(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse settings yaml")
	assert.Equal(t, model.DefaultPomodoroConfig(), config)
}

func TestSaveSettingsRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	err := SaveSettings(dir, model.PomodoroConfig{Work: 0, Relax: time.Second})
	require.ErrorIs(t, err, model.ErrInvalidDuration)

	_, statErr := os.Stat(filepath.Join(dir, settingsFileName))
	assert.True(t, errors.Is(statErr, os.ErrNotExist))
}

func TestSettingsDir(t *testing.T) {
	dir, err := SettingsDir(fakeService{dir: "/cfg"}, "TimeTracker")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/cfg", "TimeTracker"), dir)

	boom := errors.New("boom")
	_, err = SettingsDir(fakeService{err: boom}, "TimeTracker")
	require.ErrorIs(t, err, boom)
}

type recordingApplier struct {
	applied []model.PomodoroConfig
	err     error
}

func (applier *recordingApplier) UpdateConfig(config model.PomodoroConfig) error {
	applier.applied = append(applier.applied, config)
	return applier.err
}

func TestPersistSettings(t *testing.T) {
	updated := model.PomodoroConfig{Work: 20 * time.Second, Relax: 5 * time.Second}

	t.Run("writes then applies", func(t *testing.T) {
		dir := t.TempDir()
		applier := &recordingApplier{}

		require.NoError(t, PersistSettings(dir, updated, applier))
		assert.Equal(t, []model.PomodoroConfig{updated}, applier.applied)

		loaded, err := LoadSettings(dir)
		require.NoError(t, err)
		assert.Equal(t, updated, loaded)
	})

	t.Run("failed write applies nothing", func(t *testing.T) {
		blocker := filepath.Join(t.TempDir(), "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("file"), 0o644))
		applier := &recordingApplier{}

		err := PersistSettings(filepath.Join(blocker, "TimeTracker"), updated, applier)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "create config directory")
		assert.Empty(t, applier.applied)
	})

	t.Run("invalid durations", func(t *testing.T) {
		applier := &recordingApplier{}
		err := PersistSettings(t.TempDir(), model.PomodoroConfig{Work: time.Second}, applier)
		require.ErrorIs(t, err, model.ErrInvalidDuration)
		assert.Empty(t, applier.applied)
	})

	t.Run("no settings dir", func(t *testing.T) {
		applier := &recordingApplier{}
		require.NoError(t, PersistSettings("", updated, applier))
		assert.Equal(t, []model.PomodoroConfig{updated}, applier.applied)
	})

	t.Run("applier error is wrapped", func(t *testing.T) {
		boom := errors.New("boom")
		applier := &recordingApplier{err: boom}
		require.ErrorIs(t, PersistSettings(t.TempDir(), updated, applier), boom)
	})
}
