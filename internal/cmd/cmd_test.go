package cmd

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dallionking/aistudio-primer/internal/config"
	"github.com/Dallionking/aistudio-primer/internal/gemini"
	"github.com/Dallionking/aistudio-primer/internal/playground"
	"github.com/Dallionking/aistudio-primer/internal/tutorial"
)

func TestSelectStep(t *testing.T) {
	nav, err := tutorial.NewNavigator(tutorial.DefaultSteps())
	require.NoError(t, err)

	require.NoError(t, selectStep(nav, "3"))
	assert.Equal(t, "interface", nav.Current().ID)

	require.NoError(t, selectStep(nav, "apikey"))
	assert.Equal(t, 1, nav.Index())

	err = selectStep(nav, "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "between 1 and 4")

	err = selectStep(nav, "nope")
	assert.ErrorIs(t, err, tutorial.ErrUnknownStep)
	assert.Equal(t, 1, nav.Index(), "failed selection keeps the current step")
}

func TestSelectModel(t *testing.T) {
	configured := func() (playground.Model, error) { return playground.ModelAdvanced, nil }

	m, err := selectModel(configured, "")
	require.NoError(t, err)
	assert.Equal(t, playground.ModelAdvanced, m)

	m, err = selectModel(configured, "fast")
	require.NoError(t, err)
	assert.Equal(t, playground.ModelFast, m)

	_, err = selectModel(configured, "turbo")
	assert.Error(t, err)

	broken := func() (playground.Model, error) { return playground.ModelFast, errors.New("bad") }
	_, err = selectModel(broken, "")
	assert.Error(t, err)
}

func TestModelID(t *testing.T) {
	assert.Equal(t, "f", modelID("f", "a", playground.ModelFast))
	assert.Equal(t, "a", modelID("f", "a", playground.ModelAdvanced))
}

func TestModelsLine(t *testing.T) {
	cfg := &config.Config{Models: config.ModelsConfig{Fast: "my-fast", Advanced: "my-pro"}}
	assert.Equal(t, "my-fast, my-pro", modelsLine(cfg))

	cfg.Models.Advanced = ""
	assert.Equal(t, "my-fast, "+gemini.DefaultAdvancedModel, modelsLine(cfg))

	assert.Contains(t, modelsLine(nil), "(defaults)")
	assert.Contains(t, modelsLine(nil), gemini.DefaultFastModel)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel(" warn "))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
}

func TestNewLogger_TUIWritesToFile(t *testing.T) {
	path := t.TempDir() + "/primer.log"
	cfg := &config.Config{Log: config.LogConfig{Level: "debug", File: path}}

	logger, closeLog, err := newLogger(cfg, true)
	require.NoError(t, err)
	logger.Debug("hello", "k", "v")
	closeLog()

	assert.FileExists(t, path)
}

func TestStepsCommand(t *testing.T) {
	var out bytes.Buffer
	stepsCmd.SetOut(&out)
	t.Cleanup(func() { stepsCmd.SetOut(nil) })

	require.NoError(t, stepsCmd.RunE(stepsCmd, nil))
	for _, s := range tutorial.DefaultSteps() {
		assert.Contains(t, out.String(), s.ID)
		assert.Contains(t, out.String(), s.Title)
	}
}

func TestStepsShowCommand(t *testing.T) {
	var out bytes.Buffer
	stepsShowCmd.SetOut(&out)
	t.Cleanup(func() { stepsShowCmd.SetOut(nil) })

	require.NoError(t, stepsShowCmd.RunE(stepsShowCmd, []string{"2"}))
	assert.Contains(t, out.String(), "步骤 2/4")
	assert.Contains(t, out.String(), "steps show 3")

	assert.Error(t, stepsShowCmd.RunE(stepsShowCmd, []string{"9"}))
}
