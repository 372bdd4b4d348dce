package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaths(t *testing.T) {
	p := NewPaths("/proj")
	assert.Equal(t, filepath.Join("/proj", "data", "raw"), p.RawData)
	assert.Equal(t, filepath.Join("/proj", "data", "interim"), p.InterimData)
	assert.Equal(t, filepath.Join("/proj", "models"), p.Models)

	assert.Equal(t, filepath.Join("/proj", "data", "raw", "adult.csv"), p.Raw("adult.csv"))
	assert.Equal(t, "/elsewhere/adult.csv", p.Raw("/elsewhere/adult.csv"))
	assert.Equal(t, filepath.Join("/proj", "models", "adult.json"), p.Model("adult.json"))
	assert.Equal(t, filepath.Join("/proj", "data", "interim", "x.csv"), p.Interim("x.csv"))
}

func TestDefaultPaths(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	p, err := DefaultPaths()
	require.NoError(t, err)
	assert.Equal(t, filepath.Dir(wd), p.Root)
}

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)
	assert.Equal(t, 5.0, cfg.Alpha)
	assert.Equal(t, 0.2, cfg.ValidFraction)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.NoError(t, ValidateConfig(cfg))
}

func TestEnsureDirs(t *testing.T) {
	p := NewPaths(t.TempDir())
	require.NoError(t, p.EnsureDirs())
	for _, dir := range []string{p.InterimData, p.Models} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layersize.yaml")
	content := `
paths:
  root: project
  models: artifacts
alpha: 2.5
target: income
exclude: [id]
rounding: ceil
seed: 7
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	root := filepath.Join(dir, "project")
	assert.Equal(t, root, cfg.Paths.Root)
	assert.Equal(t, filepath.Join(root, "data", "raw"), cfg.Paths.RawData)
	assert.Equal(t, filepath.Join(root, "artifacts"), cfg.Paths.Models)
	assert.Equal(t, 2.5, cfg.Alpha)
	assert.Equal(t, "income", cfg.Target)
	assert.Equal(t, []string{"id"}, cfg.Exclude)
	assert.Equal(t, "ceil", cfg.Rounding)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, 0.2, cfg.ValidFraction)
}

func TestLoadWithRoot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layersize.yaml")
	content := `
paths:
  root: ignored
  raw: /data/shared/raw
  models: artifacts
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	root := t.TempDir()
	cfg, err := LoadWithRoot(path, root)
	require.NoError(t, err)
	assert.Equal(t, root, cfg.Paths.Root)
	assert.Equal(t, "/data/shared/raw", cfg.Paths.RawData)
	assert.Equal(t, filepath.Join(root, "artifacts"), cfg.Paths.Models)
	assert.Equal(t, filepath.Join(root, "data", "interim"), cfg.Paths.InterimData)
}

func TestLoadDefaultsRootToFileDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layersize.yaml")
	require.NoError(t, os.WriteFile(path, []byte("target: y\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.Paths.Root)
	assert.Equal(t, 5.0, cfg.Alpha)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("alpha: [1"), 0644))
	_, err = Load(bad)
	assert.Error(t, err)

	zero := filepath.Join(dir, "zero.yaml")
	require.NoError(t, os.WriteFile(zero, []byte("alpha: 0\n"), 0644))
	_, err = Load(zero)
	assert.ErrorContains(t, err, "alpha must be positive")
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		return &Config{Paths: NewPaths("/proj"), Alpha: 5, ValidFraction: 0.2}
	}
	require.NoError(t, ValidateConfig(valid()))

	cfg := valid()
	cfg.Alpha = -1
	assert.Error(t, ValidateConfig(cfg))

	cfg = valid()
	cfg.ValidFraction = 1
	assert.Error(t, ValidateConfig(cfg))

	cfg = valid()
	cfg.Rounding = "banker"
	assert.Error(t, ValidateConfig(cfg))

	cfg = valid()
	cfg.Paths = Paths{}
	assert.Error(t, ValidateConfig(cfg))
}
