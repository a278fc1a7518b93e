package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neontanks/game"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0644))
	return dir
}

func TestLoad_DefaultValues(t *testing.T) {
	s, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", s.LogLevel)
	assert.True(t, s.Audio.Enabled)
	assert.False(t, s.Profiling.Enabled)
	assert.Equal(t, "./profiles", s.Profiling.Dir)
	assert.Equal(t, 100*time.Millisecond, s.Profiling.StallThreshold)
	assert.Equal(t, 2*time.Second, s.Profiling.CaptureFor)
	assert.Equal(t, game.DefaultConfig(), s.Game)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	dir := writeConfig(t, "neontanks.yaml", `
logLevel: debug
audio:
  enabled: false
game:
  width: 800
  height: 600
  seed: 1234
  spawn:
    enemy: 1500ms
  pickup:
    heal: 50
bullets:
  laser:
    speed: 30
  star:
    color: "#123456"
`)

	s, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", s.LogLevel)
	assert.False(t, s.Audio.Enabled)
	assert.Equal(t, 800.0, s.Game.Width)
	assert.Equal(t, 600.0, s.Game.Height)
	assert.Equal(t, int64(1234), s.Game.Seed)
	assert.Equal(t, 1500*time.Millisecond, s.Game.EnemySpawnInterval)
	assert.Equal(t, 8*time.Second, s.Game.BulletPackageSpawnInterval)
	assert.Equal(t, 50, s.Game.FirstAidHeal)

	laser := s.Game.Bullets[game.BulletLaser]
	assert.Equal(t, 30.0, laser.Speed)
	assert.Equal(t, 8.0, laser.Width, "unset fields keep their defaults")
	assert.Equal(t, game.ShapeLine, laser.Shape)
	assert.Equal(t, color.RGBA{0x12, 0x34, 0x56, 0xff}, s.Game.Bullets[game.BulletStar].Color)
}

func TestLoad_JSONFile(t *testing.T) {
	dir := writeConfig(t, "neontanks.json", `{"game": {"killScore": 250}, "profiling": {"enabled": true, "stallThreshold": "250ms"}}`)

	s, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 250, s.Game.KillScore)
	assert.True(t, s.Profiling.Enabled)
	assert.Equal(t, 250*time.Millisecond, s.Profiling.StallThreshold)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("NEONTANKS_GAME_SEED", "77")
	t.Setenv("NEONTANKS_LOGLEVEL", "warn")

	s, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, int64(77), s.Game.Seed)
	assert.Equal(t, "warn", s.LogLevel)
}

func TestLoad_UnknownBulletKind(t *testing.T) {
	dir := writeConfig(t, "neontanks.yaml", `
bullets:
  plasma:
    speed: 3
`)
	_, err := Load(dir)
	assert.ErrorIs(t, err, game.ErrUnknownBulletKind)
}

func TestLoad_BadColor(t *testing.T) {
	dir := writeConfig(t, "neontanks.yaml", `
bullets:
  heart:
    color: pink
`)
	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bullets.heart.color")
}

func TestLoad_InvalidGameConfig(t *testing.T) {
	dir := writeConfig(t, "neontanks.yaml", `
game:
  width: -5
`)
	_, err := Load(dir)
	assert.ErrorIs(t, err, game.ErrInvalidConfig)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := writeConfig(t, "neontanks.json", `{"game": `)

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestColorRoundTrip(t *testing.T) {
	c := color.RGBA{0xff, 0x69, 0xb4, 0xff}
	assert.Equal(t, "#ff69b4", HexColor(c))

	got, err := ParseColor(HexColor(c))
	require.NoError(t, err)
	assert.Equal(t, c, got)
}
