package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScene(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScene(t *testing.T) {
	path := writeScene(t, `
name: "test plain"
spawns:
  - type: base
    x: 0
    z: 0
    team: 1
  - type: bot_wheeled
    x: 10
    z: 5
    angle: 1.5
    team: 1
    power: 0.8
    count: 3
`)

	scene, err := LoadScene(path)
	require.NoError(t, err)

	assert.Equal(t, "test plain", scene.Name)
	require.Len(t, scene.Spawns, 2)

	bot := scene.Spawns[1]
	assert.Equal(t, "bot_wheeled", bot.Type)
	assert.InDelta(t, 10, bot.X, 1e-6)
	assert.InDelta(t, 1.5, bot.Angle, 1e-6)
	assert.InDelta(t, 0.8, bot.Power, 1e-6)
	assert.Equal(t, 3, bot.Count)
}

func TestLoadSceneMissingFile(t *testing.T) {
	scene, err := LoadScene(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Nil(t, scene)
	assert.Error(t, err)
}

func TestLoadSceneMalformed(t *testing.T) {
	path := writeScene(t, "spawns: [what")
	scene, err := LoadScene(path)
	assert.Nil(t, scene)
	assert.Error(t, err)
}

func TestSceneCount(t *testing.T) {
	scene := &Scene{Spawns: []SpawnEntry{
		{Type: "base"},              // count 0 means 1
		{Type: "titanium", Count: 3},
		{Type: "barrier1", Count: 1},
	}}
	assert.Equal(t, 5, scene.Count())

	empty := &Scene{}
	assert.Equal(t, 0, empty.Count())
}
