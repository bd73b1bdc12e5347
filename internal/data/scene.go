package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SpawnEntry describes one group of objects to create at scene start.
type SpawnEntry struct {
	Type  string  `yaml:"type"`
	X     float32 `yaml:"x"`
	Y     float32 `yaml:"y"`
	Z     float32 `yaml:"z"`
	Angle float32 `yaml:"angle"`
	Team  int     `yaml:"team"`
	Power float32 `yaml:"power"`
	Count int     `yaml:"count"` // 0 means 1
}

// Scene is a spawn list loaded from YAML.
type Scene struct {
	Name   string       `yaml:"name"`
	Spawns []SpawnEntry `yaml:"spawns"`
}

// LoadScene reads a scene file.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene %s: %w", path, err)
	}
	var scene Scene
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("parse scene %s: %w", path, err)
	}
	return &scene, nil
}

// Count returns the total number of objects the scene will spawn.
func (s *Scene) Count() int {
	total := 0
	for _, sp := range s.Spawns {
		n := sp.Count
		if n <= 0 {
			n = 1
		}
		total += n
	}
	return total
}
