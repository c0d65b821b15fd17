// Package definition holds the decoded weapon, enemy and game configuration
// records and the registries that resolve them by ID.
package definition

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"survivors/internal/assetstore"
	"survivors/internal/behavior"
)

// Asset path layout relative to the data root.
const (
	ConfigPath   = "game.config.yaml"
	weaponSuffix = ".weapon.yaml"
	enemySuffix  = ".enemy.yaml"
)

// WeaponPath returns the asset path of a weapon definition.
func WeaponPath(id string) string { return "weapons/" + id + weaponSuffix }

// EnemyPath returns the asset path of an enemy definition.
func EnemyPath(id string) string { return "enemies/" + id + enemySuffix }

// Visual is how an instance is drawn.
type Visual struct {
	Size  behavior.Size  `yaml:"size"`
	Color behavior.Color `yaml:"color"`
	Glyph string         `yaml:"glyph"`
}

type Weapon struct {
	Name        string               `yaml:"name"`
	Description string               `yaml:"description"`
	Visual      Visual               `yaml:"visual"`
	Behaviors   behavior.List        `yaml:"behaviors"`
	Upgrades    behavior.UpgradeList `yaml:"upgrade_behaviors"`
}

type Enemy struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Visual      Visual        `yaml:"visual"`
	Health      float64       `yaml:"health"`
	XPValue     uint32        `yaml:"xp_value"`
	Flying      bool          `yaml:"flying"`
	Behaviors   behavior.List `yaml:"behaviors"`
}

// InitialWeapon is granted to the player at start.
type InitialWeapon struct {
	WeaponID string `yaml:"weapon_id"`
	Level    uint32 `yaml:"level"`
}

type GameConfig struct {
	WeaponIDs      []string        `yaml:"weapon_ids"`
	EnemyIDs       []string        `yaml:"enemy_ids"`
	PowerupPool    []Powerup       `yaml:"powerup_pool"`
	InitialWeapons []InitialWeapon `yaml:"initial_weapons"`
}

// RegisterLoaders installs decoders for every definition file kind.
func RegisterLoaders(s *assetstore.Store) {
	s.Register(ConfigPath, decode[GameConfig])
	s.Register(weaponSuffix, decode[Weapon])
	s.Register(enemySuffix, decode[Enemy])
}

func decode[T any](data []byte) (any, error) {
	v := new(T)
	if err := yaml.Unmarshal(data, v); err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}
	return v, nil
}
