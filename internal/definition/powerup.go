package definition

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Stat is a player attribute a stat boost raises.
type Stat uint8

const (
	StatSpeed Stat = iota
	StatJumpForce
	StatMaxHealth
	StatEnergyRegen
)

var statNames = map[string]Stat{
	"Speed":       StatSpeed,
	"JumpForce":   StatJumpForce,
	"MaxHealth":   StatMaxHealth,
	"EnergyRegen": StatEnergyRegen,
}

func (s Stat) String() string {
	for name, v := range statNames {
		if v == s {
			return name
		}
	}
	return fmt.Sprintf("Stat(%d)", uint8(s))
}

func (s *Stat) UnmarshalYAML(n *yaml.Node) error {
	v, ok := statNames[n.Value]
	if !ok {
		return fmt.Errorf("line %d: unknown stat %q", n.Line, n.Value)
	}
	*s = v
	return nil
}

type StatBoost struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Stat        Stat    `yaml:"stat"`
	Value       float64 `yaml:"value"`
}

// Powerup is one entry of the level-up pool: either a weapon grant or a
// stat boost. Written as {weapon: id} or {stat_boost: {...}}.
type Powerup struct {
	WeaponID string
	Boost    *StatBoost
}

// IsWeapon reports whether the powerup grants a weapon.
func (p Powerup) IsWeapon() bool { return p.Boost == nil }

func (p *Powerup) UnmarshalYAML(n *yaml.Node) error {
	var raw struct {
		Weapon    string     `yaml:"weapon"`
		StatBoost *StatBoost `yaml:"stat_boost"`
	}
	if err := n.Decode(&raw); err != nil {
		return err
	}
	switch {
	case raw.Weapon != "" && raw.StatBoost != nil:
		return fmt.Errorf("line %d: powerup has both weapon and stat_boost", n.Line)
	case raw.StatBoost != nil:
		*p = Powerup{Boost: raw.StatBoost}
	case raw.Weapon != "":
		*p = Powerup{WeaponID: raw.Weapon}
	default:
		return fmt.Errorf("line %d: powerup needs weapon or stat_boost", n.Line)
	}
	return nil
}
