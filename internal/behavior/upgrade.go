package behavior

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Upgrade is one per-level rule attached to a weapon.
type Upgrade interface {
	Name() string
}

// ScaleDamage multiplies base damage by 1 + (level-1)*PerLevel.
type ScaleDamage struct {
	PerLevel float64 `yaml:"per_level"`
}

// ReduceCooldown multiplies base cooldown by max(MinMultiplier, 1 - (level-1)*PerLevel).
type ReduceCooldown struct {
	PerLevel      float64 `yaml:"per_level"`
	MinMultiplier float64 `yaml:"min_multiplier"`
}

// IncreaseEffect multiplies the base effect (melee stun) by 1 + (level-1)*PerLevel.
type IncreaseEffect struct {
	PerLevel float64 `yaml:"per_level"`
}

// SpawnAdditionalEntity adds one more instance of the weapon per level gained.
type SpawnAdditionalEntity struct{}

func (ScaleDamage) Name() string           { return "ScaleDamage" }
func (ReduceCooldown) Name() string        { return "ReduceCooldown" }
func (IncreaseEffect) Name() string        { return "IncreaseEffect" }
func (SpawnAdditionalEntity) Name() string { return "SpawnAdditionalEntity" }

// Scale returns base scaled linearly by level.
func (u ScaleDamage) Scale(base float64, level uint32) float64 {
	return linear(base, level, u.PerLevel)
}

// Scale returns base scaled linearly by level.
func (u IncreaseEffect) Scale(base float64, level uint32) float64 {
	return linear(base, level, u.PerLevel)
}

// Multiplier returns the cooldown multiplier for level, floored at MinMultiplier.
func (u ReduceCooldown) Multiplier(level uint32) float64 {
	return max(u.MinMultiplier, 1-float64(levelsGained(level))*u.PerLevel)
}

func linear(base float64, level uint32, perLevel float64) float64 {
	return base * (1 + float64(levelsGained(level))*perLevel)
}

func levelsGained(level uint32) uint32 {
	if level == 0 {
		return 0
	}
	return level - 1
}

// UpgradeList is an ordered list of upgrade rules, applied in order.
type UpgradeList []Upgrade

// Has reports whether the list contains an upgrade of the same kind as u.
func (l UpgradeList) Has(u Upgrade) bool {
	for _, x := range l {
		if x.Name() == u.Name() {
			return true
		}
	}
	return false
}

// UnmarshalYAML decodes a sequence of upgrade rules; SpawnAdditionalEntity
// may be written as a bare name.
func (l *UpgradeList) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: upgrade_behaviors must be a list", n.Line)
	}
	out := make(UpgradeList, 0, len(n.Content))
	for _, item := range n.Content {
		name, body, err := variant(item)
		if err != nil {
			return err
		}
		var u Upgrade
		switch name {
		case "ScaleDamage":
			u, err = decodeBody[ScaleDamage](body)
		case "ReduceCooldown":
			u, err = decodeBody[ReduceCooldown](body)
		case "IncreaseEffect":
			u, err = decodeBody[IncreaseEffect](body)
		case "SpawnAdditionalEntity":
			u = SpawnAdditionalEntity{}
		default:
			err = fmt.Errorf("unknown upgrade")
		}
		if err != nil {
			return fmt.Errorf("line %d: %s: %w", item.Line, name, err)
		}
		out = append(out, u)
	}
	*l = out
	return nil
}
