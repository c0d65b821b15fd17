// Package behavior holds the closed vocabulary of gameplay behaviors and
// upgrade rules that weapon and enemy definitions are written in.
//
// Lists are written externally tagged, one variant per item:
//
//	behaviors:
//	  - Orbiting: {radius: 80, speed: 3}
//	  - FollowPlayer
package behavior

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"survivors/internal/vec"
)

// Definition is one decoded behavior entry. Values are immutable once decoded.
type Definition interface {
	Name() string
}

// Orbiting circles the entity around its anchor at Radius, Speed radians per second.
type Orbiting struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
}

// DamageOnContact hurts eligible targets the entity overlaps.
type DamageOnContact struct {
	Damage     float64      `yaml:"damage"`
	DamageType DamageType   `yaml:"damage_type"`
	Targets    TargetFilter `yaml:"targets"`
}

// ProjectileSpawner fires projectiles each time its cooldown elapses.
type ProjectileSpawner struct {
	Cooldown        float64    `yaml:"cooldown"`
	Damage          float64    `yaml:"damage"`
	Speed           float64    `yaml:"speed"`
	Lifetime        float64    `yaml:"lifetime"`
	ProjectileSize  Size       `yaml:"projectile_size"`
	ProjectileColor Color      `yaml:"projectile_color"`
	SpawnLogic      SpawnLogic `yaml:"spawn_logic"`
	FireRange       *float64   `yaml:"fire_range"` // nil is unlimited
	EnergyCost      float64    `yaml:"energy_cost"`
}

// MeleeAttack swings a hitbox at the nearest enemy within DetectionRange.
type MeleeAttack struct {
	Cooldown       float64 `yaml:"cooldown"`
	DetectionRange float64 `yaml:"detection_range"`
	Damage         float64 `yaml:"damage"`
	StunDuration   float64 `yaml:"stun_duration"`
	KnockbackForce float64 `yaml:"knockback_force"`
	AttackDuration float64 `yaml:"attack_duration"`
	HitboxSize     Size    `yaml:"hitbox_size"`
	HitboxColor    Color   `yaml:"hitbox_color"`
	EnergyCost     float64 `yaml:"energy_cost"`
}

// FollowPlayer anchors the entity to the player.
type FollowPlayer struct{}

// SeekTarget moves straight toward the resolved target.
type SeekTarget struct {
	Target TargetType `yaml:"target_type"`
	Speed  float64    `yaml:"speed"`
}

// ZigZagMovement approaches the player while weaving sideways.
type ZigZagMovement struct {
	BaseSpeed            float64 `yaml:"base_speed"`
	OscillationSpeed     float64 `yaml:"oscillation_speed"`
	OscillationAmplitude float64 `yaml:"oscillation_amplitude"`
}

// MaintainDistance holds the entity at PreferredDistance from its target.
type MaintainDistance struct {
	Target            TargetType `yaml:"target_type"`
	PreferredDistance float64    `yaml:"preferred_distance"`
	Speed             float64    `yaml:"speed"`
}

// ExplodeOnProximity damages the first eligible target within TriggerRange
// and removes the entity.
type ExplodeOnProximity struct {
	TriggerRange float64      `yaml:"trigger_range"`
	Damage       float64      `yaml:"damage"`
	Targets      TargetFilter `yaml:"targets"`
}

func (Orbiting) Name() string           { return "Orbiting" }
func (DamageOnContact) Name() string    { return "DamageOnContact" }
func (ProjectileSpawner) Name() string  { return "ProjectileSpawner" }
func (MeleeAttack) Name() string        { return "MeleeAttack" }
func (FollowPlayer) Name() string       { return "FollowPlayer" }
func (SeekTarget) Name() string         { return "SeekTarget" }
func (ZigZagMovement) Name() string     { return "ZigZagMovement" }
func (MaintainDistance) Name() string   { return "MaintainDistance" }
func (ExplodeOnProximity) Name() string { return "ExplodeOnProximity" }

// List is an ordered list of behavior definitions.
type List []Definition

// UnmarshalYAML decodes a sequence of externally tagged behaviors.
func (l *List) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: behaviors must be a list", n.Line)
	}
	out := make(List, 0, len(n.Content))
	for _, item := range n.Content {
		name, body, err := variant(item)
		if err != nil {
			return err
		}
		d, err := decodeBehavior(name, body)
		if err != nil {
			return fmt.Errorf("line %d: %s: %w", item.Line, name, err)
		}
		out = append(out, d)
	}
	*l = out
	return nil
}

func decodeBehavior(name string, body *yaml.Node) (Definition, error) {
	switch name {
	case "Orbiting":
		return decodeBody[Orbiting](body)
	case "DamageOnContact":
		return decodeBody[DamageOnContact](body)
	case "ProjectileSpawner":
		return decodeBody[ProjectileSpawner](body)
	case "MeleeAttack":
		return decodeBody[MeleeAttack](body)
	case "FollowPlayer":
		return FollowPlayer{}, nil
	case "SeekTarget":
		return decodeBody[SeekTarget](body)
	case "ZigZagMovement":
		return decodeBody[ZigZagMovement](body)
	case "MaintainDistance":
		return decodeBody[MaintainDistance](body)
	case "ExplodeOnProximity":
		return decodeBody[ExplodeOnProximity](body)
	}
	return nil, fmt.Errorf("unknown behavior")
}

// decodeBody decodes a variant's parameter mapping. Variants with fields
// must be written with a body.
func decodeBody[T any](body *yaml.Node) (T, error) {
	var v T
	if body == nil {
		return v, fmt.Errorf("missing parameters")
	}
	if err := body.Decode(&v); err != nil {
		return v, err
	}
	return v, nil
}

// variant splits an externally tagged union node into its tag and body.
// A bare scalar is a variant without parameters and yields a nil body.
func variant(n *yaml.Node) (string, *yaml.Node, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return n.Value, nil, nil
	case yaml.MappingNode:
		if len(n.Content) != 2 {
			return "", nil, fmt.Errorf("line %d: expected exactly one variant key, got %d", n.Line, len(n.Content)/2)
		}
		return n.Content[0].Value, n.Content[1], nil
	}
	return "", nil, fmt.Errorf("line %d: expected a variant name or single-key mapping", n.Line)
}

// Seconds converts a definition's float seconds into a Duration.
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// Vec returns the size as a vector.
func (s Size) Vec() vec.Vec2 {
	return vec.Vec2{X: s.W, Y: s.H}
}
