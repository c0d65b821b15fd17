package behavior

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DamageType selects how contact damage is applied.
type DamageType uint8

const (
	// Continuous damage is applied per second of overlap.
	Continuous DamageType = iota
	// OneTime damage is applied once, then the source despawns.
	OneTime
)

func (d DamageType) String() string {
	if d == OneTime {
		return "OneTime"
	}
	return "Continuous"
}

func (d *DamageType) UnmarshalYAML(n *yaml.Node) error {
	switch n.Value {
	case "Continuous":
		*d = Continuous
	case "OneTime":
		*d = OneTime
	default:
		return fmt.Errorf("line %d: unknown damage type %q", n.Line, n.Value)
	}
	return nil
}

// TargetFilter selects which faction an effect applies to.
type TargetFilter uint8

const (
	Enemies TargetFilter = iota
	Player
	All
)

func (f TargetFilter) String() string {
	switch f {
	case Player:
		return "Player"
	case All:
		return "All"
	}
	return "Enemies"
}

// Matches reports whether an entity with the given faction tags is eligible.
func (f TargetFilter) Matches(isPlayer, isEnemy bool) bool {
	switch f {
	case Enemies:
		return isEnemy
	case Player:
		return isPlayer
	}
	return isPlayer || isEnemy
}

// Opposite returns the filter a weapon owned by the given faction aims at.
func Opposite(ownedByEnemy bool) TargetFilter {
	if ownedByEnemy {
		return Player
	}
	return Enemies
}

func (f *TargetFilter) UnmarshalYAML(n *yaml.Node) error {
	switch n.Value {
	case "Enemies":
		*f = Enemies
	case "Player":
		*f = Player
	case "All":
		*f = All
	default:
		return fmt.Errorf("line %d: unknown target filter %q", n.Line, n.Value)
	}
	return nil
}

// TargetType selects what a movement behavior steers toward.
type TargetType uint8

const (
	TargetPlayer TargetType = iota
	TargetNearestEnemy
)

func (t TargetType) String() string {
	if t == TargetNearestEnemy {
		return "NearestEnemy"
	}
	return "Player"
}

func (t *TargetType) UnmarshalYAML(n *yaml.Node) error {
	switch n.Value {
	case "Player":
		*t = TargetPlayer
	case "NearestEnemy":
		*t = TargetNearestEnemy
	default:
		return fmt.Errorf("line %d: unknown target type %q", n.Line, n.Value)
	}
	return nil
}

// SpawnMode picks how a projectile spawner aims.
type SpawnMode uint8

const (
	NearestEnemy SpawnMode = iota
	// PlayerDirection always fires along +X; the player's facing is not tracked.
	PlayerDirection
	Fixed
)

// SpawnLogic is written as a bare name or as {Fixed: [dx, dy]}.
type SpawnLogic struct {
	Mode   SpawnMode
	DX, DY float64
}

func (s SpawnLogic) String() string {
	switch s.Mode {
	case PlayerDirection:
		return "PlayerDirection"
	case Fixed:
		return fmt.Sprintf("Fixed(%g, %g)", s.DX, s.DY)
	}
	return "NearestEnemy"
}

func (s *SpawnLogic) UnmarshalYAML(n *yaml.Node) error {
	name, body, err := variant(n)
	if err != nil {
		return err
	}
	switch name {
	case "NearestEnemy":
		*s = SpawnLogic{Mode: NearestEnemy}
	case "PlayerDirection":
		*s = SpawnLogic{Mode: PlayerDirection}
	case "Fixed":
		var xs []float64
		if body == nil {
			return fmt.Errorf("line %d: Fixed needs [dx, dy]", n.Line)
		}
		if err := body.Decode(&xs); err != nil {
			return fmt.Errorf("line %d: Fixed: %w", n.Line, err)
		}
		if len(xs) != 2 {
			return fmt.Errorf("line %d: Fixed needs 2 values, got %d", n.Line, len(xs))
		}
		*s = SpawnLogic{Mode: Fixed, DX: xs[0], DY: xs[1]}
	default:
		return fmt.Errorf("line %d: unknown spawn logic %q", n.Line, name)
	}
	return nil
}

// Size is a width/height pair written as [w, h].
type Size struct {
	W, H float64
}

func (s *Size) UnmarshalYAML(n *yaml.Node) error {
	xs, err := floats(n, 2)
	if err != nil {
		return err
	}
	s.W, s.H = xs[0], xs[1]
	return nil
}

// Color is an RGB triple in [0, 1] written as [r, g, b].
type Color struct {
	R, G, B float64
}

func (c *Color) UnmarshalYAML(n *yaml.Node) error {
	xs, err := floats(n, 3)
	if err != nil {
		return err
	}
	c.R, c.G, c.B = xs[0], xs[1], xs[2]
	return nil
}

func floats(n *yaml.Node, want int) ([]float64, error) {
	var xs []float64
	if err := n.Decode(&xs); err != nil {
		return nil, err
	}
	if len(xs) != want {
		return nil, fmt.Errorf("line %d: expected %d numbers, got %d", n.Line, want, len(xs))
	}
	return xs, nil
}
