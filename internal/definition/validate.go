package definition

import (
	"fmt"
	"strings"
	"unicode"
)

// ValidationError lists every problem found in a configuration.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid game configuration (%d problems): %s",
		len(e.Problems), strings.Join(e.Problems, "; "))
}

// ValidateID rejects IDs that are empty, contain whitespace, or could escape
// the asset directory.
func ValidateID(id string) error {
	switch {
	case id == "":
		return fmt.Errorf("empty id")
	case strings.ContainsFunc(id, unicode.IsSpace):
		return fmt.Errorf("id %q contains whitespace", id)
	case strings.Contains(id, "..") || strings.ContainsAny(id, `/\`):
		return fmt.Errorf("id %q contains path characters", id)
	}
	return nil
}

// Validate checks the configuration's references against its own ID lists.
// It returns a *ValidationError, or nil.
func Validate(cfg *GameConfig) error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	weapons := checkIDs("weapon_ids", cfg.WeaponIDs, add)
	checkIDs("enemy_ids", cfg.EnemyIDs, add)

	for i, iw := range cfg.InitialWeapons {
		if !weapons[iw.WeaponID] {
			add("initial_weapons[%d]: unknown weapon %q", i, iw.WeaponID)
		}
		if iw.Level == 0 {
			add("initial_weapons[%d]: level must be at least 1", i)
		}
	}
	for i, p := range cfg.PowerupPool {
		if p.IsWeapon() && !weapons[p.WeaponID] {
			add("powerup_pool[%d]: unknown weapon %q", i, p.WeaponID)
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

func checkIDs(field string, ids []string, add func(string, ...any)) map[string]bool {
	seen := make(map[string]bool, len(ids))
	for i, id := range ids {
		if err := ValidateID(id); err != nil {
			add("%s[%d]: %v", field, i, err)
			continue
		}
		if seen[id] {
			add("%s[%d]: duplicate id %q", field, i, id)
		}
		seen[id] = true
	}
	return seen
}
