// Package constant holds gameplay tunables.
package constant

import "time"

// Physics
const (
	Gravity            = -980.0
	GroundSnapDistance = 10.0
	TerminalVelocity   = -1200.0
)

// Player
const (
	PlayerSpeed        = 200.0
	PlayerJumpForce    = 400.0
	PlayerHealth       = 100.0
	PlayerWidth        = 40.0
	PlayerHeight       = 40.0
	PlayerSpawnX       = 0.0
	PlayerSpawnY       = -200.0
	PlayerAcceleration = 1000.0
	PlayerDeceleration = 800.0
	PlayerEnergy       = 100.0
	PlayerEnergyRegen  = 10.0
)

// Weapons
const (
	// WeaponDamageIncreasePerLevel is what the stat-sync pass scales contact
	// damage by for every level past the first.
	WeaponDamageIncreasePerLevel = 0.2
	ProjectileSpawnOffset        = 30.0
	MeleeTrackingSpeed           = 400.0
	MeleeStopDistance            = 5.0
	MeleeHitboxAlpha             = 0.3
	MaintainDistanceDeadBand     = 10.0
)

// Enemies and waves
const (
	EnemySpawnInterval   = 2 * time.Second
	EnemySpawnDistance   = 700.0
	EnemySpawnYMin       = -200.0
	EnemySpawnYMax       = 100.0
	WaveDuration         = 30 * time.Second
	WaveHealthScaling    = 0.2
	WaveSpawnRateScaling = 0.1
	MinSpawnInterval     = 500 * time.Millisecond
	ExplosionMarkerSize  = 60.0
	ExplosionMarkerLife  = 300 * time.Millisecond
)

// Experience
const (
	InitialXPToNextLevel = 100
	XPLevelScaling       = 1.5
	XPOrbAttractionRange = 150.0
	XPOrbMovementSpeed   = 300.0
	XPOrbCollectionRange = 30.0
	XPOrbSize            = 15.0
	PowerupOptionsCount  = 3
)
