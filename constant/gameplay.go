package constant

import "time"

// Snake
const (
	SnakeGridWidth  = 16
	SnakeGridHeight = 12
	SnakeStartX     = 10
	SnakeStartY     = 10
	SnakeTick       = 100 * time.Millisecond
	SnakeFoodScore  = 10

	// SnakeFoodAttempts bounds rejection sampling before falling back to a free-cell scan
	SnakeFoodAttempts = 64
)

// Asteroids world
const (
	AsteroidsWidth  = 320.0
	AsteroidsHeight = 240.0
)

// Asteroids ship, values are per fixed step
const (
	ShipRadius        = 8.0
	ShipThrust        = 0.1
	ShipDamping       = 0.99
	ShipRotateStep    = 0.3
	ShipBrakeFactor   = 0.5
	ShipNoseOffset    = 10.0
	ShipNozzleOffset  = 8.0
	ShipShieldSteps   = 100
	ShipShieldBounce  = 3.0
	ThrustHold        = 150 * time.Millisecond
	WeaponCooldown    = 10
	BulletSpeed       = 4.0
	BulletLifetime    = 60
	ShipDeathParticle = 20
)

// Asteroids rocks
const (
	AsteroidRadius      = 16.0
	AsteroidMinSplit    = 8.0
	AsteroidScoreBase   = 32.0
	AsteroidScoreFactor = 10.0
	AsteroidVertices    = 8
	AsteroidJagMin      = 0.6
	AsteroidJagRange    = 0.4
	AsteroidWaveSize    = 4
	AsteroidInitSpeed   = 1.5 // full range, centred on zero
	AsteroidSplitSpeed  = 2.0 // full range, centred on zero
	AsteroidWaveSpeed   = 2.0
	AsteroidSafeRadius  = 48.0
)

// Asteroids particles
const (
	ThrustParticleLife   = 10
	ThrustParticleJitter = 1.0
	ExplosionSpeed       = 4.0
	ExplosionLifeMin     = 20
	ExplosionLifeRange   = 10
	ParticleFadeLife     = 30.0
)

// Keychain spring, values are per fixed step in pixels
const (
	KeychainTension      = 0.05
	KeychainFriction     = 0.85
	KeychainGravity      = 2.0
	KeychainTargetOffset = 80.0
	KeychainInitOffset   = 60.0
	KeychainMaxRadius    = 250.0
)
