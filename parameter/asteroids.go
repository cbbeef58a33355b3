package parameter

import "time"

// Asteroid shooter
const (
	AsteroidBudget = 20 * time.Second
	AsteroidQuota  = 5

	AsteroidMaxTargets   = 4
	AsteroidRadius       = 1.5
	AsteroidMinSpeed     = 2.0 // cells/s
	AsteroidMaxSpeed     = 5.0
	AsteroidSpawnDelay   = 600 * time.Millisecond
	AsteroidShipStep     = 2.0 // cells per key press
	AsteroidBulletSpeed  = 30.0
	AsteroidBulletRadius = 0.3
	AsteroidFireCooldown = 150 * time.Millisecond
)
