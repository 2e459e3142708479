package status

// Run metric keys
const (
	KeyCoins           = "coins.collected"
	KeyPowerUpsSpawned = "powerups.spawned"
	KeyPowerUpsTaken   = "powerups.taken"
	KeyCollisions      = "collisions"
	KeyPassThroughs    = "collisions.phased"
	KeyPenalties       = "boundary.penalties"
	KeyShieldSaves     = "boundary.shield_saves"
	KeyAbilities       = "abilities.used"
	KeyTeleports       = "abilities.teleports"
	KeyHyperRolls      = "hyperdrive.rolls"
	KeyHyperEngaged    = "hyperdrive.engaged"
	KeyTopSpeed        = "speed.top"
)
