package parameter

import "math"

// Kinematics are applied once per tick; values are per-tick quantities
const (
	// BaseTurnRate is radians per tick before the character handling factor
	BaseTurnRate = 0.05

	// BaseAccel is forward acceleration per tick before the speed multiplier
	BaseAccel = 0.15

	// ReverseAccelFactor scales acceleration while braking/reversing
	ReverseAccelFactor = 0.5

	// BaseMaxVelocity is the soft velocity cap before the speed multiplier
	BaseMaxVelocity = 8.0

	// Friction is applied to velocity every tick
	Friction = 0.98

	// OverSpeedDecay is the extra decay above max velocity when not boosting
	OverSpeedDecay = 0.95

	// BaseBoostPower multiplies acceleration while boosting, before the character factor
	BaseBoostPower = 1.8

	// StartHeading points the vehicle up at run start
	StartHeading = -math.Pi / 2
)

// Boost Fuel
const (
	MaxBoost = 100.0

	// BoostConsumptionRate is fuel drained per boosting tick
	BoostConsumptionRate = 0.5

	// BoostRechargeRate is fuel regenerated per non-boosting tick
	BoostRechargeRate = 0.1

	// CoinFuelRefund is fuel granted per normally collected coin
	CoinFuelRefund = 20.0

	// AbilityCoinFuelRefund is fuel granted per coin collected by Pulse or Teleport
	AbilityCoinFuelRefund = 5.0
)

// Collision
const (
	// PlayerRadius pads obstacle rectangles for vehicle collision
	PlayerRadius = 15.0

	// CollisionBounce multiplies speed on obstacle impact
	CollisionBounce = -0.4

	// CollisionJitter is the full random heading spread around the collision normal
	CollisionJitter = 0.8
)

// World Boundary
const (
	// BoundaryClampInset is how far inside the edge a clamped player is placed
	BoundaryClampInset = 10.0

	// BoundaryWrapInset is how far inside the opposite edge a wrapped entity appears
	BoundaryWrapInset = 40.0

	// BoundaryBounce multiplies speed on a guarded or penalized boundary hit
	BoundaryBounce = -0.5
)
