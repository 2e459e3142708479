package constant

// System Execution Priorities (lower runs first)
// Order is the per-tick contract: timers before abilities before physics before pickups before the win check
const (
	PriorityTimer      = 10
	PriorityAbility    = 20
	PriorityHyperdrive = 30
	PrioritySpawn      = 40
	PriorityMotion     = 50 // Steering, throttle, integration, Mirror dash
	PriorityCollision  = 60
	PriorityBoundary   = 70
	PriorityPickup     = 80 // Power-ups before coins
	PriorityWin        = 90 // After game logic, final
)
