package engine

// TutorialSteps is the curated message sequence shown before the real run
var TutorialSteps = []string{
	"Welcome Racer! Use WASD or the arrow keys to drive around the map.",
	"Great! Now hold SPACE to use your NITRO BOOST. Watch the fuel bar at the bottom.",
	"Collect YELLOW COINS to gain a 5s SPEED BOOST and become INVINCIBLE to edges!",
	"POWER-UPS like Magnets and Shields spawn every 7s. Grab them for help!",
	"PRO TIP: Coin Boost + Speed Boost + Nitro has a 30% chance to trigger HYPERDRIVE!",
	"Press E to use your character ability. It recharges in 20 seconds.",
	"Ready to race? Collect ALL coins as fast as you can to win!",
}
