package skyhop

import "github.com/vovakirdan/skyhop/internal/config"

// integrate advances the character one tick under gravity.
// groundTop is the Y the character's top edge rests at when standing.
func integrate(c *Character, p config.PhysicsConfig, groundTop float64) {
	c.VelocityY += p.Gravity
	if c.VelocityY > p.MaxFallSpeed {
		c.VelocityY = p.MaxFallSpeed
	}
	c.Y += c.VelocityY

	if c.Y >= groundTop {
		c.Y = groundTop
		c.VelocityY = 0
		c.Jumping = false
		c.JumpCount = 0
	}
}

// tryJump applies the jump impulse if the jump budget allows it.
// It reports false, leaving c untouched, once MaxJumps jumps were used
// since the last landing.
func tryJump(c *Character, p config.PhysicsConfig) bool {
	if c.JumpCount >= p.MaxJumps {
		return false
	}
	c.VelocityY = p.JumpImpulse
	c.JumpCount++
	c.Jumping = true
	return true
}
