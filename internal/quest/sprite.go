package quest

import "fmt"

// SpriteKey names the frame a renderer should draw for the player,
// such as "player_down_1", "sword2" or "spell1".
type SpriteKey string

// SelectSprite picks the player's frame. Casting wins over swinging,
// which wins over walking.
func SelectSprite(p Player) SpriteKey {
	switch {
	case p.Casting:
		return SpriteKey(fmt.Sprintf("spell%d", p.SpellPhase+1))
	case p.Swinging:
		return SpriteKey(fmt.Sprintf("sword%d", p.SwordPhase+1))
	default:
		return SpriteKey(fmt.Sprintf("player_%s_%d", p.Direction, p.LocoPhase+1))
	}
}
