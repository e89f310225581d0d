package core

// Cue names a sound the simulation asks the audio collaborator to play.
type Cue string

const (
	CueCoin      Cue = "coin"
	CueUnlock    Cue = "unlock"
	CuePowerup   Cue = "powerup"
	CueFanfare   Cue = "fanfare"
	CueSpell     Cue = "spell"
	CueSword     Cue = "sword"
	CueStopMusic Cue = "stopBackgroundMusic"
)
