package component

// Cue names a fire-and-forget sound.
type Cue string

const (
	CueShoot        Cue = "shoot"
	CueChargerShoot Cue = "charger_shoot"
	CueBossShoot    Cue = "boss_shoot"
	CueExplosion    Cue = "explosion"
	CueWarning      Cue = "warning"
	CueDamage       Cue = "damage"
	CuePickup       Cue = "pickup"
	CueBlackHole    Cue = "black_hole"
	CueGameOver     Cue = "game_over"
)

// Cues lists every cue so audio backends can prepare them up front.
var Cues = []Cue{CueShoot, CueChargerShoot, CueBossShoot, CueExplosion, CueWarning, CueDamage, CuePickup, CueBlackHole, CueGameOver}
