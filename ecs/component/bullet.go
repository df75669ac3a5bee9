package component

type BulletKind int

const (
	PlayerBullet BulletKind = iota
	ChargerBullet
	Boss1Bullet
	Boss2Bullet
	Boss3Bullet
)

var bulletKeys = [...]string{"bullet", "charger_bullet", "boss1_bullet", "boss2_bullet", "boss3_bullet"}

// SpriteKey is the asset key the bullet is drawn with.
func (k BulletKind) SpriteKey() string {
	if k >= 0 && int(k) < len(bulletKeys) {
		return bulletKeys[k]
	}
	return "bullet"
}

type OwnerKind int

const (
	OwnerPlayer OwnerKind = iota
	OwnerCharger
	OwnerBoss
)

// Bullet is a projectile. Slot is only meaningful for OwnerBoss and Source
// holds the shooter entity for diagnostics; bullets outlive their shooter.
type Bullet struct {
	Kind   BulletKind
	Owner  OwnerKind
	Slot   int
	Source uint64
	Damage int
	Homing bool
}

var BulletComponent = NewComponent[Bullet]()
