package component

// Draw layers, bottom to top.
const (
	LayerPickup        = 10
	LayerBlackHole     = 20
	LayerMeteor        = 30
	LayerBouncer       = 40
	LayerCharger       = 50
	LayerChargerBullet = 55
	LayerBoss          = 60 // + 2*slot; the slot's bullets draw one below
	LayerPlayer        = 80
	LayerExplosion     = 90
	LayerPlayerBullet  = 100
)

// BossLayer returns the layer of the boss in slot and its bullets.
func BossLayer(slot int) (boss, bullets int) {
	boss = LayerBoss + 2*slot + 1
	return boss, boss - 1
}

// Sprite selects what the renderer draws for an entity.
type Sprite struct {
	Key     string
	Variant int
	Layer   int
}

var SpriteComponent = NewComponent[Sprite]()
