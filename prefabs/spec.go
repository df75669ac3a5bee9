package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const TuningFile = "tuning.yaml"

var ErrUnknownKind = errors.New("prefabs: unknown kind")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	return decodeSpec[T](filename, data)
}

func decodeSpec[T any](filename string, data []byte) (T, error) {
	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		var zero T
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

// Tuning is every number the simulation reads.
type Tuning struct {
	Rules      RulesSpec                `yaml:"rules"`
	Player     PlayerSpec               `yaml:"player"`
	Bullets    BulletsSpec              `yaml:"bullets"`
	Bouncer    BouncerSpec              `yaml:"bouncer"`
	Charger    ChargerSpec              `yaml:"charger"`
	Bosses     []BossSpec               `yaml:"bosses"`
	Hazards    HazardsSpec              `yaml:"hazards"`
	Pickups    PickupsSpec              `yaml:"pickups"`
	SpeedTiers []SpeedTierSpec          `yaml:"speed_tiers"`
	Spawns     SpawnTableSpec           `yaml:"spawns"`
	Explosions map[string]ExplosionSpec `yaml:"explosions"`
}

// LoadTuning reads tuning.yaml, preferring a copy on disk over the embedded one.
func LoadTuning() (*Tuning, error) {
	t, err := LoadSpec[Tuning](TuningFile)
	if err != nil {
		return nil, err
	}
	return t.finish()
}

// DefaultTuning decodes the embedded tuning.yaml, ignoring any disk override.
func DefaultTuning() (*Tuning, error) {
	data, err := PrefabsFS.ReadFile(TuningFile)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", TuningFile, err)
	}
	t, err := decodeSpec[Tuning](TuningFile, data)
	if err != nil {
		return nil, err
	}
	return t.finish()
}

// LoadTuningFile reads a tuning file from an explicit path. An empty path
// means LoadTuning.
func LoadTuningFile(path string) (*Tuning, error) {
	if path == "" {
		return LoadTuning()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", path, err)
	}
	t, err := decodeSpec[Tuning](path, data)
	if err != nil {
		return nil, err
	}
	return t.finish()
}

func (t Tuning) finish() (*Tuning, error) {
	sort.SliceStable(t.SpeedTiers, func(i, j int) bool {
		return t.SpeedTiers[i].Score > t.SpeedTiers[j].Score
	})
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

type RulesSpec struct {
	RestoreCap          int     `yaml:"restore_cap"`
	SummaryFrames       int     `yaml:"summary_frames"`
	SideMargin          float64 `yaml:"side_margin"`
	TopMargin           float64 `yaml:"top_margin"`
	BouncerMargin       float64 `yaml:"bouncer_margin"`
	SeparationForce     float64 `yaml:"separation_force"`
	ExplosionFrameTicks int     `yaml:"explosion_frame_ticks"`
}

type SizeSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type PlayerSpec struct {
	SizeSpec     `yaml:",inline"`
	Speed        float64 `yaml:"speed"`
	ShootDelayMs int     `yaml:"shoot_delay_ms"`
}

type BulletSpec struct {
	SizeSpec `yaml:",inline"`
	Speed    float64 `yaml:"speed"`
	Damage   int     `yaml:"damage"`
}

type BulletsSpec struct {
	Player  BulletSpec `yaml:"player"`
	Charger BulletSpec `yaml:"charger"`
	Boss1   BulletSpec `yaml:"boss1"`
	Boss2   BulletSpec `yaml:"boss2"`
	Boss3   BulletSpec `yaml:"boss3"`
}

// ByName resolves the bullet table entry a boss refers to.
func (b *BulletsSpec) ByName(name string) (BulletSpec, error) {
	switch name {
	case "player":
		return b.Player, nil
	case "charger":
		return b.Charger, nil
	case "boss1":
		return b.Boss1, nil
	case "boss2":
		return b.Boss2, nil
	case "boss3":
		return b.Boss3, nil
	}
	return BulletSpec{}, fmt.Errorf("%w: bullet %q", ErrUnknownKind, name)
}

type StatsSpec struct {
	ContactDamage    int `yaml:"contact_damage"`
	ScoreOnContact   int `yaml:"score_on_contact"`
	ScoreOnKill      int `yaml:"score_on_kill"`
	BulletDamage     int `yaml:"bullet_damage"`
	HPPerBullet      int `yaml:"hp_per_bullet"`
	DropChance       int `yaml:"drop_chance"`
	HealthDropChance int `yaml:"health_drop_chance"`
}

type BouncerSpec struct {
	SizeSpec `yaml:",inline"`
	Speed    float64   `yaml:"speed"`
	Stats    StatsSpec `yaml:"stats"`
}

type ChargerSpec struct {
	SizeSpec   `yaml:",inline"`
	Speed      float64   `yaml:"speed"`
	ChaseSpeed float64   `yaml:"chase_speed"`
	ShootEvery int       `yaml:"shoot_every"`
	ShotCap    int       `yaml:"shot_cap"`
	Stats      StatsSpec `yaml:"stats"`
}

const (
	PatternFan    = "fan"
	PatternHoming = "homing"
)

type BossSpec struct {
	Name          string `yaml:"name"`
	SizeSpec      `yaml:",inline"`
	MaxHealth     int       `yaml:"max_health"`
	Threshold     int       `yaml:"threshold"`
	Speed         float64   `yaml:"speed"`
	EightWay      bool      `yaml:"eight_way"`
	ShootEvery    int       `yaml:"shoot_every"`
	ShotCap       int       `yaml:"shot_cap"`
	Pattern       string    `yaml:"pattern"`
	FanSpread     float64   `yaml:"fan_spread"`
	Bullet        string    `yaml:"bullet"`
	ChaseSpeed    float64   `yaml:"chase_speed"`
	Wobble        float64   `yaml:"wobble"`
	TeleportEvery int       `yaml:"teleport_every"`
	Stats         StatsSpec `yaml:"stats"`
}

type HazardSpec struct {
	SizeSpec `yaml:",inline"`
	Speed    float64   `yaml:"speed"`
	Spin     float64   `yaml:"spin"`
	Stats    StatsSpec `yaml:"stats"`
}

type HazardsSpec struct {
	Meteor    HazardSpec `yaml:"meteor"`
	Meteor2   HazardSpec `yaml:"meteor2"`
	BlackHole HazardSpec `yaml:"black_hole"`
}

type PickupSpec struct {
	SizeSpec      `yaml:",inline"`
	Speed         float64 `yaml:"speed"`
	HealthRestore int     `yaml:"health_restore"`
	AmmoRestore   int     `yaml:"ammo_restore"`
	ScoreBonus    int     `yaml:"score_bonus"`
}

type PickupsSpec struct {
	BulletRefill PickupSpec `yaml:"bullet_refill"`
	HealthRefill PickupSpec `yaml:"health_refill"`
	DoubleRefill PickupSpec `yaml:"double_refill"`
	ExtraScore   PickupSpec `yaml:"extra_score"`
}

type SpeedTierSpec struct {
	Score int     `yaml:"score"`
	Speed float64 `yaml:"speed"`
}

// TierSpeed returns the speed for score, or base when no tier applies.
// Tiers are sorted highest score first when tuning is loaded.
func (t *Tuning) TierSpeed(score int, base float64) float64 {
	for _, tier := range t.SpeedTiers {
		if score >= tier.Score {
			return tier.Speed
		}
	}
	return base
}

type SpawnSpec struct {
	Chance int    `yaml:"chance"`
	Gate   string `yaml:"gate"`
}

type SpawnTableSpec struct {
	Bouncer    SpawnSpec `yaml:"bouncer"`
	Charger    SpawnSpec `yaml:"charger"`
	ExtraScore SpawnSpec `yaml:"extra_score"`
	Meteor     SpawnSpec `yaml:"meteor"`
	Meteor2    SpawnSpec `yaml:"meteor2"`
	BlackHole  SpawnSpec `yaml:"black_hole"`
}

type ExplosionSpec struct {
	SizeSpec `yaml:",inline"`
	Frames   int `yaml:"frames"`
}

// Validate reports every problem in the tuning at once.
func (t *Tuning) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("player.width", t.Player.Width)
	positive("player.height", t.Player.Height)
	positive("player.speed", t.Player.Speed)
	positive("bouncer.width", t.Bouncer.Width)
	positive("bouncer.speed", t.Bouncer.Speed)
	positive("charger.width", t.Charger.Width)
	positive("charger.speed", t.Charger.Speed)
	positive("bullets.player.speed", t.Bullets.Player.Speed)
	if t.Rules.RestoreCap <= 0 {
		errs = append(errs, fmt.Errorf("rules.restore_cap must be positive"))
	}
	if t.Rules.SummaryFrames < 0 {
		errs = append(errs, fmt.Errorf("rules.summary_frames must not be negative"))
	}

	if len(t.Bosses) != 3 {
		errs = append(errs, fmt.Errorf("bosses: expected 3 entries, got %d", len(t.Bosses)))
	}
	for i, b := range t.Bosses {
		name := "bosses[" + strconv.Itoa(i) + "]"
		positive(name+".width", b.Width)
		positive(name+".speed", b.Speed)
		if b.MaxHealth <= 0 {
			errs = append(errs, fmt.Errorf("%s.max_health must be positive", name))
		}
		if b.Pattern != PatternFan && b.Pattern != PatternHoming {
			errs = append(errs, fmt.Errorf("%s.pattern: %w: %q", name, ErrUnknownKind, b.Pattern))
		}
		if _, err := t.Bullets.ByName(b.Bullet); err != nil {
			errs = append(errs, fmt.Errorf("%s.bullet: %w", name, err))
		}
	}

	for name, p := range map[string]PickupSpec{
		"bullet_refill": t.Pickups.BulletRefill, "health_refill": t.Pickups.HealthRefill,
		"double_refill": t.Pickups.DoubleRefill, "extra_score": t.Pickups.ExtraScore,
	} {
		if p.HealthRestore < 0 || p.AmmoRestore < 0 || p.ScoreBonus < 0 {
			errs = append(errs, fmt.Errorf("pickups.%s: restores must not be negative", name))
		}
	}

	for name, s := range map[string]SpawnSpec{
		"bouncer": t.Spawns.Bouncer, "charger": t.Spawns.Charger, "extra_score": t.Spawns.ExtraScore,
		"meteor": t.Spawns.Meteor, "meteor2": t.Spawns.Meteor2, "black_hole": t.Spawns.BlackHole,
	} {
		if s.Chance < 0 {
			errs = append(errs, fmt.Errorf("spawns.%s.chance must not be negative", name))
		}
	}

	return errors.Join(errs...)
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	var rgba [4]uint8
	rgba[3] = 255
	for i := 0; i < len(s)/2; i++ {
		v, err := parse(i * 2)
		if err != nil {
			return fmt.Errorf("invalid color %s: %w", value.Value, err)
		}
		rgba[i] = v
	}

	c.Color = color.NRGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
	return nil
}
