package object

// ObjectType tags every live object with its gameplay kind. Scene files and
// the scripting layer refer to types by the names in typeNames.
type ObjectType int

const (
	TypeNull ObjectType = iota

	// Bots
	TypeBotWheeled
	TypeBotTracked
	TypeBotWinged
	TypeBotLegged

	// Buildings
	TypeBase
	TypeDerrick
	TypeResearch
	TypePowerPlant

	// Resources
	TypeTitanium
	TypePowerCell
	TypeUranium

	// Wildlife
	TypeAlienAnt
	TypeAlienSpider

	// Placeholder / control objects. Excluded from wildcard radar queries
	// unless asked for by name.
	TypeDummy
	TypeController

	// Ruined bot variants. All collapse to TypeRuinBotw1 under radar type
	// normalization.
	TypeRuinBotw1
	TypeRuinBotw2
	TypeRuinBott1
	TypeRuinBott2
	TypeRuinBotr1
	TypeRuinBotr2

	// Scrap variants, canonical TypeScrap1.
	TypeScrap1
	TypeScrap2
	TypeScrap3
	TypeScrap4
	TypeScrap5

	// Barrier variants, canonical TypeBarrier1.
	TypeBarrier1
	TypeBarrier2
	TypeBarrier3
)

var typeNames = map[ObjectType]string{
	TypeNull:        "none",
	TypeBotWheeled:  "bot_wheeled",
	TypeBotTracked:  "bot_tracked",
	TypeBotWinged:   "bot_winged",
	TypeBotLegged:   "bot_legged",
	TypeBase:        "base",
	TypeDerrick:     "derrick",
	TypeResearch:    "research",
	TypePowerPlant:  "power_plant",
	TypeTitanium:    "titanium",
	TypePowerCell:   "power_cell",
	TypeUranium:     "uranium",
	TypeAlienAnt:    "alien_ant",
	TypeAlienSpider: "alien_spider",
	TypeDummy:       "dummy",
	TypeController:  "controller",
	TypeRuinBotw1:   "ruin_botw1",
	TypeRuinBotw2:   "ruin_botw2",
	TypeRuinBott1:   "ruin_bott1",
	TypeRuinBott2:   "ruin_bott2",
	TypeRuinBotr1:   "ruin_botr1",
	TypeRuinBotr2:   "ruin_botr2",
	TypeScrap1:      "scrap1",
	TypeScrap2:      "scrap2",
	TypeScrap3:      "scrap3",
	TypeScrap4:      "scrap4",
	TypeScrap5:      "scrap5",
	TypeBarrier1:    "barrier1",
	TypeBarrier2:    "barrier2",
	TypeBarrier3:    "barrier3",
}

var typesByName = func() map[string]ObjectType {
	m := make(map[string]ObjectType, len(typeNames))
	for t, n := range typeNames {
		m[n] = t
	}
	return m
}()

func (t ObjectType) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return "unknown"
}

// TypeByName resolves a scene/script type name. Returns TypeNull, false for
// unknown names.
func TypeByName(name string) (ObjectType, bool) {
	t, ok := typesByName[name]
	return t, ok
}

// Capability tags optional behaviors an object advertises. Queried through
// Object.Implements; the concrete hook surfaces are the optional interfaces
// below.
type Capability int

const (
	CapTransportable Capability = iota
	CapMovable
	CapFlying
	CapDestroyable
	CapDamageable
	CapControllable
	CapPowered
)

// ExplosionKind selects the destruction effect triggered on an object.
type ExplosionKind int

const (
	ExplosionBang ExplosionKind = iota
	ExplosionBurn
	ExplosionWater
)
