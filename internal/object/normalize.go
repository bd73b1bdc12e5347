package object

// radarTypeAliases collapses cosmetic subtype variants to one canonical
// representative, so script-level queries for "any ruin" or "any scrap"
// match every variant. Fixed equivalence table, extensible without touching
// the scan.
var radarTypeAliases = map[ObjectType]ObjectType{
	TypeRuinBotw2: TypeRuinBotw1,
	TypeRuinBott1: TypeRuinBotw1,
	TypeRuinBott2: TypeRuinBotw1,
	TypeRuinBotr1: TypeRuinBotw1,
	TypeRuinBotr2: TypeRuinBotw1,

	TypeScrap2: TypeScrap1,
	TypeScrap3: TypeScrap1,
	TypeScrap4: TypeScrap1,
	TypeScrap5: TypeScrap1,

	TypeBarrier2: TypeBarrier1,
	TypeBarrier3: TypeBarrier1,
}

// NormalizeRadarType maps a variant type to its canonical representative.
// Types without an alias are returned unchanged.
func NormalizeRadarType(t ObjectType) ObjectType {
	if canonical, ok := radarTypeAliases[t]; ok {
		return canonical
	}
	return t
}
