package sim

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/colonygo/server/internal/object"
)

// Factory builds concrete object instances from creation params. It
// implements object.Factory for the registry.
type Factory struct {
	log *zap.Logger
}

// NewFactory creates the standard object factory.
func NewFactory(log *zap.Logger) *Factory {
	if log == nil {
		log = zap.NewNop()
	}
	return &Factory{log: log}
}

// CreateObject instantiates the object kind matching params.Type. Unknown
// types are a creation failure, reported as an error for the registry to
// wrap.
func (f *Factory) CreateObject(p object.CreateParams) (object.Object, error) {
	switch p.Type {
	case object.TypeBotWheeled, object.TypeBotTracked, object.TypeBotLegged:
		return f.newBot(p, false), nil

	case object.TypeBotWinged:
		return f.newBot(p, true), nil

	case object.TypeBase, object.TypeDerrick, object.TypeResearch, object.TypePowerPlant:
		return &Building{
			baseObject: newBase(p, object.CapDestroyable, object.CapDamageable, object.CapPowered),
		}, nil

	case object.TypeTitanium, object.TypePowerCell, object.TypeUranium:
		return &Resource{
			baseObject: newBase(p, object.CapTransportable),
		}, nil

	case object.TypeAlienAnt, object.TypeAlienSpider:
		return f.newBot(p, false), nil

	case object.TypeDummy, object.TypeController,
		object.TypeRuinBotw1, object.TypeRuinBotw2,
		object.TypeRuinBott1, object.TypeRuinBott2,
		object.TypeRuinBotr1, object.TypeRuinBotr2,
		object.TypeScrap1, object.TypeScrap2, object.TypeScrap3,
		object.TypeScrap4, object.TypeScrap5,
		object.TypeBarrier1, object.TypeBarrier2, object.TypeBarrier3:
		return &Decoration{baseObject: newBase(p)}, nil
	}

	return nil, fmt.Errorf("no blueprint for type %s", p.Type)
}

func (f *Factory) newBot(p object.CreateParams, winged bool) *Bot {
	caps := []object.Capability{
		object.CapMovable,
		object.CapControllable,
		object.CapDestroyable,
		object.CapDamageable,
	}
	if winged {
		caps = append(caps, object.CapFlying)
	}
	bot := &Bot{
		baseObject: newBase(p, caps...),
		Trainer:    p.Trainer,
		Toy:        p.Toy,
		Power:      p.Power,
		physics:    &Physics{grounded: true},
	}
	f.log.Debug("bot assembled",
		zap.Uint32("id", bot.id),
		zap.Stringer("type", p.Type),
		zap.Bool("winged", winged))
	return bot
}
