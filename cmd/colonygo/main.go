package main

import (
	"fmt"
	"math"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/colonygo/server/internal/config"
	"github.com/colonygo/server/internal/data"
	"github.com/colonygo/server/internal/object"
	"github.com/colonygo/server/internal/scripting"
	"github.com/colonygo/server/internal/sim"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Startup display helpers ────────────────────────────────────────

func printBanner(name string) {
	fmt.Println()
	fmt.Println("\033[36;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Println("\033[36;1m  │\033[0m            colonygo  v0.1.0               \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  │\033[0m      colony simulation game server        \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Println()
	fmt.Printf("  \033[1mserver:\033[0m %s\n\n", name)
}

func printSection(title string) {
	lineLen := 46 - len(title) - 1
	if lineLen < 3 {
		lineLen = 3
	}
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label string, count int) {
	numStr := fmt.Sprintf("%d", count)
	dotsLen := 42 - len(label) - len(numStr)
	if dotsLen < 3 {
		dotsLen = 3
	}
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), numStr)
}

func printOK(msg string) {
	fmt.Printf("  \033[32m✓\033[0m %s\n", msg)
}

func printReady(msg string) {
	fmt.Printf("  \033[32m▶\033[0m %s\n", msg)
}

// ── Main server logic ─────────────────────────────────────────────

func run() error {
	// 1. Load config
	cfgPath := "config/server.toml"
	if p := os.Getenv("COLONYGO_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	printBanner(cfg.Server.Name)

	// 3. Build the object registry around the standard factory
	factory := sim.NewFactory(log)
	mgr := object.NewManager(factory, cfg.World.UnitScale, log)

	// 4. Load and spawn the scene
	printSection("scene")

	scene, err := data.LoadScene(cfg.World.ScenePath)
	if err != nil {
		return fmt.Errorf("load scene: %w", err)
	}
	printStat("spawn entries", len(scene.Spawns))

	spawned, err := spawnScene(mgr, scene, log)
	if err != nil {
		return fmt.Errorf("spawn scene: %w", err)
	}
	printStat("objects", spawned)

	// 5. Initialize Lua bot programs
	engine, err := scripting.NewEngine(cfg.Scripts.Dir, mgr, log)
	if err != nil {
		return fmt.Errorf("lua engine: %w", err)
	}
	defer engine.Close()
	printOK("lua scripts loaded")
	fmt.Println()

	// 6. Game loop
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.Server.TickRate)
	defer ticker.Stop()

	printSection("server ready")
	printReady(fmt.Sprintf("game loop started (tick: %s)", cfg.Server.TickRate))
	fmt.Println()

	for {
		select {
		case <-ticker.C:
			tickBots(mgr, engine)
			// Deferred registry compaction, one head slot per pass
			if mgr.NeedsCleanup() {
				mgr.CleanRemovedObjects()
			}
		case sig := <-shutdownCh:
			log.Info("shutdown signal received", zap.String("signal", sig.String()))
			mgr.DeleteAllObjects()
			log.Info("server stopped")
			return nil
		}
	}
}

// spawnScene creates every object listed in the scene through the registry.
// Unknown type names abort the boot; a factory refusal for a known type is
// logged and skipped.
func spawnScene(mgr *object.Manager, scene *data.Scene, log *zap.Logger) (int, error) {
	total := 0
	for _, sp := range scene.Spawns {
		t, ok := object.TypeByName(sp.Type)
		if !ok {
			return total, fmt.Errorf("unknown object type %q", sp.Type)
		}
		n := sp.Count
		if n <= 0 {
			n = 1
		}
		for i := 0; i < n; i++ {
			params := object.NewCreateParams(t)
			params.Pos = mgl32.Vec3{sp.X + float32(i)*2, sp.Y, sp.Z}
			params.Angle = sp.Angle
			params.Team = sp.Team
			params.Power = sp.Power
			if _, err := mgr.CreateObject(params); err != nil {
				log.Warn("spawn refused", zap.String("type", sp.Type), zap.Error(err))
				continue
			}
			total++
		}
	}
	return total, nil
}

// tickBots runs the Lua program of every controllable bot and executes the
// returned commands. The object list is snapshotted up front so commands
// that delete objects cannot invalidate the sweep.
func tickBots(mgr *object.Manager, engine *scripting.Engine) {
	for _, obj := range mgr.Objects() {
		bot, ok := obj.(*sim.Bot)
		if !ok || !bot.Active() {
			continue
		}
		pos := bot.Position()
		cmds := engine.RunBotAI(scripting.BotContext{
			ID:      bot.ID(),
			Type:    bot.Type().String(),
			Team:    bot.Team(),
			X:       pos.X(),
			Y:       pos.Y(),
			Z:       pos.Z(),
			Heading: bot.RotationY(),
		})
		for _, cmd := range cmds {
			executeCommand(mgr, bot, cmd)
		}
	}
}

// botStep is how far a bot advances per move command, in world units.
const botStep = 1.0

func executeCommand(mgr *object.Manager, bot *sim.Bot, cmd scripting.Command) {
	switch cmd.Type {
	case "move_toward":
		pos := bot.Position()
		dx := float64(cmd.X - pos.X())
		dz := float64(cmd.Z - pos.Z())
		dist := math.Sqrt(dx*dx + dz*dz)
		if dist <= botStep {
			bot.SetPosition(mgl32.Vec3{cmd.X, pos.Y(), cmd.Z})
			return
		}
		step := botStep / dist
		bot.SetPosition(mgl32.Vec3{
			pos.X() + float32(dx*step),
			pos.Y(),
			pos.Z() + float32(dz*step),
		})
	case "turn":
		bot.SetRotationY(cmd.Angle)
	case "fire":
		target := mgr.GetObjectByID(cmd.Target)
		if target == nil || target.ID() == bot.ID() {
			return
		}
		if ex, ok := target.(object.Damageable); ok {
			ex.Explode(object.ExplosionBang, 1.0)
		}
		mgr.DeleteObject(target)
	}
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
