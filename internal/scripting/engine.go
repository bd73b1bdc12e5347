package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/colonygo/server/internal/geom"
	"github.com/colonygo/server/internal/object"
)

// Engine wraps a single gopher-lua VM for bot program execution.
// Single-goroutine access only (game loop). Bot programs see the registry
// through the radar builtins registered here; they never mutate it.
type Engine struct {
	vm  *lua.LState
	mgr *object.Manager
	log *zap.Logger
}

// NewEngine creates a Lua engine, registers the radar builtins and loads
// all scripts from the given directory.
func NewEngine(scriptsDir string, mgr *object.Manager, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})

	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, mgr: mgr, log: log}
	e.registerBuiltins()

	for _, sub := range []string{"core", "ai"} {
		if err := e.loadDir(filepath.Join(scriptsDir, sub)); err != nil {
			vm.Close()
			return nil, fmt.Errorf("load %s scripts: %w", sub, err)
		}
	}

	return e, nil
}

// loadDir loads all .lua files in a directory.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // skip missing dirs
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// registerBuiltins installs the registry query functions bot programs use.
func (e *Engine) registerBuiltins() {
	e.vm.SetGlobal("radar", e.vm.NewFunction(e.luaRadar))
	e.vm.SetGlobal("find_nearest", e.vm.NewFunction(e.luaFindNearest))
	e.vm.SetGlobal("team_exists", e.vm.NewFunction(e.luaTeamExists))
}

// luaRadar implements radar(bot_id, opts). opts fields: type (name or array
// of names), angle, focus, min_dist, max_dist, furthest, team, only
// ("landing"/"flying"), sense ("friendly"/"enemy"/"neutral"). Missing
// fields default to a full-circle unfiltered nearest scan. Returns an
// object table or nil.
func (e *Engine) luaRadar(L *lua.LState) int {
	ref := e.mgr.GetObjectByID(uint32(L.CheckNumber(1)))

	var types []object.ObjectType
	angle := float32(0)
	focus := geom.TwoPi
	minDist := float32(0)
	maxDist := float32(radarDefaultRange)
	furthest := false
	var filter object.RadarFilter

	if L.GetTop() >= 2 {
		opts := L.CheckTable(2)
		types = parseTypes(L, opts.RawGetString("type"))
		angle = optNumber(opts, "angle", angle)
		focus = optNumber(opts, "focus", focus)
		minDist = optNumber(opts, "min_dist", minDist)
		maxDist = optNumber(opts, "max_dist", maxDist)
		furthest = opts.RawGetString("furthest") == lua.LTrue
		filter.Team = int(lua.LVAsNumber(opts.RawGetString("team")))
		switch lua.LVAsString(opts.RawGetString("only")) {
		case "landing":
			filter.Flight = object.FlightGrounded
		case "flying":
			filter.Flight = object.FlightAirborne
		}
		switch lua.LVAsString(opts.RawGetString("sense")) {
		case "friendly":
			filter.Alliance |= object.AllianceFriendly
		case "enemy":
			filter.Alliance |= object.AllianceEnemy
		case "neutral":
			filter.Alliance |= object.AllianceNeutral
		}
	}

	found := e.mgr.Radar(ref, types, angle, focus, minDist, maxDist, furthest, filter, true)
	return e.pushObject(L, ref, found)
}

// luaFindNearest implements find_nearest(bot_id, type_name, max_dist).
func (e *Engine) luaFindNearest(L *lua.LState) int {
	ref := e.mgr.GetObjectByID(uint32(L.CheckNumber(1)))
	types := parseTypes(L, L.Get(2))
	maxDist := float32(lua.LVAsNumber(L.Get(3)))
	if maxDist <= 0 {
		maxDist = radarDefaultRange
	}

	found := e.mgr.FindNearest(ref, types, maxDist, true)
	return e.pushObject(L, ref, found)
}

// luaTeamExists implements team_exists(team).
func (e *Engine) luaTeamExists(L *lua.LState) int {
	if e.mgr.TeamExists(int(L.CheckNumber(1))) {
		L.Push(lua.LTrue)
	} else {
		L.Push(lua.LFalse)
	}
	return 1
}

// radarDefaultRange is the script-facing scan radius used when a program
// does not bound its query.
const radarDefaultRange = 1000.0

func parseTypes(L *lua.LState, v lua.LValue) []object.ObjectType {
	var types []object.ObjectType
	add := func(name string) {
		if t, ok := object.TypeByName(name); ok {
			types = append(types, t)
		}
	}
	switch tv := v.(type) {
	case lua.LString:
		add(string(tv))
	case *lua.LTable:
		tv.ForEach(func(_, item lua.LValue) {
			add(lua.LVAsString(item))
		})
	}
	return types
}

func optNumber(t *lua.LTable, key string, def float32) float32 {
	v := t.RawGetString(key)
	if v == lua.LNil {
		return def
	}
	return float32(lua.LVAsNumber(v))
}

// pushObject pushes an object result table (or nil) and returns 1.
func (e *Engine) pushObject(L *lua.LState, ref, obj object.Object) int {
	if obj == nil {
		L.Push(lua.LNil)
		return 1
	}
	t := L.NewTable()
	pos := obj.Position()
	t.RawSetString("id", lua.LNumber(obj.ID()))
	t.RawSetString("type", lua.LString(obj.Type().String()))
	t.RawSetString("team", lua.LNumber(obj.Team()))
	t.RawSetString("x", lua.LNumber(pos.X()))
	t.RawSetString("y", lua.LNumber(pos.Y()))
	t.RawSetString("z", lua.LNumber(pos.Z()))
	if ref != nil {
		t.RawSetString("dist", lua.LNumber(geom.DistanceProjected(ref.Position(), pos)))
	}
	L.Push(t)
	return 1
}

// BotContext holds pre-packed data for one bot program invocation.
type BotContext struct {
	ID      uint32
	Type    string
	Team    int
	X, Y, Z float32
	Heading float32
}

// Command is a single action returned by a Lua bot program.
type Command struct {
	Type   string // "move_toward", "turn", "fire", "idle"
	Target uint32
	X, Z   float32
	Angle  float32
}

// RunBotAI calls Lua bot_ai(ctx) and returns a list of commands.
func (e *Engine) RunBotAI(ctx BotContext) []Command {
	fn := e.vm.GetGlobal("bot_ai")
	if fn == lua.LNil {
		return nil
	}

	t := e.vm.NewTable()
	t.RawSetString("id", lua.LNumber(ctx.ID))
	t.RawSetString("type", lua.LString(ctx.Type))
	t.RawSetString("team", lua.LNumber(ctx.Team))
	t.RawSetString("x", lua.LNumber(ctx.X))
	t.RawSetString("y", lua.LNumber(ctx.Y))
	t.RawSetString("z", lua.LNumber(ctx.Z))
	t.RawSetString("heading", lua.LNumber(ctx.Heading))

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, t); err != nil {
		e.log.Error("lua bot_ai error", zap.Error(err), zap.Uint32("bot_id", ctx.ID))
		return nil
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	rt, ok := result.(*lua.LTable)
	if !ok {
		return nil
	}

	var cmds []Command
	rt.ForEach(func(_, v lua.LValue) {
		if row, ok := v.(*lua.LTable); ok {
			cmds = append(cmds, Command{
				Type:   lua.LVAsString(row.RawGetString("type")),
				Target: uint32(lua.LVAsNumber(row.RawGetString("target"))),
				X:      float32(lua.LVAsNumber(row.RawGetString("x"))),
				Z:      float32(lua.LVAsNumber(row.RawGetString("z"))),
				Angle:  float32(lua.LVAsNumber(row.RawGetString("angle"))),
			})
		}
	})
	return cmds
}

// Close shuts down the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}
