package scripting

import (
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/cory-johannsen/wayfarers/internal/game/dice"
)

// RegisterModules defines the engine global in L:
//
//	engine.log.debug/info/warn(msg)
//	engine.dice.roll(expr) -> total | nil, err
//	engine.narrate(msg)
//	engine.health(name) -> hp | nil
//	engine.distracted(name) -> bool | nil
//	engine.set_distracted(name, bool) -> true | nil, err
//
// Precondition: L must be from NewSandboxedState.
func (m *Manager) RegisterModules(L *lua.LState) {
	engine := L.NewTable()
	L.SetField(engine, "log", m.logModule(L))
	L.SetField(engine, "dice", m.diceModule(L))
	L.SetField(engine, "narrate", L.NewFunction(m.luaNarrate))
	L.SetField(engine, "health", L.NewFunction(m.luaHealth))
	L.SetField(engine, "distracted", L.NewFunction(m.luaDistracted))
	L.SetField(engine, "set_distracted", L.NewFunction(m.luaSetDistracted))
	L.SetGlobal("engine", engine)
}

func (m *Manager) logModule(L *lua.LState) *lua.LTable {
	mod := L.NewTable()
	levels := map[string]func(string, ...zap.Field){
		"debug": m.logger.Debug,
		"info":  m.logger.Info,
		"warn":  m.logger.Warn,
	}
	for name, logFn := range levels {
		logFn := logFn
		L.SetField(mod, name, L.NewFunction(func(L *lua.LState) int {
			logFn(L.CheckString(1), zap.String("source", "lua"))
			return 0
		}))
	}
	return mod
}

func (m *Manager) diceModule(L *lua.LState) *lua.LTable {
	mod := L.NewTable()
	L.SetField(mod, "roll", L.NewFunction(func(L *lua.LState) int {
		expr, err := dice.Parse(L.CheckString(1))
		if err != nil {
			L.Push(lua.LNil)
			L.Push(lua.LString(err.Error()))
			return 2
		}
		L.Push(lua.LNumber(m.roller.Roll(expr).Total()))
		return 1
	}))
	return mod
}

func (m *Manager) luaNarrate(L *lua.LState) int {
	msg := L.CheckString(1)
	if m.Narrate != nil {
		m.Narrate(msg)
	}
	return 0
}

func (m *Manager) luaHealth(L *lua.LState) int {
	name := L.CheckString(1)
	if m.Health == nil {
		L.Push(lua.LNil)
		return 1
	}
	hp, ok := m.Health(name)
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LNumber(hp))
	return 1
}

func (m *Manager) luaDistracted(L *lua.LState) int {
	name := L.CheckString(1)
	if m.Distracted == nil {
		L.Push(lua.LNil)
		return 1
	}
	d, ok := m.Distracted(name)
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LBool(d))
	return 1
}

func (m *Manager) luaSetDistracted(L *lua.LState) int {
	name := L.CheckString(1)
	distracted := L.CheckBool(2)
	if m.SetDistracted == nil {
		L.Push(lua.LNil)
		L.Push(lua.LString("set_distracted is not available"))
		return 2
	}
	if err := m.SetDistracted(name, distracted); err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LTrue)
	return 1
}
