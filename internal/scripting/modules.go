package scripting

import (
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// registerModules registers the engine.* Lua table into L.
//
// engine.log(msg) writes msg at Info level through the Host's logger, tagged
// with the script origin.
//
// Precondition: L must be from NewSandboxedState.
// Postcondition: the engine global is defined in L.
func (h *Host) registerModules(L *lua.LState) {
	engine := L.NewTable()

	L.SetField(engine, "log", L.NewFunction(func(l *lua.LState) int {
		msg := l.CheckString(1)
		h.logger.Info("script", zap.String("message", msg))
		return 0
	}))

	L.SetGlobal("engine", engine)
}
