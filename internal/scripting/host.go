package scripting

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Host owns one sandboxed LState holding all loaded gem bonus scripts and
// exposes hook dispatch.
//
// Host is safe for concurrent CallHook after Load completes. The LState is
// single-threaded; the mutex serialises concurrent hook calls.
type Host struct {
	mu     sync.Mutex
	state  *lua.LState
	limit  int
	logger *zap.Logger
}

// NewHost creates a Host with no scripts loaded.
//
// Precondition: logger must be non-nil.
func NewHost(logger *zap.Logger) *Host {
	return &Host{logger: logger}
}

// Load creates a sandboxed VM, registers the engine.* module, then executes
// every *.lua file in scriptDir in lexicographic order, each under its own
// opcode budget of instLimit. A previously loaded VM is replaced.
//
// Precondition: scriptDir must be a readable directory.
// Postcondition: Hooks defined by the scripts are callable; returns error on
// Lua load failure.
func (h *Host) Load(scriptDir string, instLimit int) error {
	L := NewSandboxedState()
	h.registerModules(L)

	entries, err := os.ReadDir(scriptDir)
	if err != nil {
		L.Close()
		return fmt.Errorf("scripting: reading script dir %q: %w", scriptDir, err)
	}

	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".lua" {
			luaFiles = append(luaFiles, filepath.Join(scriptDir, e.Name()))
		}
	}
	sort.Strings(luaFiles)

	for _, path := range luaFiles {
		release := ApplyInstructionBudget(L, instLimit)
		err := L.DoFile(path)
		release()
		if err != nil {
			L.Close()
			return fmt.Errorf("scripting: loading %q: %w", path, err)
		}
	}

	h.mu.Lock()
	if h.state != nil {
		h.state.Close()
	}
	h.state = L
	h.limit = instLimit
	h.mu.Unlock()
	return nil
}

// CallHook calls the named Lua global function under a fresh opcode budget.
// Returns (LNil, false) if the hook is not defined or no scripts are loaded.
// Lua runtime errors, including budget exhaustion, are logged at Warn level
// and reported as an absent result, never propagated; a misbehaving script
// degrades to the neutral default of whichever bonus operation invoked it,
// and later calls run with their own budget.
//
// Precondition: args must be valid lua.LValue instances.
// Postcondition: ok is true iff the hook exists and completed; ret is its
// first return value.
func (h *Host) CallHook(hook string, args ...lua.LValue) (lua.LValue, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state == nil {
		return lua.LNil, false
	}

	fn := h.state.GetGlobal(hook)
	if fn == lua.LNil {
		return lua.LNil, false
	}

	release := ApplyInstructionBudget(h.state, h.limit)
	defer release()

	if err := h.state.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, args...); err != nil {
		h.logger.Warn("scripting: Lua runtime error",
			zap.String("hook", hook),
			zap.Error(err),
		)
		return lua.LNil, false
	}

	ret := h.state.Get(-1)
	h.state.Pop(1)
	return ret, true
}

// Close releases the underlying VM. The Host must not be used afterwards.
func (h *Host) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.state != nil {
		h.state.Close()
		h.state = nil
	}
}
