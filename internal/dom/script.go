package dom

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dshills/keybridge/internal/input/key"
	lua "github.com/yuin/gopher-lua"
)

// ErrContextClosed is returned when evaluating in a closed remote context.
var ErrContextClosed = errors.New("remote context is closed")

// scriptContext evaluates listener expressions in an embedded Lua state.
//
// gopher-lua's LState is not goroutine-safe; every use holds mu.
type scriptContext struct {
	mu     sync.Mutex
	L      *lua.LState
	chunks map[string]*lua.LFunction
	closed bool
}

func newScriptContext() *scriptContext {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	// Only the base and string libraries; expressions never need io or os.
	for _, lib := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.StringLibName, lua.OpenString},
	} {
		if err := L.CallByParam(lua.P{
			Fn:      L.NewFunction(lib.fn),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name)); err != nil {
			panic(fmt.Sprintf("dom: opening lua library %s: %v", lib.name, err))
		}
	}

	return &scriptContext{
		L:      L,
		chunks: make(map[string]*lua.LFunction),
	}
}

// dispatchState tracks the side effects of a single dispatch.
type dispatchState struct {
	event              BrowserEvent
	defaultPrevented   bool
	propagationStopped bool
}

// compile returns the cached chunk for an expression. Caller must hold mu.
func (s *scriptContext) compile(expression string) (*lua.LFunction, error) {
	if fn, ok := s.chunks[expression]; ok {
		return fn, nil
	}
	translated, err := translate(expression)
	if err != nil {
		return nil, err
	}
	fn, err := s.L.LoadString("return " + translated)
	if err != nil {
		return nil, fmt.Errorf("compiling %q: %w", expression, err)
	}
	s.chunks[expression] = fn
	return fn, nil
}

// eventTable builds the Lua view of the event being dispatched.
// Caller must hold mu.
func (s *scriptContext) eventTable(state *dispatchState) *lua.LTable {
	L := s.L
	ev := state.event

	tbl := L.NewTable()
	tbl.RawSetString("type", lua.LString(ev.Type))
	tbl.RawSetString("key", lua.LString(ev.Key))
	tbl.RawSetString("code", lua.LString(ev.Code))
	tbl.RawSetString("repeat", lua.LBool(ev.Repeat))
	tbl.RawSetString("location", lua.LNumber(ev.Location))
	tbl.RawSetString("detail", lua.LNumber(ev.Detail))
	tbl.RawSetString("getModifierState", L.NewFunction(func(L *lua.LState) int {
		mod := key.ModifierForState(L.CheckString(1))
		L.Push(lua.LBool(mod != key.ModNone && ev.Modifiers.Has(mod)))
		return 1
	}))
	tbl.RawSetString("preventDefault", L.NewFunction(func(L *lua.LState) int {
		state.defaultPrevented = true
		return 0
	}))
	tbl.RawSetString("stopPropagation", L.NewFunction(func(L *lua.LState) int {
		state.propagationStopped = true
		return 0
	}))
	return tbl
}

// evaluate runs expression against the event and returns its result.
// Caller must hold mu.
func (s *scriptContext) evaluate(expression string, event *lua.LTable) (lua.LValue, error) {
	if s.closed {
		return lua.LNil, ErrContextClosed
	}
	fn, err := s.compile(expression)
	if err != nil {
		return lua.LNil, err
	}

	L := s.L
	L.SetGlobal("event", event)
	L.Push(fn)
	if err := L.PCall(0, 1, nil); err != nil {
		return lua.LNil, fmt.Errorf("evaluating %q: %w", expression, err)
	}
	result := L.Get(-1)
	L.Pop(1)
	return result, nil
}

func (s *scriptContext) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.L.Close()
}

// toGo converts a Lua result into a JSON-compatible Go value.
func toGo(v lua.LValue) any {
	switch v := v.(type) {
	case lua.LBool:
		return bool(v)
	case lua.LNumber:
		return float64(v)
	case lua.LString:
		return string(v)
	default:
		return nil
	}
}
