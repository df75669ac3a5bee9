package prefabs

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
)

// Gate is a compiled spawn condition. Scripts see two integers, `score` and
// `live`, and must evaluate to something truthy for the spawn to roll.
type Gate struct {
	expr     string
	compiled *tengo.Compiled
}

// CompileGate compiles expr once. An empty expression is always open.
func CompileGate(expr string) (*Gate, error) {
	expr = strings.TrimSpace(expr)
	g := &Gate{expr: expr}
	if expr == "" {
		return g, nil
	}

	script := tengo.NewScript([]byte("__open := (" + expr + ")"))
	_ = script.Add("score", 0)
	_ = script.Add("live", 0)

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("prefabs: compile gate %q: %w", expr, err)
	}
	g.compiled = compiled
	return g, nil
}

func (g *Gate) String() string {
	if g == nil || g.expr == "" {
		return "always"
	}
	return g.expr
}

// Open evaluates the gate for the current frame.
func (g *Gate) Open(score, live int) (bool, error) {
	if g == nil || g.compiled == nil {
		return true, nil
	}
	if err := g.compiled.Set("score", score); err != nil {
		return false, err
	}
	if err := g.compiled.Set("live", live); err != nil {
		return false, err
	}
	if err := g.compiled.Run(); err != nil {
		return false, fmt.Errorf("prefabs: run gate %q: %w", g.expr, err)
	}
	return g.compiled.Get("__open").Bool(), nil
}
