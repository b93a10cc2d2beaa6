package preset

import (
	"fmt"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// scriptPrelude is prepended to every script so curves can use math
// without importing it.
const scriptPrelude = "math := import(\"math\")\n"

// ScriptCurve is a curve computed by a tengo script. The script reads the
// raw progress from the variable t and assigns the eased progress to out:
//
//	out = t * t * (3 - 2 * t)
//
// The math module is already imported as math. A ScriptCurve is safe for
// concurrent use; evaluations are serialized.
type ScriptCurve struct {
	mu       sync.Mutex
	source   string
	compiled *tengo.Compiled
	err      error
}

// NewScriptCurve compiles source and checks it by evaluating it at 0.
func NewScriptCurve(source string) (*ScriptCurve, error) {
	script := tengo.NewScript([]byte(scriptPrelude + source))
	script.SetImports(stdlib.GetModuleMap("math"))
	if err := script.Add("t", 0.0); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScript, err)
	}
	if err := script.Add("out", 0.0); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScript, err)
	}

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("%w: compile: %w", ErrScript, err)
	}

	c := &ScriptCurve{source: source, compiled: compiled}
	if _, err := c.eval(0); err != nil {
		return nil, err
	}
	return c, nil
}

// Evaluate implements tween.Curve. If the script fails, Evaluate returns
// t unchanged and records the failure for Err.
func (c *ScriptCurve) Evaluate(t float64) float64 {
	v, err := c.eval(t)
	if err != nil {
		c.mu.Lock()
		c.err = err
		c.mu.Unlock()
		return t
	}
	return v
}

// Err returns the most recent evaluation failure, if any.
func (c *ScriptCurve) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Source returns the script as written, without the prelude.
func (c *ScriptCurve) Source() string {
	return c.source
}

func (c *ScriptCurve) eval(t float64) (float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.compiled.Set("t", t); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrScript, err)
	}
	if err := c.compiled.Run(); err != nil {
		return 0, fmt.Errorf("%w: run at t=%v: %w", ErrScript, t, err)
	}

	switch out := c.compiled.Get("out").Value().(type) {
	case float64:
		return out, nil
	case int64:
		return float64(out), nil
	default:
		return 0, fmt.Errorf("%w: out is %T, want a number", ErrScript, out)
	}
}
