// Package scripting runs the JavaScript actions attached to tools in
// definition files.
package scripting

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dop251/goja"

	"github.com/sadopc/floatbar/internal/toolbar"
	"github.com/sadopc/floatbar/internal/toolbar/registry"
)

// DefaultTimeout bounds a single script run.
const DefaultTimeout = 5 * time.Second

// Engine executes tool scripts against a toolbar. It implements
// toolbar.ScriptRunner.
type Engine struct {
	timeout time.Duration
	log     *slog.Logger
}

var _ toolbar.ScriptRunner = (*Engine)(nil)

// NewEngine creates a scripting engine with the given timeout. A nil
// logger uses slog.Default.
func NewEngine(timeout time.Duration, log *slog.Logger) *Engine {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = slog.Default()
	}
	return &Engine{timeout: timeout, log: log.With("component", "scripting")}
}

// Result holds what a script printed.
type Result struct {
	Logs []string
	Err  error
}

// Run executes tool.Script. Log lines are forwarded to the engine's
// logger.
func (e *Engine) Run(t *toolbar.Toolbar, tool registry.Tool) error {
	res := e.Eval(t, tool, tool.Script)
	for _, line := range res.Logs {
		e.log.Info(line, "tool", tool.ID)
	}
	return res.Err
}

// Eval executes src with tool bound as the script's current tool.
func (e *Engine) Eval(t *toolbar.Toolbar, tool registry.Tool, src string) *Result {
	api := newScriptAPI(t, tool)
	err := e.run(src, api)
	return &Result{Logs: api.logs, Err: err}
}

func (e *Engine) run(src string, api *scriptAPI) error {
	vm := goja.New()
	vm.SetFieldNameMapper(goja.TagFieldNameMapper("json", true))
	api.registerOnRuntime(vm)

	ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
	defer cancel()

	// the toolbar is only touched from this goroutine; the watcher only
	// interrupts the VM
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			vm.Interrupt("script timeout exceeded")
		case <-done:
		}
	}()

	_, err := vm.RunString(src)
	close(done)

	if err != nil {
		return fmt.Errorf("script error: %w", err)
	}
	return nil
}
