package scripting

import (
	"testing"
	"time"

	"github.com/sadopc/floatbar/internal/toolbar"
	"github.com/sadopc/floatbar/internal/toolbar/registry"
	"github.com/sadopc/floatbar/internal/toolbar/schedule"
)

func BenchmarkEval(b *testing.B) {
	tb, err := toolbar.New(toolbar.Config{Container: box{}, Scheduler: schedule.NewManual()})
	if err != nil {
		b.Fatal(err)
	}
	defer tb.Destroy()
	engine := NewEngine(5*time.Second, nil)
	tool := registry.Tool{ID: "bench"}

	b.Run("LogOnly", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			if res := engine.Eval(tb, tool, `toolbar.log("tick")`); res.Err != nil {
				b.Fatal(res.Err)
			}
		}
	})
	b.Run("CycleSize", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			if res := engine.Eval(tb, tool, `toolbar.nextSize()`); res.Err != nil {
				b.Fatal(res.Err)
			}
		}
	})
}
