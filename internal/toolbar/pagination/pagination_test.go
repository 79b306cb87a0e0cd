package pagination

import (
	"testing"

	"github.com/sadopc/floatbar/internal/toolbar/option"
)

func TestToolWidth(t *testing.T) {
	m := DefaultMetrics
	tests := []struct {
		size option.Size
		mode option.DisplayMode
		want float64
	}{
		{option.Small, option.IconOnly, 32},
		{option.Medium, option.IconOnly, 40},
		{option.Large, option.Both, 120},
		{option.Medium, option.Both, 100},
		{option.Small, option.LabelOnly, 80},
		{"huge", option.IconOnly, 40},
	}
	for _, tt := range tests {
		if got := m.ToolWidth(tt.size, tt.mode); got != tt.want {
			t.Errorf("ToolWidth(%s, %s) = %v, want %v", tt.size, tt.mode, got, tt.want)
		}
	}
}

func TestEstimateFormula(t *testing.T) {
	m := DefaultMetrics
	// 3 × 40 + 2 × 4 + 16
	if got := m.Estimate(3, option.Medium, option.IconOnly); got != 144 {
		t.Errorf("Estimate = %v, want 144", got)
	}
	if got := m.Estimate(0, option.Medium, option.IconOnly); got != m.Padding {
		t.Errorf("Estimate(0) = %v", got)
	}
}

func TestTwoToolsNoOverflow(t *testing.T) {
	e := New(DefaultMetrics)
	st := e.Estimate(Input{Available: 800, Orientation: option.Horizontal, Count: 2, Size: option.Small, Mode: option.Both})
	if st.Enabled {
		t.Fatalf("2 small tools should fit 800px: %+v", st)
	}
	if !e.Visible(0) || !e.Visible(1) {
		t.Error("both tools should be visible")
	}
}

func TestTwentyToolsNarrowViewport(t *testing.T) {
	e := New(DefaultMetrics)
	in := Input{Available: 400, Orientation: option.Horizontal, Count: 20, Size: option.Medium, Mode: option.Both}
	st := e.Estimate(in)
	if !st.Enabled {
		t.Fatal("expected overflow")
	}
	if st.MaxVisible < 3 || st.MaxVisible >= 20 {
		t.Fatalf("MaxVisible = %d", st.MaxVisible)
	}
	if st.Pages != (20+st.MaxVisible-1)/st.MaxVisible {
		t.Errorf("Pages = %d", st.Pages)
	}

	pages := 1
	for e.NextPage() {
		pages++
	}
	if pages != st.Pages {
		t.Errorf("walked %d pages, want %d", pages, st.Pages)
	}
	if e.CanNext() {
		t.Error("next should be disabled on the last page")
	}
	if !e.CanPrevious() {
		t.Error("previous should be enabled on the last page")
	}
	if e.NextPage() {
		t.Error("NextPage must not wrap")
	}
}

func TestExactFitDoesNotPaginate(t *testing.T) {
	m := DefaultMetrics
	e := New(m)
	limit := m.MaxExtent(1000, option.Horizontal)
	st := e.Measure(Input{Available: 1000, Count: 5}, Measurement{Extent: limit, ToolWidths: []float64{10, 10, 10, 10, 10}})
	if st.Enabled {
		t.Fatal("extent equal to the limit must not paginate")
	}
	st = e.Measure(Input{Available: 1000, Count: 5}, Measurement{Extent: limit + 0.5, ToolWidths: []float64{10, 10, 10, 10, 10}})
	if !st.Enabled {
		t.Fatal("extent above the limit must paginate")
	}
}

func TestZeroTools(t *testing.T) {
	e := New(DefaultMetrics)
	st := e.Measure(Input{Available: 10, Count: 0}, Measurement{Extent: 1000})
	if st.Enabled {
		t.Fatal("zero tools never paginate")
	}
}

func TestVerticalUsesTighterFraction(t *testing.T) {
	m := DefaultMetrics
	if m.MaxExtent(1000, option.Vertical) != 450 || m.MaxExtent(1000, option.Horizontal) != 850 {
		t.Fatal("fractions wrong")
	}
}

func TestMinimumThreeVisible(t *testing.T) {
	e := New(DefaultMetrics)
	widths := make([]float64, 10)
	for i := range widths {
		widths[i] = 500
	}
	st := e.Measure(Input{Available: 300, Count: 10}, Measurement{Extent: 5000, ToolWidths: widths})
	if st.MaxVisible != 3 {
		t.Fatalf("MaxVisible = %d, want clamp to 3", st.MaxVisible)
	}
}

func TestMaxVisibleReservesNavAndSeparators(t *testing.T) {
	m := DefaultMetrics
	e := New(m)
	in := Input{Available: 1000, Count: 30}
	// limit 850, reserved 2×40 + 16 + 2×9 = 114, step 50+4 → floor(736/54) = 13
	st := e.Measure(in, Measurement{Extent: 2000, ToolWidths: []float64{50, 20, 30}, Separators: []float64{9, 9}})
	if st.MaxVisible != 13 {
		t.Fatalf("MaxVisible = %d, want 13", st.MaxVisible)
	}
}

func TestMeasureIdempotent(t *testing.T) {
	e := New(DefaultMetrics)
	in := Input{Available: 400, Count: 20, Size: option.Medium, Mode: option.Both}
	ms := DefaultMetrics.EstimateMeasurement(in)
	e.Measure(in, ms)
	e.NextPage()

	first := e.Measure(in, ms)
	second := e.Measure(in, ms)
	if first != second {
		t.Fatalf("repeated checks differ: %+v vs %+v", first, second)
	}
	if first.Page != 1 {
		t.Errorf("page should survive a re-check, got %d", first.Page)
	}
	for i := 0; i < 20; i++ {
		v1 := e.Visible(i)
		e.Measure(in, ms)
		if e.Visible(i) != v1 {
			t.Fatalf("visibility of %d changed", i)
		}
	}
}

func TestPageResetsWhenPageSizeChanges(t *testing.T) {
	e := New(DefaultMetrics)
	in := Input{Available: 1000, Count: 40}
	e.Measure(in, Measurement{Extent: 5000, ToolWidths: []float64{50}})
	e.NextPage()
	st := e.Measure(in, Measurement{Extent: 5000, ToolWidths: []float64{80}})
	if st.Page != 0 {
		t.Fatalf("page should reset when MaxVisible changes, got %d", st.Page)
	}
}

func TestDisableRestoresVisibility(t *testing.T) {
	e := New(DefaultMetrics)
	in := Input{Available: 400, Count: 20, Size: option.Medium, Mode: option.Both}
	e.Estimate(in)
	e.NextPage()
	in.Available = 10000
	st := e.Estimate(in)
	if st.Enabled || st.Page != 0 {
		t.Fatalf("pagination should turn off: %+v", st)
	}
	for i := 0; i < 20; i++ {
		if !e.Visible(i) {
			t.Fatalf("tool %d hidden after disable", i)
		}
	}
}

func TestVisibleWindow(t *testing.T) {
	e := New(DefaultMetrics)
	e.Measure(Input{Available: 100, Count: 7}, Measurement{Extent: 1000, ToolWidths: []float64{100}})
	// MaxVisible clamps to 3: pages [0,3) [3,6) [6,7)
	e.NextPage()
	for i, want := range []bool{false, false, false, true, true, true, false} {
		if got := e.Visible(i); got != want {
			t.Errorf("Visible(%d) = %v on page 1", i, got)
		}
	}
	if !e.PreviousPage() || e.PreviousPage() {
		t.Error("PreviousPage should clamp at 0")
	}
}

func TestCellMetrics(t *testing.T) {
	e := New(CellMetrics)
	st := e.Estimate(Input{Available: 80, Count: 4, Size: option.Small, Mode: option.IconOnly})
	if st.Enabled {
		t.Fatal("4 small icons fit 80 columns")
	}
	st = e.Estimate(Input{Available: 80, Count: 30, Size: option.Large, Mode: option.Both})
	if !st.Enabled {
		t.Fatal("30 large tools cannot fit 80 columns")
	}
}
