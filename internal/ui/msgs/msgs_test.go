package msgs

import "testing"

func TestAppMode(t *testing.T) {
	tests := []struct {
		mode       AppMode
		name, hint string
	}{
		{ModeNormal, "NORMAL", "?:help  ctrl+f:find"},
		{ModeFinder, "FIND", "enter:choose  esc:close"},
		{ModeHelp, "HELP", "?/esc:close"},
		{AppMode(999), "UNKNOWN", "?:help  ctrl+f:find"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mode.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.mode.Hint(); got != tt.hint {
				t.Errorf("Hint() = %q, want %q", got, tt.hint)
			}
		})
	}
}
