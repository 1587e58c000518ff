package hooks

import (
	"reflect"
	"testing"
)

func TestBuildNotifyCommand(t *testing.T) {
	tests := []struct {
		name     string
		opts     NotifyOptions
		expected string
	}{
		{
			name:     "minimal",
			opts:     NotifyOptions{},
			expected: "claude-notify notify --sound false --wait false",
		},
		{
			name: "all flags",
			opts: NotifyOptions{
				Launcher:  "npx claude-notify",
				Title:     "Claude Code",
				Message:   "Stop Hook triggered",
				Icon:      "/tmp/icon.png",
				VoiceLink: "https://example.com/done.mp3",
				Sound:     true,
				Wait:      true,
			},
			expected: `npx claude-notify notify --title "Claude Code" --message "Stop Hook triggered" --icon "/tmp/icon.png" --voicelink "https://example.com/done.mp3" --sound true --wait true`,
		},
		{
			name:     "escaping",
			opts:     NotifyOptions{Title: `say "hi" $HOME`, Message: "a\\b `x`"},
			expected: `claude-notify notify --title "say \"hi\" \$HOME" --message "a\\b \` + "`x\\`" + `" --sound false --wait false`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildNotifyCommand(tt.opts)
			if got != tt.expected {
				t.Errorf("BuildNotifyCommand() =\n%s\nwant\n%s", got, tt.expected)
			}
			if !IsOwnedCommand(got) {
				t.Error("built command must be owned")
			}
		})
	}
}

func TestMessageFor(t *testing.T) {
	tests := []struct {
		hookType string
		message  string
		expected string
	}{
		{"Stop", "Hook triggered", "Stop Hook triggered"},
		{"PreToolUse", "", "PreToolUse Hook triggered"},
		{"Stop", "Build finished", "Build finished"},
	}

	for _, tt := range tests {
		if got := MessageFor(tt.hookType, tt.message); got != tt.expected {
			t.Errorf("MessageFor(%q, %q) = %q, want %q", tt.hookType, tt.message, got, tt.expected)
		}
	}
}

func TestParseSelection(t *testing.T) {
	tests := []struct {
		input    string
		count    int
		expected Disposition
	}{
		{"1", 2, DeleteSelected(0)},
		{"1,2", 2, DeleteSelected(0, 1)},
		{" 2 , 1 ", 2, DeleteSelected(1, 0)},
		{"all", 3, DeleteAll()},
		{"ALL", 3, DeleteAll()},
		{"1,x,9", 2, DeleteSelected(0)},
		{"0", 2, KeepAll()},
		{"abc", 2, KeepAll()},
		{"", 2, KeepAll()},
		{"3", 2, KeepAll()},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseSelection(tt.input, tt.count)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ParseSelection(%q, %d) = %+v, want %+v", tt.input, tt.count, got, tt.expected)
			}
		})
	}
}

func TestDispositionNormalize(t *testing.T) {
	if got := DeleteSelected(5, -1).normalize(2); !reflect.DeepEqual(got, KeepAll()) {
		t.Errorf("normalize() = %+v, want keep-all", got)
	}
	if got := DeleteSelected(1, 7).normalize(2); !reflect.DeepEqual(got, DeleteSelected(1)) {
		t.Errorf("normalize() = %+v", got)
	}
	if got := Abort().normalize(0); got.Action != ActionAbort {
		t.Errorf("normalize() = %+v", got)
	}
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		input    string
		expected Action
		wantErr  bool
	}{
		{"keep", ActionKeepAll, false},
		{"Delete", ActionDeleteAll, false},
		{"delete-all", ActionDeleteAll, false},
		{"abort", ActionAbort, false},
		{"maybe", ActionKeepAll, true},
	}

	for _, tt := range tests {
		got, err := ParseAction(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAction(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.expected {
			t.Errorf("ParseAction(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionKeepAll, "keep-all"},
		{ActionDeleteAll, "delete-all"},
		{ActionDeleteSelected, "delete-selected"},
		{ActionAbort, "abort"},
		{Action(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.expected {
			t.Errorf("Action(%d).String() = %q, want %q", tt.action, got, tt.expected)
		}
	}
}
