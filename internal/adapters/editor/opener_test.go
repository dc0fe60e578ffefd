package editor

import (
	"errors"
	"testing"
)

func TestFindEditor(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		path map[string]string
		want string
	}{
		{
			name: "own variable wins",
			env:  map[string]string{"REPORTMAP_EDITOR": "hx", "EDITOR": "vim"},
			want: "hx",
		},
		{
			name: "falls back to VISUAL",
			env:  map[string]string{"VISUAL": "emacs"},
			want: "emacs",
		},
		{
			name: "first editor on PATH",
			path: map[string]string{"vi": "/usr/bin/vi", "nano": "/usr/bin/nano"},
			want: "/usr/bin/vi",
		},
		{
			name: "nothing available",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &Opener{
				getenv: func(k string) string { return tt.env[k] },
				lookPath: func(name string) (string, error) {
					if p, ok := tt.path[name]; ok {
						return p, nil
					}
					return "", errors.New("not found")
				},
			}
			if got := o.findEditor(); got != tt.want {
				t.Errorf("findEditor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommand_NeedsFile(t *testing.T) {
	o := &Opener{
		getenv:   func(string) string { return "vim" },
		lookPath: func(string) (string, error) { return "", errors.New("not found") },
	}

	if _, err := o.Command(""); err == nil {
		t.Error("expected error for embedded graph")
	}

	cmd, err := o.Command("/tmp/structure.yaml")
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	if len(cmd.Args) != 2 || cmd.Args[1] != "/tmp/structure.yaml" {
		t.Errorf("unexpected args %v", cmd.Args)
	}
}
