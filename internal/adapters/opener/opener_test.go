package opener

import (
	"testing"
)

func TestNewOpener_RejectsRelativeBase(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantErr bool
	}{
		{name: "http", baseURL: "http://localhost:3000", wantErr: false},
		{name: "https with path", baseURL: "https://example.org/app/", wantErr: false},
		{name: "no scheme", baseURL: "localhost:3000/app", wantErr: true},
		{name: "empty", baseURL: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewOpener(tt.baseURL)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewOpener(%q) error = %v, wantErr %v", tt.baseURL, err, tt.wantErr)
			}
		})
	}
}

func TestURI(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		href    string
		wantURI string
		wantErr bool
	}{
		{
			name:    "screen path",
			baseURL: "http://localhost:3000",
			href:    "/balance-sheet",
			wantURI: "http://localhost:3000/balance-sheet",
		},
		{
			name:    "pdf under base path",
			baseURL: "https://example.org/app/",
			href:    "pdf/bs-of-which-breakdown.pdf",
			wantURI: "https://example.org/app/pdf/bs-of-which-breakdown.pdf",
		},
		{
			name:    "absolute href kept",
			baseURL: "http://localhost:3000",
			href:    "https://docs.example.org/notes",
			wantURI: "https://docs.example.org/notes",
		},
		{
			name:    "empty href",
			baseURL: "http://localhost:3000",
			href:    " ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := NewOpener(tt.baseURL)
			if err != nil {
				t.Fatalf("NewOpener failed: %v", err)
			}

			got, err := o.URI(tt.href)
			if (err != nil) != tt.wantErr {
				t.Fatalf("URI() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.wantURI {
				t.Errorf("URI() = %q, want %q", got, tt.wantURI)
			}
		})
	}
}

func TestOpen_RunsResolvedURI(t *testing.T) {
	o, err := NewOpener("http://localhost:3000")
	if err != nil {
		t.Fatalf("NewOpener failed: %v", err)
	}

	var opened string
	o.run = func(uri string) error {
		opened = uri
		return nil
	}

	if err := o.Open("/journal"); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if opened != "http://localhost:3000/journal" {
		t.Errorf("opened %q", opened)
	}
}
