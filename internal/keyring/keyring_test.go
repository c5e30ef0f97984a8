package keyring

import (
	"errors"
	"testing"

	gokeyring "github.com/zalando/go-keyring"
)

func TestForProfile(t *testing.T) {
	tests := []struct {
		profile     string
		wantAccount string
		wantName    string
		wantErr     bool
	}{
		{profile: "", wantAccount: "database-connection", wantName: "default"},
		{profile: "  ", wantAccount: "database-connection", wantName: "default"},
		{profile: "gym_pc-2", wantAccount: "database-connection:gym_pc-2", wantName: "gym_pc-2"},
		{profile: "has space", wantErr: true},
		{profile: "a:b", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.profile, func(t *testing.T) {
			e, err := ForProfile(tt.profile)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidProfile) {
					t.Fatalf("ForProfile(%q) error = %v, want ErrInvalidProfile", tt.profile, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ForProfile(%q) failed: %v", tt.profile, err)
			}
			if e.Account != tt.wantAccount || e.Name() != tt.wantName || e.Service != "fitfinder" {
				t.Errorf("ForProfile(%q) = %+v (name %q)", tt.profile, e, e.Name())
			}
		})
	}
}

func TestEntryLifecycle(t *testing.T) {
	gokeyring.MockInit()

	def, _ := ForProfile("")
	work, _ := ForProfile("work")

	if err := def.Set("postgres://coach@localhost:5432/fitfinder?sslmode=disable"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := work.Set("  postgres://coach@db.example:5432/fitfinder  "); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	got, err := def.Get()
	if err != nil || got != "postgres://coach@localhost:5432/fitfinder?sslmode=disable" {
		t.Errorf("default Get() = %q, %v", got, err)
	}
	got, err = work.Get()
	if err != nil || got != "postgres://coach@db.example:5432/fitfinder" {
		t.Errorf("work Get() = %q, %v (expected a trimmed value)", got, err)
	}

	if err := work.Delete(); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, err := work.Get(); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after Delete() error = %v, want ErrNotFound", err)
	}
	if err := work.Delete(); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
	if _, err := def.Get(); err != nil {
		t.Errorf("deleting one profile touched another: %v", err)
	}
}

func TestSetEmpty(t *testing.T) {
	gokeyring.MockInit()
	e, _ := ForProfile("")
	if err := e.Set("   "); !errors.Is(err, ErrEmptyConnection) {
		t.Errorf("Set(blank) error = %v, want ErrEmptyConnection", err)
	}
}

func TestAvailable(t *testing.T) {
	gokeyring.MockInit()
	if !Available() {
		t.Error("Available() = false, want true in mock mode")
	}
}
