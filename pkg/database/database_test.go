package database

import (
	"testing"

	"lms_backend/internal/config"

	"github.com/stretchr/testify/require"
)

func TestShouldMigrate(t *testing.T) {
	tests := []struct {
		name  string
		mode  string
		force bool
		want  bool
	}{
		{name: "debug mode migrates", mode: "debug", want: true},
		{name: "empty mode migrates", mode: "", want: true},
		{name: "release mode skips", mode: "release", want: false},
		{name: "release mode forced", mode: "release", force: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{ForceMigrate: tt.force}
			cfg.Server.Mode = tt.mode
			require.Equal(t, tt.want, ShouldMigrate(cfg))
		})
	}
}
