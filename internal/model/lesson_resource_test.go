package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResourceTypeFromMime(t *testing.T) {
	tests := []struct {
		mime string
		want ResourceType
	}{
		{"application/pdf", ResourceDocument},
		{"application/msword", ResourceDocument},
		{"image/png", ResourceImage},
		{"video/mp4", ResourceVideo},
		{"audio/mpeg", ResourceAudio},
		{"application/zip", ResourceArchive},
		{"application/octet-stream", ResourceOther},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, ResourceTypeFromMime(tt.mime), tt.mime)
	}
}
