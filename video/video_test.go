package video

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.mp4"))
	assert.Error(t, err)
}

func TestOutputPath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"/clips/throw.mp4", "/clips/throw_output.mp4"},
		{"/clips/throw.avi", "/clips/throw_output.mp4"},
		{"throw.mp4", "throw_output.mp4"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, OutputPath(tc.in))
	}
}
