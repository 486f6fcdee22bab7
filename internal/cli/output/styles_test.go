package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHumanSize(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{3 * 1024 * 1024, "3.0 MB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HumanSize(tt.n))
	}
}

func TestRenderFiles(t *testing.T) {
	var buf bytes.Buffer
	RenderFiles(&buf, []FileRow{
		{Path: "index.html", Size: 2048},
		{Path: "static/tutor.css", Size: 100},
	})

	out := buf.String()
	assert.Contains(t, out, "index.html")
	assert.Contains(t, out, "static/tutor.css")
	assert.Contains(t, out, "2.0 KB")
	assert.Contains(t, out, "2 files")
	assert.Contains(t, out, "2.1 KB")
}

func TestBanner(t *testing.T) {
	out := NewStyles().Banner("Tutor", "http://localhost:8080", "Ctrl+C para sair")

	assert.Contains(t, out, "Tutor")
	assert.Contains(t, out, "http://localhost:8080")
	assert.Contains(t, out, "Ctrl+C para sair")
}
