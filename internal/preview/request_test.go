package preview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRequest(t *testing.T) {
	req := NewRequest("/home/u/notes.txt")

	assert.Equal(t, "notes.txt", req.Name)
	assert.Equal(t, "txt", req.Ext)
	assert.Equal(t, "/home/u/notes.txt", req.Abs)
}

func TestNewRequest_NoExtension(t *testing.T) {
	req := NewRequest("/home/u/x")

	assert.Equal(t, "x", req.Name)
	assert.Equal(t, "", req.Ext)
}

func TestIsPDF(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/docs/report.pdf", true},
		{"report.pdf", true},
		{"archive.tar.pdf", true},
		{"report.PDF", false}, // the suffix match is case-sensitive
		{"report.Pdf", false},
		{"notes.txt", false},
		{"pdf", false},
		{"x", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, NewRequest(tt.path).IsPDF())
		})
	}
}
