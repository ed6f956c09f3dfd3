package opener

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgs(t *testing.T) {
	tests := []struct {
		goos string
		want []string
	}{
		{"linux", []string{"xdg-open", "/docs/report.pdf"}},
		{"freebsd", []string{"xdg-open", "/docs/report.pdf"}},
		{"darwin", []string{"open", "/docs/report.pdf"}},
		{"windows", []string{"cmd", "/c", "start", "", "/docs/report.pdf"}},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			assert.Equal(t, tt.want, Args(tt.goos, "/docs/report.pdf"))
		})
	}
}
