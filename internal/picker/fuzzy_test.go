package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name      string
		pattern   string
		candidate string
		want      bool
	}{
		{"empty pattern matches", "", "report.pdf", true},
		{"exact", "report.pdf", "report.pdf", true},
		{"subsequence", "rpdf", "report.pdf", true},
		{"case insensitive", "REP", "report.pdf", true},
		{"order matters", "pdr", "report.pdf", false},
		{"missing rune", "reportz", "report.pdf", false},
		{"longer than candidate", "report.pdf.bak", "report.pdf", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, _ := Match(tt.pattern, tt.candidate)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestMatch_RanksConsecutiveAboveScattered(t *testing.T) {
	_, consecutive := Match("rep", "report.pdf")
	_, scattered := Match("rep", "rxexpx.txt")

	assert.Greater(t, consecutive, scattered)
}

func TestMatch_RanksWordStartHigher(t *testing.T) {
	_, boundary := Match("pdf", "notes.pdf")
	_, embedded := Match("pdf", "xpdfy.txt")

	assert.Greater(t, boundary, embedded)
}
