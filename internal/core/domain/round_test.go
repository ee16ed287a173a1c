package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name     string
		computer Path
		user     Path
		want     Outcome
	}{
		{"longer computer path wins", Path{"A", "B", "C"}, Path{"A", "B"}, OutcomeComputerWins},
		{"longer user path wins", Path{"A", "B"}, Path{"A", "B", "C"}, OutcomeUserWins},
		{"equal lengths tie", Path{"A", "B"}, Path{"A", "C"}, OutcomeTie},
		{"user wins by default", nil, Path{"A", "B"}, OutcomeUserWins},
		{"computer wins by default", Path{"A", "B"}, nil, OutcomeComputerWins},
		{"nobody wins", nil, nil, OutcomeNobody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.computer, tt.user))
		})
	}
}
