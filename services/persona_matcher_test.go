package services

import (
	"testing"

	"github.com/Verity-Deals/verity-deals-backend/models"
	"github.com/stretchr/testify/assert"
)

func TestMatchScore(t *testing.T) {
	tests := []struct {
		name    string
		persona models.Persona
		tags    []string
		want    int
	}{
		{
			name:    "exact match scores 100",
			persona: models.PersonaDigitalNomad,
			tags:    []string{"Digital Nomad", "Power User"},
			want:    MatchExact,
		},
		{
			name:    "business traveler is adjacent to digital nomad",
			persona: models.PersonaBusinessTraveler,
			tags:    []string{"Digital Nomad"},
			want:    MatchAdjacent,
		},
		{
			name:    "versatile student is adjacent to business traveler",
			persona: models.PersonaVersatileStudent,
			tags:    []string{"Business Traveler"},
			want:    MatchAdjacent,
		},
		{
			name:    "versatile student has no relation to power user",
			persona: models.PersonaVersatileStudent,
			tags:    []string{"Power User"},
			want:    MatchBaseline,
		},
		{
			name:    "adjacency is directed, not reciprocal",
			persona: models.PersonaBusinessTraveler,
			tags:    []string{"Versatile Student"},
			want:    MatchBaseline,
		},
		{
			name:    "exact beats adjacent when both present",
			persona: models.PersonaTinkerer,
			tags:    []string{"Power User", "Tinkerer"},
			want:    MatchExact,
		},
		{
			name:    "empty tags score baseline",
			persona: models.PersonaPowerUser,
			tags:    nil,
			want:    MatchBaseline,
		},
		{
			name:    "unknown tags score baseline",
			persona: models.PersonaPowerUser,
			tags:    []string{"Bargain Hunter"},
			want:    MatchBaseline,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchScore(tt.persona, tt.tags))
		})
	}
}

func TestMatchScoreNomadAdjacencyIsWiderThanTravelers(t *testing.T) {
	// Digital Nomad relates to both Business Traveler and Versatile Student.
	assert.Equal(t, MatchAdjacent, MatchScore(models.PersonaDigitalNomad, []string{"Business Traveler"}))
	assert.Equal(t, MatchAdjacent, MatchScore(models.PersonaDigitalNomad, []string{"Versatile Student"}))
	// Business Traveler only relates back to Digital Nomad.
	assert.Equal(t, MatchAdjacent, MatchScore(models.PersonaBusinessTraveler, []string{"Digital Nomad"}))
	assert.Equal(t, MatchBaseline, MatchScore(models.PersonaBusinessTraveler, []string{"Versatile Student"}))
}

func TestMatchTier(t *testing.T) {
	assert.Equal(t, "perfect", MatchTier(MatchExact))
	assert.Equal(t, "good", MatchTier(MatchAdjacent))
	assert.Equal(t, "fair", MatchTier(MatchBaseline))
}
