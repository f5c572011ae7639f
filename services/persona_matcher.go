package services

import (
	"github.com/Verity-Deals/verity-deals-backend/models"
)

// Match score tiers. Three fixed values, not a similarity metric.
const (
	MatchExact    = 100
	MatchAdjacent = 75
	MatchBaseline = 50
)

// MatchScore rates how well a persona fits a product's persona tags:
// 100 when the tags contain the persona itself, 75 when any tag appears in
// the persona's directed adjacency set, 50 otherwise.
func MatchScore(persona models.Persona, productPersonas []string) int {
	for _, tag := range productPersonas {
		if models.Persona(tag) == persona {
			return MatchExact
		}
	}

	adjacent := models.PersonaAdjacency[persona]
	for _, tag := range productPersonas {
		for _, similar := range adjacent {
			if models.Persona(tag) == similar {
				return MatchAdjacent
			}
		}
	}

	return MatchBaseline
}

// MatchTier labels a score for the storefront badge.
func MatchTier(score int) string {
	switch score {
	case MatchExact:
		return "perfect"
	case MatchAdjacent:
		return "good"
	default:
		return "fair"
	}
}
