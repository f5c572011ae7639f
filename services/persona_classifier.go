package services

import (
	"github.com/Verity-Deals/verity-deals-backend/models"
)

// ClassifyPersona maps a completed questionnaire to one of the seven
// archetypes. The rules run in order and the first match wins; order is
// load-bearing (a travel answer beats an upgradeability answer). The function
// is total: any combination of the closed answer vocabularies lands on a
// branch, and anything else falls through to the Versatile Student baseline.
func ClassifyPersona(a models.QuestionnaireAnswers) models.Persona {
	switch {
	case a.PrimaryUse == models.UseGaming:
		if a.Budget == models.BudgetOver2000 || a.Priority == models.PriorityPerformance {
			return models.PersonaPowerUser
		}
		return models.PersonaCompetitiveGamer

	case a.PrimaryUse == models.UseCreative:
		return models.PersonaCreativeProfessional

	case a.PrimaryUse == models.UseTravel ||
		a.Priority == models.PriorityPortability ||
		a.Importance == models.ImportanceWeight:
		return models.PersonaDigitalNomad

	case a.PrimaryUse == models.UseWork:
		if a.Priority == models.PriorityBattery || a.Importance == models.ImportanceBuildQuality {
			return models.PersonaBusinessTraveler
		}
		if a.Importance == models.ImportanceUpgradeability {
			return models.PersonaTinkerer
		}
		// default for work
		return models.PersonaBusinessTraveler

	case a.PrimaryUse == models.UseSchool:
		if a.Budget == models.BudgetOver2000 && a.Priority == models.PriorityPerformance {
			return models.PersonaPowerUser
		}
		return models.PersonaVersatileStudent

	case a.Importance == models.ImportanceUpgradeability:
		return models.PersonaTinkerer

	default:
		return models.PersonaVersatileStudent
	}
}
