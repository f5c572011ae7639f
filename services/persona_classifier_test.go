package services

import (
	"testing"

	"github.com/Verity-Deals/verity-deals-backend/models"
	"github.com/stretchr/testify/assert"
)

func answers(use models.PrimaryUse, budget models.BudgetRange, prio models.Priority, imp models.Importance) models.QuestionnaireAnswers {
	return models.QuestionnaireAnswers{
		PrimaryUse: use,
		Budget:     budget,
		Priority:   prio,
		Importance: imp,
	}
}

func TestClassifyPersona(t *testing.T) {
	tests := []struct {
		name string
		in   models.QuestionnaireAnswers
		want models.Persona
	}{
		{
			name: "gaming with top budget is power user",
			in:   answers(models.UseGaming, models.BudgetOver2000, models.PriorityBattery, models.ImportanceScreenSize),
			want: models.PersonaPowerUser,
		},
		{
			name: "gaming with performance priority is power user",
			in:   answers(models.UseGaming, models.BudgetUnder800, models.PriorityPerformance, models.ImportanceScreenSize),
			want: models.PersonaPowerUser,
		},
		{
			name: "gaming otherwise is competitive gamer",
			in:   answers(models.UseGaming, models.BudgetUnder800, models.PriorityBattery, models.ImportanceWeight),
			want: models.PersonaCompetitiveGamer,
		},
		{
			name: "creative always wins",
			in:   answers(models.UseCreative, models.BudgetUnder800, models.PriorityPortability, models.ImportanceUpgradeability),
			want: models.PersonaCreativeProfessional,
		},
		{
			name: "travel beats upgradeability",
			in:   answers(models.UseTravel, models.BudgetOver2000, models.PriorityPerformance, models.ImportanceUpgradeability),
			want: models.PersonaDigitalNomad,
		},
		{
			name: "portability priority makes a nomad regardless of use",
			in:   answers(models.UseWork, models.Budget800to1200, models.PriorityPortability, models.ImportanceScreenSize),
			want: models.PersonaDigitalNomad,
		},
		{
			name: "weight importance makes a nomad",
			in:   answers(models.UseSchool, models.Budget1200to2000, models.PriorityDisplay, models.ImportanceWeight),
			want: models.PersonaDigitalNomad,
		},
		{
			name: "work with battery priority is business traveler",
			in:   answers(models.UseWork, models.Budget800to1200, models.PriorityBattery, models.ImportanceScreenSize),
			want: models.PersonaBusinessTraveler,
		},
		{
			name: "work with build quality is business traveler",
			in:   answers(models.UseWork, models.Budget1200to2000, models.PriorityDisplay, models.ImportanceBuildQuality),
			want: models.PersonaBusinessTraveler,
		},
		{
			name: "work with upgradeability is tinkerer",
			in:   answers(models.UseWork, models.Budget800to1200, models.PriorityDisplay, models.ImportanceUpgradeability),
			want: models.PersonaTinkerer,
		},
		{
			name: "work battery beats upgradeability",
			in:   answers(models.UseWork, models.Budget800to1200, models.PriorityBattery, models.ImportanceUpgradeability),
			want: models.PersonaBusinessTraveler,
		},
		{
			name: "work defaults to business traveler",
			in:   answers(models.UseWork, models.BudgetUnder800, models.PriorityDisplay, models.ImportanceScreenSize),
			want: models.PersonaBusinessTraveler,
		},
		{
			name: "school with top budget and performance is power user",
			in:   answers(models.UseSchool, models.BudgetOver2000, models.PriorityPerformance, models.ImportanceScreenSize),
			want: models.PersonaPowerUser,
		},
		{
			name: "school needs both budget and performance for power user",
			in:   answers(models.UseSchool, models.BudgetOver2000, models.PriorityDisplay, models.ImportanceScreenSize),
			want: models.PersonaVersatileStudent,
		},
		{
			name: "school otherwise is versatile student",
			in:   answers(models.UseSchool, models.BudgetUnder800, models.PriorityBattery, models.ImportanceScreenSize),
			want: models.PersonaVersatileStudent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyPersona(tt.in))
		})
	}
}

// Every one of the 4x4x4x4 answer combinations must land on a known persona.
func TestClassifyPersonaIsTotal(t *testing.T) {
	uses := []models.PrimaryUse{models.UseWork, models.UseGaming, models.UseSchool, models.UseTravel, models.UseCreative}
	budgets := []models.BudgetRange{models.BudgetUnder800, models.Budget800to1200, models.Budget1200to2000, models.BudgetOver2000}
	priorities := []models.Priority{models.PriorityPortability, models.PriorityPerformance, models.PriorityBattery, models.PriorityDisplay}
	importances := []models.Importance{models.ImportanceWeight, models.ImportanceBuildQuality, models.ImportanceUpgradeability, models.ImportanceScreenSize}

	for _, u := range uses {
		for _, b := range budgets {
			for _, p := range priorities {
				for _, i := range importances {
					got := ClassifyPersona(answers(u, b, p, i))
					assert.Truef(t, got.Valid(), "answers (%s,%s,%s,%s) produced unknown persona %q", u, b, p, i, got)
				}
			}
		}
	}
}

func TestClassifyPersonaGamingRule(t *testing.T) {
	// For gaming, power user iff budget over-2000 OR priority performance.
	budgets := []models.BudgetRange{models.BudgetUnder800, models.Budget800to1200, models.Budget1200to2000, models.BudgetOver2000}
	priorities := []models.Priority{models.PriorityPortability, models.PriorityPerformance, models.PriorityBattery, models.PriorityDisplay}

	for _, b := range budgets {
		for _, p := range priorities {
			got := ClassifyPersona(answers(models.UseGaming, b, p, models.ImportanceScreenSize))
			if b == models.BudgetOver2000 || p == models.PriorityPerformance {
				assert.Equal(t, models.PersonaPowerUser, got)
			} else {
				assert.Equal(t, models.PersonaCompetitiveGamer, got)
			}
		}
	}
}
