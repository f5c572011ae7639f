package models

// Questionnaire answer vocabularies. Each field is a closed enum; the HTTP
// layer enforces membership via binding tags so the classifier core never
// sees a value outside these sets.

type PrimaryUse string

const (
	UseWork     PrimaryUse = "work"
	UseGaming   PrimaryUse = "gaming"
	UseSchool   PrimaryUse = "school"
	UseTravel   PrimaryUse = "travel"
	UseCreative PrimaryUse = "creative"
)

type BudgetRange string

const (
	BudgetUnder800   BudgetRange = "under-800"
	Budget800to1200  BudgetRange = "800-1200"
	Budget1200to2000 BudgetRange = "1200-2000"
	BudgetOver2000   BudgetRange = "over-2000"
)

type Priority string

const (
	PriorityPortability Priority = "portability"
	PriorityPerformance Priority = "performance"
	PriorityBattery     Priority = "battery"
	PriorityDisplay     Priority = "display"
)

type Importance string

const (
	ImportanceWeight         Importance = "weight"
	ImportanceBuildQuality   Importance = "build-quality"
	ImportanceUpgradeability Importance = "upgradeability"
	ImportanceScreenSize     Importance = "screen-size"
)

// QuestionnaireAnswers is the completed four-question survey. Classification
// requires all four fields; Complete() is the caller-side guard.
type QuestionnaireAnswers struct {
	PrimaryUse PrimaryUse  `json:"primary_use" binding:"required,oneof=work gaming school travel creative"`
	Budget     BudgetRange `json:"budget" binding:"required,oneof=under-800 800-1200 1200-2000 over-2000"`
	Priority   Priority    `json:"priority" binding:"required,oneof=portability performance battery display"`
	Importance Importance  `json:"importance" binding:"required,oneof=weight build-quality upgradeability screen-size"`
}

// Complete reports whether every question has been answered.
func (a QuestionnaireAnswers) Complete() bool {
	return a.PrimaryUse != "" && a.Budget != "" && a.Priority != "" && a.Importance != ""
}

// ClassificationResult is the response for the classify endpoint.
type ClassificationResult struct {
	Persona     Persona `json:"persona"`
	Description string  `json:"description"`
}

// MatchScoreRequest asks how well a persona fits a product's persona tags.
type MatchScoreRequest struct {
	Persona         Persona  `json:"persona" binding:"required"`
	ProductPersonas []string `json:"product_personas"`
}

// MatchScoreResult carries the three-tier score plus the tier label the
// storefront badge uses.
type MatchScoreResult struct {
	Persona Persona `json:"persona"`
	Score   int     `json:"score"`
	Tier    string  `json:"tier"`
}
