package models

// Persona is one of the seven fixed user archetypes used to tailor deal
// recommendations.
type Persona string

const (
	PersonaDigitalNomad         Persona = "Digital Nomad"
	PersonaCreativeProfessional Persona = "Creative Professional"
	PersonaCompetitiveGamer     Persona = "Competitive Gamer"
	PersonaBusinessTraveler     Persona = "Business Traveler"
	PersonaVersatileStudent     Persona = "Versatile Student"
	PersonaPowerUser            Persona = "Power User"
	PersonaTinkerer             Persona = "Tinkerer"
)

// AllPersonas lists every archetype in display order.
var AllPersonas = []Persona{
	PersonaDigitalNomad,
	PersonaCreativeProfessional,
	PersonaCompetitiveGamer,
	PersonaBusinessTraveler,
	PersonaVersatileStudent,
	PersonaPowerUser,
	PersonaTinkerer,
}

// PersonaAdjacency maps each persona to the personas considered "similar"
// for partial-credit match scoring. The mapping is directed and intentionally
// asymmetric: Digital Nomad relates to Business Traveler AND Versatile
// Student, but Business Traveler only relates back to Digital Nomad.
var PersonaAdjacency = map[Persona][]Persona{
	PersonaDigitalNomad:         {PersonaBusinessTraveler, PersonaVersatileStudent},
	PersonaCreativeProfessional: {PersonaPowerUser},
	PersonaCompetitiveGamer:     {PersonaPowerUser},
	PersonaBusinessTraveler:     {PersonaDigitalNomad},
	PersonaVersatileStudent:     {PersonaDigitalNomad, PersonaBusinessTraveler},
	PersonaPowerUser:            {PersonaCreativeProfessional, PersonaCompetitiveGamer},
	PersonaTinkerer:             {PersonaPowerUser},
}

// personaDescriptions feeds the reference endpoint and the questionnaire
// result card copy.
var personaDescriptions = map[Persona]string{
	PersonaDigitalNomad:         "Works from anywhere and optimizes for weight, battery, and portability.",
	PersonaCreativeProfessional: "Edits media and designs on color-accurate, high-performance hardware.",
	PersonaCompetitiveGamer:     "Chases frame rates and refresh rates on a budget.",
	PersonaBusinessTraveler:     "Lives in airports and meetings; wants battery life and build quality.",
	PersonaVersatileStudent:     "Needs one dependable machine for classes, notes, and everything else.",
	PersonaPowerUser:            "Buys top-end hardware and pushes it hard.",
	PersonaTinkerer:             "Upgrades, repairs, and mods; values serviceable machines.",
}

// Valid reports whether p is one of the seven known archetypes.
func (p Persona) Valid() bool {
	_, ok := PersonaAdjacency[p]
	return ok
}

// Description returns the display copy for the persona, or "" if unknown.
func (p Persona) Description() string {
	return personaDescriptions[p]
}

// PersonaInfo is the reference-data response shape for a single archetype.
type PersonaInfo struct {
	Name        Persona   `json:"name"`
	Description string    `json:"description"`
	SimilarTo   []Persona `json:"similar_to"`
}

// PersonaReference returns all archetypes with their descriptions and
// adjacency sets, for the storefront reference endpoint.
func PersonaReference() []PersonaInfo {
	infos := make([]PersonaInfo, 0, len(AllPersonas))
	for _, p := range AllPersonas {
		infos = append(infos, PersonaInfo{
			Name:        p,
			Description: personaDescriptions[p],
			SimilarTo:   PersonaAdjacency[p],
		})
	}
	return infos
}
