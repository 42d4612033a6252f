package game

import "math/rand"

// CharacterID identifies a crew character card. Each character carries one
// ability usable once per mission.
type CharacterID string

const (
	CharVeteran   CharacterID = "veteran"
	CharScout     CharacterID = "scout"
	CharMedic     CharacterID = "medic"
	CharEngineer  CharacterID = "engineer"
	CharSignaler  CharacterID = "signaler"
	CharMentalist CharacterID = "mentalist"
	CharOperator  CharacterID = "operator"
	CharArchivist CharacterID = "archivist"
)

// AllCharacters lists the closed character set in a fixed order.
var AllCharacters = []CharacterID{
	CharVeteran,
	CharScout,
	CharMedic,
	CharEngineer,
	CharSignaler,
	CharMentalist,
	CharOperator,
	CharArchivist,
}

// assignCharacters deals one distinct character to each seat.
func assignCharacters(players []Player, rng *rand.Rand) {
	order := rng.Perm(len(AllCharacters))
	for i := range players {
		players[i].Character = AllCharacters[order[i%len(AllCharacters)]]
		players[i].CharacterUsed = false
	}
}
