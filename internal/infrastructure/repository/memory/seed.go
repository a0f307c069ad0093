package memory

import (
	"github.com/fifahub/liga-tracker/internal/domain/match"
	"github.com/fifahub/liga-tracker/internal/domain/player"
)

// SeedPlayers is the starter roster used when the service runs without a
// database.
func SeedPlayers() []player.Player {
	return []player.Player{
		{Name: "Pavlidis", Team: match.TeamAEK, Position: "ST", Value: 500_000},
		{Name: "Jovic", Team: match.TeamAEK, Position: "ST", Value: 400_000},
		{Name: "Szymanski", Team: match.TeamAEK, Position: "MF", Value: 350_000},
		{Name: "Stankovic", Team: match.TeamAEK, Position: "GK", Value: 250_000},
		{Name: "Vinicius", Team: match.TeamReal, Position: "ST", Value: 600_000},
		{Name: "Bellingham", Team: match.TeamReal, Position: "MF", Value: 550_000},
		{Name: "Valverde", Team: match.TeamReal, Position: "MF", Value: 450_000},
		{Name: "Courtois", Team: match.TeamReal, Position: "GK", Value: 300_000},
	}
}
