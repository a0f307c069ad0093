package httpapi

import (
	"fmt"
	"time"

	"github.com/fifahub/liga-tracker/internal/domain/ban"
	"github.com/fifahub/liga-tracker/internal/domain/finance"
	"github.com/fifahub/liga-tracker/internal/domain/match"
	"github.com/fifahub/liga-tracker/internal/domain/player"
	"github.com/fifahub/liga-tracker/internal/usecase"
)

// Rows without a selected player are legal; the goal ledger filters them.
type scorerDTO struct {
	Player string `json:"player" validate:"max=100"`
	Goals  int    `json:"goals" validate:"min=0"`
}

type matchRequest struct {
	Date          string      `json:"date" validate:"required"`
	ScoreAEK      int         `json:"scoreAek" validate:"min=0"`
	ScoreReal     int         `json:"scoreReal" validate:"min=0"`
	ScorersAEK    []scorerDTO `json:"scorersAek" validate:"dive"`
	ScorersReal   []scorerDTO `json:"scorersReal" validate:"dive"`
	YellowAEK     int         `json:"yellowAek" validate:"min=0"`
	RedAEK        int         `json:"redAek" validate:"min=0"`
	YellowReal    int         `json:"yellowReal" validate:"min=0"`
	RedReal       int         `json:"redReal" validate:"min=0"`
	ManOfTheMatch string      `json:"manOfTheMatch" validate:"max=100"`
}

type matchDTO struct {
	ID            int64       `json:"id"`
	Date          string      `json:"date"`
	ScoreAEK      int         `json:"scoreAek"`
	ScoreReal     int         `json:"scoreReal"`
	ScorersAEK    []scorerDTO `json:"scorersAek"`
	ScorersReal   []scorerDTO `json:"scorersReal"`
	YellowAEK     int         `json:"yellowAek"`
	RedAEK        int         `json:"redAek"`
	YellowReal    int         `json:"yellowReal"`
	RedReal       int         `json:"redReal"`
	ManOfTheMatch string      `json:"manOfTheMatch"`
	PrizeAEK      int64       `json:"prizeAek"`
	PrizeReal     int64       `json:"prizeReal"`
}

type buyPlayerRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Team     string `json:"team" validate:"required,oneof=AEK Real"`
	Position string `json:"position" validate:"max=40"`
	Value    int64  `json:"value" validate:"min=0"`
}

type updatePlayerRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Team     string `json:"team" validate:"required"`
	Position string `json:"position" validate:"max=40"`
	Value    int64  `json:"value" validate:"min=0"`
}

type playerDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Team     string `json:"team"`
	Position string `json:"position,omitempty"`
	Value    int64  `json:"value"`
	Goals    int    `json:"goals"`
}

type banRequest struct {
	PlayerID     int64  `json:"playerId" validate:"required"`
	Type         string `json:"type" validate:"required,max=60"`
	TotalMatches int    `json:"totalMatches" validate:"min=1"`
	Reason       string `json:"reason" validate:"max=200"`
}

type updateBanRequest struct {
	PlayerID      int64  `json:"playerId" validate:"required"`
	Team          string `json:"team" validate:"required"`
	Type          string `json:"type" validate:"required,max=60"`
	TotalMatches  int    `json:"totalMatches" validate:"min=1"`
	MatchesServed int    `json:"matchesServed" validate:"min=0"`
	Reason        string `json:"reason" validate:"max=200"`
}

type banDTO struct {
	ID            int64  `json:"id"`
	PlayerID      int64  `json:"playerId"`
	Team          string `json:"team"`
	Type          string `json:"type"`
	TotalMatches  int    `json:"totalMatches"`
	MatchesServed int    `json:"matchesServed"`
	Reason        string `json:"reason,omitempty"`
	Active        bool   `json:"active"`
}

type transactionRequest struct {
	Team   string `json:"team" validate:"required,oneof=AEK Real"`
	Type   string `json:"type" validate:"required,max=60"`
	Amount int64  `json:"amount" validate:"required"`
	Date   string `json:"date"`
	Info   string `json:"info" validate:"max=200"`
}

type transactionDTO struct {
	ID      int64  `json:"id"`
	Team    string `json:"team"`
	Type    string `json:"type"`
	Amount  int64  `json:"amount"`
	Date    string `json:"date"`
	MatchID *int64 `json:"matchId,omitempty"`
	Info    string `json:"info,omitempty"`
}

type teamFinanceDTO struct {
	Team    string `json:"team"`
	Balance int64  `json:"balance"`
	Debt    int64  `json:"debt"`
}

type auditRequest struct {
	MaxWorkers int      `json:"maxWorkers" validate:"min=0,max=16"`
	Checks     []string `json:"checks" validate:"dive,required"`
}

// parseDate accepts RFC 3339 timestamps and bare dates.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q", usecase.ErrInvalidInput, raw)
	}
	return t, nil
}

func matchFromRequest(req matchRequest) (match.Match, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return match.Match{}, err
	}
	return match.Match{
		Date:          date,
		TeamA:         match.TeamAEK,
		TeamB:         match.TeamReal,
		ScoreA:        req.ScoreAEK,
		ScoreB:        req.ScoreReal,
		ScorersA:      scorersFromDTOs(req.ScorersAEK),
		ScorersB:      scorersFromDTOs(req.ScorersReal),
		YellowA:       req.YellowAEK,
		RedA:          req.RedAEK,
		YellowB:       req.YellowReal,
		RedB:          req.RedReal,
		ManOfTheMatch: req.ManOfTheMatch,
	}, nil
}

// scorersFromDTOs drops rows without a selected player.
func scorersFromDTOs(dtos []scorerDTO) []match.Scorer {
	out := make([]match.Scorer, 0, len(dtos))
	for _, dto := range dtos {
		if dto.Player == "" {
			continue
		}
		out = append(out, match.Scorer{Player: dto.Player, Goals: dto.Goals})
	}
	return out
}

func scorersToDTOs(scorers []match.Scorer) []scorerDTO {
	out := make([]scorerDTO, 0, len(scorers))
	for _, s := range scorers {
		out = append(out, scorerDTO{Player: s.Player, Goals: s.Goals})
	}
	return out
}

func matchToDTO(m match.Match) matchDTO {
	return matchDTO{
		ID:            m.ID,
		Date:          m.Date.Format(time.RFC3339),
		ScoreAEK:      m.ScoreA,
		ScoreReal:     m.ScoreB,
		ScorersAEK:    scorersToDTOs(m.ScorersA),
		ScorersReal:   scorersToDTOs(m.ScorersB),
		YellowAEK:     m.YellowA,
		RedAEK:        m.RedA,
		YellowReal:    m.YellowB,
		RedReal:       m.RedB,
		ManOfTheMatch: m.ManOfTheMatch,
		PrizeAEK:      m.PrizeA,
		PrizeReal:     m.PrizeB,
	}
}

func matchesToDTOs(matches []match.Match) []matchDTO {
	out := make([]matchDTO, 0, len(matches))
	for _, m := range matches {
		out = append(out, matchToDTO(m))
	}
	return out
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:       p.ID,
		Name:     p.Name,
		Team:     p.Team,
		Position: p.Position,
		Value:    p.Value,
		Goals:    p.Goals,
	}
}

func playersToDTOs(players []player.Player) []playerDTO {
	out := make([]playerDTO, 0, len(players))
	for _, p := range players {
		out = append(out, playerToDTO(p))
	}
	return out
}

func banToDTO(b ban.Ban) banDTO {
	return banDTO{
		ID:            b.ID,
		PlayerID:      b.PlayerID,
		Team:          b.Team,
		Type:          b.Type,
		TotalMatches:  b.TotalMatches,
		MatchesServed: b.MatchesServed,
		Reason:        b.Reason,
		Active:        b.Active(),
	}
}

func bansToDTOs(bans []ban.Ban) []banDTO {
	out := make([]banDTO, 0, len(bans))
	for _, b := range bans {
		out = append(out, banToDTO(b))
	}
	return out
}

func transactionToDTO(t finance.Transaction) transactionDTO {
	return transactionDTO{
		ID:      t.ID,
		Team:    t.Team,
		Type:    t.Type,
		Amount:  t.Amount,
		Date:    t.Date.Format(time.RFC3339),
		MatchID: t.MatchID,
		Info:    t.Info,
	}
}

func transactionsToDTOs(transactions []finance.Transaction) []transactionDTO {
	out := make([]transactionDTO, 0, len(transactions))
	for _, t := range transactions {
		out = append(out, transactionToDTO(t))
	}
	return out
}

func teamFinanceToDTO(f finance.TeamFinance) teamFinanceDTO {
	return teamFinanceDTO{Team: f.Team, Balance: f.Balance, Debt: f.Debt}
}
