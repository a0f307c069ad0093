package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fifahub/liga-tracker/internal/domain/finance"
	"github.com/fifahub/liga-tracker/internal/domain/match"
	"github.com/fifahub/liga-tracker/internal/domain/player"
)

// TeamFormer marks retired roster entries. Former players keep their career
// stats but are excluded from bonus resolution.
const TeamFormer = "Ehemalige"

// PlayerService manages the rosters. Transfers move money through the same
// ledger the settlement engine writes to: a purchase debits the buying
// team's balance, a sale credits it.
type PlayerService struct {
	playerRepo  player.Repository
	financeRepo finance.Repository
	now         func() time.Time
}

func NewPlayerService(playerRepo player.Repository, financeRepo finance.Repository) *PlayerService {
	return &PlayerService{
		playerRepo:  playerRepo,
		financeRepo: financeRepo,
		now:         time.Now,
	}
}

func (s *PlayerService) ListPlayers(ctx context.Context) ([]player.Player, error) {
	ctx, span := serviceSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return players, nil
}

func (s *PlayerService) ListRoster(ctx context.Context, team string) ([]player.Player, error) {
	ctx, span := serviceSpan(ctx, "usecase.PlayerService.ListRoster")
	defer span.End()

	if !validTeam(team) {
		return nil, fmt.Errorf("%w: unknown team %q", ErrInvalidInput, team)
	}
	players, err := s.playerRepo.ListByTeam(ctx, team)
	if err != nil {
		return nil, fmt.Errorf("list %s roster: %w", team, err)
	}
	return players, nil
}

// BuyPlayer adds a player to a roster and charges the transfer value to the
// team balance, logged as a Spielerkauf transaction.
func (s *PlayerService) BuyPlayer(ctx context.Context, p player.Player) (player.Player, error) {
	ctx, span := serviceSpan(ctx, "usecase.PlayerService.BuyPlayer")
	defer span.End()

	if err := p.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if p.Team != match.TeamAEK && p.Team != match.TeamReal {
		return player.Player{}, fmt.Errorf("%w: players can only be bought for %s or %s", ErrInvalidInput, match.TeamAEK, match.TeamReal)
	}
	if _, exists, err := s.playerRepo.GetByName(ctx, p.Name); err != nil {
		return player.Player{}, fmt.Errorf("check existing player: %w", err)
	} else if exists {
		return player.Player{}, fmt.Errorf("%w: player %q already exists", ErrInvalidInput, p.Name)
	}

	saved, err := s.playerRepo.Insert(ctx, p)
	if err != nil {
		return player.Player{}, fmt.Errorf("insert player: %w", err)
	}

	if saved.Value > 0 {
		if err := s.applyTransfer(ctx, saved.Team, -saved.Value, finance.TypePlayerPurchase, saved.Name); err != nil {
			return saved, err
		}
	}
	return saved, nil
}

// SellPlayer moves the player to the former-players roster and credits the
// sale value back, logged as a Spielerverkauf transaction.
func (s *PlayerService) SellPlayer(ctx context.Context, playerID int64) (player.Player, error) {
	ctx, span := serviceSpan(ctx, "usecase.PlayerService.SellPlayer")
	defer span.End()

	p, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player %d", ErrNotFound, playerID)
	}
	if p.Team == TeamFormer {
		return player.Player{}, fmt.Errorf("%w: player %q is already sold", ErrInvalidInput, p.Name)
	}

	sellingTeam := p.Team
	p.Team = TeamFormer
	if err := s.playerRepo.Update(ctx, p); err != nil {
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}

	if p.Value > 0 {
		if err := s.applyTransfer(ctx, sellingTeam, p.Value, finance.TypePlayerSale, p.Name); err != nil {
			return p, err
		}
	}
	return p, nil
}

func (s *PlayerService) UpdatePlayer(ctx context.Context, p player.Player) error {
	ctx, span := serviceSpan(ctx, "usecase.PlayerService.UpdatePlayer")
	defer span.End()

	if err := p.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	existing, exists, err := s.playerRepo.GetByID(ctx, p.ID)
	if err != nil {
		return fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: player %d", ErrNotFound, p.ID)
	}
	// The career goal tally is owned by the settlement engine.
	p.Goals = existing.Goals
	if err := s.playerRepo.Update(ctx, p); err != nil {
		return fmt.Errorf("update player: %w", err)
	}
	return nil
}

func (s *PlayerService) applyTransfer(ctx context.Context, team string, delta int64, txType, playerName string) error {
	f, exists, err := s.financeRepo.GetByTeam(ctx, team)
	if err != nil {
		return fmt.Errorf("get %s finance: %w", team, err)
	}
	if !exists {
		return fmt.Errorf("%w: finance record for %s", ErrNotFound, team)
	}
	f.Balance += delta
	if f.Balance < 0 {
		f.Balance = 0
	}
	if err := s.financeRepo.UpdateFinance(ctx, f); err != nil {
		return fmt.Errorf("update %s balance: %w", team, err)
	}
	if _, err := s.financeRepo.InsertTransaction(ctx, finance.Transaction{
		Team:   team,
		Type:   txType,
		Amount: delta,
		Date:   s.now(),
		Info:   playerName,
	}); err != nil {
		return fmt.Errorf("insert transfer transaction: %w", err)
	}
	return nil
}

func validTeam(team string) bool {
	return team == match.TeamAEK || team == match.TeamReal || team == TeamFormer
}
