package usecase

import (
	"context"
	"fmt"

	"github.com/fifahub/liga-tracker/internal/domain/ban"
	"github.com/fifahub/liga-tracker/internal/domain/player"
)

// BanService manages suspensions. Progress on active bans is advanced by the
// settlement sweep, not here.
type BanService struct {
	banRepo    ban.Repository
	playerRepo player.Repository
}

func NewBanService(banRepo ban.Repository, playerRepo player.Repository) *BanService {
	return &BanService{banRepo: banRepo, playerRepo: playerRepo}
}

func (s *BanService) ListBans(ctx context.Context) ([]ban.Ban, error) {
	ctx, span := serviceSpan(ctx, "usecase.BanService.ListBans")
	defer span.End()

	bans, err := s.banRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bans: %w", err)
	}
	return bans, nil
}

func (s *BanService) CreateBan(ctx context.Context, b ban.Ban) (ban.Ban, error) {
	ctx, span := serviceSpan(ctx, "usecase.BanService.CreateBan")
	defer span.End()

	if err := b.Validate(); err != nil {
		return ban.Ban{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	p, exists, err := s.playerRepo.GetByID(ctx, b.PlayerID)
	if err != nil {
		return ban.Ban{}, fmt.Errorf("get banned player: %w", err)
	}
	if !exists {
		return ban.Ban{}, fmt.Errorf("%w: player %d", ErrNotFound, b.PlayerID)
	}
	b.Team = p.Team

	saved, err := s.banRepo.Insert(ctx, b)
	if err != nil {
		return ban.Ban{}, fmt.Errorf("insert ban: %w", err)
	}
	return saved, nil
}

func (s *BanService) UpdateBan(ctx context.Context, b ban.Ban) error {
	ctx, span := serviceSpan(ctx, "usecase.BanService.UpdateBan")
	defer span.End()

	if err := b.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, exists, err := s.banRepo.GetByID(ctx, b.ID); err != nil {
		return fmt.Errorf("get ban: %w", err)
	} else if !exists {
		return fmt.Errorf("%w: ban %d", ErrNotFound, b.ID)
	}
	if err := s.banRepo.Update(ctx, b); err != nil {
		return fmt.Errorf("update ban: %w", err)
	}
	return nil
}

func (s *BanService) DeleteBan(ctx context.Context, id int64) error {
	ctx, span := serviceSpan(ctx, "usecase.BanService.DeleteBan")
	defer span.End()

	if _, exists, err := s.banRepo.GetByID(ctx, id); err != nil {
		return fmt.Errorf("get ban: %w", err)
	} else if !exists {
		return fmt.Errorf("%w: ban %d", ErrNotFound, id)
	}
	if err := s.banRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete ban: %w", err)
	}
	return nil
}
