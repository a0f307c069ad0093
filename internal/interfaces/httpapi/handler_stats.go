package httpapi

import (
	"net/http"

	"github.com/fifahub/liga-tracker/internal/usecase"
)

type disciplineDTO struct {
	Yellow int `json:"yellow"`
	Red    int `json:"red"`
}

type scorerRankDTO struct {
	Player string `json:"player"`
	Team   string `json:"team"`
	Goals  int    `json:"goals"`
}

type awardCountDTO struct {
	Player string `json:"player"`
	Team   string `json:"team"`
	Count  int    `json:"count"`
}

type statsOverviewDTO struct {
	Matches   int             `json:"matches"`
	WinsAEK   int             `json:"winsAek"`
	WinsReal  int             `json:"winsReal"`
	Draws     int             `json:"draws"`
	GoalsAEK  int             `json:"goalsAek"`
	GoalsReal int             `json:"goalsReal"`
	CardsAEK  disciplineDTO   `json:"cardsAek"`
	CardsReal disciplineDTO   `json:"cardsReal"`
	Scorers   []scorerRankDTO `json:"scorers"`
	Awards    []awardCountDTO `json:"awards"`
}

func (h *Handler) GetStatsOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := handlerSpan(r.Context(), "httpapi.Handler.GetStatsOverview")
	defer span.End()

	overview, err := h.statsService.GetOverview(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get stats overview failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, overviewToDTO(overview))
}

func overviewToDTO(o usecase.Overview) statsOverviewDTO {
	scorers := make([]scorerRankDTO, 0, len(o.Scorers))
	for _, s := range o.Scorers {
		scorers = append(scorers, scorerRankDTO{Player: s.Player, Team: s.Team, Goals: s.Goals})
	}
	awards := make([]awardCountDTO, 0, len(o.Awards))
	for _, a := range o.Awards {
		awards = append(awards, awardCountDTO{Player: a.Player, Team: a.Team, Count: a.Count})
	}
	return statsOverviewDTO{
		Matches:   o.Matches,
		WinsAEK:   o.WinsAEK,
		WinsReal:  o.WinsReal,
		Draws:     o.Draws,
		GoalsAEK:  o.GoalsAEK,
		GoalsReal: o.GoalsReal,
		CardsAEK:  disciplineDTO{Yellow: o.CardsAEK.Yellow, Red: o.CardsAEK.Red},
		CardsReal: disciplineDTO{Yellow: o.CardsReal.Yellow, Red: o.CardsReal.Red},
		Scorers:   scorers,
		Awards:    awards,
	}
}
