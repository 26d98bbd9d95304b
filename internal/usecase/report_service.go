package usecase

import (
	"context"
	"fmt"

	"github.com/draftlab/nbadraft/internal/domain/draft"
	"github.com/draftlab/nbadraft/internal/platform/logging"
)

// Query parameters fixed by the analysis: Duke and Stanford counts, and the
// "more than ten seasons, top six" veterans ranking.
const (
	dukeCollege     = "Duke University"
	stanfordCollege = "Stanford University"
	veteranMinYears = 10
	veteranTopN     = 6
)

// ReportService answers the fixed analytical queries against an already
// ingested table.
type ReportService struct {
	repo   draft.Repository
	logger *logging.Logger
}

func NewReportService(repo draft.Repository, logger *logging.Logger) *ReportService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ReportService{repo: repo, logger: logger}
}

func (s *ReportService) BuildReport(ctx context.Context) (Report, error) {
	total, err := s.repo.CountPlayers(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("%w: count players: %v", ErrQuery, err)
	}
	if total == 0 {
		return Report{}, fmt.Errorf("%w: players table is empty", ErrQuery)
	}

	maxPoints, err := s.repo.MaxPointsPlayer(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("%w: max points player: %v", ErrQuery, err)
	}

	duke, err := s.repo.CountByCollege(ctx, dukeCollege)
	if err != nil {
		return Report{}, fmt.Errorf("%w: count by college: %v", ErrQuery, err)
	}

	firstYearPct, err := s.repo.PercentageFirstYear(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("%w: first year percentage: %v", ErrQuery, err)
	}

	stanfordAvg, err := s.repo.AvgActiveForCollege(ctx, stanfordCollege)
	if err != nil {
		return Report{}, fmt.Errorf("%w: avg active for college: %v", ErrQuery, err)
	}

	year, err := s.repo.YearWithMostDrafts(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("%w: year with most drafts: %v", ErrQuery, err)
	}

	veterans, err := s.repo.TopVeteransByGamesPerYear(ctx, veteranMinYears, veteranTopN)
	if err != nil {
		return Report{}, fmt.Errorf("%w: top veterans: %v", ErrQuery, err)
	}

	report := Report{
		TotalPlayers:        total,
		MaxPointsPlayer:     maxPoints,
		DukeDraftees:        duke,
		FirstYearPercentage: round2(firstYearPct),
		StanfordAvgActive:   round2(stanfordAvg),
		YearWithMostDrafts:  year,
		TopVeterans:         veterans,
	}
	s.logger.Debug("report built", "total_players", total)
	return report, nil
}
