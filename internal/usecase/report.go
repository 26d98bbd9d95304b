package usecase

import (
	"fmt"
	"math"
	"strings"
)

// Report holds the answers to the fixed analytical queries. Percentages and
// averages are rounded to two decimals here, not in SQL, so the raw query
// stays exact.
type Report struct {
	TotalPlayers        int      `json:"total_players"`
	MaxPointsPlayer     string   `json:"max_points_player"`
	DukeDraftees        int      `json:"duke_draftees"`
	FirstYearPercentage float64  `json:"first_year_percentage"`
	StanfordAvgActive   float64  `json:"stanford_avg_active"`
	YearWithMostDrafts  int      `json:"year_with_most_drafts"`
	TopVeterans         []string `json:"top_veterans"`
}

// Baseline is the set of expected answers the verify mode asserts against.
type Baseline struct {
	TotalPlayers        int
	MaxPointsPlayer     string
	DukeDraftees        int
	FirstYearPercentage float64
	StanfordAvgActive   float64
	YearWithMostDrafts  int
	TopVeterans         []string
}

// DefaultBaseline is the known answer set for the full historical dataset.
func DefaultBaseline() Baseline {
	return Baseline{
		TotalPlayers:        3961,
		MaxPointsPlayer:     "Michael Jordan",
		DukeDraftees:        58,
		FirstYearPercentage: 1.51,
		StanfordAvgActive:   4.58,
		YearWithMostDrafts:  1984,
		TopVeterans: []string{
			"A.C. Green",
			"Alex English",
			"Jack Sikma",
			"John Stockton",
			"Mark Eaton",
			"Terry Tyler",
		},
	}
}

// VerifyReport compares every report field against the baseline and returns
// one error listing all mismatches, wrapped as ErrVerify.
func VerifyReport(report Report, baseline Baseline) error {
	var mismatches []string

	if report.TotalPlayers != baseline.TotalPlayers {
		mismatches = append(mismatches, fmt.Sprintf("total_players: got %d, want %d", report.TotalPlayers, baseline.TotalPlayers))
	}
	if report.MaxPointsPlayer != baseline.MaxPointsPlayer {
		mismatches = append(mismatches, fmt.Sprintf("max_points_player: got %q, want %q", report.MaxPointsPlayer, baseline.MaxPointsPlayer))
	}
	if report.DukeDraftees != baseline.DukeDraftees {
		mismatches = append(mismatches, fmt.Sprintf("duke_draftees: got %d, want %d", report.DukeDraftees, baseline.DukeDraftees))
	}
	if report.FirstYearPercentage != baseline.FirstYearPercentage {
		mismatches = append(mismatches, fmt.Sprintf("first_year_percentage: got %.2f, want %.2f", report.FirstYearPercentage, baseline.FirstYearPercentage))
	}
	if report.StanfordAvgActive != baseline.StanfordAvgActive {
		mismatches = append(mismatches, fmt.Sprintf("stanford_avg_active: got %.2f, want %.2f", report.StanfordAvgActive, baseline.StanfordAvgActive))
	}
	if report.YearWithMostDrafts != baseline.YearWithMostDrafts {
		mismatches = append(mismatches, fmt.Sprintf("year_with_most_drafts: got %d, want %d", report.YearWithMostDrafts, baseline.YearWithMostDrafts))
	}
	if !equalStrings(report.TopVeterans, baseline.TopVeterans) {
		mismatches = append(mismatches, fmt.Sprintf("top_veterans: got %v, want %v", report.TopVeterans, baseline.TopVeterans))
	}

	if len(mismatches) > 0 {
		return fmt.Errorf("%w: %s", ErrVerify, strings.Join(mismatches, "; "))
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
