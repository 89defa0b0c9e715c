package traveler

import (
	"fmt"
	"strings"

	"github.com/voyago/concierge/internal/season"
)

// MatchOutcome tags the result of matching a traveler record against the
// current season.
type MatchOutcome string

const (
	OutcomeNoProfile      MatchOutcome = "no_profile"
	OutcomeSeasonMismatch MatchOutcome = "season_mismatch"
	OutcomeMatched        MatchOutcome = "matched"
)

// Profile is a normalized traveler profile. It exists only for the duration
// of one chat turn and is never persisted.
type Profile struct {
	Name          string
	Seasons       []string // lower-cased preferred-season tokens
	Activities    []string
	Budget        string
	Visited       []string
	CurrentSeason season.Season
}

// MatchResult is the tagged outcome of Match. Profile is set only for
// OutcomeMatched and Rejection only for OutcomeSeasonMismatch, so callers
// branch on Outcome instead of probing for sentinel values.
type MatchResult struct {
	Outcome   MatchOutcome
	Profile   *Profile
	Rejection string
}

// Match normalizes a raw record against the current season. A nil record
// yields OutcomeNoProfile. When the current season is not among the
// traveler's preferred seasons the result carries a user-facing rejection
// message and no profile.
func Match(rec *Record, current season.Season) MatchResult {
	if rec == nil {
		return MatchResult{Outcome: OutcomeNoProfile}
	}

	seasons := splitField(rec.PreferredSeasons, true)
	if !contains(seasons, current.Lower()) {
		return MatchResult{
			Outcome:   OutcomeSeasonMismatch,
			Rejection: fmt.Sprintf("According to my data, %s doesn't like to travel in the %s.", rec.Name, current),
		}
	}

	return MatchResult{
		Outcome: OutcomeMatched,
		Profile: &Profile{
			Name:          rec.Name,
			Seasons:       seasons,
			Activities:    splitField(rec.Activities, false),
			Budget:        strings.TrimSpace(rec.Budget),
			Visited:       splitField(rec.Visited, false),
			CurrentSeason: current,
		},
	}
}

// splitField strips surrounding quote characters, splits on commas and trims
// each element. Empty fields yield an empty list. Season tokens are also
// lower-cased for membership testing.
func splitField(raw string, lower bool) []string {
	clean := strings.Trim(strings.TrimSpace(raw), `"`)
	parts := strings.Split(clean, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if lower {
			p = strings.ToLower(p)
		}
		out = append(out, p)
	}
	return out
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
