package sim

import (
	"testing"

	"clubsim/internal/domain"
)

func timelineFixture(t *testing.T, seed int64) (domain.Team, domain.Team) {
	t.Helper()
	teams := InitializeLeague(NewSource(seed), 2)
	return teams[0], teams[1]
}

func TestTimelineStartsAndEndsWithMarkers(t *testing.T) {
	home, away := timelineFixture(t, 40)
	result := GenerateMatchTimeline(TimelineParams{Home: home, Away: away, Seed: 41})

	first := result.Timeline[0]
	if first.Type != domain.EventKickoff || first.Minute != 0 {
		t.Fatalf("first event %+v, want kickoff at minute 0", first)
	}
	last := result.Timeline[len(result.Timeline)-1]
	if last.Type != domain.EventFullTime || last.Minute != domain.MatchMinutes {
		t.Fatalf("last event %+v, want full time at minute 90", last)
	}
}

// Retirements can leave a squad below eleven; the timeline must still
// simulate instead of running off the end of the lineup.
func TestTimelineHandlesShortSquads(t *testing.T) {
	home, away := timelineFixture(t, 90)
	home.Players = home.Players[:9]
	home.Lineup = nil

	for seed := int64(0); seed < 30; seed++ {
		result := GenerateMatchTimeline(TimelineParams{Home: home, Away: away, Seed: seed})
		if result.FinalHomeScore < 0 || result.FinalAwayScore < 0 {
			t.Fatalf("seed %d: negative score %d-%d", seed, result.FinalHomeScore, result.FinalAwayScore)
		}
		last := result.Timeline[len(result.Timeline)-1]
		if last.Type != domain.EventFullTime {
			t.Fatalf("seed %d: timeline did not reach full time", seed)
		}
	}
}

// A short squad's average rating reflects the players it actually has.
func TestCalculateStrengthShortSquadAverage(t *testing.T) {
	home, _ := timelineFixture(t, 91)
	home.Players = home.Players[:9]
	home.Lineup = nil

	lo, hi := 100, 0
	for _, p := range home.Players {
		if p.Rating < lo {
			lo = p.Rating
		}
		if p.Rating > hi {
			hi = p.Rating
		}
	}

	strength := calculateStrength(home)
	if strength.avgRating < float64(lo) || strength.avgRating > float64(hi) {
		t.Fatalf("average %.1f outside squad rating range [%d,%d]", strength.avgRating, lo, hi)
	}
	if len(strength.players) != domain.LineupSize {
		t.Fatalf("resolved %d lineup slots, want %d", len(strength.players), domain.LineupSize)
	}
}

func TestTimelinePossessionBounds(t *testing.T) {
	home, away := timelineFixture(t, 42)
	for seed := int64(0); seed < 50; seed++ {
		result := GenerateMatchTimeline(TimelineParams{Home: home, Away: away, Seed: seed})
		hp, ap := result.Stats.HomePossession, result.Stats.AwayPossession
		if hp+ap != 100 {
			t.Fatalf("possession does not sum to 100: %d + %d", hp, ap)
		}
		if hp < 20 || hp > 80 {
			t.Fatalf("home possession %d outside [20,80]", hp)
		}
	}
}

func TestTimelineGoalEventsMatchFinalScore(t *testing.T) {
	home, away := timelineFixture(t, 43)
	for seed := int64(100); seed < 120; seed++ {
		result := GenerateMatchTimeline(TimelineParams{Home: home, Away: away, Seed: seed})

		homeGoals, awayGoals := 0, 0
		for _, ev := range result.Timeline {
			if ev.Type != domain.EventGoal {
				continue
			}
			if ev.TeamID == home.ID {
				homeGoals++
			} else {
				awayGoals++
			}
		}
		if homeGoals != result.FinalHomeScore || awayGoals != result.FinalAwayScore {
			t.Fatalf("seed %d: goal events %d-%d, final score %d-%d",
				seed, homeGoals, awayGoals, result.FinalHomeScore, result.FinalAwayScore)
		}
		if len(result.Scorers) != homeGoals+awayGoals {
			t.Fatalf("seed %d: %d scorers for %d goals", seed, len(result.Scorers), homeGoals+awayGoals)
		}
	}
}

func TestTimelineDeterministicForSeed(t *testing.T) {
	home, away := timelineFixture(t, 44)
	a := GenerateMatchTimeline(TimelineParams{Home: home, Away: away, Seed: 45})
	b := GenerateMatchTimeline(TimelineParams{Home: home, Away: away, Seed: 45})

	if len(a.Timeline) != len(b.Timeline) {
		t.Fatalf("timeline lengths differ: %d vs %d", len(a.Timeline), len(b.Timeline))
	}
	for i := range a.Timeline {
		if a.Timeline[i] != b.Timeline[i] {
			t.Fatalf("event %d differs: %+v vs %+v", i, a.Timeline[i], b.Timeline[i])
		}
	}
}

// Resuming from any minute with the same seed and unchanged teams must
// replay exactly the suffix the uninterrupted run produced.
func TestTimelineResumeReplaysUninterruptedSuffix(t *testing.T) {
	home, away := timelineFixture(t, 46)
	const seed = 47

	full := GenerateMatchTimeline(TimelineParams{Home: home, Away: away, Seed: seed})

	for _, resumeAt := range []int{1, 30, 45, 60, 89} {
		// Reconstruct the score at the resume point from the full run.
		hs, as := 0, 0
		var suffix []domain.MatchEvent
		for _, ev := range full.Timeline {
			if ev.Minute <= resumeAt {
				if ev.Type == domain.EventGoal {
					if ev.TeamID == home.ID {
						hs++
					} else {
						as++
					}
				}
				continue
			}
			suffix = append(suffix, ev)
		}

		resumed := GenerateMatchTimeline(TimelineParams{
			Home:             home,
			Away:             away,
			StartMinute:      resumeAt,
			InitialHomeScore: hs,
			InitialAwayScore: as,
			Seed:             seed,
		})

		if resumed.FinalHomeScore != full.FinalHomeScore || resumed.FinalAwayScore != full.FinalAwayScore {
			t.Fatalf("resume at %d: final %d-%d, uninterrupted %d-%d",
				resumeAt, resumed.FinalHomeScore, resumed.FinalAwayScore,
				full.FinalHomeScore, full.FinalAwayScore)
		}

		// Skip the resume marker, then events must match one for one.
		got := resumed.Timeline[1:]
		if len(got) != len(suffix) {
			t.Fatalf("resume at %d: %d suffix events, want %d", resumeAt, len(got), len(suffix))
		}
		for i := range got {
			if got[i] != suffix[i] {
				t.Fatalf("resume at %d: event %d differs: %+v vs %+v", resumeAt, i, got[i], suffix[i])
			}
		}
	}
}

// Changing tactics at the resume point changes the remainder without
// touching the score carried in.
func TestTimelineResumeReflectsTacticChanges(t *testing.T) {
	home, away := timelineFixture(t, 48)
	const seed = 49

	full := GenerateMatchTimeline(TimelineParams{Home: home, Away: away, Seed: seed})

	hs, as := 0, 0
	for _, ev := range full.Timeline {
		if ev.Minute <= 45 && ev.Type == domain.EventGoal {
			if ev.TeamID == home.ID {
				hs++
			} else {
				as++
			}
		}
	}

	changed := home
	changed.TacticStyle = domain.TacticAttacking
	resumed := GenerateMatchTimeline(TimelineParams{
		Home:             changed,
		Away:             away,
		StartMinute:      45,
		InitialHomeScore: hs,
		InitialAwayScore: as,
		Seed:             seed,
	})

	if resumed.FinalHomeScore < hs || resumed.FinalAwayScore < as {
		t.Fatalf("resume lost carried-in goals: started %d-%d, finished %d-%d",
			hs, as, resumed.FinalHomeScore, resumed.FinalAwayScore)
	}
	for _, ev := range resumed.Timeline[1:] {
		if ev.Minute <= 45 && ev.Type != domain.EventNormal {
			t.Fatalf("resumed timeline recomputed a pre-resume event: %+v", ev)
		}
	}
}
