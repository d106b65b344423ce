package suitability

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/eventcast/eventcast/internal/weather"
)

// ObservationSource supplies weather observations for a location and
// calendar date. An empty date means current conditions.
type ObservationSource interface {
	Fetch(ctx context.Context, location, date string) (*weather.Observation, error)
}

const (
	// windowDays is how far the search looks on each side of the event date.
	windowDays = 3

	// maxAlternatives caps the ranked list returned to callers.
	maxAlternatives = 5

	dateLayout = "2006-01-02"
)

// Alternative is a scored candidate date.
type Alternative struct {
	Date        string
	Weather     *weather.Observation
	Suitability Result
}

// Recommendation pairs the event date's own score with ranked alternatives.
// CurrentWeather is nil when no observation was obtainable for the event
// date itself; CurrentSuitability then carries RatingUnknown.
type Recommendation struct {
	CurrentWeather     *weather.Observation
	CurrentSuitability Result
	Alternatives       []Alternative
}

// FinderConfig holds the alternative-date finder's dependencies.
type FinderConfig struct {
	Source ObservationSource
	Logger zerolog.Logger
}

// Finder searches the days around an event's date for better weather.
type Finder struct {
	source ObservationSource
	logger zerolog.Logger
}

// NewFinder creates a new alternative-date finder.
func NewFinder(cfg FinderConfig) *Finder {
	return &Finder{
		source: cfg.Source,
		logger: cfg.Logger,
	}
}

// FindAlternatives scores the event date and the three days either side of
// it (the event date itself is never a candidate), ranking candidates by
// descending score and returning at most five. Candidate dates whose
// observation cannot be fetched are skipped without failing the search:
// partial results are still useful. Ties keep enumeration order, earliest
// candidate first, via the stable sort.
func (f *Finder) FindAlternatives(ctx context.Context, category Category, location, date string) (*Recommendation, error) {
	eventDate, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("parsing event date: %w", err)
	}

	rec := &Recommendation{}

	current, err := f.source.Fetch(ctx, location, date)
	if err != nil {
		f.logger.Warn().
			Str("location", location).
			Str("date", date).
			Err(err).
			Msg("no observation for event date")
	}
	rec.CurrentWeather = current
	rec.CurrentSuitability = Score(category, current)

	for offset := -windowDays; offset <= windowDays; offset++ {
		if offset == 0 {
			continue
		}

		candidate := eventDate.AddDate(0, 0, offset).Format(dateLayout)
		obs, err := f.source.Fetch(ctx, location, candidate)
		if err != nil {
			f.logger.Debug().
				Str("location", location).
				Str("date", candidate).
				Err(err).
				Msg("skipping candidate date without observation")
			continue
		}

		rec.Alternatives = append(rec.Alternatives, Alternative{
			Date:        candidate,
			Weather:     obs,
			Suitability: Score(category, obs),
		})
	}

	sort.SliceStable(rec.Alternatives, func(i, j int) bool {
		return rec.Alternatives[i].Suitability.Score > rec.Alternatives[j].Suitability.Score
	})

	if len(rec.Alternatives) > maxAlternatives {
		rec.Alternatives = rec.Alternatives[:maxAlternatives]
	}

	return rec, nil
}
