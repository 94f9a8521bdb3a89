package trends

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Harshitha2007-coder/fitness-tracker/internal/activity"
	"github.com/Harshitha2007-coder/fitness-tracker/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=trends_test

var (
	ErrInsufficientData = errors.New("at least two weeks of data are needed for a trend")
	ErrInvalidWeeks     = errors.New("number of weeks must be positive")
)

type Direction string

const (
	DirectionImproving Direction = "improving"
	DirectionDeclining Direction = "declining"
	DirectionStable    Direction = "stable"
)

func (d Direction) String() string {
	return string(d)
}

type weeklyAggregator interface {
	Summarize(ctx context.Context, subjectID int, from, to time.Time, stepsGoal int) (*activity.Summary, error)
	DailySeries(ctx context.Context, subjectID int, from, to time.Time, metric activity.Metric) ([]activity.DailyPoint, error)
}

// Analyzer composes aggregation windows into longitudinal views. It
// does not touch storage itself, every number comes from the
// aggregator.
type Analyzer struct {
	aggregator weeklyAggregator
	now        func() time.Time
}

func NewAnalyzer(aggregator weeklyAggregator) *Analyzer {
	return &Analyzer{
		aggregator: aggregator,
		now:        time.Now,
	}
}

// WeeklyBreakdown returns per-week aggregates over consecutive 7-day
// windows, the last one ending today, oldest week first.
func (a *Analyzer) WeeklyBreakdown(ctx context.Context, subjectID, numberOfWeeks int) (_ []activity.Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.trends.weeklybreakdown")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("subject_id", subjectID))
	span.SetAttributes(attribute.Int("weeks", numberOfWeeks))

	if numberOfWeeks <= 0 {
		return nil, ErrInvalidWeeks
	}

	today := activity.DayOf(a.now())
	weeks := make([]activity.Summary, 0, numberOfWeeks)
	for i := numberOfWeeks - 1; i >= 0; i-- {
		to := today.AddDate(0, 0, -7*i)
		from := to.AddDate(0, 0, -6)

		summary, err := a.aggregator.Summarize(ctx, subjectID, from, to, 0)
		if err != nil {
			return nil, fmt.Errorf("summarize week [%s, %s]: %w",
				from.Format("2006-01-02"), to.Format("2006-01-02"), err)
		}
		weeks = append(weeks, *summary)
	}

	return weeks, nil
}

// TrendDirection compares the first and last week of the breakdown by
// the given metric. More is improving, less is declining, equal is
// stable. Fewer than two weeks is an explicit insufficient data error,
// never a guess.
func (a *Analyzer) TrendDirection(ctx context.Context, subjectID, numberOfWeeks int, metric activity.Metric) (_ Direction, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.trends.direction")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if numberOfWeeks < 2 {
		return "", ErrInsufficientData
	}
	if !metric.IsValid() {
		return "", activity.ErrUnknownMetric
	}

	weeks, err := a.WeeklyBreakdown(ctx, subjectID, numberOfWeeks)
	if err != nil {
		return "", err
	}

	first := weekValue(weeks[0], metric)
	last := weekValue(weeks[len(weeks)-1], metric)

	switch {
	case last > first:
		return DirectionImproving, nil
	case last < first:
		return DirectionDeclining, nil
	default:
		return DirectionStable, nil
	}
}

// BestDay returns the day with the highest metric value in [from, to].
// Ties go to the earliest date.
func (a *Analyzer) BestDay(ctx context.Context, subjectID int, from, to time.Time, metric activity.Metric) (_ *activity.DailyPoint, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.trends.bestday")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return a.extremeDay(ctx, subjectID, from, to, metric, func(candidate, best int) bool {
		return candidate > best
	})
}

// WorstDay returns the day with the lowest metric value in [from, to].
// Ties go to the earliest date.
func (a *Analyzer) WorstDay(ctx context.Context, subjectID int, from, to time.Time, metric activity.Metric) (_ *activity.DailyPoint, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.trends.worstday")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return a.extremeDay(ctx, subjectID, from, to, metric, func(candidate, worst int) bool {
		return candidate < worst
	})
}

func (a *Analyzer) extremeDay(
	ctx context.Context,
	subjectID int,
	from, to time.Time,
	metric activity.Metric,
	better func(candidate, current int) bool,
) (*activity.DailyPoint, error) {
	series, err := a.aggregator.DailySeries(ctx, subjectID, from, to, metric)
	if err != nil {
		return nil, fmt.Errorf("daily series: %w", err)
	}
	if len(series) == 0 {
		return nil, activity.ErrInvalidRange
	}

	// the series is ordered oldest first, so a strict comparison
	// keeps the earliest date on ties
	extreme := series[0]
	for _, point := range series[1:] {
		if better(point.Value, extreme.Value) {
			extreme = point
		}
	}
	return &extreme, nil
}

func weekValue(week activity.Summary, metric activity.Metric) int {
	switch metric {
	case activity.MetricCaloriesBurned:
		return week.TotalCaloriesBurned
	case activity.MetricCaloriesConsumed:
		return week.TotalCaloriesConsumed
	default:
		return week.TotalSteps
	}
}
