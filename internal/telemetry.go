package internal

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var meter = otel.Meter("github.com/statekit/reactive")

var (
	// writesApplied counts source writes that passed the equality gate and
	// propagated. Gated no-op writes are not recorded.
	writesApplied metric.Int64Counter
	// recomputes counts successful computed re-evaluations.
	recomputes metric.Int64Counter
	// effectRuns counts successful effect dispatches, including the
	// immediate run on creation.
	effectRuns metric.Int64Counter
	// flushes counts completed flush cycles.
	flushes metric.Int64Counter
	// cyclesDetected counts reads that hit a dependency cycle.
	cyclesDetected metric.Int64Counter
)

func init() {
	var err error

	writesApplied, err = meter.Int64Counter(
		"reactive.writes",
		metric.WithDescription("The number of source writes that changed the value and propagated."),
	)
	if err != nil {
		panic("reactive: failed to init 'reactive.writes' instrument")
	}

	recomputes, err = meter.Int64Counter(
		"reactive.recomputes",
		metric.WithDescription("The number of successful computed re-evaluations."),
	)
	if err != nil {
		panic("reactive: failed to init 'reactive.recomputes' instrument")
	}

	effectRuns, err = meter.Int64Counter(
		"reactive.effect.runs",
		metric.WithDescription("The number of successful effect dispatches."),
	)
	if err != nil {
		panic("reactive: failed to init 'reactive.effect.runs' instrument")
	}

	flushes, err = meter.Int64Counter(
		"reactive.flushes",
		metric.WithDescription("The number of completed flush cycles."),
	)
	if err != nil {
		panic("reactive: failed to init 'reactive.flushes' instrument")
	}

	cyclesDetected, err = meter.Int64Counter(
		"reactive.cycles",
		metric.WithDescription("The number of reads that detected a dependency cycle."),
	)
	if err != nil {
		panic("reactive: failed to init 'reactive.cycles' instrument")
	}
}

func recordWrite()     { writesApplied.Add(context.Background(), 1) }
func recordRecompute() { recomputes.Add(context.Background(), 1) }
func recordEffectRun() { effectRuns.Add(context.Background(), 1) }
func recordFlush()     { flushes.Add(context.Background(), 1) }
func recordCycle()     { cyclesDetected.Add(context.Background(), 1) }
