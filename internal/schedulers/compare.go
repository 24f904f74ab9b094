package schedulers

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/tracing"
)

// Compare runs every algorithm on the same job set and picks the best policy per
// metric. With no algorithms all of them are compared. Ties go to the earlier
// algorithm.
func Compare(ctx context.Context, processes []core.Proccess, algorithms ...Algorithm) (comparison responses.ComparisonResponse, err error) {
	if len(algorithms) == 0 {
		algorithms = Algorithms
	}
	comparison.RunId = uuid.New().String()

	ctx, span := tracing.StartSpan(ctx, "compare")
	span.SetString("run_id", comparison.RunId).SetInt("algorithms", len(algorithms))
	defer func() { tracing.EndSpan(span, err) }()

	comparison.Results = make([]responses.ScheduleResponse, 0, len(algorithms))
	for _, algorithm := range algorithms {
		response, err := Simulate(ctx, processes, algorithm)
		if err != nil {
			return comparison, err
		}
		comparison.Results = append(comparison.Results, response)
	}

	best := comparison.Results[0]
	bestTurnAround := comparison.Results[0]
	bestUtilization := comparison.Results[0]
	for _, result := range comparison.Results[1:] {
		if result.AverageWaitingTime < best.AverageWaitingTime {
			best = result
		}
		if result.AverageTurnAroundTime < bestTurnAround.AverageTurnAroundTime {
			bestTurnAround = result
		}
		if result.CpuUtilization > bestUtilization.CpuUtilization {
			bestUtilization = result
		}
	}
	comparison.BestWaitingTime = best.Algorithm
	comparison.BestTurnAroundTime = bestTurnAround.Algorithm
	comparison.BestCpuUtilization = bestUtilization.Algorithm

	slog.Info("comparison completed",
		slog.String("run_id", comparison.RunId),
		slog.String("best_waiting_time", comparison.BestWaitingTime),
	)
	return comparison, nil
}
