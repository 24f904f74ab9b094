package schedulers

import (
	"log/slog"

	"cpu-scheduler/internal/core"
)

// ScheduleShortestJobFirst always dispatches the ready process with the smallest
// burst time. Long jobs can starve behind a stream of short arrivals.
func ScheduleShortestJobFirst(processes []core.Proccess) Result {
	slog.Info("running sjf algorithm", slog.Int("processes", len(processes)))
	completed, timeline := scheduleGreedy(processes, burstTimeKey)
	return Result{
		Algorithm: ShortestJobFirst,
		Processes: completed,
		Timeline:  timeline,
	}
}

func burstTimeKey(proccess *core.Proccess) int {
	return proccess.BurstTime
}
