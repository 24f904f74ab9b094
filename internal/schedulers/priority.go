package schedulers

import (
	"log/slog"

	"cpu-scheduler/internal/core"
)

// SchedulePriority dispatches the ready process with the lowest priority value.
func SchedulePriority(processes []core.Proccess) Result {
	slog.Info("running priority algorithm", slog.Int("processes", len(processes)))
	completed, timeline := scheduleGreedy(processes, priorityKey)
	return Result{
		Algorithm: Priority,
		Processes: completed,
		Timeline:  timeline,
	}
}

func priorityKey(proccess *core.Proccess) int {
	return proccess.Priority
}
