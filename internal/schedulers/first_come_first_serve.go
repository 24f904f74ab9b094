package schedulers

import (
	"log/slog"

	"cpu-scheduler/internal/core"
)

// ScheduleFirstComeFirstServe runs processes back to back in arrival order.
// Equal arrivals keep their input order.
func ScheduleFirstComeFirstServe(processes []core.Proccess) Result {
	slog.Info("running fcfs algorithm", slog.Int("processes", len(processes)))
	jobs := core.Clone(processes)
	sortByArrival(jobs)

	cpu := core.NewCpu()
	for i := range jobs {
		cpu.Execute(&jobs[i])
	}
	return Result{
		Algorithm: FirstComeFirstServe,
		Processes: jobs,
		Timeline:  cpu.Timeline(),
	}
}
