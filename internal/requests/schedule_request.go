package requests

import (
	"errors"
	"fmt"

	"cpu-scheduler/internal/core"
)

var (
	ErrNoJobs             = errors.New("no jobs to schedule")
	ErrInvalidBurstTime   = errors.New("burst time must be positive")
	ErrInvalidArrivalTime = errors.New("arrival time must not be negative")
	ErrDuplicateProcessId = errors.New("duplicate process id")
)

type Job struct {
	ProcessId   int `json:"process_id" yaml:"process_id"`
	ArrivalTime int `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int `json:"burst_time" yaml:"burst_time"`
	Priority    int `json:"priority" yaml:"priority"`
}

type ScheduleRequests struct {
	Jobs []Job `json:"jobs" yaml:"jobs"`
	// Algorithms restricts a comparison run, empty means all.
	Algorithms []string `json:"algorithms,omitempty" yaml:"algorithms,omitempty"`
}

// Validate rejects job sets the schedulers would silently mis-simulate.
func (r *ScheduleRequests) Validate() error {
	if len(r.Jobs) == 0 {
		return ErrNoJobs
	}
	seen := make(map[int]bool, len(r.Jobs))
	for _, job := range r.Jobs {
		if job.BurstTime <= 0 {
			return fmt.Errorf("%w: pid %d has burst time %d", ErrInvalidBurstTime, job.ProcessId, job.BurstTime)
		}
		if job.ArrivalTime < 0 {
			return fmt.Errorf("%w: pid %d has arrival time %d", ErrInvalidArrivalTime, job.ProcessId, job.ArrivalTime)
		}
		if seen[job.ProcessId] {
			return fmt.Errorf("%w: pid %d", ErrDuplicateProcessId, job.ProcessId)
		}
		seen[job.ProcessId] = true
	}
	return nil
}

func (r *ScheduleRequests) Processes() []core.Proccess {
	processes := make([]core.Proccess, 0, len(r.Jobs))
	for _, job := range r.Jobs {
		processes = append(processes, core.NewProccess(job.ProcessId, job.ArrivalTime, job.BurstTime, job.Priority))
	}
	return processes
}
