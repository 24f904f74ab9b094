package schedulers

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"cpu-scheduler/internal/core"
)

var ErrUnknownAlgorithm = errors.New("unknown scheduling algorithm")

type Algorithm string

const (
	FirstComeFirstServe Algorithm = "fcfs"
	ShortestJobFirst    Algorithm = "sjf"
	Priority            Algorithm = "priority"
)

// Algorithms lists every supported policy in comparison order.
var Algorithms = []Algorithm{FirstComeFirstServe, ShortestJobFirst, Priority}

func ParseAlgorithm(name string) (Algorithm, error) {
	algorithm := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	switch algorithm {
	case FirstComeFirstServe, ShortestJobFirst, Priority:
		return algorithm, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Name is the display name used by reports.
func (a Algorithm) Name() string {
	switch a {
	case FirstComeFirstServe:
		return "FCFS"
	case ShortestJobFirst:
		return "SJF"
	case Priority:
		return "Priority"
	}
	return string(a)
}

// Result is a completed schedule: processes in completion order with start and
// completion times set, plus the cpu timeline that produced them.
type Result struct {
	Algorithm Algorithm
	Processes []core.Proccess
	Timeline  []core.ScheduleTime
}

// Schedule runs algorithm over independent copies of processes.
func Schedule(processes []core.Proccess, algorithm Algorithm) (Result, error) {
	switch algorithm {
	case FirstComeFirstServe:
		return ScheduleFirstComeFirstServe(processes), nil
	case ShortestJobFirst:
		return ScheduleShortestJobFirst(processes), nil
	case Priority:
		return SchedulePriority(processes), nil
	}
	return Result{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(algorithm))
}

func sortByArrival(processes []core.Proccess) {
	sort.SliceStable(processes, func(i, j int) bool {
		return processes[i].ArrivalTime < processes[j].ArrivalTime
	})
}
