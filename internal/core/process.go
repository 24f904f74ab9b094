package core

// NotStarted is the StartTime of a process the cpu has not dispatched yet.
const NotStarted = -1

// Proccess is one simulated task. ArrivalTime, BurstTime and Priority are inputs,
// the remaining fields are written by a scheduler (StartTime, CompletionTime) and
// by the metrics calculator (TurnAroundTime, WaitingTime).
type Proccess struct {
	ProcessId   int
	ArrivalTime int
	BurstTime   int
	// Priority lower value means higher priority
	Priority int

	StartTime      int
	CompletionTime int
	TurnAroundTime int
	WaitingTime    int
}

func NewProccess(processId, arrivalTime, burstTime, priority int) Proccess {
	return Proccess{
		ProcessId:   processId,
		ArrivalTime: arrivalTime,
		BurstTime:   burstTime,
		Priority:    priority,
		StartTime:   NotStarted,
	}
}

func (p *Proccess) Started() bool {
	return p.StartTime != NotStarted
}

// ResponseTime is the delay between arrival and first dispatch.
func (p *Proccess) ResponseTime() int {
	if !p.Started() {
		return 0
	}
	return p.StartTime - p.ArrivalTime
}

// Clone returns independent copies so every run owns its records.
func Clone(processes []Proccess) []Proccess {
	cloned := make([]Proccess, len(processes))
	copy(cloned, processes)
	return cloned
}
