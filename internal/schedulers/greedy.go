package schedulers

import (
	"sort"

	"cpu-scheduler/internal/core"
)

// selectionKey ranks ready processes, the lowest value runs next.
type selectionKey func(proccess *core.Proccess) int

// scheduleGreedy is the non-preemptive admit-then-select loop shared by sjf and
// priority. Ready processes with an equal key keep their admission order.
func scheduleGreedy(processes []core.Proccess, key selectionKey) ([]core.Proccess, []core.ScheduleTime) {
	incoming := core.Clone(processes)
	sortByArrival(incoming)

	cpu := core.NewCpu()
	readyQueue := make([]core.Proccess, 0, len(incoming))
	completed := make([]core.Proccess, 0, len(incoming))

	for len(incoming) > 0 || len(readyQueue) > 0 {
		for len(incoming) > 0 && incoming[0].ArrivalTime <= cpu.Clock() {
			readyQueue = append(readyQueue, incoming[0])
			incoming = incoming[1:]
		}

		if len(readyQueue) == 0 {
			// nothing ready, jump to the next arrival
			cpu.IdleUntil(incoming[0].ArrivalTime)
			continue
		}

		sort.SliceStable(readyQueue, func(i, j int) bool {
			return key(&readyQueue[i]) < key(&readyQueue[j])
		})
		next := readyQueue[0]
		readyQueue = readyQueue[1:]

		cpu.Execute(&next)
		completed = append(completed, next)
	}
	return completed, cpu.Timeline()
}
