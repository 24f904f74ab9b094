package core

import "log/slog"

// ScheduleTime is one contiguous slice of the cpu timeline, either a process
// running or the cpu idling.
type ScheduleTime struct {
	ProcessId int
	Start     int
	Complete  int
	Idle      bool
}

func (s ScheduleTime) Duration() int {
	return s.Complete - s.Start
}

// Cpu is the single simulated processor. Its occupancy is the integer clock,
// nothing runs for real.
type Cpu struct {
	clock    int
	timeline []ScheduleTime
}

func NewCpu() *Cpu {
	return &Cpu{timeline: make([]ScheduleTime, 0)}
}

func (c *Cpu) Clock() int {
	return c.clock
}

// IdleUntil moves the clock forward to tick, recording the gap as idle time.
// A tick in the past is ignored.
func (c *Cpu) IdleUntil(tick int) {
	if tick <= c.clock {
		return
	}
	c.timeline = append(c.timeline, ScheduleTime{Start: c.clock, Complete: tick, Idle: true})
	c.clock = tick
}

// Execute runs proccess to completion starting at the current clock, or at its
// arrival when the cpu is ahead of it.
func (c *Cpu) Execute(proccess *Proccess) {
	if c.clock < proccess.ArrivalTime {
		c.IdleUntil(proccess.ArrivalTime)
	}
	proccess.StartTime = c.clock
	proccess.CompletionTime = c.clock + proccess.BurstTime
	c.clock = proccess.CompletionTime

	c.timeline = append(c.timeline, ScheduleTime{
		ProcessId: proccess.ProcessId,
		Start:     proccess.StartTime,
		Complete:  proccess.CompletionTime,
	})
	slog.Debug("proccess executed",
		slog.Int("pid", proccess.ProcessId),
		slog.Int("start", proccess.StartTime),
		slog.Int("completion", proccess.CompletionTime),
	)
}

func (c *Cpu) Timeline() []ScheduleTime {
	timeline := make([]ScheduleTime, len(c.timeline))
	copy(timeline, c.timeline)
	return timeline
}
