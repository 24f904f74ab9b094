package schedulers

import (
	"context"
	"log/slog"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/tracing"
	"cpu-scheduler/internal/util"
)

// CalculateMetrics writes turnaround and waiting times on every completed process
// and returns the cpu utilization of the schedule as a percentage. The whole
// schedule must be passed, the span is taken from its extremes. An empty schedule
// or a span of zero ticks has zero utilization.
func CalculateMetrics(processes []core.Proccess) float64 {
	if len(processes) == 0 {
		return 0
	}
	totalBurstTime := 0
	for i := range processes {
		processes[i].TurnAroundTime = processes[i].CompletionTime - processes[i].ArrivalTime
		processes[i].WaitingTime = processes[i].TurnAroundTime - processes[i].BurstTime
		totalBurstTime += processes[i].BurstTime
	}

	totalTime := scheduleSpan(processes)
	if totalTime <= 0 {
		return 0
	}
	return float64(totalBurstTime) / float64(totalTime) * 100
}

// scheduleSpan is max completion minus min arrival.
func scheduleSpan(processes []core.Proccess) int {
	if len(processes) == 0 {
		return 0
	}
	maxCompletion, minArrival := processes[0].CompletionTime, processes[0].ArrivalTime
	for _, proccess := range processes[1:] {
		maxCompletion = max(maxCompletion, proccess.CompletionTime)
		minArrival = min(minArrival, proccess.ArrivalTime)
	}
	return maxCompletion - minArrival
}

// Simulate schedules processes with algorithm and returns the completed,
// metric-populated schedule.
func Simulate(ctx context.Context, processes []core.Proccess, algorithm Algorithm) (response responses.ScheduleResponse, err error) {
	_, span := tracing.StartSpan(ctx, "schedule."+string(algorithm))
	defer func() { tracing.EndSpan(span, err) }()

	result, err := Schedule(processes, algorithm)
	if err != nil {
		return response, err
	}
	utilization := CalculateMetrics(result.Processes)
	response = generateResponse(result, utilization)

	span.SetInt("processes", len(processes)).
		SetFloat("cpu_utilization", response.CpuUtilization).
		SetFloat("average_waiting_time", response.AverageWaitingTime)
	slog.Info("schedule completed",
		slog.String("algorithm", algorithm.Name()),
		slog.Float64("cpu_utilization", utilization),
		slog.Float64("average_waiting_time", response.AverageWaitingTime),
	)
	return response, nil
}

func generateResponse(result Result, utilization float64) responses.ScheduleResponse {
	averageWaitingTime, averageResponseTime, averageTimeAroundTime := util.CalculateAverage(result.Processes)

	totalTime := scheduleSpan(result.Processes)
	busyTime := 0
	for _, proccess := range result.Processes {
		busyTime += proccess.BurstTime
	}
	var throughput float64
	if totalTime > 0 {
		throughput = float64(len(result.Processes)) / float64(totalTime)
	}

	return responses.ScheduleResponse{
		Algorithm:             result.Algorithm.Name(),
		TotalTime:             totalTime,
		IdleTime:              max(totalTime-busyTime, 0),
		CpuUtilization:        utilization,
		CpuThroughput:         throughput,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTimeAroundTime,
		Details:               generateProcessDetails(result.Processes),
		Timeline:              generateTimeline(result.Timeline),
	}
}

func generateProcessDetails(processes []core.Proccess) []responses.ProcessResponse {
	details := make([]responses.ProcessResponse, 0, len(processes))
	for i := range processes {
		details = append(details, responses.ProcessResponse{
			ProcessId:      processes[i].ProcessId,
			ArrivalTime:    processes[i].ArrivalTime,
			BurstTime:      processes[i].BurstTime,
			Priority:       processes[i].Priority,
			StartTime:      processes[i].StartTime,
			CompletionTime: processes[i].CompletionTime,
			TurnAroundTime: processes[i].TurnAroundTime,
			WaitingTime:    processes[i].WaitingTime,
			ResponseTime:   processes[i].ResponseTime(),
		})
	}
	return details
}

func generateTimeline(timeline []core.ScheduleTime) []responses.TimelineResponse {
	slices := make([]responses.TimelineResponse, 0, len(timeline))
	for _, s := range timeline {
		slices = append(slices, responses.TimelineResponse{
			ProcessId: s.ProcessId,
			Start:     s.Start,
			Complete:  s.Complete,
			Idle:      s.Idle,
		})
	}
	return slices
}
