package util

import "cpu-scheduler/internal/core"

func CalculateAverage(proccessDetails []core.Proccess) (averageWaitingTime, averageResponseTime, averageTimeAroundTime float64) {
	if len(proccessDetails) == 0 {
		return
	}
	var waitingTimeSum float64
	var responseTimeSum float64
	var turnAroundTimeSum float64

	for i := range proccessDetails {
		waitingTimeSum += float64(proccessDetails[i].WaitingTime)
		responseTimeSum += float64(proccessDetails[i].ResponseTime())
		turnAroundTimeSum += float64(proccessDetails[i].TurnAroundTime)
	}

	proccessCount := float64(len(proccessDetails))

	averageWaitingTime = waitingTimeSum / proccessCount
	averageResponseTime = responseTimeSum / proccessCount
	averageTimeAroundTime = turnAroundTimeSum / proccessCount
	return
}
