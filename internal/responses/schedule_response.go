package responses

type ProcessResponse struct {
	ProcessId      int `json:"process_id"`
	ArrivalTime    int `json:"arrival_time"`
	BurstTime      int `json:"burst_time"`
	Priority       int `json:"priority"`
	StartTime      int `json:"start_time"`
	CompletionTime int `json:"completion_time"`
	TurnAroundTime int `json:"turn_around_time"`
	WaitingTime    int `json:"waiting_time"`
	ResponseTime   int `json:"response_time"`
}

type TimelineResponse struct {
	ProcessId int  `json:"process_id"`
	Start     int  `json:"start"`
	Complete  int  `json:"complete"`
	Idle      bool `json:"idle,omitempty"`
}

type ScheduleResponse struct {
	Algorithm             string             `json:"algorithm"`
	TotalTime             int                `json:"total_time"`
	IdleTime              int                `json:"idle_time"`
	AverageWaitingTime    float64            `json:"average_waiting_time"`
	AverageResponseTime   float64            `json:"average_response_time"`
	AverageTurnAroundTime float64            `json:"average_turn_around_time"`
	CpuUtilization        float64            `json:"cpu_utilization"`
	CpuThroughput         float64            `json:"cpu_throughput"`
	Details               []ProcessResponse  `json:"details"`
	Timeline              []TimelineResponse `json:"timeline"`
}

// ComparisonResponse holds the results of several algorithms run on one job set.
type ComparisonResponse struct {
	RunId              string             `json:"run_id"`
	Results            []ScheduleResponse `json:"results"`
	BestWaitingTime    string             `json:"best_waiting_time"`
	BestTurnAroundTime string             `json:"best_turn_around_time"`
	BestCpuUtilization string             `json:"best_cpu_utilization"`
}
