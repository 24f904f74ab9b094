// Package report renders completed schedules as text tables and Gantt charts.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduler/internal/responses"
)

// WriteSchedule prints the per-process table of one algorithm with averages and
// cpu utilization.
func WriteSchedule(w io.Writer, schedule responses.ScheduleResponse) {
	_, _ = fmt.Fprintf(w, "Report for %s\n", schedule.Algorithm)

	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"PID", "Arrival", "Burst", "Priority", "Start", "Completion", "Turnaround", "Waiting"})
	for _, p := range schedule.Details {
		table.Append([]string{
			strconv.Itoa(p.ProcessId),
			strconv.Itoa(p.ArrivalTime),
			strconv.Itoa(p.BurstTime),
			strconv.Itoa(p.Priority),
			strconv.Itoa(p.StartTime),
			strconv.Itoa(p.CompletionTime),
			strconv.Itoa(p.TurnAroundTime),
			strconv.Itoa(p.WaitingTime),
		})
	}
	table.SetFooter([]string{"", "", "", "", "", "",
		fmt.Sprintf("Average %.2f", schedule.AverageTurnAroundTime),
		fmt.Sprintf("Average %.2f", schedule.AverageWaitingTime),
	})
	table.Render()

	_, _ = fmt.Fprintf(w, "Average Turnaround Time: %.2f\n", schedule.AverageTurnAroundTime)
	_, _ = fmt.Fprintf(w, "Average Waiting Time: %.2f\n", schedule.AverageWaitingTime)
	_, _ = fmt.Fprintf(w, "CPU Utilization: %.2f%%\n", schedule.CpuUtilization)
	_, _ = fmt.Fprintf(w, "Throughput: %.2f/t\n", schedule.CpuThroughput)
}

// WriteGantt prints the cpu timeline, one cell per slice with its end tick below.
func WriteGantt(w io.Writer, schedule responses.ScheduleResponse) {
	_, _ = fmt.Fprintf(w, "Gantt chart for %s\n", schedule.Algorithm)
	if len(schedule.Timeline) == 0 {
		_, _ = fmt.Fprintln(w, "(empty)")
		return
	}

	var bar, ticks strings.Builder
	bar.WriteString("|")
	ticks.WriteString(strconv.Itoa(schedule.Timeline[0].Start))
	for _, slice := range schedule.Timeline {
		label := "P" + strconv.Itoa(slice.ProcessId)
		if slice.Idle {
			label = "idle"
		}
		width := max(slice.Complete-slice.Start, len(label)+2)
		padding := width - len(label)
		bar.WriteString(strings.Repeat(" ", padding/2))
		bar.WriteString(label)
		bar.WriteString(strings.Repeat(" ", padding-padding/2))
		bar.WriteString("|")

		end := strconv.Itoa(slice.Complete)
		ticks.WriteString(strings.Repeat(" ", max(width+1-len(end), 1)))
		ticks.WriteString(end)
	}
	_, _ = fmt.Fprintln(w, bar.String())
	_, _ = fmt.Fprintln(w, ticks.String())
}

// WriteComparison prints one row per algorithm and the best policy per metric.
func WriteComparison(w io.Writer, comparison responses.ComparisonResponse) {
	_, _ = fmt.Fprintln(w, "Comparison Report")
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Algorithm", "Avg Waiting Time", "Avg Turnaround Time", "CPU Utilization (%)"})
	for _, result := range comparison.Results {
		table.Append([]string{
			result.Algorithm,
			fmt.Sprintf("%.2f", result.AverageWaitingTime),
			fmt.Sprintf("%.2f", result.AverageTurnAroundTime),
			fmt.Sprintf("%.2f", result.CpuUtilization),
		})
	}
	table.Render()

	_, _ = fmt.Fprintf(w, "Best Average Waiting Time: %s\n", comparison.BestWaitingTime)
	_, _ = fmt.Fprintf(w, "Best Average Turnaround Time: %s\n", comparison.BestTurnAroundTime)
	_, _ = fmt.Fprintf(w, "Best CPU Utilization: %s\n", comparison.BestCpuUtilization)
}
