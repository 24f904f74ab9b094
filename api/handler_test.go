package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/responses"
)

const sampleBody = `{"jobs":[
	{"process_id":1,"arrival_time":0,"burst_time":5,"priority":2},
	{"process_id":2,"arrival_time":1,"burst_time":3,"priority":1},
	{"process_id":3,"arrival_time":2,"burst_time":8,"priority":3}]}`


func post(t *testing.T, path, body string) (int, []byte) {
	app := NewApp(NewSchedulerHandlerImpl(&config.SchedulerConfig{
		Port:       9095,
		Algorithms: []string{"fcfs", "sjf", "priority"},
	}))
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func TestSchedulerHandler_Schedule(t *testing.T) {
	var useCases = []struct {
		description string
		path        string
		algorithm   string
		averageWait float64
	}{
		{description: "fcfs", path: "/api/v1/fcfs", algorithm: "FCFS", averageWait: 10.0 / 3.0},
		{description: "sjf", path: "/api/v1/sjf", algorithm: "SJF", averageWait: 10.0 / 3.0},
		{description: "priority", path: "/api/v1/priority", algorithm: "Priority", averageWait: 10.0 / 3.0},
	}

	for _, useCase := range useCases {
		t.Run(useCase.description, func(t *testing.T) {
			status, data := post(t, useCase.path, sampleBody)
			require.Equal(t, http.StatusOK, status, string(data))

			var response responses.ScheduleResponse
			require.NoError(t, json.Unmarshal(data, &response))
			assert.Equal(t, useCase.algorithm, response.Algorithm)
			assert.InDelta(t, useCase.averageWait, response.AverageWaitingTime, 1e-9)
			assert.Len(t, response.Details, 3)
			assert.InDelta(t, 100.0, response.CpuUtilization, 1e-9)
		})
	}
}

func TestSchedulerHandler_AllAlgorithms(t *testing.T) {
	status, data := post(t, "/api/v1/all", sampleBody)
	require.Equal(t, http.StatusOK, status, string(data))

	var response responses.ComparisonResponse
	require.NoError(t, json.Unmarshal(data, &response))
	assert.NotEmpty(t, response.RunId)
	require.Len(t, response.Results, 3)
	assert.Equal(t, "FCFS", response.BestWaitingTime)

	body := strings.Replace(sampleBody, `"jobs"`, `"algorithms":["priority"],"jobs"`, 1)
	status, data = post(t, "/api/v1/all", body)
	require.Equal(t, http.StatusOK, status, string(data))
	require.NoError(t, json.Unmarshal(data, &response))
	require.Len(t, response.Results, 1)
	assert.Equal(t, "Priority", response.Results[0].Algorithm)
}

func TestSchedulerHandler_BadRequest(t *testing.T) {
	var useCases = []struct {
		description string
		path        string
		body        string
		expectError string
	}{
		{description: "malformed", path: "/api/v1/fcfs", body: `{"jobs":`, expectError: "invalid request format"},
		{description: "no jobs", path: "/api/v1/sjf", body: `{"jobs":[]}`, expectError: "no jobs to schedule"},
		{description: "bad burst", path: "/api/v1/priority", body: `{"jobs":[{"process_id":1,"burst_time":0}]}`, expectError: "burst time must be positive"},
		{description: "unknown algorithm", path: "/api/v1/all", body: `{"algorithms":["rr"],"jobs":[{"process_id":1,"burst_time":2}]}`, expectError: "unknown scheduling algorithm"},
	}

	for _, useCase := range useCases {
		t.Run(useCase.description, func(t *testing.T) {
			status, data := post(t, useCase.path, useCase.body)
			assert.Equal(t, http.StatusBadRequest, status)

			var body map[string]string
			require.NoError(t, json.Unmarshal(data, &body))
			assert.Contains(t, body["error"], useCase.expectError)
		})
	}
}
