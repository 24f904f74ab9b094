package workload

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/requests"
)

func TestLoader_Load(t *testing.T) {
	expect := []requests.Job{
		{ProcessId: 1, ArrivalTime: 0, BurstTime: 5, Priority: 2},
		{ProcessId: 2, ArrivalTime: 1, BurstTime: 3},
	}
	var useCases = []struct {
		description string
		name        string
		content     string
	}{
		{
			description: "yaml",
			name:        "jobs.yaml",
			content: `jobs:
  - process_id: 1
    arrival_time: 0
    burst_time: 5
    priority: 2
  - process_id: 2
    arrival_time: 1
    burst_time: 3
`,
		},
		{
			description: "json",
			name:        "jobs.json",
			content:     `{"jobs":[{"process_id":1,"arrival_time":0,"burst_time":5,"priority":2},{"process_id":2,"arrival_time":1,"burst_time":3}]}`,
		},
		{
			description: "csv with header",
			name:        "jobs.csv",
			content:     "pid,burst,arrival,priority\n1,5,0,2\n2,3,1\n",
		},
	}

	loader := New()
	for _, useCase := range useCases {
		t.Run(useCase.description, func(t *testing.T) {
			location := filepath.Join(t.TempDir(), useCase.name)
			require.NoError(t, os.WriteFile(location, []byte(useCase.content), 0644))

			request, err := loader.Load(context.Background(), location)
			require.NoError(t, err)
			assert.Equal(t, expect, request.Jobs)
		})
	}
}

func TestLoader_LoadErrors(t *testing.T) {
	dir := t.TempDir()
	loader := New()

	unsupported := filepath.Join(dir, "jobs.txt")
	require.NoError(t, os.WriteFile(unsupported, []byte("1 2 3"), 0644))
	_, err := loader.Load(context.Background(), unsupported)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	invalid := filepath.Join(dir, "jobs.csv")
	require.NoError(t, os.WriteFile(invalid, []byte("1,0,0\n"), 0644))
	_, err = loader.Load(context.Background(), invalid)
	assert.ErrorIs(t, err, requests.ErrInvalidBurstTime)

	_, err = loader.Load(context.Background(), filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestDecode_CSVErrors(t *testing.T) {
	_, err := Decode(".csv", []byte("1,2\n"))
	assert.Error(t, err)

	_, err = Decode(".csv", []byte("1,2,x\n"))
	assert.Error(t, err)
}
