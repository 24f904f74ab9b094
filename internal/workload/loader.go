// Package workload loads job sets from files or any URL supported by afs.
package workload

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"

	"cpu-scheduler/internal/requests"
)

var ErrUnsupportedFormat = errors.New("unsupported workload format")

type Loader struct {
	fs afs.Service
}

func New() *Loader {
	return &Loader{fs: afs.New()}
}

// Load downloads URL and decodes it by extension (.yaml, .yml, .json, .csv).
// The decoded job set is validated.
func (l *Loader) Load(ctx context.Context, URL string) (*requests.ScheduleRequests, error) {
	data, err := l.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to download workload %s: %w", URL, err)
	}
	request, err := Decode(path.Ext(URL), data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode workload %s: %w", URL, err)
	}
	if err := request.Validate(); err != nil {
		return nil, fmt.Errorf("invalid workload %s: %w", URL, err)
	}
	return request, nil
}

func Decode(ext string, data []byte) (*requests.ScheduleRequests, error) {
	request := &requests.ScheduleRequests{}
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, request); err != nil {
			return nil, err
		}
	case ".json":
		if err := json.Unmarshal(data, request); err != nil {
			return nil, err
		}
	case ".csv":
		jobs, err := decodeCSV(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		request.Jobs = jobs
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return request, nil
}

// decodeCSV reads rows of pid,burst,arrival[,priority]. A leading header row is
// skipped.
func decodeCSV(r io.Reader) ([]requests.Job, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV", err)
	}
	if len(rows) > 0 && isHeader(rows[0]) {
		rows = rows[1:]
	}

	jobs := make([]requests.Job, 0, len(rows))
	for i, row := range rows {
		if len(row) < 3 || len(row) > 4 {
			return nil, fmt.Errorf("row %d: expected 3 or 4 fields, got %d", i+1, len(row))
		}
		values := make([]int, len(row))
		for j, field := range row {
			if values[j], err = strconv.Atoi(strings.TrimSpace(field)); err != nil {
				return nil, fmt.Errorf("row %d: %w", i+1, err)
			}
		}
		job := requests.Job{
			ProcessId:   values[0],
			BurstTime:   values[1],
			ArrivalTime: values[2],
		}
		if len(values) == 4 {
			job.Priority = values[3]
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func isHeader(row []string) bool {
	if len(row) == 0 {
		return false
	}
	_, err := strconv.Atoi(strings.TrimSpace(row[0]))
	return err != nil
}
