package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCpu_Execute(t *testing.T) {
	cpu := NewCpu()
	first := NewProccess(1, 0, 4, 0)
	second := NewProccess(2, 7, 2, 0)

	cpu.Execute(&first)
	assert.Equal(t, 0, first.StartTime)
	assert.Equal(t, 4, first.CompletionTime)
	assert.Equal(t, 4, cpu.Clock())

	cpu.Execute(&second)
	assert.Equal(t, 7, second.StartTime, "cpu idles until arrival")
	assert.Equal(t, 9, second.CompletionTime)

	assert.Equal(t, []ScheduleTime{
		{ProcessId: 1, Start: 0, Complete: 4},
		{Start: 4, Complete: 7, Idle: true},
		{ProcessId: 2, Start: 7, Complete: 9},
	}, cpu.Timeline())
}

func TestCpu_IdleUntil(t *testing.T) {
	cpu := NewCpu()
	cpu.IdleUntil(3)
	cpu.IdleUntil(1)
	assert.Equal(t, 3, cpu.Clock())
	assert.Len(t, cpu.Timeline(), 1)
	assert.Equal(t, 3, cpu.Timeline()[0].Duration())
}

func TestProccess(t *testing.T) {
	p := NewProccess(4, 2, 5, 1)
	assert.False(t, p.Started())
	assert.Equal(t, NotStarted, p.StartTime)
	assert.Equal(t, 0, p.ResponseTime())

	p.StartTime = 6
	assert.True(t, p.Started())
	assert.Equal(t, 4, p.ResponseTime())
}

func TestClone(t *testing.T) {
	original := []Proccess{NewProccess(1, 0, 3, 0)}
	cloned := Clone(original)
	cloned[0].StartTime = 10
	assert.Equal(t, NotStarted, original[0].StartTime)
}
