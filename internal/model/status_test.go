package model

import "testing"

func TestJobStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   JobStatus
		expected bool
	}{
		{JobStatusPending, false},
		{JobStatusStarting, true},
		{JobStatusRunning, true},
		{JobStatusStopping, true},
		{JobStatusStopped, false},
		{JobStatusCompleted, false},
		{JobStatusError, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("JobStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestJobStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   JobStatus
		expected bool
	}{
		{JobStatusPending, false},
		{JobStatusStarting, false},
		{JobStatusRunning, false},
		{JobStatusStopping, false},
		{JobStatusStopped, true},
		{JobStatusCompleted, true},
		{JobStatusError, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("JobStatus(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestJobStatus_String(t *testing.T) {
	status := JobStatusRunning
	expected := "Running"
	result := status.String()

	if result != expected {
		t.Errorf("JobStatus.String() = %s, expected %s", result, expected)
	}
}
