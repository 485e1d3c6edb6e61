package model

// JobStatus represents the status of a download job
type JobStatus string

const (
	// JobStatusPending means the job is created but not started
	JobStatusPending JobStatus = "Pending"

	// JobStatusStarting means the external downloader is being spawned
	JobStatusStarting JobStatus = "Starting"

	// JobStatusRunning means the external downloader is running
	JobStatusRunning JobStatus = "Running"

	// JobStatusStopping means a stop was requested and the child is being terminated
	JobStatusStopping JobStatus = "Stopping"

	// JobStatusStopped means the job was stopped by the user
	JobStatusStopped JobStatus = "Stopped"

	// JobStatusCompleted means the child process exited with code 0
	JobStatusCompleted JobStatus = "Completed"

	// JobStatusError means the job failed (spawn failure or non-zero exit)
	JobStatusError JobStatus = "Error"
)

// String returns the string representation of JobStatus
func (js JobStatus) String() string {
	return string(js)
}

// IsActive returns true if the job is in an active state
func (js JobStatus) IsActive() bool {
	return js == JobStatusStarting || js == JobStatusRunning || js == JobStatusStopping
}

// IsFinished returns true if the job is in a finished state (completed, stopped, or error)
func (js JobStatus) IsFinished() bool {
	return js == JobStatusCompleted || js == JobStatusStopped || js == JobStatusError
}
