package download

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/hfget/hf-model-downloader/internal/model"
	"github.com/hfget/hf-model-downloader/internal/platform"
)

// Connection count bounds for aria2c -x/-s
const (
	MinConnections = 1
	MaxConnections = 9
)

// StopGracePeriod is how long Stop waits for the child to exit after a
// terminate signal before killing it.
const StopGracePeriod = 5 * time.Second

// maxLineBytes caps a single captured output line. aria2c redraws progress in
// place, so a burst between newlines can run far past bufio's default.
const maxLineBytes = 1024 * 1024

// Service handles download operations. At most one job is active at a time;
// the child process handle is owned exclusively by the service for the
// duration of the job.
type Service struct {
	mu            sync.Mutex
	job           *model.DownloadJob
	cmd           *exec.Cmd
	waitDone      chan struct{}
	stopRequested bool

	downloadDir string
	connections int

	locate func() (string, error)

	onUpdate func(*model.DownloadJob) // callback for UI state updates
	onLine   func(string)             // callback per captured output line
}

// NewService creates a new download service
func NewService(downloadDir string, connections int) *Service {
	return &Service{
		downloadDir: downloadDir,
		connections: clampConnections(connections),
		locate:      platform.LocateAria2,
	}
}

// SetUpdateCallback sets the callback function for job state updates
func (s *Service) SetUpdateCallback(callback func(*model.DownloadJob)) {
	s.onUpdate = callback
}

// SetLineCallback sets the callback invoked once per captured output line.
// Lines are delivered in the order the child emitted them.
func (s *Service) SetLineCallback(callback func(string)) {
	s.onLine = callback
}

// SetDownloadDirectory sets the base download directory
func (s *Service) SetDownloadDirectory(dir string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.downloadDir = dir
}

// SetConnections sets the aria2c connection count, clamped to 1..9
func (s *Service) SetConnections(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connections = clampConnections(n)
}

// CurrentJob returns a snapshot of the in-flight or last finished job, if any
func (s *Service) CurrentJob() (*model.DownloadJob, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.job == nil {
		return nil, false
	}
	return snapshotJob(s.job), true
}

// IsRunning reports whether a job is active
func (s *Service) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.job != nil && s.job.Status.IsActive()
}

// Start validates the URL, resolves the aria2c binary, and spawns exactly one
// child process for the submitted file. It returns as soon as the process is
// started; output streaming and exit reporting happen in the background.
//
// No process is spawned for an invalid URL, a missing binary, or while another
// job is active.
func (s *Service) Start(rawURL string) (*model.DownloadJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.job != nil && s.job.Status.IsActive() {
		return nil, ErrJobActive
	}

	if rawURL == "" {
		return nil, ErrEmptyURL
	}

	files, err := platform.ParseModelURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	file := files[0]

	binary, err := s.locate()
	if err != nil {
		return nil, err
	}

	job := &model.DownloadJob{
		ID:          "job-" + uuid.NewString(),
		URL:         rawURL,
		File:        file,
		Dir:         s.downloadDir,
		Connections: s.connections,
		Status:      model.JobStatusStarting,
		StartedAt:   time.Now(),
	}

	outputDir := job.OutputDir()
	if err := platform.CreateDirectoryIfNotExists(outputDir); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	cmd := exec.Command(binary, buildArgs(file, outputDir, s.connections)...)

	// Combined stdout+stderr stream, read line by line in the background
	pr, pw := io.Pipe()
	cmd.Stdout = pw
	cmd.Stderr = pw

	if err := cmd.Start(); err != nil {
		pw.Close()
		pr.Close()
		return nil, fmt.Errorf("failed to start aria2c: %w", err)
	}

	s.job = job
	s.cmd = cmd
	s.stopRequested = false
	s.waitDone = make(chan struct{})

	job.Status = model.JobStatusRunning
	snapshot := snapshotJob(job)

	s.notifyLine(fmt.Sprintf("Running aria2c for: %s", file.Filename()))
	s.notifyUpdate(snapshot)

	log.Printf("Spawned aria2c pid=%d for %s", cmd.Process.Pid, file.Filename())

	readerDone := make(chan struct{})
	go s.readLines(pr, readerDone)
	go s.waitForExit(job, cmd, pw, readerDone)

	return snapshot, nil
}

// Stop requests termination of the running child process. The child gets
// StopGracePeriod to exit after a terminate signal, then it is killed.
func (s *Service) Stop() error {
	s.mu.Lock()
	if s.job == nil || !s.job.Status.IsActive() {
		s.mu.Unlock()
		return ErrNoActiveJob
	}

	job := s.job
	cmd := s.cmd
	waitDone := s.waitDone
	s.stopRequested = true
	job.Status = model.JobStatusStopping
	snapshot := snapshotJob(job)
	s.mu.Unlock()

	s.notifyLine("Stop signal received. Terminating process...")
	s.notifyUpdate(snapshot)

	go func() {
		if err := terminate(cmd.Process); err != nil {
			log.Printf("Terminate failed, killing pid=%d: %v", cmd.Process.Pid, err)
			_ = cmd.Process.Kill()
			return
		}

		select {
		case <-waitDone:
		case <-time.After(StopGracePeriod):
			s.notifyLine("Process did not exit in time; killing it now...")
			_ = cmd.Process.Kill()
		}
	}()

	return nil
}

// readLines streams the combined child output to the line callback
func (s *Service) readLines(r io.Reader, done chan<- struct{}) {
	defer close(done)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)
	scanner.Split(scanConsoleLines)
	for scanner.Scan() {
		s.notifyLine(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		log.Printf("Output stream read error: %v", err)
		// The child must never block on a full pipe once scanning stops
		_, _ = io.Copy(io.Discard, r)
	}
}

// scanConsoleLines is a bufio.SplitFunc treating \n, \r and \r\n as line
// terminators. aria2c redraws its progress line with bare \r.
func scanConsoleLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		advance := i + 1
		if data[i] == '\r' {
			if advance == len(data) && !atEOF {
				// Cannot yet tell a bare \r from \r\n
				return 0, nil, nil
			}
			if advance < len(data) && data[advance] == '\n' {
				advance++
			}
		}
		return advance, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// waitForExit waits for the child to terminate and finalizes the job
func (s *Service) waitForExit(job *model.DownloadJob, cmd *exec.Cmd, pw *io.PipeWriter, readerDone <-chan struct{}) {
	waitErr := cmd.Wait()
	pw.Close()

	// All emitted lines must reach the log before the summary line
	<-readerDone

	s.mu.Lock()
	exitCode := 0
	if waitErr != nil {
		if exitErr, ok := waitErr.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			exitCode = -1
		}
	}

	job.ExitCode = exitCode
	job.FinishedAt = time.Now()

	switch {
	case s.stopRequested:
		job.Status = model.JobStatusStopped
	case waitErr == nil:
		job.Status = model.JobStatusCompleted
	default:
		job.Status = model.JobStatusError
		if exitCode >= 0 {
			job.LastError = (&ExitError{Code: exitCode}).Error()
		} else {
			job.LastError = waitErr.Error()
		}
	}

	s.cmd = nil
	s.stopRequested = false
	snapshot := snapshotJob(job)
	close(s.waitDone)
	s.mu.Unlock()

	log.Printf("aria2c finished: status=%s exit=%d", snapshot.Status, exitCode)

	// Exactly one terminal summary line per job
	if summary := snapshot.Summary(); summary != "" {
		s.notifyLine(summary)
	}
	s.notifyUpdate(snapshot)
}

// snapshotJob copies the job for delivery outside the lock; callbacks never
// observe later transitions on the live instance. File is immutable after
// Start and stays shared.
func snapshotJob(job *model.DownloadJob) *model.DownloadJob {
	c := *job
	return &c
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(job *model.DownloadJob) {
	if s.onUpdate != nil {
		s.onUpdate(job)
	}
}

// notifyLine calls the line callback if set
func (s *Service) notifyLine(line string) {
	if s.onLine != nil {
		s.onLine(line)
	}
}

// buildArgs constructs the aria2c argument list for one file
func buildArgs(file *model.ModelFile, outputDir string, connections int) []string {
	n := strconv.Itoa(connections)
	return []string{
		"-x", n,
		"-s", n,
		file.DownloadURL,
		"--file-allocation=trunc",
		"-d", outputDir,
		"-o", file.Filename(),
	}
}

// terminate asks the child to exit. Windows has no SIGTERM, so the process is
// killed outright there.
func terminate(p *os.Process) error {
	if runtime.GOOS == platform.OSWindows {
		return p.Kill()
	}
	return p.Signal(syscall.SIGTERM)
}

// clampConnections bounds the connection count to the supported range
func clampConnections(n int) int {
	if n < MinConnections {
		return MinConnections
	}
	if n > MaxConnections {
		return MaxConnections
	}
	return n
}
