package download

// Package download implements the download pipeline built on top of the
// external aria2c executable. It owns the single in-flight job, spawns the
// child process, streams its combined output line by line to the UI, and
// reports the exit status.
