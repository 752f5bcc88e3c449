package pidfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// PIDFile guards against a second server instance being started with
// the same pidfile. An empty path disables it.
type PIDFile struct {
	path string
	file *os.File
}

func New(path string) *PIDFile {
	return &PIDFile{
		path: path,
	}
}

func (f *PIDFile) Acquire() error {
	if f.path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return errors.Wrapf(err, "failed to create pid file directory %q", filepath.Dir(f.path))
	}

	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if os.IsExist(err) {
		if err := f.removeIfStale(); err != nil {
			return err
		}

		return f.Acquire()
	} else if err != nil {
		return errors.Wrapf(err, "failed to open pid file %q", f.path)
	}

	if _, err := fmt.Fprintf(file, "%d", os.Getpid()); err != nil {
		_ = file.Close()
		return errors.Wrapf(err, "failed to write pid to pid file %q", f.path)
	}

	log.Info("acquired pid file ", f.path)

	f.file = file
	return nil
}

// removeIfStale deletes an existing pidfile when the process it names
// is no longer alive.
func (f *PIDFile) removeIfStale() error {
	contents, err := os.ReadFile(f.path)
	if err != nil {
		return errors.Wrapf(err, "failed to read pid file %q", f.path)
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(contents)))
	if err != nil {
		return errors.Wrapf(err, "failed to parse pid file %q", f.path)
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		return errors.Wrapf(err, "failed to find process with pid %d", pid)
	}

	if err := process.Signal(syscall.Signal(0)); err == nil {
		return fmt.Errorf("pid file %q already exists and contains the PID of a running process", f.path)
	}

	log.Info("existing pid file contains the PID of a non-running process; removing it")

	if err := os.Remove(f.path); err != nil {
		return errors.Wrapf(err, "failed to remove pid file %q", f.path)
	}

	return nil
}

func (f *PIDFile) Release() error {
	if f.path == "" {
		return nil
	}

	if err := f.file.Close(); err != nil {
		return errors.Wrapf(err, "failed to close pid file %q", f.path)
	}

	if err := os.Remove(f.path); err != nil {
		return errors.Wrapf(err, "failed to remove pid file %q", f.path)
	}

	log.Info("released pid file ", f.path)
	return nil
}
