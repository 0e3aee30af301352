package outdir

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// StampLayout is the time layout of the date component (YYYYMMDD)
const StampLayout = "20060102"

// Resolver computes unique, date-stamped output directories under a root.
// It only probes the filesystem; creating the returned path is the caller's job.
type Resolver struct {
	Exister Exister
	Now     func() time.Time
	Log     logrus.FieldLogger
}

// Resolution describes the outcome of a successful search
type Resolution struct {
	Path    string
	Name    string
	Stamp   string
	Attempt int
}

// NewResolver returns a Resolver probing fs with the wall clock and the standard logrus logger
func NewResolver(fs afero.Fs) *Resolver {
	return &Resolver{
		Exister: FsExister{Fs: fs},
		Now:     time.Now,
		Log:     logrus.StandardLogger(),
	}
}

// ResolveOutputDir resolves against the OS filesystem using the current date
func ResolveOutputDir(root, target string) (string, error) {
	return NewResolver(afero.NewOsFs()).Resolve(root, target)
}

// DateStamp formats t as YYYYMMDD
func DateStamp(t time.Time) string {
	return t.Format(StampLayout)
}

// CandidatePath builds root/name/stamp for attempt 0 and root/name/stamp_N otherwise
func CandidatePath(root, name, stamp string, attempt int) string {
	leaf := stamp
	if attempt != 0 {
		leaf = fmt.Sprintf("%s_%d", stamp, attempt)
	}
	return filepath.Join(root, name, leaf)
}

// Resolve returns the first candidate path that does not exist yet
func (r *Resolver) Resolve(root, target string) (string, error) {
	res, err := r.ResolveDetailed(root, target)
	if err != nil {
		return "", err
	}
	return res.Path, nil
}

// ResolveDetailed is Resolve plus the name, stamp and attempt that produced the path.
//
// The date is read once, so every candidate of one call shares the same stamp.
// The scan always starts at attempt 0 and stops at the first gap; it terminates
// because each attempt yields a distinct path and only finitely many entries exist.
func (r *Resolver) ResolveDetailed(root, target string) (*Resolution, error) {
	name, err := TargetToDirname(target)
	if err != nil {
		return nil, err
	}

	stamp := DateStamp(r.now())
	log := r.logger().WithField("target", target)

	for attempt := 0; ; attempt++ {
		candidate := CandidatePath(root, name, stamp, attempt)

		taken, err := r.exister().Exists(candidate)
		if err != nil {
			return nil, &FilesystemError{Path: candidate, Err: err}
		}
		if !taken {
			log.WithFields(logrus.Fields{"candidate": candidate, "attempt": attempt}).Debug("output directory available")
			return &Resolution{Path: candidate, Name: name, Stamp: stamp, Attempt: attempt}, nil
		}

		log.WithFields(logrus.Fields{"candidate": candidate, "attempt": attempt}).Debug("output directory taken")
	}
}

func (r *Resolver) exister() Exister {
	if r.Exister == nil {
		return NewOsExister()
	}
	return r.Exister
}

func (r *Resolver) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}

func (r *Resolver) logger() logrus.FieldLogger {
	if r.Log == nil {
		return logrus.StandardLogger()
	}
	return r.Log
}
