package outdir

import (
	"github.com/spf13/afero"
)

// Exister reports whether something already occupies a path.
// A non-nil error means the answer is unknown, not that the path is free.
type Exister interface {
	Exists(path string) (bool, error)
}

// FsExister probes an afero filesystem
type FsExister struct {
	Fs afero.Fs
}

// NewOsExister returns an Exister backed by the real operating system filesystem
func NewOsExister() FsExister {
	return FsExister{Fs: afero.NewOsFs()}
}

// Exists treats any entry (file, directory, symlink) as taken
func (e FsExister) Exists(path string) (bool, error) {
	return afero.Exists(e.Fs, path)
}
