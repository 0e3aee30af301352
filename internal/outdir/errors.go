package outdir

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTargetFormat is returned when a target has no "://" separator
	ErrInvalidTargetFormat = errors.New("invalid target format")

	// ErrFilesystem matches every *FilesystemError via errors.Is
	ErrFilesystem = errors.New("filesystem error")
)

// FilesystemError reports a probe that failed for a reason other than "does not exist"
type FilesystemError struct {
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("checking %s: %v", e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}

// Is lets callers test for ErrFilesystem without knowing the underlying cause.
func (e *FilesystemError) Is(target error) bool {
	return target == ErrFilesystem
}
