package pipeline

import (
	"errors"
	"fmt"
)

var (
	ErrIngest         = errors.New("ingest failed")
	ErrPersist        = errors.New("persist failed")
	ErrInvalidOptions = errors.New("invalid build options")
)

const (
	StageOptions = "options"
	StageIngest  = "ingest"
	StagePersist = "persist"
)

// BuildError is the single terminal failure of a build. It matches both
// its Kind sentinel and its cause with errors.Is.
type BuildError struct {
	Stage string
	Kind  error
	Err   error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *BuildError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}
