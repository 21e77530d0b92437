package scheduler

import "go.trai.ch/zerr"

// ErrInvalidWorkerCount is returned by NewScheduler when asked to target
// fewer than one worker.
var ErrInvalidWorkerCount = zerr.New("scheduler: worker count must be at least one")
