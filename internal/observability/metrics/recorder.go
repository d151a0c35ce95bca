package metrics

import "time"

type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

// Recorder receives scheduling metrics. Implementations must be safe for
// concurrent use and tolerate a nil receiver.
type Recorder interface {
	IncArm(kind string, outcome Outcome)
	IncCancel(outcome Outcome)
	AddSweepRemoved(n int)
	IncSweepExhausted()
	ObserveUpdateDuration(outcome Outcome, d time.Duration)
}

type NoopRecorder struct{}

func (NoopRecorder) IncArm(string, Outcome) {}
func (NoopRecorder) IncCancel(Outcome) {}
func (NoopRecorder) AddSweepRemoved(int) {}
func (NoopRecorder) IncSweepExhausted() {}
func (NoopRecorder) ObserveUpdateDuration(Outcome, time.Duration) {}

func OutcomeOf(err error) Outcome {
	if err != nil {
		return OutcomeFailure
	}

	return OutcomeSuccess
}
