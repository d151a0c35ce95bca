package handler

import (
	"time"

	"github.com/KasumiMercury/primind-sleep-remind/internal/app"
)

type ScheduleResponse struct {
	Bedtime       string    `json:"bedtime"`
	Wakeup        string    `json:"wakeup"`
	BedtimeHandle string    `json:"bedtime_handle,omitempty"`
	WakeupHandle  string    `json:"wakeup_handle,omitempty"`
	NextBedtime   time.Time `json:"next_bedtime"`
	NextWakeup    time.Time `json:"next_wakeup"`
	Complete      bool      `json:"complete"`
}

type InitializeResponse struct {
	Status   string            `json:"status"`
	Schedule *ScheduleResponse `json:"schedule,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// SchedulingErrorResponse carries the partially armed schedule alongside the error.
type SchedulingErrorResponse struct {
	ErrorResponse
	Schedule ScheduleResponse `json:"schedule"`
}

func FromOutput(output app.ScheduleOutput) ScheduleResponse {
	return ScheduleResponse{
		Bedtime:       output.Bedtime,
		Wakeup:        output.Wakeup,
		BedtimeHandle: output.BedtimeHandle,
		WakeupHandle:  output.WakeupHandle,
		NextBedtime:   output.NextBedtime,
		NextWakeup:    output.NextWakeup,
		Complete:      output.Complete,
	}
}
