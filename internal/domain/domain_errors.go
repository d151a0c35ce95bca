package domain

import "errors"

var (
	ErrInvalidClockTime       = errors.New("invalid clock time: expected HH:mm")
	ErrIdenticalScheduleTimes = errors.New("bedtime and wakeup must differ")
	ErrInvalidKind            = errors.New("invalid reminder kind")

	ErrEmptyNotificationHandle = errors.New("notification handle cannot be empty")
	ErrInvalidGuardBand        = errors.New("guard band must be positive")

	ErrNotificationNotFound = errors.New("scheduled notification not found")
)
