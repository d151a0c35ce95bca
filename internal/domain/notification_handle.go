package domain

// NotificationHandle identifies one armed, not yet fired notification on
// the notification platform. Its content is opaque to this service.
type NotificationHandle struct {
	value string
}

func NewNotificationHandle(s string) (NotificationHandle, error) {
	if s == "" {
		return NotificationHandle{}, ErrEmptyNotificationHandle
	}

	return NotificationHandle{value: s}, nil
}

func (h NotificationHandle) String() string {
	return h.value
}

func (h NotificationHandle) IsZero() bool {
	return h.value == ""
}

func (h NotificationHandle) Equals(other NotificationHandle) bool {
	return h.value == other.value
}

// Handles tracks the outstanding handle of each reminder kind. A zero
// handle means the slot is unarmed.
type Handles struct {
	bedtime NotificationHandle
	wakeup  NotificationHandle
}

func NewHandles(bedtime, wakeup NotificationHandle) Handles {
	return Handles{bedtime: bedtime, wakeup: wakeup}
}

func (h Handles) Get(kind Kind) NotificationHandle {
	if kind == KindWakeup {
		return h.wakeup
	}

	return h.bedtime
}

// With returns a copy of h with the slot for kind replaced.
func (h Handles) With(kind Kind, handle NotificationHandle) Handles {
	if kind == KindWakeup {
		h.wakeup = handle
	} else {
		h.bedtime = handle
	}

	return h
}

func (h Handles) Bedtime() NotificationHandle {
	return h.bedtime
}

func (h Handles) Wakeup() NotificationHandle {
	return h.wakeup
}

func (h Handles) IsComplete() bool {
	return !h.bedtime.IsZero() && !h.wakeup.IsZero()
}

func (h Handles) IsEmpty() bool {
	return h.bedtime.IsZero() && h.wakeup.IsZero()
}

// Present returns the armed handles in arm order.
func (h Handles) Present() []NotificationHandle {
	out := make([]NotificationHandle, 0, 2)
	for _, kind := range Kinds() {
		if handle := h.Get(kind); !handle.IsZero() {
			out = append(out, handle)
		}
	}

	return out
}
