package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	BedtimeTitle = "🛏️ time to sleep"
	WakeupTitle  = "☀️ time to wake up"

	ChannelBedtime = "sleep-bedtime"
	ChannelWakeup  = "sleep-wakeup"

	DataKeyKind  = "kind"
	DataKeyClock = "clock"
)

type NotificationContent struct {
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Kind      Kind              `json:"kind"`
	ChannelID string            `json:"channel_id"`
	Data      map[string]string `json:"data,omitempty"`
}

func ContentFor(kind Kind, at ClockTime) NotificationContent {
	content := NotificationContent{
		Kind: kind,
		Data: map[string]string{
			DataKeyKind:  string(kind),
			DataKeyClock: at.String(),
		},
	}

	switch kind {
	case KindWakeup:
		content.Title = WakeupTitle
		content.Body = fmt.Sprintf("It is %s - have a great day full of energy!", at)
		content.ChannelID = ChannelWakeup
	default:
		content.Title = BedtimeTitle
		content.Body = fmt.Sprintf("It is %s - get ready for bed for a good night's sleep!", at)
		content.ChannelID = ChannelBedtime
	}

	return content
}

// IsSleepReminder reports whether content was produced by ContentFor,
// regardless of which handle it was armed under.
func IsSleepReminder(content NotificationContent) bool {
	if content.Kind == KindBedtime || content.Kind == KindWakeup {
		return true
	}

	return strings.Contains(content.Title, "time to sleep") ||
		strings.Contains(content.Title, "time to wake up")
}

type Importance int

const (
	ImportanceDefault Importance = iota
	ImportanceHigh
)

type ChannelConfig struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Importance       Importance      `json:"importance"`
	VibrationPattern []time.Duration `json:"vibration_pattern"`
	LightColor       string          `json:"light_color"`
	Sound            string          `json:"sound"`
	// Alarm marks alarm-like delivery: longer vibration, stronger urgency.
	Alarm bool `json:"alarm"`
}

func ChannelFor(kind Kind) ChannelConfig {
	if kind == KindWakeup {
		pattern := []time.Duration{0}
		for i := 0; i < 6; i++ {
			if i > 0 {
				pattern = append(pattern, 500*time.Millisecond)
			}

			pattern = append(pattern, time.Second)
		}

		return ChannelConfig{
			ID:               ChannelWakeup,
			Name:             "Wake Up Alarm",
			Importance:       ImportanceHigh,
			VibrationPattern: pattern,
			LightColor:       "#FF9800",
			Sound:            "default",
			Alarm:            true,
		}
	}

	return ChannelConfig{
		ID:         ChannelBedtime,
		Name:       "Bedtime Reminder",
		Importance: ImportanceHigh,
		VibrationPattern: []time.Duration{
			0, 500 * time.Millisecond, 300 * time.Millisecond, 500 * time.Millisecond,
		},
		LightColor: "#FF231F7C",
		Sound:      "default",
	}
}
