package app

type UpdateScheduleInput struct {
	Bedtime string
	Wakeup  string
}
