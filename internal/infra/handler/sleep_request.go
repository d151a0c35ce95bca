package handler

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/KasumiMercury/primind-sleep-remind/internal/domain"
)

type UpdateScheduleRequest struct {
	Bedtime string `json:"bedtime" binding:"required,clock"`
	Wakeup  string `json:"wakeup" binding:"required,clock"`
}

var registerOnce sync.Once

// registerValidators adds the "clock" tag to gin's validator engine.
func registerValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		_ = v.RegisterValidation("clock", validateClock)
	})
}

func validateClock(fl validator.FieldLevel) bool {
	_, err := domain.ParseClockTime(fl.Field().String())

	return err == nil
}
