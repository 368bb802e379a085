package service

import (
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/balance/internal/error_values"
	"github.com/limbo/balance/pkg/dateutil"
	"github.com/limbo/balance/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("category", func(fl validator.FieldLevel) bool {
			return entity.Category(fl.Field().String()).Valid()
		})
		validate.RegisterValidation("habit_period", func(fl validator.FieldLevel) bool {
			return entity.HabitPeriod(fl.Field().String()).Valid()
		})
		validate.RegisterValidation("mood_level", func(fl validator.FieldLevel) bool {
			return entity.MoodLevel(fl.Field().Int()).Valid()
		})
		// "HH:MM" within a day
		validate.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
			_, err := dateutil.ParseClock(fl.Field().String())
			return err == nil
		})
	})
}

// validateRequest joins every field error onto ErrValidation
func validateRequest(req any) error {
	InitValidator()
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		err = errorvalues.ErrValidation
		for _, fieldErr := range validationErrors {
			err = errors.Join(err, fieldErr)
		}
		return err
	}
	return errors.New("validation unexpected error: " + err.Error())
}
