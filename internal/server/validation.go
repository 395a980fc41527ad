package server

import (
	"sync"

	"truth-or-dare/internal/game"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var validatorOnce sync.Once

func registerValidators() {
	validatorOnce.Do(func() {
		engine, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = engine.RegisterValidation("scope", func(fl validator.FieldLevel) bool {
			_, ok := game.ParseScope(fl.Field().String())
			return ok
		})
	})
}
