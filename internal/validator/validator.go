// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"cofrinho/internal/models"
	"cofrinho/internal/money"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("txn_category", validateCategory)
		_ = v.RegisterValidation("iso_date", validateISODate)
		_ = v.RegisterValidation("money", validateMoney)
	}
}

func validateCategory(fl validator.FieldLevel) bool {
	return models.TransactionCategory(fl.Field().String()).Valid()
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}

func validateMoney(fl validator.FieldLevel) bool {
	_, err := money.ParseCents(fl.Field().String())
	return err == nil
}
