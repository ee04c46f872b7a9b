package api

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"

	"github.com/go-playground/validator/v10"
)

// validateDateOrder проверяет, что начало периода не позже его конца. Незаданная граница не ограничивает период.
func validateDateOrder(sl validator.StructLevel) {
	params, ok := sl.Current().Interface().(AnalyticsParams)
	if !ok {
		return
	}
	start, end := nonZeroDate(params.StartDate), nonZeroDate(params.EndDate)
	if start == nil || end == nil {
		return
	}
	if start.After(*end) {
		sl.ReportError(params.EndDate, "EndDate", "end_date", "date_order", "")
	}
}

func registerValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("validator registration: unexpected engine %T", binding.Validator.Engine())
	}
	v.RegisterStructValidation(validateDateOrder, AnalyticsParams{})
	return nil
}
