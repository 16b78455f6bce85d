package validator

import (
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// custom tags registered on gin's validator
var validations = map[string]validator.Func{
	"phone":        ValidatePhone,
	"phone_intl":   ValidateIntlPhone,
	"storage_path": ValidateStoragePath,
}

var (
	registerOnce sync.Once
	registerErr  error
)

// GetValidator returns the validator instance from Gin binding
func GetValidator() (*validator.Validate, error) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil, fmt.Errorf("validator 엔진을 가져올 수 없습니다")
	}
	return v, nil
}

// RegisterAll registers the custom tags and reports fields by their JSON names.
// Safe to call more than once; only the first call does any work.
func RegisterAll() error {
	registerOnce.Do(func() {
		registerErr = register()
	})
	return registerErr
}

func register() error {
	v, err := GetValidator()
	if err != nil {
		return fmt.Errorf("validator 엔진 가져오기 실패: %w", err)
	}

	v.RegisterTagNameFunc(jsonFieldName)

	names := make([]string, 0, len(validations))
	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("%s validator 등록 실패: %w", tag, err)
		}
		names = append(names, tag)
	}

	slog.Info("공통 Validator 등록 완료", "validators", strings.Join(names, ","))
	return nil
}

// jsonFieldName makes FieldError.Field() return "customerPhone" instead of "CustomerPhone"
func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		name, _, _ = strings.Cut(field.Tag.Get("form"), ",")
	}
	if name == "" {
		return field.Name
	}
	return name
}
