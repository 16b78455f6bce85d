package validator

import (
	"testing"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/i18n"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type phoneForm struct {
	Mobile string `validate:"required,phone"`
	Office string `validate:"omitempty,phone_intl"`
	Email  string `validate:"omitempty,email"`
}

func newValidate(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, v.RegisterValidation("phone", ValidatePhone))
	require.NoError(t, v.RegisterValidation("phone_intl", ValidateIntlPhone))
	return v
}

func TestPhoneValidators(t *testing.T) {
	v := newValidate(t)

	testCases := []struct {
		name  string
		form  phoneForm
		valid bool
	}{
		{name: "korean mobile with dashes", form: phoneForm{Mobile: "010-1234-5678"}, valid: true},
		{name: "korean mobile without dashes", form: phoneForm{Mobile: "01012345678"}, valid: true},
		{name: "landline as mobile", form: phoneForm{Mobile: "02-123-4567"}, valid: false},
		{name: "international office", form: phoneForm{Mobile: "010-1234-5678", Office: "+1 212 555 0100"}, valid: true},
		{name: "letters in office", form: phoneForm{Mobile: "010-1234-5678", Office: "call me"}, valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(tc.form)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestToErrorResponse_Localized(t *testing.T) {
	v := newValidate(t)
	err := v.Struct(phoneForm{Mobile: "010-1234-5678", Email: "nope"})
	require.Error(t, err)

	ko, ok := ToErrorResponse(err, i18n.Korean)
	require.True(t, ok)
	assert.Equal(t, "ERROR-001", ko.Code)
	assert.Equal(t, "이메일 형식이 올바르지 않습니다.", ko.Message)

	en, ok := ToErrorResponse(err, i18n.English)
	require.True(t, ok)
	assert.Equal(t, "Invalid email address.", en.Message)
}

func TestToErrorResponse_NotValidationError(t *testing.T) {
	_, ok := ToErrorResponse(assert.AnError, i18n.Korean)
	assert.False(t, ok)
}

type bookingForm struct {
	CustomerPhone string `json:"customerPhone" validate:"required"`
	TravelDate    string `form:"travelDate" validate:"required,datetime=2006-01-02"`
	Internal      string `json:"-"`
}

func TestJSONFieldName(t *testing.T) {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)

	err := v.Struct(bookingForm{TravelDate: "2026/10/15"})
	require.Error(t, err)

	var fields []string
	for _, fe := range err.(validator.ValidationErrors) {
		fields = append(fields, fe.Field())
	}
	assert.ElementsMatch(t, []string{"customerPhone", "travelDate"}, fields)

	en, ok := ToErrorResponse(err, i18n.English)
	require.True(t, ok)
	assert.Equal(t, "'customerPhone' is required.", en.Message)
}

func TestRegisterAll_Idempotent(t *testing.T) {
	require.NoError(t, RegisterAll())
	require.NoError(t, RegisterAll())
}

type fileForm struct {
	ImagePath string `json:"imagePath" validate:"omitempty,storage_path"`
}

func TestStoragePathValidator(t *testing.T) {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)
	require.NoError(t, v.RegisterValidation("storage_path", ValidateStoragePath))

	testCases := []struct {
		path  string
		valid bool
	}{
		{path: "", valid: true},
		{path: "banners/2026/10/a.png", valid: true},
		{path: "documents/terms.pdf", valid: true},
		{path: "generated/batch/1.png", valid: false},
		{path: "backups/db.dump", valid: false},
		{path: "banners/../backups/db.dump", valid: false},
		{path: "/banners/a.png", valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			err := v.Struct(fileForm{ImagePath: tc.path})
			if tc.valid {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			en, ok := ToErrorResponse(err, i18n.English)
			require.True(t, ok)
			assert.Equal(t, "'imagePath' must point to an uploaded file.", en.Message)
		})
	}
}
