package validator

import (
	"errors"
	"fmt"

	sharedError "github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/i18n"
	"github.com/go-playground/validator/v10"
)

// ToErrorResponse converts gin binding/validator errors into a standardized response.
func ToErrorResponse(err error, lang i18n.Lang) (*sharedError.ErrorResponse, bool) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, false
	}

	if len(validationErrors) == 0 {
		return nil, false
	}

	// 첫 번째 validation error만 반환 (사용자 친화적)
	fieldErr := validationErrors[0]

	resp := sharedError.ValidationFailed
	resp.Message = getErrorMessage(fieldErr).In(lang)
	return &resp, true
}

// getErrorMessage returns user-friendly error message for validation error
func getErrorMessage(fe validator.FieldError) i18n.Message {
	switch fe.Tag() {
	case "required":
		return i18n.Message{
			Ko: "필수 항목을 입력해 주세요.",
			En: fmt.Sprintf("'%s' is required.", fe.Field()),
		}
	case "email":
		return i18n.Message{Ko: "이메일 형식이 올바르지 않습니다.", En: "Invalid email address."}
	case "min":
		return i18n.Message{
			Ko: fmt.Sprintf("최소 %s자 이상이어야 합니다.", fe.Param()),
			En: fmt.Sprintf("'%s' must be at least %s.", fe.Field(), fe.Param()),
		}
	case "max":
		return i18n.Message{
			Ko: fmt.Sprintf("최대 %s자까지 입력 가능합니다.", fe.Param()),
			En: fmt.Sprintf("'%s' must be at most %s.", fe.Field(), fe.Param()),
		}
	case "oneof":
		return i18n.Message{
			Ko: fmt.Sprintf("허용되지 않는 값입니다. (%s)", fe.Param()),
			En: fmt.Sprintf("'%s' must be one of: %s.", fe.Field(), fe.Param()),
		}
	case "datetime":
		return i18n.Message{
			Ko: fmt.Sprintf("날짜 형식이 올바르지 않습니다. (%s)", fe.Param()),
			En: fmt.Sprintf("'%s' must be a date in the form %s.", fe.Field(), fe.Param()),
		}
	case "url":
		return i18n.Message{Ko: "URL 형식이 올바르지 않습니다.", En: "Invalid URL."}
	case "phone":
		return i18n.Message{
			Ko: "휴대폰 번호 형식이 올바르지 않습니다. (010-XXXX-XXXX)",
			En: "Invalid mobile number. (010-XXXX-XXXX)",
		}
	case "phone_intl":
		return i18n.Message{Ko: "전화번호 형식이 올바르지 않습니다.", En: "Invalid phone number."}
	case "storage_path":
		return i18n.Message{
			Ko: "업로드 폴더 밖의 파일 경로는 사용할 수 없습니다.",
			En: fmt.Sprintf("'%s' must point to an uploaded file.", fe.Field()),
		}
	default:
		return i18n.Message{
			Ko: fmt.Sprintf("'%s' 필드가 올바르지 않습니다.", fe.Field()),
			En: fmt.Sprintf("'%s' is invalid.", fe.Field()),
		}
	}
}
