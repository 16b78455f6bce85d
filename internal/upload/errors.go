package upload

import (
	"net/http"

	sharedError "github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/error"
)

const (
	unsupportedFileType = "UNSUPPORTED_FILE_TYPE" // errInfo
	fileTooLarge        = "FILE_TOO_LARGE"        // errInfo
	invalidFilePath     = "INVALID_FILE_PATH"     // errInfo
)

var (
	ErrUnsupportedFileType = sharedError.NewDomainError(unsupportedFileType)
	ErrFileTooLarge        = sharedError.NewDomainError(fileTooLarge)
	ErrInvalidFilePath     = sharedError.NewDomainError(invalidFilePath)
)

func init() {
	sharedError.RegisterDomainErrorResponse(unsupportedFileType, sharedError.ErrorResponse{
		Status:    http.StatusUnsupportedMediaType,
		Code:      "FILE-001",
		Message:   "이미지(JPEG, PNG, WebP, GIF) 또는 PDF 파일만 업로드할 수 있습니다.",
		MessageEn: "Only images (JPEG, PNG, WebP, GIF) or PDF files can be uploaded.",
	})

	sharedError.RegisterDomainErrorResponse(fileTooLarge, sharedError.ErrorResponse{
		Status:    http.StatusRequestEntityTooLarge,
		Code:      "FILE-002",
		Message:   "파일 용량이 너무 큽니다.",
		MessageEn: "The file is too large.",
	})

	sharedError.RegisterDomainErrorResponse(invalidFilePath, sharedError.ErrorResponse{
		Status:    http.StatusBadRequest,
		Code:      "FILE-003",
		Message:   "허용되지 않은 파일 경로입니다.",
		MessageEn: "This file location is not allowed.",
	})
}
