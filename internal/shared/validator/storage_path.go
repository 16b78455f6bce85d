package validator

import (
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/storage"
	"github.com/go-playground/validator/v10"
)

// ValidateStoragePath accepts object paths inside the upload folders only.
// Entity file paths are deleted when the entity goes away.
func ValidateStoragePath(fl validator.FieldLevel) bool {
	return storage.IsUploadPath(fl.Field().String())
}
