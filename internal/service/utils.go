package service

import (
	"fmt"

	"github.com/fsdevblog/qrpay/internal/domain"
)

// storageErr помечает ошибку хранилища как domain.ErrStorageUnavailable, сохраняя исходную ошибку в цепочке.
func storageErr(err error, format string, formatArgs ...any) error {
	return fmt.Errorf("%s: %w: %w", fmt.Sprintf(format, formatArgs...), domain.ErrStorageUnavailable, err)
}
