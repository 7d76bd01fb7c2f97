package repository

import (
	"english_station_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

// translate 将 gorm 错误转换为领域错误
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return util.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return util.ErrConflict
	default:
		return util.Upstream(err)
	}
}
