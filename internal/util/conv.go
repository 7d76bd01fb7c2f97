package util

import (
	"strconv"
)

// ParseID 解析路径中的自增 ID
func ParseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil || id == 0 {
		return 0, Invalid("invalid id %q", s)
	}
	return uint(id), nil
}
