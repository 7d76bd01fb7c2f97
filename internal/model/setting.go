package model

import (
	"time"

	"gorm.io/datatypes"
)

// Settings 站点设置键值，值可以是任意 JSON
type Settings map[string]datatypes.JSON

type Setting struct {
	Key       string         `gorm:"primaryKey;size:100" json:"key"`
	Value     datatypes.JSON `gorm:"not null" json:"value"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

func (Setting) TableName() string {
	return "settings"
}
