package model

import (
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/d60-Lab/food-share-server/internal/auth"
)

// Audit 审计字段，创建/更新人取自请求上下文中的操作人
type Audit struct {
	CreateTime time.Time `json:"createTime" gorm:"autoCreateTime"`
	UpdateTime time.Time `json:"updateTime" gorm:"autoUpdateTime"`
	CreateUser string    `json:"createUser" gorm:"type:varchar(64)"`
	UpdateUser string    `json:"updateUser" gorm:"type:varchar(64)"`
}

func (a *Audit) BeforeCreate(tx *gorm.DB) error {
	if op := operator(tx); op != "" {
		if a.CreateUser == "" {
			a.CreateUser = op
		}
		a.UpdateUser = op
	}
	return nil
}

func (a *Audit) BeforeUpdate(tx *gorm.DB) error {
	if op := operator(tx); op != "" {
		a.UpdateUser = op
	}
	return nil
}

func operator(tx *gorm.DB) string {
	id, ok := auth.FromContext(tx.Statement.Context)
	if !ok {
		return ""
	}
	if id.Name != "" {
		return id.Name
	}
	return strconv.FormatInt(id.UserID, 10)
}
