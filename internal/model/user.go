package model

import "time"

// ClientUser 小程序用户
type ClientUser struct {
	ID       int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	OpenID   string `json:"openId" gorm:"type:varchar(64);uniqueIndex"`
	NickName string `json:"nickName" gorm:"type:varchar(64)"`
	Avatar   string `json:"avatar" gorm:"type:text"`
	Phone    string `json:"phone" gorm:"type:varchar(32)"`
	Sex      string `json:"sex" gorm:"type:varchar(8)"`
	Location string `json:"location" gorm:"type:varchar(128)"`
	Tags     string `json:"tags" gorm:"type:varchar(255)"`
	Status   string `json:"status" gorm:"type:varchar(8);default:'1'"`
	GetMsg   string `json:"getMsg" gorm:"type:varchar(8);default:'1'"`
	Audit
}

func (ClientUser) TableName() string { return "client_user" }

// EndUser 后台用户
type EndUser struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserName   string    `json:"userName" gorm:"type:varchar(64);uniqueIndex;not null"`
	NickName   string    `json:"nickName" gorm:"type:varchar(64)"`
	Avatar     string    `json:"avatar" gorm:"type:text"`
	Password   string    `json:"-" gorm:"type:varchar(128);not null"`
	Phone      string    `json:"phone" gorm:"type:varchar(32)"`
	Sex        string    `json:"sex" gorm:"type:varchar(8)"`
	Status     string    `json:"status" gorm:"type:varchar(8);default:'1'"`
	CreateTime time.Time `json:"createTime" gorm:"autoCreateTime"`
	UpdateTime time.Time `json:"updateTime" gorm:"autoUpdateTime"`
}

func (EndUser) TableName() string { return "end_user" }

// 账号状态
const (
	StatusDisabled = "0"
	StatusEnabled  = "1"
)
