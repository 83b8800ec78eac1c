package model

import "time"

// Activity 活动
type Activity struct {
	ID            int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Title         string     `json:"actTitle" gorm:"column:act_title;type:varchar(255)"`
	Type          string     `json:"actType" gorm:"column:act_type;type:varchar(64)"`
	Location      string     `json:"actLocation" gorm:"column:act_location;type:varchar(255)"`
	LocationCode  string     `json:"actLocationCode" gorm:"column:act_location_code;type:varchar(64)"`
	Img           string     `json:"actImg" gorm:"column:act_img;type:text"`
	Describe      string     `json:"actDescribe" gorm:"column:act_describe;type:text"`
	StartDate     *time.Time `json:"actStartDate" gorm:"column:act_start_date"`
	EndDate       *time.Time `json:"actEndDate" gorm:"column:act_end_date"`
	JoinCondition string     `json:"joinCondition" gorm:"type:varchar(255)"`
	Audit
}

func (Activity) TableName() string { return "activity" }

// ActivityJoin 活动参与，(act, user) 唯一
type ActivityJoin struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	ActID        int64     `json:"actId" gorm:"not null;uniqueIndex:ux_join_act_user"`
	ClientUserID int64     `json:"clientUserId" gorm:"not null;uniqueIndex:ux_join_act_user;index"`
	CreateTime   time.Time `json:"createTime" gorm:"autoCreateTime"`
}

func (ActivityJoin) TableName() string { return "activity_join" }

// ClientMessage 用户消息（目前只有参与活动会写入）
type ClientMessage struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	ClientUserID int64     `json:"clientUserId" gorm:"not null;index"`
	Content      string    `json:"content" gorm:"type:varchar(255)"`
	CreateTime   time.Time `json:"createTime" gorm:"autoCreateTime"`
}

func (ClientMessage) TableName() string { return "client_msg" }
