package model

// Crowd 人群，后台维护，用于运营分组展示
type Crowd struct {
	ID       int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Title    string `json:"crowdTitle" gorm:"column:crowd_title;type:varchar(64)"`
	Type     string `json:"crowdType" gorm:"column:crowd_type;type:varchar(64)"`
	Img      string `json:"crowdImg" gorm:"column:crowd_img;type:text"`
	Describe string `json:"crowdDescribe" gorm:"column:crowd_describe;type:text"`
	Audit
}

func (Crowd) TableName() string { return "crowd" }
