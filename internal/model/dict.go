package model

// SysDict 字典配置
type SysDict struct {
	ID        int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	DictName  string `json:"dictName" gorm:"type:varchar(64);uniqueIndex:idx_dict_name;not null"`
	DictValue string `json:"dictValue" gorm:"type:text"`
	Audit
}

func (SysDict) TableName() string { return "sys_dict" }

// All 返回需要迁移的全部模型
func All() []interface{} {
	return []interface{}{
		&ClientUser{}, &EndUser{},
		&TweetType{}, &Tweet{}, &TweetRecord{}, &TweetComment{},
		&RecommendationFeedback{},
		&Activity{}, &ActivityJoin{}, &ClientMessage{},
		&Crowd{},
		&SysDict{},
	}
}
