package model

import "time"

// Tweet 推文。TypePID 为一级类目，TypeCIDs 为逗号分隔的二级类目 id
type Tweet struct {
	ID               int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	TypePID          int64  `json:"tweetsTypePid" gorm:"column:tweets_type_pid;index"`
	TypeCIDs         string `json:"tweetsTypeCid" gorm:"column:tweets_type_cid;type:varchar(255)"`
	Title            string `json:"tweetsTitle" gorm:"column:tweets_title;type:varchar(255)"`
	Author           string `json:"tweetsUser" gorm:"column:tweets_user;type:varchar(64)"`
	Describe         string `json:"tweetsDescribe" gorm:"column:tweets_describe;type:text"`
	Img              string `json:"tweetsImg" gorm:"column:tweets_img;type:text"`
	Content          string `json:"tweetsContent" gorm:"column:tweets_content;type:text"`
	LikeNum          int64  `json:"likeNum" gorm:"not null;default:0"`
	CollectNum       int64  `json:"collectNum" gorm:"not null;default:0"`
	BrowseNum        int64  `json:"browseNum" gorm:"not null;default:0"`
	ClientCreateUser string `json:"clientCreateUser" gorm:"type:varchar(64)"`
	Audit
}

func (Tweet) TableName() string { return "tweets" }

// TweetType 推文类目，两级树，根节点 ParentID 为空
type TweetType struct {
	ID       int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name     string `json:"name" gorm:"type:varchar(64);not null"`
	ParentID *int64 `json:"parentId" gorm:"index"`
}

func (TweetType) TableName() string { return "tweets_type" }

// TweetTypeNode 类目树节点
type TweetTypeNode struct {
	TweetType
	Children []*TweetTypeNode `json:"children,omitempty"`
}

// TweetView 带类目名称的推文
type TweetView struct {
	*Tweet
	TypePidName  string   `json:"typePidName"`
	TypeCidNames []string `json:"typeCidNames"`
}

// 互动类型
const (
	RecordLike    = "like"
	RecordCollect = "collect"
	RecordBrowse  = "browse"
)

// TweetRecord 用户对推文的点赞/收藏/浏览记录，(user, tweet, type) 唯一
type TweetRecord struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	ClientUserID int64     `json:"clientUserId" gorm:"not null;uniqueIndex:ux_record_user_tweet_type"`
	TweetsID     int64     `json:"tweetsId" gorm:"not null;index;uniqueIndex:ux_record_user_tweet_type"`
	Type         string    `json:"type" gorm:"type:varchar(16);not null;uniqueIndex:ux_record_user_tweet_type"`
	CreateTime   time.Time `json:"createTime" gorm:"index"`
}

func (TweetRecord) TableName() string { return "tweets_records" }

// TweetRecordRow 记录列表行（记录 + 推文摘要）
type TweetRecordRow struct {
	RecordID    int64     `json:"recordId"`
	Type        string    `json:"type"`
	RecordTime  time.Time `json:"recordTime"`
	TweetsID    int64     `json:"tweetsId"`
	TweetsTitle string    `json:"tweetsTitle"`
	TweetsImg   string    `json:"tweetsImg"`
	TweetsUser  string    `json:"tweetsUser"`
	LikeNum     int64     `json:"likeNum"`
}

// TweetComment 推文评论
type TweetComment struct {
	ID           int64       `json:"id" gorm:"primaryKey;autoIncrement"`
	TweetsID     int64       `json:"tweetsId" gorm:"not null;index"`
	ClientUserID int64       `json:"clientUserId" gorm:"not null"`
	Content      string      `json:"evaluateContent" gorm:"column:evaluate_content;type:text"`
	Img          string      `json:"evaluateImg" gorm:"column:evaluate_img;type:text"`
	CreateTime   time.Time   `json:"createTime" gorm:"autoCreateTime"`
	User         *ClientUser `json:"user,omitempty" gorm:"foreignKey:ClientUserID"`
}

func (TweetComment) TableName() string { return "tweets_evaluate" }
