package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

// DuplicateError 唯一约束冲突，携带冲突字段与值
type DuplicateError struct {
	Field string
	Value string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate %s: %s", e.Field, e.Value)
}

// translate 把 gorm 的错误转换为仓储层错误
func translate(err error, field, value string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &DuplicateError{Field: field, Value: value}
	default:
		return err
	}
}

// save 新建或按主键更新非零字段，不覆盖创建时间与创建人
func save(db *gorm.DB, value interface{}, id int64) error {
	if id == 0 {
		return db.Create(value).Error
	}
	res := db.Model(value).Omit("create_time", "create_user").Updates(value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// like 包含匹配，转义用户输入里的通配符，配合 likeWhere 使用
func like(s string) string { return "%" + likeEscaper.Replace(s) + "%" }

// likeWhere sqlite 没有默认转义符，显式指定
func likeWhere(column string) string { return column + ` LIKE ? ESCAPE '\'` }
