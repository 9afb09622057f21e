// internal/model/array.go
package model

import (
	"database/sql/driver"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// StringList は PostgreSQL の text[] カラムに対応する文字列スライスです。
// エンコードは lib/pq の配列リテラル形式 ({"a","b"}) をそのまま使うので、
// 配列型を持たない SQLite (テスト用) では text カラムとして保存されます。
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return pq.StringArray{}.Value()
	}
	return pq.StringArray(l).Value()
}

func (l *StringList) Scan(src interface{}) error {
	var arr pq.StringArray
	if err := arr.Scan(src); err != nil {
		return err
	}
	*l = StringList(arr)
	return nil
}

// GormDBDataType はダイアレクトごとのカラム型を返します
func (StringList) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "text[]"
	}
	return "text"
}

// Int64List は bigint[] カラム (usage_examples / common_phrases の ID リスト) 用です
type Int64List []int64

func (l Int64List) Value() (driver.Value, error) {
	if l == nil {
		return pq.Int64Array{}.Value()
	}
	return pq.Int64Array(l).Value()
}

func (l *Int64List) Scan(src interface{}) error {
	var arr pq.Int64Array
	if err := arr.Scan(src); err != nil {
		return err
	}
	*l = Int64List(arr)
	return nil
}

func (Int64List) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "bigint[]"
	}
	return "text"
}
