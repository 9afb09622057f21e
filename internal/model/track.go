// internal/model/track.go
package model

import "time"

// Track は事前投入済みの楽曲トラック (カード機能とは無関係)
type Track struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Title           string    `gorm:"not null" json:"title"`
	Artist          string    `gorm:"not null;default:''" json:"artist"`
	Album           string    `gorm:"not null;default:''" json:"album"`
	DurationSeconds int       `gorm:"not null;default:0" json:"duration_seconds"`
	CreatedAt       time.Time `json:"created_at"`
}

func (Track) TableName() string {
	return "tracks"
}

// TrackPage はページングされたトラック一覧のレスポンス
// Count はページサイズに関係なく全件数
type TrackPage struct {
	Data  []*Track `json:"data"`
	Count int64    `json:"count"`
}

// トラック一覧のクエリパラメータ
type ListTracksQuery struct {
	Page      int `json:"page" validate:"gte=0"`
	PageCount int `json:"page_count" validate:"gte=1"`
}
