// internal/model/card.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Card は見出し語 (initial_form) ごとの辞書カードです。
// usage_examples / common_phrases カラムには関連テーブルの ID リストだけを保存し、
// レスポンスでは解決済みのオブジェクトを UsageExamples / CommonPhrases に埋め込みます。
type Card struct {
	CardID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	InitialForm     string     `gorm:"not null;uniqueIndex:uq_cards_initial_form" json:"initial_form"`
	Forms           StringList `gorm:"not null" json:"forms"`
	Pronunciation   string     `gorm:"not null;default:''" json:"pronunciation"`
	Synonyms        StringList `gorm:"not null" json:"synonyms"`
	UsageExampleIDs Int64List  `gorm:"column:usage_examples;not null" json:"-"`
	CommonPhraseIDs Int64List  `gorm:"column:common_phrases;not null" json:"-"`
	CreatedAt       time.Time  `json:"-"`

	// 解決済みの関連 (DBには保存しない)
	UsageExamples []UsageExample `gorm:"-" json:"usage_examples"`
	CommonPhrases []CommonPhrase `gorm:"-" json:"common_phrases"`
}

func (Card) TableName() string {
	return "cards"
}

// Form は活用形 (form_name) から見出し語への対応です
type Form struct {
	ID          uint   `gorm:"primaryKey" json:"-"`
	InitialForm string `gorm:"not null;uniqueIndex:uq_forms_pair,priority:1" json:"initial_form"`
	FormName    string `gorm:"not null;uniqueIndex:uq_forms_pair,priority:2;index:idx_forms_form_name" json:"form_name"`
}

func (Form) TableName() string {
	return "forms"
}

// UsageExample は用例と品詞のペアです
type UsageExample struct {
	ID           int64  `gorm:"column:usage_example_id;primaryKey;autoIncrement" json:"usage_example_id"`
	Example      string `gorm:"not null" json:"example"`
	PartOfSpeech string `gorm:"not null;default:''" json:"part_of_speech"`
}

func (UsageExample) TableName() string {
	return "usage_examples"
}

// CommonPhrase はよく使われるフレーズとその意味です
type CommonPhrase struct {
	ID      int64  `gorm:"column:common_phrase_id;primaryKey;autoIncrement" json:"common_phrase_id"`
	Phrase  string `gorm:"not null" json:"phrase"`
	Meaning string `gorm:"not null;default:''" json:"meaning"`
}

func (CommonPhrase) TableName() string {
	return "common_phrases"
}

// GeneratedCard はオラクルが返す JSON の形
type GeneratedCard struct {
	InitialForm   string             `json:"initial_form"`
	Forms         []string           `json:"forms"`
	Synonyms      []string           `json:"synonyms"`
	Pronunciation string             `json:"pronunciation"`
	UsageExamples []GeneratedExample `json:"usage_examples"`
	CommonPhrases []GeneratedPhrase  `json:"common_phrases"`
}

type GeneratedExample struct {
	Example      string `json:"example"`
	PartOfSpeech string `json:"part_of_speech"`
}

type GeneratedPhrase struct {
	Phrase  string `json:"phrase"`
	Meaning string `json:"meaning"`
}

// CardSummary はカード一覧 (getAll) の1件分。initial_form 以外は返さない
type CardSummary struct {
	InitialForm string `json:"initial_form"`
}

// CardResult はカード作成APIの結果。Cached はDBから取得した場合 true
type CardResult struct {
	Card   *Card
	Cached bool
}

// カード作成リクエストDTO
type CreateCardRequest struct {
	NewWord string `json:"new_word" validate:"required,max=64,dictword"`
}
