package webutil

import (
	"log"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/locales/ja" // 日本語ロケール
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ja_translations "github.com/go-playground/validator/v10/translations/ja" // 日本語翻訳
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"new_word":   "単語",
	"page":       "ページ番号",
	"page_count": "1ページの件数",
}

func fieldLabel(name string) string {
	if label, ok := fieldNameTranslations[name]; ok {
		return label
	}
	return name
}

// isDictWord は辞書の見出しとして使える文字列か (文字・結合文字・空白・ハイフン・アポストロフィのみ) を判定します
func isDictWord(fl validator.FieldLevel) bool {
	s := strings.TrimSpace(fl.Field().String())
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case unicode.IsLetter(r), unicode.IsMark(r), unicode.IsSpace(r):
		case r == '-', r == '\'', r == '’':
		default:
			return false
		}
	}
	return true
}

func init() {
	Validator = validator.New()

	// JSONタグからフィールド名を取得するように設定
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := Validator.RegisterValidation("dictword", isDictWord); err != nil {
		log.Fatal(err)
	}

	japanese := ja.New()
	uni := ut.New(japanese, japanese)
	var found bool
	Trans, found = uni.GetTranslator("ja")
	if !found {
		log.Fatal("translator not found")
	}

	if err := ja_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	// registerTranslation はフィールド名を日本語に置き換えてメッセージを登録します
	registerTranslation := func(tag string, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, fieldLabel(fe.Field()), fe.Param())
			return t
		})
	}

	registerTranslation("required", "{0}は必須項目です。")
	registerTranslation("max", "{0}は{1}文字以下で入力してください。")
	registerTranslation("gte", "{0}は{1}以上で指定してください。")
	registerTranslation("lte", "{0}は{1}以下で指定してください。")
	registerTranslation("dictword", "{0}には文字・空白・ハイフン・アポストロフィのみ使用できます。")
}
