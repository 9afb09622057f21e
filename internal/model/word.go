// internal/model/word.go
package model

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lowerCaser = cases.Lower(language.Und)

// NormalizeWord は単語を保存・検索用の形 (先頭だけ大文字) に揃えます。
// 例: "  rUNNING " -> "Running", "give   up" -> "Give up"
func NormalizeWord(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return ""
	}
	s = lowerCaser.String(s)
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToTitle(r)) + s[size:]
}

// NormalizeForms は活用形リストを正規化し、空要素と重複を取り除きます。
// initialForm は必ず先頭に含めます。
func NormalizeForms(initialForm string, forms []string) []string {
	seen := make(map[string]bool, len(forms)+1)
	result := make([]string, 0, len(forms)+1)
	add := func(f string) {
		f = NormalizeWord(f)
		if f == "" || seen[f] {
			return
		}
		seen[f] = true
		result = append(result, f)
	}
	add(initialForm)
	for _, f := range forms {
		add(f)
	}
	return result
}

// WrapPronunciation は発音記号を [..] で一回だけ囲みます。
// オラクルが既に [..] や /../ を付けていても二重にはしません。
func WrapPronunciation(s string) string {
	s = strings.TrimSpace(s)
	for len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '[' && last == ']') || (first == '/' && last == '/') {
			s = strings.TrimSpace(s[1 : len(s)-1])
			continue
		}
		break
	}
	if s == "" {
		return ""
	}
	return "[" + s + "]"
}
