// Package textenc はファイル内容のテキストデコードを提供します
package textenc

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"CueFix/internal/domain/model"
)

// Decoder はバイト列をテキストへ変換する1つの試行です
type Decoder struct {
	Encoding model.Encoding
	// Decode は変換に成功した場合に ok=true を返します
	Decode func(content []byte) (text string, ok bool)
}

// Decoders は試行順に並んだデコーダーを返します。最後の要素は必ず成功します
func Decoders() []Decoder {
	return []Decoder{
		{Encoding: model.EncodingUTF8, Decode: decodeUTF8},
		{Encoding: model.EncodingWindows1252, Decode: decodeWindows1252},
	}
}

// Decode は content を先頭のデコーダーから順に変換し、最初に成功した結果を返します
func Decode(content []byte) (string, model.Encoding) {
	decoders := Decoders()
	for _, d := range decoders {
		if text, ok := d.Decode(content); ok {
			return text, d.Encoding
		}
	}
	// 最後のデコーダーは失敗しないためここには到達しない
	last := decoders[len(decoders)-1]
	text, _ := last.Decode(content)
	return text, last.Encoding
}

// EncodeUTF8 は書き戻し用のバイト列を返します。元のエンコーディングに関係なく常にUTF-8です
func EncodeUTF8(text string) []byte {
	return []byte(text)
}

func decodeUTF8(content []byte) (string, bool) {
	if !utf8.Valid(content) {
		return "", false
	}
	return string(content), true
}

// decodeWindows1252 は失敗しません。
// charmap で未定義の5バイト（0x81, 0x8D, 0x8F, 0x90, 0x9D）は同じ値のC1制御文字に割り当てます
func decodeWindows1252(content []byte) (string, bool) {
	var b strings.Builder
	b.Grow(len(content))
	for _, c := range content {
		r := charmap.Windows1252.DecodeByte(c)
		if r == utf8.RuneError {
			r = rune(c)
		}
		b.WriteRune(r)
	}
	return b.String(), true
}
