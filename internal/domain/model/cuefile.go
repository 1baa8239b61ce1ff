// package model はドメインモデルを定義します
package model

// TargetExtension は書き換え対象となるファイルの拡張子です（ドットなし）
const TargetExtension = "cue"

// WavReference は置換対象となる文字列です
const WavReference = ".wav"

// Encoding はファイルのデコードに使用したエンコーディングを表します
type Encoding string

const (
	EncodingUTF8        Encoding = "UTF-8"
	EncodingWindows1252 Encoding = "Windows-1252"
)

func (e Encoding) String() string {
	return string(e)
}

// AudioFormat は .wav の置換先となる音声フォーマットです
type AudioFormat string

const (
	FormatNone AudioFormat = ""
	FormatFLAC AudioFormat = "flac"
	FormatAPE  AudioFormat = "ape"
)

// Extension はフォーマットの拡張子（ドットなし）を返します
func (f AudioFormat) Extension() string {
	return string(f)
}

// Suffix は置換後の文字列（".flac" など）を返します
func (f AudioFormat) Suffix() string {
	if f == FormatNone {
		return ""
	}
	return "." + string(f)
}

// Siblings は対象ファイルと同じディレクトリにある音声ファイルの有無を表します
type Siblings struct {
	// HasFLAC は flac 拡張子のエントリが存在するかどうかを示します
	HasFLAC bool
	// HasAPE は ape 拡張子のエントリが存在するかどうかを示します
	HasAPE bool
}

// Target は置換先のフォーマットを返します。FLAC が APE より優先されます
func (s Siblings) Target() AudioFormat {
	switch {
	case s.HasFLAC:
		return FormatFLAC
	case s.HasAPE:
		return FormatAPE
	default:
		return FormatNone
	}
}

// Result は1ファイルの処理結果を表します
type Result struct {
	// Path は処理したファイルのパスを表します
	Path string
	// Encoding はデコードに使用したエンコーディングを表します
	Encoding Encoding
	// Format は置換先のフォーマットを表します。兄弟ファイルがなければ FormatNone
	Format AudioFormat
	// Replacements は置換した .wav の出現数を表します
	Replacements int
	// Written はファイルを書き戻したかどうかを示します
	Written bool
}
