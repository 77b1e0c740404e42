package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "got").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "field_error":
			return "フィールドの読み書きに失敗しました"
		case "sizeof_error":
			return "サイズ計算に失敗しました"
		case "value_error":
			return "宣言の引数が不正です"
		case "bit_integer_error":
			return "ビット整数の変換に失敗しました"
		case "mapping_error":
			return "対応付けが見つかりません"
		case "const_error":
			return "固定値が一致しません"
		case "padding_error":
			return "パディングが一致しません"
		case "validation_error":
			return "検証に失敗しました"
		case "invalid_type":
			return "型が不正です"
		case "parse_error":
			return "解析エラー"
		case "truncated":
			return "打ち切られました"
		}
	default: // "en"
		switch code {
		case "field_error":
			return "field read/write failed"
		case "sizeof_error":
			return "size computation failed"
		case "value_error":
			return "invalid declaration argument"
		case "bit_integer_error":
			return "bit integer conversion failed"
		case "mapping_error":
			return "no mapping for value"
		case "const_error":
			return "constant mismatch"
		case "padding_error":
			return "padding mismatch"
		case "validation_error":
			return "validation failed"
		case "invalid_type":
			return "invalid type"
		case "parse_error":
			return "parse error"
		case "truncated":
			return "truncated"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
