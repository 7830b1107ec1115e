package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "type" or "max").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			return "型が不正です"
		case "unknown_type":
			return "未知の型です"
		case "unknown_subcolumn":
			return "未知のサブカラムです"
		case "parse_error":
			return "解析エラー"
		case "bad_arity":
			return "引数の個数が不正です"
		case "bad_argument":
			return "引数の形式が不正です"
		case "out_of_range":
			return "値が範囲外です"
		case "too_many_types":
			return "型の数が上限を超えました"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			return "invalid type"
		case "unknown_type":
			return "unknown type"
		case "unknown_subcolumn":
			return "unknown subcolumn"
		case "parse_error":
			return "parse error"
		case "bad_arity":
			return "wrong number of arguments"
		case "bad_argument":
			return "malformed argument"
		case "out_of_range":
			return "value out of range"
		case "too_many_types":
			return "too many distinct types"
		}
	}
	return code
}

var current Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in dictionary language ("en" or "ja").
func SetLanguage(lang string) { current = dictTranslator{lang: lang} }

// SetTranslator installs a custom Translator.
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	current = tr
}

// T returns the message for code using the current Translator.
func T(code string, data map[string]string) string { return current.Message(code, data) }
