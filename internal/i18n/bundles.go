package i18n

// Language is a supported message language code.
type Language string

// Supported language codes.
const (
	LangEN Language = "en"
	LangKO Language = "ko"
	LangJA Language = "ja"
	LangZH Language = "zh"
	LangDE Language = "de"
	LangFR Language = "fr"
	LangES Language = "es"
)

// BaseLanguage is the fallback for unsupported or undetectable locales.
const BaseLanguage = LangEN

// Message keys.
const (
	KeyCompleted         = "completed"
	KeySeconds           = "seconds"
	KeyPermissionRequest = "permission_request"
)

// bundles holds the message catalogs per language.
var bundles = map[Language]map[string]string{
	LangEN: {
		KeyCompleted:         "Completed",
		KeySeconds:           "seconds",
		KeyPermissionRequest: "Permission Request",
	},
	LangKO: {
		KeyCompleted:         "완료",
		KeySeconds:           "초",
		KeyPermissionRequest: "권한 요청",
	},
	LangJA: {
		KeyCompleted:         "完了",
		KeySeconds:           "秒",
		KeyPermissionRequest: "権限リクエスト",
	},
	LangZH: {
		KeyCompleted:         "已完成",
		KeySeconds:           "秒",
		KeyPermissionRequest: "权限请求",
	},
	LangDE: {
		KeyCompleted:         "Abgeschlossen",
		KeySeconds:           "Sekunden",
		KeyPermissionRequest: "Berechtigungsanfrage",
	},
	LangFR: {
		KeyCompleted:         "Terminé",
		KeySeconds:           "secondes",
		KeyPermissionRequest: "Demande d'autorisation",
	},
	LangES: {
		KeyCompleted:         "Completado",
		KeySeconds:           "segundos",
		KeyPermissionRequest: "Solicitud de permiso",
	},
}

// IsSupported reports whether code is a supported language.
func IsSupported(code Language) bool {
	_, ok := bundles[code]
	return ok
}

// Bundle resolves message keys for one language.
type Bundle struct {
	lang Language
}

// NewBundle creates a Bundle for the given language, falling back to the
// base language when unsupported.
func NewBundle(lang Language) *Bundle {
	if !IsSupported(lang) {
		lang = BaseLanguage
	}

	return &Bundle{lang: lang}
}

// Language returns the bundle's language code.
func (b *Bundle) Language() Language {
	return b.lang
}

// T looks up a message key.
//
// Lookup order is the bundle's language, then the base language, then the
// raw key itself. It never fails.
func (b *Bundle) T(key string) string {
	if msg, ok := bundles[b.lang][key]; ok {
		return msg
	}

	if msg, ok := bundles[BaseLanguage][key]; ok {
		return msg
	}

	return key
}
