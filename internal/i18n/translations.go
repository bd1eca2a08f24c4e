// Package i18n holds the static translation tables for the two supported
// display languages, Turkish (default) and Arabic. Only user-facing
// messages go through these tables; business logic never branches on
// language.
package i18n

import "fmt"

// Lang identifies a supported display language.
type Lang string

const (
	Turkish Lang = "tr"
	Arabic  Lang = "ar"

	DefaultLang = Turkish
)

var translations = map[Lang]map[string]string{
	Turkish: {
		"login_success":       "Giriş başarılı.",
		"login_failed":        "Kullanıcı adı veya şifre hatalı.",
		"account_disabled":    "Hesabınız devre dışı bırakılmış.",
		"logout_success":      "Başarıyla çıkış yaptınız.",
		"user_deleted":        "Kullanıcı %s silindi.",
		"password_reset":      "%s kullanıcısının şifresi sıfırlandı.",
		"cannot_delete_self":  "Kendi hesabınızı silemezsiniz.",
		"cannot_disable_self": "Kendi hesabınızı devre dışı bırakamazsınız.",
		"cannot_change_own_role": "Kendi rolünüzü değiştiremezsiniz.",
		"forbidden":           "Bu işlem için yetkiniz yok.",
		"transaction_deleted": "İşlem silindi.",
		"customer_deleted":    "Müşteri silindi.",
		"product_deleted":     "Ürün silindi.",
		"receipt_deleted":     "Fiş silindi.",
	},
	Arabic: {
		"login_success":       "تم تسجيل الدخول بنجاح.",
		"login_failed":        "اسم المستخدم أو كلمة المرور غير صحيحة.",
		"account_disabled":    "تم تعطيل حسابك.",
		"logout_success":      "تم تسجيل الخروج بنجاح.",
		"user_deleted":        "تم حذف المستخدم %s.",
		"password_reset":      "تمت إعادة تعيين كلمة مرور المستخدم %s.",
		"cannot_delete_self":  "لا يمكنك حذف حسابك الخاص.",
		"cannot_disable_self": "لا يمكنك تعطيل حسابك الخاص.",
		"cannot_change_own_role": "لا يمكنك تغيير دورك الخاص.",
		"forbidden":           "ليست لديك صلاحية لهذه العملية.",
		"transaction_deleted": "تم حذف العملية.",
		"customer_deleted":    "تم حذف العميل.",
		"product_deleted":     "تم حذف المنتج.",
		"receipt_deleted":     "تم حذف الفاتورة.",
	},
}

// ParseLang normalises a language tag to a supported Lang, falling back to
// the default for anything unknown.
func ParseLang(tag string) Lang {
	switch Lang(tag) {
	case Turkish, Arabic:
		return Lang(tag)
	default:
		return DefaultLang
	}
}

// T returns the translation for key in the given language, formatting any
// args into the template. Unknown keys fall back to the Turkish table, then
// to the key itself so a missing entry is visible rather than silent.
func T(lang Lang, key string, args ...any) string {
	msg := key
	if table, ok := translations[lang]; ok {
		if m, ok := table[key]; ok {
			msg = m
		}
	}
	if msg == key {
		if m, ok := translations[DefaultLang][key]; ok {
			msg = m
		}
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}
