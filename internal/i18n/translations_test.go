package i18n_test

import (
	"testing"

	"github.com/defterpro/defter_backend/internal/i18n"
	"github.com/stretchr/testify/assert"
)

func TestParseLang(t *testing.T) {
	assert.Equal(t, i18n.Turkish, i18n.ParseLang("tr"))
	assert.Equal(t, i18n.Arabic, i18n.ParseLang("ar"))
	assert.Equal(t, i18n.DefaultLang, i18n.ParseLang(""))
	assert.Equal(t, i18n.DefaultLang, i18n.ParseLang("en"))
}

func TestTranslationLookup(t *testing.T) {
	assert.Equal(t, "Müşteri silindi.", i18n.T(i18n.Turkish, "customer_deleted"))
	assert.Equal(t, "تم حذف العميل.", i18n.T(i18n.Arabic, "customer_deleted"))
}

func TestFormattedMessages(t *testing.T) {
	assert.Equal(t, "Kullanıcı ayşe silindi.", i18n.T(i18n.Turkish, "user_deleted", "ayşe"))
	assert.Equal(t, "تم حذف المستخدم ayşe.", i18n.T(i18n.Arabic, "user_deleted", "ayşe"))
	assert.Equal(t, "ayşe kullanıcısının şifresi sıfırlandı.", i18n.T(i18n.Turkish, "password_reset", "ayşe"))

	// No raw format verb may ever reach a client.
	for _, lang := range []i18n.Lang{i18n.Turkish, i18n.Arabic} {
		for _, key := range []string{"user_deleted", "password_reset"} {
			assert.NotContains(t, i18n.T(lang, key, "ayşe"), "%s", "unfilled placeholder in %s/%s", lang, key)
		}
	}
}

func TestTranslationFallbacks(t *testing.T) {
	// Unknown key falls back to the key itself.
	assert.Equal(t, "no_such_key", i18n.T(i18n.Arabic, "no_such_key"))
}

func TestBothLanguagesCoverSameKeys(t *testing.T) {
	keys := []string{
		"login_failed", "account_disabled", "logout_success",
		"cannot_delete_self", "cannot_disable_self", "cannot_change_own_role",
	}
	for _, key := range keys {
		tr := i18n.T(i18n.Turkish, key)
		ar := i18n.T(i18n.Arabic, key)
		assert.NotEqual(t, key, tr, "missing Turkish entry for %s", key)
		assert.NotEqual(t, key, ar, "missing Arabic entry for %s", key)
		assert.NotEqual(t, tr, ar, "Arabic entry for %s falls back to Turkish", key)
	}
}
