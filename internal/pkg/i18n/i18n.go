package i18n

import (
	"encoding/json"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

var bundle *goi18n.Bundle

func Init() {
	bundle = goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
}

func Load(path string) error {
	_, err := bundle.LoadMessageFile(path)
	return err
}

// T resolves a message ID for the requested language, falling back to the
// message ID itself when no translation is loaded.
func T(lang, messageID string) string {
	if bundle == nil {
		return messageID
	}
	localizer := goi18n.NewLocalizer(bundle, lang)
	msg, err := localizer.Localize(&goi18n.LocalizeConfig{MessageID: messageID})
	if err != nil || msg == "" {
		return messageID
	}
	return msg
}
