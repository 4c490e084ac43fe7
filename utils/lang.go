package utils

import (
	"os"
	"path"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

var (
	bundle     *i18n.Bundle
	bundleOnce sync.Once
)

// messageFiles are loaded from the i18n directory when it exists
var messageFiles = []string{"en.yaml", "zh_tw.yaml"}

// DefaultMessages are the built-in english messages. Message files may
// override and translate them.
var DefaultMessages = []*i18n.Message{
	{ID: "error.validation", Other: "invalid request parameters"},
	{ID: "error.validation.required", Other: "{{.Field}} is required"},
	{ID: "error.validation.min", Other: "{{.Field}} must be at least {{.Param}}"},
	{ID: "error.validation.max", Other: "{{.Field}} must be at most {{.Param}}"},
	{ID: "error.validation.min_length", Other: "{{.Field}} must be at least {{.Param}} characters"},
	{ID: "error.validation.oneof", Other: "{{.Field}} must be one of: {{.Param}}"},
	{ID: "error.validation.invalid", Other: "{{.Field}} has an invalid value"},
	{ID: "error.auth_required", Other: "authentication required"},
	{ID: "error.not_found", Other: "resource not found"},
	{ID: "error.place_not_found", Other: "the place could not be located"},
	{ID: "error.server", Other: "internal server error"},
	{ID: "message.locations", Other: "Locations retrieved successfully"},
	{ID: "message.location", Other: "Location retrieved successfully"},
	{ID: "message.saved_locations", Other: "Saved locations retrieved successfully"},
	{ID: "message.search", Other: "Search completed successfully"},
}

// InitI18NBundle builds the message bundle from the built-in messages and
// the message files found in dir
func InitI18NBundle(dir string) {
	bundleOnce.Do(func() {
		bundle = newBundle(dir)
	})
}

func newBundle(dir string) *i18n.Bundle {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	if err := b.AddMessages(language.English, DefaultMessages...); err != nil {
		log.WithField("prefix", "i18n").WithError(err).Error("add default messages")
	}

	if dir == "" {
		return b
	}

	for _, name := range messageFiles {
		file := path.Join(dir, name)
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if _, err := b.LoadMessageFile(file); err != nil {
			log.WithField("prefix", "i18n").WithError(err).Errorf("load message file %s", file)
		}
	}

	return b
}

// NewLocalizer returns a localizer for the given languages. The values may
// be language tags or raw Accept-Language header values.
func NewLocalizer(langs ...string) *i18n.Localizer {
	InitI18NBundle("")
	return i18n.NewLocalizer(bundle, langs...)
}

// Localize translates a message, falling back to the built-in english text
func Localize(loc *i18n.Localizer, messageID string, data map[string]interface{}) string {
	msg, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err == nil {
		return msg
	}

	return messageID
}
