package models

import (
	"strings"

	"golang.org/x/text/language"
	"gorm.io/gorm"
)

// Settings is the single-row configuration of the backend: the reporting
// currency deciding which accounts are visible in aggregate reports, and the
// locale driving amount parsing and formatting.
type Settings struct {
	ID       uint   `json:"-" gorm:"primaryKey"`
	Currency string `json:"currency" example:"EUR"`
	Locale   string `json:"locale" example:"de"`
}

const settingsRowID = 1

// BeforeSave validates currency and locale.
func (s *Settings) BeforeSave(_ *gorm.DB) error {
	s.ID = settingsRowID
	s.Currency = strings.ToUpper(strings.TrimSpace(s.Currency))

	if len(s.Currency) != 3 {
		return ErrInvalidCurrency
	}

	if s.Locale != "" {
		if _, err := language.Parse(s.Locale); err != nil {
			return ErrInvalidLocale
		}
	}

	return nil
}

// LocaleTag returns the parsed locale. Unset or broken locales fall back
// to English.
func (s Settings) LocaleTag() language.Tag {
	tag, err := language.Parse(s.Locale)
	if err != nil {
		return language.English
	}

	return tag
}

// LoadSettings returns the stored settings, or the defaults when none were
// saved yet.
func LoadSettings(db *gorm.DB) (Settings, error) {
	settings := Settings{
		ID:       settingsRowID,
		Currency: "EUR",
		Locale:   "en",
	}

	err := db.Limit(1).Find(&settings).Error
	if err != nil {
		return settings, err
	}

	return settings, nil
}
