// Package drafts composes the quotation email that accompanies a quote,
// either from fixed localized templates or through a text generation
// provider with the templates as fallback.
package drafts

import (
	"context"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	LangEnglish = "en"
	LangArabic  = "ar"
)

// Mode records which path produced a draft.
type Mode string

const (
	ModeTemplate   Mode = "template"
	ModeGenerative Mode = "generative"
	ModeFallback   Mode = "fallback"
)

// Summary is the quote data an email draft is built from.
type Summary struct {
	ClientName    string
	ClientContact string
	Lang          string
	GrandTotal    float64
	Currency      string
	DeliveryTerms string
	Notes         string
}

// Draft is a composed email body.
type Draft struct {
	Text string
	Mode Mode
}

// Composer produces an email draft for a quote. Implementations never fail:
// any provider problem degrades to the template text.
type Composer interface {
	Compose(ctx context.Context, s Summary) Draft
}

// normalizeLang maps every code other than "ar" to English.
func normalizeLang(lang string) string {
	if lang == LangArabic {
		return LangArabic
	}
	return LangEnglish
}

var amountPrinter = message.NewPrinter(language.English)

// FormatAmount renders a total with thousands separators and two decimals,
// e.g. 1500.5 -> "1,500.50". The same rule applies to every language.
func FormatAmount(total float64) string {
	return amountPrinter.Sprintf("%.2f", total)
}

func hasNotes(notes string) bool {
	return notes != ""
}
