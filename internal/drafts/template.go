package drafts

import (
	"context"
	"fmt"
)

const englishTemplate = `Subject: Quotation - %s

Dear %s,

We are pleased to provide you with the following quotation:

Total Amount: %s %s
Delivery Terms: %s

%s

We hope our proposal meets your requirements and look forward to working with you.

Best regards,
Sales Team`

const arabicTemplate = `الموضوع: عرض سعر - %s

عزيزي/عزيزتي %s,

نتشرف بتقديم عرض السعر التالي:

إجمالي المبلغ: %s %s
شروط التسليم: %s

%s

نأمل أن يحوز عرضنا على رضاكم، ونتطلع للعمل معكم.

مع أطيب التحيات،
فريق المبيعات`

const (
	englishNotesLabel = "Additional Notes: "
	arabicNotesLabel  = "ملاحظات إضافية: "
)

// TemplateComposer renders the fixed localized email. When notes are empty
// the notes line is left blank rather than removed.
type TemplateComposer struct{}

func NewTemplateComposer() *TemplateComposer {
	return &TemplateComposer{}
}

func (TemplateComposer) Compose(_ context.Context, s Summary) Draft {
	return Draft{Text: Render(s), Mode: ModeTemplate}
}

// Render returns the template text for s.
func Render(s Summary) string {
	layout, label := englishTemplate, englishNotesLabel
	if normalizeLang(s.Lang) == LangArabic {
		layout, label = arabicTemplate, arabicNotesLabel
	}

	notesLine := ""
	if hasNotes(s.Notes) {
		notesLine = label + s.Notes
	}

	return fmt.Sprintf(layout,
		s.ClientName,
		s.ClientContact,
		FormatAmount(s.GrandTotal),
		s.Currency,
		s.DeliveryTerms,
		notesLine,
	)
}
