package drafts

import "strings"

const englishPrompt = `Write a professional quotation email draft in English for client {client}.
Details:
- Total amount: {total} {currency}
- Delivery terms: {delivery}
- Additional notes: {notes}

The email should be polite, professional, and include all important details.`

const arabicPrompt = `اكتب مسودة بريد إلكتروني باللغة العربية لعرض سعر احترافي للعميل {client}.
المعلومات:
- إجمالي المبلغ: {total} {currency}
- شروط التسليم: {delivery}
- ملاحظات إضافية: {notes}

يجب أن يكون البريد مهذباً ومهنياً ويتضمن جميع التفاصيل المهمة.`

// BuildPrompt returns the instruction sent to the text generation provider.
// Language dispatch matches Render.
func BuildPrompt(s Summary) string {
	layout := englishPrompt
	if normalizeLang(s.Lang) == LangArabic {
		layout = arabicPrompt
	}
	r := strings.NewReplacer(
		"{client}", s.ClientName,
		"{total}", FormatAmount(s.GrandTotal),
		"{currency}", s.Currency,
		"{delivery}", s.DeliveryTerms,
		"{notes}", s.Notes,
	)
	return r.Replace(layout)
}
