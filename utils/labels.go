package utils

// Invoice label translations, keyed by language then label key. The
// front-desk UI picks the language; the backend only resolves labels so
// printed snapshots are self-contained.
var invoiceLabels = map[string]map[string]string{
	"en": {
		"invoice":     "Invoice",
		"folio":       "Folio",
		"bill_to":     "Bill to",
		"date":        "Date",
		"description": "Description",
		"amount":      "Amount",
		"subtotal":    "Subtotal",
		"tax":         "VAT",
		"total":       "Total",
		"payments":    "Payments",
		"balance":     "Balance due",
	},
	"es": {
		"invoice":     "Factura",
		"folio":       "Folio",
		"bill_to":     "Facturar a",
		"date":        "Fecha",
		"description": "Concepto",
		"amount":      "Importe",
		"subtotal":    "Base imponible",
		"tax":         "IVA",
		"total":       "Total",
		"payments":    "Pagos",
		"balance":     "Saldo pendiente",
	},
	"th": {
		"invoice":     "ใบแจ้งหนี้",
		"folio":       "โฟลิโอ",
		"bill_to":     "เรียกเก็บเงินจาก",
		"date":        "วันที่",
		"description": "รายการ",
		"amount":      "จำนวนเงิน",
		"subtotal":    "ยอดก่อนภาษี",
		"tax":         "ภาษีมูลค่าเพิ่ม",
		"total":       "ยอดรวม",
		"payments":    "ชำระแล้ว",
		"balance":     "ยอดคงเหลือ",
	},
}

// InvoiceLabels returns the label table for lang, falling back to
// English for unknown languages.
func InvoiceLabels(lang string) map[string]string {
	if labels, ok := invoiceLabels[lang]; ok {
		return labels
	}
	return invoiceLabels["en"]
}
