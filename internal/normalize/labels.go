package normalize

import "strings"

// defaultTypeKey is the sentinel used when a raw record carries no type code.
const defaultTypeKey = "supporting_document"

// displayLabels maps known document type codes to their human labels.
// Unknown codes fall back to humanized raw values.
var displayLabels = map[string]string{
	"letter_of_credit":       "Letter of Credit",
	"commercial_invoice":     "Commercial Invoice",
	"proforma_invoice":       "Proforma Invoice",
	"bill_of_lading":         "Bill of Lading",
	"airway_bill":            "Airway Bill",
	"packing_list":           "Packing List",
	"certificate_of_origin":  "Certificate of Origin",
	"insurance_certificate":  "Insurance Certificate",
	"insurance_policy":       "Insurance Policy",
	"inspection_certificate": "Inspection Certificate",
	"bill_of_exchange":       "Bill of Exchange",
	"draft":                  "Draft",
	"beneficiary_statement":  "Beneficiary Statement",
	"weight_certificate":     "Weight Certificate",
	"supporting_document":    "Supporting Document",
}

// displayType resolves a raw type code to its human label. Lookup keys are
// lowercased with whitespace collapsed to underscores; codes outside the
// label table are humanized instead.
func displayType(typeKey string) string {
	key := strings.ToLower(strings.TrimSpace(typeKey))
	key = strings.Join(strings.Fields(key), "_")
	if label, ok := displayLabels[key]; ok {
		return label
	}
	return humanize(typeKey)
}

// humanize turns a raw type code like "customs_declaration" into
// "Customs Declaration".
func humanize(raw string) string {
	words := strings.Fields(strings.ReplaceAll(raw, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
