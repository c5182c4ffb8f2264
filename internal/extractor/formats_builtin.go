package extractor

import "regexp"

// DefaultFormatName is the format assumed when the caller does not name one.
const DefaultFormatName = "generic"

var (
	// defaultDatePattern matches the D[D].M[M].YYYY date token German bank
	// exports lead each transaction with.
	defaultDatePattern = regexp.MustCompile(`\d{1,2}\.\d{1,2}\.\d{4}`)

	// defaultAmountPattern matches the trailing amount token at a line end,
	// optionally followed by a currency marker. The integer part is either
	// dot-grouped (2.500,00) or an unseparated digit run (1234,56).
	defaultAmountPattern = regexp.MustCompile(`(?m)[+-]?(?:\d{1,3}(?:\.\d{3})+|\d+),\d{2}\s*(?:EUR|€)?\s*$`)

	defaultRecipientPrefixes = []string{"Von ", "An ", "Fuer ", "Für ", "VON ", "AN "}
)

// Built-in formats. Each bank differs only in the transaction-type keywords
// that follow the date in its block-boundary signature.
func init() {
	Register(Format{
		Name: DefaultFormatName,
		Boundary: regexp.MustCompile(
			`\d{1,2}\.\d{1,2}\.\d{4}\s+(?:Ueberweisung|Überweisung|Lastschrift|Gutschrift|Dauerauftrag|Kartenzahlung|Abbuchung|Entgelt|Gehalt)`),
		DatePattern:       defaultDatePattern,
		AmountPattern:     defaultAmountPattern,
		RecipientPrefixes: defaultRecipientPrefixes,
	})

	Register(Format{
		Name: "sparkasse",
		Boundary: regexp.MustCompile(
			`\d{1,2}\.\d{1,2}\.\d{4}\s+(?:KARTENZAHLUNG|LASTSCHRIFT|GUTSCHR\. UEBERWEISUNG|DAUERAUFTRAG|ONLINE-UEBERWEISUNG|BARGELDAUSZAHLUNG|ENTGELTABSCHLUSS|LOHN GEHALT)`),
		DatePattern:       defaultDatePattern,
		AmountPattern:     defaultAmountPattern,
		RecipientPrefixes: defaultRecipientPrefixes,
	})

	Register(Format{
		Name: "volksbank",
		Boundary: regexp.MustCompile(
			`\d{1,2}\.\d{1,2}\.\d{4}\s+(?:SEPA-Ueberweisung|SEPA-Überweisung|SEPA-Lastschrift|SEPA-Gutschrift|Dauerauftrag|Kartenzahlung girocard|Auszahlung girocard|Abschluss)`),
		DatePattern:       defaultDatePattern,
		AmountPattern:     defaultAmountPattern,
		RecipientPrefixes: defaultRecipientPrefixes,
	})
}
