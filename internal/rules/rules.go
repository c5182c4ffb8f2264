// Package rules provides the ordered category rule table the
// classification engine scores transactions against. The table is data,
// not logic: new categories and merchants are added by editing the table
// (or an override YAML file), never by new code.
package rules

import (
	"fmt"

	"mwirth/statement-csv/internal/models"
)

// Default returns the built-in rule table. Order is the priority order:
// when two rules score equally, the earlier rule wins.
func Default() []models.CategoryRule {
	return []models.CategoryRule{
		{
			Category:       models.CategoryIncome,
			Patterns:       []string{"gehalt", "lohn", "salary", "bonus", "honorar", "rente", "pension", "bafoeg", "kindergeld"},
			BaseConfidence: 0.9,
		},
		{
			Category:       models.CategoryHousing,
			Patterns:       []string{"miete", "rent", "nebenkosten", "strom", "stadtwerke", "vattenfall", "e.on", "telekom", "vodafone", "o2 germany", "internet", "rundfunk"},
			BaseConfidence: 0.85,
		},
		{
			Category:       models.CategoryGroceries,
			Patterns:       []string{"rewe", "edeka", "aldi", "lidl", "netto", "penny", "kaufland", "supermarkt", "biomarkt", "wochenmarkt"},
			BaseConfidence: 0.85,
		},
		{
			Category:       models.CategoryDining,
			Patterns:       []string{"restaurant", "pizzeria", "cafe", "baeckerei", "bäckerei", "lieferando", "mcdonald", "burger king", "subway", "bistro"},
			BaseConfidence: 0.8,
		},
		{
			Category:       models.CategoryTransport,
			Patterns:       []string{"deutsche bahn", "db vertrieb", "hvv", "bvg", "mvg", "rnv", "tankstelle", "shell", "aral", "esso", "jet ", "uber", "taxi", "flixbus"},
			BaseConfidence: 0.8,
		},
		{
			Category:       models.CategoryShopping,
			Patterns:       []string{"amazon", "zalando", "otto", "ebay", "ikea", "mediamarkt", "saturn", "h&m", "rossmann", "mueller", "tchibo"},
			BaseConfidence: 0.75,
		},
		{
			Category:       models.CategorySubscriptions,
			Patterns:       []string{"netflix", "spotify", "disney", "amazon prime", "apple.com", "google play", "kino", "cinema", "steam", "audible"},
			BaseConfidence: 0.8,
		},
		{
			Category:       models.CategoryInsurance,
			Patterns:       []string{"versicherung", "allianz", "axa", "huk", "ergo", "insurance", "haftpflicht"},
			BaseConfidence: 0.85,
		},
		{
			Category:       models.CategoryHealth,
			Patterns:       []string{"apotheke", "pharmacy", "arzt", "praxis", "zahnarzt", "krankenhaus", "physiotherapie"},
			BaseConfidence: 0.8,
		},
		{
			Category:       models.CategoryCash,
			Patterns:       []string{"geldautomat", "bargeldauszahlung", "auszahlung girocard", "atm", "cash"},
			BaseConfidence: 0.85,
		},
		{
			Category:       models.CategoryBankFees,
			Patterns:       []string{"entgelt", "gebuehr", "gebühr", "kontofuehrung", "kontoführung", "entgeltabschluss", "zinsen"},
			BaseConfidence: 0.8,
		},
		{
			Category:       models.CategoryTravel,
			Patterns:       []string{"hotel", "airbnb", "booking.com", "lufthansa", "ryanair", "eurowings", "hostel"},
			BaseConfidence: 0.75,
		},
	}
}

// Validate checks a rule table for usable entries: every rule needs a
// category, at least one pattern, and a base confidence in (0,1].
func Validate(table []models.CategoryRule) error {
	for i, rule := range table {
		if rule.Category == "" {
			return fmt.Errorf("rule %d has no category", i)
		}
		if len(rule.Patterns) == 0 {
			return fmt.Errorf("rule %d (%s) has no patterns", i, rule.Category)
		}
		if rule.BaseConfidence <= 0 || rule.BaseConfidence > 1 {
			return fmt.Errorf("rule %d (%s) has base confidence %v outside (0,1]", i, rule.Category, rule.BaseConfidence)
		}
	}
	return nil
}
