package domain

import (
	"strings"
	"unicode"
)

// Item categories known to the classifier.
const (
	CategoryITEquipment      = "IT Equipment"
	CategoryOfficeEquipment  = "Office Equipment"
	CategoryMedicalEquipment = "Medical Equipment"
	CategoryFurniture        = "Furniture and Fixtures"
	CategoryVehicles         = "Motor Vehicles"
	CategoryOfficeSupplies   = "Office Supplies"
	CategoryJanitorial       = "Janitorial Supplies"
	CategoryElectrical       = "Electrical Supplies"
	CategoryGeneralSupplies  = "General Supplies"
)

type categoryRule struct {
	category string
	keywords []string
}

// Rules are evaluated in order; the first rule with a matching keyword wins.
var categoryRules = []categoryRule{
	{CategoryITEquipment, []string{"laptop", "computer", "desktop", "printer", "monitor", "projector", "router", "server", "scanner", "ups", "tablet", "notebook computer", "network switch"}},
	{CategoryOfficeEquipment, []string{"photocopier", "copier", "shredder", "air conditioner", "aircon", "telephone", "fax", "laminator", "typewriter"}},
	{CategoryMedicalEquipment, []string{"stethoscope", "sphygmomanometer", "nebulizer", "defibrillator", "wheelchair", "hospital bed"}},
	{CategoryVehicles, []string{"vehicle", "motorcycle", "car", "van", "truck", "ambulance"}},
	{CategoryFurniture, []string{"chair", "table", "desk", "cabinet", "shelf", "shelves", "sofa", "bench", "filing", "locker"}},
	{CategoryOfficeSupplies, []string{"paper", "bond", "pen", "ballpen", "pencil", "folder", "stapler", "staple", "ink", "toner", "envelope", "notebook", "marker", "clip"}},
	{CategoryJanitorial, []string{"detergent", "soap", "mop", "broom", "tissue", "disinfectant", "alcohol", "bleach", "trash bag"}},
	{CategoryElectrical, []string{"bulb", "wire", "extension", "battery", "outlet", "breaker", "lamp"}},
}

// taggedCategories are tracked as durable assets regardless of their name.
var taggedCategories = map[string]bool{
	CategoryITEquipment:      true,
	CategoryOfficeEquipment:  true,
	CategoryMedicalEquipment: true,
	CategoryFurniture:        true,
	CategoryVehicles:         true,
}

var usefulLifeYears = map[string]int{
	CategoryITEquipment:      5,
	CategoryOfficeEquipment:  5,
	CategoryMedicalEquipment: 10,
	CategoryFurniture:        10,
	CategoryVehicles:         7,
}

const defaultUsefulLifeYears = 5

var itemCodePrefixes = map[string]string{
	CategoryITEquipment:      "ITE",
	CategoryOfficeEquipment:  "OFE",
	CategoryMedicalEquipment: "MED",
	CategoryFurniture:        "FUR",
	CategoryVehicles:         "VEH",
	CategoryOfficeSupplies:   "OFS",
	CategoryJanitorial:       "JAN",
	CategoryElectrical:       "ELS",
	CategoryGeneralSupplies:  "GEN",
}

// Classify maps a free-text line item description onto a category. It is total:
// descriptions matching no keyword fall back to General Supplies.
func Classify(description string) string {
	text := strings.ToLower(description)
	words := make(map[string]bool)
	for _, w := range strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		words[w] = true
	}

	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(kw, " ") {
				if strings.Contains(text, kw) {
					return rule.category
				}
				continue
			}
			if words[kw] {
				return rule.category
			}
		}
	}
	return CategoryGeneralSupplies
}

// RequiresTagging reports whether items of category need a property number.
func RequiresTagging(category string) bool {
	if taggedCategories[category] {
		return true
	}
	return strings.Contains(category, "Equipment") || strings.Contains(category, "Furniture")
}

// UsefulLifeYears returns the estimated useful life for a taggable category.
func UsefulLifeYears(category string) int {
	if years, ok := usefulLifeYears[category]; ok {
		return years
	}
	return defaultUsefulLifeYears
}

// ItemCodePrefix returns the sequence prefix used for item codes of category.
func ItemCodePrefix(category string) string {
	if prefix, ok := itemCodePrefixes[category]; ok {
		return prefix
	}
	var b strings.Builder
	for _, word := range strings.Fields(category) {
		r := []rune(word)
		if len(r) == 0 || !unicode.IsLetter(r[0]) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r[0]))
		if b.Len() == 4 {
			break
		}
	}
	if b.Len() == 0 {
		return itemCodePrefixes[CategoryGeneralSupplies]
	}
	prefix := b.String()
	switch prefix {
	case SequenceAdjustment, SequenceCount, SequenceProperty:
		// never share a counter with the reserved scopes
		prefix += "I"
	}
	return prefix
}
