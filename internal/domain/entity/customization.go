package entity

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Customization es la selección de una opción aplicada a una línea de venta
// (snapshot, no referencia viva a ProductOption).
type Customization struct {
	OptionName    string          `json:"option_name"`
	OptionValue   string          `json:"option_value"`
	PriceModifier decimal.Decimal `json:"price_modifier"`
}

// EncodeCustomizations serializa la lista en JSON canónico: ordenada por
// (option_name, option_value) para que dos selecciones equivalentes produzcan
// el mismo string. Lista vacía o nil => "[]".
func EncodeCustomizations(customizations []Customization) (string, error) {
	if len(customizations) == 0 {
		return "[]", nil
	}
	sorted := make([]Customization, len(customizations))
	copy(sorted, customizations)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].OptionName != sorted[j].OptionName {
			return sorted[i].OptionName < sorted[j].OptionName
		}
		return sorted[i].OptionValue < sorted[j].OptionValue
	})
	raw, err := json.Marshal(sorted)
	if err != nil {
		return "", fmt.Errorf("serializar customizations: %w", err)
	}
	return string(raw), nil
}
