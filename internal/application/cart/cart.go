// Package cart implementa el agregado en memoria de la orden en construcción.
// Un carrito pertenece a una sola sesión interactiva; no se comparte entre
// goroutines ni se persiste.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/brewpoint/pos-api/internal/application/checkout"
	"github.com/brewpoint/pos-api/internal/domain/entity"
)

// Line es una línea del carrito: producto, cantidad y personalizaciones.
type Line struct {
	Product        entity.Product
	Quantity       int64
	Customizations []entity.Customization
	mergeKey       string
}

// Totals subtotal, impuesto y total del carrito.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// Cart colección ordenada de líneas.
type Cart struct {
	lines []*Line
}

// New crea un carrito vacío.
func New() *Cart {
	return &Cart{}
}

// Add agrega una unidad del producto sin personalizaciones. Si ya existe una
// línea con la misma clave (producto sin personalizar), incrementa su cantidad.
func (c *Cart) Add(product entity.Product) {
	c.AddWithOptions(product, nil)
}

// AddWithOptions agrega una unidad con personalizaciones. La clave de fusión
// es (producto, personalizaciones canónicas): el mismo producto con distintas
// personalizaciones genera líneas separadas.
func (c *Cart) AddWithOptions(product entity.Product, customizations []entity.Customization) {
	encoded, err := entity.EncodeCustomizations(customizations)
	if err != nil {
		// Una personalización no serializable no debe perder la venta: la línea
		// entra sin personalizaciones.
		encoded = "[]"
		customizations = nil
	}
	key := product.ID + "|" + encoded
	for _, line := range c.lines {
		if line.mergeKey == key {
			line.Quantity++
			return
		}
	}
	c.lines = append(c.lines, &Line{
		Product:        product,
		Quantity:       1,
		Customizations: customizations,
		mergeKey:       key,
	})
}

// Remove elimina todas las líneas del producto (la línea completa, no unidad
// por unidad).
func (c *Cart) Remove(productID string) {
	kept := c.lines[:0]
	for _, line := range c.lines {
		if line.Product.ID != productID {
			kept = append(kept, line)
		}
	}
	c.lines = kept
}

// Clear vacía el carrito.
func (c *Cart) Clear() {
	c.lines = nil
}

// Len cantidad de líneas.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Items devuelve las líneas en orden de inserción.
func (c *Cart) Items() []Line {
	out := make([]Line, len(c.lines))
	for i, line := range c.lines {
		out[i] = *line
	}
	return out
}

// Totals calcula subtotal = Σ(precio × cantidad), impuesto y total. La
// acumulación es exacta (decimal); el redondeo a 2 decimales ocurre solo aquí,
// nunca en pasos intermedios.
func (c *Cart) Totals() Totals {
	subtotal := decimal.Zero
	for _, line := range c.lines {
		subtotal = subtotal.Add(line.Product.Price.Mul(decimal.NewFromInt(line.Quantity)))
	}
	subtotal = subtotal.Round(2)
	tax := subtotal.Mul(checkout.TaxRate).Round(2)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

// CheckoutLines exporta las líneas como entrada del cierre de orden, con el
// precio vigente del producto como snapshot de unit_price.
func (c *Cart) CheckoutLines() []checkout.LineInput {
	out := make([]checkout.LineInput, len(c.lines))
	for i, line := range c.lines {
		out[i] = checkout.LineInput{
			ProductID:      line.Product.ID,
			Quantity:       line.Quantity,
			UnitPrice:      line.Product.Price,
			Customizations: line.Customizations,
		}
	}
	return out
}
