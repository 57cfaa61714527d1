package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/brewpoint/pos-api/internal/application/checkout"
	"github.com/brewpoint/pos-api/internal/domain/entity"
)

// Enumeraciones fijas del historial sintético.
var (
	synthPaymentMethods = []string{entity.PaymentCash, entity.PaymentCard, entity.PaymentMobile}
	synthCashiers       = []string{"Jane Doe", "John Cashier", "Alice Brown"}
)

// SynthesizeHistory genera un historial plausible de órdenes para los days
// días anteriores a hoy: 5–15 órdenes por día, 70% con cliente, 1–4 productos
// distintos por orden y cantidades 1–3. Cada orden pasa por el mismo camino de
// escritura que una venta real (FinalizeAt) con el timestamp retro-fechado,
// así totales, números de orden y puntos de lealtad cumplen los mismos
// invariantes.
//
// Falla rápido si la tienda no tiene productos o clientes para muestrear.
func (s *Seeder) SynthesizeHistory(
	ctx context.Context,
	days int,
	products []*entity.Product,
	customers []*entity.Customer,
) error {
	if days <= 0 {
		return nil
	}
	if len(products) == 0 {
		return fmt.Errorf("sintetizar historial: no hay productos para muestrear")
	}
	if len(customers) == 0 {
		return fmt.Errorf("sintetizar historial: no hay clientes para muestrear")
	}

	now := time.Now().UTC()
	total := 0
	for day := days; day >= 1; day-- {
		date := now.AddDate(0, 0, -day)
		dailyOrders := 5 + s.rng.Intn(11) // 5..15

		for i := 0; i < dailyOrders; i++ {
			at := time.Date(date.Year(), date.Month(), date.Day(),
				8+s.rng.Intn(10), s.rng.Intn(60), s.rng.Intn(60), 0, time.UTC)

			in := checkout.FinalizeInput{
				PaymentMethod: synthPaymentMethods[s.rng.Intn(len(synthPaymentMethods))],
				CashierName:   synthCashiers[s.rng.Intn(len(synthCashiers))],
				Lines:         s.sampleLines(products),
			}
			if s.rng.Float64() < 0.7 {
				in.CustomerID = customers[s.rng.Intn(len(customers))].ID
			}

			if _, err := s.finalize.FinalizeAt(ctx, in, at); err != nil {
				return fmt.Errorf("sintetizar orden del %s: %w", at.Format("2006-01-02"), err)
			}
			total++
		}
	}

	s.log.Info().Int("days", days).Int("orders", total).Msg("historial sintético generado")
	return nil
}

// sampleLines muestrea 1–4 productos distintos sin reemplazo, cantidad 1–3
// cada uno, con el precio vigente como snapshot.
func (s *Seeder) sampleLines(products []*entity.Product) []checkout.LineInput {
	numItems := 1 + s.rng.Intn(4)
	if numItems > len(products) {
		numItems = len(products)
	}
	perm := s.rng.Perm(len(products))

	lines := make([]checkout.LineInput, 0, numItems)
	for _, idx := range perm[:numItems] {
		p := products[idx]
		lines = append(lines, checkout.LineInput{
			ProductID: p.ID,
			Quantity:  1 + int64(s.rng.Intn(3)),
			UnitPrice: p.Price,
		})
	}
	return lines
}
