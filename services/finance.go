package services

// Totals holds the financial rollup of one or more projects. Quotation is
// what was offered to the client, Real is what the work actually cost.
type Totals struct {
	Quotation  float64
	Real       float64
	ProfitLoss float64
}

// MarginPercent returns the profit margin as a percentage of the quotation,
// or zero when nothing was quoted.
func (t Totals) MarginPercent() float64 {
	if t.Quotation == 0 {
		return 0
	}
	return t.ProfitLoss / t.Quotation * 100
}

// ComputeTotals aggregates a single project. The quotation side sums the AC
// units (price x qty) plus the quotation columns of every material and
// service row; the real side sums only the real columns of the line items.
// AC units carry no real cost of their own, their spend is recorded through
// the material and service rows.
func ComputeTotals(p Project) Totals {
	var t Totals
	for _, unit := range p.ACUnits {
		t.Quotation += unit.Price * unit.Qty
	}
	for _, items := range [][]LineItem{p.Materials, p.Services} {
		for _, item := range items {
			t.Quotation += item.QuotationPrice * item.QuotationQty
			t.Real += item.RealPrice * item.RealQty
		}
	}
	t.ProfitLoss = t.Quotation - t.Real
	return t
}

// ComputeTotalsBatch aggregates a set of projects by summing their
// individual totals.
func ComputeTotalsBatch(projects []Project) Totals {
	var t Totals
	for _, p := range projects {
		pt := ComputeTotals(p)
		t.Quotation += pt.Quotation
		t.Real += pt.Real
	}
	t.ProfitLoss = t.Quotation - t.Real
	return t
}
