package cartola

// amountMode determines how amounts are extracted from a row.
type amountMode int

const (
	// amountSigned means one signed column ("Monto" with value "-12.500,00").
	amountSigned amountMode = iota
	// amountSplit means separate charge and deposit columns ("Cargo"/"Abono").
	amountSplit
	// amountTyped means an unsigned amount column whose direction comes from
	// a separate type column ("Tipo" with INGRESO/GASTO/AHORRO).
	amountTyped
)

// Profile describes the column layout of one statement format. Supporting a
// new bank export is just adding a Profile to the profiles slice.
type Profile struct {
	Name        string
	DateCol     string
	DescCol     string
	AmountMode  amountMode
	AmountCol   string // used when AmountMode is amountSigned or amountTyped
	ChargeCol   string // used when AmountMode == amountSplit
	DepositCol  string // used when AmountMode == amountSplit
	TypeCol     string // used when AmountMode == amountTyped
	CategoryCol string // optional; rows without it get a default category
}

// requiredCols returns the column names that must be present for this
// profile to match.
func (p Profile) requiredCols() []string {
	cols := []string{p.DateCol, p.DescCol}

	switch p.AmountMode {
	case amountSigned:
		cols = append(cols, p.AmountCol)
	case amountSplit:
		cols = append(cols, p.ChargeCol, p.DepositCol)
	case amountTyped:
		cols = append(cols, p.AmountCol, p.TypeCol)
	}

	return cols
}

// profiles is the ordered list of formats tried during auto-detection.
// More specific profiles come first to avoid false matches.
var profiles = []Profile{
	{
		Name:        "respaldo",
		DateCol:     "Fecha",
		DescCol:     "Descripción",
		AmountMode:  amountTyped,
		AmountCol:   "Monto",
		TypeCol:     "Tipo",
		CategoryCol: "Categoría",
	},
	{
		Name:       "cuenta",
		DateCol:    "Fecha",
		DescCol:    "Descripción",
		AmountMode: amountSplit,
		ChargeCol:  "Cargo",
		DepositCol: "Abono",
	},
	{
		Name:       "tarjeta",
		DateCol:    "Fecha",
		DescCol:    "Descripción",
		AmountMode: amountSigned,
		AmountCol:  "Monto",
	},
}
