package ledger

// Category lists per transaction type, as offered by the dashboard's entry
// form. Companion transactions synthesized by cross-store actions use labels
// outside these lists ("Meta: <name>", "Pago de Cuenta", ...), so Append does
// not enforce membership; the lists exist for clients to render pickers.
var categories = map[Type][]string{
	TypeIncome: {
		"Salario",
		"Freelance",
		"Inversiones",
		"Negocios",
		"Bonos",
		"Otros",
	},
	TypeExpense: {
		"Vivienda",
		"Alimentación",
		"Transporte",
		"Salud",
		"Ocio",
		"Educación",
		"Servicios",
		"Compras",
		"Otros",
	},
	TypeSaving: {
		"Ahorro",
		"Inversión",
		"Fondo de Emergencia",
		"Meta específica",
		"Otros",
	},
}

// Categories returns the configured category names for a transaction type.
// The returned slice is a copy.
func Categories(t Type) []string {
	src := categories[t]
	if src == nil {
		return nil
	}

	out := make([]string, len(src))
	copy(out, src)

	return out
}

// ValidCategory reports whether name is one of the configured categories for
// the given type.
func ValidCategory(t Type, name string) bool {
	for _, c := range categories[t] {
		if c == name {
			return true
		}
	}

	return false
}
