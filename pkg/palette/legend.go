package palette

// Legend is a (label, description, color) triple used for classification
// and display. Built-in items are fixed; user items are appended after them
// and matched first during classification.
type Legend struct {
	Label       string `json:"label"`
	Description string `json:"description"`
	Color       Color  `json:"color"`
}

// BuiltinLegends returns the fixed legend catalog. The slice is freshly
// allocated so callers may append without clobbering the defaults.
func BuiltinLegends() []Legend {
	return []Legend{
		{"Confirmed Patient", "Confirmed patient dose scheduled", Confirmed},
		{"Maintenance Dose", "Auto-scheduled follow-up dose (MD1-MD3)", Maintenance},
		{"Placeholder Patient", "Placeholder for expected patient dose", Placeholder},
		{"Shutdown", "Equipment or facility shutdown", Shutdown},
		{"Cardinal/TPI/Niowave", "Ac225 production site activities", Partner},
		{"BWXT Order", "IN-111 Isotope", BWXT},
		{"AC225 Run-EVG", "Scheduled production of Ac225 batches at Evergreen", AC225RunEVG},
		{"IN111 Run-EVG", "Scheduled production of In111 batches at Evergreen", IN111RunEVG},
		{"AC225 Run-SRx", "Scheduled production of Ac225 batches at Spectron Rx", AC225RunSRX},
		{"IN111 Run-SRx", "Scheduled production of In111 batches at Spectron Rx", IN111RunSRX},
		{"NMCTG", "Clinical Site Qualification Event by NMCTG", NMCTG},
		{"Perceptive", "Clinical Site Qualification Event by Perceptive", Perceptive},
	}
}
