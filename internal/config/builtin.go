package config

// builtinProfiles are available without a profile file. A user profile with
// the same name overrides the fields it sets.
func builtinProfiles() []Profile {
	return []Profile{
		{
			Name:        "phone",
			Label:       "Phone",
			Template:    "(###) ###-####",
			Classes:     []string{"digits"},
			LeftAffix:   "+1 ",
			Placeholder: "(555) 123-4567",
		},
		{
			Name:        "date",
			Label:       "Date",
			Template:    "##/##/####",
			Classes:     []string{"digits"},
			Placeholder: "MM/DD/YYYY",
		},
		{
			Name:        "time",
			Label:       "Time",
			Template:    "##:##",
			Classes:     []string{"digits"},
			Direction:   "rtl",
			Placeholder: "HH:MM",
		},
		{
			Name:        "card",
			Label:       "Card",
			Template:    "#### #### #### ####",
			Classes:     []string{"digits"},
			Placeholder: "card number",
		},
		{
			Name:        "iban",
			Label:       "IBAN",
			Template:    "**** **** **** **** **** **** ****",
			Replacement: "*",
			Classes:     []string{"alnum"},
			Placeholder: "account",
		},
		{
			Name:        "amount",
			Label:       "Amount",
			Template:    "#,###,###.##",
			Classes:     []string{"digits"},
			Direction:   "rtl",
			LeftAffix:   "$ ",
			RightAffix:  " USD",
			Placeholder: "0.00",
		},
		{
			Name:        "weight",
			Label:       "Weight",
			Template:    "###.#",
			RightAffix:  " kg",
			Placeholder: "000.0",
		},
		{
			Name:        "note",
			Label:       "Note",
			LeftAffix:   "> ",
			Placeholder: "free text",
		},
	}
}
