package catalog

// Seed is the deployment catalog. Prices are whole naira.
var Seed = []Product{
	{
		ID:               "1",
		Slug:             "xp600-large-format-printer",
		Name:             "XP600 Large Format Printer (10ft)",
		Description:      "Professional 10-feet XP600 large format eco-solvent printer for flex banners, vinyl, SAV and more.",
		ShortDescription: "10ft eco-solvent, XP600 print heads",
		Image:            "/images/products/xp600-large-format.png",
		Category:         "printing-machines",
		BasePrice:        2500000,
		Features: []string{
			"10-feet (3.2m) print width",
			"XP600 print heads",
			"Eco-solvent ink compatible",
			"Warranty & installation support",
		},
	},
	{
		ID:               "2",
		Slug:             "heat-press-machine",
		Name:             "Heat Press Machine",
		Description:      "Flat heat press machine for t-shirt printing, sublimation transfers and vinyl heat transfer.",
		ShortDescription: "Flat press, sublimation & vinyl transfer",
		Image:            "/images/products/heat-press-machine.png",
		Category:         "printing-machines",
		BasePrice:        75000,
		Options: []Option{
			{
				ID:   "size",
				Name: "Platen Size",
				Values: []OptionValue{
					{ID: "small", Label: `12"x15" Standard`, PriceModifier: 0},
					{ID: "large", Label: `15"x15" Large`, PriceModifier: 15000},
				},
			},
		},
		Features: []string{
			"Digital temperature & timer control",
			"Even heat distribution",
			"Durable steel frame",
		},
	},
	{
		ID:               "3",
		Slug:             "flex-banner-rolls",
		Name:             "Flex Banner Material (Rolls)",
		Description:      "High-quality PVC flex banner material for large format printing. Bulk pricing for resellers and print shops.",
		ShortDescription: "PVC flex banner, frontlit/backlit/blockout",
		Image:            "/images/products/flex-banner-rolls.png",
		Category:         "raw-materials",
		BasePrice:        18000,
		QuantityTiers: []QuantityTier{
			{Min: 1, Max: 4, PricePerUnit: 18000},
			{Min: 5, Max: 9, PricePerUnit: 16000},
			{Min: 10, Max: 49, PricePerUnit: 15000},
		},
		Options: []Option{
			{
				ID:   "type",
				Name: "Banner Type",
				Values: []OptionValue{
					{ID: "frontlit", Label: "Frontlit", PriceModifier: 0},
					{ID: "backlit", Label: "Backlit", PriceModifier: 2000},
					{ID: "blockout", Label: "Blockout", PriceModifier: 3500},
				},
			},
		},
		Features: []string{
			"Weather-resistant PVC",
			"Vivid eco-solvent ink uptake",
			"Sold per roll",
		},
	},
	{
		ID:               "4",
		Slug:             "business-cards",
		Name:             "Premium Business Cards",
		Description:      "Full-colour business cards on 350gsm board with matte or gloss lamination. Per-pack pricing drops at volume.",
		ShortDescription: "350gsm, matte or gloss lamination",
		Image:            "/images/products/business-cards.png",
		Category:         "print-services",
		BasePrice:        1500,
		QuantityTiers: []QuantityTier{
			{Min: 1, Max: 9, PricePerUnit: 1500},
			{Min: 10, Max: 49, PricePerUnit: 1200},
			{Min: 50, Max: 199, PricePerUnit: 1000},
		},
		Options: []Option{
			{
				ID:   "finish",
				Name: "Finish",
				Values: []OptionValue{
					{ID: "matte", Label: "Matte Lamination", PriceModifier: 0},
					{ID: "gloss", Label: "Gloss Lamination", PriceModifier: 300},
					{ID: "spot-uv", Label: "Spot UV", PriceModifier: 800},
				},
			},
		},
		Features: []string{
			"350gsm board",
			"Full colour both sides",
			"Free basic layout check",
		},
	},
	{
		ID:               "5",
		Slug:             "branded-tshirts",
		Name:             "Branded T-Shirts",
		Description:      "Cotton round-neck t-shirts with your print, front and back. Quantity pricing for events and staff uniforms.",
		ShortDescription: "Cotton round-neck, front & back print",
		Image:            "/images/products/branded-tshirts.png",
		Category:         "branding",
		BasePrice:        4500,
		QuantityTiers: []QuantityTier{
			{Min: 10, Max: 49, PricePerUnit: 4500},
			{Min: 50, Max: 199, PricePerUnit: 4000},
			{Min: 200, Max: 999, PricePerUnit: 3500},
		},
		Options: []Option{
			{
				ID:   "colour",
				Name: "Shirt Colour",
				Values: []OptionValue{
					{ID: "white", Label: "White", PriceModifier: 0},
					{ID: "black", Label: "Black", PriceModifier: 0},
					{ID: "custom", Label: "Custom Dye", PriceModifier: 25000},
				},
			},
		},
		Features: []string{
			"160gsm combed cotton",
			"Screen or DTF print",
			"Design upload supported",
		},
	},
}
