package state

import "github.com/MKhiriev/go-shop-front/models"

// BootstrapAdminEmail identifies the built-in admin account. Hydration
// recreates this account whenever the users collection lacks it.
const BootstrapAdminEmail = "admin@yiopatretruck.com"

func seedAdmin() models.User {
	return models.User{
		ID:        1,
		Email:     BootstrapAdminEmail,
		Password:  "admin123",
		FirstName: "Admin",
		LastName:  "User",
		Phone:     "+1 (555) 123-4567",
		Joined:    "2024-01-01",
		IsAdmin:   true,
		Addresses: []models.Address{},
	}
}

func seedUsers() []models.User {
	return []models.User{
		seedAdmin(),
		{
			ID:        2,
			Email:     "user@test.com",
			Password:  "user123",
			FirstName: "John",
			LastName:  "Doe",
			Phone:     "+1 (555) 987-6543",
			Joined:    "2024-01-15",
			IsAdmin:   false,
			Addresses: []models.Address{},
		},
	}
}

func seedCategories() []models.Category {
	return []models.Category{
		{ID: "Filters", Name: "Filters", Icon: "fas fa-filter"},
		{ID: "Brakes", Name: "Brakes", Icon: "fas fa-stop"},
		{ID: "Lights", Name: "Lights", Icon: "fas fa-lightbulb"},
		{ID: "Engine", Name: "Engine", Icon: "fas fa-cog"},
		{ID: "Transmission", Name: "Transmission", Icon: "fas fa-gears"},
		{ID: "Suspension", Name: "Suspension", Icon: "fas fa-square"},
		{ID: "Electrical", Name: "Electrical", Icon: "fas fa-bolt"},
		{ID: "Cooling", Name: "Cooling", Icon: "fas fa-snowflake"},
		{ID: "Fuel System", Name: "Fuel System", Icon: "fas fa-gas-pump"},
		{ID: "Exhaust", Name: "Exhaust", Icon: "fas fa-wind"},
	}
}

func seedFAQ() []models.FAQEntry {
	return []models.FAQEntry{
		{
			Question: "How long does delivery take?",
			Answer:   "Orders placed before noon ship the same day. Standard delivery takes 2-5 business days depending on your region.",
		},
		{
			Question: "Do you offer a warranty on parts?",
			Answer:   "Yes. Every part carries a manufacturer warranty, listed on the product page in months. Keep your order reference for warranty claims.",
		},
		{
			Question: "Can I return a part that does not fit?",
			Answer:   "Unused parts in original packaging can be returned within 30 days of delivery. Electrical parts are non-returnable once installed.",
		},
		{
			Question: "How do I check compatibility with my truck?",
			Answer:   "Each product lists its reference code and supported engine models in the description. Contact support with your VIN if you are unsure.",
		},
		{
			Question: "Which payment methods do you accept?",
			Answer:   "We accept major credit cards and bank transfer. Payment is collected at checkout.",
		},
	}
}

func seedProducts() []models.Product {
	return []models.Product{
		// Filters
		{ID: 1, Name: "Heavy Duty Air Filter", Ref: "AF-HD900", Category: "Filters", Brand: "MANN-FILTER", Price: 599.00, Stock: 40, Featured: true, WarrantyMonths: 6, Image: "images/filter1.jpg", Description: "Heavy-duty air filter providing maximum engine protection in dusty environments. Designed for commercial trucks."},
		{ID: 2, Name: "Fuel Water Separator Filter", Ref: "FWS-750", Category: "Filters", Brand: "Baldwin", Price: 895.00, Stock: 25, WarrantyMonths: 12, Image: "images/filter2.jpg", Description: "Advanced fuel filtration system with water separation for diesel engines."},
		{ID: 3, Name: "High Performance Oil Filter", Ref: "OF-HP550", Category: "Filters", Brand: "Fleetguard", Price: 427.00, Stock: 60, WarrantyMonths: 12, Image: "images/filter3.jpg", Description: "Premium oil filter with synthetic media for extended service intervals."},
		{ID: 4, Name: "Cabin Air Filter", Ref: "CAF-300", Category: "Filters", Brand: "WIX", Price: 360.00, Stock: 35, WarrantyMonths: 6, Image: "images/filter4.jpg", Description: "HEPA cabin air filter for improved air quality in truck cabins."},
		{ID: 5, Name: "Hydraulic Filter Kit", Ref: "HFK-8800", Category: "Filters", Brand: "Donaldson", Price: 1250.00, Stock: 15, WarrantyMonths: 12, Image: "images/filter5.jpg", Description: "Complete hydraulic filtration kit for heavy equipment and trucks."},

		// Brakes
		{ID: 6, Name: "Heavy Duty Brake Pad Set", Ref: "BP-HD880", Category: "Brakes", Brand: "Meritor", Price: 2899.00, Stock: 30, Featured: true, WarrantyMonths: 24, Image: "images/brake1.jpg", Description: "Ceramic brake pads for commercial trucks with extended lifespan."},
		{ID: 7, Name: "Air Brake Chamber", Ref: "ABC-XL30", Category: "Brakes", Brand: "Bendix", Price: 1455.00, Stock: 40, WarrantyMonths: 18, Image: "images/brake2.jpg", Description: "Reliable air brake chamber for heavy-duty truck applications."},
		{ID: 8, Name: "Brake Rotor Pair", Ref: "BRP-8500", Category: "Brakes", Brand: "Eaton", Price: 4200.00, Stock: 18, WarrantyMonths: 24, Image: "images/brake3.jpg", Description: "Vented brake rotors designed for high-temperature heavy-duty use."},
		{ID: 9, Name: "Brake Caliper Assembly", Ref: "BCA-7765", Category: "Brakes", Brand: "Knorr-Bremse", Price: 3257.00, Stock: 22, WarrantyMonths: 12, Image: "images/brake4.jpg", Description: "Complete brake caliper assembly with mounting hardware."},
		{ID: 10, Name: "ABS Sensor", Ref: "ABS-T45", Category: "Brakes", Brand: "WABCO", Price: 899.00, Stock: 50, WarrantyMonths: 12, Image: "images/brake5.jpg", Description: "Wheel speed sensor for anti-lock braking systems."},

		// Lights
		{ID: 11, Name: "LED Headlight Pair", Ref: "LED-HL900", Category: "Lights", Brand: "Peterson", Price: 1999.00, Stock: 45, Featured: true, WarrantyMonths: 36, Image: "images/light1.jpg", Description: "Bright LED headlights with 10,000 lumens output for improved visibility."},
		{ID: 12, Name: "LED Work Light Bar", Ref: "WL-50IN", Category: "Lights", Brand: "Rigid Industries", Price: 4500.00, Stock: 20, WarrantyMonths: 60, Image: "images/light2.jpg", Description: "50-inch LED light bar with spot/flood combo pattern."},
		{ID: 13, Name: "LED Tail Light Assembly", Ref: "TL-LED88", Category: "Lights", Brand: "Grote", Price: 1655.00, Stock: 35, WarrantyMonths: 24, Image: "images/light3.jpg", Description: "Complete LED tail light assembly with stop, turn, and reverse functions."},
		{ID: 14, Name: "LED Marker Light Set", Ref: "ML-SET10", Category: "Lights", Brand: "Truck-Lite", Price: 752.50, Stock: 60, WarrantyMonths: 36, Image: "images/light4.jpg", Description: "Set of 10 LED clearance and marker lights with mounting hardware."},
		{ID: 15, Name: "LED Fog Light Kit", Ref: "FL-KIT22", Category: "Lights", Brand: "KC HiLites", Price: 1899.99, Stock: 25, WarrantyMonths: 24, Image: "images/light5.jpg", Description: "High-performance LED fog light kit with mounting brackets."},

		// Engine
		{ID: 16, Name: "Turbocharger Assembly", Ref: "TURBO-ISX15", Category: "Engine", Brand: "Cummins", Price: 24500.00, Stock: 8, Featured: true, WarrantyMonths: 24, Image: "images/turbo1.jpg", Description: "Complete turbocharger assembly for Cummins ISX15 engine."},
		{ID: 17, Name: "Heavy Duty Alternator", Ref: "ALT-270A", Category: "Engine", Brand: "Delco Remy", Price: 4857.50, Stock: 25, WarrantyMonths: 18, Image: "images/turbo2.jpg", Description: "270-amp heavy duty alternator for commercial vehicles."},
		{ID: 18, Name: "Water Pump", Ref: "WP-M11", Category: "Engine", Brand: "Mack", Price: 3255.00, Stock: 30, WarrantyMonths: 12, Image: "images/turbo3.jpg", Description: "Heavy duty water pump for Mack M11 engine applications."},
		{ID: 19, Name: "Glow Plug Set", Ref: "GP-SET8", Category: "Engine", Brand: "Beru", Price: 1455.00, Stock: 45, WarrantyMonths: 12, Image: "images/plug4.jpg", Description: "Set of 8 glow plugs for diesel engine cold starts."},
		{ID: 20, Name: "Engine Mount Kit", Ref: "EMK-4400", Category: "Engine", Brand: "Vibratech", Price: 4202.50, Stock: 18, WarrantyMonths: 24, Image: "images/turbo4.jpg", Description: "Complete engine mount kit for heavy-duty vibration reduction."},

		// Transmission
		{ID: 21, Name: "Heavy Duty Clutch Kit", Ref: "CLUTCH-FS6606", Category: "Transmission", Brand: "Eaton", Price: 8500.00, Stock: 15, Featured: true, WarrantyMonths: 24, Image: "images/clutch1.jpg", Description: "Complete clutch kit for heavy-duty truck transmissions."},
		{ID: 22, Name: "Transmission Filter Kit", Ref: "TFK-ALLISON", Category: "Transmission", Brand: "Allison", Price: 955.00, Stock: 40, WarrantyMonths: 12, Image: "images/clutch2.jpg", Description: "Transmission filter and gasket kit for Allison transmissions."},
		{ID: 23, Name: "U-Joint Kit", Ref: "UJ-1880", Category: "Transmission", Brand: "Spicer", Price: 1655.00, Stock: 35, WarrantyMonths: 12, Image: "images/clutch3.jpg", Description: "Heavy duty universal joint kit for driveline applications."},
		{ID: 24, Name: "Transmission Mount", Ref: "TM-7765", Category: "Transmission", Brand: "Energy Suspension", Price: 899.00, Stock: 50, WarrantyMonths: 24, Image: "images/clutch4.jpg", Description: "Polyurethane transmission mount for reduced movement."},
		{ID: 25, Name: "Shift Fork Assembly", Ref: "SFA-13SP", Category: "Transmission", Brand: "Fuller", Price: 3250.00, Stock: 12, WarrantyMonths: 12, Image: "images/clutch5.jpg", Description: "Shift fork assembly for 13-speed manual transmissions."},

		// Suspension
		{ID: 26, Name: "Air Spring Assembly", Ref: "AIR-8800", Category: "Suspension", Brand: "Firestone", Price: 3850.00, Stock: 30, Featured: true, WarrantyMonths: 24, Image: "images/air1.jpg", Description: "Heavy duty air spring assembly for truck suspension systems."},
		{ID: 27, Name: "Leaf Spring Set", Ref: "LS-35000", Category: "Suspension", Brand: "Hendrickson", Price: 12500.00, Stock: 10, WarrantyMonths: 36, Image: "images/air2.png", Description: "Complete leaf spring set for tandem axle trucks."},
		{ID: 28, Name: "Shock Absorber Pair", Ref: "SHOCK-MT45", Category: "Suspension", Brand: "Monroe", Price: 2255.00, Stock: 40, WarrantyMonths: 24, Image: "images/air3.jpg", Description: "Heavy duty shock absorbers for commercial vehicle applications."},
		{ID: 29, Name: "Track Bar Assembly", Ref: "TB-7765", Category: "Suspension", Brand: "Daystar", Price: 1899.99, Stock: 25, WarrantyMonths: 12, Image: "images/air4.jpg", Description: "Adjustable track bar for improved axle alignment."},
		{ID: 30, Name: "Suspension Bushings Kit", Ref: "SBK-FULL", Category: "Suspension", Brand: "Energy Suspension", Price: 1455.00, Stock: 35, WarrantyMonths: 24, Image: "images/air5.jpg", Description: "Complete polyurethane suspension bushing kit."},

		// Electrical
		{ID: 31, Name: "Heavy Duty Battery", Ref: "BATT-31HD", Category: "Electrical", Brand: "Interstate", Price: 2899.99, Stock: 50, Featured: true, WarrantyMonths: 36, Image: "images/battery1.jpg", Description: "Group 31 heavy duty commercial truck battery with 950 CCA."},
		{ID: 32, Name: "Starter Motor", Ref: "STARTER-DD15", Category: "Electrical", Brand: "Bosch", Price: 5250.00, Stock: 18, WarrantyMonths: 24, Image: "images/battery2.png", Description: "High torque starter motor for Detroit Diesel DD15 engines."},
		{ID: 33, Name: "Wiring Harness", Ref: "WH-TRUCK", Category: "Electrical", Brand: "Painless Performance", Price: 4507.50, Stock: 12, WarrantyMonths: 12, Image: "images/battery3.jpg", Description: "Complete 12-circuit wiring harness for truck electrical systems."},
		{ID: 34, Name: "Circuit Breaker Panel", Ref: "CBP-16", Category: "Electrical", Brand: "Blue Sea Systems", Price: 1899.50, Stock: 30, WarrantyMonths: 24, Image: "images/battery4.jpg", Description: "16-circuit breaker panel with waterproof cover."},
		{ID: 35, Name: "Voltage Regulator", Ref: "VR-28SI", Category: "Electrical", Brand: "Leece Neville", Price: 955.00, Stock: 45, WarrantyMonths: 12, Image: "images/battery5.jpg", Description: "External voltage regulator for 28SI series alternators."},

		// Cooling
		{ID: 36, Name: "Heavy Duty Radiator", Ref: "RAD-HD400", Category: "Cooling", Brand: "Mishimoto", Price: 12500.00, Stock: 10, Featured: true, WarrantyMonths: 36, Image: "images/fan1.jpg", Description: "Aluminum heavy duty radiator for commercial truck applications."},
		{ID: 37, Name: "Intercooler Assembly", Ref: "IC-ISX15", Category: "Cooling", Brand: "Banks Power", Price: 8500.00, Stock: 15, WarrantyMonths: 24, Image: "images/fan2.jpg", Description: "High efficiency intercooler for Cummins ISX15 engines."},
		{ID: 38, Name: "Coolant Reservoir", Ref: "CR-5GAL", Category: "Cooling", Brand: "Spectra Premium", Price: 1455.00, Stock: 35, WarrantyMonths: 12, Image: "images/fan3.jpg", Description: "5-gallon coolant overflow reservoir with mounting brackets."},
		{ID: 39, Name: "Radiator Fan Clutch", Ref: "FC-VISCO", Category: "Cooling", Brand: "Horton", Price: 3250.00, Stock: 25, WarrantyMonths: 12, Image: "images/fan4.jpg", Description: "Viscous fan clutch for heavy duty cooling systems."},
		{ID: 40, Name: "Cooling Fan Assembly", Ref: "FAN-38IN", Category: "Cooling", Brand: "Flex-a-lite", Price: 4202.50, Stock: 20, WarrantyMonths: 24, Image: "images/fan5.jpg", Description: "38-inch electric cooling fan with shroud assembly."},

		// Fuel System
		{ID: 41, Name: "Fuel Injection Pump", Ref: "FIP-P7100", Category: "Fuel System", Brand: "Bosch", Price: 18500.00, Stock: 8, Featured: true, WarrantyMonths: 24, Image: "images/fuel1.jpg", Description: "P7100 fuel injection pump for Cummins diesel engines."},
		{ID: 42, Name: "Fuel Tank", Ref: "FT-100GAL", Category: "Fuel System", Brand: "Transfer Flow", Price: 9507.50, Stock: 12, WarrantyMonths: 60, Image: "images/fuel2.jpg", Description: "100-gallon aluminum fuel tank with mounting hardware."},
		{ID: 43, Name: "Fuel Injector Set", Ref: "INJ-SET6", Category: "Fuel System", Brand: "Denso", Price: 12500.50, Stock: 15, WarrantyMonths: 24, Image: "images/fuel3.png", Description: "Set of 6 remanufactured fuel injectors for diesel engines."},
		{ID: 44, Name: "Fuel Lines Kit", Ref: "FLK-COMPLETE", Category: "Fuel System", Brand: "Russell", Price: 2899.99, Stock: 25, WarrantyMonths: 12, Image: "images/fuel4.jpg", Description: "Complete stainless steel braided fuel line kit."},
		{ID: 45, Name: "Fuel Cap Assembly", Ref: "FC-LOCKING", Category: "Fuel System", Brand: "Stant", Price: 457.50, Stock: 60, WarrantyMonths: 12, Image: "images/fuel5.jpg", Description: "Locking fuel cap with tether for commercial vehicles."},

		// Exhaust
		{ID: 46, Name: "Performance Exhaust System", Ref: "EXH-5IN", Category: "Exhaust", Brand: "MagnaFlow", Price: 12500.00, Stock: 15, Featured: true, WarrantyMonths: 60, Image: "images/exhaust1.jpg", Description: "5-inch aluminized performance exhaust system for trucks."},
		{ID: 47, Name: "Diesel Particulate Filter", Ref: "DPF-DD15", Category: "Exhaust", Brand: "Donaldson", Price: 28500.00, Stock: 8, WarrantyMonths: 24, Image: "images/exhaust2.jpg", Description: "EPA compliant DPF filter for Detroit Diesel DD15 engines."},
		{ID: 48, Name: "Exhaust Manifold", Ref: "EM-CAT15", Category: "Exhaust", Brand: "Banks Power", Price: 6507.50, Stock: 20, WarrantyMonths: 24, Image: "images/exhaust3.jpg", Description: "High-flow exhaust manifold for Caterpillar C15 engines."},
		{ID: 49, Name: "Muffler Assembly", Ref: "MUFF-8IN", Category: "Exhaust", Brand: "Walker", Price: 3250.00, Stock: 30, WarrantyMonths: 36, Image: "images/exhaust4.jpg", Description: "8-inch round heavy duty muffler for commercial trucks."},
		{ID: 50, Name: "Exhaust Clamp Kit", Ref: "ECK-10PK", Category: "Exhaust", Brand: "Bandclamp", Price: 899.99, Stock: 50, WarrantyMonths: 12, Image: "images/exhaust5.jpg", Description: "Kit of 10 heavy duty band clamps for exhaust systems."},
	}
}
