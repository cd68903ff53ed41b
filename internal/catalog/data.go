package catalog

// vehicleData is the static EV reference catalog. Kept in declared
// market order; capacities are usable pack sizes in kWh.
var vehicleData = []Brand{
	{Name: "Tesla", Models: []Model{
		{Name: "Model S", Capacities: []float64{100}},
		{Name: "Model 3", Capacities: []float64{57.5, 82}},
		{Name: "Model X", Capacities: []float64{100}},
		{Name: "Model Y", Capacities: []float64{60, 82}},
		{Name: "Cybertruck", Capacities: []float64{123}},
		{Name: "Roadster", Capacities: []float64{53, 200}},
	}},
	{Name: "Rivian", Models: []Model{
		{Name: "R1T", Capacities: []float64{105, 135, 149}},
		{Name: "R1S", Capacities: []float64{105, 135, 149}},
		{Name: "EDV / RCV", Capacities: []float64{100, 135}},
		{Name: "R2", Capacities: []float64{87.4, 95}},
		{Name: "R3 / R3X", Capacities: []float64{75, 87.4}},
	}},
	{Name: "Lucid", Models: []Model{
		{Name: "Air", Capacities: []float64{88, 118}},
		{Name: "Gravity", Capacities: []float64{120}},
	}},
	{Name: "Ford", Models: []Model{
		{Name: "Mustang Mach-E", Capacities: []float64{72, 91}},
		{Name: "F-150 Lightning", Capacities: []float64{98, 131}},
		{Name: "E-Transit", Capacities: []float64{68, 89}},
	}},
	{Name: "Chevrolet", Models: []Model{
		{Name: "Bolt EV / EUV", Capacities: []float64{65}},
		{Name: "Equinox EV", Capacities: []float64{85}},
		{Name: "Blazer EV", Capacities: []float64{85, 102}},
		{Name: "Silverado EV", Capacities: []float64{205}},
	}},
	{Name: "Cadillac", Models: []Model{
		{Name: "Lyriq", Capacities: []float64{102}},
		{Name: "Celestiq", Capacities: []float64{111}},
		{Name: "Optiq", Capacities: []float64{85}},
		{Name: "Escalade IQ", Capacities: []float64{200}},
		{Name: "Vistiq", Capacities: []float64{102}},
	}},
	{Name: "GMC", Models: []Model{
		{Name: "Hummer EV", Capacities: []float64{170, 212}},
		{Name: "Sierra EV", Capacities: []float64{205}},
	}},
	{Name: "Dodge", Models: []Model{
		{Name: "Charger Daytona", Capacities: []float64{94, 100.5}},
	}},
	{Name: "Jeep", Models: []Model{
		{Name: "Wagoneer S", Capacities: []float64{100.5}},
		{Name: "Recon", Capacities: []float64{100.5}},
	}},
	{Name: "Ram", Models: []Model{
		{Name: "1500 REV", Capacities: []float64{168, 229}},
		{Name: "ProMaster EV", Capacities: []float64{110}},
	}},
	{Name: "Fisker", Models: []Model{
		{Name: "Ocean", Capacities: []float64{73, 113}},
	}},
	{Name: "Volkswagen", Models: []Model{
		{Name: "ID.3", Capacities: []float64{58, 77, 79}},
		{Name: "ID.4 / ID.5", Capacities: []float64{52, 77}},
		{Name: "ID.7", Capacities: []float64{77, 86}},
		{Name: "ID. Buzz", Capacities: []float64{77, 86}},
		{Name: "e-Up!", Capacities: []float64{18.7, 32.3}},
	}},
	{Name: "Audi", Models: []Model{
		{Name: "Q8 e-tron", Capacities: []float64{89, 106}},
		{Name: "Q4 e-tron", Capacities: []float64{52, 77}},
		{Name: "Q6 / A6 e-tron", Capacities: []float64{83, 100}},
		{Name: "e-tron GT", Capacities: []float64{84, 97}},
	}},
	{Name: "Porsche", Models: []Model{
		{Name: "Taycan", Capacities: []float64{79.2, 105}},
		{Name: "Macan EV", Capacities: []float64{100}},
	}},
	{Name: "Skoda", Models: []Model{
		{Name: "Enyaq iV", Capacities: []float64{58, 77}},
		{Name: "Elroq", Capacities: []float64{52, 77}},
	}},
	{Name: "BMW", Models: []Model{
		{Name: "i4", Capacities: []float64{67, 81}},
		{Name: "i5", Capacities: []float64{81.2}},
		{Name: "i7", Capacities: []float64{101.7}},
		{Name: "iX", Capacities: []float64{71, 105.2}},
		{Name: "iX1 / iX2", Capacities: []float64{64.7}},
		{Name: "iX3", Capacities: []float64{74}},
	}},
	{Name: "Mini", Models: []Model{
		{Name: "Cooper SE", Capacities: []float64{40.7, 54.2}},
		{Name: "Countryman SE", Capacities: []float64{64.6}},
		{Name: "Aceman", Capacities: []float64{42.5, 54.2}},
	}},
	{Name: "Rolls-Royce", Models: []Model{
		{Name: "Spectre", Capacities: []float64{102}},
	}},
	{Name: "Mercedes-Benz", Models: []Model{
		{Name: "EQA / EQB", Capacities: []float64{66.5, 70.5}},
		{Name: "EQC", Capacities: []float64{80}},
		{Name: "EQE", Capacities: []float64{89, 90.6}},
		{Name: "EQS", Capacities: []float64{108.4, 118}},
		{Name: "EQV", Capacities: []float64{60, 90}},
		{Name: "G580", Capacities: []float64{116}},
	}},
	{Name: "Smart", Models: []Model{
		{Name: "Smart #1 / #3", Capacities: []float64{49, 66}},
	}},
	{Name: "Peugeot", Models: []Model{
		{Name: "e-208 / e-2008 / e-308", Capacities: []float64{50, 54}},
		{Name: "e-3008 / e-5008", Capacities: []float64{73, 98}},
	}},
	{Name: "Fiat", Models: []Model{
		{Name: "500e", Capacities: []float64{24, 42}},
		{Name: "600e", Capacities: []float64{54}},
	}},
	{Name: "Maserati", Models: []Model{
		{Name: "Folgore Range", Capacities: []float64{92.5, 105}},
	}},
	{Name: "Opel / Vauxhall", Models: []Model{
		{Name: "Electric Range", Capacities: []float64{50, 54}},
	}},
	{Name: "Alfa Romeo", Models: []Model{
		{Name: "Junior Elettrica", Capacities: []float64{54}},
	}},
	{Name: "Volvo", Models: []Model{
		{Name: "XC40 / C40 Recharge", Capacities: []float64{69, 82}},
		{Name: "EX30", Capacities: []float64{51, 69}},
		{Name: "EX90", Capacities: []float64{104, 111}},
		{Name: "EM90", Capacities: []float64{116}},
	}},
	{Name: "Polestar", Models: []Model{
		{Name: "Polestar 2", Capacities: []float64{69, 82}},
		{Name: "Polestar 3", Capacities: []float64{111}},
		{Name: "Polestar 4", Capacities: []float64{100}},
		{Name: "Polestar 5", Capacities: []float64{103, 119}},
	}},
	{Name: "Lotus", Models: []Model{
		{Name: "Evija", Capacities: []float64{70}},
		{Name: "Eletre", Capacities: []float64{112}},
		{Name: "Emeya", Capacities: []float64{102}},
	}},
	{Name: "Renault", Models: []Model{
		{Name: "Zoe", Capacities: []float64{22, 52}},
		{Name: "Megane E-Tech", Capacities: []float64{40, 60}},
		{Name: "Scenic E-Tech", Capacities: []float64{60, 87}},
		{Name: "Renault 5 E-Tech", Capacities: []float64{40, 52}},
	}},
	{Name: "Jaguar", Models: []Model{
		{Name: "I-Pace", Capacities: []float64{90}},
	}},
	{Name: "Hyundai", Models: []Model{
		{Name: "Kona Electric", Capacities: []float64{39, 65.4}},
		{Name: "Ioniq 5", Capacities: []float64{58, 84}},
		{Name: "Ioniq 6", Capacities: []float64{53, 84}},
		{Name: "Ioniq 9", Capacities: []float64{110.3}},
	}},
	{Name: "Kia", Models: []Model{
		{Name: "Soul EV", Capacities: []float64{27, 64}},
		{Name: "Niro EV", Capacities: []float64{39, 64.8}},
		{Name: "EV6", Capacities: []float64{58, 84}},
		{Name: "EV9", Capacities: []float64{76.1, 99.8}},
		{Name: "EV3", Capacities: []float64{58.3, 81.4}},
	}},
	{Name: "Genesis", Models: []Model{
		{Name: "GV60 / GV70", Capacities: []float64{77.4}},
		{Name: "Electrified G80", Capacities: []float64{87.2}},
	}},
	{Name: "Nissan", Models: []Model{
		{Name: "Leaf", Capacities: []float64{24, 62}},
		{Name: "Ariya", Capacities: []float64{63, 87}},
		{Name: "Sakura", Capacities: []float64{20}},
	}},
	{Name: "Toyota", Models: []Model{
		{Name: "bZ4X", Capacities: []float64{71.4, 72.8}},
		{Name: "Prius Prime", Capacities: []float64{13.6}},
	}},
	{Name: "Subaru", Models: []Model{
		{Name: "Solterra", Capacities: []float64{71.4, 72.8}},
	}},
	{Name: "Lexus", Models: []Model{
		{Name: "RZ 450e", Capacities: []float64{71.4}},
		{Name: "UX 300e", Capacities: []float64{54.3, 72.8}},
	}},
	{Name: "Honda", Models: []Model{
		{Name: "Prologue", Capacities: []float64{85}},
		{Name: "e:Ny1", Capacities: []float64{68.8}},
	}},
	{Name: "Mazda", Models: []Model{
		{Name: "MX-30", Capacities: []float64{35.5}},
	}},
	{Name: "BYD", Models: []Model{
		{Name: "Atto 3", Capacities: []float64{49.9, 60.5}},
		{Name: "Dolphin", Capacities: []float64{32, 60.5}},
		{Name: "Seal", Capacities: []float64{61.4, 82.5}},
		{Name: "Han", Capacities: []float64{64.8, 85.4}},
		{Name: "Tang", Capacities: []float64{86.4, 108.8}},
		{Name: "Song L", Capacities: []float64{71.8, 87}},
		{Name: "Seagull", Capacities: []float64{30, 38.9}},
	}},
	{Name: "NIO", Models: []Model{
		{Name: "ES Range", Capacities: []float64{75, 100, 150}},
		{Name: "ET Range", Capacities: []float64{75, 100, 150}},
		{Name: "EC Range", Capacities: []float64{75, 100, 150}},
	}},
	{Name: "Xpeng", Models: []Model{
		{Name: "G3", Capacities: []float64{50.5, 66}},
		{Name: "G6", Capacities: []float64{66, 87.5}},
		{Name: "G9", Capacities: []float64{78.2, 98}},
		{Name: "P5", Capacities: []float64{55.9, 71.4}},
		{Name: "P7", Capacities: []float64{60.2, 86.2}},
		{Name: "X9", Capacities: []float64{84.5, 101.5}},
	}},
	{Name: "Zeekr", Models: []Model{
		{Name: "001", Capacities: []float64{86, 100, 140}},
		{Name: "009", Capacities: []float64{116, 140}},
		{Name: "X", Capacities: []float64{66}},
		{Name: "007", Capacities: []float64{75, 100}},
	}},
	{Name: "MG", Models: []Model{
		{Name: "ZS EV", Capacities: []float64{44.5, 72.6}},
		{Name: "MG4 EV", Capacities: []float64{51, 77}},
		{Name: "MG5 EV", Capacities: []float64{52.5, 61.1}},
		{Name: "Cyberster", Capacities: []float64{64, 77}},
	}},
}
