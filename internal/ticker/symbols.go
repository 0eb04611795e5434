package ticker

// frenchStocks maps common Paris-listed symbols to company names, used for
// lookups when charting a scraped company against its price history.
var frenchStocks = map[string]string{
	"AIR.PA":  "Airbus SE",
	"MC.PA":   "LVMH Moët Hennessy Louis Vuitton",
	"OR.PA":   "L'Oréal SA",
	"ASML.AS": "ASML Holding NV",
	"BNP.PA":  "BNP Paribas SA",
	"CA.PA":   "Carrefour SA",
	"CAP.PA":  "Capgemini SE",
	"DG.PA":   "Vinci SA",
	"ENGI.PA": "Engie SA",
	"EN.PA":   "Bouygues SA",
	"FP.PA":   "TotalEnergies SE",
	"FTE.PA":  "Orange SA",
	"GLE.PA":  "Société Générale SA",
	"KER.PA":  "Kering SA",
	"ML.PA":   "Michelin SA",
	"ORA.PA":  "Orange SA",
	"PUB.PA":  "Publicis Groupe SA",
	"RNO.PA":  "Renault SA",
	"SAF.PA":  "Safran SA",
	"SAN.PA":  "Sanofi SA",
	"SGO.PA":  "Saint-Gobain SA",
	"SOLB.PA": "Solvay SA",
	"SU.PA":   "Schneider Electric SE",
	"TEP.PA":  "Teleperformance SE",
	"TTE.PA":  "TotalEnergies SE",
	"UG.PA":   "Peugeot SA",
	"VIV.PA":  "Vivendi SA",
}

// FrenchStocks returns a copy of the common Paris-listed ticker map.
func FrenchStocks() map[string]string {
	out := make(map[string]string, len(frenchStocks))
	for k, v := range frenchStocks {
		out[k] = v
	}
	return out
}
