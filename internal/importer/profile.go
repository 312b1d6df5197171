package importer

// Profile describes the header names of one tariff grid layout.
// Header names are compared after headerKey folding.
type Profile struct {
	Name       string
	CodeCol    string
	CityCol    string
	TariffCol  string
	StateCol   string
	CountryCol string
	ZoneCol    string
}

func (p Profile) requiredCols() []string {
	return []string{p.CodeCol, p.CityCol, p.TariffCol}
}

var profiles = []Profile{
	{
		Name:       "english",
		CodeCol:    "code",
		CityCol:    "city",
		TariffCol:  "base_tariff",
		StateCol:   "state",
		CountryCol: "country",
		ZoneCol:    "zone",
	},
	{
		Name:       "french",
		CodeCol:    "code",
		CityCol:    "ville",
		TariffCol:  "tarif_de_base",
		StateCol:   "wilaya",
		CountryCol: "pays",
		ZoneCol:    "zone",
	},
}
