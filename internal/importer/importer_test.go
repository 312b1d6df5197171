package importer_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/MrJamesThe3rd/dispatch/internal/apperr"
	"github.com/MrJamesThe3rd/dispatch/internal/catalog"
	"github.com/MrJamesThe3rd/dispatch/internal/importer"
)

func TestParser_English(t *testing.T) {
	csv := `Tariff grid 2026;;;
Exported by;ops;;

Code;City;State;Base tariff;Zone
alg;Alger;Alger;300.00;local
ORN;Oran;Oran;1.250,50;
TUN;Tunis;;4500;international
`

	res, err := importer.NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Empty(t, res.Errors)
	require.Len(t, res.Destinations, 3)

	assert.Equal(t, "english", res.Profile)
	assert.Equal(t, "UTF-8", res.Charset)

	assert.Equal(t, "ALG", res.Destinations[0].Code)
	assert.Equal(t, "Alger", res.Destinations[0].City)
	assert.Equal(t, catalog.ZoneLocal, res.Destinations[0].Zone)
	assert.Equal(t, "300", res.Destinations[0].BaseTariff.String())

	assert.Equal(t, catalog.ZoneNational, res.Destinations[1].Zone)
	assert.Equal(t, "1250.5", res.Destinations[1].BaseTariff.String())

	assert.Equal(t, catalog.ZoneInternational, res.Destinations[2].Zone)
	assert.Empty(t, res.Destinations[2].State)
}

func TestParser_FrenchWindows1252(t *testing.T) {
	csv := "Code;Ville;Wilaya;Pays;Tarif de base;Zone\n" +
		"BJA;Béjaïa;Béjaïa;Algérie;450,00;nationale\n" +
		"GHA;Ghardaïa;Ghardaïa;Algérie;1.100,00;nationale\n"

	latin, err := charmap.Windows1252.NewEncoder().Bytes([]byte(csv))
	require.NoError(t, err)

	res, err := importer.NewParser().Parse(bytes.NewReader(latin))
	require.NoError(t, err)
	require.Len(t, res.Destinations, 2)

	assert.Equal(t, "french", res.Profile)
	assert.Equal(t, "Béjaïa", res.Destinations[0].City)
	assert.Equal(t, "Algérie", res.Destinations[0].Country)
	assert.Equal(t, "1100", res.Destinations[1].BaseTariff.String())
}

func TestParser_RowErrors(t *testing.T) {
	csv := `code;city;base_tariff;zone
ALG;Alger;300;local
;Oran;100;
TLM;;600;
BAD;Batna;n/a;
NEG;Blida;-5;
XYZ;Mars;10;orbit
FIN;Annaba;450.125;

SET;Sétif;700;
`

	res, err := importer.NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)

	require.Len(t, res.Destinations, 2)
	assert.Equal(t, "ALG", res.Destinations[0].Code)
	assert.Equal(t, "SET", res.Destinations[1].Code)

	rows := make([]int, 0, len(res.Errors))
	for _, e := range res.Errors {
		rows = append(rows, e.Row)
	}

	assert.Equal(t, []int{3, 4, 5, 6, 7, 8}, rows)
	assert.Equal(t, "row 5: BAD: base tariff \"n/a\" is not a number", res.Errors[2].Error())
	assert.Equal(t, "row 8: FIN: base tariff 450.125 has more than 2 decimals", res.Errors[5].Error())
}

func TestParser_NoHeader(t *testing.T) {
	_, err := importer.NewParser().Parse(strings.NewReader("a;b;c\n1;2;3\n"))
	assert.ErrorIs(t, err, apperr.ErrValidation)
}
