// Package importer reads destination tariff grids exported from spreadsheets.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/MrJamesThe3rd/dispatch/internal/apperr"
	"github.com/MrJamesThe3rd/dispatch/internal/catalog"
	enc "github.com/MrJamesThe3rd/dispatch/internal/encoding"
	"github.com/MrJamesThe3rd/dispatch/internal/money"
)

// RowError reports a data row that could not be turned into a destination.
// Row is 1-based in the original file.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Message)
}

type Result struct {
	Profile      string
	Charset      string
	Destinations []catalog.DestinationParams
	Errors       []RowError
}

// Parser auto-detects the grid layout by matching header cells against
// known profiles.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) (*Result, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, apperr.Validation("read csv: %v", err)
	}

	profile, cols, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, apperr.Validation("no tariff header found: expected columns code, city and base_tariff")
	}

	res := &Result{Profile: profile.Name, Charset: utf8r.Charset}
	parseRows(res, profile, cols, rows[headerIdx+1:], headerIdx)

	return res, nil
}

type colIndex map[string]int

func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			if name := headerKey(cell); name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// headerKey folds a header cell so "Base tariff", "base-tariff" and
// " BASE_TARIFF " compare equal.
func headerKey(cell string) string {
	key := strings.ToLower(strings.TrimSpace(cell))
	key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)

	return key
}

func parseRows(res *Result, p *Profile, cols colIndex, rows [][]string, headerIdx int) {
	idx := func(name string) int {
		if name == "" {
			return -1
		}

		if i, ok := cols[name]; ok {
			return i
		}

		return -1
	}

	codeIdx, cityIdx, tariffIdx := idx(p.CodeCol), idx(p.CityCol), idx(p.TariffCol)
	stateIdx, countryIdx, zoneIdx := idx(p.StateCol), idx(p.CountryCol), idx(p.ZoneCol)

	for i, row := range rows {
		rowNum := headerIdx + i + 2

		if blank(row) {
			continue
		}

		fail := func(format string, args ...any) {
			res.Errors = append(res.Errors, RowError{Row: rowNum, Message: fmt.Sprintf(format, args...)})
		}

		code := strings.ToUpper(cellValue(row, codeIdx))
		if code == "" {
			fail("missing code")
			continue
		}

		city := cellValue(row, cityIdx)
		if city == "" {
			fail("%s: missing city", code)
			continue
		}

		tariff, err := parseAmount(cellValue(row, tariffIdx))
		if err != nil {
			fail("%s: base tariff %q is not a number", code, cellValue(row, tariffIdx))
			continue
		}

		if tariff.IsNegative() {
			fail("%s: base tariff must be >= 0", code)
			continue
		}

		if !money.WithinScale(tariff, money.Places) {
			fail("%s: base tariff %s has more than %d decimals", code, tariff, money.Places)
			continue
		}

		zone, ok := parseZone(cellValue(row, zoneIdx))
		if !ok {
			fail("%s: unknown zone %q", code, cellValue(row, zoneIdx))
			continue
		}

		res.Destinations = append(res.Destinations, catalog.DestinationParams{
			Code:       code,
			City:       city,
			State:      cellValue(row, stateIdx),
			Country:    cellValue(row, countryIdx),
			Zone:       zone,
			BaseTariff: tariff,
		})
	}
}

// parseZone accepts English and French zone names. An empty cell is national.
func parseZone(s string) (catalog.Zone, bool) {
	switch strings.ToLower(s) {
	case "", "national", "nationale":
		return catalog.ZoneNational, true
	case "local", "locale":
		return catalog.ZoneLocal, true
	case "international", "internationale":
		return catalog.ZoneInternational, true
	}

	return "", false
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}
