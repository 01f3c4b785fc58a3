package fluid

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
)

// TableRow is one line of a fluid constants CSV file.
// Empty antoine_* columns select the generalized vapour pressure correlation.
type TableRow struct {
	Name                string  `csv:"name"`
	CriticalTemperature float64 `csv:"critical_temperature"`
	CriticalPressure    float64 `csv:"critical_pressure"`
	AcentricFactor      float64 `csv:"acentric_factor"`
	AntoineA            string  `csv:"antoine_a"`
	AntoineB            string  `csv:"antoine_b"`
	AntoineC            string  `csv:"antoine_c"`
}

/*
流体定数表のCSVを読み込む。

	Args:
		in: CSVの入力

	Returns:
		読み込んだ流体定数の Registry
*/
func LoadRegistryCSV(in io.Reader) (*Registry, error) {
	var rows []*TableRow
	if err := gocsv.Unmarshal(in, &rows); err != nil {
		return nil, fmt.Errorf("read fluid table: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("read fluid table: no rows")
	}

	fluids := make([]Parameters, 0, len(rows))
	for i, row := range rows {
		p, err := row.parameters()
		if err != nil {
			return nil, fmt.Errorf("fluid table line %d: %w", i+2, err)
		}
		fluids = append(fluids, p)
	}
	return NewRegistry(fluids...)
}

// LoadRegistryFile reads a fluid constants CSV from path.
func LoadRegistryFile(path string) (*Registry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return LoadRegistryCSV(file)
}

func (row *TableRow) parameters() (Parameters, error) {
	p := Parameters{
		Name:                strings.TrimSpace(row.Name),
		CriticalTemperature: row.CriticalTemperature,
		CriticalPressure:    row.CriticalPressure,
		AcentricFactor:      row.AcentricFactor,
	}

	raw := []string{strings.TrimSpace(row.AntoineA), strings.TrimSpace(row.AntoineB), strings.TrimSpace(row.AntoineC)}
	if raw[0] == "" && raw[1] == "" && raw[2] == "" {
		return p, nil
	}

	var coef [3]float64
	for i, s := range raw {
		if s == "" {
			return Parameters{}, fmt.Errorf("fluid %q: antoine coefficients must be given together", p.Name)
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Parameters{}, fmt.Errorf("fluid %q: %w", p.Name, err)
		}
		coef[i] = v
	}
	p.VaporPressure = &Antoine{A: coef[0], B: coef[1], C: coef[2]}
	return p, nil
}

// WriteRegistryCSV writes the registry in the format read by LoadRegistryCSV.
func WriteRegistryCSV(r *Registry, out io.Writer) error {
	rows := make([]*TableRow, 0, r.Len())
	for _, name := range r.Names() {
		p, err := r.Lookup(name)
		if err != nil {
			return err
		}
		row := &TableRow{
			Name:                p.Name,
			CriticalTemperature: p.CriticalTemperature,
			CriticalPressure:    p.CriticalPressure,
			AcentricFactor:      p.AcentricFactor,
		}
		if p.VaporPressure != nil {
			row.AntoineA = strconv.FormatFloat(p.VaporPressure.A, 'g', -1, 64)
			row.AntoineB = strconv.FormatFloat(p.VaporPressure.B, 'g', -1, 64)
			row.AntoineC = strconv.FormatFloat(p.VaporPressure.C, 'g', -1, 64)
		}
		rows = append(rows, row)
	}
	return gocsv.Marshal(rows, out)
}
