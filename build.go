package crystio

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/hupe1980/crystio/crystal"
	"github.com/hupe1980/crystio/dataset"
	"github.com/hupe1980/crystio/reflfile"
)

// Source columns every still must carry.
const (
	MillerIndexColumn = "miller_index"
	IDColumn          = "id"
)

// Default output names of the intensity columns.
const (
	ColumnI    = "I"
	ColumnSigI = "SigI"
)

// columnPlan maps source columns to output columns.
type columnPlan struct {
	intensity    string
	variance     string
	extras       []string
	intensityOut string
	sigmaOut     string
}

func newColumnPlan(o *options) columnPlan {
	p := columnPlan{
		intensity:    o.intensityColumn,
		variance:     o.varianceColumn,
		intensityOut: ColumnI,
		sigmaOut:     ColumnSigI,
	}
	if o.sourceNames {
		p.intensityOut = o.intensityColumn
		p.sigmaOut = sigmaName(o.varianceColumn)
	}
	taken := []string{dataset.ColumnH, dataset.ColumnK, dataset.ColumnL, IDColumn, p.intensityOut, p.sigmaOut}
	for _, c := range o.extraColumns {
		// an extra named like an output column is already present
		if !slices.Contains(p.extras, c) && !slices.Contains(taken, c) {
			p.extras = append(p.extras, c)
		}
	}
	return p
}

// sigmaName derives "intensity.sum.sigma" from "intensity.sum.variance".
func sigmaName(variance string) string {
	if base, ok := strings.CutSuffix(variance, "variance"); ok {
		return base + "sigma"
	}
	return variance + ".sigma"
}

// sourceColumns lists the columns to decode, without duplicates.
func (p columnPlan) sourceColumns() []string {
	cols := []string{MillerIndexColumn, p.intensity, p.variance, IDColumn}
	for _, c := range p.extras {
		if !slices.Contains(cols, c) {
			cols = append(cols, c)
		}
	}
	return cols
}

// stillTable holds one file's output columns until its id offset is known.
type stillTable struct {
	// H, K, L, intensity, sigma
	columns     []dataset.Column
	extras      []dataset.Column
	localIDs    []int32
	identifiers map[int]string
}

func (t *stillTable) numRows() int { return len(t.localIDs) }

// buildStill converts a decoded container into output columns.
func buildStill(c *reflfile.Container, p columnPlan) (*stillTable, error) {
	hkl, err := requiredComponents[int32](c, MillerIndexColumn, 3)
	if err != nil {
		return nil, err
	}
	intensity, err := requiredComponents[float64](c, p.intensity, 1)
	if err != nil {
		return nil, err
	}
	variance, err := requiredComponents[float64](c, p.variance, 1)
	if err != nil {
		return nil, err
	}
	ids, err := requiredComponents[int32](c, IDColumn, 1)
	if err != nil {
		return nil, err
	}

	// negative variances yield NaN
	sigma := make([]float64, len(variance[0]))
	for i, v := range variance[0] {
		sigma[i] = math.Sqrt(v)
	}

	t := &stillTable{
		columns: []dataset.Column{
			dataset.NewSeries(dataset.ColumnH, hkl[0]),
			dataset.NewSeries(dataset.ColumnK, hkl[1]),
			dataset.NewSeries(dataset.ColumnL, hkl[2]),
			dataset.NewSeries(p.intensityOut, intensity[0]),
			dataset.NewSeries(p.sigmaOut, sigma),
		},
		localIDs:    ids[0],
		identifiers: c.Identifiers,
	}

	for _, name := range p.extras {
		col, ok := c.Column(name)
		if !ok {
			return nil, &reflfile.ColumnError{Column: name, Err: reflfile.ErrMissingColumn}
		}
		cols, err := splitColumn(col)
		if err != nil {
			return nil, err
		}
		t.extras = append(t.extras, cols...)
	}
	return t, nil
}

// dataSet assembles the file's table with globally numbered ids.
func (t *stillTable) dataSet(cell crystal.UnitCell, sg *crystal.SpaceGroup, ids []int32) (*dataset.DataSet, error) {
	ds := dataset.New(cell, sg)
	cols := make([]dataset.Column, 0, len(t.columns)+1+len(t.extras))
	cols = append(cols, t.columns...)
	cols = append(cols, dataset.NewSeries(IDColumn, ids))
	cols = append(cols, t.extras...)
	for _, c := range cols {
		if err := ds.AddColumn(c); err != nil {
			return nil, err
		}
	}
	if err := ds.SetIndex(dataset.MillerIndex...); err != nil {
		return nil, err
	}
	return ds, nil
}

func requiredComponents[T dataset.Element](c *reflfile.Container, name string, width int) ([][]T, error) {
	col, ok := c.Column(name)
	if !ok {
		return nil, &reflfile.ColumnError{Column: name, Err: reflfile.ErrMissingColumn}
	}
	if col.Type.Width() != width || col.Type.Kind() != dataset.KindOf[T]() {
		return nil, &reflfile.ColumnError{Column: name, Type: col.Type.String(),
			Err: fmt.Errorf("%w: want %d × %s", reflfile.ErrUnsupportedFormat, width, dataset.KindOf[T]())}
	}
	return reflfile.Components[T](col)
}

// splitColumn turns an extra column into one column per component, keeping
// the native element kind.
func splitColumn(col *reflfile.Column) ([]dataset.Column, error) {
	switch col.Type.Kind() {
	case dataset.KindInt32:
		return splitComponents[int32](col)
	case dataset.KindUint64:
		return splitComponents[uint64](col)
	case dataset.KindFloat64:
		return splitComponents[float64](col)
	case dataset.KindBool:
		return splitComponents[bool](col)
	}
	return nil, &reflfile.ColumnError{Column: col.Name, Type: col.Type.String(), Err: reflfile.ErrUnsupportedFormat}
}

func splitComponents[T dataset.Element](col *reflfile.Column) ([]dataset.Column, error) {
	comps, err := reflfile.Components[T](col)
	if err != nil {
		return nil, err
	}
	if !col.Type.IsVector() {
		return []dataset.Column{dataset.NewSeries(col.Name, comps[0])}, nil
	}
	out := make([]dataset.Column, len(comps))
	for j, v := range comps {
		out[j] = dataset.NewSeries(fmt.Sprintf("%s.%d", col.Name, j), v)
	}
	return out, nil
}
