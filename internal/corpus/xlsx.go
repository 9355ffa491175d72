package corpus

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/skdeore/rtopulse/internal/grid"
)

// GridReader turns one workbook file into a raw cell grid. The default
// implementation reads xlsx via excelize; tests may substitute synthetic
// grids to exercise the loader without real files.
type GridReader interface {
	ReadGrid(path string) (grid.Grid, error)
}

// XLSXReader reads the first sheet of an Excel workbook into a Grid using
// excelize's streaming row iterator.
type XLSXReader struct{}

// ReadGrid opens the workbook at path and streams sheet 0 into a Grid.
func (XLSXReader) ReadGrid(path string) (grid.Grid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("corpus: open %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("corpus: %s has no sheets", path)
	}

	rows, err := f.Rows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("corpus: iterate %s: %w", path, err)
	}
	defer rows.Close()

	var g grid.Grid
	for rows.Next() {
		cells, err := rows.Columns()
		if err != nil {
			return nil, fmt.Errorf("corpus: read row in %s: %w", path, err)
		}
		g = append(g, cells)
	}
	if err := rows.Error(); err != nil {
		return nil, fmt.Errorf("corpus: stream %s: %w", path, err)
	}
	return g, nil
}
