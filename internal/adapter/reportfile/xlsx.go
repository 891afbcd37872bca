package reportfile

import (
	"github.com/xuri/excelize/v2"

	"ad-dashboard/internal/core/domain"
)

// readXLSX reads the first sheet of a workbook. Numeric columns use raw
// cell values so number formats such as thousands separators do not defeat
// coercion. Campaign and month columns use the formatted value, so a month
// stored as an Excel date reads as its display text (e.g. "2024-01") and
// not as a serial number.
func readXLSX(path string) ([]string, [][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, domain.ErrEmptyReport
	}
	raw, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, nil, err
	}
	if len(raw) == 0 {
		return nil, nil, domain.ErrEmptyReport
	}
	shown, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, err
	}

	header := raw[0]
	var labels []int
	for i, h := range header {
		if domain.IsLabelHeader(h) {
			labels = append(labels, i)
		}
	}

	records := raw[1:]
	for r := range records {
		if r+1 >= len(shown) {
			break
		}
		display := shown[r+1]
		for _, c := range labels {
			if c < len(records[r]) && c < len(display) {
				records[r][c] = display[c]
			}
		}
	}
	return header, records, nil
}
