package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")

	headers := []string{"Date", "Orders", "Total"}
	rows := [][]any{
		{"2025-06-01", 12, 1043.76},
		{"2025-06-02", 8, 612.40},
	}

	err := WriteXLSX(path, "Daily Revenue", headers, rows)
	assert.NoError(t, err)

	f, err := excelize.OpenFile(path)
	assert.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue("Daily Revenue", "A1")
	assert.NoError(t, err)
	assert.Equal(t, "Date", got)

	got, err = f.GetCellValue("Daily Revenue", "B2")
	assert.NoError(t, err)
	assert.Equal(t, "12", got)

	got, err = f.GetCellValue("Daily Revenue", "A3")
	assert.NoError(t, err)
	assert.Equal(t, "2025-06-02", got)
}
