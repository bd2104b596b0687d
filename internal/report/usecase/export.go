package usecase

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/hvngo/stylehub-catalog-service/internal/model"
	"github.com/hvngo/stylehub-catalog-service/internal/report/dto"
)

// The export layout is a compatibility surface consumed by external
// spreadsheet tooling: section order, the Vietnamese column headers and the
// explicit sign prefixes on movement totals must stay byte-stable.
var detailHeader = []string{
	"STT", "Mã SKU", "Tên sản phẩm", "Màu sắc", "Kích thước", "Xuất xứ",
	"Giá bán", "Tồn đầu kỳ", "Nhập trong kỳ", "Xuất trong kỳ", "Điều chỉnh",
	"Trả hàng", "Tồn cuối kỳ", "Giá trị tồn", "Trạng thái",
}

var statusLabels = map[model.StockStatus]string{
	model.StockStatusNormal:     "Bình thường",
	model.StockStatusLow:        "Sắp hết",
	model.StockStatusOutOfStock: "Hết hàng",
}

// WriteCSV renders a reconciled report as a UTF-8, BOM-prefixed CSV document.
// Every number in the summary sections is taken from report.Summary; nothing
// is recomputed here, so the export cannot drift from the JSON view.
func WriteCSV(report *dto.ReconciliationReport, now time.Time) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("\uFEFF")

	w := csv.NewWriter(&buf)
	s := report.Summary

	records := [][]string{
		{"BÁO CÁO TỒN KHO"},
		{fmt.Sprintf("Tháng %02d/%04d", report.Month, report.Year)},
		{"Ngày xuất", now.Format("02/01/2006 15:04")},
		{},
		{"=== TỔNG QUAN ==="},
		{"Tổng số biến thể", strconv.Itoa(s.TotalVariants)},
		{"Tổng tồn cuối kỳ", strconv.Itoa(s.TotalClosingStock)},
		{"Tổng giá trị tồn kho", formatMoney(s.TotalStockValue)},
		{"Sắp hết hàng", strconv.Itoa(s.LowStockCount)},
		{"Hết hàng", strconv.Itoa(s.OutOfStockCount)},
		{},
		{"=== BIẾN ĐỘNG TRONG THÁNG ==="},
		{"Nhập trong kỳ", fmt.Sprintf("+%d", s.TotalImport)},
		{"Xuất trong kỳ", fmt.Sprintf("-%d", s.TotalExport)},
		{"Điều chỉnh", fmt.Sprintf("%+d", s.TotalAdjustment)},
		{"Trả hàng", fmt.Sprintf("+%d", s.TotalReturn)},
		{},
		{"=== CHI TIẾT TỒN KHO ==="},
		detailHeader,
	}
	for _, rec := range records {
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}

	for i, d := range report.Details {
		row := []string{
			strconv.Itoa(i + 1),
			d.SKU,
			d.ProductName,
			derefName(d.ColorName),
			derefName(d.SizeName),
			derefName(d.OriginName),
			formatMoney(d.Price),
			strconv.Itoa(d.OpeningStock),
			strconv.Itoa(d.TotalImport),
			strconv.Itoa(d.TotalExport),
			strconv.Itoa(d.TotalAdjustment),
			strconv.Itoa(d.TotalReturn),
			strconv.Itoa(d.ClosingStock),
			formatMoney(d.StockValue),
			statusLabels[d.StockStatus],
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	closing := [][]string{
		{},
		{"=== TỔNG CỘNG ==="},
		{"Tổng tồn cuối kỳ", strconv.Itoa(s.TotalClosingStock)},
		{"Tổng giá trị tồn", formatMoney(s.TotalStockValue)},
	}
	for _, rec := range closing {
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func derefName(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
