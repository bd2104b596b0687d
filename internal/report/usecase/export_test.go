package usecase

import (
	"strings"
	"testing"
	"time"

	"github.com/hvngo/stylehub-catalog-service/internal/report/dto"
)

var sectionHeaders = []string{
	"=== TỔNG QUAN ===",
	"=== BIẾN ĐỘNG TRONG THÁNG ===",
	"=== CHI TIẾT TỒN KHO ===",
	"=== TỔNG CỘNG ===",
}

func exportedAt() time.Time {
	return time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC)
}

func TestWriteCSVEmptyPeriod(t *testing.T) {
	rep := &dto.ReconciliationReport{Year: 2026, Month: 2}

	data, err := WriteCSV(rep, exportedAt())
	if err != nil {
		t.Fatalf("WriteCSV returned error: %v", err)
	}

	doc := string(data)
	if !strings.HasPrefix(doc, "\uFEFF") {
		t.Errorf("export must start with a UTF-8 BOM")
	}
	for _, header := range sectionHeaders {
		if !strings.Contains(doc, header) {
			t.Errorf("empty period export missing section %q", header)
		}
	}
	if !strings.Contains(doc, "Tháng 02/2026") {
		t.Errorf("missing period line")
	}
	if !strings.Contains(doc, "Ngày xuất,29/08/2026 10:30") {
		t.Errorf("missing export date line")
	}
	if !strings.Contains(doc, "Tổng số biến thể,0") {
		t.Errorf("empty period must report zero variants")
	}
}

func TestWriteCSVDetailAndTotals(t *testing.T) {
	rows := []dto.VariantMovementRecord{{
		SKU:             "TSHIRT-RED-M",
		ProductName:     "Ao thun",
		Price:           50,
		OpeningStock:    10,
		TotalImport:     20,
		TotalExport:     15,
		TotalAdjustment: -2,
		TotalReturn:     1,
	}}
	details, summary := Reconcile(rows, 5)
	rep := &dto.ReconciliationReport{Year: 2026, Month: 8, Details: details, Summary: summary}

	data, err := WriteCSV(rep, exportedAt())
	if err != nil {
		t.Fatalf("WriteCSV returned error: %v", err)
	}
	doc := string(data)

	wantHeader := "STT,Mã SKU,Tên sản phẩm,Màu sắc,Kích thước,Xuất xứ,Giá bán," +
		"Tồn đầu kỳ,Nhập trong kỳ,Xuất trong kỳ,Điều chỉnh,Trả hàng," +
		"Tồn cuối kỳ,Giá trị tồn,Trạng thái"
	if !strings.Contains(doc, wantHeader) {
		t.Errorf("missing 15-column detail header")
	}

	wantRow := "1,TSHIRT-RED-M,Ao thun,,,,50.00,10,20,15,-2,1,14,700.00,Bình thường"
	if !strings.Contains(doc, wantRow) {
		t.Errorf("missing detail row %q in:\n%s", wantRow, doc)
	}

	// Movement section signs come straight from the summary.
	for _, line := range []string{
		"Nhập trong kỳ,+20",
		"Xuất trong kỳ,-15",
		"Điều chỉnh,-2",
		"Trả hàng,+1",
	} {
		if !strings.Contains(doc, line) {
			t.Errorf("missing movement line %q", line)
		}
	}

	if !strings.Contains(doc, "Tổng giá trị tồn,700.00") {
		t.Errorf("closing totals must match the summary")
	}
}

func TestWriteCSVStatusLabels(t *testing.T) {
	rows := []dto.VariantMovementRecord{
		{SKU: "A", OpeningStock: 20},
		{SKU: "B", OpeningStock: 3},
		{SKU: "C", OpeningStock: 0},
	}
	details, summary := Reconcile(rows, 5)
	rep := &dto.ReconciliationReport{Year: 2026, Month: 8, Details: details, Summary: summary}

	data, err := WriteCSV(rep, exportedAt())
	if err != nil {
		t.Fatalf("WriteCSV returned error: %v", err)
	}
	doc := string(data)

	for _, label := range []string{"Bình thường", "Sắp hết", "Hết hàng"} {
		if !strings.Contains(doc, label) {
			t.Errorf("missing status label %q", label)
		}
	}
}
