package services

import (
	"strings"
	"testing"
	"time"
)

func quotationProject() Project {
	return Project{
		Name:    "Pemasangan Ruko Pettarani",
		Client:  "Budi Santoso",
		Phone:   "081234567890",
		Created: time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC),
		Location: &Location{
			Lat:     -5.15,
			Lng:     119.43,
			Address: "Jl. A.P. Pettarani No. 10, Makassar",
		},
		ACUnits: []ACUnit{
			{Brand: "Daikin", PK: 1.5, Type: "split", Qty: 2, Price: 4500000},
		},
		Materials: []LineItem{
			{Name: "Pipa AC 1/4 + 3/8", Unit: "meter", QuotationPrice: 85000, QuotationQty: 12},
			{Name: "Kabel NYM", Unit: "meter"},
		},
		Services: []LineItem{
			{Name: "Jasa Pasang", Unit: "unit", QuotationPrice: 350000, QuotationQty: 2},
		},
	}
}

func TestBuildQuotationExport(t *testing.T) {
	data := BuildQuotationExport("Nala Aircon", quotationProject())

	if data.CompanyName != "Nala Aircon" || data.ProjectName != "Pemasangan Ruko Pettarani" {
		t.Errorf("header = %q / %q", data.CompanyName, data.ProjectName)
	}
	if data.Address != "Jl. A.P. Pettarani No. 10, Makassar" {
		t.Errorf("Address = %q", data.Address)
	}
	if data.CreatedDate != "20 Mei 2025" {
		t.Errorf("CreatedDate = %q, want 20 Mei 2025", data.CreatedDate)
	}

	if len(data.ACUnits) != 1 {
		t.Fatalf("len(ACUnits) = %d, want 1", len(data.ACUnits))
	}
	unit := data.ACUnits[0]
	if unit.Description != "AC Daikin 1.5 PK (split)" {
		t.Errorf("AC description = %q", unit.Description)
	}
	if !almostEqual(unit.Amount, 9000000) {
		t.Errorf("AC amount = %v, want 9000000", unit.Amount)
	}

	// Template rows the survey never priced stay off the document.
	if len(data.Materials) != 1 || data.Materials[0].Description != "Pipa AC 1/4 + 3/8" {
		t.Errorf("Materials = %+v, want only the priced row", data.Materials)
	}
	if !almostEqual(data.Materials[0].Amount, 1020000) {
		t.Errorf("material amount = %v, want 1020000", data.Materials[0].Amount)
	}

	want := 9000000 + 1020000 + 700000.0
	if !almostEqual(data.Total, want) {
		t.Errorf("Total = %v, want %v", data.Total, want)
	}
}

func TestBuildQuotationExport_NoLocation(t *testing.T) {
	p := quotationProject()
	p.Location = nil

	data := BuildQuotationExport("Nala Aircon", p)
	if data.Address != "" {
		t.Errorf("Address = %q, want empty", data.Address)
	}
}

func TestGenerateQuotationPDF(t *testing.T) {
	data := BuildQuotationExport("Nala Aircon", quotationProject())

	b, err := GenerateQuotationPDF(data)
	if err != nil {
		t.Fatalf("GenerateQuotationPDF failed: %v", err)
	}
	if len(b) == 0 {
		t.Fatal("generated PDF is empty")
	}
	if !strings.HasPrefix(string(b[:5]), "%PDF-") {
		t.Errorf("output does not start with a PDF header: %q", b[:5])
	}
}

func TestGenerateQuotationPDF_EmptyProject(t *testing.T) {
	data := BuildQuotationExport("Nala Aircon", Project{Name: "Kosong"})

	b, err := GenerateQuotationPDF(data)
	if err != nil {
		t.Fatalf("GenerateQuotationPDF failed on empty project: %v", err)
	}
	if len(b) == 0 {
		t.Fatal("generated PDF is empty")
	}
}
