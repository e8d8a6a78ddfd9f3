package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/types"

	"nalabi/services"
)

// ── Definition structs ───────────────────────────────────────────────────

type lineItemDef struct {
	name           string
	unit           string
	quotationPrice float64
	quotationQty   float64
	realPrice      float64
	realQty        float64
}

type acUnitDef struct {
	brand string
	pk    float64
	acTyp string
	qty   float64
	price float64
}

type projectDef struct {
	name        string
	client      string
	phone       string
	description string
	status      string
	source      string
	lat         float64
	lng         float64
	address     string
	materials   []lineItemDef
	acUnits     []acUnitDef
	services    []lineItemDef
}

// ── Seed data ────────────────────────────────────────────────────────────

var seedProjects = []projectDef{
	{
		name:        "Pemasangan AC Ruko Pettarani",
		client:      "Budi Santoso",
		phone:       "081342551001",
		description: "Pemasangan 3 unit AC split untuk ruko dua lantai.",
		status:      services.StatusPengerjaan,
		source:      services.SourceManual,
		lat:         -5.1620, lng: 119.4360,
		address: "Jl. A. P. Pettarani No. 18, Makassar",
		acUnits: []acUnitDef{
			{brand: "Daikin", pk: 1, acTyp: "split", qty: 2, price: 4500000},
			{brand: "Daikin", pk: 1.5, acTyp: "split", qty: 1, price: 6200000},
		},
		materials: []lineItemDef{
			{name: "Pipa AC 1/4 + 3/8", unit: "meter", quotationPrice: 85000, quotationQty: 12, realPrice: 78000, realQty: 12},
			{name: "Kabel NYM 3x2.5", unit: "meter", quotationPrice: 15000, quotationQty: 20, realPrice: 13500, realQty: 18},
			{name: "Bracket Outdoor", unit: "set", quotationPrice: 150000, quotationQty: 3, realPrice: 125000, realQty: 3},
		},
		services: []lineItemDef{
			{name: "Jasa Pasang", unit: "unit", quotationPrice: 350000, quotationQty: 3, realPrice: 300000, realQty: 3},
			{name: "Jasa Bobok", unit: "titik", quotationPrice: 100000, quotationQty: 4, realPrice: 100000, realQty: 4},
		},
	},
	{
		name:        "Instalasi AC Kantor BTP",
		client:      "CV Maju Bersama",
		phone:       "081355220044",
		description: "Survey dan instalasi AC cassette ruang rapat.",
		status:      services.StatusSurvey,
		source:      services.SourceSurveyApp,
		lat:         -5.1310, lng: 119.4890,
		address: "Bumi Tamalanrea Permai Blok C, Makassar",
		acUnits: []acUnitDef{
			{brand: "Panasonic", pk: 2, acTyp: "cassette", qty: 2, price: 11500000},
		},
		services: []lineItemDef{
			{name: "Jasa Pasang", unit: "unit", quotationPrice: 650000, quotationQty: 2},
		},
	},
	{
		name:        "Service AC Rumah Panakkukang",
		client:      "Ibu Ratna",
		phone:       "085255778890",
		description: "Penawaran penggantian unit lama.",
		status:      services.StatusProspek,
		source:      services.SourceManual,
		lat:         -5.1440, lng: 119.4510,
		address: "Jl. Boulevard Raya, Panakkukang, Makassar",
		acUnits: []acUnitDef{
			{brand: "Sharp", pk: 0.5, acTyp: "split", qty: 1, price: 3100000},
		},
	},
	{
		name:        "Proyek AC Gudang Sudiang",
		client:      "PT Logistik Timur",
		phone:       "081144556677",
		description: "Penawaran ducting gudang, klien memilih vendor lain.",
		status:      services.StatusDitolak,
		source:      services.SourceManual,
		lat:         -5.0790, lng: 119.5250,
		address: "Kawasan Industri Makassar, Sudiang",
		acUnits: []acUnitDef{
			{brand: "Daikin", pk: 5, acTyp: "ducting", qty: 4, price: 28500000},
		},
	},
	{
		name:        "Pemasangan AC Hotel Losari",
		client:      "Hotel Pantai Losari",
		phone:       "082188990011",
		description: "Pemasangan AC standing lobi dan 6 kamar, selesai.",
		status:      services.StatusSelesai,
		source:      services.SourceSurveyApp,
		lat:         -5.1410, lng: 119.4080,
		address: "Jl. Penghibur, Losari, Makassar",
		acUnits: []acUnitDef{
			{brand: "LG", pk: 2.5, acTyp: "standing", qty: 1, price: 14800000},
			{brand: "LG", pk: 1, acTyp: "split", qty: 6, price: 4300000},
		},
		materials: []lineItemDef{
			{name: "Pipa AC 1/4 + 1/2", unit: "meter", quotationPrice: 95000, quotationQty: 40, realPrice: 88000, realQty: 42},
			{name: "Duckting", unit: "batang", quotationPrice: 65000, quotationQty: 10, realPrice: 60000, realQty: 10},
			{name: "Armaflex", unit: "lembar", quotationPrice: 120000, quotationQty: 6, realPrice: 110000, realQty: 6},
		},
		services: []lineItemDef{
			{name: "Jasa Pasang", unit: "unit", quotationPrice: 400000, quotationQty: 7, realPrice: 350000, realQty: 7},
			{name: "Jasa Tarik Pipa", unit: "meter", quotationPrice: 35000, quotationQty: 40, realPrice: 35000, realQty: 42},
		},
	},
}

// Seed inserts the sample projects when the collection is still empty so a
// fresh install has something to look at. Running it again is a no-op.
func Seed(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("nala_projects")
	if err != nil {
		return fmt.Errorf("nala_projects collection not found: %w", err)
	}

	existing, err := app.FindAllRecords(col)
	if err != nil {
		return fmt.Errorf("count existing projects: %w", err)
	}
	if len(existing) > 0 {
		log.Printf("Seed: %d projects already present, skipping.", len(existing))
		return nil
	}

	for _, def := range seedProjects {
		record := core.NewRecord(col)
		record.Set("name", def.name)
		record.Set("client", def.client)
		record.Set("phone", def.phone)
		record.Set("description", def.description)
		record.Set("status", def.status)
		record.Set("source", def.source)
		record.Set("location", types.GeoPoint{Lon: def.lng, Lat: def.lat})
		record.Set("location_address", def.address)
		record.Set("materials", seedLineItems(def.materials, services.DefaultMaterials()))
		record.Set("services", seedLineItems(def.services, services.DefaultServices()))
		record.Set("ac_units", seedACUnits(def.acUnits))
		record.Set("documents", services.EmptyDocuments())
		record.Set("photos", []services.Photo{})

		if err := app.Save(record); err != nil {
			return fmt.Errorf("save seed project %q: %w", def.name, err)
		}
	}

	log.Printf("Seed: created %d sample projects.", len(seedProjects))
	return nil
}

// seedLineItems overlays the filled-in rows on top of the default template,
// matching rows by name, so seeded projects look like a survey edited the
// standard catalog.
func seedLineItems(defs []lineItemDef, template []services.LineItem) []services.LineItem {
	byName := make(map[string]lineItemDef, len(defs))
	for _, d := range defs {
		byName[d.name] = d
	}

	items := make([]services.LineItem, 0, len(template))
	for _, item := range template {
		if d, ok := byName[item.Name]; ok {
			item.QuotationPrice = d.quotationPrice
			item.QuotationQty = d.quotationQty
			item.RealPrice = d.realPrice
			item.RealQty = d.realQty
			delete(byName, item.Name)
		}
		items = append(items, item)
	}
	// Rows outside the standard catalog are appended as-is.
	for _, d := range defs {
		if _, ok := byName[d.name]; ok {
			items = append(items, services.LineItem{
				Name:           d.name,
				Unit:           d.unit,
				QuotationPrice: d.quotationPrice,
				QuotationQty:   d.quotationQty,
				RealPrice:      d.realPrice,
				RealQty:        d.realQty,
			})
		}
	}
	return items
}

func seedACUnits(defs []acUnitDef) []services.ACUnit {
	units := make([]services.ACUnit, 0, len(defs))
	for _, d := range defs {
		units = append(units, services.ACUnit{
			Brand: d.brand,
			PK:    d.pk,
			Type:  d.acTyp,
			Qty:   d.qty,
			Price: d.price,
		})
	}
	return units
}
