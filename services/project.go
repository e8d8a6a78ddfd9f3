// Package services contains the pure business logic of the application:
// the project data model, financial aggregation, dashboard filtering and
// pagination, report building and the export document generators. Nothing
// in this package touches HTTP.
package services

import (
	"sort"
	"time"

	"github.com/pocketbase/pocketbase/core"
)

// Project status values. The dashboard tabs expose the first four; selesai
// marks completed work and is counted by the reports.
const (
	StatusAll        = "all"
	StatusProspek    = "prospek"
	StatusSurvey     = "survey"
	StatusPengerjaan = "pengerjaan"
	StatusSelesai    = "selesai"
	StatusDitolak    = "ditolak"
)

// Project source values.
const (
	SourceManual    = "manual"
	SourceSurveyApp = "survey_app"
)

// DashboardStatuses are the status filter tabs shown on the dashboard,
// in display order.
var DashboardStatuses = []string{StatusProspek, StatusSurvey, StatusPengerjaan, StatusDitolak}

// AllStatuses is the full status vocabulary accepted on a project record.
var AllStatuses = []string{StatusProspek, StatusSurvey, StatusPengerjaan, StatusSelesai, StatusDitolak}

// StatusLabels maps a status value to its display label.
var StatusLabels = map[string]string{
	StatusProspek:    "Prospek",
	StatusSurvey:     "Survey",
	StatusPengerjaan: "On Progress",
	StatusSelesai:    "Selesai",
	StatusDitolak:    "Ditolak",
}

// AllSources is the full source vocabulary, in display order.
var AllSources = []string{SourceManual, SourceSurveyApp}

// SourceLabels maps a project source to its display label.
var SourceLabels = map[string]string{
	SourceManual:    "Manual",
	SourceSurveyApp: "Aplikasi Survey",
}

// DocumentCategories are the fixed document buckets on a project.
var DocumentCategories = []string{"penawaran", "bast", "invoice", "gallery"}

// DocumentCategoryLabels maps a document category to its display label.
var DocumentCategoryLabels = map[string]string{
	"penawaran": "Penawaran",
	"bast":      "BAST",
	"invoice":   "Invoice",
	"gallery":   "Galeri Dokumen",
}

// ACTypes are the supported AC unit types.
var ACTypes = []string{"split", "cassette", "standing", "ducting"}

// LineItem is a single material or service row on a project. Quotation
// columns hold the offered price, real columns hold what was actually spent.
type LineItem struct {
	Name           string  `json:"name"`
	Unit           string  `json:"unit"`
	QuotationPrice float64 `json:"quotationPrice"`
	QuotationQty   float64 `json:"quotationQty"`
	RealPrice      float64 `json:"realPrice"`
	RealQty        float64 `json:"realQty"`
}

// ACUnit is an air-conditioning unit quoted on a project.
type ACUnit struct {
	Brand string  `json:"brand"`
	PK    float64 `json:"pk"`
	Type  string  `json:"type"`
	Qty   float64 `json:"qty"`
	Price float64 `json:"price"`
}

// Document is an uploaded file in one of the project document categories.
// Path is the storage key, URL the serve path handed to the browser.
type Document struct {
	Name       string `json:"name"`
	Path       string `json:"path"`
	URL        string `json:"url"`
	UploadedAt string `json:"uploadedAt"`
}

// Photo is an uploaded project photo.
type Photo struct {
	Path       string `json:"path"`
	URL        string `json:"url"`
	UploadedAt string `json:"uploadedAt"`
}

// Location is a picked map position plus its human-readable address.
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

// Project is the in-memory form of a nala_projects record.
type Project struct {
	ID          string
	Name        string
	Client      string
	Phone       string
	Description string
	Status      string
	Source      string
	Location    *Location
	Materials   []LineItem
	Services    []LineItem
	ACUnits     []ACUnit
	Documents   map[string][]Document
	Photos      []Photo
	Created     time.Time
	Updated     time.Time
}

// DefaultMaterials returns the standard material template for a new project.
// Prices and quantities start at zero and are filled in during the survey.
func DefaultMaterials() []LineItem {
	return []LineItem{
		{Name: "Pipa AC 1/4 + 3/8", Unit: "meter"},
		{Name: "Pipa AC 1/4 + 1/2", Unit: "meter"},
		{Name: "Pipa AC 3/8 + 5/8", Unit: "meter"},
		{Name: "Kabel NYM 3x2.5", Unit: "meter"},
		{Name: "Kabel NYM 2x1.5", Unit: "meter"},
		{Name: "Kabel NYY 3x2.5", Unit: "meter"},
		{Name: "Kabel NYY 2x1.5", Unit: "meter"},
		{Name: "Bracket Outdoor", Unit: "set"},
		{Name: "Ducktip", Unit: "roll"},
		{Name: "Isolasi Listrik", Unit: "pcs"},
		{Name: "Sadel", Unit: "pcs"},
		{Name: "Duckting", Unit: "batang"},
		{Name: "Armaflex", Unit: "lembar"},
	}
}

// DefaultServices returns the standard service template for a new project.
func DefaultServices() []LineItem {
	return []LineItem{
		{Name: "Jasa Pasang", Unit: "unit"},
		{Name: "Jasa Tarik Pipa", Unit: "meter"},
		{Name: "Jasa Bobok", Unit: "titik"},
	}
}

// EmptyDocuments returns a document map with every category present.
func EmptyDocuments() map[string][]Document {
	docs := make(map[string][]Document, len(DocumentCategories))
	for _, cat := range DocumentCategories {
		docs[cat] = []Document{}
	}
	return docs
}

// ProjectFromRecord converts a nala_projects record into a Project. This is
// the single place where sloppy stored data gets normalized: malformed JSON
// fields decode to empty slices, missing numeric values come out as zero and
// an unset status falls back to prospek, so every downstream computation can
// treat the struct as complete.
func ProjectFromRecord(rec *core.Record) Project {
	p := Project{
		ID:          rec.Id,
		Name:        rec.GetString("name"),
		Client:      rec.GetString("client"),
		Phone:       rec.GetString("phone"),
		Description: rec.GetString("description"),
		Status:      rec.GetString("status"),
		Source:      rec.GetString("source"),
		Created:     rec.GetDateTime("created").Time(),
		Updated:     rec.GetDateTime("updated").Time(),
	}

	if p.Status == "" {
		p.Status = StatusProspek
	}
	if p.Source == "" {
		p.Source = SourceManual
	}

	// Decode errors leave the zero value in place, which is what we want.
	rec.UnmarshalJSONField("materials", &p.Materials)
	rec.UnmarshalJSONField("services", &p.Services)
	rec.UnmarshalJSONField("ac_units", &p.ACUnits)
	rec.UnmarshalJSONField("documents", &p.Documents)
	rec.UnmarshalJSONField("photos", &p.Photos)

	if p.Documents == nil {
		p.Documents = map[string][]Document{}
	}

	pt := rec.GetGeoPoint("location")
	addr := rec.GetString("location_address")
	if pt.Lat != 0 || pt.Lon != 0 || addr != "" {
		p.Location = &Location{Lat: pt.Lat, Lng: pt.Lon, Address: addr}
	}

	return p
}

// ProjectsFromRecords converts records in bulk, newest first.
func ProjectsFromRecords(records []*core.Record) []Project {
	projects := make([]Project, 0, len(records))
	for _, rec := range records {
		projects = append(projects, ProjectFromRecord(rec))
	}
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].Created.After(projects[j].Created)
	})
	return projects
}

// DocumentCount returns the total number of uploaded documents across all
// categories.
func (p Project) DocumentCount() int {
	n := 0
	for _, docs := range p.Documents {
		n += len(docs)
	}
	return n
}
