package services

import "testing"

func TestDefaultMaterials(t *testing.T) {
	items := DefaultMaterials()
	if len(items) == 0 {
		t.Fatal("no default materials")
	}

	seen := map[string]bool{}
	for _, item := range items {
		if item.Name == "" || item.Unit == "" {
			t.Errorf("template row missing name or unit: %+v", item)
		}
		if item.QuotationPrice != 0 || item.RealPrice != 0 {
			t.Errorf("template row %q should start unpriced", item.Name)
		}
		if seen[item.Name] {
			t.Errorf("duplicate template row %q", item.Name)
		}
		seen[item.Name] = true
	}
}

func TestDefaultServices(t *testing.T) {
	items := DefaultServices()
	if len(items) != 3 {
		t.Fatalf("len = %d, want 3", len(items))
	}
	if items[0].Name != "Jasa Pasang" {
		t.Errorf("first service = %q, want Jasa Pasang", items[0].Name)
	}
}

func TestEmptyDocuments(t *testing.T) {
	docs := EmptyDocuments()
	if len(docs) != len(DocumentCategories) {
		t.Fatalf("len = %d, want %d", len(docs), len(DocumentCategories))
	}
	for _, cat := range DocumentCategories {
		list, ok := docs[cat]
		if !ok {
			t.Errorf("missing category %q", cat)
		}
		if list == nil || len(list) != 0 {
			t.Errorf("category %q should start as an empty non-nil list", cat)
		}
	}
}

func TestProject_DocumentCount(t *testing.T) {
	p := Project{Documents: EmptyDocuments()}
	if got := p.DocumentCount(); got != 0 {
		t.Errorf("empty DocumentCount = %d, want 0", got)
	}

	p.Documents["penawaran"] = []Document{{Name: "a.pdf"}, {Name: "b.pdf"}}
	p.Documents["invoice"] = []Document{{Name: "c.pdf"}}
	if got := p.DocumentCount(); got != 3 {
		t.Errorf("DocumentCount = %d, want 3", got)
	}
}

func TestStatusVocabulary(t *testing.T) {
	for _, s := range DashboardStatuses {
		if StatusLabels[s] == "" {
			t.Errorf("dashboard status %q has no label", s)
		}
	}
	for _, s := range AllStatuses {
		if StatusLabels[s] == "" {
			t.Errorf("status %q has no label", s)
		}
	}
	if len(AllStatuses) != len(DashboardStatuses)+1 {
		t.Errorf("AllStatuses should add one status over the dashboard set, got %d vs %d",
			len(AllStatuses), len(DashboardStatuses))
	}
}
