package handlers

import (
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"nalabi/config"
	"nalabi/services"
)

// HandleDocumentUpload stores one uploaded file in a project document
// category. Keys follow nala_projects/{id}/documents/{category}/{uuid}{ext}
// so a project's files can be removed by prefix when the project goes.
func HandleDocumentUpload(app *pocketbase.PocketBase, cfg config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record := requestProject(app, e)
		if record == nil {
			return nil
		}
		category := e.Request.PathValue("category")
		if !validCategory(category) {
			return ErrorToast(e, http.StatusBadRequest, "Kategori dokumen tidak dikenal")
		}

		mh, err := formFile(e, cfg.MaxDocumentSize)
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, err.Error())
		}

		key := fmt.Sprintf("%s/%s/documents/%s/%s%s",
			projectsCollection, record.Id, category,
			uuid.New().String(), strings.ToLower(filepath.Ext(mh.Filename)))

		fsys, err := app.NewFilesystem()
		if err != nil {
			log.Printf("documents: filesystem unavailable: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Gagal menyimpan file")
		}
		defer fsys.Close()

		if err := fsys.UploadMultipart(mh, key); err != nil {
			log.Printf("documents: upload %s: %v", key, err)
			return ErrorToast(e, http.StatusInternalServerError, "Gagal menyimpan file")
		}

		var docs map[string][]services.Document
		record.UnmarshalJSONField("documents", &docs)
		if docs == nil {
			docs = services.EmptyDocuments()
		}
		docs[category] = append(docs[category], services.Document{
			Name:       mh.Filename,
			Path:       key,
			URL:        "/files/" + key,
			UploadedAt: time.Now().Format(time.RFC3339),
		})
		record.Set("documents", docs)

		if err := app.Save(record); err != nil {
			log.Printf("documents: save record %s: %v", record.Id, err)
			// The stored file would be orphaned otherwise.
			fsys.Delete(key)
			return ErrorToast(e, http.StatusInternalServerError, "Gagal menyimpan file")
		}

		SetToast(e, "success", "Dokumen diupload")
		return e.Redirect(http.StatusFound, "/projects/"+record.Id)
	}
}

// HandleDocumentDelete removes one document by its storage path.
func HandleDocumentDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record := requestProject(app, e)
		if record == nil {
			return nil
		}
		category := e.Request.PathValue("category")
		if !validCategory(category) {
			return ErrorToast(e, http.StatusBadRequest, "Kategori dokumen tidak dikenal")
		}

		path := e.Request.URL.Query().Get("path")
		// Only paths under this project may be touched.
		if !strings.HasPrefix(path, fmt.Sprintf("%s/%s/", projectsCollection, record.Id)) {
			return ErrorToast(e, http.StatusBadRequest, "Path dokumen tidak valid")
		}

		var docs map[string][]services.Document
		record.UnmarshalJSONField("documents", &docs)

		kept := make([]services.Document, 0, len(docs[category]))
		found := false
		for _, doc := range docs[category] {
			if doc.Path == path {
				found = true
				continue
			}
			kept = append(kept, doc)
		}
		if !found {
			return ErrorToast(e, http.StatusNotFound, "Dokumen tidak ditemukan")
		}
		docs[category] = kept
		record.Set("documents", docs)

		if err := app.Save(record); err != nil {
			log.Printf("documents: save record %s: %v", record.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Gagal menghapus dokumen")
		}

		if fsys, err := app.NewFilesystem(); err == nil {
			defer fsys.Close()
			if err := fsys.Delete(path); err != nil {
				log.Printf("documents: delete stored file %s: %v", path, err)
			}
		}

		SetToast(e, "success", "Dokumen dihapus")
		e.Response.Header().Set("HX-Redirect", "/projects/"+record.Id)
		return e.String(http.StatusOK, "")
	}
}

func validCategory(category string) bool {
	for _, c := range services.DocumentCategories {
		if c == category {
			return true
		}
	}
	return false
}

// formFile pulls the single "file" part out of a multipart form and
// enforces the size limit.
func formFile(e *core.RequestEvent, maxSize int64) (*multipart.FileHeader, error) {
	if err := e.Request.ParseMultipartForm(maxSize); err != nil {
		return nil, fmt.Errorf("upload tidak valid")
	}
	files := e.Request.MultipartForm.File["file"]
	if len(files) == 0 {
		return nil, fmt.Errorf("tidak ada file yang dipilih")
	}
	mh := files[0]
	if mh.Size > maxSize {
		return nil, fmt.Errorf("ukuran file melebihi batas %d MB", maxSize/(1024*1024))
	}
	return mh, nil
}
