package handlers

import (
	"fmt"
	"log"
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

var photoExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".gif": true,
}

// HandlePhotoUpload adds one photo to the project gallery, enforcing the
// photo count and size limits.
func HandlePhotoUpload(app *pocketbase.PocketBase, cfg config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record := requestProject(app, e)
		if record == nil {
			return nil
		}

		var photos []services.Photo
		record.UnmarshalJSONField("photos", &photos)
		if len(photos) >= cfg.MaxPhotos {
			return ErrorToast(e, http.StatusBadRequest,
				fmt.Sprintf("Maksimal %d foto per project", cfg.MaxPhotos))
		}

		mh, err := formFile(e, cfg.MaxPhotoSize)
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, err.Error())
		}
		ext := strings.ToLower(filepath.Ext(mh.Filename))
		if !photoExtensions[ext] {
			return ErrorToast(e, http.StatusBadRequest, "File harus berupa gambar")
		}

		key := fmt.Sprintf("%s/%s/photos/%s%s",
			projectsCollection, record.Id, uuid.New().String(), ext)

		fsys, err := app.NewFilesystem()
		if err != nil {
			log.Printf("photos: filesystem unavailable: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Gagal menyimpan foto")
		}
		defer fsys.Close()

		if err := fsys.UploadMultipart(mh, key); err != nil {
			log.Printf("photos: upload %s: %v", key, err)
			return ErrorToast(e, http.StatusInternalServerError, "Gagal menyimpan foto")
		}

		photos = append(photos, services.Photo{
			Path:       key,
			URL:        "/files/" + key,
			UploadedAt: time.Now().Format(time.RFC3339),
		})
		record.Set("photos", photos)

		if err := app.Save(record); err != nil {
			log.Printf("photos: save record %s: %v", record.Id, err)
			fsys.Delete(key)
			return ErrorToast(e, http.StatusInternalServerError, "Gagal menyimpan foto")
		}

		SetToast(e, "success", "Foto diupload")
		return e.Redirect(http.StatusFound, "/projects/"+record.Id)
	}
}

// HandlePhotoDelete removes one gallery photo by its storage path.
func HandlePhotoDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record := requestProject(app, e)
		if record == nil {
			return nil
		}

		path := e.Request.URL.Query().Get("path")
		if !strings.HasPrefix(path, fmt.Sprintf("%s/%s/", projectsCollection, record.Id)) {
			return ErrorToast(e, http.StatusBadRequest, "Path foto tidak valid")
		}

		var photos []services.Photo
		record.UnmarshalJSONField("photos", &photos)

		kept := make([]services.Photo, 0, len(photos))
		found := false
		for _, ph := range photos {
			if ph.Path == path {
				found = true
				continue
			}
			kept = append(kept, ph)
		}
		if !found {
			return ErrorToast(e, http.StatusNotFound, "Foto tidak ditemukan")
		}
		record.Set("photos", kept)

		if err := app.Save(record); err != nil {
			log.Printf("photos: save record %s: %v", record.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Gagal menghapus foto")
		}

		if fsys, err := app.NewFilesystem(); err == nil {
			defer fsys.Close()
			if err := fsys.Delete(path); err != nil {
				log.Printf("photos: delete stored file %s: %v", path, err)
			}
		}

		SetToast(e, "success", "Foto dihapus")
		e.Response.Header().Set("HX-Redirect", "/projects/"+record.Id)
		return e.String(http.StatusOK, "")
	}
}
