package services

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	config "github.com/puterizamrud/tuition_admin/configs"
)

// ArchiveExport keeps a copy of a generated e-invoice export in cloud
// storage for bookkeeping. It is best-effort: when CLOUDINARY_URL is not
// configured or the upload fails, the export already sent to the caller
// is unaffected.
func ArchiveExport(filename string, fileBytes []byte) {
	cloudinaryURL := config.Config("CLOUDINARY_URL")
	if cloudinaryURL == "" {
		return
	}

	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		log.Printf("🔥 Failed to initialize export archive client: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("exports/%s", filename),
		Folder:       "tuition_admin_exports",
		ResourceType: "raw",
	}

	if _, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams); err != nil {
		log.Printf("🔥 Failed to archive export %s: %v", filename, err)
		return
	}

	log.Printf("✅ Archived export %s.", filename)
}
