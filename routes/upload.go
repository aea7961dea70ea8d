package routes

import (
	"io"
	"log"
	"sort"
	"strconv"

	"github.com/Lawhacknifemi/real-estate/services"
	"github.com/Lawhacknifemi/real-estate/utils"
	"github.com/kataras/iris/v12"
)

const maxUploadMemory = 32 << 20

// UploadImages ingests multipart image files through the storage backend
// chain and returns their public URLs in input order. Field names order the
// files (clients send numeric indexes).
func UploadImages(ctx iris.Context) {
	if err := ctx.Request().ParseMultipartForm(maxUploadMemory); err != nil {
		ctx.StopWithJSON(iris.StatusBadRequest, iris.Map{"error": "No images uploaded!"})
		return
	}

	form := ctx.Request().MultipartForm
	if form == nil || len(form.File) == 0 {
		ctx.StopWithJSON(iris.StatusBadRequest, iris.Map{"error": "No images uploaded!"})
		return
	}

	fields := make([]string, 0, len(form.File))
	for field := range form.File {
		fields = append(fields, field)
	}
	sortFieldNames(fields)

	var files []services.UploadFile
	for _, field := range fields {
		for _, header := range form.File[field] {
			if header.Filename == "" {
				continue
			}
			f, err := header.Open()
			if err != nil {
				log.Printf("[UPLOAD] opening %s failed: %v", header.Filename, err)
				continue
			}
			data, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				log.Printf("[UPLOAD] reading %s failed: %v", header.Filename, err)
				continue
			}
			files = append(files, services.UploadFile{
				Name:        header.Filename,
				ContentType: header.Header.Get("Content-Type"),
				Data:        data,
			})
		}
	}

	if len(files) == 0 {
		ctx.StopWithJSON(iris.StatusBadRequest, iris.Map{"error": "No images uploaded!"})
		return
	}

	uploader := services.NewUploader(utils.Conf)
	urls := uploader.Ingest(requestBaseURL(ctx), files)

	if len(urls) == 0 {
		ctx.StopWithJSON(iris.StatusInternalServerError, iris.Map{"error": "Failed to upload any images"})
		return
	}

	ctx.JSON(iris.Map{"image_urls": urls})
}

// sortFieldNames orders numeric field names by value so "10" follows "9",
// not "1". Non-numeric names sort lexicographically after the numeric ones.
func sortFieldNames(fields []string) {
	sort.Slice(fields, func(i, j int) bool {
		a, aErr := strconv.Atoi(fields[i])
		b, bErr := strconv.Atoi(fields[j])
		switch {
		case aErr == nil && bErr == nil:
			return a < b
		case aErr == nil:
			return true
		case bErr == nil:
			return false
		default:
			return fields[i] < fields[j]
		}
	})
}

func requestBaseURL(ctx iris.Context) string {
	scheme := "http"
	if ctx.Request().TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + ctx.Host()
}
