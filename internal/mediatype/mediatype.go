// Package mediatype maps file names to MIME types using a fixed table.
package mediatype

import (
	"path"
	"strings"

	"github.com/sh3r4rd/flow_uploads/internal/model"
)

var byExtension = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".xls":  "application/vnd.ms-excel",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".txt":  "text/plain",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".zip":  "application/zip",
	".csv":  "text/csv",
}

// FromFileName returns the MIME type for the file name's extension, or
// application/octet-stream when the extension is missing or unknown.
func FromFileName(name string) string {
	if t, ok := byExtension[strings.ToLower(path.Ext(name))]; ok {
		return t
	}
	return model.ContentTypeOctetStream
}
