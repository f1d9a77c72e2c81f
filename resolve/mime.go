package resolve

import (
	"mime"

	"github.com/gabriel-vasile/mimetype"
)

// fileParamNames are the query keys that may carry a filename, checked
// case-insensitively and in this order.
var fileParamNames = []string{"name", "filename", "file_name", "title", "file"}

// extTable maps exact content types to candidate extensions. The first
// entry is the preferred one.
var extTable = map[string][]string{
	"application/gzip":              {".gz"},
	"application/json":              {".json"},
	"application/msword":            {".doc"},
	"application/octet-stream":      {".bin"},
	"application/pdf":               {".pdf"},
	"application/vnd.ms-excel":      {".xls"},
	"application/vnd.ms-powerpoint": {".ppt"},
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": {".pptx"},
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":         {".xlsx"},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document":   {".docx"},
	"application/x-7z-compressed":   {".7z"},
	"application/x-rar-compressed":  {".rar"},
	"application/x-tar":             {".tar"},
	"application/xml":               {".xml"},
	"application/zip":               {".zip"},
	"audio/flac":                    {".flac"},
	"audio/mpeg":                    {".mp3"},
	"audio/ogg":                     {".ogg"},
	"audio/wav":                     {".wav"},
	"image/bmp":                     {".bmp"},
	"image/gif":                     {".gif"},
	"image/jpeg":                    {".jpg", ".jpeg"},
	"image/png":                     {".png"},
	"image/svg+xml":                 {".svg"},
	"image/webp":                    {".webp"},
	"text/css":                      {".css"},
	"text/csv":                      {".csv"},
	"text/html":                     {".html", ".htm"},
	"text/plain":                    {".txt"},
	"video/mp4":                     {".mp4"},
	"video/quicktime":               {".mov"},
	"video/webm":                    {".webm"},
	"video/x-matroska":              {".mkv"},
}

// extensionsFor resolves candidate extensions for a Content-Type header
// value: exact table lookup first, then a retry with the media type
// stripped of its parameters, then the mimetype database.
func extensionsFor(contentType string) []string {
	if contentType == "" {
		return nil
	}
	if exts, ok := extTable[contentType]; ok {
		return exts
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil
	}
	if exts, ok := extTable[mt]; ok {
		return exts
	}
	if m := mimetype.Lookup(mt); m != nil && m.Extension() != "" {
		return []string{m.Extension()}
	}
	return nil
}
