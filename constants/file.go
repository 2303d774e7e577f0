package constants

import "strings"

// FileFormats holds the source format tags recorded on extraction results.
var FileFormats = []string{"PDF", "DOCX", "IMAGE"}

const (
	PDF   = "PDF"
	DOCX  = "DOCX"
	IMAGE = "IMAGE"
)

// ImageExtensions holds the extensions handed straight to OCR.
var ImageExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"tiff": {},
	"bmp":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized extension to a source format tag.
// Unknown extensions map to IMAGE: the extractor runs OCR as a last
// resort on anything it does not recognize.
func MapExtToFormat(ext string) string {
	switch ext {
	case "pdf":
		return PDF
	case "docx":
		return DOCX
	default:
		return IMAGE
	}
}
