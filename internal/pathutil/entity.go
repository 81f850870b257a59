package pathutil

import (
	"path"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// EntityExt is the file extension of every split entity file.
const EntityExt = ".json"

// fallbackEntityName replaces keys whose last segment is empty, e.g. the "/" path.
const fallbackEntityName = "root"

// EntityName derives a file base name (without extension) from a collection key.
//
// The last "/"-separated segment of key is used, so "/pets/{petId}" becomes
// "{petId}" and "Pet" stays "Pet". The result is NFC-normalized so that the
// same name written on macOS and Linux maps to the same file. Characters that
// are not portable in file names, and '#' and '%' which would break the name
// when used in a $ref URI, are replaced with '_'.
func EntityName(key string) string {
	seg := key
	if i := strings.LastIndexByte(key, '/'); i >= 0 {
		seg = key[i+1:]
	}
	seg = norm.NFC.String(seg)
	seg = strings.Map(func(r rune) rune {
		switch r {
		case '\\', ':', '*', '?', '"', '<', '>', '|', '#', '%':
			return '_'
		}
		if unicode.IsControl(r) {
			return '_'
		}
		return r
	}, seg)
	seg = strings.TrimSpace(seg)
	if seg == "" || seg == "." || seg == ".." {
		return fallbackEntityName
	}
	return seg
}

// EntityFileName returns EntityName(key) with the entity file extension.
func EntityFileName(key string) string {
	return EntityName(key) + EntityExt
}

// EntityRef returns the slash-separated path of an entity file relative to
// the directory holding the split collections, e.g. "definitions/Pet.json".
func EntityRef(collection, fileName string) string {
	return path.Join(collection, fileName)
}

// TrimEntityExt strips a trailing entity extension from a file base name.
func TrimEntityExt(name string) string {
	return strings.TrimSuffix(name, EntityExt)
}
