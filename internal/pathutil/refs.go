// Copyright 2024 Erraggy
// SPDX-License-Identifier: MIT

package pathutil

import (
	"net/url"
	"strings"
)

// OAS 2.0 top-level collections that can be split into per-entity files.
const (
	CollectionPaths       = "paths"
	CollectionParameters  = "parameters"
	CollectionDefinitions = "definitions"
	CollectionResponses   = "responses"
)

var (
	pointerEscaper   = strings.NewReplacer("~", "~0", "/", "~1")
	pointerUnescaper = strings.NewReplacer("~1", "/", "~0", "~")
)

// EscapePointerToken escapes a single JSON Pointer reference token (RFC 6901).
func EscapePointerToken(token string) string {
	return pointerEscaper.Replace(token)
}

// UnescapePointerToken reverses EscapePointerToken.
// Percent-encoded tokens (as found in URI fragments) are decoded first.
func UnescapePointerToken(token string) string {
	if strings.Contains(token, "%") {
		if decoded, err := url.PathUnescape(token); err == nil {
			token = decoded
		}
	}
	return pointerUnescaper.Replace(token)
}

// SplitPointer splits a JSON Pointer ("/a/b~1c") into unescaped tokens ("a", "b/c").
// A leading "#" is ignored. The empty pointer yields no tokens.
func SplitPointer(pointer string) []string {
	pointer = strings.TrimPrefix(pointer, "#")
	if pointer == "" || pointer == "/" {
		return nil
	}
	parts := strings.Split(strings.TrimPrefix(pointer, "/"), "/")
	for i, p := range parts {
		parts[i] = UnescapePointerToken(p)
	}
	return parts
}

// JoinPointer builds a JSON Pointer from unescaped tokens.
func JoinPointer(tokens ...string) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteByte('/')
		b.WriteString(EscapePointerToken(t))
	}
	return b.String()
}
