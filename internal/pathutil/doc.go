// Copyright 2024 Erraggy
// SPDX-License-Identifier: MIT

// Package pathutil provides path and reference helpers shared by the splitter,
// the reference rewriter and the bundlers.
//
// # JSON Pointers
//
// [SplitPointer] and [JoinPointer] convert between pointers and RFC 6901
// tokens, handling "~0" and "~1" escapes:
//
//	pathutil.SplitPointer("#/definitions/a~1b")  // ["definitions", "a/b"]
//	pathutil.JoinPointer("properties", "id")     // "/properties/id"
//
// # Entity Files
//
// [EntityName] and [EntityFileName] derive the on-disk name of a split entity
// from its collection key:
//
//	pathutil.EntityFileName("/pets/{petId}")  // "{petId}.json"
//	pathutil.EntityRef("definitions", "Pet.json") // "definitions/Pet.json"
//
// # Output Path Sanitization
//
// [SanitizeOutputPath] validates and cleans output file paths. It rejects
// paths that resolve to symlinks:
//
//	safe, err := pathutil.SanitizeOutputPath(userProvidedPath)
//	if err != nil {
//	    return err
//	}
package pathutil
