// Package splitter breaks an OAS 2.0 document into one file per entity.
//
// Every object in the document is visited in pre-order. For each configured
// [SplitSpec], the object's child collection (for example "definitions") is
// written out entry by entry to <outputDir>/<collection>/<entity>.json and
// each entry is replaced in place by a reference to its new file:
//
//	{"definitions": {"Pet": {...}}}  ->  {"definitions": {"Pet": {"$ref": "definitions/Pet.json"}}}
//
// Because replacement happens before the walker descends, the content of a
// split entity is never split again.
//
// # Entity file names
//
// File names come from the last "/" segment of an entry key, so the path
// "/pets/{petId}" is written to paths/{petId}.json. When two keys of one
// collection map to the same file, the later key gets a "-2", "-3", ...
// suffix. A [Namer] records these assignments so that the reference rewriter
// and the splitter agree on them.
package splitter
