// Package parser loads API description documents into an order-preserving tree.
//
// JSON text is decoded into go.yaml.in/yaml/v4 nodes: objects become
// MappingNodes whose Content alternates key and value, arrays become
// SequenceNodes, and scalars keep their literal text. Key order survives
// decoding, mutation and re-encoding, so writing the same tree twice always
// yields the same bytes.
//
// # Quick Start
//
//	doc, err := parser.ParseFile("swagger.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defs := doc.Get("definitions")
//	for _, e := range parser.Entries(defs) {
//		fmt.Println(e.Key)
//	}
//	out, _ := doc.MarshalJSON()
//
// # Node helpers
//
// [Get], [Set], [Delete], [Keys] and [Entries] operate on object nodes;
// [RemoveStrings] filters string arrays and [NewRef] builds a {"$ref": ...}
// object.
//
// # Errors
//
// Malformed JSON and non-object documents are reported as
// *oaserrors.ParseError. Inputs nested deeper than [MaxNestingDepth] yield
// *oaserrors.ResourceLimitError.
//
// # Logging
//
// [Logger] is the structured logging interface shared by every swagsplit
// package. [NopLogger] is the default; [NewSlogAdapter] wraps log/slog.
package parser
