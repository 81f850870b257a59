package circular

import (
	"fmt"
	"path"
	"strings"

	"github.com/erraggy/swagsplit/internal/pathutil"
	"github.com/erraggy/swagsplit/oaserrors"
)

// DiagnosticPrefix starts every cycle report emitted by the bundler.
const DiagnosticPrefix = "Circular $ref pointer found at "

const (
	propertiesToken  = "properties"
	definitionsToken = "definitions"
)

// Cycle names the property whose reference closes a cycle.
type Cycle struct {
	Definition string
	Property   string
}

// String returns "Definition.Property".
func (c Cycle) String() string {
	return c.Definition + "." + c.Property
}

// ParseDiagnostic extracts the offending definition and property from the
// first non-empty line of bundler error output.
//
// The location after DiagnosticPrefix is split on '#'. The last chunk holding
// a "properties" token is the fragment. The fragment is read as a schema
// pointer, so a keyword such as "properties" always consumes the next token
// as a name; a property that is itself named "properties" is found. The
// property is the name after the last "properties" keyword. The definition is
// the name after the closest preceding "definitions" keyword, or else the
// file name (without extension) at the end of the chunk before the fragment.
//
//	#/definitions/Order/properties/items#/definitions/Item/properties/order -> Item.order
//	/abs/definitions/Order.json#/properties/customer                       -> Order.customer
func ParseDiagnostic(text string) (Cycle, error) {
	line := firstLine(text)
	fail := func(msg string) (Cycle, error) {
		return Cycle{}, &oaserrors.DiagnosticError{Diagnostic: line, Message: msg}
	}

	if line == "" {
		return fail("empty diagnostic")
	}
	location, ok := strings.CutPrefix(line, DiagnosticPrefix)
	if !ok {
		return fail(fmt.Sprintf("missing %q prefix", strings.TrimSpace(DiagnosticPrefix)))
	}
	location = strings.TrimSpace(location)

	chunks := strings.Split(location, "#")
	if len(chunks) < 2 {
		return fail("location has no '#' fragment")
	}

	fragIdx := -1
	var tokens []string
	for i := len(chunks) - 1; i >= 1; i-- {
		toks := strings.Split(chunks[i], "/")
		if lastIndex(toks, propertiesToken) >= 0 {
			fragIdx, tokens = i, toks
			break
		}
	}
	if fragIdx < 0 {
		return fail("no properties segment in pointer")
	}

	steps, msg := schemaSteps(tokens)
	if msg != "" {
		return fail(msg)
	}
	propStep := -1
	for i := len(steps) - 1; i >= 0; i-- {
		if steps[i].keyword == propertiesToken {
			propStep = i
			break
		}
	}
	if propStep < 0 {
		return fail("no properties segment in pointer")
	}
	property := pathutil.UnescapePointerToken(steps[propStep].name)

	var definition string
	defStep := -1
	for i := propStep - 1; i >= 0; i-- {
		if steps[i].keyword == definitionsToken {
			defStep = i
			break
		}
	}
	if defStep >= 0 {
		definition = pathutil.UnescapePointerToken(steps[defStep].name)
	} else {
		base := path.Base(strings.TrimRight(chunks[fragIdx-1], "/"))
		if base != "." && base != "/" {
			definition = pathutil.UnescapePointerToken(pathutil.TrimEntityExt(base))
		}
	}
	if definition == "" {
		return fail("cannot determine definition name")
	}

	return Cycle{Definition: definition, Property: property}, nil
}

// namedKeywords are pointer tokens followed by the name of a child.
var namedKeywords = map[string]bool{
	propertiesToken:     true,
	definitionsToken:    true,
	"patternProperties": true,
	"paths":             true,
	"parameters":        true,
	"responses":         true,
}

// schemaStep is one keyword and the child name it selects.
type schemaStep struct {
	keyword string
	name    string
}

// schemaSteps reads the named keywords of a pointer's tokens from left to
// right. Other tokens (items, allOf, array indexes) are skipped. A keyword
// without a following name yields a failure message.
func schemaSteps(tokens []string) ([]schemaStep, string) {
	if len(tokens) > 0 && tokens[0] == "" {
		tokens = tokens[1:]
	}
	var steps []schemaStep
	for i := 0; i < len(tokens); i++ {
		if !namedKeywords[tokens[i]] {
			continue
		}
		if i+1 >= len(tokens) || tokens[i+1] == "" {
			return nil, fmt.Sprintf("no property name after %s segment", tokens[i])
		}
		steps = append(steps, schemaStep{keyword: tokens[i], name: tokens[i+1]})
		i++
	}
	return steps, ""
}

// firstLine returns the first non-blank line of text, trimmed.
func firstLine(text string) string {
	for line := range strings.Lines(text) {
		if s := strings.TrimSpace(line); s != "" {
			return s
		}
	}
	return ""
}

func lastIndex(tokens []string, want string) int {
	for i := len(tokens) - 1; i >= 0; i-- {
		if tokens[i] == want {
			return i
		}
	}
	return -1
}
