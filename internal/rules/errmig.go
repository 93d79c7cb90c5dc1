package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/oxhq/codemod/internal/engine"
	"github.com/oxhq/codemod/internal/model"
)

var (
	// catchHead matches the head of a catch handler up to its closing
	// paren; the block scanner locates the brace-delimited body from
	// there.
	catchHead = regexp.MustCompile(`\} catch \(([^)]+)\)`)

	// legacyShape restricts the migration to blocks that still return a
	// raw 500 with the error payload inlined.
	legacyShape = regexp.MustCompile(`(?s)return NextResponse\.json\(.*?status:\s*500`)

	// handlerSig locates the exported route handlers preceding a catch.
	handlerSig = regexp.MustCompile(`export async function (GET|POST|PUT|PATCH|DELETE)`)

	routePathRe = regexp.MustCompile(`/api/(.+)/route\.ts$`)
)

// operationByVerb labels the migrated error response by what the handler
// was doing.
var operationByVerb = map[string]string{
	"GET":    "fetch",
	"POST":   "create",
	"PUT":    "update",
	"PATCH":  "patch",
	"DELETE": "delete",
}

// ErrorMigration builds the error-handling migration set: every legacy
// catch block in an API route is rewritten to delegate to the
// errorResponse helper, and the helper's import is ensured once per file.
func ErrorMigration() Set {
	return Set{
		Name:        "errors",
		Description: "migrate route catch blocks to the errorResponse helper",
		Include:     []string{"**/route.ts"},
		Rules: []model.Rule{
			{
				ID:      "catch-error-response",
				Pattern: catchHead,
				Scope:   model.ScopeBlock,
				Marker:  "errorResponse(",
				Where:   legacyShape,
				Replace: rewriteCatch,
			},
		},
		Import: &engine.ImportDecl{
			ID:        "import-error-response",
			Name:      "errorResponse",
			Module:    "@/lib/api-response",
			Statement: "import { errorResponse } from '@/lib/api-response'",
		},
	}
}

// rewriteCatch replaces the whole catch block with a call to
// errorResponse, parameterized by the route derived from the file path
// and an operation label derived from the enclosing handler's verb.
func rewriteCatch(m model.Match, _ model.Scope, ctx model.Context) string {
	param := strings.TrimSpace(m.Groups[0])
	return fmt.Sprintf("} catch (%s) {\n    return errorResponse(%s, {\n      route: '%s',\n      operation: '%s'\n    })\n  }",
		param, param, RoutePath(ctx.Path), operationFor(ctx.Before))
}

// operationFor derives the operation label from the nearest preceding
// exported handler signature.
func operationFor(before string) string {
	sigs := handlerSig.FindAllStringSubmatch(before, -1)
	if len(sigs) == 0 {
		return "operation"
	}
	if op, ok := operationByVerb[sigs[len(sigs)-1][1]]; ok {
		return op
	}
	return "operation"
}

// RoutePath extracts the API route from a route file's path, normalizing
// Windows separators. Files outside the app/api layout map to
// "/api/unknown".
func RoutePath(path string) string {
	p := strings.ReplaceAll(path, `\`, "/")
	if m := routePathRe.FindStringSubmatch(p); m != nil {
		return "/api/" + m[1]
	}
	return "/api/unknown"
}
