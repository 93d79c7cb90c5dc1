package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/codemod/internal/engine"
)

const legacyRoute = `import { NextResponse } from 'next/server'

export async function GET(request: Request) {
  try {
    const data = await load()
    return NextResponse.json(data)
  } catch (error) {
    console.error(error)
    return NextResponse.json({ error: 'Internal error' }, { status: 500 })
  }
}
`

func TestErrorMigrationEndToEnd(t *testing.T) {
	set := ErrorMigration()
	eng := engine.New(set.Rules, set.Import)

	out, counts, warns := eng.Apply("app/api/patients/route.ts", legacyRoute)
	assert.Empty(t, warns)
	assert.Equal(t, 1, counts["import-error-response"])
	assert.Equal(t, 1, counts["catch-error-response"])

	// Import is inserted after the last existing import.
	assert.True(t, strings.HasPrefix(out,
		"import { NextResponse } from 'next/server'\nimport { errorResponse } from '@/lib/api-response'\n"))

	assert.Contains(t, out, "return errorResponse(error, {")
	assert.Contains(t, out, "route: '/api/patients'")
	assert.Contains(t, out, "operation: 'fetch'")
	assert.NotContains(t, out, "status: 500")

	// Second pass: import present, catch block carries the marker.
	again, counts, _ := eng.Apply("app/api/patients/route.ts", out)
	assert.Equal(t, out, again)
	assert.Empty(t, counts)
}

func TestErrorMigrationOperationFromVerb(t *testing.T) {
	set := ErrorMigration()
	eng := engine.New(set.Rules, set.Import)

	content := strings.Replace(legacyRoute, "export async function GET", "export async function DELETE", 1)
	out, _, _ := eng.Apply("app/api/patients/route.ts", content)
	assert.Contains(t, out, "operation: 'delete'")
}

func TestErrorMigrationSkipsModernCatch(t *testing.T) {
	set := ErrorMigration()
	eng := engine.New(set.Rules, set.Import)

	content := `import { errorResponse } from '@/lib/api-response'

export async function POST() {
  try {
    return NextResponse.json({ ok: true })
  } catch (error) {
    return errorResponse(error, { route: '/api/x', operation: 'create' })
  }
}
`
	out, counts, _ := eng.Apply("app/api/x/route.ts", content)
	assert.Equal(t, content, out)
	assert.Empty(t, counts)
}

func TestErrorMigrationWhereConditionSkipsNonLegacyShape(t *testing.T) {
	set := ErrorMigration()
	eng := engine.New(set.Rules, set.Import)

	// A catch that rethrows is not the legacy 500 shape and must be
	// left alone (only the import is ensured).
	content := `export async function GET() {
  try {
    return ok()
  } catch (error) {
    throw error
  }
}
`
	out, counts, _ := eng.Apply("app/api/y/route.ts", content)
	assert.Zero(t, counts["catch-error-response"])
	assert.Contains(t, out, "throw error")
}

func TestErrorMigrationPreservesCatchParam(t *testing.T) {
	set := ErrorMigration()
	eng := engine.New(set.Rules, set.Import)

	content := strings.Replace(legacyRoute, "} catch (error) {", "} catch (err: unknown) {", 1)
	content = strings.Replace(content, "console.error(error)", "console.error(err)", 1)
	out, _, _ := eng.Apply("app/api/patients/route.ts", content)
	assert.Contains(t, out, "} catch (err: unknown) {")
	assert.Contains(t, out, "errorResponse(err: unknown,")
}

func TestRoutePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"app/api/patients/route.ts", "/api/patients"},
		{"app/api/patients/[patientId]/medications/route.ts", "/api/patients/[patientId]/medications"},
		{`app\api\recipes\route.ts`, "/api/recipes"},
		{"app/pages/home.tsx", "/api/unknown"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, RoutePath(tt.path), tt.path)
	}
}
