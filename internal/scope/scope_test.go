package scope

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/codemod/internal/model"
)

func TestResolveAttribute(t *testing.T) {
	content := `<div className="bg-white text-black">`
	start := strings.Index(content, "bg-white")
	sc, err := Resolve(content, start, start+len("bg-white"), model.ScopeAttribute, "className")
	require.NoError(t, err)
	assert.Equal(t, "bg-white text-black", sc.Text)
	assert.Equal(t, content[sc.Start:sc.End], sc.Text)
}

func TestResolveAttributeSingleQuotes(t *testing.T) {
	content := `<div className='bg-white'>`
	start := strings.Index(content, "bg-white")
	sc, err := Resolve(content, start, start+len("bg-white"), model.ScopeAttribute, "className")
	require.NoError(t, err)
	assert.Equal(t, "bg-white", sc.Text)
}

func TestResolveAttributeNoToken(t *testing.T) {
	content := `const x = "bg-white"`
	start := strings.Index(content, "bg-white")
	_, err := Resolve(content, start, start+len("bg-white"), model.ScopeAttribute, "className")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveAttributeUnterminatedQuote(t *testing.T) {
	content := `<div className="bg-white`
	start := strings.Index(content, "bg-white")
	_, err := Resolve(content, start, start+len("bg-white"), model.ScopeAttribute, "className")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveBlockNested(t *testing.T) {
	// The scope must end at the outer closing brace, not the one closing
	// the inner conditional.
	content := `catch (e) { if (x) { y() } return e }`
	sc, err := Resolve(content, 0, len("catch (e)"), model.ScopeBlock, "")
	require.NoError(t, err)
	assert.Equal(t, ` if (x) { y() } return e `, sc.Text)
	assert.Equal(t, len(content)-1, sc.End)
}

func TestResolveBlockIgnoresBracesInsideMatch(t *testing.T) {
	// A brace pair inside the matched text must not open the scope; the
	// scan starts at the match end.
	content := `match {x} { body }`
	sc, err := Resolve(content, 0, len("match {x}"), model.ScopeBlock, "")
	require.NoError(t, err)
	assert.Equal(t, ` body `, sc.Text)
	assert.Equal(t, len(content)-1, sc.End)
}

func TestResolveBlockUnterminated(t *testing.T) {
	content := `catch (e) { if (x) { y() }`
	_, err := Resolve(content, 0, len("catch (e)"), model.ScopeBlock, "")
	assert.ErrorIs(t, err, ErrUnterminated)
}

func TestResolveBlockNoBrace(t *testing.T) {
	content := `catch (e)`
	_, err := Resolve(content, 0, len(content), model.ScopeBlock, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBlockEnd(t *testing.T) {
	tests := []struct {
		name    string
		content string
		open    int
		want    int
		ok      bool
	}{
		{"flat", `{ a }`, 0, 4, true},
		{"nested", `{ { } }`, 0, 6, true},
		{"deeply nested", `{ a { b { c } } d }`, 0, 18, true},
		{"escaped braces ignored", `{ "\{" }`, 0, 7, true},
		{"unterminated", `{ { }`, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := BlockEnd(tt.content, tt.open)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestAlreadyApplied(t *testing.T) {
	sc := model.Scope{Text: "bg-white dark:bg-gray-900"}
	assert.True(t, AlreadyApplied(sc, "dark:"))
	assert.False(t, AlreadyApplied(sc, "errorResponse("))
}
