package bunny

import "testing"

func TestParams(t *testing.T) {
	t.Run("strings are omitted when empty", func(t *testing.T) {
		p := newParams()
		p.setString("search", "")
		p.setString("orderBy", "date")

		if got := p.Encode(); got != "orderBy=date" {
			t.Errorf("Encode() = %q, want orderBy=date", got)
		}
	})

	t.Run("booleans serialize as literals", func(t *testing.T) {
		p := newParams()
		p.setBool("dryRun", true)
		p.setBool("deleteOriginal", false)

		if got := p.Get("dryRun"); got != "true" {
			t.Errorf("dryRun = %q, want the literal true", got)
		}
		if got := p.Get("deleteOriginal"); got != "false" {
			t.Errorf("deleteOriginal = %q, want the literal false", got)
		}
	})

	t.Run("numbers", func(t *testing.T) {
		p := newParams()
		p.setInt("page", 2)
		p.setInt64("expires", 1767225600)

		if got := p.Encode(); got != "expires=1767225600&page=2" {
			t.Errorf("Encode() = %q", got)
		}
	})
}
