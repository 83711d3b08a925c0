package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeApology(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a/b", "a~sb"},
		{"hello world", "hello-world"},
		{"under_score", "under__score"},
		{"what?", "what~q"},
		{"100%", "100~p"},
		{"#tag", "~htag"},
		{`say "hi"`, "say-''hi''"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, escapeApology(tt.in), "escape(%q)", tt.in)
	}
}

func TestEscapeApologyOrderSensitive(t *testing.T) {
	// Hyphens are doubled before spaces become hyphens; a later hyphen pass
	// would otherwise mangle the substituted spaces.
	assert.Equal(t, "a--b-c", escapeApology("a-b c"))
	assert.Equal(t, "invalid-username-and~sor-password", escapeApology("invalid username and/or password"))
}

func TestApologyRendersStatusAndMessage(t *testing.T) {
	h, _ := newTestHandlers(t)

	w := httptest.NewRecorder()
	h.apology(w, "must provide username", 403)

	require.Equal(t, 403, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "403")
	assert.Contains(t, body, "must-provide-username")
}

func TestUSD(t *testing.T) {
	assert.Equal(t, "$0.00", usd(0))
	assert.Equal(t, "$5.50", usd(5.5))
	assert.Equal(t, "$1,234.56", usd(1234.56))
	assert.Equal(t, "$1,000,000.00", usd(1000000))
	assert.Equal(t, "-$42.00", usd(-42))
}
