package classifier

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsInDomain(t *testing.T) {
	cases := []struct {
		name  string
		query string
		want  bool
	}{
		{"keyword match", "what is dbms", true},
		{"uppercase match", "Explain DBMS normalization", true},
		{"multi word keyword", "how does an operating system schedule threads", true},
		{"no keyword", "what's the weather today", false},
		{"empty", "", false},
		// 子字串比對是刻意行為："os" 出現在 "philosophy" 內也算命中
		{"substring overmatch", "tell me about philosophy", true},
		{"single letter keyword", "welcome", true}, // 內含 "c"
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, IsInDomain(tc.query))
		})
	}
}

func TestIsInDomainIsPure(t *testing.T) {
	q := "explain java generics"
	first := IsInDomain(q)
	second := IsInDomain(q)
	require.Equal(t, first, second)
	require.True(t, first)
}

func TestKeywordsReturnsCopy(t *testing.T) {
	ks := Keywords()
	require.NotEmpty(t, ks)
	ks[0] = "mutated"
	require.NotEqual(t, "mutated", Keywords()[0])
}
