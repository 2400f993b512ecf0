package shortcode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAttributes_Empty(t *testing.T) {
	require.Len(t, ParseAttributes(""), 0)
	require.Len(t, ParseAttributes("   "), 0)
}

func TestParseAttributes_Unquoted(t *testing.T) {
	attrs := ParseAttributes(" limit=3")
	require.Len(t, attrs, 1)
	require.Equal(t, Attr{Key: "limit", Value: "3"}, attrs[0])
}

func TestParseAttributes_Quoted(t *testing.T) {
	attrs := ParseAttributes(` title="My Photos" count=4`)
	require.Len(t, attrs, 2)
	require.Equal(t, Attr{Key: "title", Value: "My Photos"}, attrs[0])
	require.Equal(t, Attr{Key: "count", Value: "4"}, attrs[1])
}

func TestParseAttributes_EscapedQuote(t *testing.T) {
	attrs := ParseAttributes(` caption="say \"hi\""`)
	require.Len(t, attrs, 1)
	require.Equal(t, `say "hi"`, attrs[0].Value)
}

func TestParseAttributes_DuplicateLastWins(t *testing.T) {
	attrs := ParseAttributes(" a=1 b=2 a=3")
	require.Len(t, attrs, 2)

	v, ok := attrs.Get("a")
	require.True(t, ok)
	require.Equal(t, "3", v)

	// the duplicate keeps its original position
	require.Equal(t, "a", attrs[0].Key)
	require.Equal(t, "b", attrs[1].Key)
}

func TestParseAttributes_TrailingGarbageIgnored(t *testing.T) {
	attrs := ParseAttributes(" limit=3 loose words")
	require.Len(t, attrs, 1)
	require.Equal(t, "limit", attrs[0].Key)
}

func TestParseAttributes_UnterminatedQuoteIgnored(t *testing.T) {
	attrs := ParseAttributes(` a=1 b="broken`)
	require.Len(t, attrs, 1)
	require.Equal(t, "a", attrs[0].Key)
}

func TestSerializeAttributes_WhitespaceQuoting(t *testing.T) {
	require.Equal(t, "limit=3", SerializeAttributes(Attrs{{Key: "limit", Value: "3"}}))
	require.Equal(t, `title="Hello World"`, SerializeAttributes(Attrs{{Key: "title", Value: "Hello World"}}))
}

func TestSerializeAttributes_EmptyValueOmitted(t *testing.T) {
	attrs := Attrs{
		{Key: "limit", Value: ""},
		{Key: "title", Value: "X"},
	}
	require.Equal(t, "title=X", SerializeAttributes(attrs))
}

func TestSerializeAttributes_EscapesQuotes(t *testing.T) {
	out := SerializeAttributes(Attrs{{Key: "caption", Value: `say "hi"`}})
	require.Equal(t, `caption="say \"hi\""`, out)
}

func TestAttributes_ParseSerializeInverse(t *testing.T) {
	testCases := []struct {
		name  string
		attrs Attrs
	}{
		{
			name:  "SinglePair",
			attrs: Attrs{{Key: "limit", Value: "3"}},
		},
		{
			name: "OrderPreserved",
			attrs: Attrs{
				{Key: "title", Value: "My Photos"},
				{Key: "count", Value: "4"},
				{Key: "mode", Value: "grid"},
			},
		},
		{
			name:  "UnicodeValue",
			attrs: Attrs{{Key: "caption", Value: "привет мир"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := SerializeAttributes(tc.attrs)
			require.Equal(t, tc.attrs, ParseAttributes(out))
		})
	}
}

func TestBuildToken(t *testing.T) {
	require.Equal(t, "[divider]", BuildToken("divider", nil))

	attrs := Attrs{
		{Key: "title", Value: "My Photos"},
		{Key: "count", Value: "4"},
	}
	require.Equal(t, `[gallery title="My Photos" count=4]`, BuildToken("gallery", attrs))
}
