package text

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "plain", in: "Hello world", want: "Hello world"},
		{name: "tags replaced by space", in: "<p>Hello</p><p>world</p>", want: "Hello world"},
		{name: "named entities", in: "Tom &amp; Jerry &quot;live&quot;", want: `Tom & Jerry "live"`},
		{name: "typographic", in: "Wait&hellip; it&rsquo;s &ldquo;on&rdquo; &mdash; now", want: `Wait... it's "on" - now`},
		{name: "nbsp", in: "a&nbsp;&nbsp;b", want: "a b"},
		{name: "decimal reference", in: "caf&#233; &#39;x&#39;", want: "café 'x'"},
		{name: "hex reference", in: "&#x27;quoted&#x27; &#x2F; slash", want: "'quoted' / slash"},
		{name: "unknown entity kept", in: "fish &chips; and &foo", want: "fish &chips; and &foo"},
		{name: "invalid code point kept", in: "bad &#x110000; ref", want: "bad &#x110000; ref"},
		{name: "zero reference kept", in: "nul &#0; here", want: "nul &#0; here"},
		{name: "whitespace collapsed", in: "  a \n\t b  ", want: "a b"},
		{name: "escaped markup is stripped too", in: "&lt;b&gt;bold&lt;/b&gt; text", want: "bold text"},
		{name: "attributes", in: `<a href="https://x.test/?a=1&amp;b=2">link</a>`, want: "link"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"&amp;lt;script&amp;gt;alert(1)&amp;lt;/script&amp;gt;",
		"<div>  Breaking:&nbsp;<b>news</b>&hellip;</div>",
		"&amp;amp;amp;",
		"5 &lt; 6 and 7 &gt; 3",
		"tab\tseparated\r\nlines",
		"&#38;#60;tag&#38;#62;",
		"no markup at all",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize is not idempotent for %q: once=%q twice=%q", in, once, twice)
		}
	}
}
