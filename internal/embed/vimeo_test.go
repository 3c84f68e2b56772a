package embed

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const vimeoPrimary = `<div style="padding:56.25% 0 0 0;position:relative;"><iframe src="https://player.vimeo.com/video/123456789?badge=0&amp;autopause=0&amp;player_id=0" frameborder="0" allow="autoplay; fullscreen; picture-in-picture" style="position:absolute;top:0;left:0;width:100%;height:100%;" title="Intro"></iframe></div><script src="https://player.vimeo.com/api/player.js"></script>`

const vimeoSecondary = `<div class="video" style="position: relative; padding: 56.25% 0 0 0;">
  <iframe
    src="https://player.vimeo.com/video/11111111?h=abc123"
    style="position:absolute;top:0;left:0;width:100%;height:100%;"
    allowfullscreen>
  </iframe>
</div>`

// iframeAttrs parses the single iframe in markup and returns its attributes
func iframeAttrs(t *testing.T, markup string) map[string]string {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	require.NoError(t, err)
	iframes := doc.Find("iframe")
	require.Equal(t, 1, iframes.Length(), "expected exactly one iframe in %q", markup)

	attrs := make(map[string]string)
	for _, a := range iframes.Nodes[0].Attr {
		attrs[a.Key] = a.Val
	}
	return attrs
}

func TestVimeoConvertPrimary(t *testing.T) {
	c := NewVimeoConverter(720, 405)
	out, matches := c.Convert("# Title\n\n" + vimeoPrimary + "\n\nMore text.\n")

	require.Len(t, matches, 1)
	assert.Equal(t, "123456789", matches[0].VideoID)
	assert.Equal(t, "vimeo", matches[0].Provider)

	assert.True(t, strings.HasPrefix(out, "# Title\n\n<iframe\n"))
	assert.True(t, strings.HasSuffix(out, `<script src="https://player.vimeo.com/api/player.js"></script>`+"\n\nMore text.\n"))
	assert.NotContains(t, out, "56.25%")

	before, _, ok := strings.Cut(out, "<script")
	require.True(t, ok)
	attrs := iframeAttrs(t, before)
	assert.Equal(t, "https://player.vimeo.com/video/123456789", attrs["src"])
	assert.Equal(t, "720", attrs["width"])
	assert.Equal(t, "405", attrs["height"])
	assert.Equal(t, "0", attrs["frameborder"])
	assert.Equal(t, "autoplay; fullscreen; picture-in-picture", attrs["allow"])
	assert.Contains(t, attrs, "allowfullscreen")
}

func TestVimeoConvertSecondary(t *testing.T) {
	c := NewVimeoConverter(720, 405)
	doc := "Intro\n\n" + vimeoSecondary +
		"\n\nBetween\n\n" + strings.Replace(vimeoSecondary, "11111111", "22222222", 1) + "\n"

	out, matches := c.Convert(doc)

	require.Len(t, matches, 2)
	assert.Equal(t, "11111111", matches[0].VideoID)
	assert.Equal(t, "22222222", matches[1].VideoID)
	assert.Contains(t, out, `src="https://player.vimeo.com/video/11111111"`)
	assert.Contains(t, out, `src="https://player.vimeo.com/video/22222222"`)
	assert.NotContains(t, out, "h=abc123")
	assert.Contains(t, out, "\n\nBetween\n\n")
}

func TestVimeoConvertIsIdempotent(t *testing.T) {
	c := NewVimeoConverter(720, 405)
	once, matches := c.Convert(vimeoPrimary + "\n" + vimeoSecondary)
	require.Len(t, matches, 2)

	twice, matches := c.Convert(once)
	assert.Empty(t, matches)
	assert.Equal(t, once, twice)
}

func TestVimeoConvertPreservesID(t *testing.T) {
	ids := []string{"1", "76979871", "123456789", "000123", "98765432101234567890"}
	c := NewVimeoConverter(720, 405)
	for _, id := range ids {
		t.Run(id, func(t *testing.T) {
			in := `<div style="padding:56.25% 0 0 0;position:relative;"><iframe src="https://player.vimeo.com/video/` + id + `?h=ff"></iframe></div>`
			out, matches := c.Convert(in)
			require.Len(t, matches, 1)
			assert.Equal(t, id, matches[0].VideoID)
			assert.Equal(t, "https://player.vimeo.com/video/"+id, iframeAttrs(t, out)["src"])
		})
	}
}

func TestVimeoConvertCaseAndWhitespace(t *testing.T) {
	tests := []struct {
		name string
		in   string
		id   string
	}{
		{
			name: "upper case tags and attributes",
			in:   `<DIV STYLE="PADDING:56.25% 0 0 0;POSITION:RELATIVE;"><IFRAME SRC="https://PLAYER.VIMEO.COM/video/42"></IFRAME></DIV>`,
			id:   "42",
		},
		{
			name: "newlines and indentation between tags",
			in:   "<div style=\"padding:56.25%   0 0\t0;position:relative;\">\n\n\t<iframe\n\t\tframeborder=\"0\"\n\t\tsrc=\"https://player.vimeo.com/video/555\"\n\t>\n\t</iframe>\n</div>",
			id:   "555",
		},
		{
			name: "loose wrapper with extra attributes",
			in:   "<Div id=\"v\" Style=\"Padding:  56.25% 0 0 0; position: relative\">\r\n<iframe title=\"x\" SRC=\"https://player.vimeo.com/video/9/\" allow=\"autoplay\"></iframe>\r\n</Div>",
			id:   "9",
		},
	}

	c := NewVimeoConverter(720, 405)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, matches := c.Convert(tt.in)
			require.Len(t, matches, 1)
			assert.Equal(t, tt.id, matches[0].VideoID)
			assert.Equal(t, c.CreateSimpleIframe(tt.id), out)
		})
	}
}

func TestVimeoConvertLeavesOtherTextAlone(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"plain markdown", "# Heading\n\nSome text about vimeo.com and videos.\n"},
		{"bare link", "Watch it at https://vimeo.com/video/123456 today.\n"},
		{"missing closing div", `<div style="padding:56.25% 0 0 0;position:relative;"><iframe src="https://player.vimeo.com/video/5"></iframe>`},
		{"truncated", `<div style="padding:56.25% 0 0 0;position:relative;"><iframe src="https://player.vimeo.com/vid`},
		{"youtube in wrapper", `<div style="padding:56.25% 0 0 0;position:relative;"><iframe src="https://www.youtube.com/embed/dQw4w9WgXcQ"></iframe></div>`},
		{"already simple", NewVimeoConverter(720, 405).CreateSimpleIframe("123")},
		{"empty", ""},
	}

	c := NewVimeoConverter(720, 405)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, matches := c.Convert(tt.in)
			assert.Empty(t, matches)
			assert.Equal(t, tt.in, out)
		})
	}
}

func TestVimeoCustomDimensions(t *testing.T) {
	c := NewVimeoConverter(640, 360)
	out, matches := c.Convert(vimeoSecondary)
	require.Len(t, matches, 1)

	attrs := iframeAttrs(t, out)
	assert.Equal(t, "640", attrs["width"])
	assert.Equal(t, "360", attrs["height"])
}

func TestVimeoExtractVideoID(t *testing.T) {
	c := NewVimeoConverter(720, 405)
	tests := []struct {
		name    string
		snippet string
		want    string
	}{
		{"primary wrapper", vimeoPrimary, "123456789"},
		{"secondary wrapper", vimeoSecondary, "11111111"},
		{"bare iframe", `<iframe src="https://player.vimeo.com/video/314159"></iframe>`, "314159"},
		{"plain url", "https://vimeo.com/video/2718", "2718"},
		{"no video", "<p>nothing here</p>", ""},
		{"channel url", "https://vimeo.com/channels/staffpicks", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.ExtractVideoID(tt.snippet))
		})
	}
}

func TestVimeoCreateSimpleIframe(t *testing.T) {
	c := NewVimeoConverter(720, 405)
	want := `<iframe
  src="https://player.vimeo.com/video/76979871"
  width="720"
  height="405"
  frameborder="0"
  allow="autoplay; fullscreen; picture-in-picture"
  allowfullscreen>
</iframe>`
	assert.Equal(t, want, c.CreateSimpleIframe("76979871"))
}
