package dom_test

import (
	"testing"

	"github.com/htmlshape/htmlshape/internal/dom"
	"github.com/stretchr/testify/assert"
)

func TestSerialize_VoidElementsSelfClose(t *testing.T) {
	doc := dom.Parse(`<div><img src="a.png"><br><hr></div>`)
	out := dom.Serialize(doc)
	assert.Contains(t, out, `<img src="a.png"/>`)
	assert.Contains(t, out, "<br/>")
	assert.Contains(t, out, "<hr/>")
}

func TestSerialize_EscapesText(t *testing.T) {
	doc := dom.Parse(`<p>a &amp; b &lt; c</p>`)
	out := dom.Serialize(doc)
	assert.Contains(t, out, "a &amp; b &lt; c")
}

func TestSerialize_EscapesAttributeValues(t *testing.T) {
	doc := dom.Parse(`<a title="quote &quot;here&quot;">x</a>`)
	out := dom.Serialize(doc)
	assert.Contains(t, out, `title="quote &quot;here&quot;"`)
}

func TestSerialize_PreservesAttributeOrder(t *testing.T) {
	doc := dom.Parse(`<img title="t" src="s" alt="a">`)
	out := dom.Serialize(doc)
	ti := indexOfSub(out, "title=")
	si := indexOfSub(out, "src=")
	ai := indexOfSub(out, "alt=")
	assert.True(t, ti < si)
	assert.True(t, si < ai)
}

func TestSerialize_NonVoidElementsHaveClosingTag(t *testing.T) {
	doc := dom.Parse(`<div><p>x</p></div>`)
	out := dom.Serialize(doc)
	assert.Contains(t, out, "<p>x</p>")
}

func indexOfSub(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}
