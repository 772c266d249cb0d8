/*
Package html extracts the textual content of HTML as ustr.Strings.
*/
package html

import (
	"bytes"
	"io"

	"github.com/npillmayer/ustr"
	"golang.org/x/net/html"
)

// InnerText creates a string for the textual content of an HTML element and all
// its descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that html.InnerText cannot respect CSS styling suppressing
// the visibility of the node's descendents).
func InnerText(n *html.Node) (*ustr.String, error) {
	if n == nil {
		return nil, ustr.ErrIllegalArguments
	}
	var b bytes.Buffer
	collectText(n, &b)
	return ustr.FromBytes(b.Bytes()), nil
}

func collectText(n *html.Node, b *bytes.Buffer) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

// TextFromHTML creates a ustr.String from the textual content of an HTML fragment.
// It does no interpretation of layout and styling, but extracts the pure text.
func TextFromHTML(input io.Reader) (*ustr.String, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	var b bytes.Buffer
	for _, n := range nodes {
		collectText(n, &b)
	}
	return ustr.FromBytes(b.Bytes()), nil
}
