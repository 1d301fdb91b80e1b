package catalog

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// Parse reads storefront markup and returns one Card per product card in
// document order. Elements carrying class "product-card" are products; the
// name is the first <h3> text, the price fragment the first element with
// class "new", and the image ref the first <img> src. Cards missing pieces
// still come back — Extract decides whether they are usable.
func Parse(r io.Reader) ([]Card, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog markup: %w", err)
	}

	var cards []Card
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, "product-card") {
			cards = append(cards, cardFromNode(n))
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	return cards, nil
}

func cardFromNode(n *html.Node) Card {
	card := Card{
		Name:      textOf(findElement(n, func(c *html.Node) bool { return c.Data == "h3" })),
		PriceText: textOf(findElement(n, func(c *html.Node) bool { return hasClass(c, "new") })),
	}
	if img := findElement(n, func(c *html.Node) bool { return c.Data == "img" }); img != nil {
		card.ImageRef = attr(img, "src")
	}
	// Sort metadata; absent or junk attributes read as zero.
	card.ListPrice, _ = strconv.ParseInt(attr(n, "data-price"), 10, 64)
	card.Popularity, _ = strconv.Atoi(attr(n, "data-popularity"))
	return card
}

// findElement returns the first element under n (depth-first) matching the
// predicate, or nil.
func findElement(n *html.Node, match func(*html.Node) bool) *html.Node {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode {
			if match(child) {
				return child
			}
			if found := findElement(child, match); found != nil {
				return found
			}
		}
	}
	return nil
}

// textOf collects the concatenated text content of n, trimmed.
func textOf(n *html.Node) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
		for child := c.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}
