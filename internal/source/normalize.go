package source

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// FormatSalary renders a provider salary range with the market currency
// symbol and thousands grouping. Open-ended ranges get the От/До prefixes
// the rest of the catalog uses. Returns "" when the provider sent nothing.
func FormatSalary(min, max float64, currency string) string {
	switch {
	case min > 0 && max > 0 && min == max:
		return currency + groupThousands(min)
	case min > 0 && max > 0:
		return fmt.Sprintf("%s%s - %s%s", currency, groupThousands(min), currency, groupThousands(max))
	case min > 0:
		return "От " + currency + groupThousands(min)
	case max > 0:
		return "До " + currency + groupThousands(max)
	default:
		return ""
	}
}

func groupThousands(v float64) string {
	s := strconv.FormatFloat(v, 'f', 0, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// StripHTML flattens provider HTML snippets to plain text with collapsed
// whitespace. Text nodes are joined with a space so adjacent elements do not
// run together. Inputs without markup pass through cleaned the same way.
func StripHTML(s string) string {
	if !strings.ContainsAny(s, "<>") {
		return collapseSpace(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return collapseSpace(s)
	}
	var b strings.Builder
	for _, n := range doc.Nodes {
		appendText(&b, n)
	}
	return collapseSpace(b.String())
}

func appendText(b *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		b.WriteByte(' ')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		appendText(b, c)
	}
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate cuts a description at max runes, appending an ellipsis.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}
