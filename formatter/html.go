package formatter

/*
BSD 3-Clause License

Copyright (c) 2024, Norbert Pillmayer

Please refer to the License file in the repository root.
*/

import (
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/mset"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTMLTable renders items as an HTML table with a header row and one row per
// item, in the order given:
//
//	<table><tr><th>element</th><th>count</th></tr><tr><td>3</td><td>4</td></tr>…</table>
func HTMLTable(items []mset.Item, w io.Writer) error {
	if w == nil {
		return mset.ErrIllegalArguments
	}
	table := element(atom.Table)
	table.AppendChild(row(atom.Th, "element", "count"))
	for _, it := range items {
		table.AppendChild(row(atom.Td, strconv.Itoa(it.Elem), strconv.Itoa(it.Count)))
	}
	tracer().Debugf("formatter: rendering HTML table with %d rows", len(items))
	return html.Render(w, table)
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

func row(cell atom.Atom, texts ...string) *html.Node {
	tr := element(atom.Tr)
	for _, text := range texts {
		c := element(cell)
		c.AppendChild(&html.Node{Type: html.TextNode, Data: text})
		tr.AppendChild(c)
	}
	return tr
}

// ItemsFromHTML reads items back from an HTML fragment containing a table as
// written by HTMLTable. Rows without data cells (i.e., header rows) are
// skipped. Every data row must consist of two cells holding integers.
func ItemsFromHTML(input io.Reader) ([]mset.Item, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	var items []mset.Item
	for _, n := range nodes {
		if err = collectRows(n, &items); err != nil {
			return items, err
		}
	}
	return items, nil
}

func collectRows(n *html.Node, items *[]mset.Item) error {
	if n.Type == html.ElementNode && n.DataAtom == atom.Tr {
		var cells []string
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.DataAtom == atom.Td {
				cells = append(cells, strings.TrimSpace(innerText(c)))
			}
		}
		if len(cells) == 0 {
			return nil
		}
		if len(cells) != 2 {
			return mset.ErrIllegalArguments
		}
		elem, err := strconv.Atoi(cells[0])
		if err != nil {
			return err
		}
		count, err := strconv.Atoi(cells[1])
		if err != nil {
			return err
		}
		*items = append(*items, mset.Item{Elem: elem, Count: count})
		return nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := collectRows(c, items); err != nil {
			return err
		}
	}
	return nil
}

func innerText(n *html.Node) string {
	var sb strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return sb.String()
}
