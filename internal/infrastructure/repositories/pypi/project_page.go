package pypi

import (
	"strings"

	"golang.org/x/net/html"
)

const (
	projectLinksTitle = "Project links"
	sectionTitleClass = "sidebar-section__title"
	sectionClass      = "sidebar-section"
	linkListClass     = "vertical-tabs__list"
	releaseClass      = "release__version"
)

// projectLinks returns the hrefs of the "Project links" sidebar section in page order.
// The boolean is false when the page has no such section.
func projectLinks(doc *html.Node) ([]string, bool) {
	title := findFirst(doc, func(n *html.Node) bool {
		return isElement(n, "h3") && hasClass(n, sectionTitleClass) &&
			strings.TrimSpace(textContent(n)) == projectLinksTitle
	})
	if title == nil {
		return nil, false
	}

	section := title.Parent
	for section != nil && !(isElement(section, "div") && hasClass(section, sectionClass)) {
		section = section.Parent
	}
	if section == nil {
		return nil, false
	}

	list := findFirst(section, func(n *html.Node) bool {
		return isElement(n, "ul") && hasClass(n, linkListClass)
	})
	if list == nil {
		return nil, true
	}

	var hrefs []string
	walk(list, func(n *html.Node) {
		if isElement(n, "a") {
			if href := getAttr(n, "href"); href != "" {
				hrefs = append(hrefs, href)
			}
		}
	})
	return hrefs, true
}

// releaseVersions returns up to limit versions listed in the release history, newest first.
func releaseVersions(doc *html.Node, limit int) []string {
	var versions []string
	walk(doc, func(n *html.Node) {
		if len(versions) >= limit || !isElement(n, "p") || !hasClass(n, releaseClass) {
			return
		}
		// badges such as "yanked" follow the version
		if fields := strings.Fields(textContent(n)); len(fields) > 0 {
			versions = append(versions, fields[0])
		}
	})
	return versions
}

func walk(n *html.Node, visit func(*html.Node)) {
	visit(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

func findFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, match); found != nil {
			return found
		}
	}
	return nil
}

func isElement(n *html.Node, tag string) bool {
	return n.Type == html.ElementNode && n.Data == tag
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(getAttr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	})
	return sb.String()
}
