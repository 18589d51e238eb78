// File: pkg/combine/tree.go
package combine

import (
	"fmt"
	"sort"
	"strings"
)

type treeNode struct {
	name     string
	children map[string]*treeNode
}

func (n *treeNode) isDir() bool {
	return n.children != nil
}

// RenderTree renders slash-separated relative paths as a tree under a root
// label. Directories sort before files, then alphabetically ignoring case.
func RenderTree(root string, paths []string) string {
	top := &treeNode{name: root, children: map[string]*treeNode{}}
	for _, p := range paths {
		node := top
		parts := strings.Split(p, "/")
		for i, part := range parts {
			child, ok := node.children[part]
			if !ok {
				child = &treeNode{name: part}
				node.children[part] = child
			}
			if i < len(parts)-1 && child.children == nil {
				child.children = map[string]*treeNode{}
			}
			node = child
		}
	}

	var treeBuilder strings.Builder
	treeBuilder.WriteString(fmt.Sprintf("%s/\n", root))
	renderTreeRecursively(&treeBuilder, top, "")
	return treeBuilder.String()
}

func renderTreeRecursively(b *strings.Builder, dir *treeNode, prefix string) {
	entries := make([]*treeNode, 0, len(dir.children))
	for _, child := range dir.children {
		entries = append(entries, child)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].isDir() != entries[j].isDir() {
			return entries[i].isDir()
		}
		li, lj := strings.ToLower(entries[i].name), strings.ToLower(entries[j].name)
		if li != lj {
			return li < lj
		}
		return entries[i].name < entries[j].name
	})

	for i, entry := range entries {
		connector := "├── "
		extension := "│   "
		if i == len(entries)-1 {
			connector = "└── "
			extension = "    "
		}

		if entry.isDir() {
			b.WriteString(fmt.Sprintf("%s%s%s/\n", prefix, connector, entry.name))
			renderTreeRecursively(b, entry, prefix+extension)
			continue
		}
		b.WriteString(fmt.Sprintf("%s%s%s\n", prefix, connector, entry.name))
	}
}
