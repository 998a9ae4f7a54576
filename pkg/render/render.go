// Package render implements the AST renderer: a deterministic
// columnar textual dump of a parsed tree, one line per node, with
// named payload fields and sibling references rendered as
// "@<ordinal>".
package render

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/orneryd/ocypher/pkg/ast"
	"github.com/orneryd/ocypher/pkg/perrors"
)

// Options configures one render call.
type Options struct {
	Colors ColorScheme
	// Width bounds the rendered detail column; 0 disables truncation.
	Width int
}

// ColorScheme is a render-local alias of perrors.ColorScheme so callers
// don't need to import pkg/perrors just to build a render.Options.
type ColorScheme = perrors.ColorScheme

var nodePtrType = reflect.TypeOf((*ast.Node)(nil))
var nodeSliceType = reflect.TypeOf([]*ast.Node(nil))
var operatorType = reflect.TypeOf(ast.Operator(0))

// Fprint writes the Tree rendering of nodes to w.
func Fprint(w io.Writer, nodes []*ast.Node, opts Options) error {
	_, err := io.WriteString(w, Tree(nodes, opts))
	return err
}

// Tree renders every top-level node (and its descendants) in ordinal
// order, depth-first, one line per node.
func Tree(nodes []*ast.Node, opts Options) string {
	var b strings.Builder
	ordW, rangeW, typeW := measure(nodes)
	for _, n := range nodes {
		writeNode(&b, n, 0, ordW, rangeW, typeW, opts)
	}
	return b.String()
}

func measure(nodes []*ast.Node) (ordW, rangeW, typeW int) {
	var walk func(n *ast.Node)
	walk = func(n *ast.Node) {
		if n == nil {
			return
		}
		if w := len(strconv.FormatUint(uint64(n.Ordinal()), 10)); w > ordW {
			ordW = w
		}
		if w := len(n.Range().String()); w > rangeW {
			rangeW = w
		}
		if w := len(n.Kind().Name()); w > typeW {
			typeW = w
		}
		for _, c := range n.Children() {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	return
}

func writeNode(b *strings.Builder, n *ast.Node, depth, ordW, rangeW, typeW int, opts Options) {
	if n == nil {
		return
	}
	colors := opts.Colors

	ord := fmt.Sprintf("@%d", n.Ordinal())
	ord = pad(ord, ordW+1)
	rng := pad(n.Range().String(), rangeW)
	indent := strings.Repeat("> ", depth+1)
	kind := pad(n.Kind().Name(), typeW)
	detail := detailOf(n)
	if opts.Width > 0 && len(detail) > opts.Width {
		detail = detail[:opts.Width]
	}

	b.WriteString(colors.Wrap(perrors.RoleASTOrdinal, ord))
	b.WriteString("  ")
	b.WriteString(colors.Wrap(perrors.RoleASTRange, rng))
	b.WriteString("  ")
	b.WriteString(colors.Wrap(perrors.RoleASTIndent, indent))
	b.WriteString(colors.Wrap(perrors.RoleASTType, kind))
	b.WriteString("  ")
	b.WriteString(colors.Wrap(perrors.RoleASTDesc, detail))
	b.WriteString("\n")

	for _, c := range n.Children() {
		writeNode(b, c, depth+1, ordW, rangeW, typeW, opts)
	}
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// detailOf computes the kind-specific detail column: leaves render
// their text (quoted by kind); everything else reflects over its
// payload struct, rendering *Node fields as sibling ordinal
// references, []*Node fields as a bracketed ref list, Operator fields
// by their symbol, and scalar fields by name when true/non-zero.
func detailOf(n *ast.Node) string {
	payload := n.Payload()
	if payload == nil {
		return ""
	}
	if leaf, ok := payload.(ast.LeafPayload); ok {
		return quoteLeaf(n.Kind(), leaf.Text)
	}

	v := reflect.ValueOf(payload)
	t := v.Type()
	var parts []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		fv := v.Field(i)
		switch {
		case f.Type == nodePtrType:
			if fv.IsNil() {
				continue
			}
			parts = append(parts, fmt.Sprintf("%s=@%d", f.Name, fv.Interface().(*ast.Node).Ordinal()))
		case f.Type == nodeSliceType:
			nodes := fv.Interface().([]*ast.Node)
			if len(nodes) == 0 {
				continue
			}
			refs := make([]string, len(nodes))
			for j, c := range nodes {
				refs[j] = fmt.Sprintf("@%d", c.Ordinal())
			}
			parts = append(parts, fmt.Sprintf("%s=[%s]", f.Name, strings.Join(refs, ", ")))
		case f.Type == operatorType:
			parts = append(parts, fv.Interface().(ast.Operator).String())
		case f.Type == reflect.TypeOf([]ast.Operator(nil)):
			ops := fv.Interface().([]ast.Operator)
			syms := make([]string, len(ops))
			for j, op := range ops {
				syms[j] = op.String()
			}
			parts = append(parts, strings.Join(syms, " "))
		case f.Type.Kind() == reflect.Bool:
			if fv.Bool() {
				parts = append(parts, f.Name)
			}
		case f.Type.Kind() == reflect.Slice && f.Type.Elem().Kind() == reflect.Bool:
			bs := fv.Interface().([]bool)
			strs := make([]string, len(bs))
			for j, x := range bs {
				strs[j] = strconv.FormatBool(x)
			}
			parts = append(parts, fmt.Sprintf("%s=[%s]", f.Name, strings.Join(strs, ", ")))
		case f.Type.Kind() == reflect.String:
			s := fv.String()
			if s != "" {
				parts = append(parts, fmt.Sprintf("%s=%q", f.Name, s))
			}
		}
	}
	return strings.Join(parts, ", ")
}

func quoteLeaf(k ast.Kind, text string) string {
	switch k {
	case ast.KindString:
		return strconv.Quote(text)
	case ast.KindInteger, ast.KindFloat, ast.KindError, ast.KindLineComment, ast.KindBlockComment:
		return text
	default:
		return "`" + text + "`"
	}
}
