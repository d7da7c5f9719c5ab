package estree

import (
	"github.com/goccy/go-json"

	"github.com/chazu/astbin/ast"
)

// ---------------------------------------------------------------------------
// JSX
// ---------------------------------------------------------------------------

func (p *parser) jsxElement(o object) *ast.JSXElement {
	el := &ast.JSXElement{SpanVal: o.span(), Children: p.jsxChildren(o.list("children"))}
	if op := p.object(o["openingElement"]); op != nil {
		opening := &ast.JSXOpeningElement{
			SpanVal:     op.span(),
			Name:        p.jsxName(p.object(op["name"])),
			SelfClosing: op.bool("selfClosing"),
			TypeArgs:    p.typeArgs(op.first("typeArguments", "typeParameters")),
		}
		for _, raw := range op.list("attributes") {
			if a := p.jsxAttr(p.object(raw)); a != nil {
				opening.Attrs = append(opening.Attrs, a)
			}
		}
		el.Opening = opening
	}
	if cl := p.object(o["closingElement"]); cl != nil {
		el.Closing = &ast.JSXClosingElement{SpanVal: cl.span(), Name: p.jsxName(p.object(cl["name"]))}
	}
	return el
}

func (p *parser) jsxFragment(o object) *ast.JSXFragment {
	return &ast.JSXFragment{SpanVal: o.span(), Children: p.jsxChildren(o.list("children"))}
}

func (p *parser) jsxChildren(raws []json.RawMessage) []ast.JSXChild {
	out := make([]ast.JSXChild, 0, len(raws))
	for _, raw := range raws {
		o := p.object(raw)
		if o == nil {
			continue
		}
		span := o.span()
		switch o.typ() {
		case "JSXText":
			var value string
			_ = json.Unmarshal(o["value"], &value)
			out = append(out, &ast.JSXText{SpanVal: span, Value: value, Raw: o.str("raw")})
		case "JSXExpressionContainer":
			out = append(out, p.jsxExprContainer(o))
		case "JSXSpreadChild":
			out = append(out, &ast.JSXSpreadChild{SpanVal: span, Expr: p.expr(o["expression"])})
		case "JSXElement":
			out = append(out, p.jsxElement(o))
		case "JSXFragment":
			out = append(out, p.jsxFragment(o))
		default:
			out = append(out, &ast.Invalid{SpanVal: span})
		}
	}
	return out
}

func (p *parser) jsxExprContainer(o object) *ast.JSXExprContainer {
	c := &ast.JSXExprContainer{SpanVal: o.span()}
	if x := p.object(o["expression"]); x.typ() == "JSXEmptyExpression" {
		c.Expr = &ast.JSXEmptyExpr{SpanVal: x.span()}
	} else {
		c.Expr = p.exprObj(x)
	}
	return c
}

func (p *parser) jsxAttr(o object) ast.Node {
	if o == nil {
		return nil
	}
	span := o.span()
	if o.typ() == "JSXSpreadAttribute" {
		return &ast.JSXSpreadAttr{SpanVal: span, Expr: p.expr(o["argument"])}
	}

	a := &ast.JSXAttr{SpanVal: span, Name: p.jsxName(p.object(o["name"]))}
	v := p.object(o["value"])
	switch v.typ() {
	case "":
	case "JSXExpressionContainer":
		a.Value = p.jsxExprContainer(v)
	case "JSXElement":
		a.Value = p.jsxElement(v)
	case "JSXFragment":
		a.Value = p.jsxFragment(v)
	default:
		if s, ok := p.exprObj(v).(*ast.Str); ok {
			a.Value = s
		} else {
			a.Value = &ast.Invalid{SpanVal: v.span()}
		}
	}
	return a
}

func (p *parser) jsxName(o object) ast.JSXName {
	span := o.span()
	switch o.typ() {
	case "JSXIdentifier":
		return &ast.Ident{SpanVal: span, Name: o.str("name")}
	case "JSXMemberExpression":
		return &ast.JSXMemberExpr{
			SpanVal: span,
			Obj:     p.jsxName(p.object(o["object"])),
			Prop:    p.jsxIdent(p.object(o["property"])),
		}
	case "JSXNamespacedName":
		return &ast.JSXNamespacedName{
			SpanVal: span,
			NS:      p.jsxIdent(p.object(o["namespace"])),
			Name:    p.jsxIdent(p.object(o["name"])),
		}
	}
	return nil
}

func (p *parser) jsxIdent(o object) *ast.Ident {
	if o == nil {
		return nil
	}
	return &ast.Ident{SpanVal: o.span(), Name: o.str("name")}
}
