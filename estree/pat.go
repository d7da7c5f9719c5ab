package estree

import (
	"github.com/goccy/go-json"

	"github.com/chazu/astbin/ast"
)

// ---------------------------------------------------------------------------
// Patterns
// ---------------------------------------------------------------------------

func (p *parser) pat(raw json.RawMessage) ast.Pat {
	return p.patObj(p.object(raw))
}

func (p *parser) pats(raws []json.RawMessage) []ast.Pat {
	out := make([]ast.Pat, 0, len(raws))
	for _, raw := range raws {
		out = append(out, p.pat(raw))
	}
	return out
}

// patObj converts a binding or assignment target. Expressions that are
// valid targets, such as a.b in `a.b = 1`, become ExprPat.
func (p *parser) patObj(o object) ast.Pat {
	if o == nil {
		return nil
	}
	span := o.span()
	switch o.typ() {
	case "Identifier":
		return p.identObj(o)

	case "ArrayPattern":
		a := &ast.ArrayPat{SpanVal: span, Optional: o.bool("optional"), TypeAnn: p.typeAnn(o["typeAnnotation"])}
		for _, raw := range o.list("elements") {
			a.Elems = append(a.Elems, p.pat(raw))
		}
		return a

	case "ObjectPattern":
		a := &ast.ObjectPat{SpanVal: span, Optional: o.bool("optional"), TypeAnn: p.typeAnn(o["typeAnnotation"])}
		for _, raw := range o.list("properties") {
			if prop := p.objectPatProp(p.object(raw)); prop != nil {
				a.Props = append(a.Props, prop)
			}
		}
		return a

	case "AssignmentPattern":
		return &ast.AssignPat{SpanVal: span, Left: p.pat(o["left"]), Right: p.expr(o["right"])}

	case "RestElement":
		return p.rest(o)

	case "TSParameterProperty":
		return &ast.TsParamProp{
			SpanVal:       span,
			Param:         p.pat(o["parameter"]),
			Accessibility: o.str("accessibility"),
			Readonly:      o.bool("readonly"),
		}
	}

	switch x := p.exprObj(o).(type) {
	case nil:
		return nil
	case *ast.Invalid:
		return x
	default:
		return &ast.ExprPat{SpanVal: span, Expr: x}
	}
}

func (p *parser) rest(o object) *ast.RestPat {
	return &ast.RestPat{
		SpanVal: o.span(),
		Dot3:    dot3(o.span()),
		Arg:     p.pat(o["argument"]),
		TypeAnn: p.typeAnn(o["typeAnnotation"]),
	}
}

func (p *parser) objectPatProp(o object) ast.ObjectPatProp {
	if o == nil {
		return nil
	}
	span := o.span()
	switch o.typ() {
	case "RestElement":
		return p.rest(o)
	case "Property":
	default:
		return &ast.Invalid{SpanVal: span}
	}

	if o.bool("shorthand") && !o.bool("computed") {
		// `{ a }` and `{ a = 1 }`
		key := p.ident(o["key"])
		if key == nil {
			p.malformed(o, "shorthand pattern property without key")
			return nil
		}
		a := &ast.AssignPatProp{SpanVal: span, Key: key}
		if v := p.object(o["value"]); v.typ() == "AssignmentPattern" {
			a.Value = p.expr(v["right"])
		}
		return a
	}
	return &ast.KeyValuePatProp{
		SpanVal: span,
		Key:     p.propName(o["key"], o.bool("computed")),
		Value:   p.pat(o["value"]),
	}
}
