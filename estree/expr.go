package estree

import (
	"github.com/goccy/go-json"

	"github.com/chazu/astbin/ast"
)

// ---------------------------------------------------------------------------
// Expressions
// ---------------------------------------------------------------------------

func (p *parser) expr(raw json.RawMessage) ast.Expr {
	return p.exprObj(p.object(raw))
}

func (p *parser) exprs(raws []json.RawMessage) []ast.Expr {
	out := make([]ast.Expr, 0, len(raws))
	for _, raw := range raws {
		out = append(out, p.expr(raw))
	}
	return out
}

func (p *parser) exprObj(o object) ast.Expr {
	if o == nil {
		return nil
	}
	span := o.span()
	switch o.typ() {
	case "Identifier":
		return p.identObj(o)

	case "PrivateIdentifier":
		return &ast.PrivateName{SpanVal: span, Name: o.str("name")}

	case "ThisExpression":
		return &ast.ThisExpr{SpanVal: span}

	case "Super":
		return &ast.Super{SpanVal: span}

	case "Literal":
		return p.literal(o)

	case "ArrayExpression":
		return &ast.ArrayLit{SpanVal: span, Elems: p.elements(o.list("elements"))}

	case "ObjectExpression":
		a := &ast.ObjectLit{SpanVal: span}
		for _, raw := range o.list("properties") {
			a.Props = append(a.Props, p.prop(raw))
		}
		return a

	case "FunctionExpression":
		return &ast.FnExpr{SpanVal: span, Ident: p.ident(o["id"]), Function: p.function(o)}

	case "ArrowFunctionExpression":
		fn := p.function(o)
		a := &ast.ArrowExpr{
			SpanVal:     span,
			Params:      fn.Params,
			IsAsync:     fn.IsAsync,
			IsGenerator: fn.IsGenerator,
			TypeParams:  fn.TypeParams,
			ReturnType:  fn.ReturnType,
		}
		if body := p.object(o["body"]); body != nil {
			if body.typ() == "BlockStatement" {
				a.Body = &ast.BlockStmt{SpanVal: body.span(), Stmts: p.stmts(body.list("body"))}
			} else if x := p.exprObj(body); x != nil {
				a.Body = x
			}
		}
		return a

	case "UnaryExpression":
		return &ast.UnaryExpr{SpanVal: span, Op: o.str("operator"), Arg: p.expr(o["argument"])}

	case "UpdateExpression":
		return &ast.UpdateExpr{SpanVal: span, Op: o.str("operator"), Prefix: o.bool("prefix"), Arg: p.expr(o["argument"])}

	case "BinaryExpression", "LogicalExpression":
		return &ast.BinExpr{SpanVal: span, Op: o.str("operator"), Left: p.expr(o["left"]), Right: p.expr(o["right"])}

	case "AssignmentExpression":
		return &ast.AssignExpr{SpanVal: span, Op: o.str("operator"), Left: p.pat(o["left"]), Right: p.expr(o["right"])}

	case "MemberExpression":
		return p.member(o, false)

	case "ConditionalExpression":
		return &ast.CondExpr{
			SpanVal: span,
			Test:    p.expr(o["test"]),
			Cons:    p.expr(o["consequent"]),
			Alt:     p.expr(o["alternate"]),
		}

	case "CallExpression":
		return p.call(o, false)

	case "NewExpression":
		return &ast.NewExpr{
			SpanVal:  span,
			Callee:   p.expr(o["callee"]),
			Args:     p.elements(o.list("arguments")),
			TypeArgs: p.typeArgs(o.first("typeArguments", "typeParameters")),
		}

	case "SequenceExpression":
		return &ast.SeqExpr{SpanVal: span, Exprs: p.exprs(o.list("expressions"))}

	case "ParenthesizedExpression":
		return &ast.ParenExpr{SpanVal: span, Expr: p.expr(o["expression"])}

	case "TemplateLiteral":
		return p.tpl(o)

	case "TaggedTemplateExpression":
		t := &ast.TaggedTpl{
			SpanVal:  span,
			Tag:      p.expr(o["tag"]),
			TypeArgs: p.typeArgs(o.first("typeArguments", "typeParameters")),
		}
		if q := p.object(o["quasi"]); q != nil {
			t.Tpl = p.tpl(q)
		}
		return t

	case "ClassExpression":
		return &ast.ClassExpr{SpanVal: span, Ident: p.ident(o["id"]), Class: p.class(o)}

	case "YieldExpression":
		return &ast.YieldExpr{SpanVal: span, Arg: p.expr(o["argument"]), Delegate: o.bool("delegate")}

	case "AwaitExpression":
		return &ast.AwaitExpr{SpanVal: span, Arg: p.expr(o["argument"])}

	case "MetaProperty":
		meta, prop := p.object(o["meta"]), p.object(o["property"])
		return &ast.MetaPropExpr{SpanVal: span, Kind: meta.str("name") + "." + prop.str("name")}

	case "ImportExpression":
		// import(source, options) is a call with an `import` callee.
		args := []*ast.ExprOrSpread{{Expr: p.expr(o["source"])}}
		if opts := p.expr(o.first("options", "attributes")); opts != nil {
			args = append(args, &ast.ExprOrSpread{Expr: opts})
		}
		return &ast.CallExpr{
			SpanVal: span,
			Callee:  &ast.Import{SpanVal: ast.Span{Start: span.Start, End: span.Start + 6}},
			Args:    args,
		}

	case "ChainExpression":
		return p.chain(p.object(o["expression"]))

	case "TSAsExpression":
		if isConstRef(p.object(o["typeAnnotation"])) {
			return &ast.TsConstAssertion{SpanVal: span, Expr: p.expr(o["expression"])}
		}
		return &ast.TsAsExpr{SpanVal: span, Expr: p.expr(o["expression"]), TypeAnn: p.tsType(o["typeAnnotation"])}

	case "TSSatisfiesExpression":
		return &ast.TsSatisfiesExpr{SpanVal: span, Expr: p.expr(o["expression"]), TypeAnn: p.tsType(o["typeAnnotation"])}

	case "TSTypeAssertion":
		if isConstRef(p.object(o["typeAnnotation"])) {
			return &ast.TsConstAssertion{SpanVal: span, Expr: p.expr(o["expression"])}
		}
		return &ast.TsTypeAssertion{SpanVal: span, Expr: p.expr(o["expression"]), TypeAnn: p.tsType(o["typeAnnotation"])}

	case "TSNonNullExpression":
		return &ast.TsNonNullExpr{SpanVal: span, Expr: p.expr(o["expression"])}

	case "TSInstantiationExpression":
		return &ast.TsInstantiation{
			SpanVal:  span,
			Expr:     p.expr(o["expression"]),
			TypeArgs: p.typeArgs(o.first("typeArguments", "typeParameters")),
		}

	case "JSXElement":
		return p.jsxElement(o)

	case "JSXFragment":
		return p.jsxFragment(o)
	}
	return &ast.Invalid{SpanVal: span}
}

// isConstRef reports whether a type node is the `const` in `x as const`.
func isConstRef(o object) bool {
	if o.typ() != "TSTypeReference" {
		return false
	}
	var name object
	if json.Unmarshal(o["typeName"], &name) != nil {
		return false
	}
	return name.typ() == "Identifier" && name.str("name") == "const"
}

func (p *parser) ident(raw json.RawMessage) *ast.Ident {
	return p.identObj(p.object(raw))
}

func (p *parser) identObj(o object) *ast.Ident {
	if o == nil {
		return nil
	}
	return &ast.Ident{
		SpanVal:  o.span(),
		Name:     o.str("name"),
		Optional: o.bool("optional"),
		TypeAnn:  p.typeAnn(o["typeAnnotation"]),
	}
}

// literal converts a Literal node. ESTree stores every literal kind in one
// node type, told apart by the regex and bigint fields and the JSON type
// of value.
func (p *parser) literal(o object) ast.Expr {
	span := o.span()
	if rx := p.object(o["regex"]); rx != nil {
		return &ast.Regex{SpanVal: span, Pattern: rx.str("pattern"), Flags: rx.str("flags")}
	}
	if b := o.str("bigint"); b != "" {
		return &ast.BigInt{SpanVal: span, Raw: b}
	}
	raw := o.str("raw")
	v := o["value"]
	switch {
	case isNull(v):
		if raw == "null" {
			return &ast.Null{SpanVal: span}
		}
		return &ast.Invalid{SpanVal: span}
	case v[0] == '"':
		var s string
		_ = json.Unmarshal(v, &s)
		return &ast.Str{SpanVal: span, Value: s, Raw: raw}
	case string(v) == "true" || string(v) == "false":
		return &ast.Bool{SpanVal: span, Value: string(v) == "true"}
	}
	var f float64
	if err := json.Unmarshal(v, &f); err != nil {
		p.malformed(o, "literal value %s", v)
		return nil
	}
	return &ast.Num{SpanVal: span, Value: f, Raw: raw}
}

// strLit converts a string Literal, returning nil for anything else.
func (p *parser) strLit(raw json.RawMessage) *ast.Str {
	o := p.object(raw)
	if o == nil {
		return nil
	}
	if o.typ() == "TSLiteralType" {
		o = p.object(o["literal"])
	}
	s, _ := p.exprObj(o).(*ast.Str)
	return s
}

// elements converts array elements or call arguments. A null element is a
// hole and stays nil.
func (p *parser) elements(raws []json.RawMessage) []*ast.ExprOrSpread {
	out := make([]*ast.ExprOrSpread, 0, len(raws))
	for _, raw := range raws {
		o := p.object(raw)
		switch {
		case o == nil:
			out = append(out, nil)
		case o.typ() == "SpreadElement":
			sp := dot3(o.span())
			out = append(out, &ast.ExprOrSpread{Spread: &sp, Expr: p.expr(o["argument"])})
		default:
			out = append(out, &ast.ExprOrSpread{Expr: p.exprObj(o)})
		}
	}
	return out
}

func (p *parser) member(o object, inChain bool) ast.Expr {
	span := o.span()
	computed := o.bool("computed")
	prop := p.expr(o["property"])
	obj := p.object(o["object"])
	if obj.typ() == "Super" {
		return &ast.SuperPropExpr{SpanVal: span, Obj: &ast.Super{SpanVal: obj.span()}, Prop: prop, Computed: computed}
	}
	m := &ast.MemberExpr{SpanVal: span, Prop: prop, Computed: computed}
	if inChain {
		m.Obj = p.chain(obj)
		if o.bool("optional") {
			return &ast.OptChainExpr{SpanVal: span, Optional: true, Base: m}
		}
		return m
	}
	m.Obj = p.exprObj(obj)
	return m
}

func (p *parser) call(o object, inChain bool) ast.Expr {
	span := o.span()
	args := p.elements(o.list("arguments"))
	typeArgs := p.typeArgs(o.first("typeArguments", "typeParameters"))
	if !inChain {
		return &ast.CallExpr{SpanVal: span, Callee: p.expr(o["callee"]), Args: args, TypeArgs: typeArgs}
	}
	callee := p.chain(p.object(o["callee"]))
	if o.bool("optional") {
		return &ast.OptChainExpr{SpanVal: span, Optional: true, Base: &ast.OptCall{
			SpanVal:  span,
			Callee:   callee,
			Args:     args,
			TypeArgs: typeArgs,
		}}
	}
	return &ast.CallExpr{SpanVal: span, Callee: callee, Args: args, TypeArgs: typeArgs}
}

// chain converts the inside of a ChainExpression. Each optional link
// becomes an OptChainExpr; plain links in the chain stay plain.
func (p *parser) chain(o object) ast.Expr {
	switch o.typ() {
	case "MemberExpression":
		return p.member(o, true)
	case "CallExpression":
		return p.call(o, true)
	case "TSNonNullExpression":
		return &ast.TsNonNullExpr{SpanVal: o.span(), Expr: p.chain(p.object(o["expression"]))}
	}
	return p.exprObj(o)
}

func (p *parser) tpl(o object) *ast.Tpl {
	t := &ast.Tpl{SpanVal: o.span(), Exprs: p.exprs(o.list("expressions"))}
	for _, raw := range o.list("quasis") {
		q := p.object(raw)
		if q == nil {
			continue
		}
		el := &ast.TplElement{SpanVal: q.span()}
		if v := p.object(q["value"]); v != nil {
			el.Raw = v.str("raw")
			if !isNull(v["cooked"]) {
				cooked := v.str("cooked")
				el.Cooked = &cooked
			}
		}
		t.Quasis = append(t.Quasis, el)
	}
	return t
}

// ---------------------------------------------------------------------------
// Object literal members and keys
// ---------------------------------------------------------------------------

func (p *parser) prop(raw json.RawMessage) ast.Prop {
	o := p.object(raw)
	if o == nil {
		return nil
	}
	span := o.span()
	switch o.typ() {
	case "SpreadElement":
		return &ast.SpreadElement{SpanVal: span, Dot3: dot3(span), Expr: p.expr(o["argument"])}
	case "Property":
	default:
		return &ast.Invalid{SpanVal: span}
	}

	key := p.propName(o["key"], o.bool("computed"))
	value := p.object(o["value"])
	switch o.str("kind") {
	case "get":
		fn := p.function(value)
		return &ast.GetterProp{SpanVal: span, Key: key, TypeAnn: fn.ReturnType, Body: fn.Body}
	case "set":
		fn := p.function(value)
		s := &ast.SetterProp{SpanVal: span, Key: key, Body: fn.Body}
		if len(fn.Params) > 0 {
			s.Param = fn.Params[0]
		}
		return s
	}

	if o.bool("method") {
		return &ast.MethodProp{SpanVal: span, Key: key, Function: p.function(value)}
	}
	if o.bool("shorthand") {
		id, ok := key.(*ast.Ident)
		if !ok {
			p.malformed(o, "shorthand property with non-identifier key")
			return nil
		}
		// `{ a = 1 }` only parses as a pattern; keep the default.
		if value.typ() == "AssignmentPattern" {
			return &ast.AssignProp{SpanVal: span, Key: id, Value: p.expr(value["right"])}
		}
		return id
	}
	return &ast.KeyValueProp{SpanVal: span, Key: key, Value: p.exprObj(value)}
}

func (p *parser) propName(raw json.RawMessage, computed bool) ast.PropName {
	o := p.object(raw)
	if o == nil {
		return nil
	}
	if computed {
		return &ast.ComputedPropName{SpanVal: o.span(), Expr: p.exprObj(o)}
	}
	switch x := p.exprObj(o).(type) {
	case *ast.Ident:
		return x
	case *ast.PrivateName:
		return x
	case *ast.Str:
		return x
	case *ast.Num:
		return x
	case *ast.BigInt:
		return x
	case nil:
		return nil
	default:
		return &ast.ComputedPropName{SpanVal: o.span(), Expr: x}
	}
}
