package estree

import (
	"strings"

	"github.com/goccy/go-json"

	"github.com/chazu/astbin/ast"
)

// ---------------------------------------------------------------------------
// TypeScript annotations, parameters and names
// ---------------------------------------------------------------------------

// typeAnn reads a TSTypeAnnotation wrapper. A bare type is wrapped with
// its own span.
func (p *parser) typeAnn(raw json.RawMessage) *ast.TsTypeAnn {
	o := p.object(raw)
	if o == nil {
		return nil
	}
	if o.typ() == "TSTypeAnnotation" {
		return &ast.TsTypeAnn{SpanVal: o.span(), Type: p.tsType(o["typeAnnotation"])}
	}
	return &ast.TsTypeAnn{SpanVal: o.span(), Type: p.tsTypeObj(o)}
}

func (p *parser) typeParamDecl(raw json.RawMessage) *ast.TsTypeParamDecl {
	o := p.object(raw)
	if o == nil {
		return nil
	}
	d := &ast.TsTypeParamDecl{SpanVal: o.span()}
	for _, raw := range o.list("params") {
		if tp := p.typeParam(p.object(raw)); tp != nil {
			d.Params = append(d.Params, tp)
		}
	}
	return d
}

// typeParam reads a TSTypeParameter. Some parsers give the name as a plain
// string; its span then starts at the parameter.
func (p *parser) typeParam(o object) *ast.TsTypeParam {
	if o == nil {
		return nil
	}
	span := o.span()
	tp := &ast.TsTypeParam{
		SpanVal:    span,
		Constraint: p.tsType(o["constraint"]),
		Default:    p.tsType(o["default"]),
		IsConst:    o.bool("const"),
	}
	if raw := o["name"]; len(raw) > 0 && raw[0] == '"' {
		name := o.str("name")
		tp.Name = &ast.Ident{SpanVal: ast.Span{Start: span.Start, End: span.Start + uint32(len(name))}, Name: name}
	} else {
		tp.Name = p.ident(raw)
	}
	return tp
}

func (p *parser) typeArgs(raw json.RawMessage) *ast.TsTypeParamInstantiation {
	o := p.object(raw)
	if o == nil {
		return nil
	}
	return &ast.TsTypeParamInstantiation{SpanVal: o.span(), Params: p.tsTypes(o.list("params"))}
}

// exprWithTypeArgs reads an implements or extends clause entry.
func (p *parser) exprWithTypeArgs(o object) *ast.TsExprWithTypeArgs {
	if o == nil {
		return nil
	}
	return &ast.TsExprWithTypeArgs{
		SpanVal:  o.span(),
		Expr:     p.expr(o["expression"]),
		TypeArgs: p.typeArgs(o.first("typeArguments", "typeParameters")),
	}
}

func (p *parser) entityNameObj(o object) ast.TsEntityName {
	switch o.typ() {
	case "Identifier":
		return p.identObj(o)
	case "TSQualifiedName":
		return &ast.TsQualifiedName{
			SpanVal: o.span(),
			Left:    p.entityNameObj(p.object(o["left"])),
			Right:   p.ident(o["right"]),
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// TypeScript declarations
// ---------------------------------------------------------------------------

func (p *parser) interfaceDecl(o object) *ast.TsInterfaceDecl {
	span := o.span()
	d := &ast.TsInterfaceDecl{
		SpanVal:    span,
		ID:         p.ident(o["id"]),
		TypeParams: p.typeParamDecl(o["typeParameters"]),
		Declare:    o.bool("declare"),
		Body:       &ast.TsInterfaceBody{SpanVal: span},
	}
	for _, raw := range o.list("extends") {
		if h := p.exprWithTypeArgs(p.object(raw)); h != nil {
			d.Extends = append(d.Extends, h)
		}
	}
	if body := p.object(o["body"]); body != nil {
		d.Body = &ast.TsInterfaceBody{SpanVal: body.span(), Body: p.typeElements(body.list("body"))}
	}
	return d
}

// moduleDeclTS reads a namespace or module declaration. A dotted name such
// as `namespace a.b {}` becomes one declaration per segment.
func (p *parser) moduleDeclTS(o object) ast.Decl {
	span := o.span()
	var body ast.Node
	if b := p.object(o["body"]); b != nil {
		switch b.typ() {
		case "TSModuleBlock":
			blk := &ast.TsModuleBlock{SpanVal: b.span()}
			for _, raw := range b.list("body") {
				if it := p.moduleItem(raw); it != nil {
					blk.Body = append(blk.Body, it)
				}
			}
			body = blk
		case "TSModuleDeclaration":
			body = p.moduleDeclTS(b)
		default:
			p.malformed(b, "namespace body")
			return nil
		}
	}

	global := o.str("kind") == "global" || o.bool("global")
	id := p.object(o["id"])
	for id.typ() == "TSQualifiedName" {
		inner := &ast.TsModuleDecl{SpanVal: span, ID: p.ident(id["right"])}
		if body != nil {
			inner.Body = body
		}
		body = inner
		id = p.object(id["left"])
	}
	d := &ast.TsModuleDecl{SpanVal: span, ID: p.exprObj(id), Declare: o.bool("declare"), IsGlobal: global}
	if body != nil {
		d.Body = body
	}
	return d
}

func (p *parser) indexSignature(o object) *ast.TsIndexSignature {
	return &ast.TsIndexSignature{
		SpanVal:  o.span(),
		Params:   p.pats(o.list("parameters")),
		TypeAnn:  p.typeAnn(o["typeAnnotation"]),
		Readonly: o.bool("readonly"),
		IsStatic: o.bool("static"),
	}
}

// ---------------------------------------------------------------------------
// TypeScript type members
// ---------------------------------------------------------------------------

func (p *parser) typeElements(raws []json.RawMessage) []ast.TsTypeElement {
	out := make([]ast.TsTypeElement, 0, len(raws))
	for _, raw := range raws {
		if el := p.typeElement(p.object(raw)); el != nil {
			out = append(out, el)
		}
	}
	return out
}

func (p *parser) typeElement(o object) ast.TsTypeElement {
	if o == nil {
		return nil
	}
	span := o.span()
	switch o.typ() {
	case "TSPropertySignature":
		return &ast.TsPropertySignature{
			SpanVal:  span,
			Key:      p.propName(o["key"], o.bool("computed")),
			TypeAnn:  p.typeAnn(o["typeAnnotation"]),
			Optional: o.bool("optional"),
			Readonly: o.bool("readonly"),
		}

	case "TSMethodSignature":
		return &ast.TsMethodSignature{
			SpanVal:    span,
			Key:        p.propName(o["key"], o.bool("computed")),
			Params:     p.pats(listOf(o, "params", "parameters")),
			TypeParams: p.typeParamDecl(o["typeParameters"]),
			TypeAnn:    p.typeAnn(o.first("returnType", "typeAnnotation")),
			Optional:   o.bool("optional"),
		}

	case "TSCallSignatureDeclaration":
		return &ast.TsCallSignatureDecl{
			SpanVal:    span,
			Params:     p.pats(listOf(o, "params", "parameters")),
			TypeParams: p.typeParamDecl(o["typeParameters"]),
			TypeAnn:    p.typeAnn(o.first("returnType", "typeAnnotation")),
		}

	case "TSConstructSignatureDeclaration":
		return &ast.TsConstructSignatureDecl{
			SpanVal:    span,
			Params:     p.pats(listOf(o, "params", "parameters")),
			TypeParams: p.typeParamDecl(o["typeParameters"]),
			TypeAnn:    p.typeAnn(o.first("returnType", "typeAnnotation")),
		}

	case "TSIndexSignature":
		return p.indexSignature(o)
	}
	return &ast.Invalid{SpanVal: span}
}

// ---------------------------------------------------------------------------
// TypeScript types
// ---------------------------------------------------------------------------

func (p *parser) tsType(raw json.RawMessage) ast.TsType {
	return p.tsTypeObj(p.object(raw))
}

func (p *parser) tsTypes(raws []json.RawMessage) []ast.TsType {
	out := make([]ast.TsType, 0, len(raws))
	for _, raw := range raws {
		out = append(out, p.tsType(raw))
	}
	return out
}

func (p *parser) tsTypeObj(o object) ast.TsType {
	if o == nil {
		return nil
	}
	span := o.span()
	typ := o.typ()
	if strings.HasPrefix(typ, "TS") && strings.HasSuffix(typ, "Keyword") {
		// TSNumberKeyword -> number
		return &ast.TsKeywordType{SpanVal: span, Kind: strings.ToLower(strings.TrimSuffix(typ[2:], "Keyword"))}
	}

	switch typ {
	case "TSThisType":
		return &ast.TsThisType{SpanVal: span}

	case "TSFunctionType":
		return &ast.TsFnType{
			SpanVal:    span,
			Params:     p.pats(listOf(o, "params", "parameters")),
			TypeParams: p.typeParamDecl(o["typeParameters"]),
			TypeAnn:    p.typeAnn(o.first("returnType", "typeAnnotation")),
		}

	case "TSConstructorType":
		return &ast.TsConstructorType{
			SpanVal:    span,
			Params:     p.pats(listOf(o, "params", "parameters")),
			TypeParams: p.typeParamDecl(o["typeParameters"]),
			TypeAnn:    p.typeAnn(o.first("returnType", "typeAnnotation")),
			IsAbstract: o.bool("abstract"),
		}

	case "TSTypeReference":
		return &ast.TsTypeRef{
			SpanVal:    span,
			TypeName:   p.entityNameObj(p.object(o["typeName"])),
			TypeParams: p.typeArgs(o.first("typeArguments", "typeParameters")),
		}

	case "TSTypeQuery":
		q := &ast.TsTypeQuery{SpanVal: span, TypeArgs: p.typeArgs(o.first("typeArguments", "typeParameters"))}
		name := p.object(o["exprName"])
		if name.typ() == "TSImportType" {
			q.ExprName = p.tsTypeObj(name)
		} else if n := p.entityNameObj(name); n != nil {
			q.ExprName = n
		}
		return q

	case "TSTypeLiteral":
		return &ast.TsTypeLit{SpanVal: span, Members: p.typeElements(o.list("members"))}

	case "TSArrayType":
		return &ast.TsArrayType{SpanVal: span, ElemType: p.tsType(o["elementType"])}

	case "TSTupleType":
		return &ast.TsTupleType{SpanVal: span, ElemTypes: p.tsTypes(listOf(o, "elementTypes", "elements"))}

	case "TSNamedTupleMember":
		// The label is dropped; only the element type is kept.
		t := p.tsType(o["elementType"])
		if o.bool("optional") {
			return &ast.TsOptionalType{SpanVal: span, TypeAnn: t}
		}
		return t

	case "TSOptionalType":
		return &ast.TsOptionalType{SpanVal: span, TypeAnn: p.tsType(o["typeAnnotation"])}

	case "TSRestType":
		return &ast.TsRestType{SpanVal: span, TypeAnn: p.tsType(o["typeAnnotation"])}

	case "TSUnionType":
		return &ast.TsUnionType{SpanVal: span, Types: p.tsTypes(o.list("types"))}

	case "TSIntersectionType":
		return &ast.TsIntersectionType{SpanVal: span, Types: p.tsTypes(o.list("types"))}

	case "TSConditionalType":
		return &ast.TsConditionalType{
			SpanVal:   span,
			CheckType: p.tsType(o["checkType"]),
			Extends:   p.tsType(o["extendsType"]),
			TrueType:  p.tsType(o["trueType"]),
			FalseType: p.tsType(o["falseType"]),
		}

	case "TSInferType":
		return &ast.TsInferType{SpanVal: span, TypeParam: p.typeParam(p.object(o["typeParameter"]))}

	case "TSParenthesizedType":
		return &ast.TsParenthesizedType{SpanVal: span, TypeAnn: p.tsType(o["typeAnnotation"])}

	case "TSTypeOperator":
		return &ast.TsTypeOperator{SpanVal: span, Op: o.str("operator"), TypeAnn: p.tsType(o["typeAnnotation"])}

	case "TSIndexedAccessType":
		return &ast.TsIndexedAccessType{SpanVal: span, ObjType: p.tsType(o["objectType"]), IndexType: p.tsType(o["indexType"])}

	case "TSMappedType":
		m := &ast.TsMappedType{SpanVal: span, NameType: p.tsType(o["nameType"]), TypeAnn: p.tsType(o["typeAnnotation"])}
		if tp := p.object(o["typeParameter"]); tp != nil {
			m.TypeParam = p.typeParam(tp)
		} else if key := p.ident(o["key"]); key != nil {
			// Newer trees split the parameter into key and constraint.
			m.TypeParam = &ast.TsTypeParam{SpanVal: key.SpanVal, Name: key, Constraint: p.tsType(o["constraint"])}
		}
		return m

	case "TSLiteralType":
		lit := p.object(o["literal"])
		t := &ast.TsLitType{SpanVal: span}
		if lit.typ() == "TemplateLiteral" {
			t.Lit = p.tpl(lit)
		} else {
			t.Lit = p.exprObj(lit)
		}
		return t

	case "TSTypePredicate":
		pred := &ast.TsTypePredicate{SpanVal: span, Asserts: o.bool("asserts"), TypeAnn: p.typeAnn(o["typeAnnotation"])}
		switch name := p.object(o["parameterName"]); name.typ() {
		case "TSThisType":
			pred.ParamName = &ast.TsThisType{SpanVal: name.span()}
		case "Identifier":
			pred.ParamName = p.identObj(name)
		}
		return pred

	case "TSImportType":
		return &ast.TsImportType{
			SpanVal:   span,
			Arg:       p.strLit(o.first("argument", "parameter")),
			Qualifier: p.entityNameObj(p.object(o["qualifier"])),
			TypeArgs:  p.typeArgs(o.first("typeArguments", "typeParameters")),
		}
	}
	return &ast.Invalid{SpanVal: span}
}
