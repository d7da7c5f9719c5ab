package estree

import (
	"strings"

	"github.com/goccy/go-json"

	"github.com/chazu/astbin/ast"
)

// ---------------------------------------------------------------------------
// Functions and classes
// ---------------------------------------------------------------------------

// function reads the parts shared by every function-like node. It never
// returns nil so callers can read fields off a missing function.
func (p *parser) function(o object) *ast.Function {
	if o == nil {
		return &ast.Function{}
	}
	return &ast.Function{
		SpanVal:     o.span(),
		Params:      p.pats(listOf(o, "params", "parameters")),
		Body:        p.block(o["body"]),
		IsAsync:     o.bool("async"),
		IsGenerator: o.bool("generator"),
		TypeParams:  p.typeParamDecl(o["typeParameters"]),
		ReturnType:  p.typeAnn(o["returnType"]),
	}
}

// class reads a class body and heritage. Decorators on the class, its
// members and their parameters have no record kind and are not read.
func (p *parser) class(o object) *ast.Class {
	c := &ast.Class{
		SpanVal:         o.span(),
		SuperClass:      p.expr(o["superClass"]),
		TypeParams:      p.typeParamDecl(o["typeParameters"]),
		SuperTypeParams: p.typeArgs(o.first("superTypeArguments", "superTypeParameters")),
		IsAbstract:      o.bool("abstract"),
	}
	for _, raw := range o.list("implements") {
		if impl := p.exprWithTypeArgs(p.object(raw)); impl != nil {
			c.Implements = append(c.Implements, impl)
		}
	}
	if body := p.object(o["body"]); body != nil {
		for _, raw := range body.list("body") {
			if m := p.classMember(p.object(raw)); m != nil {
				c.Body = append(c.Body, m)
			}
		}
	}
	return c
}

func (p *parser) classMember(o object) ast.ClassMember {
	if o == nil {
		return nil
	}
	span := o.span()
	typ := o.typ()
	switch typ {
	case "MethodDefinition", "TSAbstractMethodDefinition":
		m := &ast.ClassMethod{
			SpanVal:    span,
			Key:        p.propName(o["key"], o.bool("computed")),
			Function:   p.function(p.object(o["value"])),
			IsStatic:   o.bool("static"),
			IsAbstract: strings.HasPrefix(typ, "TSAbstract") || o.bool("abstract"),
			IsOptional: o.bool("optional"),
		}
		switch o.str("kind") {
		case "constructor":
			m.Kind = ast.MethodConstructor
		case "get":
			m.Kind = ast.MethodGetter
		case "set":
			m.Kind = ast.MethodSetter
		}
		return m

	case "PropertyDefinition", "AccessorProperty",
		"TSAbstractPropertyDefinition", "TSAbstractAccessorProperty":
		return &ast.ClassProp{
			SpanVal:    span,
			Key:        p.propName(o["key"], o.bool("computed")),
			Value:      p.expr(o["value"]),
			TypeAnn:    p.typeAnn(o["typeAnnotation"]),
			IsStatic:   o.bool("static"),
			IsReadonly: o.bool("readonly"),
			IsDeclare:  o.bool("declare"),
		}

	case "StaticBlock":
		return &ast.StaticBlock{SpanVal: span, Body: &ast.BlockStmt{SpanVal: span, Stmts: p.stmts(o.list("body"))}}

	case "TSIndexSignature":
		return p.indexSignature(o)

	case "EmptyStatement":
		return &ast.EmptyStmt{SpanVal: span}
	}
	return &ast.Invalid{SpanVal: span}
}

// listOf returns the first present list among keys.
func listOf(o object, keys ...string) []json.RawMessage {
	for _, k := range keys {
		if l := o.list(k); l != nil {
			return l
		}
	}
	return nil
}
