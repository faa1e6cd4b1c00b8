// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package sealswitch implements a go/analysis analyzer that checks type
// switches over sealed interfaces for exhaustiveness.
//
// Go type switches are open: a missing case compiles and falls through to
// default (or to nothing). For a defunctionalized sum type, where one switch
// is the whole interpretation of every variant, that turns a forgotten
// variant into a runtime panic. sealswitch turns it back into a build-time
// diagnostic.
//
// An interface is sealed when its doc comment carries the //defunc:sealed
// directive, or when the TOML config lists it. Its marker is an unexported
// method (the configured one, or the first unexported method). Variants are
// the non-generic named types of the declaring package whose method set has
// the marker, typically through an embedded phantom struct. Generic types
// that carry the marker are helpers, not variants.
//
// Every type switch whose subject is a sealed interface value, directly or
// through a conversion such as any(f), must list every variant as T or *T.
// A default clause counts only with -default-exhaustive. A
// //sealswitch:ignore comment on the switch line or the line above it
// suppresses the check.
//
// Variants are exported as a [SealedFact] so switches in importing packages
// are checked as well.
package sealswitch

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"slices"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// Diagnostic categories for -json output.
const (
	CategoryMissingVariant = "missing-variant"
	CategoryNoMarker       = "no-marker"
)

const (
	sealedDirective = "//defunc:sealed"
	ignoreDirective = "//sealswitch:ignore"
)

// Flag bindings. run reads them once through newRunConfig.
var (
	configPath        string
	defaultExhaustive bool
)

// Analyzer is the sealswitch analysis pass. Use it with singlechecker
// or multichecker, or via go vet -vettool.
var Analyzer = &analysis.Analyzer{
	Name:      "sealswitch",
	Doc:       "reports type switches over sealed interfaces that do not handle every variant",
	URL:       "https://pkg.go.dev/code.hybscloud.com/defunc/internal/sealswitch",
	Run:       run,
	Requires:  []*analysis.Analyzer{inspect.Analyzer},
	FactTypes: []analysis.Fact{new(SealedFact)},
}

func init() {
	Analyzer.Flags.StringVar(&configPath, "config", "",
		"path to TOML config file")
	Analyzer.Flags.BoolVar(&defaultExhaustive, "default-exhaustive", false,
		"treat a type switch with a default clause as exhaustive")
}

// runConfig holds the resolved flag values for a single run.
type runConfig struct {
	configPath        string
	defaultExhaustive bool
}

func newRunConfig() runConfig {
	return runConfig{
		configPath:        configPath,
		defaultExhaustive: defaultExhaustive,
	}
}

// SealedFact lists the variants of a sealed interface, sorted by name.
type SealedFact struct {
	Variants []string
}

func (*SealedFact) AFact() {}

func (f *SealedFact) String() string {
	return "sealed(" + strings.Join(f.Variants, ", ") + ")"
}

func run(pass *analysis.Pass) (any, error) {
	rc := newRunConfig()

	cfg, err := loadConfig(rc.configPath)
	if err != nil {
		return nil, err
	}
	defaultOK := rc.defaultExhaustive || cfg.Settings.DefaultExhaustive

	sealed := collectSealed(pass, cfg)
	ignored := ignoredLines(pass)

	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	insp.Preorder([]ast.Node{(*ast.TypeSwitchStmt)(nil)}, func(n ast.Node) {
		sw := n.(*ast.TypeSwitchStmt)
		pos := pass.Fset.Position(sw.Pos())
		if lines := ignored[pos.Filename]; lines[pos.Line] || lines[pos.Line-1] {
			return
		}
		checkSwitch(pass, sw, sealed, defaultOK)
	})

	return nil, nil
}

// collectSealed finds the sealed interfaces declared in the package,
// exports their facts, and returns them keyed by type name.
func collectSealed(pass *analysis.Pass, cfg *Config) map[*types.TypeName]*SealedFact {
	sealed := make(map[*types.TypeName]*SealedFact)

	for _, file := range pass.Files {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}
			for _, spec := range gd.Specs {
				ts := spec.(*ast.TypeSpec)
				obj, ok := pass.TypesInfo.Defs[ts.Name].(*types.TypeName)
				if !ok {
					continue
				}
				iface, ok := obj.Type().Underlying().(*types.Interface)
				if !ok {
					continue
				}

				marker, listed := cfg.sealedMarker(qualifiedName(obj))
				directive := hasDirective(ts.Doc) || (!gd.Lparen.IsValid() && hasDirective(gd.Doc))
				if !listed && !directive {
					continue
				}
				if marker == "" {
					marker = firstUnexported(iface)
				}
				if marker == "" {
					pass.Report(analysis.Diagnostic{
						Pos:      ts.Name.Pos(),
						Category: CategoryNoMarker,
						Message: fmt.Sprintf("sealed interface %s has no unexported marker method",
							displayName(obj)),
					})
					continue
				}

				fact := &SealedFact{Variants: variantsOf(pass.Pkg, marker)}
				pass.ExportObjectFact(obj, fact)
				sealed[obj] = fact
			}
		}
	}

	return sealed
}

// checkSwitch reports the variants sw does not handle.
func checkSwitch(pass *analysis.Pass, sw *ast.TypeSwitchStmt, sealed map[*types.TypeName]*SealedFact, defaultOK bool) {
	subject := switchSubject(sw)
	if subject == nil {
		return
	}
	unwrapped := unwrapConversion(pass, subject)
	t := pass.TypesInfo.TypeOf(unwrapped)

	tn, fact := sealedSubject(pass, t, sealed)
	if fact == nil {
		return
	}

	covered := make(map[string]bool)
	hasDefault := false
	for _, stmt := range sw.Body.List {
		cc := stmt.(*ast.CaseClause)
		if cc.List == nil {
			hasDefault = true
			continue
		}
		for _, e := range cc.List {
			if name, ok := caseTypeName(pass, e, tn.Pkg()); ok {
				covered[name] = true
			}
		}
	}
	if hasDefault && defaultOK {
		return
	}

	listable := caseable(pass, t, tn.Pkg(), fact.Variants)

	var missing []string
	for _, v := range fact.Variants {
		if !listable(v) {
			continue
		}
		if !covered[v] {
			missing = append(missing, v)
		}
	}
	if len(missing) == 0 {
		return
	}

	pass.Report(analysis.Diagnostic{
		Pos:      sw.Pos(),
		End:      sw.Body.Lbrace,
		Category: CategoryMissingVariant,
		Message: fmt.Sprintf("missing cases in type switch over %s: %s",
			displayName(tn), strings.Join(missing, ", ")),
	})
}

// caseable reports which variants a switch over a value of type t must
// list. Variants unexported in another package are never required. When t
// is bounded, by an instantiated interface or a type parameter constraint,
// only the variants satisfying that bound are required. A bound that no
// variant satisfies mentions other type parameters and filters nothing.
func caseable(pass *analysis.Pass, t types.Type, pkg *types.Package, variants []string) func(string) bool {
	bound := boundOf(t)
	fits := func(name string) bool {
		tn, ok := pkg.Scope().Lookup(name).(*types.TypeName)
		if !ok {
			return false
		}
		vt := tn.Type()
		return types.Satisfies(vt, bound) || types.Satisfies(types.NewPointer(vt), bound)
	}
	if bound != nil && !slices.ContainsFunc(variants, fits) {
		bound = nil
	}
	return func(name string) bool {
		if pkg != pass.Pkg && !token.IsExported(name) {
			return false
		}
		return bound == nil || fits(name)
	}
}

// boundOf returns the interface a value of type t is known to satisfy
// beyond its sealed origin: the constraint of a type parameter, or an
// instantiated generic interface. It returns nil otherwise.
func boundOf(t types.Type) *types.Interface {
	switch t := types.Unalias(t).(type) {
	case *types.TypeParam:
		iface, _ := t.Constraint().Underlying().(*types.Interface)
		return iface
	case *types.Named:
		if t.TypeArgs().Len() == 0 {
			return nil
		}
		iface, _ := t.Underlying().(*types.Interface)
		return iface
	}
	return nil
}

// sealedSubject returns the sealed interface behind t with its fact.
func sealedSubject(pass *analysis.Pass, t types.Type, sealed map[*types.TypeName]*SealedFact) (*types.TypeName, *SealedFact) {
	for _, tn := range subjectTypeNames(t) {
		if fact, ok := sealed[tn]; ok {
			return tn, fact
		}
		fact := new(SealedFact)
		if pass.ImportObjectFact(tn, fact) {
			return tn, fact
		}
	}
	return nil, nil
}

// subjectTypeNames returns the declared interfaces a value of type t may be
// switched over. A type parameter contributes its constraint and, depth
// first, the interfaces the constraint embeds.
func subjectTypeNames(t types.Type) []*types.TypeName {
	if t == nil {
		return nil
	}
	tp, ok := types.Unalias(t).(*types.TypeParam)
	if !ok {
		if tn := originTypeName(t); tn != nil {
			return []*types.TypeName{tn}
		}
		return nil
	}

	var names []*types.TypeName
	var walk func(types.Type)
	walk = func(c types.Type) {
		if tn := originTypeName(c); tn != nil && tn.Pkg() != nil {
			names = append(names, tn)
		}
		iface, ok := c.Underlying().(*types.Interface)
		if !ok {
			return
		}
		for i := range iface.NumEmbeddeds() {
			walk(iface.EmbeddedType(i))
		}
	}
	walk(tp.Constraint())
	return names
}

// variantsOf returns the sorted names of the non-generic named types in pkg
// whose value or pointer method set contains the marker method.
func variantsOf(pkg *types.Package, marker string) []string {
	var names []string
	scope := pkg.Scope()
	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || tn.IsAlias() {
			continue
		}
		named, ok := tn.Type().(*types.Named)
		if !ok || named.TypeParams().Len() > 0 || types.IsInterface(named) {
			continue
		}
		obj, _, _ := types.LookupFieldOrMethod(types.NewPointer(named), true, pkg, marker)
		if fn, ok := obj.(*types.Func); ok && fn.Pkg() == pkg {
			names = append(names, name)
		}
	}
	return names
}

// firstUnexported returns the name of the first unexported method of iface,
// or "" if every method is exported.
func firstUnexported(iface *types.Interface) string {
	for i := range iface.NumMethods() {
		if m := iface.Method(i); !m.Exported() {
			return m.Name()
		}
	}
	return ""
}

// switchSubject returns x from "switch x.(type)" or "switch v := x.(type)".
func switchSubject(sw *ast.TypeSwitchStmt) ast.Expr {
	var x ast.Expr
	switch a := sw.Assign.(type) {
	case *ast.ExprStmt:
		x = a.X
	case *ast.AssignStmt:
		if len(a.Rhs) == 1 {
			x = a.Rhs[0]
		}
	}
	ta, ok := ast.Unparen(x).(*ast.TypeAssertExpr)
	if !ok {
		return nil
	}
	return ast.Unparen(ta.X)
}

// unwrapConversion returns v for a conversion I(v) to an interface type,
// and x unchanged otherwise. Generic code switches on any(f) so that its
// cases need not implement the type-parameterized interface.
func unwrapConversion(pass *analysis.Pass, x ast.Expr) ast.Expr {
	call, ok := x.(*ast.CallExpr)
	if !ok || len(call.Args) != 1 {
		return x
	}
	tv, ok := pass.TypesInfo.Types[call.Fun]
	if !ok || !tv.IsType() || !types.IsInterface(tv.Type) {
		return x
	}
	return ast.Unparen(call.Args[0])
}

// originTypeName returns the declared type name behind t, looking through
// aliases and instantiation.
func originTypeName(t types.Type) *types.TypeName {
	if t == nil {
		return nil
	}
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return nil
	}
	return named.Origin().Obj()
}

// caseTypeName returns the name of the named type listed by case expression
// e, as T or *T, when that type is declared in pkg.
func caseTypeName(pass *analysis.Pass, e ast.Expr, pkg *types.Package) (string, bool) {
	t := pass.TypesInfo.TypeOf(e)
	if t == nil {
		return "", false
	}
	if p, ok := types.Unalias(t).(*types.Pointer); ok {
		t = p.Elem()
	}
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return "", false
	}
	obj := named.Obj()
	if obj.Pkg() == nil || obj.Pkg().Path() != pkg.Path() {
		return "", false
	}
	return obj.Name(), true
}

func hasDirective(cg *ast.CommentGroup) bool {
	if cg == nil {
		return false
	}
	for _, c := range cg.List {
		if strings.TrimSpace(c.Text) == sealedDirective {
			return true
		}
	}
	return false
}

// ignoredLines returns, per file name, the lines holding an ignore directive.
func ignoredLines(pass *analysis.Pass) map[string]map[int]bool {
	ignored := make(map[string]map[int]bool)
	for _, file := range pass.Files {
		for _, cg := range file.Comments {
			for _, c := range cg.List {
				if !strings.HasPrefix(c.Text, ignoreDirective) {
					continue
				}
				pos := pass.Fset.Position(c.Slash)
				if ignored[pos.Filename] == nil {
					ignored[pos.Filename] = make(map[int]bool)
				}
				ignored[pos.Filename][pos.Line] = true
			}
		}
	}
	return ignored
}

func qualifiedName(obj *types.TypeName) string {
	return obj.Pkg().Path() + "." + obj.Name()
}

func displayName(obj *types.TypeName) string {
	return obj.Pkg().Name() + "." + obj.Name()
}
