package main

import (
	"fmt"
	"go/ast"
	"go/token"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/tools/go/packages"

	"github.com/a-peyrard/extend/set"
	"github.com/a-peyrard/extend/str"
)

type (
	ComponentDefinition struct {
		PackageName string
		StructName  string
		Named       string
		Receiver    string
		Operations  []OperationDefinition
	}

	OperationDefinition struct {
		MethodName  string
		Named       string
		ConstName   string
		WrapperName string
	}

	operationCandidate struct {
		method   string
		named    string
		receiver string
	}
)

// scanPackage looks for a struct annotated with @component and for methods
// annotated with @extendable on that struct. It returns nil when the package
// holds no annotated component.
func scanPackage(logger *zerolog.Logger, pkg *packages.Package) (*ComponentDefinition, error) {
	var (
		definition *ComponentDefinition
		candidates = make(map[string][]operationCandidate)
		scanErr    error
	)

	for _, file := range pkg.Syntax {
		packageName := file.Name.Name

		ast.Inspect(file, func(n ast.Node) bool {
			if scanErr != nil {
				return false
			}

			switch node := n.(type) {
			case *ast.GenDecl:
				if node.Tok != token.TYPE || node.Doc == nil {
					return true
				}
				annotation, annotated := parseAnnotation(node.Doc.Text(), componentAnnotationTag)
				if !annotated {
					return true
				}
				for _, spec := range node.Specs {
					typeSpec, ok := spec.(*ast.TypeSpec)
					if !ok {
						continue
					}
					structType, ok := typeSpec.Type.(*ast.StructType)
					if !ok {
						continue
					}

					logger.Debug().Str("struct", typeSpec.Name.Name).Msg("=> Found component")
					if definition != nil {
						scanErr = fmt.Errorf(
							"only one @component struct is supported per package, found %s and %s",
							definition.StructName, typeSpec.Name.Name,
						)
						return false
					}
					if !hasComponentField(structType) {
						scanErr = fmt.Errorf(
							"struct %s must have a `component *extend.Component` field",
							typeSpec.Name.Name,
						)
						return false
					}

					named, found := annotation.Named()
					if !found {
						named = strings.ToLower(typeSpec.Name.Name)
					}
					definition = &ComponentDefinition{
						PackageName: packageName,
						StructName:  typeSpec.Name.Name,
						Named:       named,
					}
				}

			case *ast.FuncDecl:
				if node.Recv == nil || node.Doc == nil {
					return true
				}
				annotation, annotated := parseAnnotation(node.Doc.Text(), extendableAnnotationTag)
				if !annotated {
					return true
				}

				receiverName, structName := receiverOf(node)
				if structName == "" {
					return true
				}
				logger.Debug().
					Str("struct", structName).
					Str("method", node.Name.Name).
					Msg("=> Found extendable operation")

				if err := checkOperationSignature(node); err != nil {
					scanErr = err
					return false
				}

				named, found := annotation.Named()
				if !found {
					named = node.Name.Name
				}
				candidates[structName] = append(candidates[structName], operationCandidate{
					method:   node.Name.Name,
					named:    named,
					receiver: receiverName,
				})
			}
			return true
		})
	}
	if scanErr != nil {
		return nil, scanErr
	}
	if definition == nil {
		return nil, nil
	}

	operations := candidates[definition.StructName]
	if len(operations) == 0 {
		return nil, fmt.Errorf("component %s declares no @extendable method", definition.StructName)
	}

	seen := set.New[string]()
	for _, candidate := range operations {
		if seen.Contains(candidate.named) {
			return nil, fmt.Errorf("component %s declares the operation %q twice", definition.StructName, candidate.named)
		}
		seen.Add(candidate.named)

		if definition.Receiver == "" {
			definition.Receiver = candidate.receiver
		}
		definition.Operations = append(definition.Operations, OperationDefinition{
			MethodName:  candidate.method,
			Named:       candidate.named,
			ConstName:   "Op" + str.ToPascalCase(candidate.named),
			WrapperName: str.ToPascalCase(candidate.named),
		})
	}
	if definition.Receiver == "" {
		definition.Receiver = strings.ToLower(definition.StructName[:1])
	}

	return definition, nil
}

// hasComponentField checks that the struct owns the `component` field the
// generated declaration helper and wrappers rely on.
func hasComponentField(structType *ast.StructType) bool {
	for _, field := range structType.Fields.List {
		for _, name := range field.Names {
			if name.Name != "component" {
				continue
			}
			star, ok := field.Type.(*ast.StarExpr)
			if !ok {
				continue
			}
			if sel, ok := star.X.(*ast.SelectorExpr); ok && sel.Sel.Name == "Component" {
				return true
			}
		}
	}
	return false
}

func receiverOf(fn *ast.FuncDecl) (receiverName string, structName string) {
	if len(fn.Recv.List) != 1 {
		return "", ""
	}
	field := fn.Recv.List[0]
	if len(field.Names) == 1 {
		receiverName = field.Names[0].Name
	}

	typ := field.Type
	if star, ok := typ.(*ast.StarExpr); ok {
		typ = star.X
	}
	if ident, ok := typ.(*ast.Ident); ok {
		structName = ident.Name
	}
	return receiverName, structName
}

func checkOperationSignature(fn *ast.FuncDecl) error {
	if fn.Type.Params != nil && len(fn.Type.Params.List) != 0 {
		return fmt.Errorf("extendable method %s must not take parameters", fn.Name.Name)
	}
	if fn.Type.Results == nil || len(fn.Type.Results.List) != 1 {
		return fmt.Errorf("extendable method %s must return exactly an error", fn.Name.Name)
	}
	if ident, ok := fn.Type.Results.List[0].Type.(*ast.Ident); !ok || ident.Name != "error" {
		return fmt.Errorf("extendable method %s must return an error", fn.Name.Name)
	}
	return nil
}
