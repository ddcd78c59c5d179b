package ast

import (
	"fmt"
	"strconv"

	"github.com/tidwall/sjson"
)

// DumpJSON renders the program as a JSON document, built incrementally
// node-by-node with sjson.SetRaw rather than one struct-tagged
// json.Marshal call — each AST node contributes its own fragment as the
// walk visits it, the way a streaming dump would. Used by the `--json`
// verbose dump path and queried with gjson in tests.
func DumpJSON(p *Program) (string, error) {
	doc := "{}"
	doc, err := sjson.Set(doc, "kind", "Program")
	if err != nil {
		return "", err
	}
	items := "[]"
	for i, d := range p.Declarations {
		frag, err := marshalNode(d)
		if err != nil {
			return "", err
		}
		items, err = sjson.SetRaw(items, strconv.Itoa(i), frag)
		if err != nil {
			return "", err
		}
	}
	return sjson.SetRaw(doc, "declarations", items)
}

func marshalNode(n Node) (string, error) {
	if n == nil {
		return "null", nil
	}

	doc := "{}"
	set := func(path string, value any) error {
		var err error
		doc, err = sjson.Set(doc, path, value)
		return err
	}
	setRaw := func(path, raw string) error {
		var err error
		doc, err = sjson.SetRaw(doc, path, raw)
		return err
	}
	list := func(path string, nodes []Node) error {
		arr := "[]"
		for i, child := range nodes {
			frag, err := marshalNode(child)
			if err != nil {
				return err
			}
			arr, err = sjson.SetRaw(arr, strconv.Itoa(i), frag)
			if err != nil {
				return err
			}
		}
		return setRaw(path, arr)
	}

	switch node := n.(type) {
	case *Program:
		return DumpJSON(node)

	case *FunctionDecl:
		if err := set("kind", "FunctionDecl"); err != nil {
			return "", err
		}
		if err := set("name", node.Name); err != nil {
			return "", err
		}
		if err := set("returnType", node.ReturnType); err != nil {
			return "", err
		}
		for i, p := range node.Params {
			if err := set(fmt.Sprintf("params.%d.type", i), p.Type); err != nil {
				return "", err
			}
			if err := set(fmt.Sprintf("params.%d.name", i), p.Name); err != nil {
				return "", err
			}
		}
		if node.Body == nil {
			if err := set("prototype", true); err != nil {
				return "", err
			}
		} else if err := list("body", statementsToNodes(node.Body.Statements)); err != nil {
			return "", err
		}
		return doc, nil

	case *VariableDecl:
		if err := set("kind", "VariableDecl"); err != nil {
			return "", err
		}
		if err := set("type", node.Type); err != nil {
			return "", err
		}
		if err := set("name", node.Name); err != nil {
			return "", err
		}
		if node.Init != nil {
			frag, err := marshalNode(node.Init)
			if err != nil {
				return "", err
			}
			if err := setRaw("init", frag); err != nil {
				return "", err
			}
		}
		return doc, nil

	case *CompoundStmt:
		if err := set("kind", "CompoundStmt"); err != nil {
			return "", err
		}
		if err := list("statements", statementsToNodes(node.Statements)); err != nil {
			return "", err
		}
		return doc, nil

	case *ExpressionStmt:
		if err := set("kind", "ExpressionStmt"); err != nil {
			return "", err
		}
		if node.Expr != nil {
			frag, err := marshalNode(node.Expr)
			if err != nil {
				return "", err
			}
			if err := setRaw("expr", frag); err != nil {
				return "", err
			}
		}
		return doc, nil

	case *IfStmt:
		if err := set("kind", "IfStmt"); err != nil {
			return "", err
		}
		condFrag, err := marshalNode(node.Cond)
		if err != nil {
			return "", err
		}
		if err := setRaw("cond", condFrag); err != nil {
			return "", err
		}
		thenFrag, err := marshalNode(node.Then)
		if err != nil {
			return "", err
		}
		if err := setRaw("then", thenFrag); err != nil {
			return "", err
		}
		if node.Else != nil {
			elseFrag, err := marshalNode(node.Else)
			if err != nil {
				return "", err
			}
			if err := setRaw("else", elseFrag); err != nil {
				return "", err
			}
		}
		return doc, nil

	case *WhileStmt:
		if err := set("kind", "WhileStmt"); err != nil {
			return "", err
		}
		condFrag, err := marshalNode(node.Cond)
		if err != nil {
			return "", err
		}
		if err := setRaw("cond", condFrag); err != nil {
			return "", err
		}
		bodyFrag, err := marshalNode(node.Body)
		if err != nil {
			return "", err
		}
		return doc, setRaw("body", bodyFrag)

	case *ForStmt:
		if err := set("kind", "ForStmt"); err != nil {
			return "", err
		}
		if node.Init != nil {
			initFrag, err := marshalNode(node.Init)
			if err != nil {
				return "", err
			}
			if err := setRaw("init", initFrag); err != nil {
				return "", err
			}
		}
		if node.Cond != nil {
			condFrag, err := marshalNode(node.Cond)
			if err != nil {
				return "", err
			}
			if err := setRaw("cond", condFrag); err != nil {
				return "", err
			}
		}
		if node.Post != nil {
			postFrag, err := marshalNode(node.Post)
			if err != nil {
				return "", err
			}
			if err := setRaw("post", postFrag); err != nil {
				return "", err
			}
		}
		bodyFrag, err := marshalNode(node.Body)
		if err != nil {
			return "", err
		}
		return doc, setRaw("body", bodyFrag)

	case *ReturnStmt:
		if err := set("kind", "ReturnStmt"); err != nil {
			return "", err
		}
		if node.Value != nil {
			frag, err := marshalNode(node.Value)
			if err != nil {
				return "", err
			}
			if err := setRaw("value", frag); err != nil {
				return "", err
			}
		}
		return doc, nil

	case *BinaryExpr:
		if err := set("kind", "BinaryExpr"); err != nil {
			return "", err
		}
		if err := set("operator", node.Operator); err != nil {
			return "", err
		}
		leftFrag, err := marshalNode(node.Left)
		if err != nil {
			return "", err
		}
		if err := setRaw("left", leftFrag); err != nil {
			return "", err
		}
		rightFrag, err := marshalNode(node.Right)
		if err != nil {
			return "", err
		}
		return doc, setRaw("right", rightFrag)

	case *UnaryExpr:
		if err := set("kind", "UnaryExpr"); err != nil {
			return "", err
		}
		if err := set("operator", node.Operator); err != nil {
			return "", err
		}
		frag, err := marshalNode(node.Operand)
		if err != nil {
			return "", err
		}
		return doc, setRaw("operand", frag)

	case *CallExpr:
		if err := set("kind", "CallExpr"); err != nil {
			return "", err
		}
		if err := set("callee", node.Callee); err != nil {
			return "", err
		}
		args := make([]Node, len(node.Args))
		for i, a := range node.Args {
			args[i] = a
		}
		return doc, list("args", args)

	case *AssignmentExpr:
		if err := set("kind", "AssignmentExpr"); err != nil {
			return "", err
		}
		targetFrag, err := marshalNode(node.Target)
		if err != nil {
			return "", err
		}
		if err := setRaw("target", targetFrag); err != nil {
			return "", err
		}
		valueFrag, err := marshalNode(node.Value)
		if err != nil {
			return "", err
		}
		return doc, setRaw("value", valueFrag)

	case *Identifier:
		if err := set("kind", "Identifier"); err != nil {
			return "", err
		}
		return doc, set("name", node.Name)

	case *NumberLiteral:
		if err := set("kind", "NumberLiteral"); err != nil {
			return "", err
		}
		return doc, set("value", node.Value)

	case *StringLiteral:
		if err := set("kind", "StringLiteral"); err != nil {
			return "", err
		}
		return doc, set("raw", node.Raw)

	default:
		return "", fmt.Errorf("ast: DumpJSON: unsupported node type %T", n)
	}
}

func statementsToNodes(stmts []Statement) []Node {
	nodes := make([]Node, len(stmts))
	for i, s := range stmts {
		nodes[i] = s
	}
	return nodes
}
