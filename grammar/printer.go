package grammar

import (
	"fmt"
	"strings"
)

func indent(level int) string {
	return strings.Repeat("    ", level)
}

func (p *Program) String() string {
	var b strings.Builder
	for _, item := range p.Items {
		b.WriteString(item.String())
	}
	return b.String()
}

func (t *TopItem) String() string {
	if t.Comment != nil {
		return t.Comment.Text + "\n"
	}
	if t.Preprocessor != nil {
		return t.Preprocessor.Text + "\n"
	}
	if t.Function != nil {
		return t.Function.String()
	}
	return ""
}

func (f *Function) String() string {
	var params []string
	for _, p := range f.Params {
		params = append(params, p.Name+" "+p.Type)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("(%s) %s %s {\n", strings.Join(params, ", "), f.Name, f.Return))
	for _, s := range f.Body.Statements {
		b.WriteString(s.StringWithIndent(1))
	}
	b.WriteString("}\n\n")
	return b.String()
}

func (s *Statement) StringWithIndent(level int) string {
	switch {
	case s.Comment != nil:
		return indent(level) + s.Comment.Text + "\n"
	case s.VarDecl != nil:
		return indent(level) + s.VarDecl.String() + "\n"
	case s.ParenStmt != nil:
		return s.ParenStmt.StringWithIndent(level)
	case s.Passthrough != nil:
		return indent(level) + s.Passthrough.String() + "\n"
	}
	return ""
}

func (v *VarDecl) String() string {
	return fmt.Sprintf("%s = %s %s;", v.Value, v.Name, v.Type)
}

func (p *ParenStmt) StringWithIndent(level int) string {
	head := fmt.Sprintf("(%s) %s", renderTokens(p.Args), p.Head)
	if p.Call {
		return indent(level) + head + ";\n"
	}

	var b strings.Builder
	b.WriteString(indent(level) + head + " {\n")
	for _, s := range p.Body.Statements {
		b.WriteString(s.StringWithIndent(level + 1))
	}
	b.WriteString(indent(level) + "}")
	if p.Else != nil {
		b.WriteString(" else {\n")
		for _, s := range p.Else.Statements {
			b.WriteString(s.StringWithIndent(level + 1))
		}
		b.WriteString(indent(level) + "}")
	}
	b.WriteString("\n")
	return b.String()
}

func (p *Passthrough) String() string {
	return strings.Join(p.Tokens, " ") + ";"
}

// renderTokens joins a parenthesized run back into canonical spacing:
// single spaces between tokens, none before ',' or ';', and tight
// parentheses around nested groups.
func renderTokens(tokens []*CondToken) string {
	var b strings.Builder
	for _, tok := range tokens {
		var text string
		if tok.Group != nil {
			text = "(" + renderTokens(tok.Group.Tokens) + ")"
		} else {
			text = tok.Token
		}
		if b.Len() > 0 && text != "," && text != ";" {
			b.WriteString(" ")
		}
		b.WriteString(text)
	}
	return b.String()
}
