package grammar

type Program struct {
	Items []*TopItem `@@*`
}

type TopItem struct {
	Comment      *Comment      `  @@`
	Preprocessor *Preprocessor `| @@`
	Function     *Function     `| @@`
}

type Comment struct {
	Text string `@Comment`
}

type Preprocessor struct {
	Text string `@Preprocessor`
}

// Function is a reversed definition: parameter list first, then the name,
// then the return type, then the body.
type Function struct {
	Params []*Param `"(" [ @@ { "," @@ } ] ")"`
	Name   string   `@Ident`
	Return string   `@("int" | "void" | "char")`
	Body   *Block   `@@`
}

// Param is reversed as well: name before type.
type Param struct {
	Name string `@Ident`
	Type string `@("int" | "void" | "char")`
}

type Block struct {
	Statements []*Statement `"{" @@* "}"`
}

type Statement struct {
	Comment     *Comment     `  @@`
	VarDecl     *VarDecl     `| @@`
	ParenStmt   *ParenStmt   `| @@`
	Passthrough *Passthrough `| @@`
}

// VarDecl reads value first, type last: `<value> = <name> <type> ;`.
type VarDecl struct {
	Value string `@Integer "="`
	Name  string `@Ident`
	Type  string `@("int" | "void" | "char") ";"`
}

// ParenStmt covers both reversed forms that open with a parenthesized run:
// a call (`( args ) name ;`) and a control statement (`( cond ) if { ... }`).
// Which one it is only becomes clear after the head identifier.
type ParenStmt struct {
	Args []*CondToken `"(" @@* ")"`
	Head string       `@Ident`
	Call bool         `( @";"`
	Body *Block       `| @@`
	Else *Block       `  [ "else" @@ ] )`
}

// CondToken is one token inside a parenthesized run. Nested groups keep
// their own parentheses.
type CondToken struct {
	Group *CondGroup `  @@`
	Token string     `| ( @Ident | @Integer | @String | @Operator | @"=" | @";" | @"," )`
}

type CondGroup struct {
	Tokens []*CondToken `"(" @@* ")"`
}

// Passthrough is any other statement, carried token for token up to the
// closing semicolon.
type Passthrough struct {
	Tokens []string `( @Ident | @Integer | @String | @Operator | @"=" )+ ";"`
}
