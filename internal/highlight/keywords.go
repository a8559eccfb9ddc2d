package highlight

import "github.com/kylelemons/vis/internal/linebuf"

// Go is the Lang for Go source files: keyword table lifted from the
// predefined identifiers and reserved words Go programs are built from.
var Go = Lang{
	Name:        "go",
	LineComment: "//",
	BlockOpen:   "/*",
	BlockClose:  "*/",
	HasBackQuote: true,
	Keywords: map[string]linebuf.Style{
		"break": linebuf.StyleControl, "case": linebuf.StyleControl,
		"chan": linebuf.StyleControl, "continue": linebuf.StyleControl,
		"default": linebuf.StyleControl, "defer": linebuf.StyleControl,
		"else": linebuf.StyleControl, "fallthrough": linebuf.StyleControl,
		"for": linebuf.StyleControl, "func": linebuf.StyleControl,
		"if": linebuf.StyleControl, "go": linebuf.StyleControl,
		"goto": linebuf.StyleControl, "range": linebuf.StyleControl,
		"return": linebuf.StyleControl, "select": linebuf.StyleControl,
		"switch": linebuf.StyleControl,

		"append": linebuf.StyleControl, "cap": linebuf.StyleControl,
		"close": linebuf.StyleControl, "complex": linebuf.StyleControl,
		"copy": linebuf.StyleControl, "delete": linebuf.StyleControl,
		"imag": linebuf.StyleControl, "len": linebuf.StyleControl,
		"make": linebuf.StyleControl, "new": linebuf.StyleControl,
		"panic": linebuf.StyleControl, "real": linebuf.StyleControl,
		"recover": linebuf.StyleControl,

		"bool": linebuf.StyleVarType, "byte": linebuf.StyleVarType,
		"complex128": linebuf.StyleVarType, "complex64": linebuf.StyleVarType,
		"const": linebuf.StyleVarType, "error": linebuf.StyleVarType,
		"float32": linebuf.StyleVarType, "float64": linebuf.StyleVarType,
		"int": linebuf.StyleVarType, "int8": linebuf.StyleVarType,
		"int16": linebuf.StyleVarType, "int32": linebuf.StyleVarType,
		"int64": linebuf.StyleVarType, "interface": linebuf.StyleVarType,
		"map": linebuf.StyleVarType, "package": linebuf.StyleVarType,
		"struct": linebuf.StyleVarType, "type": linebuf.StyleVarType,
		"var": linebuf.StyleVarType, "rune": linebuf.StyleVarType,
		"string": linebuf.StyleVarType, "uint8": linebuf.StyleVarType,
		"uint16": linebuf.StyleVarType, "uint32": linebuf.StyleVarType,
		"uint64": linebuf.StyleVarType, "uintptr": linebuf.StyleVarType,

		"false": linebuf.StyleConst, "iota": linebuf.StyleConst,
		"nil": linebuf.StyleConst, "true": linebuf.StyleConst,

		"import": linebuf.StyleDefine,
	},
}

// CPP is the Lang for C/C++ source files.
var CPP = Lang{
	Name:        "cpp",
	LineComment: "//",
	BlockOpen:   "/*",
	BlockClose:  "*/",
	HasDefine:   true,
	Keywords: map[string]linebuf.Style{
		"if": linebuf.StyleControl, "else": linebuf.StyleControl,
		"for": linebuf.StyleControl, "while": linebuf.StyleControl,
		"do": linebuf.StyleControl, "return": linebuf.StyleControl,
		"switch": linebuf.StyleControl, "case": linebuf.StyleControl,
		"break": linebuf.StyleControl, "default": linebuf.StyleControl,
		"continue": linebuf.StyleControl, "template": linebuf.StyleControl,
		"public": linebuf.StyleControl, "protected": linebuf.StyleControl,
		"private": linebuf.StyleControl, "typedef": linebuf.StyleControl,
		"delete": linebuf.StyleControl, "operator": linebuf.StyleControl,
		"sizeof": linebuf.StyleControl, "using": linebuf.StyleControl,
		"namespace": linebuf.StyleControl, "goto": linebuf.StyleControl,
		"friend": linebuf.StyleControl, "try": linebuf.StyleControl,
		"catch": linebuf.StyleControl, "throw": linebuf.StyleControl,
		"and": linebuf.StyleControl, "or": linebuf.StyleControl,
		"not": linebuf.StyleControl, "new": linebuf.StyleControl,
		"const_cast": linebuf.StyleControl, "static_cast": linebuf.StyleControl,
		"dynamic_cast": linebuf.StyleControl, "reinterpret_cast": linebuf.StyleControl,

		"int": linebuf.StyleVarType, "long": linebuf.StyleVarType,
		"void": linebuf.StyleVarType, "this": linebuf.StyleVarType,
		"bool": linebuf.StyleVarType, "char": linebuf.StyleVarType,
		"const": linebuf.StyleVarType, "short": linebuf.StyleVarType,
		"float": linebuf.StyleVarType, "double": linebuf.StyleVarType,
		"signed": linebuf.StyleVarType, "unsigned": linebuf.StyleVarType,
		"extern": linebuf.StyleVarType, "static": linebuf.StyleVarType,
		"enum": linebuf.StyleVarType, "uint8_t": linebuf.StyleVarType,
		"uint16_t": linebuf.StyleVarType, "uint32_t": linebuf.StyleVarType,
		"uint64_t": linebuf.StyleVarType, "size_t": linebuf.StyleVarType,
		"int8_t": linebuf.StyleVarType, "int16_t": linebuf.StyleVarType,
		"int32_t": linebuf.StyleVarType, "int64_t": linebuf.StyleVarType,
		"FILE": linebuf.StyleVarType, "DIR": linebuf.StyleVarType,
		"class": linebuf.StyleVarType, "struct": linebuf.StyleVarType,
		"union": linebuf.StyleVarType, "typename": linebuf.StyleVarType,
		"virtual": linebuf.StyleVarType, "inline": linebuf.StyleVarType,

		"true": linebuf.StyleConst, "false": linebuf.StyleConst,
		"NULL": linebuf.StyleConst, "nullptr": linebuf.StyleConst,

		"__FUNCTION__": linebuf.StyleDefine, "__PRETTY_FUNCTION__": linebuf.StyleDefine,
		"__TIMESTAMP__": linebuf.StyleDefine, "__FILE__": linebuf.StyleDefine,
		"__func__": linebuf.StyleDefine, "__LINE__": linebuf.StyleDefine,
	},
}

// ByExt maps a lowercased file extension (without the dot) to a Lang,
// mirroring the original's filename-suffix dispatch in FileBuf::Find_File_Type.
var ByExt = map[string]Lang{
	"go":  Go,
	"c":   CPP,
	"h":   CPP,
	"cc":  CPP,
	"cpp": CPP,
	"hh":  CPP,
	"hpp": CPP,
}
