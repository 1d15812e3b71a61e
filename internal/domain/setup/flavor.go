package setup

import (
	"path/filepath"
	"strings"
)

// ModuleFlavor is the module system a config file is written in.
type ModuleFlavor int

// ModuleFlavor constants.
const (
	CommonJS ModuleFlavor = iota
	ESM
)

// String returns the flavor name.
func (f ModuleFlavor) String() string {
	if f == ESM {
		return "esm"
	}
	return "commonjs"
}

// DetectFlavor picks ESM for .mjs and .ts files or when text has a default
// export, and CommonJS otherwise.
func DetectFlavor(name, text string) ModuleFlavor {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".mjs", ".ts":
		return ESM
	}
	if strings.Contains(text, "export default") {
		return ESM
	}
	return CommonJS
}
