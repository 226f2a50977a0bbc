package style

// Presets is the catalog of builtin clang-format styles, in selection
// tie-break order. Presets the installed clang-format does not know
// (older releases lack Microsoft and GNU) are skipped at load time.
var Presets = []string{
	"LLVM",
	"Google",
	"Chromium",
	"Mozilla",
	"WebKit",
	"Microsoft",
	"GNU",
}
