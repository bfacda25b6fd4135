package generate

import (
	"fmt"
	"strings"
)

// genPreamble builds one import declaration per non-empty helper set. The
// two sets come from different runtime modules and are never merged.
func genPreamble(ctx *CodegenContext) string {
	var imports []string
	if ctx.VaporHelpers().Len() > 0 {
		imports = append(imports, genImport(ctx.VaporHelpers().Names(), ctx.Options.VaporRuntimeModuleName))
	}
	if ctx.Helpers().Len() > 0 {
		imports = append(imports, genImport(ctx.Helpers().Names(), ctx.Options.RuntimeModuleName))
	}
	return strings.Join(imports, "\n")
}

func genImport(names []string, module string) string {
	specifiers := make([]string, len(names))
	for i, name := range names {
		specifiers[i] = fmt.Sprintf("%s as _%s", name, name)
	}
	return fmt.Sprintf("import { %s } from '%s';", strings.Join(specifiers, ", "), module)
}
