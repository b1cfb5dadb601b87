package hcl

import (
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// newEvalContext builds the evaluation context used when decoding a project
// file located in projectDir.
func newEvalContext(projectDir string) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env":         envValue(os.Environ()),
			"project_dir": cty.StringVal(projectDir),
		},
	}
}

// envValue converts KEY=VALUE pairs into a cty map of strings.
func envValue(environ []string) cty.Value {
	vars := make(map[string]cty.Value, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = cty.StringVal(v)
	}
	if len(vars) == 0 {
		return cty.MapValEmpty(cty.String)
	}
	return cty.MapVal(vars)
}
