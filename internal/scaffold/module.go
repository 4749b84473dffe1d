package scaffold

import (
	"strconv"
	"strings"

	"github.com/civix-labs/civix/internal/paths"
)

// Template names for the module entry point and its generated helper.
const (
	ModuleTemplate      = "module.php.tmpl"
	ModuleCivixTemplate = "module.civix.php.tmpl"
)

// VarClassPrefix is the Context.Vars key holding the PHP class prefix.
const VarClassPrefix = "classPrefix"

type moduleFile struct {
	template string
	target   string
}

// ModuleBuilder renders the extension's main PHP files.
type ModuleBuilder struct {
	renderer Renderer
	files    []moduleFile
	vars     map[string]any
}

// NewModuleBuilder returns a builder rendering templates with r.
func NewModuleBuilder(r Renderer) *ModuleBuilder {
	return &ModuleBuilder{renderer: r}
}

func (b *ModuleBuilder) Name() string { return "module" }

// Load computes target paths under ctx.BaseDir and the template variables.
func (b *ModuleBuilder) Load(ctx *Context) error {
	base, err := paths.New(ctx.BaseDir)
	if err != nil {
		return err
	}

	classPrefix := strings.ReplaceAll(ctx.Namespace, "/", "_")
	ctx.Vars[VarClassPrefix] = classPrefix

	b.files = []moduleFile{
		{template: ModuleTemplate, target: base.Join(ctx.MainFile + ".php")},
		{template: ModuleCivixTemplate, target: base.Join(ctx.MainFile + ".civix.php")},
	}
	b.vars = map[string]any{
		"FullName":    ctx.FullName,
		"MainFile":    ctx.MainFile,
		"Namespace":   ctx.Namespace,
		"ClassPrefix": classPrefix,
		"Author":      ctx.Author,
		"Email":       ctx.Email,
		"License":     ctx.License.ID,
		"Year":        strconv.Itoa(ctx.ReleaseDate.Year()),
	}
	return nil
}

// Save renders each template and writes it. A render failure stops the
// builder before anything is written for that template.
func (b *ModuleBuilder) Save(*Context) ([]Artifact, error) {
	var artifacts []Artifact
	for _, f := range b.files {
		out, err := b.renderer.Render(f.template, b.vars)
		if err != nil {
			return artifacts, &TemplateError{Builder: b.Name(), Template: f.template, Err: err}
		}

		a, err := writeFile(b.Name(), f.target, []byte(out))
		if err != nil {
			return artifacts, err
		}
		artifacts = append(artifacts, a)
	}
	return artifacts, nil
}
